package dnssec

import (
	"bytes"
	"encoding/binary"
	"sort"
	"strings"

	"github.com/dnscore/dnscore/dnsmsg"
)

// CanonicalName converts a domain name to canonical (lowercase, uncompressed)
// wire format as specified in RFC 4034 Section 6.1/6.2.
func CanonicalName(name string) []byte {
	name = strings.ToLower(name)
	name = strings.TrimSuffix(name, ".")

	var buf bytes.Buffer
	if name != "" {
		for _, label := range strings.Split(name, ".") {
			buf.WriteByte(byte(len(label)))
			buf.WriteString(label)
		}
	}
	buf.WriteByte(0) // root label
	return buf.Bytes()
}

// CanonicalRRset sorts an RRset in canonical order as specified in RFC 4034
// Section 6.3. Records are sorted by their RDATA in canonical wire format.
func CanonicalRRset(rrset []*dnsmsg.Resource) []*dnsmsg.Resource {
	if len(rrset) <= 1 {
		return rrset
	}

	sorted := make([]*dnsmsg.Resource, len(rrset))
	copy(sorted, rrset)

	sort.Slice(sorted, func(i, j int) bool {
		rdataI, _ := dnsmsg.CanonicalRData(sorted[i])
		rdataJ, _ := dnsmsg.CanonicalRData(sorted[j])
		return bytes.Compare(rdataI, rdataJ) < 0
	})

	return sorted
}

// BuildSignedData constructs the data to be signed/verified for an RRSIG
// as specified in RFC 4034 Section 3.1.8.1.
func BuildSignedData(rrsig *dnsmsg.RDataRRSIG, rrset []*dnsmsg.Resource) ([]byte, error) {
	var buf bytes.Buffer

	// RRSIG RDATA (without signature)
	binary.Write(&buf, binary.BigEndian, uint16(rrsig.TypeCovered))
	buf.WriteByte(byte(rrsig.Algorithm))
	buf.WriteByte(rrsig.Labels)
	binary.Write(&buf, binary.BigEndian, rrsig.OrigTTL)
	binary.Write(&buf, binary.BigEndian, rrsig.Expiration)
	binary.Write(&buf, binary.BigEndian, rrsig.Inception)
	binary.Write(&buf, binary.BigEndian, rrsig.KeyTag)
	buf.Write(CanonicalName(rrsig.SignerName))

	sortedRRset := CanonicalRRset(rrset)
	for _, rr := range sortedRRset {
		buf.Write(CanonicalName(rr.Name))
		binary.Write(&buf, binary.BigEndian, uint16(rr.Type))
		binary.Write(&buf, binary.BigEndian, uint16(rr.Class))
		binary.Write(&buf, binary.BigEndian, rrsig.OrigTTL) // RFC 4034 §3.1.3: original TTL, not the RR's own

		rdata, err := dnsmsg.CanonicalRData(rr)
		if err != nil {
			return nil, err
		}
		binary.Write(&buf, binary.BigEndian, uint16(len(rdata)))
		buf.Write(rdata)
	}

	return buf.Bytes(), nil
}

// CountLabels returns the number of labels in a domain name, excluding the
// root label, and excluding a leading wildcard "*" label (RFC 4034 §3.1.3).
func CountLabels(name string) uint8 {
	name = strings.TrimSuffix(name, ".")
	if name == "" {
		return 0
	}
	labels := strings.Split(name, ".")
	if labels[0] == "*" {
		labels = labels[1:]
	}
	return uint8(len(labels))
}
