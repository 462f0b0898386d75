package dnsmsg

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// RData is the interface implemented by all DNS resource record data types.
// Each record type (A, AAAA, MX, TXT, etc.) has its own implementation.
type RData interface {
	// String returns a human-readable representation of the record data.
	String() string
	// GetType returns the DNS record type (e.g., A, AAAA, MX).
	GetType() Type
	// encode writes the record data in wire format to the context.
	encode(c *context) error
}

// RDataFromString parses a string representation into the appropriate RData type.
// The format depends on the record type:
//   - A: IPv4 address (e.g., "192.168.1.1")
//   - AAAA: IPv6 address (e.g., "2001:db8::1")
//   - MX: "preference server" (e.g., "10 mail.example.com.")
//   - SOA: "mname rname serial refresh retry expire minimum"
//   - TXT: one or more quoted strings, concatenated (e.g., "\"hello world\"")
//   - NS, CNAME, PTR: domain name (e.g., "ns1.example.com.")
func RDataFromString(t Type, str string) (RData, error) {
	switch t {
	// RFC 1035
	case A:
		ip := net.ParseIP(str).To4()
		if len(ip) != 4 {
			return nil, errors.New("could not parse ip")
		}
		return &RDataIP{ip, t}, nil
	case NS, MD, MF, CNAME:
		return &RDataLabel{str, t}, nil
	case SOA:
		soa := &RDataSOA{}
		_, err := fmt.Sscanf(str, "%s %s %d %d %d %d %d", &soa.MName, &soa.RName, &soa.Serial, &soa.Refresh, &soa.Retry, &soa.Expire, &soa.Minimum)
		return soa, err
	case MG, MB, MR:
		return &RDataLabel{str, t}, nil
	case NULL:
		return &RDataRaw{nil, t}, nil
	case PTR:
		return &RDataLabel{str, t}, nil
	case HINFO:
		hi := &RDataHINFO{}
		_, err := fmt.Sscanf(str, "%q %q", &hi.CPU, &hi.OS)
		return hi, err
	case MX:
		mx := &RDataMX{}
		_, err := fmt.Sscanf(str, "%d %s", &mx.Pref, &mx.Server)
		return mx, err
	case TXT:
		var sb strings.Builder
		rest := strings.TrimSpace(str)
		for {
			q, err := strconv.QuotedPrefix(rest)
			if err != nil {
				return nil, err
			}
			s, err := strconv.Unquote(q)
			if err != nil {
				return nil, err
			}
			sb.WriteString(s)
			if rest = strings.TrimSpace(rest[len(q):]); rest == "" {
				return RDataTXT(sb.String()), nil
			}
		}
	// RFC 3596
	case AAAA:
		ip := net.ParseIP(str).To16()
		if len(ip) != 16 {
			return nil, errors.New("could not parse ipv6")
		}
		return &RDataIP{ip, t}, nil
	// RFC 6672
	case DNAME:
		return &RDataLabel{str, t}, nil
	// RFC 1035 - WKS
	case WKS:
		return parseWKS(str)
	// RFC 7477 - CSYNC
	case CSYNC:
		return parseCSYNC(str)
	// RFC 4034 - DNSKEY
	case DNSKEY:
		fields := strings.Fields(str)
		if len(fields) < 4 {
			return nil, fmt.Errorf("while parsing DNSKEY string: %w", ErrMalformedPresentation)
		}
		flags, err := strconv.ParseUint(fields[0], 10, 16)
		if err != nil {
			return nil, err
		}
		proto, err := strconv.ParseUint(fields[1], 10, 8)
		if err != nil {
			return nil, err
		}
		alg, err := strconv.ParseUint(fields[2], 10, 8)
		if err != nil {
			return nil, err
		}
		key, err := base64.StdEncoding.DecodeString(strings.Join(fields[3:], ""))
		if err != nil {
			return nil, err
		}
		return &RDataDNSKEY{Flags: uint16(flags), Protocol: uint8(proto), Algorithm: Algorithm(alg), PublicKey: key}, nil
	// RFC 4034 - DS
	case DS:
		fields := strings.Fields(str)
		if len(fields) < 4 {
			return nil, fmt.Errorf("while parsing DS string: %w", ErrMalformedPresentation)
		}
		keytag, err := strconv.ParseUint(fields[0], 10, 16)
		if err != nil {
			return nil, err
		}
		alg, err := strconv.ParseUint(fields[1], 10, 8)
		if err != nil {
			return nil, err
		}
		digType, err := strconv.ParseUint(fields[2], 10, 8)
		if err != nil {
			return nil, err
		}
		digest, err := hex.DecodeString(strings.Join(fields[3:], ""))
		if err != nil {
			return nil, err
		}
		return &RDataDS{KeyTag: uint16(keytag), Algorithm: Algorithm(alg), DigestType: DigestType(digType), Digest: digest}, nil
	// RFC 5155 - NSEC3PARAM
	case NSEC3PARAM:
		n := &RDataNSEC3PARAM{}
		var salt string
		var alg, flags uint8
		_, err := fmt.Sscanf(str, "%d %d %d %s", &alg, &flags, &n.Iterations, &salt)
		if err != nil {
			return nil, err
		}
		n.HashAlgorithm = NSEC3HashAlg(alg)
		n.Flags = flags
		if salt != "-" {
			salt, err := hex.DecodeString(salt)
			if err != nil {
				return nil, err
			}
			n.Salt = salt
		}
		return n, nil
	}
	return nil, fmt.Errorf("while parsing %s string: %w", t.String(), ErrNotSupport)
}

func (c *context) parseRData(t Type, d []byte) (RData, error) {
	// Parse rdata.
	// Anything short enough (max 5 lines) can be put in here to avoid too many method?
	// This might change in the future, in which case this will be refactored.

	switch t {
	// RFC 1035
	case A:
		if len(d) != 4 {
			return nil, ErrInvalidLen
		}
		return &RDataIP{d, t}, nil
	case NS:
		lbl, n, err := c.readLabel(d)
		if err != nil {
			return nil, err
		}
		if n != len(d) {
			return nil, ErrTrailingRdata
		}
		return &RDataLabel{lbl, t}, nil
	case MD:
		lbl, n, err := c.readLabel(d)
		if err != nil {
			return nil, err
		}
		if n != len(d) {
			return nil, ErrTrailingRdata
		}
		return &RDataLabel{lbl, t}, nil
	case MF:
		lbl, n, err := c.readLabel(d)
		if err != nil {
			return nil, err
		}
		if n != len(d) {
			return nil, ErrTrailingRdata
		}
		return &RDataLabel{lbl, t}, nil
	case CNAME:
		lbl, n, err := c.readLabel(d)
		if err != nil {
			return nil, err
		}
		if n != len(d) {
			return nil, ErrTrailingRdata
		}
		return &RDataLabel{lbl, t}, nil
	case SOA:
		res := &RDataSOA{}
		if err := res.decode(c, d); err != nil {
			return nil, err
		}
		return res, nil
	case MB:
		lbl, n, err := c.readLabel(d)
		if err != nil {
			return nil, err
		}
		if n != len(d) {
			return nil, ErrTrailingRdata
		}
		return &RDataLabel{lbl, t}, nil
	case MG:
		lbl, n, err := c.readLabel(d)
		if err != nil {
			return nil, err
		}
		if n != len(d) {
			return nil, ErrTrailingRdata
		}
		return &RDataLabel{lbl, t}, nil
	case MR:
		lbl, n, err := c.readLabel(d)
		if err != nil {
			return nil, err
		}
		if n != len(d) {
			return nil, ErrTrailingRdata
		}
		return &RDataLabel{lbl, t}, nil
	case NULL:
		return &RDataRaw{d, t}, nil
	case PTR:
		lbl, n, err := c.readLabel(d)
		if err != nil {
			return nil, err
		}
		if n != len(d) {
			return nil, ErrTrailingRdata
		}
		return &RDataLabel{lbl, t}, nil
	case MX:
		if len(d) < 3 {
			return nil, ErrInvalidLen
		}
		lbl, _, err := c.readLabel(d[2:])
		if err != nil {
			return nil, err
		}
		return &RDataMX{binary.BigEndian.Uint16(d[:2]), lbl}, nil
	case TXT:
		return parseTXT(d)
	// RFC 3596
	case AAAA:
		if len(d) != 16 {
			return nil, ErrInvalidLen
		}
		return &RDataIP{d, t}, nil
	// RFC 6891
	case OPT:
		res := &RDataOPT{}
		if err := res.decode(c, d); err != nil {
			return nil, err
		}
		return res, nil
	// RFC 4034 - DNSSEC
	case DNSKEY:
		res := &RDataDNSKEY{}
		if err := res.decode(c, d); err != nil {
			return nil, err
		}
		return res, nil
	case RRSIG:
		res := &RDataRRSIG{}
		if err := res.decode(c, d); err != nil {
			return nil, err
		}
		return res, nil
	case DS:
		res := &RDataDS{}
		if err := res.decode(c, d); err != nil {
			return nil, err
		}
		return res, nil
	case NSEC:
		res := &RDataNSEC{}
		if err := res.decode(c, d); err != nil {
			return nil, err
		}
		return res, nil
	// RFC 5155 - NSEC3
	case NSEC3:
		res := &RDataNSEC3{}
		if err := res.decode(c, d); err != nil {
			return nil, err
		}
		return res, nil
	case NSEC3PARAM:
		res := &RDataNSEC3PARAM{}
		if err := res.decode(c, d); err != nil {
			return nil, err
		}
		return res, nil
	// RFC 1035 - HINFO
	case HINFO:
		res := &RDataHINFO{}
		if err := res.decode(c, d); err != nil {
			return nil, err
		}
		return res, nil
	// RFC 6672 - DNAME (same structure as CNAME)
	case DNAME:
		lbl, n, err := c.readLabel(d)
		if err != nil {
			return nil, err
		}
		if n != len(d) {
			return nil, ErrTrailingRdata
		}
		return &RDataLabel{lbl, t}, nil
	// RFC 1035 - WKS
	case WKS:
		res := &RDataWKS{}
		if err := res.decode(c, d); err != nil {
			return nil, err
		}
		return res, nil
	// RFC 7477 - CSYNC
	case CSYNC:
		res := &RDataCSYNC{}
		if err := res.decode(c, d); err != nil {
			return nil, err
		}
		return res, nil
	}
	return nil, fmt.Errorf("while parsing %s: %w", t.String(), ErrNotSupport)
}
