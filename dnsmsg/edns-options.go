package dnsmsg

// EDNS0 option codes used by DnsOpt.Code.
const (
	OptCodeOwner               uint16 = 4 // draft-cheshire-edns0-owner-option
	OptCodeNSEC3HashUnderstood uint16 = 7 // RFC 6975 Section 3 (N3U)
)

// OwnerOption represents the EDNS0 Owner option
// (draft-cheshire-edns0-owner-option), used by Apple's Bonjour Sleep Proxy
// to advertise the MAC address of the device a proxied record was taken
// over from.
type OwnerOption struct {
	Version    uint8
	Sequence   uint8
	PrimaryMAC [6]byte
	WakeupMAC  *[6]byte // nil if absent
	Password   []byte   // optional; on the wire it always follows a wakeup MAC slot (see Encode)
}

// DecodeOwnerOption parses the data portion of an Owner option.
func DecodeOwnerOption(data []byte) (*OwnerOption, error) {
	if len(data) < 8 {
		return nil, ErrInvalidLen
	}
	o := &OwnerOption{Version: data[0], Sequence: data[1]}
	copy(o.PrimaryMAC[:], data[2:8])

	rest := data[8:]
	switch {
	case len(rest) == 0:
		// no wakeup MAC, no password
	case len(rest) >= 6:
		var wake [6]byte
		copy(wake[:], rest[:6])
		o.WakeupMAC = &wake
		if len(rest) > 6 {
			o.Password = append([]byte(nil), rest[6:]...)
		}
	default:
		return nil, ErrInvalidLen
	}
	return o, nil
}

// Encode serializes the option back to its wire form. When WakeupMAC is
// nil but Password is set, the primary MAC is duplicated into the wakeup
// slot to preserve field alignment, matching the quirk observed in
// deployed encoders.
func (o *OwnerOption) Encode() []byte {
	buf := make([]byte, 0, 8+6+len(o.Password))
	buf = append(buf, o.Version, o.Sequence)
	buf = append(buf, o.PrimaryMAC[:]...)

	if o.WakeupMAC != nil {
		buf = append(buf, o.WakeupMAC[:]...)
		buf = append(buf, o.Password...)
	} else if len(o.Password) > 0 {
		buf = append(buf, o.PrimaryMAC[:]...)
		buf = append(buf, o.Password...)
	}
	return buf
}

// NSEC3HashUnderstoodOption represents the EDNS0 NSEC3 Hash Understood
// option (RFC 6975 Section 3), a list of hash algorithm identifiers the
// sender is able to validate.
type NSEC3HashUnderstoodOption struct {
	Algorithms []NSEC3HashAlg
}

// DecodeNSEC3HashUnderstoodOption parses the data portion of the option.
func DecodeNSEC3HashUnderstoodOption(data []byte) *NSEC3HashUnderstoodOption {
	algs := make([]NSEC3HashAlg, len(data))
	for i, b := range data {
		algs[i] = NSEC3HashAlg(b)
	}
	return &NSEC3HashUnderstoodOption{Algorithms: algs}
}

// Encode serializes the option back to its wire form.
func (o *NSEC3HashUnderstoodOption) Encode() []byte {
	buf := make([]byte, len(o.Algorithms))
	for i, a := range o.Algorithms {
		buf[i] = byte(a)
	}
	return buf
}

// FindOpt returns the first option with the given code, or nil.
func (opt *RDataOPT) FindOpt(code uint16) *DnsOpt {
	for i := range opt.Opts {
		if opt.Opts[i].Code == code {
			return &opt.Opts[i]
		}
	}
	return nil
}
