package dnsmsg

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CSYNC flag bits (RFC 7477 Section 2.1.1.1).
const (
	CSYNCFlagImmediate  CSYNCFlag = 1 << 0
	CSYNCFlagSOAMinimum CSYNCFlag = 1 << 1
)

// CSYNCFlag holds the CSYNC flags field.
type CSYNCFlag uint16

// RDataCSYNC represents a CSYNC resource record (RFC 7477).
// CSYNC records let a child zone ask its parent to scan and synchronize
// delegation-related data (NS, glue A/AAAA) from the child's apex.
type RDataCSYNC struct {
	Serial uint32    // SOA serial the child expects the parent to have observed
	Flags  CSYNCFlag // immediate / soaminimum
	Types  []Type    // sorted, deduplicated record types the parent should scan for
}

func (s *RDataCSYNC) GetType() Type { return CSYNC }

// NewRDataCSYNC builds a CSYNC rdata, sorting and deduplicating types.
func NewRDataCSYNC(serial uint32, flags CSYNCFlag, types []Type) *RDataCSYNC {
	return &RDataCSYNC{Serial: serial, Flags: flags, Types: sortedUniqueTypes(types)}
}

func sortedUniqueTypes(in []Type) []Type {
	if len(in) == 0 {
		return nil
	}
	cp := append([]Type(nil), in...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:1]
	for _, t := range cp[1:] {
		if t != out[len(out)-1] {
			out = append(out, t)
		}
	}
	return out
}

func (s *RDataCSYNC) String() string {
	typeStrs := make([]string, len(s.Types))
	for i, t := range s.Types {
		typeStrs[i] = t.String()
	}
	return fmt.Sprintf("%d %d %s", s.Serial, s.Flags, strings.Join(typeStrs, " "))
}

func (s *RDataCSYNC) encode(c *context) error {
	if err := binary.Write(c, binary.BigEndian, s.Serial); err != nil {
		return err
	}
	if err := binary.Write(c, binary.BigEndian, uint16(s.Flags)); err != nil {
		return err
	}
	_, err := c.Write(EncodeTypeBitmap(sortedUniqueTypes(s.Types)))
	return err
}

func (s *RDataCSYNC) decode(c *context, d []byte) error {
	if len(d) < 6 {
		return ErrInvalidLen
	}
	s.Serial = binary.BigEndian.Uint32(d[0:4])
	s.Flags = CSYNCFlag(binary.BigEndian.Uint16(d[4:6]))
	types, err := decodeTypeBitmap(d[6:])
	if err != nil {
		return err
	}
	s.Types = types
	return nil
}

func parseCSYNC(str string) (*RDataCSYNC, error) {
	fields := strings.Fields(str)
	if len(fields) < 2 {
		return nil, fmt.Errorf("while parsing CSYNC string: %w", ErrMalformedPresentation)
	}
	serial, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("while parsing CSYNC serial: %w", err)
	}
	flags, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("while parsing CSYNC flags: %w", err)
	}
	types := make([]Type, 0, len(fields)-2)
	for _, f := range fields[2:] {
		t, ok := StringToType[strings.ToUpper(f)]
		if !ok {
			return nil, fmt.Errorf("while parsing CSYNC type %q: %w", f, ErrMalformedPresentation)
		}
		types = append(types, t)
	}
	return NewRDataCSYNC(uint32(serial), CSYNCFlag(flags), types), nil
}
