package dnsmsg

import "encoding/binary"

type Resource struct {
	Name  string
	Type  Type
	Class Class
	TTL   uint32

	Data RData
}

// encode writes the resource record in wire format, patching the RDLENGTH
// field once the rdata codec has run (mirrors the length-patching pattern
// used by MarshalRData).
func (r *Resource) encode(c *context) error {
	if err := c.appendLabel(r.Name); err != nil {
		return err
	}
	if err := binary.Write(c, binary.BigEndian, r.Type); err != nil {
		return err
	}
	if err := binary.Write(c, binary.BigEndian, r.Class); err != nil {
		return err
	}
	if err := binary.Write(c, binary.BigEndian, r.TTL); err != nil {
		return err
	}

	lenPos := c.Len()
	if err := binary.Write(c, binary.BigEndian, uint16(0)); err != nil {
		return err
	}

	rdataStart := c.Len()
	if err := r.Data.encode(c); err != nil {
		return err
	}

	c.putUint16(lenPos, uint16(c.Len()-rdataStart))
	return nil
}

func (c *context) parseResource() (*Resource, error) {
	lbl, err := c.parseLabel()
	if err != nil {
		return nil, err
	}
	r := &Resource{Name: lbl}

	err = binary.Read(c, binary.BigEndian, &r.Type)
	if err != nil {
		return nil, err
	}
	err = binary.Read(c, binary.BigEndian, &r.Class)
	if err != nil {
		return nil, err
	}
	err = binary.Read(c, binary.BigEndian, &r.TTL)
	if err != nil {
		return nil, err
	}

	var l uint16 // RDLENGTH
	err = binary.Read(c, binary.BigEndian, &l)
	if err != nil {
		return nil, err
	}

	rdbuf, err := c.readLen(int(l))
	if err != nil {
		return nil, err
	}

	r.Data, err = c.parseRData(r.Type, rdbuf)
	if err != nil {
		return nil, err
	}

	return r, nil
}
