package dnsmsg

import "encoding/binary"

type Question struct {
	Name  string
	Type  Type
	Class Class
}

func (q *Question) encode(c *context) error {
	if err := c.appendLabel(q.Name); err != nil {
		return err
	}
	if err := binary.Write(c, binary.BigEndian, q.Type); err != nil {
		return err
	}
	return binary.Write(c, binary.BigEndian, q.Class)
}

func (c *context) parseQuestion() (*Question, error) {
	lbl, err := c.parseLabel()
	if err != nil {
		return nil, err
	}
	q := &Question{Name: lbl}

	err = binary.Read(c, binary.BigEndian, &q.Type)
	if err != nil {
		return nil, err
	}
	err = binary.Read(c, binary.BigEndian, &q.Class)
	if err != nil {
		return nil, err
	}

	return q, nil
}
