package dnsmsg

import (
	"encoding/binary"
	"io"
	"strings"
)

// context is used when parsing or generating a message in order to handle
// label compression, canonical-form encoding, etc.
type context struct {
	rawMsg    []byte
	labelMap  map[string]uint16 // cache for label compression
	rpos      int               // read position
	name      string            // default suffix
	marshal   bool              // marshal mode (MarshalRData/UnmarshalRData): no compression, no default suffix
	canonical bool              // canonical mode (RFC 4034 §6): lowercase labels, never compress
}

func (c *context) Write(p []byte) (int, error) {
	c.rawMsg = append(c.rawMsg, p...)
	return len(p), nil
}

func (c *context) Read(p []byte) (int, error) {
	if c.rpos >= len(c.rawMsg) {
		return 0, io.EOF
	}
	n := copy(p, c.rawMsg[c.rpos:])
	c.rpos += n
	return n, nil
}

func (c *context) Len() int {
	return len(c.rawMsg)
}

func (c *context) putUint16(pos int, v uint16) {
	// simple overwrite function
	binary.BigEndian.PutUint16(c.rawMsg[pos:pos+2], v)
}

func (c *context) readLen(l int) ([]byte, error) {
	if l == 0 {
		return nil, nil
	}
	if c.rpos+l > len(c.rawMsg) {
		return nil, ErrTruncated
	}

	pos := c.rpos
	c.rpos += l

	return c.rawMsg[pos:c.rpos], nil
}

// appendLabel writes a presentation-form or already-encoded name to the
// message, compressing against previously written names unless the
// context is in canonical mode (RFC 4034 §6.2: canonical emit never
// compresses and always lowercases ASCII).
func (c *context) appendLabel(lbl string) error {
	if len(lbl) > 255 {
		return ErrNameTooLong
	}
	if c.marshal {
		// do not care further
		c.rawMsg = append(c.rawMsg, byte(len(lbl)))
		c.rawMsg = append(c.rawMsg, lbl...)
		return nil
	}

	if !strings.HasSuffix(lbl, ".") {
		if c.name == "" {
			return ErrLabelInvalid
		}
		if lbl == "" || lbl == "@" {
			lbl = c.name
		} else {
			lbl = lbl + "." + c.name
		}
		if len(lbl) > 255 {
			return ErrNameTooLong
		}
	} else {
		lbl = lbl[:len(lbl)-1]
	}

	for {
		if !c.canonical {
			if p, ok := c.labelMap[strings.ToLower(lbl)]; ok {
				// found label in cache! (cache offset already includes bits 0xc000)
				return binary.Write(c, binary.BigEndian, p)
			}
			if cachePos := len(c.rawMsg); cachePos < 0x3fff {
				// store this pointer into cache so we can compress future labels
				c.labelMap[strings.ToLower(lbl)] = uint16(cachePos | 0xc000)
			}
		}

		if lbl == "" {
			// reached the root label
			c.rawMsg = append(c.rawMsg, 0)
			return nil
		}

		pos := strings.IndexByte(lbl, '.')
		if pos == 0 {
			// got ".." in label
			return ErrLabelInvalid
		}
		if pos == -1 {
			// last label before the root
			if len(lbl) > 63 {
				return ErrLabelTooLong
			}
			label := lbl
			if c.canonical {
				label = strings.ToLower(label)
			}
			c.rawMsg = append(append(append(c.rawMsg, byte(len(label))), []byte(label)...), 0)
			return nil
		}

		if pos > 63 {
			return ErrLabelTooLong
		}

		label := lbl[:pos]
		if c.canonical {
			label = strings.ToLower(label)
		}
		c.rawMsg = append(append(c.rawMsg, byte(pos)), []byte(label)...)
		lbl = lbl[pos+1:]
	}
}

func (c *context) parseLabel() (string, error) {
	// read label at current position
	if c.rpos >= len(c.rawMsg) {
		return "", io.EOF
	}
	lbl, n, err := c.readLabel(c.rawMsg[c.rpos:])
	if err != nil {
		return lbl, err
	}

	c.rpos += n
	return lbl, err
}

// readLabel decodes a name starting at buf, which must be a sub-slice of
// c.rawMsg sharing its backing array (so that pointer targets can be
// validated against the absolute offset they are read from). Pointers must point strictly
// backwards of the position they occur at; combined with the
// visited-byte budget this guarantees termination (spec: bounded
// total-bytes-visited <= 255).
func (c *context) readLabel(buf []byte) (string, int, error) {
	var res []byte
	var read int
	readMode := true
	visited := 0

	if c.marshal {
		// simple read, no compression in this mode
		if len(buf) == 0 {
			return "", 0, ErrTruncated
		}
		l := int(buf[0])
		if l == 0 {
			return "", 1, nil
		}
		if len(buf) < l+1 {
			return "", 0, io.ErrUnexpectedEOF
		}
		s := buf[1 : l+1]
		return string(s), l + 1, nil
	}

	for {
		if len(buf) == 0 {
			return string(res), read, ErrTruncated
		}

		offset := cap(c.rawMsg) - cap(buf)
		v := int(buf[0])
		if readMode {
			read += 1
		}
		if v == 0 {
			return string(res), read, nil
		}
		if v&0xc0 == 0xc0 {
			if len(buf) < 2 {
				return string(res), read, ErrBadPointer
			}
			if readMode {
				read += 1
				readMode = false
			}
			// this is a label pointer; it must point strictly backwards
			pos := int(binary.BigEndian.Uint16(buf[:2]) & ^uint16(0xc000))
			if pos >= offset {
				return string(res), read, ErrBadPointer
			}
			visited += 2
			if visited > 255 {
				return string(res), read, ErrBadPointer
			}
			buf = c.rawMsg[pos:]
			continue
		}
		if v > 63 {
			return string(res), read, ErrLabelTooLong
		}

		buf = buf[1:] // move buffer forward to skip len byte
		if v >= len(buf) {
			return string(res), read, ErrTruncated
		}

		if readMode {
			read += v
		}
		visited += 1 + v
		if visited > 255 {
			return string(res), read, ErrBadPointer
		}

		res = append(res, buf[:v]...)
		res = append(res, '.')

		buf = buf[v:]
	}
}
