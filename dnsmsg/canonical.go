package dnsmsg

// CanonicalRData encodes a resource record's RDATA in canonical wire form
// (RFC 4034 Section 6.2): embedded domain names are lowercased and never
// compressed. Used by the DNSSEC signer/verifier to build the exact byte
// sequence a signature covers.
func CanonicalRData(r *Resource) ([]byte, error) {
	c := &context{canonical: true}
	if err := r.Data.encode(c); err != nil {
		return nil, err
	}
	return c.rawMsg, nil
}

// CanonicalOwnerName returns the lowercased, uncompressed wire encoding of
// a domain name (RFC 4034 Section 6.2).
func CanonicalOwnerName(name string) ([]byte, error) {
	c := &context{canonical: true}
	if err := c.appendLabel(name); err != nil {
		return nil, err
	}
	return c.rawMsg, nil
}
