package dnsmsg

import "testing"

func TestOwnerOptionRoundTrip(t *testing.T) {
	o := &OwnerOption{
		Version:    0,
		Sequence:   3,
		PrimaryMAC: [6]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
	}

	data := o.Encode()
	parsed, err := DecodeOwnerOption(data)
	if err != nil {
		t.Fatalf("failed to decode Owner option: %s", err)
	}
	if parsed.Version != o.Version || parsed.Sequence != o.Sequence {
		t.Errorf("version/sequence mismatch: got %+v, want %+v", parsed, o)
	}
	if parsed.PrimaryMAC != o.PrimaryMAC {
		t.Errorf("primary MAC mismatch: got %x, want %x", parsed.PrimaryMAC, o.PrimaryMAC)
	}
	if parsed.WakeupMAC != nil {
		t.Errorf("expected no wakeup MAC, got %x", *parsed.WakeupMAC)
	}
	if len(parsed.Password) != 0 {
		t.Errorf("expected no password, got %q", parsed.Password)
	}
}

func TestOwnerOptionRoundTripWithWakeupMAC(t *testing.T) {
	wake := [6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	o := &OwnerOption{
		Version:    1,
		Sequence:   7,
		PrimaryMAC: [6]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
		WakeupMAC:  &wake,
		Password:   []byte{0x01, 0x02, 0x03},
	}

	data := o.Encode()
	parsed, err := DecodeOwnerOption(data)
	if err != nil {
		t.Fatalf("failed to decode Owner option: %s", err)
	}
	if parsed.WakeupMAC == nil || *parsed.WakeupMAC != wake {
		t.Errorf("wakeup MAC mismatch: got %v, want %x", parsed.WakeupMAC, wake)
	}
	if string(parsed.Password) != string(o.Password) {
		t.Errorf("password mismatch: got %x, want %x", parsed.Password, o.Password)
	}
}

func TestOwnerOptionWakeupMACBackfill(t *testing.T) {
	// No wakeup MAC but a password is set: the primary MAC must be
	// duplicated into the wakeup slot on emit, per spec.
	o := &OwnerOption{
		Version:    0,
		Sequence:   1,
		PrimaryMAC: [6]byte{1, 2, 3, 4, 5, 6},
		Password:   []byte{0x99},
	}

	data := o.Encode()
	if len(data) != 8+6+1 {
		t.Fatalf("unexpected encoded length: got %d", len(data))
	}

	parsed, err := DecodeOwnerOption(data)
	if err != nil {
		t.Fatalf("failed to decode Owner option: %s", err)
	}
	if parsed.WakeupMAC == nil {
		t.Fatal("expected backfilled wakeup MAC after decode")
	}
	if *parsed.WakeupMAC != o.PrimaryMAC {
		t.Errorf("backfilled wakeup MAC mismatch: got %x, want %x", *parsed.WakeupMAC, o.PrimaryMAC)
	}
	if string(parsed.Password) != string(o.Password) {
		t.Errorf("password mismatch: got %x, want %x", parsed.Password, o.Password)
	}
}

func TestOwnerOptionDecodeInvalidLen(t *testing.T) {
	if _, err := DecodeOwnerOption([]byte{1, 2, 3}); err != ErrInvalidLen {
		t.Errorf("expected ErrInvalidLen for short data, got %v", err)
	}
	// 8 bytes of header plus a truncated wakeup MAC (< 6 bytes of rest).
	short := append([]byte{0, 0, 0, 0, 0, 0, 0, 0}, 1, 2, 3)
	if _, err := DecodeOwnerOption(short); err != ErrInvalidLen {
		t.Errorf("expected ErrInvalidLen for truncated wakeup MAC, got %v", err)
	}
}

func TestNSEC3HashUnderstoodOptionRoundTrip(t *testing.T) {
	o := &NSEC3HashUnderstoodOption{Algorithms: []NSEC3HashAlg{NSEC3HashSHA1}}

	data := o.Encode()
	parsed := DecodeNSEC3HashUnderstoodOption(data)

	if len(parsed.Algorithms) != len(o.Algorithms) {
		t.Fatalf("algorithm count mismatch: got %d, want %d", len(parsed.Algorithms), len(o.Algorithms))
	}
	for i, alg := range o.Algorithms {
		if parsed.Algorithms[i] != alg {
			t.Errorf("algorithm %d mismatch: got %d, want %d", i, parsed.Algorithms[i], alg)
		}
	}
}

func TestNSEC3HashUnderstoodOptionCode(t *testing.T) {
	// RFC 6975 Section 3: N3U is option code 7, distinct from DHU (6).
	if OptCodeNSEC3HashUnderstood != 7 {
		t.Errorf("expected OptCodeNSEC3HashUnderstood=7, got %d", OptCodeNSEC3HashUnderstood)
	}
}

func TestFindOpt(t *testing.T) {
	owner := &OwnerOption{Version: 0, Sequence: 1, PrimaryMAC: [6]byte{1, 2, 3, 4, 5, 6}}
	n3u := &NSEC3HashUnderstoodOption{Algorithms: []NSEC3HashAlg{NSEC3HashSHA1}}

	opt := &RDataOPT{Opts: []DnsOpt{
		{Code: OptCodeOwner, Data: owner.Encode()},
		{Code: OptCodeNSEC3HashUnderstood, Data: n3u.Encode()},
	}}

	found := opt.FindOpt(OptCodeNSEC3HashUnderstood)
	if found == nil {
		t.Fatal("expected to find NSEC3-Hash-Understood option")
	}
	parsed := DecodeNSEC3HashUnderstoodOption(found.Data)
	if len(parsed.Algorithms) != 1 || parsed.Algorithms[0] != NSEC3HashSHA1 {
		t.Errorf("unexpected decoded algorithms: %v", parsed.Algorithms)
	}

	if opt.FindOpt(99) != nil {
		t.Error("expected nil for unknown option code")
	}
}
