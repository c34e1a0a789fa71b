package core

import (
	"errors"
	"testing"
)

func TestNameRoundTrip(t *testing.T) {
	cases := []struct {
		s   string
		hex string
	}{
		{"ab.cd.ef", "0000004b8184c031"},
		{"zzzzzzzzzzzz", "f0ffffffffffffff"},
	}
	for _, c := range cases {
		n, err := NewName(c.s)
		if err != nil {
			t.Fatalf("NewName(%q): %v", c.s, err)
		}
		bs := NewByteStream()
		EncodeName(bs, n)
		if got := bs.HexData(); got != c.hex {
			t.Errorf("EncodeName(%q) = %s, want %s", c.s, got, c.hex)
		}
		rs := NewByteStreamFromBytes(bs.IntoBytes())
		decoded, err := DecodeName(rs)
		if err != nil {
			t.Fatalf("DecodeName(%s): %v", c.hex, err)
		}
		if decoded.String() != c.s {
			t.Errorf("DecodeName(%s).String() = %q, want %q", c.hex, decoded.String(), c.s)
		}
	}
}

func TestNameNotNormalized(t *testing.T) {
	_, err := NewName("..ab.cd.ef..")
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("NewName(not normalized) = %v, want InvalidValue", err)
	}
}

func TestNameTooLong(t *testing.T) {
	_, err := NewName("toolongnametoolong")
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("NewName(too long) = %v, want InvalidValue", err)
	}
}
