package core

import "encoding/json"

// Name is a 64-bit encoding of up to 13 characters drawn from the
// 32-character alphabet ".12345abcdefghijklmnopqrstuvwxyz", used
// pervasively in Antelope as account/action/table identifiers. See
// AntelopeIO/spring libraries/chain/name.{hpp,cpp} for the reference
// bit-packing this mirrors.
type Name struct {
	value uint64
}

const nameCharmap = ".12345abcdefghijklmnopqrstuvwxyz"

// NewName parses s into a Name, requiring it to be at most 13 characters
// and to round-trip exactly through the encode/decode (i.e. already
// normalized: no information lost by the 5/4-bit packing).
func NewName(s string) (Name, error) {
	if len(s) > 13 {
		return Name{}, newErrorf(KindInvalidValue, "NewName", "name longer than 13 characters: %q", s)
	}
	value := stringToNameU64(s)
	if !nameIsNormalized(s, value) {
		return Name{}, newErrorf(KindInvalidValue, "NewName", "name not properly normalized: %q", s)
	}
	return Name{value: value}, nil
}

// NameFromUint64 builds a Name from its raw u64 representation. Every
// uint64 is a valid (if possibly non-normalized on the text side) Name.
func NameFromUint64(n uint64) Name { return Name{value: n} }

// AsUint64 returns the raw wire representation.
func (n Name) AsUint64() uint64 { return n.value }

// String renders the canonical text form, or "" for the zero Name.
func (n Name) String() string { return nameU64ToString(n.value) }

// Prefix returns the portion of the name before the last '.', or the
// whole name if it contains no '.'.
func (n Name) Prefix() (Name, error) {
	s := n.String()
	last := -1
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			last = i
			break
		}
	}
	if last < 0 {
		return n, nil
	}
	return NewName(s[:last])
}

func charToSymbol(c byte) uint64 {
	switch {
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 6
	case c >= '1' && c <= '5':
		return uint64(c-'1') + 1
	default:
		return 0
	}
}

func stringToNameU64(s string) uint64 {
	var n uint64
	maxlen := len(s)
	if maxlen > 12 {
		maxlen = 12
	}
	for i := 0; i < maxlen; i++ {
		n |= charToSymbol(s[i]) << (64 - 5*(i+1))
	}
	if len(s) >= 13 {
		n |= charToSymbol(s[12]) & 0x0F
	}
	return n
}

func nameU64ToString(value uint64) string {
	n := value
	s := make([]byte, 13)
	for i := range s {
		s[i] = '.'
	}
	for i := 0; i <= 12; i++ {
		var mask uint64
		var shift uint
		if i == 0 {
			mask, shift = 0x0F, 4
		} else {
			mask, shift = 0x1F, 5
		}
		s[12-i] = nameCharmap[n&mask]
		n >>= shift
	}
	end := 13
	for end > 0 && s[end-1] == '.' {
		end--
	}
	return string(s[:end])
}

func nameIsNormalized(s string, encoded uint64) bool {
	return nameU64ToString(encoded) == s
}

// MarshalJSON renders a Name as its canonical text form, matching how
// names appear in ABI JSON documents and action payloads.
func (n Name) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// UnmarshalJSON parses a Name from its canonical text form.
func (n *Name) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return newErrorf(KindInvalidValue, "Name.UnmarshalJSON", "%v", err)
	}
	parsed, err := NewName(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// EncodeName writes the u64 representation, little-endian.
func EncodeName(bs *ByteStream, v Name) { EncodeUint64(bs, v.value) }

// DecodeName reads the u64 representation; every bit pattern decodes
// (possibly to a non-normalized name whose String() differs from any
// input that would have produced it).
func DecodeName(bs *ByteStream) (Name, error) {
	v, err := DecodeUint64(bs)
	if err != nil {
		return Name{}, err
	}
	return Name{value: v}, nil
}
