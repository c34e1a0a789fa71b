package core

import (
	"strconv"
	"strings"
)

// MaxSymbolPrecision is the largest number of decimal digits a Symbol may
// carry (matches AntelopeIO/spring libraries/chain/symbol.hpp).
const MaxSymbolPrecision = 18

// StrictSymbolDecode controls whether DecodeSymbol validates the
// decoded u64 (decimals <= MaxSymbolPrecision, uppercase-only code) or
// passes it through unchanged. Wired from
// pkg/config.Config.Codec.StrictSymbolDecode by cmd/kuduabi at startup;
// defaults to false (lenient), matching a chain node's own tolerance of
// symbols it did not itself mint.
var StrictSymbolDecode = false

// SymbolCode is the up-to-7-uppercase-letter token ticker packed into the
// upper 56 bits of a Symbol.
type SymbolCode struct {
	value uint64
}

// NewSymbolCode parses an uppercase ticker of at most 7 ASCII letters.
func NewSymbolCode(s string) (SymbolCode, error) {
	v, err := stringToSymbolCode(s)
	if err != nil {
		return SymbolCode{}, err
	}
	return SymbolCode{value: v}, nil
}

// SymbolCodeFromUint64 wraps a raw u64 without validation.
func SymbolCodeFromUint64(n uint64) SymbolCode { return SymbolCode{value: n} }

func (c SymbolCode) AsUint64() uint64 { return c.value }
func (c SymbolCode) String() string   { return symbolCodeToString(c.value) }

func stringToSymbolCode(s string) (uint64, error) {
	if s == "" {
		return 0, newErrorf(KindInvalidValue, "NewSymbolCode", "creating symbol code from empty string")
	}
	if len(s) > 7 {
		return 0, newErrorf(KindInvalidValue, "NewSymbolCode", "symbol code longer than 7 characters: %q", s)
	}
	var result uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			return 0, newErrorf(KindInvalidValue, "NewSymbolCode", "invalid char %q in symbol code %q", c, s)
		}
		result |= uint64(c) << (8 * i)
	}
	return result, nil
}

func symbolCodeToString(value uint64) string {
	var sb strings.Builder
	v := value
	for v != 0 {
		sb.WriteByte(byte(v & 0xFF))
		v >>= 8
	}
	return sb.String()
}

func isValidSymbolName(name string) bool {
	for i := 0; i < len(name); i++ {
		if name[i] < 'A' || name[i] > 'Z' {
			return false
		}
	}
	return true
}

// Symbol packs a SymbolCode together with a decimal precision (0-18) into a
// single u64: the low byte is the precision, the remaining bytes are the
// code, low-byte-first.
type Symbol struct {
	value uint64
}

// NewSymbol parses the canonical "<precision>,<CODE>" textual form.
func NewSymbol(s string) (Symbol, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Symbol{}, newErrorf(KindInvalidValue, "NewSymbol", "creating symbol from empty string")
	}
	pos := strings.IndexByte(s, ',')
	if pos < 0 {
		return Symbol{}, newErrorf(KindInvalidValue, "NewSymbol", "missing comma in symbol %q", s)
	}
	precision, err := strconv.ParseUint(s[:pos], 10, 8)
	if err != nil {
		return Symbol{}, newErrorf(KindInvalidValue, "NewSymbol", "could not parse precision for symbol %q", s)
	}
	return NewSymbolFromParts(uint8(precision), s[pos+1:])
}

// NewSymbolFromParts builds a Symbol from a precision and an uppercase code.
func NewSymbolFromParts(precision uint8, code string) (Symbol, error) {
	if precision > MaxSymbolPrecision {
		return Symbol{}, newErrorf(KindInvalidValue, "NewSymbolFromParts",
			"given precision %d should be <= max precision %d", precision, MaxSymbolPrecision)
	}
	c, err := stringToSymbolCode(code)
	if err != nil {
		return Symbol{}, err
	}
	return Symbol{value: (c << 8) | uint64(precision)}, nil
}

// SymbolFromUint64 wraps a raw u64, validating precision and code charset.
func SymbolFromUint64(n uint64) (Symbol, error) {
	s := Symbol{value: n}
	if !s.isValid() {
		return Symbol{}, newErrorf(KindInvalidValue, "SymbolFromUint64", "invalid u64 representation: %d cannot be turned into a valid symbol", n)
	}
	return s, nil
}

func (s Symbol) AsUint64() uint64 { return s.value }

// Decimals is the number of digits after the decimal point.
func (s Symbol) Decimals() uint8 { return uint8(s.value & 0xFF) }

// Precision is 10^Decimals.
func (s Symbol) Precision() int64 {
	p10 := int64(1)
	for p := int(s.Decimals()); p > 0; p-- {
		p10 *= 10
	}
	return p10
}

func (s Symbol) Code() SymbolCode { return SymbolCode{value: s.value >> 8} }
func (s Symbol) Name() string     { return symbolCodeToString(s.Code().value) }

func (s Symbol) isValid() bool {
	return s.Decimals() <= MaxSymbolPrecision && isValidSymbolName(s.Name())
}

func (s Symbol) String() string {
	return strconv.Itoa(int(s.Decimals())) + "," + s.Name()
}

func EncodeSymbol(bs *ByteStream, v Symbol) { EncodeUint64(bs, v.value) }

func DecodeSymbol(bs *ByteStream) (Symbol, error) {
	v, err := DecodeUint64(bs)
	if err != nil {
		return Symbol{}, err
	}
	if !StrictSymbolDecode {
		return Symbol{value: v}, nil
	}
	return SymbolFromUint64(v)
}

func EncodeSymbolCode(bs *ByteStream, v SymbolCode) { EncodeUint64(bs, v.value) }

func DecodeSymbolCode(bs *ByteStream) (SymbolCode, error) {
	v, err := DecodeUint64(bs)
	if err != nil {
		return SymbolCode{}, err
	}
	return SymbolCode{value: v}, nil
}
