package core

import (
	"errors"
	"testing"
)

func TestSymbolRoundTrip(t *testing.T) {
	sym, err := NewSymbol("4,SYS")
	if err != nil {
		t.Fatalf("NewSymbol: %v", err)
	}
	if sym.Decimals() != 4 || sym.Name() != "SYS" {
		t.Fatalf("Decimals/Name = %d/%q, want 4/SYS", sym.Decimals(), sym.Name())
	}
	if sym.String() != "4,SYS" {
		t.Fatalf("String() = %q, want 4,SYS", sym.String())
	}

	bs := NewByteStream()
	EncodeSymbol(bs, sym)
	rs := NewByteStreamFromBytes(bs.IntoBytes())
	decoded, err := DecodeSymbol(rs)
	if err != nil {
		t.Fatalf("DecodeSymbol: %v", err)
	}
	if decoded.String() != sym.String() {
		t.Fatalf("decoded = %q, want %q", decoded.String(), sym.String())
	}
}

func TestSymbolMissingComma(t *testing.T) {
	_, err := NewSymbol("4SYS")
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("NewSymbol(no comma) = %v, want InvalidValue", err)
	}
}

func TestSymbolPrecisionTooLarge(t *testing.T) {
	_, err := NewSymbolFromParts(MaxSymbolPrecision+1, "SYS")
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("NewSymbolFromParts(precision too large) = %v, want InvalidValue", err)
	}
}

func TestSymbolFromUint64RejectsInvalidCode(t *testing.T) {
	// lowercase byte 'a' (0x61) in the code position is not a valid
	// uppercase-only symbol name.
	_, err := SymbolFromUint64(uint64('a')<<8 | 4)
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("SymbolFromUint64(invalid code) = %v, want InvalidValue", err)
	}
}

func TestDecodeSymbolStrictness(t *testing.T) {
	defer func() { StrictSymbolDecode = false }()

	invalid := uint64('a')<<8 | 4 // lowercase code byte, same as above.
	bs := NewByteStream()
	EncodeUint64(bs, invalid)

	StrictSymbolDecode = false
	lenient, err := DecodeSymbol(NewByteStreamFromBytes(bs.IntoBytes()))
	if err != nil {
		t.Fatalf("DecodeSymbol(lenient) = %v, want no error", err)
	}
	if lenient.AsUint64() != invalid {
		t.Fatalf("DecodeSymbol(lenient).AsUint64() = %d, want %d", lenient.AsUint64(), invalid)
	}

	StrictSymbolDecode = true
	_, err = DecodeSymbol(NewByteStreamFromBytes(bs.IntoBytes()))
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("DecodeSymbol(strict) = %v, want InvalidValue", err)
	}
}

func TestSymbolCodeRoundTrip(t *testing.T) {
	sc, err := NewSymbolCode("EOS")
	if err != nil {
		t.Fatalf("NewSymbolCode: %v", err)
	}
	bs := NewByteStream()
	EncodeSymbolCode(bs, sc)
	rs := NewByteStreamFromBytes(bs.IntoBytes())
	decoded, err := DecodeSymbolCode(rs)
	if err != nil {
		t.Fatalf("DecodeSymbolCode: %v", err)
	}
	if decoded.String() != "EOS" {
		t.Fatalf("decoded.String() = %q, want EOS", decoded.String())
	}
}
