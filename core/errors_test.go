package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	cases := map[ErrorKind]string{
		KindStreamEnded:  "stream_ended",
		KindInvalidData:  "invalid_data",
		KindInvalidValue: "invalid_value",
		KindVersion:      "version_error",
		KindIntegrity:    "integrity_error",
		KindEncode:       "encode_error",
		KindDecode:       "decode_error",
		KindHex:          "hex_error",
		KindJSON:         "json_error",
		ErrorKind(999):   "unknown_error",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestErrorIsMatchesOnKindOnly(t *testing.T) {
	e1 := newErrorf(KindInvalidValue, "Name.Decode", "bad name %q", "xyz")
	e2 := newError(KindInvalidValue, "Symbol.Decode", nil)

	if !errors.Is(e1, ErrInvalidValue) {
		t.Fatalf("errors.Is(e1, ErrInvalidValue) = false, want true")
	}
	if !errors.Is(e2, ErrInvalidValue) {
		t.Fatalf("errors.Is(e2, ErrInvalidValue) = false, want true")
	}
	if errors.Is(e1, ErrStreamEnded) {
		t.Fatalf("errors.Is(e1, ErrStreamEnded) = true, want false")
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("underlying failure")
	wrapped := newError(KindDecode, "ABI.DecodeVariant", inner)
	if !errors.Is(wrapped, inner) {
		t.Fatalf("errors.Is(wrapped, inner) = false, want true")
	}
	if errors.Unwrap(wrapped) != inner {
		t.Fatalf("errors.Unwrap(wrapped) = %v, want %v", errors.Unwrap(wrapped), inner)
	}
}

func TestErrorMessageFormatting(t *testing.T) {
	withMsgAndErr := &Error{Kind: KindDecode, Op: "ABI.DecodeVariant", Msg: "bad tag", Err: fmt.Errorf("boom")}
	if got, want := withMsgAndErr.Error(), "ABI.DecodeVariant: decode_error: bad tag: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	withMsgOnly := newErrorf(KindInvalidValue, "Name.Decode", "bad name %q", "xyz")
	if got, want := withMsgOnly.Error(), `Name.Decode: invalid_value: bad name "xyz"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := &Error{Kind: KindStreamEnded, Op: "ByteStream.ReadByte"}
	if got, want := bare.Error(), "ByteStream.ReadByte: stream_ended"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
