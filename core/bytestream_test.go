package core

import (
	"errors"
	"testing"
)

func TestByteStreamWriteRead(t *testing.T) {
	bs := NewByteStream()
	bs.WriteByte(0x01)
	bs.WriteBytes([]byte{0x02, 0x03, 0x04})

	if bs.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", bs.Len())
	}

	b, err := bs.ReadByte()
	if err != nil || b != 0x01 {
		t.Fatalf("ReadByte() = %d, %v, want 1, nil", b, err)
	}

	rest, err := bs.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes(3) error: %v", err)
	}
	want := []byte{0x02, 0x03, 0x04}
	if string(rest) != string(want) {
		t.Fatalf("ReadBytes(3) = %v, want %v", rest, want)
	}
}

func TestByteStreamReadPastEnd(t *testing.T) {
	bs := NewByteStreamFromBytes([]byte{0x01})
	if _, err := bs.ReadByte(); err != nil {
		t.Fatalf("first ReadByte: %v", err)
	}
	_, err := bs.ReadByte()
	if !errors.Is(err, ErrStreamEnded) {
		t.Fatalf("ReadByte past end = %v, want ErrStreamEnded", err)
	}
	_, err = NewByteStream().ReadBytes(5)
	if !errors.Is(err, ErrStreamEnded) {
		t.Fatalf("ReadBytes past end = %v, want ErrStreamEnded", err)
	}
}

func TestByteStreamHexData(t *testing.T) {
	bs := NewByteStream()
	bs.WriteBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	if got := bs.HexData(); got != "deadbeef" {
		t.Fatalf("HexData() = %q, want %q", got, "deadbeef")
	}
}

func TestByteStreamLeftover(t *testing.T) {
	bs := NewByteStreamFromBytes([]byte{0x01, 0x02, 0x03})
	bs.ReadByte()
	if got := bs.Leftover(); len(got) != 2 {
		t.Fatalf("Leftover() = %v, want 2 bytes", got)
	}
}
