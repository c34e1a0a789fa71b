// Package core implements the Antelope-family ABI codec: the scalar wire
// format, the domain value types (Name, Symbol, Asset, crypto data), the
// ABI document model, and the ABI engine that drives JSON<->binary
// transcoding against a schema.
package core

import (
	"encoding/hex"
)

// ByteStream is an append-only writer paired with a cursor-based reader
// over the same backing buffer. Writes are infallible; reads past the end
// of the buffer fail with ErrStreamEnded. There is no seeking or rewinding.
type ByteStream struct {
	data    []byte
	readPos int
}

// NewByteStream returns an empty stream ready for writing.
func NewByteStream() *ByteStream {
	return &ByteStream{}
}

// NewByteStreamFromBytes wraps existing bytes for reading. The read cursor
// starts at position 0; nothing prevents also writing to it afterwards.
func NewByteStreamFromBytes(data []byte) *ByteStream {
	return &ByteStream{data: data}
}

// WriteByte appends a single byte. Always succeeds.
func (bs *ByteStream) WriteByte(b byte) {
	bs.data = append(bs.data, b)
}

// WriteBytes appends raw bytes. Always succeeds.
func (bs *ByteStream) WriteBytes(b []byte) {
	bs.data = append(bs.data, b...)
}

// ReadByte consumes and returns the next byte.
func (bs *ByteStream) ReadByte() (byte, error) {
	if bs.readPos >= len(bs.data) {
		return 0, newError(KindStreamEnded, "ByteStream.ReadByte", nil)
	}
	b := bs.data[bs.readPos]
	bs.readPos++
	return b, nil
}

// ReadBytes consumes and returns the next n bytes. The returned slice
// aliases the stream's backing array and must not be mutated by the caller.
func (bs *ByteStream) ReadBytes(n int) ([]byte, error) {
	if bs.readPos+n > len(bs.data) {
		return nil, newError(KindStreamEnded, "ByteStream.ReadBytes", nil)
	}
	b := bs.data[bs.readPos : bs.readPos+n]
	bs.readPos += n
	return b, nil
}

// Leftover returns the unread tail of the buffer.
func (bs *ByteStream) Leftover() []byte {
	return bs.data[bs.readPos:]
}

// HexData renders the full written buffer (not just the unread tail) as
// lowercase hex, matching the wire format's canonical hex casing.
func (bs *ByteStream) HexData() string {
	return hex.EncodeToString(bs.data)
}

// IntoBytes returns the full written buffer.
func (bs *ByteStream) IntoBytes() []byte {
	return bs.data
}

// Len reports the total number of bytes written so far.
func (bs *ByteStream) Len() int {
	return len(bs.data)
}
