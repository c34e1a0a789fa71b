package core

import (
	"io"
	"math"

	mvarint "github.com/multiformats/go-varint"
)

// EncodeVaruint32 writes v as LEB128: 7 payload bits per byte, continuation
// bit in the MSB, little-endian byte order. The mechanical byte shuffling
// is delegated to multiformats/go-varint (an unbounded-width LEB128
// implementation); the spec's own ceiling is 32 bits / 5 bytes, which
// every uint32 trivially satisfies on encode.
func EncodeVaruint32(bs *ByteStream, v uint32) {
	buf := make([]byte, mvarint.UvarintSize(uint64(v)))
	n := mvarint.PutUvarint(buf, uint64(v))
	bs.WriteBytes(buf[:n])
}

// DecodeVaruint32 reads a LEB128 varuint and fails if decoding it would
// require more than 32 bits (the library itself is unbounded, so the
// ceiling is enforced here rather than relying on it to fail first).
func DecodeVaruint32(bs *ByteStream) (uint32, error) {
	br := &byteStreamReader{bs: bs}
	v, err := mvarint.ReadUvarint(br)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, newError(ErrStreamEnded.Kind, "DecodeVaruint32", err)
		}
		return 0, newError(ErrInvalidData.Kind, "DecodeVaruint32", err)
	}
	if v > math.MaxUint32 {
		return 0, newErrorf(KindInvalidData, "DecodeVaruint32", "varuint32 overflow: %d exceeds 32 bits", v)
	}
	return uint32(v), nil
}

// EncodeVarint32 zig-zag encodes n then writes it as a varuint32.
func EncodeVarint32(bs *ByteStream, n int32) {
	u := uint32(n<<1) ^ uint32(n>>31)
	EncodeVaruint32(bs, u)
}

// DecodeVarint32 inverts the zig-zag mapping after reading a varuint32.
func DecodeVarint32(bs *ByteStream) (int32, error) {
	u, err := DecodeVaruint32(bs)
	if err != nil {
		return 0, err
	}
	n := int32(u>>1) ^ -int32(u&1)
	return n, nil
}

// byteStreamReader adapts ByteStream to io.ByteReader so the varint
// library can consume it one byte at a time without copying.
type byteStreamReader struct {
	bs *ByteStream
}

func (r *byteStreamReader) ReadByte() (byte, error) {
	b, err := r.bs.ReadByte()
	if err != nil {
		return 0, io.EOF
	}
	return b, nil
}

var _ io.ByteReader = (*byteStreamReader)(nil)
