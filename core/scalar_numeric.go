package core

import (
	"encoding/binary"
	"math"
	"math/big"
)

// EncodeBool writes a single 0x00/0x01 byte.
func EncodeBool(bs *ByteStream, v bool) {
	if v {
		bs.WriteByte(1)
	} else {
		bs.WriteByte(0)
	}
}

// DecodeBool reads a single byte and requires it to be exactly 0x00 or 0x01.
func DecodeBool(bs *ByteStream) (bool, error) {
	b, err := bs.ReadByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, newErrorf(KindInvalidData, "DecodeBool", "invalid bool byte 0x%02x", b)
	}
}

func EncodeInt8(bs *ByteStream, v int8)   { bs.WriteByte(byte(v)) }
func EncodeUint8(bs *ByteStream, v uint8) { bs.WriteByte(v) }

func DecodeInt8(bs *ByteStream) (int8, error) {
	b, err := bs.ReadByte()
	return int8(b), err
}

func DecodeUint8(bs *ByteStream) (uint8, error) {
	return bs.ReadByte()
}

func EncodeInt16(bs *ByteStream, v int16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], uint16(v))
	bs.WriteBytes(buf[:])
}

func EncodeUint16(bs *ByteStream, v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	bs.WriteBytes(buf[:])
}

func DecodeInt16(bs *ByteStream) (int16, error) {
	b, err := bs.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(b)), nil
}

func DecodeUint16(bs *ByteStream) (uint16, error) {
	b, err := bs.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func EncodeInt32(bs *ByteStream, v int32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	bs.WriteBytes(buf[:])
}

func EncodeUint32(bs *ByteStream, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	bs.WriteBytes(buf[:])
}

func DecodeInt32(bs *ByteStream) (int32, error) {
	b, err := bs.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func DecodeUint32(bs *ByteStream) (uint32, error) {
	b, err := bs.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func EncodeInt64(bs *ByteStream, v int64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	bs.WriteBytes(buf[:])
}

func EncodeUint64(bs *ByteStream, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	bs.WriteBytes(buf[:])
}

func DecodeInt64(bs *ByteStream) (int64, error) {
	b, err := bs.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

func DecodeUint64(bs *ByteStream) (uint64, error) {
	b, err := bs.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// EncodeInt128 writes the two's-complement little-endian 16-byte
// representation of v, which must fit in 128 bits signed.
func EncodeInt128(bs *ByteStream, v *big.Int) {
	bs.WriteBytes(bigIntToLE128(v, true))
}

func EncodeUint128(bs *ByteStream, v *big.Int) {
	bs.WriteBytes(bigIntToLE128(v, false))
}

func DecodeInt128(bs *ByteStream) (*big.Int, error) {
	b, err := bs.ReadBytes(16)
	if err != nil {
		return nil, err
	}
	return le128ToBigInt(b, true), nil
}

func DecodeUint128(bs *ByteStream) (*big.Int, error) {
	b, err := bs.ReadBytes(16)
	if err != nil {
		return nil, err
	}
	return le128ToBigInt(b, false), nil
}

// bigIntToLE128 renders v as 16 little-endian bytes, two's complement if
// signed is true. Negative values for unsigned callers are a programmer
// error and are treated as zero since the ABI engine validates range
// before reaching here.
func bigIntToLE128(v *big.Int, signed bool) []byte {
	var u big.Int
	if signed && v.Sign() < 0 {
		// two's complement: (1<<128) + v
		mod := new(big.Int).Lsh(big.NewInt(1), 128)
		u.Add(mod, v)
	} else if v.Sign() >= 0 {
		u.Set(v)
	}
	be := u.FillBytes(make([]byte, 16))
	out := make([]byte, 16)
	for i := range be {
		out[i] = be[15-i]
	}
	return out
}

func le128ToBigInt(b []byte, signed bool) *big.Int {
	be := make([]byte, 16)
	for i := range b {
		be[15-i] = b[i]
	}
	u := new(big.Int).SetBytes(be)
	if signed && be[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), 128)
		u.Sub(u, mod)
	}
	return u
}

func EncodeFloat32(bs *ByteStream, v float32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
	bs.WriteBytes(buf[:])
}

func DecodeFloat32(bs *ByteStream) (float32, error) {
	b, err := bs.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

func EncodeFloat64(bs *ByteStream, v float64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	bs.WriteBytes(buf[:])
}

func DecodeFloat64(bs *ByteStream) (float64, error) {
	b, err := bs.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// EncodeFloat128 writes the raw 16-byte little-endian payload as-is: the
// built-in set requires a float128 slot but Go has no native quad-float
// type, so the value is carried as opaque bytes (matching how ABI users
// treat float128 as an inert payload in practice).
func EncodeFloat128(bs *ByteStream, v [16]byte) {
	bs.WriteBytes(v[:])
}

func DecodeFloat128(bs *ByteStream) ([16]byte, error) {
	var out [16]byte
	b, err := bs.ReadBytes(16)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}
