package core

import "unicode/utf8"

// EncodeBytes writes a varuint32 length prefix followed by the raw bytes.
func EncodeBytes(bs *ByteStream, v []byte) {
	EncodeVaruint32(bs, uint32(len(v)))
	bs.WriteBytes(v)
}

// DecodeBytes reads a varuint32 length prefix then that many raw bytes.
func DecodeBytes(bs *ByteStream) ([]byte, error) {
	n, err := DecodeVaruint32(bs)
	if err != nil {
		return nil, err
	}
	return bs.ReadBytes(int(n))
}

// EncodeString writes a varuint32 byte-length prefix followed by the raw
// UTF-8 bytes of v.
func EncodeString(bs *ByteStream, v string) {
	EncodeBytes(bs, []byte(v))
}

// DecodeString reads a length-prefixed byte string and fails if it is not
// valid UTF-8.
func DecodeString(bs *ByteStream) (string, error) {
	b, err := DecodeBytes(bs)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", newErrorf(KindInvalidData, "DecodeString", "invalid UTF-8")
	}
	return string(b), nil
}

// Checksum160, Checksum256 and Checksum512 are fixed-size raw byte
// payloads with no length prefix on the wire.
type (
	Checksum160 [20]byte
	Checksum256 [32]byte
	Checksum512 [64]byte
)

func EncodeChecksum160(bs *ByteStream, v Checksum160) { bs.WriteBytes(v[:]) }
func EncodeChecksum256(bs *ByteStream, v Checksum256) { bs.WriteBytes(v[:]) }
func EncodeChecksum512(bs *ByteStream, v Checksum512) { bs.WriteBytes(v[:]) }

func DecodeChecksum160(bs *ByteStream) (Checksum160, error) {
	var out Checksum160
	b, err := bs.ReadBytes(len(out))
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

func DecodeChecksum256(bs *ByteStream) (Checksum256, error) {
	var out Checksum256
	b, err := bs.ReadBytes(len(out))
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

func DecodeChecksum512(bs *ByteStream) (Checksum512, error) {
	var out Checksum512
	b, err := bs.ReadBytes(len(out))
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}
