package core

import (
	"crypto/sha256"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"
)

// KeyType identifies the elliptic curve (or WebAuthn) family a crypto
// value belongs to, carried as a one-byte tag on the wire and as an
// infix in the textual encoding ("K1"/"R1"/"WA").
type KeyType uint8

const (
	KeyTypeK1 KeyType = iota
	KeyTypeR1
	KeyTypeWebAuthn
)

func (k KeyType) prefix() string {
	switch k {
	case KeyTypeK1:
		return "K1"
	case KeyTypeR1:
		return "R1"
	case KeyTypeWebAuthn:
		return "WA"
	default:
		return "??"
	}
}

func keyTypeFromIndex(i uint8) (KeyType, error) {
	switch i {
	case 0:
		return KeyTypeK1, nil
	case 1:
		return KeyTypeR1, nil
	case 2:
		return KeyTypeWebAuthn, nil
	default:
		return 0, newErrorf(KindInvalidData, "keyTypeFromIndex", "invalid key type index: %d", i)
	}
}

// cryptoData is the shared shape behind PublicKey, PrivateKey and
// Signature: a key-type tag plus a fixed-size payload, textually encoded
// as "<DISPLAYPREFIX>_<K1|R1>_<base58(payload+ripemd160check)>" with
// legacy "EOS..." (public key) and WIF (private key) formats also
// accepted on parse.
type cryptoData struct {
	keyType KeyType
	data    []byte
}

func (d cryptoData) encodeString(displayPrefix string) string {
	return displayPrefix + "_" + keyDataToString(d.data, d.keyType.prefix())
}

func keyDataToString(k []byte, prefix string) string {
	h := ripemd160.New()
	h.Write(k)
	h.Write([]byte(prefix))
	digest := h.Sum(nil)

	data := make([]byte, 0, len(k)+4)
	data = append(data, k...)
	data = append(data, digest[:4]...)
	return base58.Encode(data)
}

func stringToKeyData(encData string, prefix string) ([]byte, error) {
	data, err := base58.Decode(encData)
	if err != nil {
		return nil, newErrorf(KindInvalidValue, "stringToKeyData", "error while decoding base58 data")
	}
	if len(data) < 5 {
		return nil, newErrorf(KindInvalidValue, "stringToKeyData",
			"invalid length for decoded base58 crypto data, needs to be at least 5, is %d", len(data))
	}
	payload := data[:len(data)-4]
	expected := data[len(data)-4:]

	h := ripemd160.New()
	h.Write(payload)
	if prefix != "" {
		h.Write([]byte(prefix))
	}
	digest := h.Sum(nil)
	actual := digest[:4]

	if string(actual) != string(expected) {
		return nil, newErrorf(KindInvalidValue, "stringToKeyData", "invalid checksum for crypto data")
	}
	return payload, nil
}

func fromWIF(encData string) ([]byte, error) {
	data, err := base58.Decode(encData)
	if err != nil {
		return nil, newErrorf(KindInvalidValue, "fromWIF", "error while decoding base58 data")
	}
	if len(data) < 5 {
		return nil, newErrorf(KindInvalidValue, "fromWIF",
			"invalid length for decoded base58 crypto data, needs to be at least 5, is %d", len(data))
	}
	payload := data[:len(data)-4]
	expected := data[len(data)-4:]

	d1 := sha256.Sum256(payload)
	d2 := sha256.Sum256(d1[:])

	if string(d1[:4]) != string(expected) && string(d2[:4]) != string(expected) {
		return nil, newErrorf(KindInvalidValue, "fromWIF", "invalid checksum for crypto data")
	}
	return data[1 : len(data)-4], nil
}

func parseCryptoData(s, displayPrefix string, size int) (cryptoData, error) {
	switch {
	case displayPrefix == "PUB" && strings.HasPrefix(s, "EOS"):
		payload, err := stringToKeyData(s[3:], "")
		if err != nil {
			return cryptoData{}, err
		}
		return cryptoData{keyType: KeyTypeK1, data: mustFit(payload, size, "PUB")}, nil

	case displayPrefix == "PVT" && !strings.Contains(s, "_"):
		payload, err := fromWIF(s)
		if err != nil {
			return cryptoData{}, err
		}
		return cryptoData{keyType: KeyTypeK1, data: mustFit(payload, size, "PVT")}, nil

	case strings.HasPrefix(s, displayPrefix+"_K1_"):
		payload, err := stringToKeyData(s[len(displayPrefix)+4:], KeyTypeK1.prefix())
		if err != nil {
			return cryptoData{}, err
		}
		return cryptoData{keyType: KeyTypeK1, data: mustFit(payload, size, displayPrefix)}, nil

	case strings.HasPrefix(s, displayPrefix+"_R1_"):
		payload, err := stringToKeyData(s[len(displayPrefix)+4:], KeyTypeR1.prefix())
		if err != nil {
			return cryptoData{}, err
		}
		return cryptoData{keyType: KeyTypeR1, data: mustFit(payload, size, displayPrefix)}, nil

	case strings.HasPrefix(s, displayPrefix+"_WA_"):
		return cryptoData{}, newErrorf(KindInvalidValue, "parseCryptoData", "WebAuthn keys are not supported")

	default:
		return cryptoData{}, newErrorf(KindInvalidValue, "parseCryptoData", "not crypto data: %q", s)
	}
}

func mustFit(data []byte, size int, what string) []byte {
	if len(data) != size {
		return nil
	}
	return data
}

// PublicKey is a 33-byte compressed elliptic-curve point (or an opaque
// WebAuthn credential id of the same nominal slot).
type PublicKey struct{ cryptoData }

func NewPublicKeyFromString(s string) (PublicKey, error) {
	d, err := parseCryptoData(s, "PUB", 33)
	if err != nil {
		return PublicKey{}, err
	}
	if d.data == nil {
		return PublicKey{}, newErrorf(KindInvalidValue, "NewPublicKeyFromString", "wrong size for public key, needs to be 33")
	}
	// Catch a malformed-but-right-length K1 key at parse time. This is
	// advisory: the binary wire path (DecodePublicKey) never performs
	// this check, so a key that was never validated this way still
	// round-trips through ToBin/FromBin.
	if d.keyType == KeyTypeK1 {
		if _, err := btcec.ParsePubKey(d.data); err != nil {
			return PublicKey{}, newErrorf(KindInvalidValue, "NewPublicKeyFromString", "not a valid secp256k1 point: %v", err)
		}
	}
	return PublicKey{d}, nil
}

func NewPublicKey(keyType KeyType, data [33]byte) PublicKey {
	return PublicKey{cryptoData{keyType: keyType, data: data[:]}}
}

func (k PublicKey) KeyType() KeyType { return k.keyType }
func (k PublicKey) Data() []byte     { return k.data }
func (k PublicKey) String() string   { return k.encodeString("PUB") }

// PrivateKey is a 32-byte elliptic-curve scalar.
type PrivateKey struct{ cryptoData }

func NewPrivateKeyFromString(s string) (PrivateKey, error) {
	d, err := parseCryptoData(s, "PVT", 32)
	if err != nil {
		return PrivateKey{}, err
	}
	if d.data == nil {
		return PrivateKey{}, newErrorf(KindInvalidValue, "NewPrivateKeyFromString", "wrong size for private key, needs to be 32")
	}
	return PrivateKey{d}, nil
}

func NewPrivateKey(keyType KeyType, data [32]byte) PrivateKey {
	return PrivateKey{cryptoData{keyType: keyType, data: data[:]}}
}

func (k PrivateKey) KeyType() KeyType { return k.keyType }
func (k PrivateKey) Data() []byte     { return k.data }
func (k PrivateKey) String() string   { return k.encodeString("PVT") }

// Signature is a 65-byte recoverable elliptic-curve signature.
type Signature struct{ cryptoData }

func NewSignatureFromString(s string) (Signature, error) {
	d, err := parseCryptoData(s, "SIG", 65)
	if err != nil {
		return Signature{}, err
	}
	if d.data == nil {
		return Signature{}, newErrorf(KindInvalidValue, "NewSignatureFromString", "wrong size for signature, needs to be 65")
	}
	return Signature{d}, nil
}

func NewSignature(keyType KeyType, data [65]byte) Signature {
	return Signature{cryptoData{keyType: keyType, data: data[:]}}
}

func (k Signature) KeyType() KeyType { return k.keyType }
func (k Signature) Data() []byte     { return k.data }
func (k Signature) String() string   { return k.encodeString("SIG") }

// Wire format: a one-byte KeyType tag followed by the fixed-size payload.
// WebAuthn payloads are variable length on the real chain; this codec only
// round-trips the K1/R1 fixed sizes used by the builtin type table.

func EncodePublicKey(bs *ByteStream, v PublicKey) {
	bs.WriteByte(byte(v.keyType))
	bs.WriteBytes(v.data)
}

func DecodePublicKey(bs *ByteStream) (PublicKey, error) {
	t, err := bs.ReadByte()
	if err != nil {
		return PublicKey{}, err
	}
	kt, err := keyTypeFromIndex(t)
	if err != nil {
		return PublicKey{}, err
	}
	data, err := bs.ReadBytes(33)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{cryptoData{keyType: kt, data: append([]byte(nil), data...)}}, nil
}

func EncodePrivateKey(bs *ByteStream, v PrivateKey) {
	bs.WriteByte(byte(v.keyType))
	bs.WriteBytes(v.data)
}

func DecodePrivateKey(bs *ByteStream) (PrivateKey, error) {
	t, err := bs.ReadByte()
	if err != nil {
		return PrivateKey{}, err
	}
	kt, err := keyTypeFromIndex(t)
	if err != nil {
		return PrivateKey{}, err
	}
	data, err := bs.ReadBytes(32)
	if err != nil {
		return PrivateKey{}, err
	}
	return PrivateKey{cryptoData{keyType: kt, data: append([]byte(nil), data...)}}, nil
}

func EncodeSignature(bs *ByteStream, v Signature) {
	bs.WriteByte(byte(v.keyType))
	bs.WriteBytes(v.data)
}

func DecodeSignature(bs *ByteStream) (Signature, error) {
	t, err := bs.ReadByte()
	if err != nil {
		return Signature{}, err
	}
	kt, err := keyTypeFromIndex(t)
	if err != nil {
		return Signature{}, err
	}
	data, err := bs.ReadBytes(65)
	if err != nil {
		return Signature{}, err
	}
	return Signature{cryptoData{keyType: kt, data: append([]byte(nil), data...)}}, nil
}
