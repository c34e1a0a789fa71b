package core

import (
	"encoding/hex"
	"encoding/json"
	"math/big"
	"strconv"
)

// ValueKind enumerates every built-in Antelope scalar the codec knows how
// to transcode. It mirrors the type list in the Antelope ABI serializer
// (see AntelopeIO/leap libraries/chain/abi_serializer.cpp) rather than the
// types table of any one ABI document: an ABI's "types" section only ever
// aliases into this fixed set.
type ValueKind int

const (
	KindBool ValueKind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt128
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint128
	KindVarInt32
	KindVarUint32
	KindFloat32
	KindFloat64
	KindFloat128
	KindBytes
	KindString
	KindTimePoint
	KindTimePointSec
	KindBlockTimestampType
	KindChecksum160
	KindChecksum256
	KindChecksum512
	KindPublicKey
	KindPrivateKey
	KindSignature
	KindName
	KindSymbolCode
	KindSymbol
	KindAsset
	KindExtendedAsset
)

var valueKindNames = map[ValueKind]string{
	KindBool:               "bool",
	KindInt8:               "int8",
	KindInt16:              "int16",
	KindInt32:              "int32",
	KindInt64:              "int64",
	KindInt128:             "int128",
	KindUint8:              "uint8",
	KindUint16:             "uint16",
	KindUint32:             "uint32",
	KindUint64:             "uint64",
	KindUint128:            "uint128",
	KindVarInt32:           "varint32",
	KindVarUint32:          "varuint32",
	KindFloat32:            "float32",
	KindFloat64:            "float64",
	KindFloat128:           "float128",
	KindBytes:              "bytes",
	KindString:             "string",
	KindTimePoint:          "time_point",
	KindTimePointSec:       "time_point_sec",
	KindBlockTimestampType: "block_timestamp_type",
	KindChecksum160:        "checksum160",
	KindChecksum256:        "checksum256",
	KindChecksum512:        "checksum512",
	KindPublicKey:          "public_key",
	KindPrivateKey:         "private_key",
	KindSignature:          "signature",
	KindName:               "name",
	KindSymbolCode:         "symbol_code",
	KindSymbol:             "symbol",
	KindAsset:              "asset",
	KindExtendedAsset:      "extended_asset",
}

var valueKindByName = func() map[string]ValueKind {
	m := make(map[string]ValueKind, len(valueKindNames))
	for k, v := range valueKindNames {
		m[v] = k
	}
	return m
}()

func (k ValueKind) String() string {
	if s, ok := valueKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ValueKindFromName resolves one of the builtin type names (the
// fundamental types every ABI "types" alias must eventually bottom out
// at) to its ValueKind, or fails if name isn't one of them.
func ValueKindFromName(name string) (ValueKind, error) {
	if k, ok := valueKindByName[name]; ok {
		return k, nil
	}
	return 0, newErrorf(KindInvalidValue, "ValueKindFromName", "unknown builtin type %q", name)
}

// AntelopeValue is a closed tagged union over every builtin scalar type.
// Exactly one of the typed fields is meaningful, selected by Kind.
type AntelopeValue struct {
	Kind ValueKind

	boolVal   bool
	i64Val    int64
	u64Val    uint64
	bigVal    *big.Int
	f32Val    float32
	f64Val    float64
	f128Val   [16]byte
	bytesVal  []byte
	strVal    string
	checksum  []byte
	pubKey    PublicKey
	privKey   PrivateKey
	sig       Signature
	name      Name
	symbol    Symbol
	symCode   SymbolCode
	asset     Asset
	extAsset  ExtendedAsset
}

func NewBoolValue(v bool) AntelopeValue     { return AntelopeValue{Kind: KindBool, boolVal: v} }
func NewInt8Value(v int8) AntelopeValue     { return AntelopeValue{Kind: KindInt8, i64Val: int64(v)} }
func NewInt16Value(v int16) AntelopeValue   { return AntelopeValue{Kind: KindInt16, i64Val: int64(v)} }
func NewInt32Value(v int32) AntelopeValue   { return AntelopeValue{Kind: KindInt32, i64Val: int64(v)} }
func NewInt64Value(v int64) AntelopeValue   { return AntelopeValue{Kind: KindInt64, i64Val: v} }
func NewInt128Value(v *big.Int) AntelopeValue {
	return AntelopeValue{Kind: KindInt128, bigVal: v}
}
func NewUint8Value(v uint8) AntelopeValue   { return AntelopeValue{Kind: KindUint8, u64Val: uint64(v)} }
func NewUint16Value(v uint16) AntelopeValue { return AntelopeValue{Kind: KindUint16, u64Val: uint64(v)} }
func NewUint32Value(v uint32) AntelopeValue { return AntelopeValue{Kind: KindUint32, u64Val: uint64(v)} }
func NewUint64Value(v uint64) AntelopeValue { return AntelopeValue{Kind: KindUint64, u64Val: v} }
func NewUint128Value(v *big.Int) AntelopeValue {
	return AntelopeValue{Kind: KindUint128, bigVal: v}
}
func NewVarInt32Value(v int32) AntelopeValue  { return AntelopeValue{Kind: KindVarInt32, i64Val: int64(v)} }
func NewVarUint32Value(v uint32) AntelopeValue {
	return AntelopeValue{Kind: KindVarUint32, u64Val: uint64(v)}
}
func NewFloat32Value(v float32) AntelopeValue { return AntelopeValue{Kind: KindFloat32, f32Val: v} }
func NewFloat64Value(v float64) AntelopeValue { return AntelopeValue{Kind: KindFloat64, f64Val: v} }
func NewFloat128Value(v [16]byte) AntelopeValue {
	return AntelopeValue{Kind: KindFloat128, f128Val: v}
}
func NewBytesValue(v []byte) AntelopeValue  { return AntelopeValue{Kind: KindBytes, bytesVal: v} }
func NewStringValue(v string) AntelopeValue { return AntelopeValue{Kind: KindString, strVal: v} }
func NewTimePointValue(v TimePoint) AntelopeValue {
	return AntelopeValue{Kind: KindTimePoint, i64Val: v.Micros()}
}
func NewTimePointSecValue(v TimePointSec) AntelopeValue {
	return AntelopeValue{Kind: KindTimePointSec, u64Val: uint64(v.Uint32())}
}
func NewBlockTimestampValue(v BlockTimestampType) AntelopeValue {
	return AntelopeValue{Kind: KindBlockTimestampType, u64Val: uint64(v.Uint32())}
}
func NewChecksum160Value(v Checksum160) AntelopeValue {
	return AntelopeValue{Kind: KindChecksum160, checksum: append([]byte(nil), v[:]...)}
}
func NewChecksum256Value(v Checksum256) AntelopeValue {
	return AntelopeValue{Kind: KindChecksum256, checksum: append([]byte(nil), v[:]...)}
}
func NewChecksum512Value(v Checksum512) AntelopeValue {
	return AntelopeValue{Kind: KindChecksum512, checksum: append([]byte(nil), v[:]...)}
}
func NewPublicKeyValue(v PublicKey) AntelopeValue { return AntelopeValue{Kind: KindPublicKey, pubKey: v} }
func NewPrivateKeyValue(v PrivateKey) AntelopeValue {
	return AntelopeValue{Kind: KindPrivateKey, privKey: v}
}
func NewSignatureValue(v Signature) AntelopeValue { return AntelopeValue{Kind: KindSignature, sig: v} }
func NewNameValue(v Name) AntelopeValue            { return AntelopeValue{Kind: KindName, name: v} }
func NewSymbolCodeValue(v SymbolCode) AntelopeValue {
	return AntelopeValue{Kind: KindSymbolCode, symCode: v}
}
func NewSymbolValue(v Symbol) AntelopeValue { return AntelopeValue{Kind: KindSymbol, symbol: v} }
func NewAssetValue(v Asset) AntelopeValue   { return AntelopeValue{Kind: KindAsset, asset: v} }
func NewExtendedAssetValue(v ExtendedAsset) AntelopeValue {
	return AntelopeValue{Kind: KindExtendedAsset, extAsset: v}
}

// AsBool and friends unwrap the typed payload; callers are expected to
// have checked Kind first (the ABI engine always does, since it dispatches
// on the schema's declared type, not on introspecting the value).
func (v AntelopeValue) AsBool() bool         { return v.boolVal }
func (v AntelopeValue) AsInt64() int64       { return v.i64Val }
func (v AntelopeValue) AsUint64() uint64     { return v.u64Val }
func (v AntelopeValue) AsBigInt() *big.Int   { return v.bigVal }
func (v AntelopeValue) AsFloat32() float32   { return v.f32Val }
func (v AntelopeValue) AsFloat64() float64   { return v.f64Val }
func (v AntelopeValue) AsFloat128() [16]byte { return v.f128Val }
func (v AntelopeValue) AsBytes() []byte      { return v.bytesVal }
func (v AntelopeValue) AsString() string     { return v.strVal }
func (v AntelopeValue) AsName() Name         { return v.name }
func (v AntelopeValue) AsSymbol() Symbol     { return v.symbol }
func (v AntelopeValue) AsSymbolCode() SymbolCode   { return v.symCode }
func (v AntelopeValue) AsAsset() Asset             { return v.asset }
func (v AntelopeValue) AsExtendedAsset() ExtendedAsset { return v.extAsset }
func (v AntelopeValue) AsPublicKey() PublicKey     { return v.pubKey }
func (v AntelopeValue) AsPrivateKey() PrivateKey   { return v.privKey }
func (v AntelopeValue) AsSignature() Signature     { return v.sig }

// ValueFromString parses the textual representation appropriate to kind.
// This is used for CLI scalar input and by ValueFromJSON for scalars whose
// JSON form is a string; JSON object trees go through ValueFromJSON instead.
func ValueFromString(kind ValueKind, repr string) (AntelopeValue, error) {
	switch kind {
	case KindBool:
		b, err := strconv.ParseBool(repr)
		if err != nil {
			return AntelopeValue{}, newErrorf(KindInvalidValue, "ValueFromString", "invalid bool %q", repr)
		}
		return NewBoolValue(b), nil
	case KindInt8:
		n, err := strconv.ParseInt(repr, 10, 8)
		if err != nil {
			return AntelopeValue{}, newErrorf(KindInvalidValue, "ValueFromString", "invalid int8 %q", repr)
		}
		return NewInt8Value(int8(n)), nil
	case KindInt16:
		n, err := strconv.ParseInt(repr, 10, 16)
		if err != nil {
			return AntelopeValue{}, newErrorf(KindInvalidValue, "ValueFromString", "invalid int16 %q", repr)
		}
		return NewInt16Value(int16(n)), nil
	case KindInt32:
		n, err := strconv.ParseInt(repr, 10, 32)
		if err != nil {
			return AntelopeValue{}, newErrorf(KindInvalidValue, "ValueFromString", "invalid int32 %q", repr)
		}
		return NewInt32Value(int32(n)), nil
	case KindInt64:
		n, err := strconv.ParseInt(repr, 10, 64)
		if err != nil {
			return AntelopeValue{}, newErrorf(KindInvalidValue, "ValueFromString", "invalid int64 %q", repr)
		}
		return NewInt64Value(n), nil
	case KindInt128:
		n, ok := new(big.Int).SetString(repr, 10)
		if !ok {
			return AntelopeValue{}, newErrorf(KindInvalidValue, "ValueFromString", "invalid int128 %q", repr)
		}
		return NewInt128Value(n), nil
	case KindUint8:
		n, err := strconv.ParseUint(repr, 10, 8)
		if err != nil {
			return AntelopeValue{}, newErrorf(KindInvalidValue, "ValueFromString", "invalid uint8 %q", repr)
		}
		return NewUint8Value(uint8(n)), nil
	case KindUint16:
		n, err := strconv.ParseUint(repr, 10, 16)
		if err != nil {
			return AntelopeValue{}, newErrorf(KindInvalidValue, "ValueFromString", "invalid uint16 %q", repr)
		}
		return NewUint16Value(uint16(n)), nil
	case KindUint32:
		n, err := strconv.ParseUint(repr, 10, 32)
		if err != nil {
			return AntelopeValue{}, newErrorf(KindInvalidValue, "ValueFromString", "invalid uint32 %q", repr)
		}
		return NewUint32Value(uint32(n)), nil
	case KindUint64:
		n, err := strconv.ParseUint(repr, 10, 64)
		if err != nil {
			return AntelopeValue{}, newErrorf(KindInvalidValue, "ValueFromString", "invalid uint64 %q", repr)
		}
		return NewUint64Value(n), nil
	case KindUint128:
		n, ok := new(big.Int).SetString(repr, 10)
		if !ok || n.Sign() < 0 {
			return AntelopeValue{}, newErrorf(KindInvalidValue, "ValueFromString", "invalid uint128 %q", repr)
		}
		return NewUint128Value(n), nil
	case KindVarInt32:
		n, err := strconv.ParseInt(repr, 10, 32)
		if err != nil {
			return AntelopeValue{}, newErrorf(KindInvalidValue, "ValueFromString", "invalid varint32 %q", repr)
		}
		return NewVarInt32Value(int32(n)), nil
	case KindVarUint32:
		n, err := strconv.ParseUint(repr, 10, 32)
		if err != nil {
			return AntelopeValue{}, newErrorf(KindInvalidValue, "ValueFromString", "invalid varuint32 %q", repr)
		}
		return NewVarUint32Value(uint32(n)), nil
	case KindFloat32:
		f, err := strconv.ParseFloat(repr, 32)
		if err != nil {
			return AntelopeValue{}, newErrorf(KindInvalidValue, "ValueFromString", "invalid float32 %q", repr)
		}
		return NewFloat32Value(float32(f)), nil
	case KindFloat64:
		f, err := strconv.ParseFloat(repr, 64)
		if err != nil {
			return AntelopeValue{}, newErrorf(KindInvalidValue, "ValueFromString", "invalid float64 %q", repr)
		}
		return NewFloat64Value(f), nil
	case KindFloat128:
		b, err := hex.DecodeString(repr)
		if err != nil || len(b) != 16 {
			return AntelopeValue{}, newErrorf(KindHex, "ValueFromString", "invalid float128 hex %q", repr)
		}
		var f [16]byte
		copy(f[:], b)
		return NewFloat128Value(f), nil
	case KindBytes:
		b, err := hex.DecodeString(repr)
		if err != nil {
			return AntelopeValue{}, newErrorf(KindHex, "ValueFromString", "invalid hex bytes %q", repr)
		}
		return NewBytesValue(b), nil
	case KindString:
		return NewStringValue(repr), nil
	case KindTimePoint:
		t, err := NewTimePointFromString(repr)
		if err != nil {
			return AntelopeValue{}, err
		}
		return NewTimePointValue(t), nil
	case KindTimePointSec:
		t, err := NewTimePointSecFromString(repr)
		if err != nil {
			return AntelopeValue{}, err
		}
		return NewTimePointSecValue(t), nil
	case KindBlockTimestampType:
		t, err := NewBlockTimestampFromString(repr)
		if err != nil {
			return AntelopeValue{}, err
		}
		return NewBlockTimestampValue(t), nil
	case KindChecksum160:
		c, err := hexToArray20(repr)
		if err != nil {
			return AntelopeValue{}, err
		}
		return NewChecksum160Value(c), nil
	case KindChecksum256:
		c, err := hexToArray32(repr)
		if err != nil {
			return AntelopeValue{}, err
		}
		return NewChecksum256Value(c), nil
	case KindChecksum512:
		c, err := hexToArray64(repr)
		if err != nil {
			return AntelopeValue{}, err
		}
		return NewChecksum512Value(c), nil
	case KindPublicKey:
		k, err := NewPublicKeyFromString(repr)
		if err != nil {
			return AntelopeValue{}, err
		}
		return NewPublicKeyValue(k), nil
	case KindPrivateKey:
		k, err := NewPrivateKeyFromString(repr)
		if err != nil {
			return AntelopeValue{}, err
		}
		return NewPrivateKeyValue(k), nil
	case KindSignature:
		s, err := NewSignatureFromString(repr)
		if err != nil {
			return AntelopeValue{}, err
		}
		return NewSignatureValue(s), nil
	case KindName:
		n, err := NewName(repr)
		if err != nil {
			return AntelopeValue{}, err
		}
		return NewNameValue(n), nil
	case KindSymbolCode:
		c, err := NewSymbolCode(repr)
		if err != nil {
			return AntelopeValue{}, err
		}
		return NewSymbolCodeValue(c), nil
	case KindSymbol:
		s, err := NewSymbol(repr)
		if err != nil {
			return AntelopeValue{}, err
		}
		return NewSymbolValue(s), nil
	case KindAsset:
		a, err := NewAssetFromString(repr)
		if err != nil {
			return AntelopeValue{}, err
		}
		return NewAssetValue(a), nil
	case KindExtendedAsset:
		var raw json.RawMessage = json.RawMessage(repr)
		return ValueFromJSON(kind, raw)
	default:
		return AntelopeValue{}, newErrorf(KindInvalidValue, "ValueFromString", "unsupported type %s", kind)
	}
}

func hexToArray20(s string) (Checksum160, error) {
	var out Checksum160
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != len(out) {
		return out, newErrorf(KindHex, "hexToArray20", "invalid checksum160 hex %q", s)
	}
	copy(out[:], b)
	return out, nil
}

func hexToArray32(s string) (Checksum256, error) {
	var out Checksum256
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != len(out) {
		return out, newErrorf(KindHex, "hexToArray32", "invalid checksum256 hex %q", s)
	}
	copy(out[:], b)
	return out, nil
}

func hexToArray64(s string) (Checksum512, error) {
	var out Checksum512
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != len(out) {
		return out, newErrorf(KindHex, "hexToArray64", "invalid checksum512 hex %q", s)
	}
	copy(out[:], b)
	return out, nil
}

// ToJSON renders v the way the reference ABI serializer does: 64- and
// 128-bit integers as JSON strings (JSON numbers can't carry them
// losslessly), bytes/checksums as uppercase hex, everything else in its
// natural JSON shape.
func (v AntelopeValue) ToJSON() (json.RawMessage, error) {
	marshal := func(x any) (json.RawMessage, error) {
		b, err := json.Marshal(x)
		if err != nil {
			return nil, newErrorf(KindEncode, "AntelopeValue.ToJSON", "%v", err)
		}
		return b, nil
	}
	switch v.Kind {
	case KindBool:
		return marshal(v.boolVal)
	case KindInt8, KindInt16, KindInt32:
		return marshal(v.i64Val)
	case KindInt64:
		return marshal(strconv.FormatInt(v.i64Val, 10))
	case KindInt128:
		return marshal(v.bigVal.String())
	case KindUint8, KindUint16, KindUint32:
		return marshal(v.u64Val)
	case KindUint64:
		return marshal(strconv.FormatUint(v.u64Val, 10))
	case KindUint128:
		return marshal(v.bigVal.String())
	case KindVarInt32:
		return marshal(v.i64Val)
	case KindVarUint32:
		return marshal(v.u64Val)
	case KindFloat32:
		return marshal(v.f32Val)
	case KindFloat64:
		return marshal(v.f64Val)
	case KindFloat128:
		return marshal(hex.EncodeToString(v.f128Val[:]))
	case KindBytes:
		return marshal(stringsToUpper(hex.EncodeToString(v.bytesVal)))
	case KindString:
		return marshal(v.strVal)
	case KindTimePoint:
		return marshal(TimePointFromMicros(v.i64Val).String())
	case KindTimePointSec:
		return marshal(TimePointSecFromUint32(uint32(v.u64Val)).String())
	case KindBlockTimestampType:
		return marshal(BlockTimestampFromUint32(uint32(v.u64Val)).String())
	case KindChecksum160:
		return marshal(stringsToUpper(hex.EncodeToString(v.checksum)))
	case KindChecksum256:
		return marshal(stringsToUpper(hex.EncodeToString(v.checksum)))
	case KindChecksum512:
		return marshal(stringsToUpper(hex.EncodeToString(v.checksum)))
	case KindPublicKey:
		return marshal(v.pubKey.String())
	case KindPrivateKey:
		return marshal(v.privKey.String())
	case KindSignature:
		return marshal(v.sig.String())
	case KindName:
		return marshal(v.name.String())
	case KindSymbolCode:
		return marshal(v.symCode.String())
	case KindSymbol:
		return marshal(v.symbol.String())
	case KindAsset:
		return marshal(v.asset.String())
	case KindExtendedAsset:
		return marshal(map[string]string{
			"quantity": v.extAsset.Quantity.String(),
			"contract": v.extAsset.Contract.String(),
		})
	default:
		return nil, newErrorf(KindEncode, "AntelopeValue.ToJSON", "unsupported type %s", v.Kind)
	}
}

func stringsToUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'f' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// ValueFromJSON is the inverse of ToJSON, matching the same permissive
// rules the reference deserializer uses (e.g. Int64 accepts either a JSON
// number or a numeric string).
func ValueFromJSON(kind ValueKind, raw json.RawMessage) (AntelopeValue, error) {
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return AntelopeValue{}, newErrorf(KindJSON, "ValueFromJSON", "%v", err)
	}

	asString := func() (string, error) {
		s, ok := generic.(string)
		if !ok {
			return "", newErrorf(KindInvalidValue, "ValueFromJSON", "expected string for %s, got %v", kind, generic)
		}
		return s, nil
	}

	switch kind {
	case KindBool:
		b, ok := generic.(bool)
		if !ok {
			return AntelopeValue{}, newErrorf(KindInvalidValue, "ValueFromJSON", "expected bool")
		}
		return NewBoolValue(b), nil
	case KindInt8, KindInt16, KindInt32, KindVarInt32, KindUint8, KindUint16, KindUint32, KindVarUint32,
		KindFloat32, KindFloat64:
		return valueFromNumericJSON(kind, generic)
	case KindInt64, KindInt128, KindUint64, KindUint128:
		return valueFromBigJSON(kind, generic)
	case KindBytes, KindFloat128:
		s, err := asString()
		if err != nil {
			return AntelopeValue{}, err
		}
		return ValueFromString(kind, s)
	case KindString:
		s, err := asString()
		if err != nil {
			return AntelopeValue{}, err
		}
		return NewStringValue(s), nil
	case KindTimePoint, KindTimePointSec, KindBlockTimestampType, KindChecksum160, KindChecksum256,
		KindChecksum512, KindPublicKey, KindPrivateKey, KindSignature, KindName, KindSymbolCode,
		KindSymbol, KindAsset:
		s, err := asString()
		if err != nil {
			return AntelopeValue{}, err
		}
		return ValueFromString(kind, s)
	case KindExtendedAsset:
		obj, ok := generic.(map[string]any)
		if !ok {
			return AntelopeValue{}, newErrorf(KindInvalidValue, "ValueFromJSON", "expected object for extended_asset")
		}
		qStr, _ := obj["quantity"].(string)
		cStr, _ := obj["contract"].(string)
		q, err := NewAssetFromString(qStr)
		if err != nil {
			return AntelopeValue{}, err
		}
		c, err := NewName(cStr)
		if err != nil {
			return AntelopeValue{}, err
		}
		return NewExtendedAssetValue(ExtendedAsset{Quantity: q, Contract: c}), nil
	default:
		return AntelopeValue{}, newErrorf(KindDecode, "ValueFromJSON", "unsupported type %s", kind)
	}
}

func valueFromNumericJSON(kind ValueKind, generic any) (AntelopeValue, error) {
	var repr string
	switch n := generic.(type) {
	case float64:
		repr = strconv.FormatFloat(n, 'f', -1, 64)
	case string:
		repr = n
	default:
		return AntelopeValue{}, newErrorf(KindInvalidValue, "valueFromNumericJSON", "incompatible variant for %s: %v", kind, generic)
	}
	return ValueFromString(kind, repr)
}

func valueFromBigJSON(kind ValueKind, generic any) (AntelopeValue, error) {
	var repr string
	switch n := generic.(type) {
	case float64:
		repr = strconv.FormatFloat(n, 'f', -1, 64)
	case string:
		repr = n
	default:
		return AntelopeValue{}, newErrorf(KindInvalidValue, "valueFromBigJSON", "incompatible variant for %s: %v", kind, generic)
	}
	return ValueFromString(kind, repr)
}

// ToBin dispatches to the scalar wire encoder matching v.Kind.
func (v AntelopeValue) ToBin(bs *ByteStream) error {
	switch v.Kind {
	case KindBool:
		EncodeBool(bs, v.boolVal)
	case KindInt8:
		EncodeInt8(bs, int8(v.i64Val))
	case KindInt16:
		EncodeInt16(bs, int16(v.i64Val))
	case KindInt32:
		EncodeInt32(bs, int32(v.i64Val))
	case KindInt64:
		EncodeInt64(bs, v.i64Val)
	case KindInt128:
		EncodeInt128(bs, v.bigVal)
	case KindUint8:
		EncodeUint8(bs, uint8(v.u64Val))
	case KindUint16:
		EncodeUint16(bs, uint16(v.u64Val))
	case KindUint32:
		EncodeUint32(bs, uint32(v.u64Val))
	case KindUint64:
		EncodeUint64(bs, v.u64Val)
	case KindUint128:
		EncodeUint128(bs, v.bigVal)
	case KindVarInt32:
		EncodeVarint32(bs, int32(v.i64Val))
	case KindVarUint32:
		EncodeVaruint32(bs, uint32(v.u64Val))
	case KindFloat32:
		EncodeFloat32(bs, v.f32Val)
	case KindFloat64:
		EncodeFloat64(bs, v.f64Val)
	case KindFloat128:
		EncodeFloat128(bs, v.f128Val)
	case KindBytes:
		EncodeBytes(bs, v.bytesVal)
	case KindString:
		EncodeString(bs, v.strVal)
	case KindTimePoint:
		EncodeTimePoint(bs, TimePointFromMicros(v.i64Val))
	case KindTimePointSec:
		EncodeTimePointSec(bs, TimePointSecFromUint32(uint32(v.u64Val)))
	case KindBlockTimestampType:
		EncodeBlockTimestampType(bs, BlockTimestampFromUint32(uint32(v.u64Val)))
	case KindChecksum160:
		var c Checksum160
		copy(c[:], v.checksum)
		EncodeChecksum160(bs, c)
	case KindChecksum256:
		var c Checksum256
		copy(c[:], v.checksum)
		EncodeChecksum256(bs, c)
	case KindChecksum512:
		var c Checksum512
		copy(c[:], v.checksum)
		EncodeChecksum512(bs, c)
	case KindPublicKey:
		EncodePublicKey(bs, v.pubKey)
	case KindPrivateKey:
		EncodePrivateKey(bs, v.privKey)
	case KindSignature:
		EncodeSignature(bs, v.sig)
	case KindName:
		EncodeName(bs, v.name)
	case KindSymbolCode:
		EncodeSymbolCode(bs, v.symCode)
	case KindSymbol:
		EncodeSymbol(bs, v.symbol)
	case KindAsset:
		EncodeAsset(bs, v.asset)
	case KindExtendedAsset:
		EncodeExtendedAsset(bs, v.extAsset)
	default:
		return newErrorf(KindEncode, "AntelopeValue.ToBin", "unsupported type %s", v.Kind)
	}
	return nil
}

// ValueFromBin dispatches to the scalar wire decoder matching kind.
func ValueFromBin(kind ValueKind, bs *ByteStream) (AntelopeValue, error) {
	switch kind {
	case KindBool:
		v, err := DecodeBool(bs)
		return NewBoolValue(v), err
	case KindInt8:
		v, err := DecodeInt8(bs)
		return NewInt8Value(v), err
	case KindInt16:
		v, err := DecodeInt16(bs)
		return NewInt16Value(v), err
	case KindInt32:
		v, err := DecodeInt32(bs)
		return NewInt32Value(v), err
	case KindInt64:
		v, err := DecodeInt64(bs)
		return NewInt64Value(v), err
	case KindInt128:
		v, err := DecodeInt128(bs)
		if err != nil {
			return AntelopeValue{}, err
		}
		return NewInt128Value(v), nil
	case KindUint8:
		v, err := DecodeUint8(bs)
		return NewUint8Value(v), err
	case KindUint16:
		v, err := DecodeUint16(bs)
		return NewUint16Value(v), err
	case KindUint32:
		v, err := DecodeUint32(bs)
		return NewUint32Value(v), err
	case KindUint64:
		v, err := DecodeUint64(bs)
		return NewUint64Value(v), err
	case KindUint128:
		v, err := DecodeUint128(bs)
		if err != nil {
			return AntelopeValue{}, err
		}
		return NewUint128Value(v), nil
	case KindVarInt32:
		v, err := DecodeVarint32(bs)
		return NewVarInt32Value(v), err
	case KindVarUint32:
		v, err := DecodeVaruint32(bs)
		return NewVarUint32Value(v), err
	case KindFloat32:
		v, err := DecodeFloat32(bs)
		return NewFloat32Value(v), err
	case KindFloat64:
		v, err := DecodeFloat64(bs)
		return NewFloat64Value(v), err
	case KindFloat128:
		v, err := DecodeFloat128(bs)
		return NewFloat128Value(v), err
	case KindBytes:
		v, err := DecodeBytes(bs)
		return NewBytesValue(v), err
	case KindString:
		v, err := DecodeString(bs)
		return NewStringValue(v), err
	case KindTimePoint:
		v, err := DecodeTimePoint(bs)
		return NewTimePointValue(v), err
	case KindTimePointSec:
		v, err := DecodeTimePointSec(bs)
		return NewTimePointSecValue(v), err
	case KindBlockTimestampType:
		v, err := DecodeBlockTimestampType(bs)
		return NewBlockTimestampValue(v), err
	case KindChecksum160:
		v, err := DecodeChecksum160(bs)
		return NewChecksum160Value(v), err
	case KindChecksum256:
		v, err := DecodeChecksum256(bs)
		return NewChecksum256Value(v), err
	case KindChecksum512:
		v, err := DecodeChecksum512(bs)
		return NewChecksum512Value(v), err
	case KindPublicKey:
		v, err := DecodePublicKey(bs)
		return NewPublicKeyValue(v), err
	case KindPrivateKey:
		v, err := DecodePrivateKey(bs)
		return NewPrivateKeyValue(v), err
	case KindSignature:
		v, err := DecodeSignature(bs)
		return NewSignatureValue(v), err
	case KindName:
		v, err := DecodeName(bs)
		return NewNameValue(v), err
	case KindSymbolCode:
		v, err := DecodeSymbolCode(bs)
		return NewSymbolCodeValue(v), err
	case KindSymbol:
		v, err := DecodeSymbol(bs)
		return NewSymbolValue(v), err
	case KindAsset:
		v, err := DecodeAsset(bs)
		return NewAssetValue(v), err
	case KindExtendedAsset:
		v, err := DecodeExtendedAsset(bs)
		return NewExtendedAssetValue(v), err
	default:
		return AntelopeValue{}, newErrorf(KindDecode, "ValueFromBin", "unsupported type %s", kind)
	}
}
