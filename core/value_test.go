package core

import (
	"encoding/json"
	"testing"
)

func TestValueKindFromNameRoundTrip(t *testing.T) {
	for _, name := range []string{"bool", "int64", "varuint32", "name", "asset", "extended_asset"} {
		k, err := ValueKindFromName(name)
		if err != nil {
			t.Fatalf("ValueKindFromName(%q): %v", name, err)
		}
		if k.String() != name {
			t.Fatalf("k.String() = %q, want %q", k.String(), name)
		}
	}
}

func TestValueKindFromNameUnknown(t *testing.T) {
	_, err := ValueKindFromName("not_a_real_type")
	if err == nil {
		t.Fatalf("ValueKindFromName(unknown) succeeded, want error")
	}
}

func TestValueBinRoundTripInt64(t *testing.T) {
	v, err := ValueFromString(KindInt64, "-42")
	if err != nil {
		t.Fatalf("ValueFromString: %v", err)
	}
	bs := NewByteStream()
	if err := v.ToBin(bs); err != nil {
		t.Fatalf("ToBin: %v", err)
	}
	rs := NewByteStreamFromBytes(bs.IntoBytes())
	decoded, err := ValueFromBin(KindInt64, rs)
	if err != nil {
		t.Fatalf("ValueFromBin: %v", err)
	}
	if decoded.AsInt64() != -42 {
		t.Fatalf("AsInt64() = %d, want -42", decoded.AsInt64())
	}
}

func TestValueJSONInt64EmitsString(t *testing.T) {
	v, err := ValueFromString(KindInt64, "9007199254740993")
	if err != nil {
		t.Fatalf("ValueFromString: %v", err)
	}
	raw, err := v.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		t.Fatalf("int64 JSON rendering is not a string: %s", raw)
	}
	if s != "9007199254740993" {
		t.Fatalf("int64 JSON = %q, want 9007199254740993", s)
	}
}

func TestValueFromJSONAcceptsNumberOrString(t *testing.T) {
	byNumber, err := ValueFromJSON(KindInt64, json.RawMessage("42"))
	if err != nil {
		t.Fatalf("ValueFromJSON(number): %v", err)
	}
	byString, err := ValueFromJSON(KindInt64, json.RawMessage(`"42"`))
	if err != nil {
		t.Fatalf("ValueFromJSON(string): %v", err)
	}
	if byNumber.AsInt64() != 42 || byString.AsInt64() != 42 {
		t.Fatalf("got %d and %d, want both 42", byNumber.AsInt64(), byString.AsInt64())
	}
}

func TestValueBytesJSONIsUppercaseHex(t *testing.T) {
	v := NewBytesValue([]byte{0xde, 0xad, 0xbe, 0xef})
	raw, err := v.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s != "DEADBEEF" {
		t.Fatalf("bytes JSON = %q, want DEADBEEF", s)
	}
}

func TestValueExtendedAssetRoundTrip(t *testing.T) {
	asset, err := NewAssetFromString("1.2345 SYS")
	if err != nil {
		t.Fatalf("NewAssetFromString: %v", err)
	}
	contract, err := NewName("eosio.token")
	if err != nil {
		t.Fatalf("NewName: %v", err)
	}
	v := NewExtendedAssetValue(ExtendedAsset{Quantity: asset, Contract: contract})

	bs := NewByteStream()
	if err := v.ToBin(bs); err != nil {
		t.Fatalf("ToBin: %v", err)
	}
	rs := NewByteStreamFromBytes(bs.IntoBytes())
	decoded, err := ValueFromBin(KindExtendedAsset, rs)
	if err != nil {
		t.Fatalf("ValueFromBin: %v", err)
	}
	if decoded.AsExtendedAsset().Quantity.String() != "1.2345 SYS" {
		t.Fatalf("Quantity = %q, want 1.2345 SYS", decoded.AsExtendedAsset().Quantity.String())
	}
	if decoded.AsExtendedAsset().Contract.String() != "eosio.token" {
		t.Fatalf("Contract = %q, want eosio.token", decoded.AsExtendedAsset().Contract.String())
	}
}
