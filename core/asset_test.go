package core

import "testing"

func TestAssetRoundTrip(t *testing.T) {
	a, err := NewAssetFromString("1.2345 SYS")
	if err != nil {
		t.Fatalf("NewAssetFromString: %v", err)
	}
	bs := NewByteStream()
	EncodeAsset(bs, a)
	const want = "39300000000000000453595300000000"
	if got := bs.HexData(); got != want {
		t.Fatalf("EncodeAsset(1.2345 SYS) = %s, want %s", got, want)
	}

	rs := NewByteStreamFromBytes(bs.IntoBytes())
	decoded, err := DecodeAsset(rs)
	if err != nil {
		t.Fatalf("DecodeAsset: %v", err)
	}
	if decoded.String() != "1.2345 SYS" {
		t.Fatalf("decoded.String() = %q, want %q", decoded.String(), "1.2345 SYS")
	}
}

func TestAssetAmountBounds(t *testing.T) {
	sym, err := NewSymbol("4,SYS")
	if err != nil {
		t.Fatalf("NewSymbol: %v", err)
	}
	if _, err := NewAsset(MaxAssetAmount+1, sym); err == nil {
		t.Fatalf("NewAsset(MaxAssetAmount+1) should fail (2^62 is out of range)")
	}
	if _, err := NewAsset(-MaxAssetAmount-1, sym); err == nil {
		t.Fatalf("NewAsset(-MaxAssetAmount-1) should fail (-2^62 is out of range)")
	}
	if _, err := NewAsset(MaxAssetAmount, sym); err != nil {
		t.Fatalf("NewAsset(MaxAssetAmount): %v", err)
	}
}
