package core

import "testing"

func TestBootstrapABIDefinitionValidates(t *testing.T) {
	eng, err := FromDefinition(BootstrapABIDefinition())
	if err != nil {
		t.Fatalf("FromDefinition(BootstrapABIDefinition()): %v", err)
	}
	if eng == nil {
		t.Fatalf("FromDefinition returned nil engine")
	}
}

func TestBootstrapEngineIsSharedSingleton(t *testing.T) {
	a := bootstrapEngine()
	b := bootstrapEngine()
	if a != b {
		t.Fatalf("bootstrapEngine() returned distinct instances across calls")
	}
}

func TestBootstrapEngineEncodesStructArray(t *testing.T) {
	eng := bootstrapEngine()
	bs := NewByteStream()
	if err := eng.EncodeVariant(bs, "typedef[]", []byte(`[{"new_type_name":"account_name","type":"name"}]`)); err != nil {
		t.Fatalf("EncodeVariant(typedef[]): %v", err)
	}

	var decoded []TypeDef
	if err := decodeVariantInto(eng, NewByteStreamFromBytes(bs.IntoBytes()), "typedef[]", &decoded); err != nil {
		t.Fatalf("decodeVariantInto(typedef[]): %v", err)
	}
	if len(decoded) != 1 || decoded[0].NewTypeName != "account_name" {
		t.Fatalf("decoded = %+v", decoded)
	}
}
