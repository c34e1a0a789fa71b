package core

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"
)

func tokenTransferABI(t *testing.T) *ABI {
	t.Helper()
	def := ABIDefinition{
		Version: DefaultABIVersion,
		Structs: []Struct{
			{
				Name: "transfer",
				Fields: []Field{
					{Name: "from", Type: "name"},
					{Name: "to", Type: "name"},
					{Name: "quantity", Type: "asset"},
					{Name: "memo", Type: "string"},
				},
			},
		},
	}
	eng, err := FromDefinition(def)
	if err != nil {
		t.Fatalf("FromDefinition: %v", err)
	}
	return eng
}

func TestABIEncodeTokenTransfer(t *testing.T) {
	eng := tokenTransferABI(t)
	input := `{"from":"useraaaaaaaa","to":"useraaaaaaab","quantity":"0.0001 SYS","memo":"test memo"}`

	got, err := eng.VariantToBinary("transfer", json.RawMessage(input))
	if err != nil {
		t.Fatalf("VariantToBinary: %v", err)
	}
	const want = "608c31c6187315d6708c31c6187315d6010000000000000004535953000000000974657374206d656d6f"
	if hex.EncodeToString(got) != want {
		t.Fatalf("VariantToBinary = %s, want %s", hex.EncodeToString(got), want)
	}

	back, err := eng.BinaryToVariant("transfer", got)
	if err != nil {
		t.Fatalf("BinaryToVariant: %v", err)
	}
	var roundTripped, original map[string]any
	if err := json.Unmarshal(back, &roundTripped); err != nil {
		t.Fatalf("unmarshal round-tripped: %v", err)
	}
	if err := json.Unmarshal([]byte(input), &original); err != nil {
		t.Fatalf("unmarshal original: %v", err)
	}
	for k, v := range original {
		if roundTripped[k] != v {
			t.Errorf("field %s: got %v, want %v", k, roundTripped[k], v)
		}
	}
}

func TestABIIntegrityTypedefCycle(t *testing.T) {
	def := ABIDefinition{
		Version: DefaultABIVersion,
		Types: []TypeDef{
			{NewTypeName: "a", Type: "b"},
			{NewTypeName: "b", Type: "a"},
		},
	}
	_, err := FromDefinition(def)
	if !errors.Is(err, ErrIntegrity) {
		t.Fatalf("typedef cycle = %v, want IntegrityError", err)
	}
}

func TestABIIntegrityUnknownType(t *testing.T) {
	def := ABIDefinition{
		Version: DefaultABIVersion,
		Structs: []Struct{
			{Name: "s", Fields: []Field{{Name: "f", Type: "does_not_exist"}}},
		},
	}
	_, err := FromDefinition(def)
	if !errors.Is(err, ErrIntegrity) {
		t.Fatalf("unknown field type = %v, want IntegrityError", err)
	}
}

func TestABIIntegrityDuplicateStruct(t *testing.T) {
	def := ABIDefinition{
		Version: DefaultABIVersion,
		Structs: []Struct{
			{Name: "dup", Fields: []Field{{Name: "a", Type: "uint8"}}},
			{Name: "dup", Fields: []Field{{Name: "b", Type: "uint8"}}},
		},
	}
	_, err := FromDefinition(def)
	if !errors.Is(err, ErrIntegrity) {
		t.Fatalf("duplicate struct name = %v, want IntegrityError", err)
	}
}

func TestABIIntegrityUnknownBase(t *testing.T) {
	def := ABIDefinition{
		Version: DefaultABIVersion,
		Structs: []Struct{
			{Name: "s", Base: "nonexistent_base", Fields: []Field{}},
		},
	}
	_, err := FromDefinition(def)
	if !errors.Is(err, ErrIntegrity) {
		t.Fatalf("unknown base = %v, want IntegrityError", err)
	}
}

func TestABIVariantDispatch(t *testing.T) {
	def := ABIDefinition{
		Version: DefaultABIVersion,
		Variants: []Variant{
			{Name: "v1", Types: []string{"uint8", "string"}},
		},
	}
	eng, err := FromDefinition(def)
	if err != nil {
		t.Fatalf("FromDefinition: %v", err)
	}

	bin, err := eng.VariantToBinary("v1", json.RawMessage(`["string", "hi"]`))
	if err != nil {
		t.Fatalf("VariantToBinary: %v", err)
	}
	// varuint32 tag (1, since "string" is types[1]) then length-prefixed "hi"
	if hex.EncodeToString(bin) != "0102"+hex.EncodeToString([]byte("hi")) {
		t.Fatalf("variant tag/payload = %x", bin)
	}

	back, err := eng.BinaryToVariant("v1", bin)
	if err != nil {
		t.Fatalf("BinaryToVariant: %v", err)
	}
	var arr []any
	if err := json.Unmarshal(back, &arr); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(arr) != 2 || arr[0] != "string" || arr[1] != "hi" {
		t.Fatalf("decoded variant = %v, want [string hi]", arr)
	}
}

func TestABIVariantDecodeTagOutOfRange(t *testing.T) {
	def := ABIDefinition{
		Version:  DefaultABIVersion,
		Variants: []Variant{{Name: "v1", Types: []string{"uint8"}}},
	}
	eng, err := FromDefinition(def)
	if err != nil {
		t.Fatalf("FromDefinition: %v", err)
	}
	bs := NewByteStream()
	EncodeVaruint32(bs, 5) // only one type registered, tag 5 is out of range
	_, err = eng.DecodeVariant(bs, "v1")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("decode out-of-range variant tag = %v, want DecodeError", err)
	}
}

func TestABIBinaryExtension(t *testing.T) {
	def := ABIDefinition{
		Version: DefaultABIVersion,
		Structs: []Struct{
			{Name: "ext_struct", Fields: []Field{
				{Name: "a", Type: "uint8"},
				{Name: "b", Type: "uint8$"},
			}},
		},
	}
	eng, err := FromDefinition(def)
	if err != nil {
		t.Fatalf("FromDefinition: %v", err)
	}

	// (a) trailing extension field absent succeeds and is omitted.
	bin, err := eng.VariantToBinary("ext_struct", json.RawMessage(`{"a":7}`))
	if err != nil {
		t.Fatalf("encode without extension field: %v", err)
	}
	if hex.EncodeToString(bin) != "07" {
		t.Fatalf("encode without extension field = %x, want 07", bin)
	}

	// decoding tolerates early end of stream at the extension field.
	back, err := eng.BinaryToVariant("ext_struct", bin)
	if err != nil {
		t.Fatalf("decode tolerating early end: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(back, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, present := m["b"]; present {
		t.Fatalf("decoded struct has field b, want it omitted: %v", m)
	}
}

func TestABINonTrailingFieldMissingFails(t *testing.T) {
	def := ABIDefinition{
		Version: DefaultABIVersion,
		Structs: []Struct{
			{Name: "s", Fields: []Field{
				{Name: "a", Type: "uint8"},
				{Name: "b", Type: "uint8"},
			}},
		},
	}
	eng, err := FromDefinition(def)
	if err != nil {
		t.Fatalf("FromDefinition: %v", err)
	}
	_, err = eng.VariantToBinary("s", json.RawMessage(`{"a":7}`))
	if !errors.Is(err, ErrEncode) {
		t.Fatalf("missing non-trailing field = %v, want EncodeError", err)
	}
}

func TestABISelfEncodingRoundTrip(t *testing.T) {
	def := ABIDefinition{
		Version: DefaultABIVersion,
		Structs: []Struct{
			{Name: "transfer", Fields: []Field{
				{Name: "from", Type: "name"},
				{Name: "to", Type: "name"},
				{Name: "quantity", Type: "asset"},
				{Name: "memo", Type: "string"},
			}},
		},
		Actions: []Action{
			{Name: "transfer", Type: "transfer", RicardianContract: ""},
		},
		RicardianClauses: []ClausePair{
			{ID: "transfer-clause", Body: "The sender authorizes this transfer."},
		},
		ErrorMessages: []ErrorMessage{
			{ErrorCode: 1, ErrorMsg: "insufficient balance"},
		},
		ActionResults: []ActionResult{
			{Name: "transfer", ResultType: "void"},
		},
	}

	bs := NewByteStream()
	if err := def.ToBin(bs); err != nil {
		t.Fatalf("ToBin: %v", err)
	}

	rs := NewByteStreamFromBytes(bs.IntoBytes())
	decoded, err := ABIDefinitionFromBin(rs)
	if err != nil {
		t.Fatalf("ABIDefinitionFromBin: %v", err)
	}

	if decoded.Version != def.Version {
		t.Errorf("Version = %q, want %q", decoded.Version, def.Version)
	}
	if len(decoded.Structs) != 1 || decoded.Structs[0].Name != "transfer" {
		t.Errorf("Structs = %+v", decoded.Structs)
	}
	if len(decoded.Structs[0].Fields) != 4 {
		t.Errorf("Fields = %+v", decoded.Structs[0].Fields)
	}
	if len(decoded.Actions) != 1 || decoded.Actions[0].Name != "transfer" {
		t.Errorf("Actions = %+v", decoded.Actions)
	}
	if len(decoded.RicardianClauses) != 1 || decoded.RicardianClauses[0].ID != "transfer-clause" {
		t.Errorf("RicardianClauses = %+v", decoded.RicardianClauses)
	}
	if len(decoded.ErrorMessages) != 1 || decoded.ErrorMessages[0].ErrorCode != 1 {
		t.Errorf("ErrorMessages = %+v", decoded.ErrorMessages)
	}
	if len(decoded.ActionResults) != 1 || decoded.ActionResults[0].Name != "transfer" {
		t.Errorf("ActionResults = %+v", decoded.ActionResults)
	}
}

func TestABIFromJSONRejectsBadVersion(t *testing.T) {
	_, err := FromJSON([]byte(`{"version":"not.an.abi.version"}`))
	if !errors.Is(err, ErrVersion) {
		t.Fatalf("bad version = %v, want VersionError", err)
	}
}
