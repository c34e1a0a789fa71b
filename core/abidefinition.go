package core

import "encoding/json"

// TypeDef aliases NewTypeName to Type wherever Type is already resolvable
// (a builtin, a struct, a variant, or another typedef).
type TypeDef struct {
	NewTypeName string `json:"new_type_name"`
	Type        string `json:"type"`
}

// Field is one member of a Struct, in declaration order.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Struct declares a named record type, optionally extending Base (single
// inheritance: Base's fields come first on the wire; decoded JSON objects
// are built from Go maps, so their keys come out in sorted order).
type Struct struct {
	Name   string  `json:"name"`
	Base   string  `json:"base"`
	Fields []Field `json:"fields"`
}

// Action maps an action name to the struct type carrying its payload.
type Action struct {
	Name              string `json:"name"`
	Type              string `json:"type"`
	RicardianContract string `json:"ricardian_contract"`
}

// Table maps a table name to its row type.
type Table struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	IndexType string   `json:"index_type"`
	KeyNames  []string `json:"key_names"`
	KeyTypes  []string `json:"key_types"`
}

// ClausePair is one named ricardian clause.
type ClausePair struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

// ErrorMessage maps a contract-defined error code to human text.
type ErrorMessage struct {
	ErrorCode uint64 `json:"error_code"`
	ErrorMsg  string `json:"error_msg"`
}

// Variant declares a tagged union: the wire tag is the index into Types.
type Variant struct {
	Name  string   `json:"name"`
	Types []string `json:"types"`
}

// ActionResult maps an action name to the type of the value it returns.
type ActionResult struct {
	Name       string `json:"name"`
	ResultType string `json:"result_type"`
}

// ABIDefinition is the JSON document shape of an ABI, as distributed
// alongside a contract (see the EOSIO ABI reference at
// docs.eosnetwork.com/manuals/cdt/latest/best-practices/abi). Every
// field participates in the binary self-encoding (see ToBin), in the
// order types/structs/actions/tables/ricardian_clauses/error_messages/
// variants/action_results.
type ABIDefinition struct {
	Version          string         `json:"version"`
	Types            []TypeDef      `json:"types,omitempty"`
	Structs          []Struct       `json:"structs,omitempty"`
	Actions          []Action       `json:"actions,omitempty"`
	Tables           []Table        `json:"tables,omitempty"`
	RicardianClauses []ClausePair   `json:"ricardian_clauses,omitempty"`
	ErrorMessages    []ErrorMessage `json:"error_messages,omitempty"`
	Variants         []Variant      `json:"variants,omitempty"`
	ActionResults    []ActionResult `json:"action_results,omitempty"`
}

// DefaultABIVersion is written by NewABIDefinition and accepted, along
// with every other "eosio::abi/1.x" version, by the engine.
const DefaultABIVersion = "eosio::abi/1.2"

func NewABIDefinition() ABIDefinition {
	return ABIDefinition{Version: DefaultABIVersion}
}

// ABIDefinitionFromJSON parses the textual ABI document form.
func ABIDefinitionFromJSON(data []byte) (ABIDefinition, error) {
	var abi ABIDefinition
	if err := json.Unmarshal(data, &abi); err != nil {
		return ABIDefinition{}, newErrorf(KindJSON, "ABIDefinitionFromJSON", "%v", err)
	}
	return abi, nil
}

func (abi ABIDefinition) ToJSON() ([]byte, error) {
	b, err := json.MarshalIndent(abi, "", "  ")
	if err != nil {
		return nil, newErrorf(KindJSON, "ABIDefinition.ToJSON", "%v", err)
	}
	return b, nil
}

// ToBin renders the self-describing subset of the document (version plus
// types/structs/actions/tables/ricardian_clauses/error_messages/variants/
// action_results, in that order) using the bootstrap ABI engine. Trailing
// sections are always written (as empty arrays when unpopulated) rather
// than reserved as bare zero bytes, so every field ABIDefinition can carry
// survives a ToBin/ABIDefinitionFromBin round trip.
func (abi ABIDefinition) ToBin(bs *ByteStream) error {
	EncodeString(bs, abi.Version)
	eng := bootstrapEngine()

	structs := make([]Struct, len(abi.Structs))
	for i, s := range abi.Structs {
		structs[i] = s
		if structs[i].Fields == nil {
			structs[i].Fields = []Field{}
		}
	}

	tables := make([]Table, len(abi.Tables))
	for i, t := range abi.Tables {
		tables[i] = t
		if tables[i].KeyNames == nil {
			tables[i].KeyNames = []string{}
		}
		if tables[i].KeyTypes == nil {
			tables[i].KeyTypes = []string{}
		}
	}

	variants := make([]Variant, len(abi.Variants))
	for i, v := range abi.Variants {
		variants[i] = v
		if variants[i].Types == nil {
			variants[i].Types = []string{}
		}
	}

	types := abi.Types
	if types == nil {
		types = []TypeDef{}
	}
	typesJSON, err := json.Marshal(types)
	if err != nil {
		return newErrorf(KindEncode, "ABIDefinition.ToBin", "%v", err)
	}
	if err := eng.EncodeVariant(bs, "typedef[]", typesJSON); err != nil {
		return err
	}

	structsJSON, err := json.Marshal(structs)
	if err != nil {
		return newErrorf(KindEncode, "ABIDefinition.ToBin", "%v", err)
	}
	if err := eng.EncodeVariant(bs, "struct[]", structsJSON); err != nil {
		return err
	}

	actions := abi.Actions
	if actions == nil {
		actions = []Action{}
	}
	actionsJSON, err := json.Marshal(actions)
	if err != nil {
		return newErrorf(KindEncode, "ABIDefinition.ToBin", "%v", err)
	}
	if err := eng.EncodeVariant(bs, "action[]", actionsJSON); err != nil {
		return err
	}

	tablesJSON, err := json.Marshal(tables)
	if err != nil {
		return newErrorf(KindEncode, "ABIDefinition.ToBin", "%v", err)
	}
	if err := eng.EncodeVariant(bs, "table[]", tablesJSON); err != nil {
		return err
	}

	ricardianClauses := abi.RicardianClauses
	if ricardianClauses == nil {
		ricardianClauses = []ClausePair{}
	}
	ricardianJSON, err := json.Marshal(ricardianClauses)
	if err != nil {
		return newErrorf(KindEncode, "ABIDefinition.ToBin", "%v", err)
	}
	if err := eng.EncodeVariant(bs, "clause_pair[]", ricardianJSON); err != nil {
		return err
	}

	errorMessages := abi.ErrorMessages
	if errorMessages == nil {
		errorMessages = []ErrorMessage{}
	}
	errorMessagesJSON, err := json.Marshal(errorMessages)
	if err != nil {
		return newErrorf(KindEncode, "ABIDefinition.ToBin", "%v", err)
	}
	if err := eng.EncodeVariant(bs, "error_message[]", errorMessagesJSON); err != nil {
		return err
	}

	variantsJSON, err := json.Marshal(variants)
	if err != nil {
		return newErrorf(KindEncode, "ABIDefinition.ToBin", "%v", err)
	}
	if err := eng.EncodeVariant(bs, "variant[]", variantsJSON); err != nil {
		return err
	}

	actionResults := abi.ActionResults
	if actionResults == nil {
		actionResults = []ActionResult{}
	}
	actionResultsJSON, err := json.Marshal(actionResults)
	if err != nil {
		return newErrorf(KindEncode, "ABIDefinition.ToBin", "%v", err)
	}
	if err := eng.EncodeVariant(bs, "action_result[]", actionResultsJSON); err != nil {
		return err
	}

	return nil
}

// ABIDefinitionFromBin parses the binary self-encoding produced by ToBin.
// Per the trailing-sections-optional rule, each section after tables[] is
// decoded only while the stream still has bytes left; a shorter-lived
// producer's stream that ends early leaves the remaining fields at their
// zero value instead of failing.
func ABIDefinitionFromBin(bs *ByteStream) (ABIDefinition, error) {
	version, err := DecodeString(bs)
	if err != nil {
		return ABIDefinition{}, err
	}
	if !hasABIVersionPrefix(version) {
		return ABIDefinition{}, newErrorf(KindVersion, "ABIDefinitionFromBin", "unsupported ABI version: %q", version)
	}

	eng := bootstrapEngine()
	abi := ABIDefinition{Version: version}

	if err := decodeVariantInto(eng, bs, "typedef[]", &abi.Types); err != nil {
		return ABIDefinition{}, err
	}
	if err := decodeVariantInto(eng, bs, "struct[]", &abi.Structs); err != nil {
		return ABIDefinition{}, err
	}
	if err := decodeVariantInto(eng, bs, "action[]", &abi.Actions); err != nil {
		return ABIDefinition{}, err
	}
	if err := decodeVariantInto(eng, bs, "table[]", &abi.Tables); err != nil {
		return ABIDefinition{}, err
	}

	if len(bs.Leftover()) == 0 {
		return abi, nil
	}
	if err := decodeVariantInto(eng, bs, "clause_pair[]", &abi.RicardianClauses); err != nil {
		return ABIDefinition{}, err
	}

	if len(bs.Leftover()) == 0 {
		return abi, nil
	}
	var errorMessages []struct {
		ErrorCode uint64 `json:"error_code,string"`
		ErrorMsg  string `json:"error_msg"`
	}
	if err := decodeVariantInto(eng, bs, "error_message[]", &errorMessages); err != nil {
		return ABIDefinition{}, err
	}
	for _, m := range errorMessages {
		abi.ErrorMessages = append(abi.ErrorMessages, ErrorMessage(m))
	}

	if len(bs.Leftover()) == 0 {
		return abi, nil
	}
	if err := decodeVariantInto(eng, bs, "variant[]", &abi.Variants); err != nil {
		return ABIDefinition{}, err
	}

	if len(bs.Leftover()) == 0 {
		return abi, nil
	}
	if err := decodeVariantInto(eng, bs, "action_result[]", &abi.ActionResults); err != nil {
		return ABIDefinition{}, err
	}

	return abi, nil
}

func decodeVariantInto(eng *ABI, bs *ByteStream, typeName string, out any) error {
	raw, err := eng.DecodeVariant(bs, typeName)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return newErrorf(KindDecode, "decodeVariantInto", "%v", err)
	}
	return nil
}

func hasABIVersionPrefix(v string) bool {
	const prefix = "eosio::abi/1."
	return len(v) >= len(prefix) && v[:len(prefix)] == prefix
}
