package core

import "sync"

// BootstrapABIDefinition returns the hard-coded schema the ABI engine
// uses to decode and encode ABI documents themselves: it describes the
// full ABIDefinition shape (typedef, field, struct, action, table,
// clause_pair, error_message, variant, action_result) needed to drive
// every section of the binary self-encoding in
// ABIDefinition.ToBin/ABIDefinitionFromBin.
func BootstrapABIDefinition() ABIDefinition {
	return ABIDefinition{
		Version: DefaultABIVersion,
		Structs: []Struct{
			{
				Name: "typedef",
				Fields: []Field{
					{Name: "new_type_name", Type: "string"},
					{Name: "type", Type: "string"},
				},
			},
			{
				Name: "field",
				Fields: []Field{
					{Name: "name", Type: "string"},
					{Name: "type", Type: "string"},
				},
			},
			{
				Name: "struct",
				Fields: []Field{
					{Name: "name", Type: "string"},
					{Name: "base", Type: "string"},
					{Name: "fields", Type: "field[]"},
				},
			},
			{
				Name: "action",
				Fields: []Field{
					{Name: "name", Type: "name"},
					{Name: "type", Type: "string"},
					{Name: "ricardian_contract", Type: "string"},
				},
			},
			{
				Name: "table",
				Fields: []Field{
					{Name: "name", Type: "name"},
					{Name: "index_type", Type: "string"},
					{Name: "key_names", Type: "string[]"},
					{Name: "key_types", Type: "string[]"},
					{Name: "type", Type: "string"},
				},
			},
			{
				Name: "clause_pair",
				Fields: []Field{
					{Name: "id", Type: "string"},
					{Name: "body", Type: "string"},
				},
			},
			{
				Name: "error_message",
				Fields: []Field{
					{Name: "error_code", Type: "uint64"},
					{Name: "error_msg", Type: "string"},
				},
			},
			{
				Name: "variant",
				Fields: []Field{
					{Name: "name", Type: "string"},
					{Name: "types", Type: "string[]"},
				},
			},
			{
				Name: "action_result",
				Fields: []Field{
					{Name: "name", Type: "name"},
					{Name: "result_type", Type: "string"},
				},
			},
		},
	}
}

var (
	bootstrapEngineOnce sync.Once
	bootstrapEngineInst *ABI
)

// bootstrapEngine lazily builds (once) and returns the ABI engine driven
// by BootstrapABIDefinition, used internally by ABIDefinition's own
// binary (de)serialization.
func bootstrapEngine() *ABI {
	bootstrapEngineOnce.Do(func() {
		eng, err := FromDefinition(BootstrapABIDefinition())
		if err != nil {
			panic("core: bootstrap ABI definition failed to validate: " + err.Error())
		}
		bootstrapEngineInst = eng
	})
	return bootstrapEngineInst
}
