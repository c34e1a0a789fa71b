package core

import (
	"encoding/hex"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// defaultMaxRecursionDepth bounds how deeply EncodeVariant/DecodeVariant
// may recurse through typedefs/arrays/optionals/variants/structs before
// giving up, guarding against schemas with pathological nesting (or,
// since typedef cycles are supposed to be rejected by validate(), a bug
// in that check).
const defaultMaxRecursionDepth = 64

// arrayPreallocCap bounds how large a slice DecodeVariant will
// pre-allocate from an attacker-controlled length prefix; additional
// elements still get appended normally past this cap.
const arrayPreallocCap = 1024

// ABI is a validated, queryable view of an ABIDefinition: typedefs and
// structs/variants are indexed by name for O(1) lookup, and the document
// has already passed integrity validation (no unknown types, no
// typedef/struct-base cycles).
type ABI struct {
	typedefs      map[string]string
	structs       map[string]Struct
	actions       map[string]string
	tables        map[string]string
	variants      map[string]Variant
	actionResults map[string]string
	log           *logrus.Logger
}

// FromDefinition builds and validates an ABI engine from an already
// parsed ABIDefinition, logging to a default logrus.Logger.
func FromDefinition(abi ABIDefinition) (*ABI, error) {
	return FromDefinitionWithLogger(abi, nil)
}

// FromDefinitionWithLogger builds and validates an ABI engine, logging
// construction-time validation outcomes and decode failures to logger.
// A nil logger defaults to logrus.New(), matching the teacher's service
// constructor idiom of never requiring a caller to supply one.
func FromDefinitionWithLogger(abi ABIDefinition, logger *logrus.Logger) (*ABI, error) {
	if logger == nil {
		logger = logrus.New()
	}
	a := &ABI{
		typedefs:      make(map[string]string),
		structs:       make(map[string]Struct),
		actions:       make(map[string]string),
		tables:        make(map[string]string),
		variants:      make(map[string]Variant),
		actionResults: make(map[string]string),
		log:           logger,
	}
	if err := a.setABI(abi); err != nil {
		return nil, err
	}
	return a, nil
}

// FromJSON parses and validates an ABI document given as JSON text.
func FromJSON(data []byte) (*ABI, error) {
	def, err := ABIDefinitionFromJSON(data)
	if err != nil {
		return nil, err
	}
	return FromDefinition(def)
}

// FromHexABI parses and validates an ABI document given as the hex
// encoding of its binary self-encoding.
func FromHexABI(hexStr string) (*ABI, error) {
	data, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, newErrorf(KindHex, "FromHexABI", "%v", err)
	}
	return FromBinABI(data)
}

// FromBinABI parses and validates an ABI document given as its binary
// self-encoding.
func FromBinABI(data []byte) (*ABI, error) {
	bs := NewByteStreamFromBytes(data)
	def, err := ABIDefinitionFromBin(bs)
	if err != nil {
		return nil, err
	}
	return FromDefinition(def)
}

func (a *ABI) setABI(abi ABIDefinition) error {
	if !hasABIVersionPrefix(abi.Version) {
		return newErrorf(KindVersion, "ABI.setABI", "unsupported ABI version: %q", abi.Version)
	}

	for k := range a.typedefs {
		delete(a.typedefs, k)
	}
	for k := range a.structs {
		delete(a.structs, k)
	}
	for k := range a.actions {
		delete(a.actions, k)
	}
	for k := range a.tables {
		delete(a.tables, k)
	}
	for k := range a.variants {
		delete(a.variants, k)
	}
	for k := range a.actionResults {
		delete(a.actionResults, k)
	}

	for _, s := range abi.Structs {
		a.structs[s.Name] = s
	}
	if len(a.structs) != len(abi.Structs) {
		return newErrorf(KindIntegrity, "ABI.setABI", "duplicate struct definition detected")
	}

	for _, td := range abi.Types {
		if a.isType(TypeNameRef(td.NewTypeName)) {
			return newErrorf(KindIntegrity, "ABI.setABI", "type already exists: %s", td.NewTypeName)
		}
		a.typedefs[td.NewTypeName] = td.Type
	}
	if len(a.typedefs) != len(abi.Types) {
		return newErrorf(KindIntegrity, "ABI.setABI", "duplicate type definition detected")
	}

	for _, act := range abi.Actions {
		a.actions[act.Name] = act.Type
	}
	if len(a.actions) != len(abi.Actions) {
		return newErrorf(KindIntegrity, "ABI.setABI", "duplicate action definition detected")
	}

	for _, tbl := range abi.Tables {
		a.tables[tbl.Name] = tbl.Type
	}
	if len(a.tables) != len(abi.Tables) {
		return newErrorf(KindIntegrity, "ABI.setABI", "duplicate table definition detected")
	}

	for _, v := range abi.Variants {
		a.variants[v.Name] = v
	}
	if len(a.variants) != len(abi.Variants) {
		return newErrorf(KindIntegrity, "ABI.setABI", "duplicate variants definition detected")
	}

	for _, ar := range abi.ActionResults {
		a.actionResults[ar.Name] = ar.ResultType
	}
	if len(a.actionResults) != len(abi.ActionResults) {
		return newErrorf(KindIntegrity, "ABI.setABI", "duplicate action result definition detected")
	}

	if err := a.validate(); err != nil {
		a.log.WithError(err).Warn("abi validation failed")
		return err
	}
	a.log.WithFields(logrus.Fields{
		"types":    len(a.typedefs),
		"structs":  len(a.structs),
		"actions":  len(a.actions),
		"tables":   len(a.tables),
		"variants": len(a.variants),
	}).Debug("abi validated")
	return nil
}

// isType reports whether t (after resolving through zero or more
// typedefs) is a builtin, a known struct, or a known variant. It first
// strips every array/optional suffix (one FundamentalType call per layer),
// then, if the bare name is a typedef, repeats the whole check on the
// typedef's target, so suffixes carried by that target are stripped in
// turn. resolveType, by contrast, follows the typedef chain without
// stripping any suffix.
func (a *ABI) isType(t TypeNameRef) bool {
	ft := t.FundamentalType()
	for ft != t {
		t = ft
		ft = t.FundamentalType()
	}

	if _, ok := valueKindByName[t.String()]; ok {
		return true
	}
	if target, ok := a.typedefs[t.String()]; ok {
		return a.isType(TypeNameRef(target))
	}
	if _, ok := a.structs[t.String()]; ok {
		return true
	}
	if _, ok := a.variants[t.String()]; ok {
		return true
	}
	return false
}

// resolveType follows the typedef chain from t to whatever it ultimately
// aliases (a builtin, struct or variant name, still possibly carrying
// array/optional/extension suffixes of its own).
func (a *ABI) resolveType(t TypeNameRef) TypeNameRef {
	rtype := t
	for {
		next, ok := a.typedefs[rtype.String()]
		if !ok {
			return rtype
		}
		rtype = TypeNameRef(next)
	}
}

func (a *ABI) validate() error {
	for name, target := range a.typedefs {
		typesSeen := map[string]bool{name: true, target: true}
		cur, ok := a.typedefs[target]
		for ok {
			if typesSeen[cur] {
				return newErrorf(KindIntegrity, "ABI.validate", "circular reference in type `%s`", name)
			}
			typesSeen[cur] = true
			cur, ok = a.typedefs[cur]
		}
	}

	for _, target := range a.typedefs {
		if !a.isType(TypeNameRef(target)) {
			return newErrorf(KindIntegrity, "ABI.validate", "invalid type used in typedef `%s`", target)
		}
	}

	for _, s := range a.structs {
		if s.Base != "" {
			current := s
			typesSeen := map[string]bool{current.Name: true}
			for current.Base != "" {
				base, ok := a.structs[current.Base]
				if !ok {
					return newErrorf(KindIntegrity, "ABI.validate", "invalid type used in '%s::base': `%s`", s.Name, current.Base)
				}
				if typesSeen[base.Name] {
					return newErrorf(KindIntegrity, "ABI.validate", "circular reference in struct '%s'", s.Name)
				}
				typesSeen[base.Name] = true
				current = base
			}
		}

		for _, field := range s.Fields {
			if !a.isType(TypeNameRef(field.Type).RemoveBinExtension()) {
				return newErrorf(KindIntegrity, "ABI.validate", "invalid type used in field '%s::%s': `%s`", s.Name, field.Name, field.Type)
			}
		}
	}

	for _, v := range a.variants {
		for _, t := range v.Types {
			if !a.isType(TypeNameRef(t)) {
				return newErrorf(KindIntegrity, "ABI.validate", "invalid type `%s` used in variant '%s'", t, v.Name)
			}
		}
	}

	for name, t := range a.actions {
		if !a.isType(TypeNameRef(t)) {
			return newErrorf(KindIntegrity, "ABI.validate", "invalid type `%s` used in action '%s'", t, name)
		}
	}

	for name, t := range a.tables {
		if !a.isType(TypeNameRef(t)) {
			return newErrorf(KindIntegrity, "ABI.validate", "invalid type `%s` used in table '%s'", t, name)
		}
	}

	for name, t := range a.actionResults {
		if !a.isType(TypeNameRef(t)) {
			return newErrorf(KindIntegrity, "ABI.validate", "invalid type `%s` used in action result '%s'", t, name)
		}
	}

	return nil
}

// encodeContext carries the binary-extension-allowance flag through a
// recursive encode, and a depth counter so malformed/adversarial schemas
// can't blow the Go call stack.
type encodeContext struct {
	allowExtensions bool
	depth           int
}

func newEncodeContext() *encodeContext {
	return &encodeContext{allowExtensions: true}
}

// disallowExtensionsUnless sets allowExtensions to false unless cond
// holds, and returns a restore func the caller defers to pop back to the
// previous value once the scoped region ends (the Go analogue of the
// reference implementation's RAII ScopeExit guard).
func (c *encodeContext) disallowExtensionsUnless(cond bool) func() {
	old := c.allowExtensions
	if !cond {
		c.allowExtensions = false
	}
	return func() { c.allowExtensions = old }
}

func (c *encodeContext) enter() (func(), error) {
	c.depth++
	if c.depth > defaultMaxRecursionDepth {
		return nil, newErrorf(KindEncode, "ABI.encodeVariant", "maximum recursion depth exceeded")
	}
	return func() { c.depth-- }, nil
}

// VariantToBinary renders obj (given as JSON) as the binary encoding of
// typeName, returning the raw bytes.
func (a *ABI) VariantToBinary(typeName string, obj json.RawMessage) ([]byte, error) {
	bs := NewByteStream()
	if err := a.EncodeVariant(bs, typeName, obj); err != nil {
		return nil, err
	}
	return bs.IntoBytes(), nil
}

// EncodeVariant appends the binary encoding of obj (interpreted under
// typeName) onto bs.
func (a *ABI) EncodeVariant(bs *ByteStream, typeName string, obj json.RawMessage) error {
	var generic any
	if err := json.Unmarshal(obj, &generic); err != nil {
		return newErrorf(KindJSON, "ABI.EncodeVariant", "%v", err)
	}
	return a.encodeVariant(newEncodeContext(), bs, TypeNameRef(typeName), generic)
}

func (a *ABI) encodeVariant(ctx *encodeContext, bs *ByteStream, typename TypeNameRef, object any) error {
	exit, err := ctx.enter()
	if err != nil {
		return err
	}
	defer exit()

	rtype := a.resolveType(typename)
	ftype := rtype.FundamentalType()

	if kind, ok := valueKindByName[ftype.String()]; ok {
		switch {
		case rtype.IsArray(), rtype.IsSizedArray():
			arr, ok := object.([]any)
			if !ok {
				return newErrorf(KindEncode, "ABI.encodeVariant", "expected array for type `%s`", rtype)
			}
			EncodeVaruint32(bs, uint32(len(arr)))
			for _, elt := range arr {
				v, err := genericToValue(kind, elt)
				if err != nil {
					return err
				}
				if err := v.ToBin(bs); err != nil {
					return err
				}
			}
		case rtype.IsOptional():
			if object == nil {
				EncodeBool(bs, false)
			} else {
				EncodeBool(bs, true)
				v, err := genericToValue(kind, object)
				if err != nil {
					return err
				}
				if err := v.ToBin(bs); err != nil {
					return err
				}
			}
		default:
			v, err := genericToValue(kind, object)
			if err != nil {
				return err
			}
			if err := v.ToBin(bs); err != nil {
				return err
			}
		}
		return nil
	}

	switch {
	case rtype.IsArray(), rtype.IsSizedArray():
		arr, ok := object.([]any)
		if !ok {
			return newErrorf(KindEncode, "ABI.encodeVariant", "expected array for type `%s`", rtype)
		}
		EncodeVaruint32(bs, uint32(len(arr)))
		for _, elt := range arr {
			if err := a.encodeVariant(ctx, bs, ftype, elt); err != nil {
				return err
			}
		}
		return nil

	case rtype.IsOptional():
		if object == nil {
			EncodeBool(bs, false)
			return nil
		}
		EncodeBool(bs, true)
		return a.encodeVariant(ctx, bs, ftype, object)

	default:
		if variantDef, ok := a.variants[rtype.String()]; ok {
			arr, ok := object.([]any)
			if !ok || len(arr) != 2 {
				return newErrorf(KindEncode, "ABI.encodeVariant",
					"expected input to be an array of 2 elements while processing variant: %v", object)
			}
			variantTypeName, ok := arr[0].(string)
			if !ok {
				return newErrorf(KindEncode, "ABI.encodeVariant", "expected variant typename to be a string: %v", arr[0])
			}
			pos := -1
			for i, vt := range variantDef.Types {
				if vt == variantTypeName {
					pos = i
					break
				}
			}
			if pos < 0 {
				return newErrorf(KindEncode, "ABI.encodeVariant",
					"specified type `%s` is not valid within the variant '%s'", variantTypeName, rtype)
			}
			EncodeVaruint32(bs, uint32(pos))
			return a.encodeVariant(ctx, bs, TypeNameRef(variantTypeName), arr[1])
		}

		if structDef, ok := a.structs[rtype.String()]; ok {
			return a.encodeStruct(ctx, bs, structDef, object)
		}

		return newErrorf(KindEncode, "ABI.encodeVariant", "do not know how to serialize type: `%s`", rtype)
	}
}

func (a *ABI) encodeStruct(ctx *encodeContext, bs *ByteStream, structDef Struct, object any) error {
	if obj, ok := object.(map[string]any); ok {
		if structDef.Base != "" {
			restore := ctx.disallowExtensionsUnless(false)
			err := a.encodeVariant(ctx, bs, TypeNameRef(structDef.Base), obj)
			restore()
			if err != nil {
				return err
			}
		}

		allowAdditionalFields := true
		nfields := len(structDef.Fields)
		for i, field := range structDef.Fields {
			ftype := TypeNameRef(field.Type)
			value, present := obj[field.Name]

			switch {
			case present || ftype.IsOptional():
				if !allowAdditionalFields {
					return newErrorf(KindEncode, "ABI.encodeStruct",
						"unexpected field '%s' found in input object while processing struct '%s'", field.Name, structDef.Name)
				}
				if !present {
					value = nil
				}
				restore := ctx.disallowExtensionsUnless(i == nfields-1)
				err := a.encodeVariant(ctx, bs, ftype.RemoveBinExtension(), value)
				restore()
				if err != nil {
					return err
				}
			case ftype.HasBinExtension() && ctx.allowExtensions:
				allowAdditionalFields = false
			case !allowAdditionalFields:
				return newErrorf(KindEncode, "ABI.encodeStruct",
					"encountered field '%s' without binary extension designation while processing struct '%s'", field.Name, structDef.Name)
			default:
				return newErrorf(KindEncode, "ABI.encodeStruct",
					"missing field '%s' in input object while processing struct '%s'", field.Name, structDef.Name)
			}
		}
		return nil
	}

	if arr, ok := object.([]any); ok {
		if structDef.Base != "" {
			return newErrorf(KindEncode, "ABI.encodeStruct",
				"using input array to specify the fields of the derived struct '%s'; input arrays are currently only allowed for structs without a base", structDef.Name)
		}

		nfields := len(structDef.Fields)
		for i, field := range structDef.Fields {
			ftype := TypeNameRef(field.Type)
			if i < len(arr) {
				restore := ctx.disallowExtensionsUnless(i == nfields-1)
				err := a.encodeVariant(ctx, bs, ftype.RemoveBinExtension(), arr[i])
				restore()
				if err != nil {
					return err
				}
			} else if ftype.HasBinExtension() && ctx.allowExtensions {
				break
			} else {
				return newErrorf(KindEncode, "ABI.encodeStruct",
					"early end to input array specifying the fields of struct '%s'; require input for field '%s'", structDef.Name, field.Name)
			}
		}
		return nil
	}

	return newErrorf(KindEncode, "ABI.encodeStruct", "unexpected input while encoding struct '%s': %v", structDef.Name, object)
}

func genericToValue(kind ValueKind, generic any) (AntelopeValue, error) {
	raw, err := json.Marshal(generic)
	if err != nil {
		return AntelopeValue{}, newErrorf(KindEncode, "genericToValue", "%v", err)
	}
	return ValueFromJSON(kind, raw)
}

// BinaryToVariant decodes the binary encoding of typeName from data,
// returning the result as JSON.
func (a *ABI) BinaryToVariant(typeName string, data []byte) (json.RawMessage, error) {
	bs := NewByteStreamFromBytes(data)
	return a.DecodeVariant(bs, typeName)
}

// DecodeVariant decodes the binary encoding of typeName from bs,
// returning the result as JSON.
func (a *ABI) DecodeVariant(bs *ByteStream, typeName string) (json.RawMessage, error) {
	v, err := a.decodeVariant(&decodeContext{}, bs, TypeNameRef(typeName))
	if err != nil {
		a.log.WithError(err).WithField("type", typeName).Warn("abi decode failed")
		return nil, err
	}
	return json.Marshal(v)
}

type decodeContext struct {
	depth int
}

func (c *decodeContext) enter() (func(), error) {
	c.depth++
	if c.depth > defaultMaxRecursionDepth {
		return nil, newErrorf(KindDecode, "ABI.decodeVariant", "maximum recursion depth exceeded")
	}
	return func() { c.depth-- }, nil
}

func (a *ABI) decodeVariant(ctx *decodeContext, bs *ByteStream, typename TypeNameRef) (any, error) {
	exit, err := ctx.enter()
	if err != nil {
		return nil, err
	}
	defer exit()

	rtype := a.resolveType(typename)
	ftype := rtype.FundamentalType()

	if kind, ok := valueKindByName[ftype.String()]; ok {
		switch {
		case rtype.IsArray(), rtype.IsSizedArray():
			count, err := DecodeVaruint32(bs)
			if err != nil {
				return nil, err
			}
			capHint := int(count)
			if capHint > arrayPreallocCap {
				capHint = arrayPreallocCap
			}
			result := make([]any, 0, capHint)
			for i := uint32(0); i < count; i++ {
				v, err := ValueFromBin(kind, bs)
				if err != nil {
					return nil, err
				}
				j, err := valueToGeneric(v)
				if err != nil {
					return nil, err
				}
				result = append(result, j)
			}
			return result, nil

		case rtype.IsOptional():
			nonNull, err := DecodeBool(bs)
			if err != nil {
				return nil, err
			}
			if !nonNull {
				return nil, nil
			}
			v, err := ValueFromBin(kind, bs)
			if err != nil {
				return nil, err
			}
			return valueToGeneric(v)

		default:
			v, err := ValueFromBin(kind, bs)
			if err != nil {
				return nil, err
			}
			return valueToGeneric(v)
		}
	}

	switch {
	case rtype.IsArray(), rtype.IsSizedArray():
		count, err := DecodeVaruint32(bs)
		if err != nil {
			return nil, err
		}
		capHint := int(count)
		if capHint > arrayPreallocCap {
			capHint = arrayPreallocCap
		}
		result := make([]any, 0, capHint)
		for i := uint32(0); i < count; i++ {
			v, err := a.decodeVariant(ctx, bs, ftype)
			if err != nil {
				return nil, err
			}
			result = append(result, v)
		}
		return result, nil

	case rtype.IsOptional():
		nonNull, err := DecodeBool(bs)
		if err != nil {
			return nil, err
		}
		if !nonNull {
			return nil, nil
		}
		return a.decodeVariant(ctx, bs, ftype)

	default:
		if variantDef, ok := a.variants[rtype.String()]; ok {
			tag, err := DecodeVaruint32(bs)
			if err != nil {
				return nil, err
			}
			if int(tag) >= len(variantDef.Types) {
				return nil, newErrorf(KindDecode, "ABI.decodeVariant", "deserialized invalid tag %d for variant %s", tag, rtype)
			}
			variantType := variantDef.Types[tag]
			inner, err := a.decodeVariant(ctx, bs, TypeNameRef(variantType))
			if err != nil {
				return nil, err
			}
			return []any{variantType, inner}, nil
		}

		if structDef, ok := a.structs[rtype.String()]; ok {
			return a.decodeStruct(ctx, bs, structDef)
		}

		return nil, newErrorf(KindDecode, "ABI.decodeVariant", "do not know how to deserialize type: %s", rtype)
	}
}

func (a *ABI) decodeStruct(ctx *decodeContext, bs *ByteStream, structDef Struct) (map[string]any, error) {
	result := make(map[string]any)

	if structDef.Base != "" {
		baseDef, ok := a.structs[structDef.Base]
		if !ok {
			return nil, newErrorf(KindIntegrity, "ABI.decodeStruct", "invalid type used in '%s::base': `%s`", structDef.Name, structDef.Base)
		}
		base, err := a.decodeStruct(ctx, bs, baseDef)
		if err != nil {
			return nil, err
		}
		for k, v := range base {
			result[k] = v
		}
	}

	encounteredExtension := false
	for _, field := range structDef.Fields {
		ftype := TypeNameRef(field.Type)
		encounteredExtension = encounteredExtension || ftype.HasBinExtension()

		if len(bs.Leftover()) == 0 {
			if ftype.HasBinExtension() {
				continue
			}
			if encounteredExtension {
				return nil, newErrorf(KindDecode, "ABI.decodeStruct",
					"encountered field '%s' without binary extension designation while processing struct '%s'", field.Name, structDef.Name)
			}
			return nil, newErrorf(KindStreamEnded, "ABI.decodeStruct",
				"stream ended unexpectedly; unable to unpack field '%s' of struct '%s'", field.Name, structDef.Name)
		}

		rtype := a.resolveType(ftype.RemoveBinExtension())
		value, err := a.decodeVariant(ctx, bs, rtype)
		if err != nil {
			return nil, err
		}
		result[field.Name] = value
	}

	return result, nil
}

func valueToGeneric(v AntelopeValue) (any, error) {
	raw, err := v.ToJSON()
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, newErrorf(KindDecode, "valueToGeneric", "%v", err)
	}
	return generic, nil
}
