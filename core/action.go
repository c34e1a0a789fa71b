package core

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
)

// PermissionLevel names the actor/permission pair an action runs under,
// e.g. ("alice", "active").
type PermissionLevel struct {
	Actor      Name `json:"actor"`
	Permission Name `json:"permission"`
}

func EncodePermissionLevel(bs *ByteStream, v PermissionLevel) {
	EncodeName(bs, v.Actor)
	EncodeName(bs, v.Permission)
}

func DecodePermissionLevel(bs *ByteStream) (PermissionLevel, error) {
	actor, err := DecodeName(bs)
	if err != nil {
		return PermissionLevel{}, err
	}
	permission, err := DecodeName(bs)
	if err != nil {
		return PermissionLevel{}, err
	}
	return PermissionLevel{Actor: actor, Permission: permission}, nil
}

// ChainAction is one entry of a transaction's action list: the contract
// account and action name select which ABI struct Data was encoded
// against, but this codec carries Data opaquely (already-packed bytes) -
// turning it into a typed payload is the caller's job, via an ABI engine
// for the target contract.
type ChainAction struct {
	Account       Name              `json:"account"`
	Name          Name              `json:"name"`
	Authorization []PermissionLevel `json:"authorization"`
	Data          []byte            `json:"data"`
}

// chainActionJSON mirrors ChainAction but spells Data as hex, the same
// shape as the builtin "bytes" type's JSON rendering (AntelopeValue.ToJSON),
// so action payloads round-trip through the generic ABI engine. MarshalJSON
// writes lowercase hex where ToJSON writes uppercase; decoding accepts both.
type chainActionJSON struct {
	Account       Name              `json:"account"`
	Name          Name              `json:"name"`
	Authorization []PermissionLevel `json:"authorization"`
	Data          string            `json:"data"`
}

func (v ChainAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(chainActionJSON{
		Account:       v.Account,
		Name:          v.Name,
		Authorization: v.Authorization,
		Data:          hex.EncodeToString(v.Data),
	})
}

func (v *ChainAction) UnmarshalJSON(data []byte) error {
	var aux chainActionJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return newErrorf(KindInvalidValue, "ChainAction.UnmarshalJSON", "%v", err)
	}
	raw, err := hex.DecodeString(aux.Data)
	if err != nil {
		return newErrorf(KindHex, "ChainAction.UnmarshalJSON", "invalid hex data: %v", err)
	}
	*v = ChainAction{Account: aux.Account, Name: aux.Name, Authorization: aux.Authorization, Data: raw}
	return nil
}

func EncodeChainAction(bs *ByteStream, v ChainAction) {
	EncodeName(bs, v.Account)
	EncodeName(bs, v.Name)
	EncodeVaruint32(bs, uint32(len(v.Authorization)))
	for _, auth := range v.Authorization {
		EncodePermissionLevel(bs, auth)
	}
	EncodeBytes(bs, v.Data)
}

func DecodeChainAction(bs *ByteStream) (ChainAction, error) {
	account, err := DecodeName(bs)
	if err != nil {
		return ChainAction{}, err
	}
	name, err := DecodeName(bs)
	if err != nil {
		return ChainAction{}, err
	}
	n, err := DecodeVaruint32(bs)
	if err != nil {
		return ChainAction{}, err
	}
	auth := make([]PermissionLevel, 0, n)
	for i := uint32(0); i < n; i++ {
		pl, err := DecodePermissionLevel(bs)
		if err != nil {
			return ChainAction{}, err
		}
		auth = append(auth, pl)
	}
	data, err := DecodeBytes(bs)
	if err != nil {
		return ChainAction{}, err
	}
	return ChainAction{Account: account, Name: name, Authorization: auth, Data: data}, nil
}

// Extension is one entry of a transaction's forward-compatible extension
// list: a type tag paired with opaque, type-specific data.
type Extension struct {
	Type uint16
	Data []byte
}

type extensionJSON struct {
	Type uint16 `json:"type"`
	Data string `json:"data"`
}

func (v Extension) MarshalJSON() ([]byte, error) {
	return json.Marshal(extensionJSON{Type: v.Type, Data: hex.EncodeToString(v.Data)})
}

func (v *Extension) UnmarshalJSON(data []byte) error {
	var aux extensionJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return newErrorf(KindInvalidValue, "Extension.UnmarshalJSON", "%v", err)
	}
	raw, err := hex.DecodeString(aux.Data)
	if err != nil {
		return newErrorf(KindHex, "Extension.UnmarshalJSON", "invalid hex data: %v", err)
	}
	*v = Extension{Type: aux.Type, Data: raw}
	return nil
}

func EncodeExtension(bs *ByteStream, v Extension) {
	EncodeUint16(bs, v.Type)
	EncodeBytes(bs, v.Data)
}

func DecodeExtension(bs *ByteStream) (Extension, error) {
	t, err := DecodeUint16(bs)
	if err != nil {
		return Extension{}, err
	}
	data, err := DecodeBytes(bs)
	if err != nil {
		return Extension{}, err
	}
	return Extension{Type: t, Data: data}, nil
}

// ChainTransaction is the TAPOS transaction header plus its action lists,
// matching the wire layout leap calls `transaction` (transaction_header
// fields first, body fields after).
type ChainTransaction struct {
	Expiration            TimePointSec  `json:"expiration"`
	RefBlockNum           uint16        `json:"ref_block_num"`
	RefBlockPrefix        uint32        `json:"ref_block_prefix"`
	MaxNetUsageWords      uint32        `json:"max_net_usage_words"`
	MaxCPUUsageMS         uint8         `json:"max_cpu_usage_ms"`
	DelaySec              uint32        `json:"delay_sec"`
	ContextFreeActions    []ChainAction `json:"context_free_actions"`
	Actions               []ChainAction `json:"actions"`
	TransactionExtensions []Extension   `json:"transaction_extensions"`
}

// MarshalJSON normalizes nil action/extension lists to "[]": the generic
// ABI engine's array handling expects an actual JSON array for these
// non-optional fields, never "null".
func (tx ChainTransaction) MarshalJSON() ([]byte, error) {
	type alias ChainTransaction
	out := alias(tx)
	if out.ContextFreeActions == nil {
		out.ContextFreeActions = []ChainAction{}
	}
	if out.Actions == nil {
		out.Actions = []ChainAction{}
	}
	if out.TransactionExtensions == nil {
		out.TransactionExtensions = []Extension{}
	}
	return json.Marshal(out)
}

// NewChainTransaction builds a zero-valued header around actions, ready
// for SetReferenceBlock and signing.
func NewChainTransaction(actions []ChainAction) ChainTransaction {
	return ChainTransaction{Actions: actions}
}

// SetReferenceBlock fills in the TAPOS fields from a 32-byte block id, the
// way callers pin a transaction to a recent block to prevent it being
// replayed after a fork: ref_block_num is the low 16 bits of the block
// height folded into the id's first word, ref_block_prefix is the second
// 32-bit word of the id as stored (no byte-order folding needed since
// both sides read it the same way).
func (tx *ChainTransaction) SetReferenceBlock(blockID Checksum256) {
	var word0, word1 uint32
	for i := 0; i < 4; i++ {
		word0 |= uint32(blockID[i]) << (8 * i)
		word1 |= uint32(blockID[4+i]) << (8 * i)
	}
	tx.RefBlockNum = uint16(word0)
	tx.RefBlockPrefix = word1
}

func EncodeChainTransaction(bs *ByteStream, tx ChainTransaction) {
	EncodeTimePointSec(bs, tx.Expiration)
	EncodeUint16(bs, tx.RefBlockNum)
	EncodeUint32(bs, tx.RefBlockPrefix)
	EncodeVaruint32(bs, tx.MaxNetUsageWords)
	bs.WriteByte(tx.MaxCPUUsageMS)
	EncodeVaruint32(bs, tx.DelaySec)

	EncodeVaruint32(bs, uint32(len(tx.ContextFreeActions)))
	for _, a := range tx.ContextFreeActions {
		EncodeChainAction(bs, a)
	}
	EncodeVaruint32(bs, uint32(len(tx.Actions)))
	for _, a := range tx.Actions {
		EncodeChainAction(bs, a)
	}
	EncodeVaruint32(bs, uint32(len(tx.TransactionExtensions)))
	for _, e := range tx.TransactionExtensions {
		EncodeExtension(bs, e)
	}
}

func DecodeChainTransaction(bs *ByteStream) (ChainTransaction, error) {
	var tx ChainTransaction
	var err error

	if tx.Expiration, err = DecodeTimePointSec(bs); err != nil {
		return ChainTransaction{}, err
	}
	if tx.RefBlockNum, err = DecodeUint16(bs); err != nil {
		return ChainTransaction{}, err
	}
	if tx.RefBlockPrefix, err = DecodeUint32(bs); err != nil {
		return ChainTransaction{}, err
	}
	if tx.MaxNetUsageWords, err = DecodeVaruint32(bs); err != nil {
		return ChainTransaction{}, err
	}
	if tx.MaxCPUUsageMS, err = bs.ReadByte(); err != nil {
		return ChainTransaction{}, err
	}
	if tx.DelaySec, err = DecodeVaruint32(bs); err != nil {
		return ChainTransaction{}, err
	}

	n, err := DecodeVaruint32(bs)
	if err != nil {
		return ChainTransaction{}, err
	}
	tx.ContextFreeActions = make([]ChainAction, 0, n)
	for i := uint32(0); i < n; i++ {
		a, err := DecodeChainAction(bs)
		if err != nil {
			return ChainTransaction{}, err
		}
		tx.ContextFreeActions = append(tx.ContextFreeActions, a)
	}

	n, err = DecodeVaruint32(bs)
	if err != nil {
		return ChainTransaction{}, err
	}
	tx.Actions = make([]ChainAction, 0, n)
	for i := uint32(0); i < n; i++ {
		a, err := DecodeChainAction(bs)
		if err != nil {
			return ChainTransaction{}, err
		}
		tx.Actions = append(tx.Actions, a)
	}

	n, err = DecodeVaruint32(bs)
	if err != nil {
		return ChainTransaction{}, err
	}
	tx.TransactionExtensions = make([]Extension, 0, n)
	for i := uint32(0); i < n; i++ {
		e, err := DecodeExtension(bs)
		if err != nil {
			return ChainTransaction{}, err
		}
		tx.TransactionExtensions = append(tx.TransactionExtensions, e)
	}

	return tx, nil
}

// ID hashes the packed transaction body, matching how nodes identify a
// transaction independent of its signatures.
func (tx ChainTransaction) ID() Checksum256 {
	bs := NewByteStream()
	EncodeChainTransaction(bs, tx)
	return sha256.Sum256(bs.IntoBytes())
}

// SigDigest is what signing keys actually sign: chain id, packed
// transaction, and a second hash of the context-free data (or 32 zero
// bytes when there is none).
func (tx ChainTransaction) SigDigest(chainID Checksum256, contextFreeData []byte) Checksum256 {
	h := sha256.New()
	h.Write(chainID[:])

	bs := NewByteStream()
	EncodeChainTransaction(bs, tx)
	h.Write(bs.IntoBytes())

	if len(contextFreeData) > 0 {
		cfd := sha256.Sum256(contextFreeData)
		h.Write(cfd[:])
	} else {
		var zero Checksum256
		h.Write(zero[:])
	}

	var digest Checksum256
	copy(digest[:], h.Sum(nil))
	return digest
}

// SignedChainTransaction pairs a transaction with the signatures over its
// SigDigest, plus the fields leap's push_transaction RPC expects
// alongside it.
type SignedChainTransaction struct {
	Transaction     ChainTransaction
	Signatures      []Signature
	ContextFreeData [][]byte
}

// PackedTransaction hex-encodes Transaction for wire transport, matching
// the "packed_trx" field of a pushed, signed transaction.
func (stx SignedChainTransaction) PackedTransaction() string {
	bs := NewByteStream()
	EncodeChainTransaction(bs, stx.Transaction)
	return bs.HexData()
}

// TransactionABI describes permission_level/action/extension/transaction
// as an ordinary ABI document, letting a generic ABI engine walk a
// ChainTransaction the same way it would walk a contract-defined struct
// instead of only through the hand-written Encode/DecodeChainTransaction
// pair above (which mirrors the wire format's own
// ABISerializable-style manual implementation).
func TransactionABI() ABIDefinition {
	return ABIDefinition{
		Version: DefaultABIVersion,
		Structs: []Struct{
			{
				Name: "permission_level",
				Fields: []Field{
					{Name: "actor", Type: "name"},
					{Name: "permission", Type: "name"},
				},
			},
			{
				Name: "action",
				Fields: []Field{
					{Name: "account", Type: "name"},
					{Name: "name", Type: "name"},
					{Name: "authorization", Type: "permission_level[]"},
					{Name: "data", Type: "bytes"},
				},
			},
			{
				Name: "extension",
				Fields: []Field{
					{Name: "type", Type: "uint16"},
					{Name: "data", Type: "bytes"},
				},
			},
			{
				Name: "transaction",
				Fields: []Field{
					{Name: "expiration", Type: "time_point_sec"},
					{Name: "ref_block_num", Type: "uint16"},
					{Name: "ref_block_prefix", Type: "uint32"},
					{Name: "max_net_usage_words", Type: "varuint32"},
					{Name: "max_cpu_usage_ms", Type: "uint8"},
					{Name: "delay_sec", Type: "varuint32"},
					{Name: "context_free_actions", Type: "action[]"},
					{Name: "actions", Type: "action[]"},
					{Name: "transaction_extensions", Type: "extension[]"},
				},
			},
		},
	}
}

var (
	transactionEngineOnce sync.Once
	transactionEngineInst *ABI
)

func transactionEngine() *ABI {
	transactionEngineOnce.Do(func() {
		eng, err := FromDefinition(TransactionABI())
		if err != nil {
			panic("core: transaction ABI definition failed to validate: " + err.Error())
		}
		transactionEngineInst = eng
	})
	return transactionEngineInst
}

// EncodeViaABI packs tx through the generic ABI engine against
// TransactionABI, rather than the hand-written binary layout in
// EncodeChainTransaction. Both produce byte-identical output; this path
// exists to exercise the struct-walking engine against a real
// multi-field, nested, array-bearing type.
func (tx ChainTransaction) EncodeViaABI(bs *ByteStream) error {
	raw, err := json.Marshal(tx)
	if err != nil {
		return newErrorf(KindEncode, "ChainTransaction.EncodeViaABI", "%v", err)
	}
	return transactionEngine().EncodeVariant(bs, "transaction", raw)
}

// DecodeChainTransactionViaABI is the decode counterpart of EncodeViaABI.
func DecodeChainTransactionViaABI(bs *ByteStream) (ChainTransaction, error) {
	raw, err := transactionEngine().DecodeVariant(bs, "transaction")
	if err != nil {
		return ChainTransaction{}, err
	}
	var tx ChainTransaction
	if err := json.Unmarshal(raw, &tx); err != nil {
		return ChainTransaction{}, newErrorf(KindDecode, "DecodeChainTransactionViaABI", "%v", err)
	}
	return tx, nil
}
