package core

import (
	"encoding/hex"
	"encoding/json"
	"testing"
)

const transactionEnvelopeJSON = `{
	"expiration":"2009-02-13T23:31:31.000",
	"ref_block_num":1234,
	"ref_block_prefix":5678,
	"max_net_usage_words":0,
	"max_cpu_usage_ms":0,
	"delay_sec":0,
	"context_free_actions":[],
	"actions":[{
		"account":"eosio.token",
		"name":"transfer",
		"authorization":[{"actor":"useraaaaaaaa","permission":"active"}],
		"data":"608c31c6187315d6708c31c6187315d60100000000000000045359530000000000"
	}],
	"transaction_extensions":[]
}`

const transactionEnvelopeHex = "d3029649d2042e160000000000000100a6823403ea3055000000572d3ccdcd01608c31c6187315d600000000a8ed323221608c31c6187315d6708c31c6187315d6010000000000000004535953000000000000"

func decodeEnvelopeFixture(t *testing.T) ChainTransaction {
	t.Helper()
	var tx ChainTransaction
	if err := json.Unmarshal([]byte(transactionEnvelopeJSON), &tx); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return tx
}

func TestChainTransactionEncodeHandRolled(t *testing.T) {
	tx := decodeEnvelopeFixture(t)

	bs := NewByteStream()
	EncodeChainTransaction(bs, tx)
	if got := bs.HexData(); got != transactionEnvelopeHex {
		t.Fatalf("EncodeChainTransaction = %s, want %s", got, transactionEnvelopeHex)
	}

	rs := NewByteStreamFromBytes(bs.IntoBytes())
	decoded, err := DecodeChainTransaction(rs)
	if err != nil {
		t.Fatalf("DecodeChainTransaction: %v", err)
	}
	if len(decoded.Actions) != 1 {
		t.Fatalf("decoded.Actions = %+v, want 1 action", decoded.Actions)
	}
	if decoded.Actions[0].Account.String() != "eosio.token" {
		t.Errorf("Account = %q, want eosio.token", decoded.Actions[0].Account.String())
	}
	if decoded.Actions[0].Name.String() != "transfer" {
		t.Errorf("Name = %q, want transfer", decoded.Actions[0].Name.String())
	}
	if len(decoded.Actions[0].Authorization) != 1 {
		t.Fatalf("Authorization = %+v, want 1 entry", decoded.Actions[0].Authorization)
	}
	if decoded.Actions[0].Authorization[0].Actor.String() != "useraaaaaaaa" {
		t.Errorf("Actor = %q, want useraaaaaaaa", decoded.Actions[0].Authorization[0].Actor.String())
	}
	if decoded.RefBlockNum != 1234 || decoded.RefBlockPrefix != 5678 {
		t.Errorf("RefBlockNum/Prefix = %d/%d, want 1234/5678", decoded.RefBlockNum, decoded.RefBlockPrefix)
	}

	// re-encoding the decoded value must reproduce the same bytes.
	bs2 := NewByteStream()
	EncodeChainTransaction(bs2, decoded)
	if got := bs2.HexData(); got != transactionEnvelopeHex {
		t.Fatalf("re-encoded = %s, want %s", got, transactionEnvelopeHex)
	}
}

func TestChainTransactionEncodeViaABI(t *testing.T) {
	tx := decodeEnvelopeFixture(t)

	bs := NewByteStream()
	if err := tx.EncodeViaABI(bs); err != nil {
		t.Fatalf("EncodeViaABI: %v", err)
	}
	if got := bs.HexData(); got != transactionEnvelopeHex {
		t.Fatalf("EncodeViaABI = %s, want %s", got, transactionEnvelopeHex)
	}

	rs := NewByteStreamFromBytes(bs.IntoBytes())
	decoded, err := DecodeChainTransactionViaABI(rs)
	if err != nil {
		t.Fatalf("DecodeChainTransactionViaABI: %v", err)
	}
	if len(decoded.Actions) != 1 || decoded.Actions[0].Account.String() != "eosio.token" {
		t.Fatalf("decoded via ABI = %+v", decoded)
	}
	if decoded.RefBlockNum != 1234 || decoded.RefBlockPrefix != 5678 {
		t.Errorf("RefBlockNum/Prefix = %d/%d, want 1234/5678", decoded.RefBlockNum, decoded.RefBlockPrefix)
	}
}

func TestChainActionDataHexJSON(t *testing.T) {
	act := ChainAction{
		Account: mustName(t, "eosio.token"),
		Name:    mustName(t, "transfer"),
		Authorization: []PermissionLevel{
			{Actor: mustName(t, "useraaaaaaaa"), Permission: mustName(t, "active")},
		},
		Data: []byte{0xde, 0xad, 0xbe, 0xef},
	}
	raw, err := json.Marshal(act)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal to map: %v", err)
	}
	if m["data"] != "deadbeef" {
		t.Fatalf("data field = %v, want hex string deadbeef", m["data"])
	}

	var back ChainAction
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if hex.EncodeToString(back.Data) != "deadbeef" {
		t.Fatalf("round-tripped Data = %x, want deadbeef", back.Data)
	}
}

func mustName(t *testing.T, s string) Name {
	t.Helper()
	n, err := NewName(s)
	if err != nil {
		t.Fatalf("NewName(%q): %v", s, err)
	}
	return n
}
