package core

import (
	"strconv"
	"strings"
)

// MaxAssetAmount bounds Asset.Amount to the range the wire format and
// downstream arithmetic can safely carry (matches the Antelope reference
// chain's asset.hpp).
const MaxAssetAmount int64 = (1 << 62) - 1

// Asset is a signed fixed-point quantity tagged with its Symbol.
type Asset struct {
	Amount int64
	Sym    Symbol
}

// NewAsset validates amount against the +/-2^62-1 range.
func NewAsset(amount int64, sym Symbol) (Asset, error) {
	if amount < -MaxAssetAmount || amount > MaxAssetAmount {
		return Asset{}, newErrorf(KindInvalidValue, "NewAsset", "amount out of range, max is 2^62-1")
	}
	return Asset{Amount: amount, Sym: sym}, nil
}

func (a Asset) SymbolName() string { return a.Sym.Name() }
func (a Asset) Decimals() uint8    { return a.Sym.Decimals() }
func (a Asset) Precision() int64   { return a.Sym.Precision() }
func (a Asset) ToReal() float64    { return float64(a.Amount) / float64(a.Precision()) }

// String renders "<integer>[.<fraction>] <CODE>", matching the reference
// Display implementation digit-for-digit (including zero-padded fractions).
func (a Asset) String() string {
	sign := ""
	absAmount := a.Amount
	if absAmount < 0 {
		sign = "-"
		absAmount = -absAmount
	}
	precision := a.Precision()
	var sb strings.Builder
	sb.WriteString(sign)
	sb.WriteString(strconv.FormatInt(absAmount/precision, 10))
	if a.Decimals() != 0 {
		frac := absAmount % precision
		padded := strconv.FormatInt(precision+frac, 10)
		sb.WriteByte('.')
		sb.WriteString(padded[1:])
	}
	sb.WriteByte(' ')
	sb.WriteString(a.SymbolName())
	return sb.String()
}

// NewAssetFromString parses the canonical "<amount> <CODE>" textual form,
// inferring the symbol's precision from the number of digits after the
// decimal point.
func NewAssetFromString(s string) (Asset, error) {
	s = strings.TrimSpace(s)
	spacePos := strings.IndexByte(s, ' ')
	if spacePos < 0 {
		return Asset{}, newErrorf(KindInvalidValue, "NewAssetFromString", "asset amount and symbol should be separated with space")
	}
	amountStr := s[:spacePos]
	symbolStr := strings.TrimSpace(s[spacePos+1:])

	dotPos := strings.IndexByte(amountStr, '.')
	var precision int
	if dotPos >= 0 {
		if dotPos == len(amountStr)-1 {
			return Asset{}, newErrorf(KindInvalidValue, "NewAssetFromString", "missing decimal fraction after decimal point")
		}
		precision = len(amountStr) - dotPos - 1
	}

	sym, err := NewSymbol(strconv.Itoa(precision) + "," + symbolStr)
	if err != nil {
		return Asset{}, err
	}

	var amount int64
	if dotPos < 0 {
		amount, err = strconv.ParseInt(amountStr, 10, 64)
		if err != nil {
			return Asset{}, newErrorf(KindInvalidValue, "NewAssetFromString", "could not parse amount for asset")
		}
	} else {
		intPart, err1 := strconv.ParseInt(amountStr[:dotPos], 10, 64)
		fracPart, err2 := strconv.ParseInt(amountStr[dotPos+1:], 10, 64)
		if err1 != nil || err2 != nil {
			return Asset{}, newErrorf(KindInvalidValue, "NewAssetFromString", "could not parse amount for asset")
		}
		if strings.HasPrefix(amountStr, "-") {
			fracPart = -fracPart
		}
		p := sym.Precision()
		mul := intPart * p
		if p != 0 && mul/p != intPart {
			return Asset{}, newErrorf(KindInvalidValue, "NewAssetFromString", "amount overflow for: %s", amountStr)
		}
		amount = mul + fracPart
	}

	return NewAsset(amount, sym)
}

func EncodeAsset(bs *ByteStream, v Asset) {
	EncodeInt64(bs, v.Amount)
	EncodeSymbol(bs, v.Sym)
}

func DecodeAsset(bs *ByteStream) (Asset, error) {
	amount, err := DecodeInt64(bs)
	if err != nil {
		return Asset{}, err
	}
	sym, err := DecodeSymbol(bs)
	if err != nil {
		return Asset{}, err
	}
	return NewAsset(amount, sym)
}

// ExtendedAsset pairs an Asset with the contract Name that issues it.
type ExtendedAsset struct {
	Quantity Asset
	Contract Name
}

func EncodeExtendedAsset(bs *ByteStream, v ExtendedAsset) {
	EncodeAsset(bs, v.Quantity)
	EncodeName(bs, v.Contract)
}

func DecodeExtendedAsset(bs *ByteStream) (ExtendedAsset, error) {
	q, err := DecodeAsset(bs)
	if err != nil {
		return ExtendedAsset{}, err
	}
	c, err := DecodeName(bs)
	if err != nil {
		return ExtendedAsset{}, err
	}
	return ExtendedAsset{Quantity: q, Contract: c}, nil
}
