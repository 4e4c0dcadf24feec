package models

import "github.com/shopspring/decimal"

// ParsedNativeTx is one native-currency transfer attempt from the explorer's
// transaction export. At most one of ValueIn/ValueOut is nonzero for a
// genuine transfer; both can be zero for a fee-only or failed call. Fee is
// the gas cost paid by the signer, present even when no value moved.
type ParsedNativeTx struct {
	TxHash   TxHash
	DateTime string
	From     Address
	To       Address
	ValueIn  decimal.Decimal
	ValueOut decimal.Decimal
	Fee      decimal.Decimal
	Method   string
}

// ParsedTokenTransfer is one ERC-20 transfer leg. Multiple legs can share a
// TxHash (a swap produces at least one outgoing and one incoming leg).
type ParsedTokenTransfer struct {
	TxHash          TxHash
	DateTime        string
	From            Address
	To              Address
	Value           decimal.Decimal
	Symbol          string
	TokenName       string
	ContractAddress Address
}

// ParsedInternalTx is a native-value movement caused by contract execution,
// not visible in the top-level transaction export.
type ParsedInternalTx struct {
	TxHash          TxHash
	DateTime        string
	From            Address
	To              Address
	ValueIn         decimal.Decimal
	ValueOut        decimal.Decimal
	ContractAddress Address
}

// ParsedNftTransfer is one NFT ownership transfer. Quantity is always 1 for
// ERC-721; for ERC-1155 it is the transferred unit count and may be
// fractional in source data.
type ParsedNftTransfer struct {
	TxHash          TxHash
	DateTime        string
	From            Address
	To              Address
	TokenID         string
	TokenSymbol     string
	TokenName       string
	ContractAddress Address
	Quantity        decimal.Decimal
}
