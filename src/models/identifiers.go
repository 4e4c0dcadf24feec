package models

import "strings"

// Address is a lowercase-normalized wallet or contract identifier.
// Construction through NewAddress is the single normalization point:
// comparisons elsewhere never re-lowercase.
type Address string

// TxHash is a lowercase-normalized transaction identifier. It is the
// correlation key across all export categories: rows from different files
// describing the same on-chain transaction share a TxHash.
type TxHash string

// ZeroAddress is the burn/mint sentinel address.
const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

func NewAddress(raw string) Address {
	return Address(strings.ToLower(strings.TrimSpace(raw)))
}

func NewTxHash(raw string) TxHash {
	return TxHash(strings.ToLower(strings.TrimSpace(raw)))
}

func (a Address) String() string { return string(a) }

func (a Address) IsEmpty() bool { return a == "" }

// IsZero reports whether the address is the zero address (a transfer from it
// is a mint, a transfer to it is a burn).
func (a Address) IsZero() bool { return a == ZeroAddress }

func (h TxHash) String() string { return string(h) }

func (h TxHash) IsEmpty() bool { return h == "" }
