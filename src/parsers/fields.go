package parsers

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Semantic field keys resolved against explorer CSV columns.
const (
	FieldTxHash          = "txHash"
	FieldDateTime        = "dateTime"
	FieldFrom            = "from"
	FieldTo              = "to"
	FieldValueIn         = "valueIn"
	FieldValueOut        = "valueOut"
	FieldValue           = "value"
	FieldFee             = "fee"
	FieldMethod          = "method"
	FieldTokenSymbol     = "tokenSymbol"
	FieldTokenName       = "tokenName"
	FieldContractAddress = "contractAddress"
	FieldTokenID         = "tokenId"
	FieldQuantity        = "quantity"
)

// fieldVariants maps each semantic key to the exact column names (compared
// case-insensitively) seen across explorer exports. Symbol-suffixed columns
// like "Value_IN(MNT)" are covered by fieldPatterns instead.
var fieldVariants = map[string][]string{
	FieldTxHash:          {"txhash", "transaction hash", "transactionhash", "tx hash", "hash"},
	FieldDateTime:        {"datetime (utc)", "datetime(utc)", "datetime", "date time (utc)", "date"},
	FieldFrom:            {"from", "from address", "fromaddress", "sender"},
	FieldTo:              {"to", "to address", "toaddress", "txto", "receiver"},
	FieldValueIn:         {"value_in", "value in", "valuein"},
	FieldValueOut:        {"value_out", "value out", "valueout"},
	FieldValue:           {"value", "tokenvalue", "token value", "amount"},
	FieldFee:             {"txnfee", "txn fee", "fee", "transaction fee", "gas fee"},
	FieldMethod:          {"method", "method called", "function"},
	FieldTokenSymbol:     {"tokensymbol", "token symbol", "symbol"},
	FieldTokenName:       {"tokenname", "token name"},
	FieldContractAddress: {"contractaddress", "contract address", "token contract address"},
	FieldTokenID:         {"tokenid", "token id", "token_id"},
	FieldQuantity:        {"quantity", "tokenvalue", "token value", "value", "amount"},
}

// fieldPatterns matches symbol-suffixed column headers, e.g. "Value_IN(MNT)",
// "TxnFee(ETH)", "Value(BNB)".
var fieldPatterns = map[string][]*regexp.Regexp{
	FieldValueIn:  {regexp.MustCompile(`(?i)^value_?in\s*\([^)]*\)$`)},
	FieldValueOut: {regexp.MustCompile(`(?i)^value_?out\s*\([^)]*\)$`)},
	FieldValue:    {regexp.MustCompile(`(?i)^value\s*\([^)]*\)$`)},
	FieldFee:      {regexp.MustCompile(`(?i)^txn\s*fee\s*\([^)]*\)$`)},
}

// FieldResolver maps loosely-structured, heterogeneously-named CSV columns
// to the fixed semantic field set. It has no side effects.
type FieldResolver struct{}

func NewFieldResolver() *FieldResolver { return &FieldResolver{} }

// Resolve returns the first value in the row whose column name matches one
// of the key's known variants, or the empty string when no column matches.
func (r *FieldResolver) Resolve(row map[string]string, key string) string {
	for _, variant := range fieldVariants[key] {
		for column, value := range row {
			if strings.EqualFold(strings.TrimSpace(column), variant) {
				return value
			}
		}
	}
	for _, pattern := range fieldPatterns[key] {
		for column, value := range row {
			if pattern.MatchString(strings.TrimSpace(column)) {
				return value
			}
		}
	}
	return ""
}

// ResolveDecimal resolves a field and pushes it through the numeric
// normalizer. It never fails: anything unparseable degrades to zero.
func (r *FieldResolver) ResolveDecimal(row map[string]string, key string) decimal.Decimal {
	return NormalizeDecimal(r.Resolve(row, key))
}

// NormalizeDecimal strips thousands separators and whitespace and parses the
// result as a decimal. Anything that does not parse to a finite number
// yields zero; the normalizer never returns an error.
func NormalizeDecimal(raw string) decimal.Decimal {
	cleaned := strings.Map(func(ch rune) rune {
		switch ch {
		case ',', ' ', ' ', '\t':
			return -1
		}
		return ch
	}, strings.TrimSpace(raw))

	if cleaned == "" {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return value
}
