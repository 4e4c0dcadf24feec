package parsers

import "strings"

// Category identifies which explorer export a CSV file came from.
type Category string

const (
	CategoryNative   Category = "native"
	CategoryToken    Category = "erc20"
	CategoryInternal Category = "internal"
	CategoryNft721   Category = "erc721"
	CategoryNft1155  Category = "erc1155"
	CategoryUnknown  Category = "unknown"
)

// DetectCategory guesses the export category from header shape. Signature
// columns, most specific first: internal exports carry parent-transaction
// columns, NFT exports carry a token id (ERC-1155 additionally a quantity),
// token exports carry a token symbol without in/out value split, native
// exports carry the in/out value split.
func DetectCategory(rows []map[string]string) Category {
	if len(rows) == 0 {
		return CategoryUnknown
	}

	columns := make(map[string]bool)
	for column := range rows[0] {
		columns[normalizeColumn(column)] = true
	}

	hasAny := func(names ...string) bool {
		for _, name := range names {
			if columns[name] {
				return true
			}
		}
		return false
	}

	switch {
	case hasAny("parenttxfrom", "parenttxto", "parenttxeth_value"):
		return CategoryInternal
	case hasAny("tokenid", "token id", "token_id"):
		if hasAny("tokenvalue", "token value", "quantity") {
			return CategoryNft1155
		}
		return CategoryNft721
	case hasAny("tokensymbol", "token symbol"):
		return CategoryToken
	case hasAny("value_in", "value in", "valuein") || hasValueInPattern(rows[0]):
		return CategoryNative
	default:
		return CategoryUnknown
	}
}

func hasValueInPattern(row map[string]string) bool {
	for column := range row {
		if fieldPatterns[FieldValueIn][0].MatchString(strings.TrimSpace(column)) {
			return true
		}
	}
	return false
}

func normalizeColumn(column string) string {
	column = strings.ToLower(strings.TrimSpace(column))
	// Strip a symbol suffix like "(eth)" so "value_in(eth)" matches "value_in".
	if i := strings.IndexByte(column, '('); i > 0 {
		column = strings.TrimSpace(column[:i])
	}
	return column
}
