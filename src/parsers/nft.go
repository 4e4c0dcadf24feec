package parsers

import (
	"github.com/shopspring/decimal"

	"github.com/username/chainfolio/backend/src/models"
	"github.com/username/chainfolio/backend/src/utils"
)

// ParseNft721Rows converts raw ERC-721 transfer rows into typed records.
// Quantity is always 1 for single-ownership tokens.
func ParseNft721Rows(rows []map[string]string) []models.ParsedNftTransfer {
	return parseNftRows(rows, false)
}

// ParseNft1155Rows converts raw ERC-1155 transfer rows into typed records.
// Quantity is the transferred unit count from the row's value column and may
// be fractional; rows with a non-positive quantity are dropped.
func ParseNft1155Rows(rows []map[string]string) []models.ParsedNftTransfer {
	return parseNftRows(rows, true)
}

func parseNftRows(rows []map[string]string, quantityFromRow bool) []models.ParsedNftTransfer {
	resolver := NewFieldResolver()
	var transfers []models.ParsedNftTransfer
	for _, row := range rows {
		hash := models.NewTxHash(resolver.Resolve(row, FieldTxHash))
		if hash.IsEmpty() {
			continue
		}

		quantity := decimal.NewFromInt(1)
		if quantityFromRow {
			quantity = resolver.ResolveDecimal(row, FieldQuantity)
			if !quantity.IsPositive() {
				continue
			}
		}

		transfers = append(transfers, models.ParsedNftTransfer{
			TxHash:          hash,
			DateTime:        utils.NormalizeDateTime(resolver.Resolve(row, FieldDateTime)),
			From:            models.NewAddress(resolver.Resolve(row, FieldFrom)),
			To:              models.NewAddress(resolver.Resolve(row, FieldTo)),
			TokenID:         resolver.Resolve(row, FieldTokenID),
			TokenSymbol:     resolver.Resolve(row, FieldTokenSymbol),
			TokenName:       resolver.Resolve(row, FieldTokenName),
			ContractAddress: models.NewAddress(resolver.Resolve(row, FieldContractAddress)),
			Quantity:        quantity,
		})
	}
	return transfers
}
