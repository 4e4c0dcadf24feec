package parsers

import (
	"github.com/username/chainfolio/backend/src/models"
	"github.com/username/chainfolio/backend/src/utils"
)

// ParseTokenRows converts raw ERC-20 transfer rows into typed records.
// Besides the empty-hash filter, rows with a non-positive transfer value are
// dropped (zero-value transfer noise).
func ParseTokenRows(rows []map[string]string) []models.ParsedTokenTransfer {
	resolver := NewFieldResolver()
	var transfers []models.ParsedTokenTransfer
	for _, row := range rows {
		hash := models.NewTxHash(resolver.Resolve(row, FieldTxHash))
		if hash.IsEmpty() {
			continue
		}
		value := resolver.ResolveDecimal(row, FieldValue)
		if !value.IsPositive() {
			continue
		}
		transfers = append(transfers, models.ParsedTokenTransfer{
			TxHash:          hash,
			DateTime:        utils.NormalizeDateTime(resolver.Resolve(row, FieldDateTime)),
			From:            models.NewAddress(resolver.Resolve(row, FieldFrom)),
			To:              models.NewAddress(resolver.Resolve(row, FieldTo)),
			Value:           value,
			Symbol:          resolver.Resolve(row, FieldTokenSymbol),
			TokenName:       resolver.Resolve(row, FieldTokenName),
			ContractAddress: models.NewAddress(resolver.Resolve(row, FieldContractAddress)),
		})
	}
	return transfers
}
