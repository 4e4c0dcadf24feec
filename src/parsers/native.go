package parsers

import (
	"github.com/username/chainfolio/backend/src/models"
	"github.com/username/chainfolio/backend/src/utils"
)

// ParseNativeRows converts raw native-transfer rows into typed records.
// Rows with an empty resolved transaction hash (header remnants, garbage
// lines) are dropped. A single malformed row never fails the batch: bad
// numeric cells degrade to zero.
func ParseNativeRows(rows []map[string]string) []models.ParsedNativeTx {
	resolver := NewFieldResolver()
	var txs []models.ParsedNativeTx
	for _, row := range rows {
		hash := models.NewTxHash(resolver.Resolve(row, FieldTxHash))
		if hash.IsEmpty() {
			continue
		}
		txs = append(txs, models.ParsedNativeTx{
			TxHash:   hash,
			DateTime: utils.NormalizeDateTime(resolver.Resolve(row, FieldDateTime)),
			From:     models.NewAddress(resolver.Resolve(row, FieldFrom)),
			To:       models.NewAddress(resolver.Resolve(row, FieldTo)),
			ValueIn:  resolver.ResolveDecimal(row, FieldValueIn),
			ValueOut: resolver.ResolveDecimal(row, FieldValueOut),
			Fee:      resolver.ResolveDecimal(row, FieldFee),
			Method:   resolver.Resolve(row, FieldMethod),
		})
	}
	return txs
}
