package parsers

import (
	"github.com/username/chainfolio/backend/src/models"
	"github.com/username/chainfolio/backend/src/utils"
)

// ParseInternalRows converts raw internal-transaction rows into typed
// records. Only the empty-hash filter applies here: zero-valued internal
// records are still parsed and skipped later by the processor.
func ParseInternalRows(rows []map[string]string) []models.ParsedInternalTx {
	resolver := NewFieldResolver()
	var txs []models.ParsedInternalTx
	for _, row := range rows {
		hash := models.NewTxHash(resolver.Resolve(row, FieldTxHash))
		if hash.IsEmpty() {
			continue
		}
		txs = append(txs, models.ParsedInternalTx{
			TxHash:          hash,
			DateTime:        utils.NormalizeDateTime(resolver.Resolve(row, FieldDateTime)),
			From:            models.NewAddress(resolver.Resolve(row, FieldFrom)),
			To:              models.NewAddress(resolver.Resolve(row, FieldTo)),
			ValueIn:         resolver.ResolveDecimal(row, FieldValueIn),
			ValueOut:        resolver.ResolveDecimal(row, FieldValueOut),
			ContractAddress: models.NewAddress(resolver.Resolve(row, FieldContractAddress)),
		})
	}
	return txs
}
