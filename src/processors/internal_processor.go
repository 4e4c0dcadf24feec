package processors

import (
	"fmt"

	"github.com/username/chainfolio/backend/src/models"
)

type InternalProcessor struct{}

func NewInternalProcessor() *InternalProcessor { return &InternalProcessor{} }

// Process converts internal native-value movements into ledger rows. Some
// explorers surface a transaction's top-level transfer redundantly in both
// the native and internal feeds; a same-hash native record with an exactly
// equal value leg marks the internal record as that duplicate and it is
// skipped. Equality is exact, not tolerance-based.
func (p *InternalProcessor) Process(txs []models.ParsedInternalTx, cfg ConversionConfig, index *NativeIndex, ledger *FeeLedger) []models.CoinTrackingRow {
	var rows []models.CoinTrackingRow
	for _, tx := range txs {
		if tx.ValueIn.IsZero() && tx.ValueOut.IsZero() {
			continue
		}

		native, hasNative := index.Lookup(tx.TxHash)

		switch {
		case tx.ValueIn.IsPositive() && tx.To == cfg.UserAddress && tx.From != cfg.UserAddress:
			if hasNative && native.ValueIn.Equal(tx.ValueIn) {
				continue
			}
			row := models.CoinTrackingRow{
				Type:        models.TypeDeposit,
				BuyAmount:   tx.ValueIn.String(),
				BuyCurrency: cfg.NativeSymbol,
				Exchange:    cfg.Exchange,
				Comment:     fmt.Sprintf("Internal in %s", tx.TxHash),
				Date:        tx.DateTime,
			}
			if hasNative {
				attachFee(&row, tx.TxHash, native.Fee, cfg.NativeSymbol, ledger)
			}
			rows = append(rows, row)

		case tx.ValueOut.IsPositive() && tx.From == cfg.UserAddress:
			if hasNative && native.ValueOut.Equal(tx.ValueOut) {
				continue
			}
			row := models.CoinTrackingRow{
				Type:         models.TypeWithdrawal,
				SellAmount:   tx.ValueOut.String(),
				SellCurrency: cfg.NativeSymbol,
				Exchange:     cfg.Exchange,
				Comment:      fmt.Sprintf("Internal out %s", tx.TxHash),
				Date:         tx.DateTime,
			}
			if hasNative {
				attachFee(&row, tx.TxHash, native.Fee, cfg.NativeSymbol, ledger)
			}
			rows = append(rows, row)
		}
	}
	return rows
}
