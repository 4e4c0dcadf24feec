package processors

import (
	"github.com/shopspring/decimal"

	"github.com/username/chainfolio/backend/src/models"
)

// attachFee writes the hash's gas fee into the row if, and only if, no other
// row of this run has claimed it yet. Zero fees are never claimed, so a
// later processor with a real fee context for the hash can still win.
func attachFee(row *models.CoinTrackingRow, hash models.TxHash, fee decimal.Decimal, nativeSymbol string, ledger *FeeLedger) {
	if row == nil || !fee.IsPositive() {
		return
	}
	if !ledger.Claim(hash) {
		return
	}
	row.Fee = fee.String()
	row.FeeCurrency = nativeSymbol
}
