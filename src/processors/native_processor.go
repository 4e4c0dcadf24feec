package processors

import (
	"fmt"

	"github.com/username/chainfolio/backend/src/models"
)

// nativeTxKind is the classification outcome for one native record. The
// decision is made by classifyNativeTx alone; row construction never
// re-derives it.
type nativeTxKind int

const (
	nativeUnclassified nativeTxKind = iota
	nativeSkip
	nativeBridgeDeposit
	nativeDeposit
	nativeWithdrawal
	nativeFeeOnly
)

type NativeProcessor struct{}

func NewNativeProcessor() *NativeProcessor { return &NativeProcessor{} }

// Process converts native records into ledger rows. Hashes in skipHashes
// were already fully explained by the token processor (swap legs) and are
// not re-emitted as plain withdrawals or fee rows.
func (p *NativeProcessor) Process(txs []models.ParsedNativeTx, cfg ConversionConfig, ledger *FeeLedger, skipHashes HashSet) []models.CoinTrackingRow {
	var rows []models.CoinTrackingRow
	for _, tx := range txs {
		if skipHashes.Contains(tx.TxHash) {
			continue
		}
		kind := classifyNativeTx(tx, cfg.UserAddress)
		if row := buildNativeRow(kind, tx, cfg, ledger); row != nil {
			rows = append(rows, *row)
		}
	}
	return rows
}

// classifyNativeTx decides the record's kind. Cases are mutually exclusive,
// first match wins. The skip rule is the permissive variant: a zero-value
// transaction with a nonzero fee is still a fee-only row, not inert.
func classifyNativeTx(tx models.ParsedNativeTx, user models.Address) nativeTxKind {
	valueIn := tx.ValueIn.IsPositive()
	valueOut := tx.ValueOut.IsPositive()

	switch {
	case !valueIn && !valueOut && !tx.Fee.IsPositive():
		return nativeSkip
	case valueIn && tx.From == user && tx.To == user:
		// Some L2 bridge deposits surface on-chain as self-transfers.
		return nativeBridgeDeposit
	case valueIn && tx.To == user && tx.From != user:
		return nativeDeposit
	case valueOut && tx.From == user:
		return nativeWithdrawal
	case !valueIn && !valueOut && tx.Fee.IsPositive():
		return nativeFeeOnly
	default:
		return nativeUnclassified
	}
}

func buildNativeRow(kind nativeTxKind, tx models.ParsedNativeTx, cfg ConversionConfig, ledger *FeeLedger) *models.CoinTrackingRow {
	switch kind {
	case nativeBridgeDeposit:
		row := &models.CoinTrackingRow{
			Type:        models.TypeDeposit,
			BuyAmount:   tx.ValueIn.String(),
			BuyCurrency: cfg.NativeSymbol,
			Exchange:    cfg.Exchange,
			Comment:     fmt.Sprintf("Bridge deposit %s", tx.TxHash),
			Date:        tx.DateTime,
		}
		attachFee(row, tx.TxHash, tx.Fee, cfg.NativeSymbol, ledger)
		return row

	case nativeDeposit:
		row := &models.CoinTrackingRow{
			Type:        models.TypeDeposit,
			BuyAmount:   tx.ValueIn.String(),
			BuyCurrency: cfg.NativeSymbol,
			Exchange:    cfg.Exchange,
			Comment:     fmt.Sprintf("Native in %s", tx.TxHash),
			Date:        tx.DateTime,
		}
		attachFee(row, tx.TxHash, tx.Fee, cfg.NativeSymbol, ledger)
		return row

	case nativeWithdrawal:
		comment := fmt.Sprintf("Native out %s", tx.TxHash)
		if tx.Method != "" {
			comment = fmt.Sprintf("%s %s", tx.Method, tx.TxHash)
		}
		row := &models.CoinTrackingRow{
			Type:         models.TypeWithdrawal,
			SellAmount:   tx.ValueOut.String(),
			SellCurrency: cfg.NativeSymbol,
			Exchange:     cfg.Exchange,
			Comment:      comment,
			Date:         tx.DateTime,
		}
		attachFee(row, tx.TxHash, tx.Fee, cfg.NativeSymbol, ledger)
		return row

	case nativeFeeOnly:
		// Output-format convention: a fee with no principal transaction is
		// reported as a sale of native currency, Fee columns stay empty.
		// The amount is the row's value, so the fee ledger is not involved.
		return &models.CoinTrackingRow{
			Type:         models.TypeOtherFee,
			SellAmount:   tx.Fee.String(),
			SellCurrency: cfg.NativeSymbol,
			Exchange:     cfg.Exchange,
			Comment:      fmt.Sprintf("Fee %s", tx.TxHash),
			Date:         tx.DateTime,
		}

	default:
		return nil
	}
}
