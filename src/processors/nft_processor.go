package processors

import (
	"fmt"

	"github.com/username/chainfolio/backend/src/models"
)

// NftProcessor handles ERC-721 and ERC-1155 transfers. The two standards
// share all classification logic and differ only in where the parsed
// quantity came from.
type NftProcessor struct{}

func NewNftProcessor() *NftProcessor { return &NftProcessor{} }

func (p *NftProcessor) Process(transfers []models.ParsedNftTransfer, cfg ConversionConfig, index *NativeIndex, ledger *FeeLedger) []models.CoinTrackingRow {
	var rows []models.CoinTrackingRow
	for _, t := range transfers {
		if row := p.processTransfer(t, cfg, index, ledger); row != nil {
			rows = append(rows, *row)
		}
	}
	return rows
}

func (p *NftProcessor) processTransfer(t models.ParsedNftTransfer, cfg ConversionConfig, index *NativeIndex, ledger *FeeLedger) *models.CoinTrackingRow {
	currency := NftCurrency(t.TokenSymbol, t.TokenID)
	native, hasNative := index.Lookup(t.TxHash)

	var row *models.CoinTrackingRow
	switch {
	case t.To == cfg.UserAddress && t.From != cfg.UserAddress:
		switch {
		case hasNative && native.ValueOut.IsPositive():
			// Native currency left in the same transaction: the NFT was
			// paid for, so this is a trade rather than a free deposit.
			comment := "NFT purchase (trade)"
			if t.From.IsZero() {
				comment = "NFT mint (trade)"
			}
			row = &models.CoinTrackingRow{
				Type:         models.TypeTrade,
				BuyAmount:    t.Quantity.String(),
				BuyCurrency:  currency,
				SellAmount:   native.ValueOut.String(),
				SellCurrency: cfg.NativeSymbol,
				Exchange:     cfg.Exchange,
				Comment:      comment,
				Date:         t.DateTime,
			}
		case t.From.IsZero():
			row = &models.CoinTrackingRow{
				Type:        models.TypeAirdrop,
				BuyAmount:   t.Quantity.String(),
				BuyCurrency: currency,
				Exchange:    cfg.Exchange,
				Comment:     "NFT mint",
				Date:        t.DateTime,
			}
		default:
			row = &models.CoinTrackingRow{
				Type:        models.TypeDeposit,
				BuyAmount:   t.Quantity.String(),
				BuyCurrency: currency,
				Exchange:    cfg.Exchange,
				Comment:     "NFT in",
				Date:        t.DateTime,
			}
		}

	case t.From == cfg.UserAddress && t.To != cfg.UserAddress:
		if t.To.IsZero() {
			row = &models.CoinTrackingRow{
				Type:         models.TypeLost,
				SellAmount:   t.Quantity.String(),
				SellCurrency: currency,
				Exchange:     cfg.Exchange,
				Comment:      "NFT burn",
				Date:         t.DateTime,
			}
		} else {
			row = &models.CoinTrackingRow{
				Type:         models.TypeWithdrawal,
				SellAmount:   t.Quantity.String(),
				SellCurrency: currency,
				Exchange:     cfg.Exchange,
				Comment:      "NFT out",
				Date:         t.DateTime,
			}
		}

	default:
		// The transfer does not involve the user at all.
		return nil
	}

	if hasNative {
		attachFee(row, t.TxHash, native.Fee, cfg.NativeSymbol, ledger)
	}
	return row
}

// NftCurrency renders an NFT as a ledger "currency", the output format's
// only way to represent ownership of a specific token.
func NftCurrency(symbol, tokenID string) string {
	if symbol == "" {
		symbol = "NFT"
	}
	return fmt.Sprintf("NFT:%s#%s", symbol, tokenID)
}
