package processors

import (
	"fmt"

	"github.com/username/chainfolio/backend/src/models"
)

type TokenProcessor struct{}

func NewTokenProcessor() *TokenProcessor { return &TokenProcessor{} }

// Process converts ERC-20 transfer legs into ledger rows, working on
// per-hash groups so paired outgoing/incoming legs can be recognized as
// swaps. It returns the set of hashes it emitted rows for; the orchestrator
// passes that set to the native processor so the native leg of an already
// resolved transaction is not double-counted.
func (p *TokenProcessor) Process(transfers []models.ParsedTokenTransfer, cfg ConversionConfig, index *NativeIndex, ledger *FeeLedger) ([]models.CoinTrackingRow, HashSet) {
	var rows []models.CoinTrackingRow
	claimed := NewHashSet()

	for _, group := range groupByHash(transfers) {
		emitted := p.processGroup(group, cfg, index, ledger)
		if len(emitted) > 0 {
			claimed.Add(group[0].TxHash)
		}
		rows = append(rows, emitted...)
	}
	return rows, claimed
}

// groupByHash groups transfer legs by transaction hash, preserving the
// first-seen order of hashes and the leg order within each group.
func groupByHash(transfers []models.ParsedTokenTransfer) [][]models.ParsedTokenTransfer {
	byHash := make(map[models.TxHash]int)
	var groups [][]models.ParsedTokenTransfer
	for _, t := range transfers {
		if i, ok := byHash[t.TxHash]; ok {
			groups[i] = append(groups[i], t)
			continue
		}
		byHash[t.TxHash] = len(groups)
		groups = append(groups, []models.ParsedTokenTransfer{t})
	}
	return groups
}

func (p *TokenProcessor) processGroup(group []models.ParsedTokenTransfer, cfg ConversionConfig, index *NativeIndex, ledger *FeeLedger) []models.CoinTrackingRow {
	hash := group[0].TxHash
	user := cfg.UserAddress

	var outgoing, incoming []models.ParsedTokenTransfer
	for _, leg := range group {
		switch {
		case leg.From == user && leg.To != user && !leg.From.IsZero():
			outgoing = append(outgoing, leg)
		case leg.To == user && leg.From != user:
			incoming = append(incoming, leg)
		}
	}

	native, hasNative := index.Lookup(hash)

	// Paired legs mean a swap. Multi-leg groups (split-routed trades)
	// collapse to first outgoing / last incoming; intermediate legs are
	// absorbed without separate rows.
	if len(outgoing) > 0 && len(incoming) > 0 {
		sell := outgoing[0]
		buy := incoming[len(incoming)-1]
		row := models.CoinTrackingRow{
			Type:         models.TypeTrade,
			BuyAmount:    buy.Value.String(),
			BuyCurrency:  buy.Symbol,
			SellAmount:   sell.Value.String(),
			SellCurrency: sell.Symbol,
			Exchange:     cfg.Exchange,
			Comment:      fmt.Sprintf("Swap %s", hash),
			Date:         sell.DateTime,
		}
		if hasNative {
			attachFee(&row, hash, native.Fee, cfg.NativeSymbol, ledger)
		}
		return []models.CoinTrackingRow{row}
	}

	var rows []models.CoinTrackingRow

	for _, leg := range incoming {
		var row models.CoinTrackingRow
		switch {
		case hasNative && native.ValueOut.IsPositive():
			// A token arrived while native currency left in the same
			// transaction: an NFT-style purchase paid in native currency,
			// reclassified from a bare deposit into a trade.
			comment := "NFT purchase (trade)"
			if leg.From.IsZero() {
				comment = "NFT mint (trade)"
			}
			row = models.CoinTrackingRow{
				Type:         models.TypeTrade,
				BuyAmount:    leg.Value.String(),
				BuyCurrency:  leg.Symbol,
				SellAmount:   native.ValueOut.String(),
				SellCurrency: cfg.NativeSymbol,
				Exchange:     cfg.Exchange,
				Comment:      comment,
				Date:         leg.DateTime,
			}
		case leg.From.IsZero():
			row = models.CoinTrackingRow{
				Type:        models.TypeAirdrop,
				BuyAmount:   leg.Value.String(),
				BuyCurrency: leg.Symbol,
				Exchange:    cfg.Exchange,
				Comment:     fmt.Sprintf("Token airdrop %s", hash),
				Date:        leg.DateTime,
			}
		default:
			row = models.CoinTrackingRow{
				Type:        models.TypeDeposit,
				BuyAmount:   leg.Value.String(),
				BuyCurrency: leg.Symbol,
				Exchange:    cfg.Exchange,
				Comment:     fmt.Sprintf("Token in %s", hash),
				Date:        leg.DateTime,
			}
		}
		if hasNative {
			attachFee(&row, hash, native.Fee, cfg.NativeSymbol, ledger)
		}
		rows = append(rows, row)
	}

	// Outgoing-only legs: no paired incoming value was found for this hash,
	// so these are never trades.
	for _, leg := range outgoing {
		comment := fmt.Sprintf("Token out %s", hash)
		if leg.To.IsZero() {
			comment = fmt.Sprintf("Token burn %s", hash)
		}
		row := models.CoinTrackingRow{
			Type:         models.TypeWithdrawal,
			SellAmount:   leg.Value.String(),
			SellCurrency: leg.Symbol,
			Exchange:     cfg.Exchange,
			Comment:      comment,
			Date:         leg.DateTime,
		}
		if hasNative {
			attachFee(&row, hash, native.Fee, cfg.NativeSymbol, ledger)
		}
		rows = append(rows, row)
	}

	return rows
}
