package processors

import (
	"sort"

	"github.com/username/chainfolio/backend/src/models"
)

// AssembleRows concatenates processor outputs, applies the optional cutoff
// (rows dated strictly before it are dropped), sorts ascending by the
// zero-padded UTC date string, and canonicalizes currency symbols. The sort
// is stable, so same-timestamp rows keep their processor order.
func AssembleRows(resolver *SymbolResolver, cutoff string, groups ...[]models.CoinTrackingRow) []models.CoinTrackingRow {
	var rows []models.CoinTrackingRow
	for _, group := range groups {
		rows = append(rows, group...)
	}

	if cutoff != "" {
		kept := rows[:0]
		for _, row := range rows {
			if row.Date >= cutoff {
				kept = append(kept, row)
			}
		}
		rows = kept
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})

	if resolver != nil {
		for i := range rows {
			rows[i].BuyCurrency = resolver.Resolve(rows[i].BuyCurrency)
			rows[i].SellCurrency = resolver.Resolve(rows[i].SellCurrency)
			rows[i].FeeCurrency = resolver.Resolve(rows[i].FeeCurrency)
		}
	}
	return rows
}
