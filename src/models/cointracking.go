package models

// Ledger entry types emitted by the conversion engine. The CoinTracking
// vocabulary is larger, but these are the only kinds the engine produces.
const (
	TypeTrade      = "Trade"
	TypeDeposit    = "Deposit"
	TypeWithdrawal = "Withdrawal"
	TypeAirdrop    = "Airdrop"
	TypeLost       = "Lost"
	TypeOtherFee   = "Other Fee"
)

// CoinTrackingRow is the unified ledger line. Amount fields are decimal
// strings; the empty string means "not applicable", not zero.
type CoinTrackingRow struct {
	ID           int64  `json:"id,omitempty"`
	Type         string `json:"type"`
	BuyAmount    string `json:"buy_amount"`
	BuyCurrency  string `json:"buy_currency"`
	SellAmount   string `json:"sell_amount"`
	SellCurrency string `json:"sell_currency"`
	Fee          string `json:"fee"`
	FeeCurrency  string `json:"fee_currency"`
	Exchange     string `json:"exchange"`
	TradeGroup   string `json:"trade_group"`
	Comment      string `json:"comment"`
	Date         string `json:"date"` // "2006-01-02 15:04:05", zero-padded UTC
}

// CSVHeader is the fixed column order of any serialized form.
var CSVHeader = []string{
	"Type", "Buy Amount", "Buy Currency", "Sell Amount", "Sell Currency",
	"Fee", "Fee Currency", "Exchange", "Trade Group", "Comment", "Date",
}

// CSVRecord returns the row's fields in CSVHeader order.
func (r CoinTrackingRow) CSVRecord() []string {
	return []string{
		r.Type, r.BuyAmount, r.BuyCurrency, r.SellAmount, r.SellCurrency,
		r.Fee, r.FeeCurrency, r.Exchange, r.TradeGroup, r.Comment, r.Date,
	}
}

// ImportRecord is one recorded conversion run.
type ImportRecord struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"created_at"`
	Label     string `json:"label"`
	RowCount  int64  `json:"row_count"`
}
