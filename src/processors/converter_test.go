package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/chainfolio/backend/src/models"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	const (
		userRaw  = "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
		otherRaw = "0xBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB"
	)

	input := ConversionInput{
		NativeRows: []map[string]string{
			{
				// Plain deposit.
				"Txhash":         "0xD1",
				"DateTime (UTC)": "2024-03-01 10:00:00",
				"From":           otherRaw,
				"To":             userRaw,
				"Value_IN(ETH)":  "1.5",
				"Value_OUT(ETH)": "0",
				"TxnFee(ETH)":    "0",
			},
			{
				// Withdrawal with a method name.
				"Txhash":         "0xD2",
				"DateTime (UTC)": "2024-03-02 11:00:00",
				"From":           userRaw,
				"To":             otherRaw,
				"Value_IN(ETH)":  "0",
				"Value_OUT(ETH)": "109",
				"TxnFee(ETH)":    "0.0005",
				"Method":         "Withdraw",
			},
			{
				// Gas record of the token swap below. The token processor
				// claims this hash, so no separate fee-only row appears.
				"Txhash":         "0xS1",
				"DateTime (UTC)": "2024-03-03 09:00:00",
				"From":           userRaw,
				"To":             otherRaw,
				"Value_IN(ETH)":  "0",
				"Value_OUT(ETH)": "0",
				"TxnFee(ETH)":    "0.003",
			},
		},
		TokenRows: []map[string]string{
			{
				"Txhash":         "0xS1",
				"DateTime (UTC)": "2024-03-03 09:00:00",
				"From":           userRaw,
				"To":             otherRaw,
				"TokenSymbol":    "USDC",
				"Value":          "100",
			},
			{
				"Txhash":         "0xS1",
				"DateTime (UTC)": "2024-03-03 09:00:00",
				"From":           otherRaw,
				"To":             userRaw,
				"TokenSymbol":    "WETH",
				"Value":          "0.05",
			},
		},
		InternalRows: []map[string]string{
			{
				// Exact duplicate of the 0xD1 native deposit, skipped.
				"Txhash":         "0xD1",
				"DateTime (UTC)": "2024-03-01 10:00:00",
				"From":           otherRaw,
				"To":             userRaw,
				"Value_IN(ETH)":  "1.5",
				"Value_OUT(ETH)": "0",
			},
			{
				// Distinct internal payout.
				"Txhash":         "0xI1",
				"DateTime (UTC)": "2024-03-04 14:00:00",
				"From":           otherRaw,
				"To":             userRaw,
				"Value_IN(ETH)":  "0.25",
				"Value_OUT(ETH)": "0",
			},
		},
		Nft721Rows: []map[string]string{
			{
				"Txhash":         "0xN1",
				"DateTime (UTC)": "2022-06-01 12:00:00",
				"From":           otherRaw,
				"To":             userRaw,
				"TokenId":        "451",
				"TokenSymbol":    "PUNK",
			},
		},
	}

	cfg := ConversionConfig{
		UserAddress:  models.NewAddress(userRaw),
		NativeSymbol: "ETH",
		Exchange:     "Ethereum Wallet",
		CutoffDate:   "2024-01-01 00:00:00",
	}

	rows := NewConverter().Convert(input, cfg, NewSymbolResolver("Ethereum", nil))

	// The NFT deposit predates the cutoff and the duplicate internal record
	// is suppressed, leaving swap, deposit, withdrawal and internal payout.
	require.Len(t, rows, 4)

	assert.Equal(t, models.TypeDeposit, rows[0].Type)
	assert.Equal(t, "1.5", rows[0].BuyAmount)
	assert.Equal(t, "Native in 0xd1", rows[0].Comment)

	assert.Equal(t, models.TypeWithdrawal, rows[1].Type)
	assert.Equal(t, "109", rows[1].SellAmount)
	assert.Equal(t, "Withdraw 0xd2", rows[1].Comment)
	assert.Equal(t, "0.0005", rows[1].Fee)

	assert.Equal(t, models.TypeTrade, rows[2].Type)
	assert.Equal(t, "0.05", rows[2].BuyAmount)
	assert.Equal(t, "WETH", rows[2].BuyCurrency)
	assert.Equal(t, "100", rows[2].SellAmount)
	assert.Equal(t, "USDC", rows[2].SellCurrency)
	assert.Equal(t, "0.003", rows[2].Fee, "swap carries the gas fee of its transaction")

	assert.Equal(t, models.TypeDeposit, rows[3].Type)
	assert.Equal(t, "0.25", rows[3].BuyAmount)
	assert.Equal(t, "Internal in 0xi1", rows[3].Comment)

	// No fee-only row leaked through for the claimed swap hash.
	for _, row := range rows {
		assert.NotEqual(t, models.TypeOtherFee, row.Type)
	}
}

func TestConverter_Convert_EmptyInput(t *testing.T) {
	t.Parallel()

	rows := NewConverter().Convert(ConversionInput{}, ConversionConfig{
		UserAddress:  testUser,
		NativeSymbol: "ETH",
	}, nil)
	assert.Empty(t, rows)
}
