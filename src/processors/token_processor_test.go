package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/chainfolio/backend/src/models"
)

func TestTokenProcessor_Swap(t *testing.T) {
	t.Parallel()

	transfers := []models.ParsedTokenTransfer{
		{TxHash: "0x10", DateTime: "2024-03-01 10:00:00", From: testUser, To: testOther, Value: dec("100"), Symbol: "USDC"},
		{TxHash: "0x10", DateTime: "2024-03-01 10:00:00", From: testOther, To: testUser, Value: dec("0.05"), Symbol: "WETH"},
	}
	index := BuildNativeIndex([]models.ParsedNativeTx{
		{TxHash: "0x10", Fee: dec("0.003")},
	})

	ledger := NewFeeLedger()
	rows, claimed := NewTokenProcessor().Process(transfers, testConfig(), index, ledger)
	require.Len(t, rows, 1)

	assert.Equal(t, models.TypeTrade, rows[0].Type)
	assert.Equal(t, "0.05", rows[0].BuyAmount)
	assert.Equal(t, "WETH", rows[0].BuyCurrency)
	assert.Equal(t, "100", rows[0].SellAmount)
	assert.Equal(t, "USDC", rows[0].SellCurrency)
	assert.Equal(t, "0.003", rows[0].Fee)
	assert.Equal(t, "ETH", rows[0].FeeCurrency)
	assert.Equal(t, "Swap 0x10", rows[0].Comment)

	assert.True(t, claimed.Contains("0x10"))
	assert.True(t, ledger.Claimed("0x10"))
}

func TestTokenProcessor_MultiLegSwapCollapses(t *testing.T) {
	t.Parallel()

	// A split-routed trade: two outgoing legs, one incoming. The emitted
	// trade uses the first outgoing and the last incoming leg.
	transfers := []models.ParsedTokenTransfer{
		{TxHash: "0x11", DateTime: "2024-03-02 09:00:00", From: testUser, To: testOther, Value: dec("100"), Symbol: "USDC"},
		{TxHash: "0x11", DateTime: "2024-03-02 09:00:00", From: testUser, To: testOther, Value: dec("50"), Symbol: "USDC"},
		{TxHash: "0x11", DateTime: "2024-03-02 09:00:00", From: testOther, To: testUser, Value: dec("0.08"), Symbol: "WETH"},
	}

	rows, _ := NewTokenProcessor().Process(transfers, testConfig(), BuildNativeIndex(nil), NewFeeLedger())
	require.Len(t, rows, 1)

	assert.Equal(t, models.TypeTrade, rows[0].Type)
	assert.Equal(t, "100", rows[0].SellAmount)
	assert.Equal(t, "0.08", rows[0].BuyAmount)
}

func TestTokenProcessor_IncomingWithNativeSpendIsTrade(t *testing.T) {
	t.Parallel()

	transfers := []models.ParsedTokenTransfer{
		{TxHash: "0x12", DateTime: "2024-03-03 12:00:00", From: testOther, To: testUser, Value: dec("10"), Symbol: "GEM"},
	}
	index := BuildNativeIndex([]models.ParsedNativeTx{
		{TxHash: "0x12", ValueOut: dec("0.2"), Fee: dec("0.001")},
	})

	rows, _ := NewTokenProcessor().Process(transfers, testConfig(), index, NewFeeLedger())
	require.Len(t, rows, 1)

	assert.Equal(t, models.TypeTrade, rows[0].Type)
	assert.Equal(t, "10", rows[0].BuyAmount)
	assert.Equal(t, "GEM", rows[0].BuyCurrency)
	assert.Equal(t, "0.2", rows[0].SellAmount)
	assert.Equal(t, "ETH", rows[0].SellCurrency)
	assert.Equal(t, "NFT purchase (trade)", rows[0].Comment)
}

func TestTokenProcessor_MintFromZeroAddressWithNativeSpend(t *testing.T) {
	t.Parallel()

	transfers := []models.ParsedTokenTransfer{
		{TxHash: "0x13", From: models.ZeroAddress, To: testUser, Value: dec("1"), Symbol: "GEM"},
	}
	index := BuildNativeIndex([]models.ParsedNativeTx{
		{TxHash: "0x13", ValueOut: dec("0.05")},
	})

	rows, _ := NewTokenProcessor().Process(transfers, testConfig(), index, NewFeeLedger())
	require.Len(t, rows, 1)
	assert.Equal(t, models.TypeTrade, rows[0].Type)
	assert.Equal(t, "NFT mint (trade)", rows[0].Comment)
}

func TestTokenProcessor_Airdrop(t *testing.T) {
	t.Parallel()

	transfers := []models.ParsedTokenTransfer{
		{TxHash: "0x14", From: models.ZeroAddress, To: testUser, Value: dec("500"), Symbol: "AIR"},
	}

	rows, _ := NewTokenProcessor().Process(transfers, testConfig(), BuildNativeIndex(nil), NewFeeLedger())
	require.Len(t, rows, 1)
	assert.Equal(t, models.TypeAirdrop, rows[0].Type)
	assert.Equal(t, "500", rows[0].BuyAmount)
	assert.Equal(t, "Token airdrop 0x14", rows[0].Comment)
}

func TestTokenProcessor_PlainDeposit(t *testing.T) {
	t.Parallel()

	transfers := []models.ParsedTokenTransfer{
		{TxHash: "0x15", From: testOther, To: testUser, Value: dec("25"), Symbol: "DAI"},
	}

	rows, _ := NewTokenProcessor().Process(transfers, testConfig(), BuildNativeIndex(nil), NewFeeLedger())
	require.Len(t, rows, 1)
	assert.Equal(t, models.TypeDeposit, rows[0].Type)
	assert.Equal(t, "Token in 0x15", rows[0].Comment)
}

func TestTokenProcessor_OutgoingOnly(t *testing.T) {
	t.Parallel()

	transfers := []models.ParsedTokenTransfer{
		{TxHash: "0x16", From: testUser, To: testOther, Value: dec("7"), Symbol: "DAI"},
		{TxHash: "0x17", From: testUser, To: models.ZeroAddress, Value: dec("3"), Symbol: "DAI"},
	}

	rows, claimed := NewTokenProcessor().Process(transfers, testConfig(), BuildNativeIndex(nil), NewFeeLedger())
	require.Len(t, rows, 2)

	assert.Equal(t, models.TypeWithdrawal, rows[0].Type)
	assert.Equal(t, "Token out 0x16", rows[0].Comment)
	assert.Equal(t, models.TypeWithdrawal, rows[1].Type)
	assert.Equal(t, "Token burn 0x17", rows[1].Comment)

	assert.True(t, claimed.Contains("0x16"))
	assert.True(t, claimed.Contains("0x17"))
}

func TestTokenProcessor_FeeAppliedOncePerHash(t *testing.T) {
	t.Parallel()

	// Two incoming legs in one transaction: only the first emitted row may
	// carry the gas fee.
	transfers := []models.ParsedTokenTransfer{
		{TxHash: "0x18", From: testOther, To: testUser, Value: dec("1"), Symbol: "A"},
		{TxHash: "0x18", From: testOther, To: testUser, Value: dec("2"), Symbol: "B"},
	}
	index := BuildNativeIndex([]models.ParsedNativeTx{
		{TxHash: "0x18", Fee: dec("0.004")},
	})

	rows, _ := NewTokenProcessor().Process(transfers, testConfig(), index, NewFeeLedger())
	require.Len(t, rows, 2)
	assert.Equal(t, "0.004", rows[0].Fee)
	assert.Empty(t, rows[1].Fee)
}

func TestTokenProcessor_IgnoresUninvolvedLegs(t *testing.T) {
	t.Parallel()

	transfers := []models.ParsedTokenTransfer{
		{TxHash: "0x19", From: testOther, To: models.Address("0xcccccccccccccccccccccccccccccccccccccccc"), Value: dec("9"), Symbol: "DAI"},
	}

	rows, claimed := NewTokenProcessor().Process(transfers, testConfig(), BuildNativeIndex(nil), NewFeeLedger())
	assert.Empty(t, rows)
	assert.False(t, claimed.Contains("0x19"))
}
