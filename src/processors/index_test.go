package processors

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/chainfolio/backend/src/models"
)

func TestBuildNativeIndex_LastWriteWins(t *testing.T) {
	t.Parallel()

	txs := []models.ParsedNativeTx{
		{TxHash: "0x1", Fee: decimal.NewFromFloat(0.1)},
		{TxHash: "0x2", Fee: decimal.NewFromFloat(0.2)},
		{TxHash: "0x1", Fee: decimal.NewFromFloat(0.3)},
	}

	index := BuildNativeIndex(txs)
	assert.Equal(t, 2, index.Len())

	tx, ok := index.Lookup("0x1")
	require.True(t, ok)
	assert.Equal(t, "0.3", tx.Fee.String())

	_, ok = index.Lookup("0xmissing")
	assert.False(t, ok)
}

func TestFeeLedger_ClaimIsAtMostOnce(t *testing.T) {
	t.Parallel()

	ledger := NewFeeLedger()
	assert.False(t, ledger.Claimed("0x1"))
	assert.True(t, ledger.Claim("0x1"))
	assert.False(t, ledger.Claim("0x1"))
	assert.True(t, ledger.Claimed("0x1"))
	assert.True(t, ledger.Claim("0x2"))
}

func TestHashSet(t *testing.T) {
	t.Parallel()

	set := NewHashSet()
	set.Add("0xa")
	assert.True(t, set.Contains("0xa"))
	assert.False(t, set.Contains("0xb"))

	var nilSet HashSet
	assert.False(t, nilSet.Contains("0xa"))
}
