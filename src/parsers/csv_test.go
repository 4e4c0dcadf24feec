package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRows(t *testing.T) {
	t.Parallel()

	input := "\ufeffTxhash,DateTime (UTC),Value_IN(ETH)\n" +
		"0xabc,2024-01-01 10:00:00,1.5\n" +
		"0xdef,2024-01-01 11:00:00\n"

	rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// BOM stripped from the first header.
	assert.Equal(t, "0xabc", rows[0]["Txhash"])
	assert.Equal(t, "1.5", rows[0]["Value_IN(ETH)"])

	// Short data line keeps only the columns present.
	assert.Equal(t, "0xdef", rows[1]["Txhash"])
	_, ok := rows[1]["Value_IN(ETH)"]
	assert.False(t, ok)
}

func TestReadRows_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := ReadRows(strings.NewReader(""))
	assert.Error(t, err)
}
