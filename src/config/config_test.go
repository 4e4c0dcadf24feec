package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSymbolOverrides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{"empty", "", map[string]string{}},
		{"single pair", "MNT=MNT3", map[string]string{"MNT": "MNT3"}},
		{
			"multiple pairs with spaces",
			" Mantle/MNT = MNT3 , ATOM=ATOM2",
			map[string]string{"Mantle/MNT": "MNT3", "ATOM": "ATOM2"},
		},
		{
			"malformed entries skipped",
			"MNT=MNT3,bogus,=X,Y=",
			map[string]string{"MNT": "MNT3"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseSymbolOverrides(tt.raw))
		})
	}
}
