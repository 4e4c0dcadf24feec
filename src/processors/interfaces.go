package processors

import (
	"github.com/username/chainfolio/backend/src/models"
)

// ConversionConfig carries the per-run settings every processor needs.
type ConversionConfig struct {
	UserAddress  models.Address
	NativeSymbol string
	Exchange     string

	// CutoffDate, when non-empty, excludes rows dated strictly before it.
	CutoffDate string
}

// ConversionInput bundles the raw rows of one conversion run, one slice per
// export category, already read from CSV into header-keyed maps.
type ConversionInput struct {
	NativeRows   []map[string]string
	TokenRows    []map[string]string
	InternalRows []map[string]string
	Nft721Rows   []map[string]string
	Nft1155Rows  []map[string]string
}
