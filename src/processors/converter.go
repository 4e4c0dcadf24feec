package processors

import (
	"github.com/username/chainfolio/backend/src/logger"
	"github.com/username/chainfolio/backend/src/models"
	"github.com/username/chainfolio/backend/src/parsers"
)

// Converter is the orchestration entry point for one conversion run. The
// processor order is part of the engine's contract, not an optimization
// choice: the token processor runs first so it can claim swap-involved
// hashes and their fees, the native processor honors those claims, and the
// internal and NFT processors see a settled fee ledger. Running processors
// concurrently would break the at-most-once fee and skip-hash guarantees.
type Converter struct {
	native   *NativeProcessor
	token    *TokenProcessor
	internal *InternalProcessor
	nft      *NftProcessor
}

func NewConverter() *Converter {
	return &Converter{
		native:   NewNativeProcessor(),
		token:    NewTokenProcessor(),
		internal: NewInternalProcessor(),
		nft:      NewNftProcessor(),
	}
}

// Convert runs the whole pipeline over one run's raw rows and returns the
// sorted, filtered unified ledger rows ready for serialization.
func (c *Converter) Convert(input ConversionInput, cfg ConversionConfig, resolver *SymbolResolver) []models.CoinTrackingRow {
	nativeTxs := parsers.ParseNativeRows(input.NativeRows)
	tokenTransfers := parsers.ParseTokenRows(input.TokenRows)
	internalTxs := parsers.ParseInternalRows(input.InternalRows)
	nft721 := parsers.ParseNft721Rows(input.Nft721Rows)
	nft1155 := parsers.ParseNft1155Rows(input.Nft1155Rows)

	index := BuildNativeIndex(nativeTxs)
	ledger := NewFeeLedger()

	tokenRows, claimedHashes := c.token.Process(tokenTransfers, cfg, index, ledger)
	nativeRows := c.native.Process(nativeTxs, cfg, ledger, claimedHashes)
	internalRows := c.internal.Process(internalTxs, cfg, index, ledger)
	nft721Rows := c.nft.Process(nft721, cfg, index, ledger)
	nft1155Rows := c.nft.Process(nft1155, cfg, index, ledger)

	rows := AssembleRows(resolver, cfg.CutoffDate,
		tokenRows, nativeRows, internalRows, nft721Rows, nft1155Rows)

	if logger.L != nil {
		logger.L.Info("Conversion run complete",
			"nativeRecords", len(nativeTxs),
			"tokenLegs", len(tokenTransfers),
			"internalRecords", len(internalTxs),
			"nftTransfers", len(nft721)+len(nft1155),
			"emittedRows", len(rows))
	}
	return rows
}
