package processors

import "strings"

// builtinSymbols maps explorer-reported symbols to the canonical symbols the
// output format expects. Keys are "Chain/SYMBOL" for chain-scoped entries or
// "*/SYMBOL" for chain-independent ones.
var builtinSymbols = map[string]string{
	"Mantle/MNT": "MNT3",
	"*/ATOM":     "ATOM2",
	"*/ONE":      "ONE2",
	"*/BEAM":     "BEAM2",
}

// SymbolResolver maps (chain, raw symbol) to the canonical output symbol.
// User overrides take precedence over the built-in table. It is applied only
// to final emitted currency fields, never during classification, and never
// to NFT composite currencies.
type SymbolResolver struct {
	chain     string
	overrides map[string]string
}

func NewSymbolResolver(chain string, overrides map[string]string) *SymbolResolver {
	return &SymbolResolver{chain: chain, overrides: overrides}
}

func (r *SymbolResolver) Resolve(symbol string) string {
	if symbol == "" || strings.HasPrefix(symbol, "NFT:") {
		return symbol
	}
	if canonical, ok := r.overrides[r.chain+"/"+symbol]; ok {
		return canonical
	}
	if canonical, ok := r.overrides[symbol]; ok {
		return canonical
	}
	if canonical, ok := builtinSymbols[r.chain+"/"+symbol]; ok {
		return canonical
	}
	if canonical, ok := builtinSymbols["*/"+symbol]; ok {
		return canonical
	}
	return symbol
}
