package processors

import (
	"github.com/username/chainfolio/backend/src/models"
)

// NativeIndex is the run-scoped lookup from transaction hash to its parsed
// native-transfer record. It is built once before any processor runs and
// consulted read-only afterwards to recover the fee and native-value context
// of a hash. A hash absent from the index is a valid, expected case.
type NativeIndex struct {
	byHash map[models.TxHash]models.ParsedNativeTx
}

// BuildNativeIndex indexes native records by hash. Duplicate hashes are a
// data-quality signal, not an error: last write wins.
func BuildNativeIndex(txs []models.ParsedNativeTx) *NativeIndex {
	index := &NativeIndex{byHash: make(map[models.TxHash]models.ParsedNativeTx, len(txs))}
	for _, tx := range txs {
		index.byHash[tx.TxHash] = tx
	}
	return index
}

func (i *NativeIndex) Lookup(hash models.TxHash) (models.ParsedNativeTx, bool) {
	tx, ok := i.byHash[hash]
	return tx, ok
}

func (i *NativeIndex) Len() int { return len(i.byHash) }

// FeeLedger records which transaction hashes have already had their gas fee
// written into an output row. It is shared mutably across every processor of
// one run so that a fee is attributed at most once system-wide, no matter
// how many input files reference the same hash. Processors run strictly
// sequentially, so no locking is needed.
type FeeLedger struct {
	applied map[models.TxHash]struct{}
}

func NewFeeLedger() *FeeLedger {
	return &FeeLedger{applied: make(map[models.TxHash]struct{})}
}

// Claim marks the hash's fee as applied and reports whether this call was
// the first claim. The first processor to touch a hash wins.
func (l *FeeLedger) Claim(hash models.TxHash) bool {
	if _, done := l.applied[hash]; done {
		return false
	}
	l.applied[hash] = struct{}{}
	return true
}

func (l *FeeLedger) Claimed(hash models.TxHash) bool {
	_, done := l.applied[hash]
	return done
}

// HashSet is a plain set of transaction hashes, used for the skip-hash
// handoff between the token and native processors.
type HashSet map[models.TxHash]struct{}

func NewHashSet() HashSet { return make(HashSet) }

func (s HashSet) Add(hash models.TxHash) { s[hash] = struct{}{} }

func (s HashSet) Contains(hash models.TxHash) bool {
	if s == nil {
		return false
	}
	_, ok := s[hash]
	return ok
}
