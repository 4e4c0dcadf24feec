package utils

import (
	"strconv"
	"strings"
	"time"
)

// LedgerDateFormat is the zero-padded UTC form every emitted row carries.
// Lexicographic order on it equals chronological order.
const LedgerDateFormat = "2006-01-02 15:04:05"

var sourceDateLayouts = []string{
	LedgerDateFormat,
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05 MST",
	"Jan-02-2006 03:04:05 PM",
	"2006-01-02",
}

// NormalizeDateTime coerces an explorer-reported timestamp into
// LedgerDateFormat. Unix-second timestamps are accepted too. Unrecognized
// values pass through trimmed; a bad date is not worth dropping a row over.
func NormalizeDateTime(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	for _, layout := range sourceDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(LedgerDateFormat)
		}
	}

	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil && secs > 0 {
		return time.Unix(secs, 0).UTC().Format(LedgerDateFormat)
	}

	return raw
}
