package utils

import (
	"donaciones-service/internal/pkg/constvars"
	"time"
)

// LedgerTimestamp formats the local wall clock for the ledger's first column.
func LedgerTimestamp(t time.Time) string {
	return t.Local().Format(constvars.LedgerTimestampLayout)
}
