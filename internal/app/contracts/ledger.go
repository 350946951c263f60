package contracts

import (
	"context"
	"donaciones-service/internal/app/models"
)

// LedgerSink appends confirmed donation rows to the external append-only
// store. There is no uniqueness check and no upsert: every call adds a row,
// duplicates included. The store is the only durable output of the system.
type LedgerSink interface {
	Append(ctx context.Context, row *models.LedgerRow) error
}
