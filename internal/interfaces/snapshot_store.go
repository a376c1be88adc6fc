package interfaces

import (
	"context"

	"github.com/merit-guild/meritbank/internal/models"
)

// SnapshotStore loads and persists whole ledger snapshots. The ledger
// only ever exists durably as a complete snapshot; partial writes are a
// store implementation concern, never visible to callers.
type SnapshotStore interface {
	Load(ctx context.Context) (*models.Ledger, error)
	Save(ctx context.Context, l *models.Ledger) error
}
