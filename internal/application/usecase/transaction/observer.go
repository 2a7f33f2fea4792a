// Package transaction contains transaction use cases: recording, listing,
// updating and deleting money movements.
package transaction

import (
	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// ActivityObserver receives transaction lifecycle events. Implementations
// must not block; emission is best-effort and must never fail the triggering
// operation.
type ActivityObserver interface {
	// TransactionRecorded fires after a new transaction is persisted.
	TransactionRecorded(userID uuid.UUID, tx *entity.Transaction)

	// TransactionMutated fires after an existing transaction is updated
	// or deleted, so dependent budget figures can be refreshed.
	TransactionMutated(userID uuid.UUID, tx *entity.Transaction)
}
