package actions

import (
	"context"
	"errors"

	"github.com/hustler-ledger/ledger-server/internal/storage"
)

// ErrBusinessNotFound is returned when a write references a business that does not exist.
var ErrBusinessNotFound = errors.New("business not found")

// IAction is one unit of write work. Perform runs inside a single database transaction that the
// operator commits when it returns nil and rolls back otherwise. Results are left on the action.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
