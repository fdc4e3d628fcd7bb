package payment

import (
	"context"
	"errors"

	"github.com/frahmantamala/dorm-management/internal/core/datamodel/fee"
	"github.com/frahmantamala/dorm-management/internal/core/datamodel/payment"
)

// Reconciliation states. A success callback walks RECEIVED → VALIDATED →
// USER_RESOLVED → DEDUPLICATED → SETTLED; every other state is terminal.
// ALREADY_PROCESSED is a success outcome: the gateway redelivers callbacks
// and a duplicate means the money was already accounted for.
type State string

const (
	StateReceived                 State = "RECEIVED"
	StateValidated                State = "VALIDATED"
	StateUserResolved             State = "USER_RESOLVED"
	StateDeduplicated             State = "DEDUPLICATED"
	StateSettled                  State = "SETTLED"
	StateRejectedInvalid          State = "REJECTED_INVALID"
	StateRejectedUnresolvedUser   State = "REJECTED_UNRESOLVED_USER"
	StateAlreadyProcessed         State = "ALREADY_PROCESSED"
	StateRejectedPersistenceError State = "REJECTED_PERSISTENCE_ERROR"
)

var (
	ErrPayerNotFound  = errors.New("no payer matches the callback")
	ErrAmbiguousPayer = errors.New("more than one payer matches the callback amount")
	// ErrDuplicateRecord is returned by a record store whose
	// (fee id, category) uniqueness constraint rejected an insert.
	ErrDuplicateRecord      = errors.New("payment record already exists for this fee")
	ErrDuplicateTransaction = errors.New("transaction already settled")
	ErrNothingToSettle      = errors.New("user has no outstanding fees to settle")
)

// Result is what a callback handler surfaces to the gateway: a redirect
// target plus the terminal state for logging.
type Result struct {
	Success     bool
	State       State
	RedirectURL string
	Message     string
}

// Validator is the external gateway's order-validation boundary.
type Validator interface {
	Validate(ctx context.Context, transactionID, amount, currency string, params map[string]string) bool
}

// Resolver determines which user a callback belongs to. Resolution is
// read-only; ErrPayerNotFound and ErrAmbiguousPayer are the two failure modes.
type Resolver interface {
	Resolve(ctx context.Context, correlationToken, amount string) (int64, error)
}

// Ledger is the slice of the fee repository the settlement step mutates.
type Ledger interface {
	FindUnpaidHallFees(userID int64) ([]*fee.HallFee, error)
	FindUnpaidDiningFees(userID int64) ([]*fee.DiningFee, error)
	MarkHallFeePaid(feeID int64) error
	MarkDiningFeePaid(feeID int64) error
}

// RecordStore persists settlement records. Save must fail with
// ErrDuplicateRecord when the (fee id, category) pair already has one.
type RecordStore interface {
	ExistsByTransactionID(transactionID string) (bool, error)
	Save(record *payment.Record) error
	ListByTransactionID(transactionID string) ([]*payment.Record, error)
}

// UnitOfWork runs fn inside one storage transaction. Every ledger and record
// mutation fn performs commits or rolls back as a whole.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ledger Ledger, records RecordStore) error) error
}
