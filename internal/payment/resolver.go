package payment

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/dorm-management/internal/core/datamodel/user"
	"github.com/shopspring/decimal"
)

// PayerDirectory is the slice of the user service the resolver reads.
type PayerDirectory interface {
	GetByEmail(email string) (*user.User, error)
	ListPayers() ([]*user.User, error)
}

// OutstandingCalculator computes a user's total unpaid hall + dining amount.
type OutstandingCalculator interface {
	OutstandingTotal(userID int64) (decimal.Decimal, error)
}

// UserResolver maps a callback to a payer. The primary path is the
// correlation token (an email the payer typed into the gateway form); the
// fallback matches the callback amount against each student's outstanding
// total. The fallback fails closed: two students owing the same total means
// no resolution, never a guess.
//
// Production hardening would replace the token with a server-generated,
// unguessable correlation id passed to the gateway at checkout; the email
// field is frequently left empty, which is what forces the amount heuristic.
type UserResolver struct {
	users  PayerDirectory
	fees   OutstandingCalculator
	logger *slog.Logger
}

func NewUserResolver(users PayerDirectory, fees OutstandingCalculator, logger *slog.Logger) *UserResolver {
	return &UserResolver{
		users:  users,
		fees:   fees,
		logger: logger,
	}
}

func (r *UserResolver) Resolve(ctx context.Context, correlationToken, amount string) (int64, error) {
	if correlationToken != "" {
		u, err := r.users.GetByEmail(correlationToken)
		if err != nil {
			r.logger.Warn("correlation token matched no user", "token", correlationToken)
			return 0, ErrPayerNotFound
		}
		return u.ID, nil
	}

	return r.resolveByAmount(amount)
}

func (r *UserResolver) resolveByAmount(amount string) (int64, error) {
	target, err := decimal.NewFromString(amount)
	if err != nil {
		r.logger.Warn("fallback matching impossible: callback amount is not a decimal", "amount", amount)
		return 0, ErrPayerNotFound
	}

	payers, err := r.users.ListPayers()
	if err != nil {
		return 0, err
	}

	var matched int64
	matches := 0
	for _, payer := range payers {
		outstanding, err := r.fees.OutstandingTotal(payer.ID)
		if err != nil {
			// a candidate whose schedule cannot be resolved poisons the
			// whole enumeration; resolution aborts rather than guesses
			r.logger.Error("failed to compute outstanding total during fallback matching",
				"error", err, "user_id", payer.ID)
			return 0, err
		}
		if outstanding.IsZero() {
			continue
		}
		if outstanding.Equal(target) {
			matched = payer.ID
			matches++
			if matches > 1 {
				r.logger.Warn("fallback matching ambiguous, failing closed",
					"amount", amount)
				return 0, ErrAmbiguousPayer
			}
		}
	}

	if matches == 0 {
		r.logger.Warn("fallback matching found no payer", "amount", amount)
		return 0, ErrPayerNotFound
	}

	r.logger.Info("payer resolved by amount matching", "user_id", matched, "amount", amount)
	return matched, nil
}
