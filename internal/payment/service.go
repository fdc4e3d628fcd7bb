package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/frahmantamala/dorm-management/internal/core/datamodel/fee"
	paymentmodel "github.com/frahmantamala/dorm-management/internal/core/datamodel/payment"
	"github.com/frahmantamala/dorm-management/internal/core/events"
)

const (
	successRedirectPath = "/payment-success"
	errorRedirectPath   = "/payment-error"
)

// Service is the reconciliation engine. It turns at-least-once gateway
// callbacks into exactly-once settlements: validate, resolve the payer,
// deduplicate, then settle every outstanding fee of that payer inside one
// storage transaction.
type Service struct {
	validator Validator
	resolver  Resolver
	records   RecordStore
	uow       UnitOfWork
	eventBus  *events.EventBus
	locks     *keyedMutex
	logger    *slog.Logger
}

func NewService(validator Validator, resolver Resolver, records RecordStore, uow UnitOfWork, eventBus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		validator: validator,
		resolver:  resolver,
		records:   records,
		uow:       uow,
		eventBus:  eventBus,
		locks:     newKeyedMutex(),
		logger:    logger,
	}
}

// ProcessSuccess handles a success callback end to end. Persistent state
// changes happen only when the returned state is SETTLED; ALREADY_PROCESSED
// is a success no-op for redelivered callbacks.
func (s *Service) ProcessSuccess(ctx context.Context, params CallbackParams) Result {
	s.logger.Info("success callback received",
		"tran_id", params.TransactionID,
		"amount", params.Amount,
		"has_token", params.CorrelationToken != "")

	// fast path for redeliveries; correctness does not depend on it because
	// two concurrent requests can both pass this check before either writes
	if params.TransactionID != "" {
		exists, err := s.records.ExistsByTransactionID(params.TransactionID)
		if err == nil && exists {
			s.logger.Info("duplicate callback short-circuited",
				"tran_id", params.TransactionID)
			return s.alreadyProcessed(params)
		}
	}

	if !params.HasRequiredFields() {
		s.logger.Warn("callback missing required fields", "tran_id", params.TransactionID)
		return s.rejectInvalid(params, "callback is missing required fields")
	}

	if !s.validator.Validate(ctx, params.TransactionID, params.Amount, params.Currency, params.Raw) {
		s.logger.Warn("gateway declined to validate transaction", "tran_id", params.TransactionID)
		return s.rejectInvalid(params, "transaction could not be validated")
	}

	userID, err := s.resolver.Resolve(ctx, params.CorrelationToken, params.Amount)
	if err != nil {
		reason := "payer could not be resolved"
		if errors.Is(err, ErrAmbiguousPayer) {
			reason = "more than one payer matches this amount"
		}
		s.logger.Warn("payer resolution failed",
			"error", err,
			"tran_id", params.TransactionID,
			"amount", params.Amount)
		s.publishRejected(ctx, params, reason)
		return Result{
			Success:     false,
			State:       StateRejectedUnresolvedUser,
			RedirectURL: errorRedirectPath,
			Message:     reason,
		}
	}

	hallSettled, diningSettled, err := s.settle(ctx, userID, params)
	if err != nil {
		if errors.Is(err, ErrDuplicateTransaction) || errors.Is(err, ErrDuplicateRecord) {
			s.logger.Info("settlement raced a duplicate delivery, treating as processed",
				"tran_id", params.TransactionID)
			return s.alreadyProcessed(params)
		}
		// money may have moved at the gateway without local state reflecting
		// it; flag for manual reconciliation
		s.logger.Error("settlement failed, manual audit required",
			"error", err,
			"tran_id", params.TransactionID,
			"user_id", userID)
		return Result{
			Success:     false,
			State:       StateRejectedPersistenceError,
			RedirectURL: errorRedirectPath,
			Message:     "settlement could not be completed",
		}
	}

	s.logger.Info("payment settled",
		"tran_id", params.TransactionID,
		"val_id", params.ValidationID,
		"user_id", userID,
		"hall_fees", hallSettled,
		"dining_fees", diningSettled)

	event := events.NewPaymentSettledEvent(
		params.TransactionID,
		params.ValidationID,
		userID,
		hallSettled,
		diningSettled,
		params.PaymentMethod,
	)
	s.eventBus.Publish(ctx, event)

	return Result{
		Success:     true,
		State:       StateSettled,
		RedirectURL: successRedirect(params),
		Message:     "payment settled",
	}
}

// settle runs the final deduplication check and the fee/record writes as one
// serialized, atomic unit per transaction id. The keyed lock closes the race
// between two concurrent deliveries of the same callback; the composite
// uniqueness constraint on payment records backstops it at the storage layer.
func (s *Service) settle(ctx context.Context, userID int64, params CallbackParams) (hallSettled, diningSettled int, err error) {
	s.locks.Lock(params.TransactionID)
	defer s.locks.Unlock(params.TransactionID)

	err = s.uow.Do(ctx, func(ledger Ledger, records RecordStore) error {
		exists, err := records.ExistsByTransactionID(params.TransactionID)
		if err != nil {
			return fmt.Errorf("deduplication check failed: %w", err)
		}
		if exists {
			return ErrDuplicateTransaction
		}

		hallFees, err := ledger.FindUnpaidHallFees(userID)
		if err != nil {
			return fmt.Errorf("failed to load unpaid hall fees: %w", err)
		}
		diningFees, err := ledger.FindUnpaidDiningFees(userID)
		if err != nil {
			return fmt.Errorf("failed to load unpaid dining fees: %w", err)
		}

		if len(hallFees)+len(diningFees) == 0 {
			return ErrNothingToSettle
		}

		for _, f := range hallFees {
			if err := ledger.MarkHallFeePaid(f.ID); err != nil {
				return fmt.Errorf("failed to mark hall fee %d paid: %w", f.ID, err)
			}
			record := &paymentmodel.Record{
				FeeID:         f.ID,
				FeeCategory:   string(fee.CategoryHall),
				TransactionID: params.TransactionID,
				ValidationID:  params.ValidationID,
				PaymentMethod: params.PaymentMethod,
				CreatedAt:     time.Now(),
			}
			if err := records.Save(record); err != nil {
				return err
			}
			hallSettled++
		}

		for _, f := range diningFees {
			if err := ledger.MarkDiningFeePaid(f.ID); err != nil {
				return fmt.Errorf("failed to mark dining fee %d paid: %w", f.ID, err)
			}
			record := &paymentmodel.Record{
				FeeID:         f.ID,
				FeeCategory:   string(fee.CategoryDining),
				TransactionID: params.TransactionID,
				ValidationID:  params.ValidationID,
				PaymentMethod: params.PaymentMethod,
				CreatedAt:     time.Now(),
			}
			if err := records.Save(record); err != nil {
				return err
			}
			diningSettled++
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return hallSettled, diningSettled, nil
}

// ProcessFailure handles a failed-payment callback. It only formats a
// message; no fee or record state is touched.
func (s *Service) ProcessFailure(params CallbackParams) Result {
	s.logger.Info("failure callback received",
		"tran_id", params.TransactionID,
		"status", params.Status)

	return Result{
		Success:     false,
		State:       StateRejectedInvalid,
		RedirectURL: errorRedirectPath,
		Message:     fmt.Sprintf("payment failed at the gateway (status %s)", params.Status),
	}
}

// ProcessCancel handles a cancelled-payment callback. Formatting only.
func (s *Service) ProcessCancel(params CallbackParams) Result {
	s.logger.Info("cancel callback received", "tran_id", params.TransactionID)

	return Result{
		Success:     false,
		State:       StateRejectedInvalid,
		RedirectURL: errorRedirectPath,
		Message:     "payment was cancelled",
	}
}

func (s *Service) rejectInvalid(params CallbackParams, reason string) Result {
	s.publishRejected(context.Background(), params, reason)
	return Result{
		Success:     false,
		State:       StateRejectedInvalid,
		RedirectURL: errorRedirectPath,
		Message:     reason,
	}
}

func (s *Service) alreadyProcessed(params CallbackParams) Result {
	return Result{
		Success:     true,
		State:       StateAlreadyProcessed,
		RedirectURL: successRedirect(params),
		Message:     "payment already settled",
	}
}

func (s *Service) publishRejected(ctx context.Context, params CallbackParams, reason string) {
	event := events.NewPaymentRejectedEvent(params.TransactionID, reason, params.Amount)
	s.eventBus.Publish(ctx, event)
}

func successRedirect(params CallbackParams) string {
	query := url.Values{}
	query.Set("tran_id", params.TransactionID)
	query.Set("val_id", params.ValidationID)
	query.Set("status", params.Status)
	return fmt.Sprintf("%s?%s", successRedirectPath, query.Encode())
}
