package postgres

import (
	"context"
	"errors"
	"strings"

	paymentmodel "github.com/frahmantamala/dorm-management/internal/core/datamodel/payment"
	feepostgres "github.com/frahmantamala/dorm-management/internal/fee/postgres"
	"github.com/frahmantamala/dorm-management/internal/payment"
	"gorm.io/gorm"
)

type RecordRepository struct {
	db *gorm.DB
}

var _ payment.RecordStore = (*RecordRepository)(nil)

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) ExistsByTransactionID(transactionID string) (bool, error) {
	var count int64
	err := r.db.Model(&paymentmodel.Record{}).
		Where("transaction_id = ?", transactionID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *RecordRepository) Save(record *paymentmodel.Record) error {
	err := r.db.Create(record).Error
	if err != nil {
		if isDuplicateKeyError(err) {
			return payment.ErrDuplicateRecord
		}
		return err
	}
	return nil
}

func (r *RecordRepository) ListByTransactionID(transactionID string) ([]*paymentmodel.Record, error) {
	var records []*paymentmodel.Record
	err := r.db.Where("transaction_id = ?", transactionID).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// isDuplicateKeyError recognizes uniqueness violations across the drivers we
// run against (postgres in production, sqlite in tests).
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "23505")
}

// UnitOfWork binds the settlement closure to one database transaction. The
// ledger and record store handed to fn share the tx, so either every fee flip
// and record insert commits or none do.
type UnitOfWork struct {
	db *gorm.DB
}

var _ payment.UnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(ledger payment.Ledger, records payment.RecordStore) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(feepostgres.NewFeeRepository(tx), NewRecordRepository(tx))
	})
}
