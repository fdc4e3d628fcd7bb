package payment

import (
	"time"
)

// Record is the append-only settlement record. The composite unique index on
// (fee_id, fee_category) is the storage-level idempotency barrier: at most one
// record may ever exist per fee. A transaction id may legitimately appear on
// several records when one callback settles both a hall and a dining fee, so
// it only carries a plain index.
type Record struct {
	ID            int64     `gorm:"primaryKey"`
	FeeID         int64     `gorm:"column:fee_id;not null;uniqueIndex:idx_payment_fee_category"`
	FeeCategory   string    `gorm:"column:fee_category;not null;uniqueIndex:idx_payment_fee_category"`
	TransactionID string    `gorm:"column:transaction_id;not null;index"`
	ValidationID  string    `gorm:"column:validation_id;not null"`
	PaymentMethod string    `gorm:"column:payment_method"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (Record) TableName() string {
	return "payment_records"
}
