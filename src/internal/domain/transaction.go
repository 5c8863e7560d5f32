package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodStripe   PaymentMethod = "stripe"
	PaymentMethodPayPal   PaymentMethod = "paypal"
	PaymentMethodApplePay PaymentMethod = "apple_pay"
	PaymentMethodCard     PaymentMethod = "card"
)

type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusFailed  TransactionStatus = "failed"
)

// IsTerminal reports whether no further transitions are allowed from s.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusSuccess || s == TransactionStatusFailed
}

// Transaction is one payment attempt in the ledger. Reference is the
// gateway-assigned intent id and the only key shared with webhook events.
type Transaction struct {
	ID            int64             `db:"id"`
	UserID        int64             `db:"user_id"`
	Amount        decimal.Decimal   `db:"amount"`
	PaymentMethod PaymentMethod     `db:"payment_method"`
	Status        TransactionStatus `db:"status"`
	Reference     string            `db:"reference"`
	Description   string            `db:"description"`
	CreatedAt     time.Time         `db:"created_at"`
}
