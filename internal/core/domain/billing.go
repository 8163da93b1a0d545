package domain

import "time"

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft    InvoiceStatus = "draft"
	InvoiceIssued   InvoiceStatus = "issued"
	InvoicePaid     InvoiceStatus = "paid"
	InvoiceCanceled InvoiceStatus = "canceled"
	InvoiceRefunded InvoiceStatus = "refunded"
)

// PaymentMethod identifies how a payment was made.
type PaymentMethod string

const (
	PayBankCard PaymentMethod = "bank_card"
	PayYoomoney PaymentMethod = "yoomoney"
	PaySBP      PaymentMethod = "sbp"
	PayInvoice  PaymentMethod = "invoice"
)

// Invoice bills a client, optionally tied to a campaign. Amounts are stored
// in integer units (kopecks). The campaign reference survives campaign
// deactivation; campaigns are never hard-deleted out from under invoices.
type Invoice struct {
	ID         int64
	ClientID   int64
	Number     string
	Amount     int64
	Status     InvoiceStatus
	CreatedAt  time.Time
	DueDate    time.Time
	PaidAt     *time.Time
	CampaignID *int64
	Metadata   []byte
}

// Payment is a settlement against an invoice.
type Payment struct {
	ID          int64
	InvoiceID   int64
	Amount      int64
	Method      PaymentMethod
	ProcessedAt time.Time
	ExternalID  string
	IsRefund    bool
	ReceiptURL  string
	Details     []byte
}

// ClientBalance tracks a client's current balance and credit limit.
type ClientBalance struct {
	ClientID    int64
	Amount      int64
	CreditLimit int64
	LastUpdated time.Time
}
