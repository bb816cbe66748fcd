package domain

import "github.com/shopspring/decimal"

const (
	ContributionStatusPending   = "Pending"
	ContributionStatusCompleted = "Completed"

	FinancialTrxnStatusCompleted = "Completed"

	// AccountRelationshipIncome is the entity_financial_accounts relationship
	// that points a financial type at the account receiving its payments.
	AccountRelationshipIncome = 1
)

type Contribution struct {
	ID                 int64           `db:"id"`
	ContactID          int64           `db:"contact_id"`
	FinancialTypeID    *int64          `db:"financial_type_id"`
	TotalAmount        decimal.Decimal `db:"total_amount"`
	Currency           *string         `db:"currency"`
	ContributionStatus string          `db:"contribution_status"`
	InvoiceID          *string         `db:"invoice_id"`
	TrxnID             *string         `db:"trxn_id"`
	CreatedAt          int64           `db:"created_at"`
	UpdatedAt          int64           `db:"updated_at"`
}

func (c Contribution) IsCompleted() bool {
	return c.ContributionStatus == ContributionStatusCompleted
}

// ReconciliationReference is the trxn_id written when a cash payment is
// confirmed.
func (c Contribution) ReconciliationReference() string {
	invoiceID := ""
	if c.InvoiceID != nil {
		invoiceID = *c.InvoiceID
	}
	return "Cash-" + invoiceID
}

type FinancialTrxn struct {
	ID                   int64           `db:"id"`
	ContributionID       int64           `db:"contribution_id"`
	TotalAmount          decimal.Decimal `db:"total_amount"`
	TrxnID               string          `db:"trxn_id"`
	PaymentProcessorID   int64           `db:"payment_processor_id"`
	Status               string          `db:"status"`
	Currency             int             `db:"currency"`
	ToFinancialAccountID int64           `db:"to_financial_account_id"`
	CreatedAt            int64           `db:"created_at"`
}

// EntityFinancialTrxn links a ledger row back to the contribution it pays.
type EntityFinancialTrxn struct {
	ID              int64           `db:"id"`
	EntityTable     string          `db:"entity_table"`
	EntityID        int64           `db:"entity_id"`
	FinancialTrxnID int64           `db:"financial_trxn_id"`
	Amount          decimal.Decimal `db:"amount"`
}

const EntityTableContribution = "contributions"
