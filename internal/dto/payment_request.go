package dto

import "github.com/shopspring/decimal"

const (
	ModuleContribute = "contribute"
	ModuleEvent      = "event"
)

type LineItem struct {
	FinancialTypeID string `json:"financial_type_id"`
}

// PaymentRequest is what the hosting payment framework hands over when a
// payer chooses to pay in cash.
type PaymentRequest struct {
	ContributionID     int64           `json:"contributionID"`
	ContactID          int64           `json:"contactID"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	CurrencyID         string          `json:"currencyID"`
	CurrencyOverride   string          `json:"currency_override"`
	PaymentProcessorID int64           `json:"payment_processor_id"`
	Module             string          `json:"module"`
	QFKey              string          `json:"qfKey"`
	SuccessURL         string          `json:"successURL"`
	CancelURL          string          `json:"cancelURL"`

	FinancialTypeID    string     `json:"financialTypeID"`
	FinancialTypeIDAlt string     `json:"financial_type_id"`
	LineItems          []LineItem `json:"line_items"`

	EventID       string `json:"eventID"`
	ParticipantID string `json:"participantID"`

	MembershipID          string `json:"membershipID"`
	ContributionPageID    string `json:"contributionPageID"`
	ContributionPageIDAlt string `json:"contribution_page_id"`
	RelatedContact        string `json:"related_contact"`
	OnBehalfDupeAlert     string `json:"onbehalf_dupe_alert"`
}

type PaymentResponse struct {
	RedirectURL     string `json:"redirect_url"`
	TrxnID          string `json:"trxn_id"`
	FinancialTrxnID int64  `json:"financial_trxn_id"`
}
