package dto

import "github.com/shopspring/decimal"

const (
	EventFinancialTrxnRecorded = "financial_trxn_recorded"
	EventContributionCompleted = "contribution_completed"
)

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type FinancialTrxnRecorded struct {
	FinancialTrxnID int64           `json:"financial_trxn_id"`
	ContributionID  int64           `json:"contribution_id"`
	TrxnID          string          `json:"trxn_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Currency        int             `json:"currency"`
}

type ContributionCompleted struct {
	ContributionID int64  `json:"contribution_id"`
	ContactID      int64  `json:"contact_id"`
	TrxnID         string `json:"trxn_id"`
	Module         string `json:"module"`
}
