package service

import (
	"context"
	"strconv"
	"time"

	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/domain"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/dto"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	CurrencyCodeDefault = 1
	CurrencyCodeUSD     = 2
	CurrencyCodeEUR     = 978
)

// SettlementCurrency maps a currency hint to the ledger's numeric code.
// The table is closed: unknown and empty hints settle in the default
// currency.
func SettlementCurrency(hint string) int {
	switch hint {
	case "EUR":
		return CurrencyCodeEUR
	case "USD":
		return CurrencyCodeUSD
	default:
		return CurrencyCodeDefault
	}
}

type RecordParams struct {
	ContributionID       int64
	Amount               decimal.Decimal
	TrxnID               string
	PaymentProcessorID   int64
	Currency             int
	ToFinancialAccountID int64
}

type FinancialTrxnRecorder struct {
	repository repository.PaymentRepository
	publisher  EventPublisher
	now        func() time.Time
}

func CreateFinancialTrxnRecorder(repository repository.PaymentRepository, publisher EventPublisher) *FinancialTrxnRecorder {
	return &FinancialTrxnRecorder{
		repository: repository,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Record appends one Completed ledger row and links it to the
// contribution. It does not look at the contribution's payment state.
func (r *FinancialTrxnRecorder) Record(ctx context.Context, params RecordParams) (trxn domain.FinancialTrxn, err error) {
	trxnID := params.TrxnID
	if trxnID == "" {
		trxnID = strconv.FormatInt(params.ContributionID, 10)
	}

	trxn = domain.FinancialTrxn{
		ContributionID:       params.ContributionID,
		TotalAmount:          params.Amount,
		TrxnID:               trxnID,
		PaymentProcessorID:   params.PaymentProcessorID,
		Status:               domain.FinancialTrxnStatusCompleted,
		Currency:             params.Currency,
		ToFinancialAccountID: params.ToFinancialAccountID,
		CreatedAt:            r.now().Unix(),
	}

	err = r.repository.HandleTrx(ctx, func(ctx context.Context, repo repository.PaymentRepository) error {
		id, err := repo.AddFinancialTrxn(ctx, trxn)
		if err != nil {
			return err
		}
		trxn.ID = id

		return repo.AddEntityFinancialTrxn(ctx, domain.EntityFinancialTrxn{
			EntityTable:     domain.EntityTableContribution,
			EntityID:        trxn.ContributionID,
			FinancialTrxnID: id,
			Amount:          trxn.TotalAmount,
		})
	})
	if err != nil {
		return domain.FinancialTrxn{}, err
	}

	ledgerEntriesRecorded.Inc()

	err = r.publisher.Publish(ctx, strconv.FormatInt(trxn.ContributionID, 10), dto.KafkaMessage{
		EventType: dto.EventFinancialTrxnRecorded,
		Data: dto.FinancialTrxnRecorded{
			FinancialTrxnID: trxn.ID,
			ContributionID:  trxn.ContributionID,
			TrxnID:          trxn.TrxnID,
			TotalAmount:     trxn.TotalAmount,
			Currency:        trxn.Currency,
		},
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Record").Int64("financial_trxn_id", trxn.ID).Msg("failed to publish event")
	}

	return trxn, nil
}
