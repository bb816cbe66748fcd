package repository

import (
	"context"

	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/domain"
)

type PaymentRepository interface {
	HandleTrx(ctx context.Context, fn func(ctx context.Context, repo PaymentRepository) error) error

	GetContributionByID(ctx context.Context, id int64) (data domain.Contribution, err error)
	UpdateContributionCurrency(ctx context.Context, id int64, currency string) (err error)
	CompleteContribution(ctx context.Context, id int64, trxnID string) (err error)

	GetMaxTrxnID(ctx context.Context, mode string) (trxnID string, err error)
	AddFinancialTrxn(ctx context.Context, data domain.FinancialTrxn) (id int64, err error)
	AddEntityFinancialTrxn(ctx context.Context, data domain.EntityFinancialTrxn) (err error)

	GetFinancialAccountIDByFinancialType(ctx context.Context, financialTypeID int64) (id int64, err error)
}
