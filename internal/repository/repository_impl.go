package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/domain"
	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type PaymentRepositoryImpl struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func CreatePaymentRepository(db *sqlx.DB) PaymentRepository {
	return &PaymentRepositoryImpl{
		db: db,
	}
}

func (r *PaymentRepositoryImpl) conn() sqlx.ExtContext {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func storeError(err error) error {
	return fmt.Errorf("%w: %v", errs.ErrStoreUnavailable, err)
}

func (r *PaymentRepositoryImpl) GetContributionByID(ctx context.Context, id int64) (data domain.Contribution, err error) {
	row := r.conn().QueryRowxContext(ctx, "SELECT id, contact_id, financial_type_id, total_amount, currency, contribution_status, invoice_id, trxn_id, created_at, updated_at FROM contributions WHERE id = $1", id)
	err = row.StructScan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return data, fmt.Errorf("%w: %d", errs.ErrObligationNotFound, id)
		}
		log.Error().Err(err).Str("component", "GetContributionByID").Msg("")
		return data, storeError(err)
	}

	return
}

func (r *PaymentRepositoryImpl) UpdateContributionCurrency(ctx context.Context, id int64, currency string) (err error) {
	_, err = r.conn().ExecContext(ctx, "UPDATE contributions SET currency = $1, updated_at = EXTRACT(EPOCH FROM NOW())::bigint WHERE id = $2", currency, id)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateContributionCurrency").Msg("")
		return storeError(err)
	}

	return nil
}

// CompleteContribution writes the status and the reconciliation reference
// in one statement. It is not conditional on the current status: a racing
// duplicate writes the same values.
func (r *PaymentRepositoryImpl) CompleteContribution(ctx context.Context, id int64, trxnID string) (err error) {
	_, err = r.conn().ExecContext(ctx, "UPDATE contributions SET contribution_status = $1, trxn_id = $2, updated_at = EXTRACT(EPOCH FROM NOW())::bigint WHERE id = $3", domain.ContributionStatusCompleted, trxnID, id)
	if err != nil {
		log.Error().Err(err).Str("component", "CompleteContribution").Msg("")
		return storeError(err)
	}

	return nil
}

// GetMaxTrxnID returns the reference with the highest numeric sequence for
// mode, or an empty string when the mode has no references yet.
func (r *PaymentRepositoryImpl) GetMaxTrxnID(ctx context.Context, mode string) (trxnID string, err error) {
	query := `SELECT trxn_id FROM financial_trxns
		WHERE trxn_id LIKE $1
		ORDER BY COALESCE(NULLIF(substring(trxn_id FROM '^[a-z]+_([0-9]+)'), '')::numeric, 0) DESC, trxn_id DESC
		LIMIT 1`

	err = sqlx.GetContext(ctx, r.conn(), &trxnID, query, mode+`\_%`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		log.Error().Err(err).Str("component", "GetMaxTrxnID").Msg("")
		return "", storeError(err)
	}

	return
}

func (r *PaymentRepositoryImpl) AddFinancialTrxn(ctx context.Context, data domain.FinancialTrxn) (id int64, err error) {
	query, args, err := sqlx.Named("INSERT INTO financial_trxns(contribution_id, total_amount, trxn_id, payment_processor_id, status, currency, to_financial_account_id, created_at) VALUES (:contribution_id, :total_amount, :trxn_id, :payment_processor_id, :status, :currency, :to_financial_account_id, :created_at) RETURNING id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddFinancialTrxn").Msg("")
		return 0, err
	}

	err = r.conn().QueryRowxContext(ctx, r.conn().Rebind(query), args...).Scan(&id)
	if err != nil {
		log.Error().Err(err).Str("component", "AddFinancialTrxn").Msg("")
		return 0, storeError(err)
	}

	return id, nil
}

func (r *PaymentRepositoryImpl) AddEntityFinancialTrxn(ctx context.Context, data domain.EntityFinancialTrxn) (err error) {
	_, err = sqlx.NamedExecContext(ctx, r.conn(), "INSERT INTO entity_financial_trxns(entity_table, entity_id, financial_trxn_id, amount) VALUES (:entity_table, :entity_id, :financial_trxn_id, :amount)", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddEntityFinancialTrxn").Msg("")
		return storeError(err)
	}

	return nil
}

// GetFinancialAccountIDByFinancialType returns 0 when the financial type
// has no income account.
func (r *PaymentRepositoryImpl) GetFinancialAccountIDByFinancialType(ctx context.Context, financialTypeID int64) (id int64, err error) {
	err = sqlx.GetContext(ctx, r.conn(), &id, "SELECT financial_account_id FROM entity_financial_accounts WHERE entity_id = $1 AND account_relationship = $2 LIMIT 1", financialTypeID, domain.AccountRelationshipIncome)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		log.Error().Err(err).Str("component", "GetFinancialAccountIDByFinancialType").Msg("")
		return 0, storeError(err)
	}

	return
}

func (r *PaymentRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo PaymentRepository) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return storeError(err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else if commitErr := tx.Commit(); commitErr != nil {
			err = storeError(commitErr)
		}
	}()

	txRepo := &PaymentRepositoryImpl{
		db: r.db,
		tx: tx,
	}

	err = fn(ctx, txRepo)

	return err
}
