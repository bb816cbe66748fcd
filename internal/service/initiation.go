package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/alimikegami/point-of-sales/cash-payment-service/config"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/dto"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/repository"
	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/errs"
	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/returnurl"
	"github.com/rs/zerolog/log"
)

// financialTypeLookups are tried in order; the first non-empty value wins.
var financialTypeLookups = []func(req dto.PaymentRequest) string{
	func(req dto.PaymentRequest) string { return req.FinancialTypeID },
	func(req dto.PaymentRequest) string { return req.FinancialTypeIDAlt },
	func(req dto.PaymentRequest) string {
		if len(req.LineItems) == 0 {
			return ""
		}
		return req.LineItems[0].FinancialTypeID
	},
}

type PaymentInitiationServiceImpl struct {
	repository repository.PaymentRepository
	allocator  *ReferenceAllocator
	recorder   *FinancialTrxnRecorder
	config     *config.Config
}

func CreatePaymentInitiationService(repository repository.PaymentRepository, allocator *ReferenceAllocator, recorder *FinancialTrxnRecorder, config *config.Config) PaymentInitiator {
	return &PaymentInitiationServiceImpl{
		repository: repository,
		allocator:  allocator,
		recorder:   recorder,
		config:     config,
	}
}

func (s *PaymentInitiationServiceImpl) Initiate(ctx context.Context, req dto.PaymentRequest) (resp dto.PaymentResponse, err error) {
	logger := log.Ctx(ctx).With().Str("component", "Initiate").Int64("contribution_id", req.ContributionID).Logger()

	if req.Module != dto.ModuleContribute && req.Module != dto.ModuleEvent {
		logger.Error().Str("module", req.Module).Msg("invalid component")
		return resp, fmt.Errorf("%w: %q", errs.ErrInvalidComponent, req.Module)
	}

	currencyName := firstNonEmpty(req.CurrencyOverride, req.CurrencyID)
	if currencyName != "" {
		err = s.repository.UpdateContributionCurrency(ctx, req.ContributionID, currencyName)
		if err != nil {
			return resp, err
		}
	}
	currency := SettlementCurrency(currencyName)

	mode := s.config.ProcessorConfig.Mode
	trxnID, err := s.allocator.Allocate(ctx, mode)
	if err != nil {
		logger.Error().Err(err).Msg("failed to allocate transaction reference")
		return resp, err
	}

	accountID, err := s.resolveFinancialAccount(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("failed to resolve financial account")
		return resp, err
	}

	processorID := req.PaymentProcessorID
	if processorID == 0 {
		processorID = s.config.ProcessorConfig.ID
	}

	trxn, err := s.recorder.Record(ctx, RecordParams{
		ContributionID:       req.ContributionID,
		Amount:               req.TotalAmount,
		TrxnID:               trxnID,
		PaymentProcessorID:   processorID,
		Currency:             currency,
		ToFinancialAccountID: accountID,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to record financial transaction")
		return resp, err
	}

	logger.Info().Str("trxn_id", trxn.TrxnID).Int64("financial_trxn_id", trxn.ID).Msg("cash payment recorded")

	resp.RedirectURL = s.confirmationURL(req, mode)
	resp.TrxnID = trxn.TrxnID
	resp.FinancialTrxnID = trxn.ID

	return resp, nil
}

func (s *PaymentInitiationServiceImpl) resolveFinancialAccount(ctx context.Context, req dto.PaymentRequest) (int64, error) {
	var financialTypeID string
	for _, lookup := range financialTypeLookups {
		if financialTypeID = strings.TrimSpace(lookup(req)); financialTypeID != "" {
			break
		}
	}

	typeID, err := strconv.ParseInt(financialTypeID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: no ledger account for financial type %q", errs.ErrConfiguration, financialTypeID)
	}

	accountID, err := s.repository.GetFinancialAccountIDByFinancialType(ctx, typeID)
	if err != nil {
		return 0, err
	}
	if accountID == 0 {
		return 0, fmt.Errorf("%w: no ledger account for financial type %d", errs.ErrConfiguration, typeID)
	}

	return accountID, nil
}

func (s *PaymentInitiationServiceImpl) returnURL(req dto.PaymentRequest) string {
	if req.SuccessURL != "" {
		return req.SuccessURL
	}

	path := "/civicrm/contribute/transact"
	if req.Module == dto.ModuleEvent {
		path = "/civicrm/event/register"
	}

	return strings.TrimRight(s.config.BaseURL, "/") + path + "?_qf_ThankYou_display=1&qfKey=" + url.QueryEscape(req.QFKey)
}

func (s *PaymentInitiationServiceImpl) confirmationURL(req dto.PaymentRequest, mode string) string {
	params := []string{
		"processor_name=" + url.QueryEscape(s.config.ProcessorConfig.Name),
		"mode=" + mode,
		"md=" + req.Module,
		"qfKey=" + url.QueryEscape(req.QFKey),
		"contactID=" + strconv.FormatInt(req.ContactID, 10),
		"contributionID=" + strconv.FormatInt(req.ContributionID, 10),
	}

	if req.Module == dto.ModuleEvent {
		params = append(params,
			"eventID="+url.QueryEscape(req.EventID),
			"participantID="+url.QueryEscape(req.ParticipantID),
		)
	} else {
		if req.MembershipID != "" {
			params = append(params, "membershipID="+url.QueryEscape(req.MembershipID))
		}
		if pageID := firstNonEmpty(req.ContributionPageID, req.ContributionPageIDAlt); pageID != "" {
			params = append(params, "contributionPageID="+url.QueryEscape(pageID))
		}
		if req.RelatedContact != "" {
			params = append(params, "relatedContactID="+url.QueryEscape(req.RelatedContact))
			if req.OnBehalfDupeAlert != "" {
				params = append(params, "onBehalfDupeAlert="+url.QueryEscape(req.OnBehalfDupeAlert))
			}
		}
	}

	params = append(params, "returnURL="+url.QueryEscape(returnurl.Encode(s.returnURL(req))))

	return strings.TrimRight(s.config.BaseURL, "/") + s.config.ProcessorConfig.IPNPath + "?" + strings.Join(params, "&")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
