package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alimikegami/point-of-sales/cash-payment-service/config"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/dto"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/repository"
	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/errs"
	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/returnurl"
	"github.com/rs/zerolog/log"
)

type NotificationServiceImpl struct {
	repository repository.PaymentRepository
	publisher  EventPublisher
	config     *config.Config
}

func CreateNotificationService(repository repository.PaymentRepository, publisher EventPublisher, config *config.Config) NotificationHandler {
	return &NotificationServiceImpl{
		repository: repository,
		publisher:  publisher,
		config:     config,
	}
}

// HandleNotification moves a Pending contribution to Completed. The
// status check is the only guard against redelivery; two racing deliveries
// may both write, with identical values.
func (s *NotificationServiceImpl) HandleNotification(ctx context.Context, req dto.PaymentNotification) (res dto.NotificationResult, err error) {
	logger := log.Ctx(ctx).With().Str("component", "HandleNotification").Logger()

	defer func() {
		if err != nil {
			notificationsHandled.WithLabelValues(outcomeRejected).Inc()
			logger.Error().Err(err).Msg("notification rejected")
		}
	}()

	contributionID, err := requireInt("contributionID", req.ContributionID)
	if err != nil {
		return res, err
	}

	contactID, err := requireInt("contactID", req.ContactID)
	if err != nil {
		return res, err
	}

	logger = logger.With().Int64("contribution_id", contributionID).Logger()
	res.ContributionID = contributionID

	contribution, err := s.repository.GetContributionByID(ctx, contributionID)
	if err != nil {
		return res, err
	}

	if contribution.ContactID != contactID {
		logger.Warn().Int64("contact_id", contactID).Int64("contribution_contact_id", contribution.ContactID).Msg("contact ID in notification does not match contribution")
	}

	if contribution.IsCompleted() {
		logger.Debug().Msg("contribution has already been handled")
		notificationsHandled.WithLabelValues(outcomeDuplicate).Inc()
		res.AlreadyCompleted = true
		return res, nil
	}

	trxnID := contribution.ReconciliationReference()
	err = s.repository.CompleteContribution(ctx, contribution.ID, trxnID)
	if err != nil {
		return res, err
	}

	notificationsHandled.WithLabelValues(outcomeCompleted).Inc()
	logger.Info().Str("trxn_id", trxnID).Msg("contribution completed")

	res.RedirectURL = s.successRedirect(ctx, req.ReturnURL)

	err = s.publisher.Publish(ctx, strconv.FormatInt(contribution.ID, 10), dto.KafkaMessage{
		EventType: dto.EventContributionCompleted,
		Data: dto.ContributionCompleted{
			ContributionID: contribution.ID,
			ContactID:      contribution.ContactID,
			TrxnID:         trxnID,
			Module:         req.Module,
		},
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to publish event")
	}

	return res, nil
}

// successRedirect runs after the status write, so a bad token falls back
// to the base URL instead of failing the request. Only http and https
// targets are honoured.
func (s *NotificationServiceImpl) successRedirect(ctx context.Context, token string) string {
	logger := log.Ctx(ctx).With().Str("component", "HandleNotification").Logger()
	target := s.config.BaseURL

	if token != "" {
		decoded, err := returnurl.Decode(token)
		switch {
		case err != nil:
			logger.Warn().Err(err).Msg("undecodable return URL, using base URL")
		case decoded == "":
		case !returnurl.IsWebURL(decoded):
			logger.Warn().Str("return_url", decoded).Msg("return URL is not an http(s) URL, using base URL")
		default:
			target = decoded
		}
	}

	if target == s.config.BaseURL && !returnurl.IsWebURL(target) {
		logger.Error().Str("base_url", target).Msg("base URL is not an absolute http(s) URL")
	}

	return returnurl.UpsertSuccessFlag(target)
}

func requireInt(name, value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%w: could not find an entry for %s", errs.ErrMissingField, name)
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an integer", errs.ErrMissingField, name)
	}

	return parsed, nil
}
