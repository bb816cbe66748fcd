package service

import (
	"context"

	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/dto"
)

// PaymentInitiator records a cash payment and returns where the payer goes
// to confirm it.
type PaymentInitiator interface {
	Initiate(ctx context.Context, req dto.PaymentRequest) (resp dto.PaymentResponse, err error)
}

// NotificationHandler confirms a cash payment from the callback. A
// duplicate callback returns a result with AlreadyCompleted set and no
// redirect.
type NotificationHandler interface {
	HandleNotification(ctx context.Context, req dto.PaymentNotification) (res dto.NotificationResult, err error)
}

type EventPublisher interface {
	Publish(ctx context.Context, key string, msg dto.KafkaMessage) error
}

// Sequencer is an atomic per-mode counter. floor is the highest sequence
// already present in the ledger.
type Sequencer interface {
	Next(ctx context.Context, mode string, floor int64) (int64, error)
}

// NopEventPublisher is used when no broker is configured.
type NopEventPublisher struct{}

func (NopEventPublisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	return nil
}
