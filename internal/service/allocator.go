package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/repository"
	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

const (
	ModeLive = "live"
	ModeTest = "test"
)

// ReferenceAllocator builds transaction references of the form
// {mode}_{sequence}_{suffix}.
//
// Without a Sequencer the sequence is read from the ledger and incremented
// outside any transaction, so two concurrent allocations may share a
// sequence. The suffix keeps the references distinct.
type ReferenceAllocator struct {
	repository repository.PaymentRepository
	sequencer  Sequencer
	suffix     func() string
}

func CreateReferenceAllocator(repository repository.PaymentRepository, sequencer Sequencer) *ReferenceAllocator {
	return &ReferenceAllocator{
		repository: repository,
		sequencer:  sequencer,
		suffix:     func() string { return ulid.Make().String() },
	}
}

func (a *ReferenceAllocator) Allocate(ctx context.Context, mode string) (string, error) {
	if mode != ModeLive && mode != ModeTest {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidMode, mode)
	}

	maxTrxnID, err := a.repository.GetMaxTrxnID(ctx, mode)
	if err != nil {
		if !errors.Is(err, errs.ErrStoreUnavailable) {
			err = fmt.Errorf("%w: %v", errs.ErrStoreUnavailable, err)
		}
		return "", err
	}

	sequence := ParseSequence(maxTrxnID, mode) + 1

	if a.sequencer != nil {
		next, err := a.sequencer.Next(ctx, mode, sequence-1)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("component", "Allocate").Msg("sequencer unavailable, using ledger sequence")
		} else {
			sequence = next
		}
	}

	return fmt.Sprintf("%s_%d_%s", mode, sequence, a.suffix()), nil
}

// ParseSequence extracts the sequence from a reference under mode. The
// leading digits after the "{mode}_" prefix are used; anything else
// yields 0.
func ParseSequence(trxnID, mode string) int64 {
	rest, ok := strings.CutPrefix(trxnID, mode+"_")
	if !ok {
		return 0
	}

	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}

	sequence, err := strconv.ParseInt(rest[:end], 10, 64)
	if err != nil {
		return 0
	}

	return sequence
}
