package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/domain"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/dto"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/repository"
	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/errs"
)

// mockRepository is an in-memory PaymentRepository.
type mockRepository struct {
	mu sync.Mutex

	contributions  map[int64]domain.Contribution
	trxns          []domain.FinancialTrxn
	entityTrxns    []domain.EntityFinancialTrxn
	accounts       map[int64]int64
	completeWrites int

	maxTrxnErr   error
	getErr       error
	completeErr  error
	addTrxnErr   error
	currencyErr  error
	currencySets map[int64]string
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		contributions: make(map[int64]domain.Contribution),
		accounts:      make(map[int64]int64),
		currencySets:  make(map[int64]string),
	}
}

func (m *mockRepository) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo repository.PaymentRepository) error) error {
	m.mu.Lock()
	trxns, entityTrxns := len(m.trxns), len(m.entityTrxns)
	m.mu.Unlock()

	err := fn(ctx, m)
	if err != nil {
		m.mu.Lock()
		m.trxns = m.trxns[:trxns]
		m.entityTrxns = m.entityTrxns[:entityTrxns]
		m.mu.Unlock()
	}
	return err
}

func (m *mockRepository) GetContributionByID(ctx context.Context, id int64) (domain.Contribution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getErr != nil {
		return domain.Contribution{}, m.getErr
	}
	c, ok := m.contributions[id]
	if !ok {
		return domain.Contribution{}, fmt.Errorf("%w: %d", errs.ErrObligationNotFound, id)
	}
	return c, nil
}

func (m *mockRepository) UpdateContributionCurrency(ctx context.Context, id int64, currency string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.currencyErr != nil {
		return m.currencyErr
	}
	m.currencySets[id] = currency
	if c, ok := m.contributions[id]; ok {
		c.Currency = &currency
		m.contributions[id] = c
	}
	return nil
}

func (m *mockRepository) CompleteContribution(ctx context.Context, id int64, trxnID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.completeErr != nil {
		return m.completeErr
	}
	c := m.contributions[id]
	c.ContributionStatus = domain.ContributionStatusCompleted
	c.TrxnID = &trxnID
	m.contributions[id] = c
	m.completeWrites++
	return nil
}

func (m *mockRepository) GetMaxTrxnID(ctx context.Context, mode string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxTrxnErr != nil {
		return "", m.maxTrxnErr
	}

	var maxTrxnID string
	var maxSeq int64 = -1
	for _, t := range m.trxns {
		seq := ParseSequence(t.TrxnID, mode)
		if strings.HasPrefix(t.TrxnID, mode+"_") && seq > maxSeq {
			maxSeq = seq
			maxTrxnID = t.TrxnID
		}
	}
	return maxTrxnID, nil
}

func (m *mockRepository) AddFinancialTrxn(ctx context.Context, data domain.FinancialTrxn) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.addTrxnErr != nil {
		return 0, m.addTrxnErr
	}
	data.ID = int64(len(m.trxns) + 1)
	m.trxns = append(m.trxns, data)
	return data.ID, nil
}

func (m *mockRepository) AddEntityFinancialTrxn(ctx context.Context, data domain.EntityFinancialTrxn) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entityTrxns = append(m.entityTrxns, data)
	return nil
}

func (m *mockRepository) GetFinancialAccountIDByFinancialType(ctx context.Context, financialTypeID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.accounts[financialTypeID], nil
}

type mockPublisher struct {
	mu       sync.Mutex
	messages []dto.KafkaMessage
	err      error
}

func (p *mockPublisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, msg)
	return nil
}

func (p *mockPublisher) eventTypes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]string, 0, len(p.messages))
	for _, m := range p.messages {
		types = append(types, m.EventType)
	}
	return types
}

type mockSequencer struct {
	counters map[string]int64
	err      error
}

func (s *mockSequencer) Next(ctx context.Context, mode string, floor int64) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if s.counters == nil {
		s.counters = make(map[string]int64)
	}
	if s.counters[mode] < floor {
		s.counters[mode] = floor
	}
	s.counters[mode]++
	return s.counters[mode], nil
}
