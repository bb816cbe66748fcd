package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/domain"
	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSequence(t *testing.T) {
	testCases := []struct {
		Name     string
		TrxnID   string
		Mode     string
		Expected int64
	}{
		{Name: "no prior reference", TrxnID: "", Mode: "live", Expected: 0},
		{Name: "plain sequence", TrxnID: "live_41_01HZX", Mode: "live", Expected: 41},
		{Name: "sequence without suffix", TrxnID: "test_7", Mode: "test", Expected: 7},
		{Name: "non numeric", TrxnID: "live_abc_01HZX", Mode: "live", Expected: 0},
		{Name: "other mode", TrxnID: "test_12_01HZX", Mode: "live", Expected: 0},
		{Name: "overflow", TrxnID: "live_99999999999999999999_x", Mode: "live", Expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, ParseSequence(tc.TrxnID, tc.Mode))
		})
	}
}

func TestReferenceAllocator_Allocate(t *testing.T) {
	repo := newMockRepository()
	repo.trxns = []domain.FinancialTrxn{
		{TrxnID: "live_9_A"},
		{TrxnID: "live_10_B"},
		{TrxnID: "test_300_C"},
	}
	allocator := CreateReferenceAllocator(repo, nil)
	allocator.suffix = func() string { return "SUFFIX" }

	ref, err := allocator.Allocate(context.Background(), ModeLive)
	require.NoError(t, err)
	assert.Equal(t, "live_11_SUFFIX", ref)

	ref, err = allocator.Allocate(context.Background(), ModeTest)
	require.NoError(t, err)
	assert.Equal(t, "test_301_SUFFIX", ref)
}

func TestReferenceAllocator_FirstReference(t *testing.T) {
	allocator := CreateReferenceAllocator(newMockRepository(), nil)

	ref, err := allocator.Allocate(context.Background(), ModeTest)
	require.NoError(t, err)

	parts := strings.SplitN(ref, "_", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, "test", parts[0])
	assert.Equal(t, "1", parts[1])
	assert.NotEmpty(t, parts[2])
}

func TestReferenceAllocator_SameSequenceNeverSameReference(t *testing.T) {
	repo := newMockRepository()
	allocator := CreateReferenceAllocator(repo, nil)

	// Nothing is written between the two reads, as with two concurrent
	// allocators racing on the same ledger maximum.
	first, err := allocator.Allocate(context.Background(), ModeLive)
	require.NoError(t, err)
	second, err := allocator.Allocate(context.Background(), ModeLive)
	require.NoError(t, err)

	assert.Equal(t, ParseSequence(first, ModeLive), ParseSequence(second, ModeLive))
	assert.NotEqual(t, first, second)
}

func TestReferenceAllocator_SequenceIncreasesAfterWrite(t *testing.T) {
	repo := newMockRepository()
	allocator := CreateReferenceAllocator(repo, nil)
	ctx := context.Background()

	first, err := allocator.Allocate(ctx, ModeLive)
	require.NoError(t, err)
	_, err = repo.AddFinancialTrxn(ctx, domain.FinancialTrxn{TrxnID: first})
	require.NoError(t, err)

	second, err := allocator.Allocate(ctx, ModeLive)
	require.NoError(t, err)

	assert.Greater(t, ParseSequence(second, ModeLive), ParseSequence(first, ModeLive))
	assert.NotEqual(t, first, second)
}

func TestReferenceAllocator_WithSequencer(t *testing.T) {
	repo := newMockRepository()
	repo.trxns = []domain.FinancialTrxn{{TrxnID: "live_5_A"}}
	allocator := CreateReferenceAllocator(repo, &mockSequencer{})
	ctx := context.Background()

	first, err := allocator.Allocate(ctx, ModeLive)
	require.NoError(t, err)
	second, err := allocator.Allocate(ctx, ModeLive)
	require.NoError(t, err)

	assert.Equal(t, int64(6), ParseSequence(first, ModeLive))
	assert.Equal(t, int64(7), ParseSequence(second, ModeLive))
}

func TestReferenceAllocator_SequencerDownFallsBackToLedger(t *testing.T) {
	repo := newMockRepository()
	repo.trxns = []domain.FinancialTrxn{{TrxnID: "live_5_A"}}
	allocator := CreateReferenceAllocator(repo, &mockSequencer{err: errors.New("redis down")})

	ref, err := allocator.Allocate(context.Background(), ModeLive)
	require.NoError(t, err)
	assert.Equal(t, int64(6), ParseSequence(ref, ModeLive))
}

func TestReferenceAllocator_StoreUnavailable(t *testing.T) {
	repo := newMockRepository()
	repo.maxTrxnErr = errors.New("connection refused")
	allocator := CreateReferenceAllocator(repo, nil)

	_, err := allocator.Allocate(context.Background(), ModeLive)
	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)

	repo.maxTrxnErr = fmt.Errorf("%w: timeout", errs.ErrStoreUnavailable)
	_, err = allocator.Allocate(context.Background(), ModeLive)
	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
}

func TestReferenceAllocator_InvalidMode(t *testing.T) {
	allocator := CreateReferenceAllocator(newMockRepository(), nil)

	_, err := allocator.Allocate(context.Background(), "sandbox")
	assert.ErrorIs(t, err, errs.ErrInvalidMode)
}
