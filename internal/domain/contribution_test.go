package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContribution_ReconciliationReference(t *testing.T) {
	invoice := "INV-9"

	assert.Equal(t, "Cash-INV-9", Contribution{InvoiceID: &invoice}.ReconciliationReference())
	assert.Equal(t, "Cash-", Contribution{}.ReconciliationReference())
}

func TestContribution_IsCompleted(t *testing.T) {
	assert.True(t, Contribution{ContributionStatus: ContributionStatusCompleted}.IsCompleted())
	assert.False(t, Contribution{ContributionStatus: ContributionStatusPending}.IsCompleted())
}
