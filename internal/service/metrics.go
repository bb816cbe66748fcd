package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeCompleted = "completed"
	outcomeDuplicate = "duplicate"
	outcomeRejected  = "rejected"
)

var (
	ledgerEntriesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cash_payment_ledger_entries_total",
		Help: "Financial transactions recorded for cash payments.",
	})

	notificationsHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cash_payment_notifications_total",
		Help: "Cash payment notifications by outcome.",
	}, []string{"outcome"})
)
