package metrics

// IncrementProposalCreated increments proposal creation counter
func (m *Metrics) IncrementProposalCreated() {
	m.safeExecute("IncrementProposalCreated", func() {
		m.ProposalCreatedTotal.Inc()
	})
}

// IncrementTransition increments the stage transition counter for a kind
// (none, neutral, close, reopen)
func (m *Metrics) IncrementTransition(kind string) {
	m.safeExecute("IncrementTransition", func() {
		m.StageTransitionsTotal.WithLabelValues(kind).Inc()
	})
}

// IncrementTransactionCreated increments the close-transaction counter
func (m *Metrics) IncrementTransactionCreated() {
	m.safeExecute("IncrementTransactionCreated", func() {
		m.TransactionCreatedTotal.Inc()
	})
}

// AddTransactionsCancelled adds reopen cancellations to the counter
func (m *Metrics) AddTransactionsCancelled(count int64) {
	m.safeExecute("AddTransactionsCancelled", func() {
		m.TransactionsCancelledTotal.Add(float64(count))
	})
}

// IncrementCommissionCreated increments the commission creation counter
func (m *Metrics) IncrementCommissionCreated() {
	m.safeExecute("IncrementCommissionCreated", func() {
		m.CommissionCreatedTotal.Inc()
	})
}

// AddCommissionsDeleted adds reopen deletions to the counter
func (m *Metrics) AddCommissionsDeleted(count int64) {
	m.safeExecute("AddCommissionsDeleted", func() {
		m.CommissionsDeletedTotal.Add(float64(count))
	})
}

// IncrementLedgerWriteFailure increments the ledger failure counter for a step
// (calendar_projection, transaction_create, commission_create, ...)
func (m *Metrics) IncrementLedgerWriteFailure(step string) {
	m.safeExecute("IncrementLedgerWriteFailure", func() {
		m.LedgerWriteFailuresTotal.WithLabelValues(step).Inc()
	})
}

// SetProposalsTotal sets total proposals gauge
func (m *Metrics) SetProposalsTotal(count int64) {
	m.safeExecute("SetProposalsTotal", func() {
		m.ProposalsTotal.Set(float64(count))
	})
}

// SetPendingTransactionsTotal sets the pending transactions gauge
func (m *Metrics) SetPendingTransactionsTotal(count int64) {
	m.safeExecute("SetPendingTransactionsTotal", func() {
		m.PendingTransactionsTotal.Set(float64(count))
	})
}

// SetOpenProposalCommissionsTotal sets the reconciliation drift gauge
func (m *Metrics) SetOpenProposalCommissionsTotal(count int64) {
	m.safeExecute("SetOpenProposalCommissionsTotal", func() {
		m.OpenProposalCommissionsTotal.Set(float64(count))
	})
}
