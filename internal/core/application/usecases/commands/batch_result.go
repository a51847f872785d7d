package commands

// ItemOutcome records the result of processing one package in a batch operation.
type ItemOutcome struct {
	ParcelID string
	Err      error
}

// BatchResult holds per-package outcomes of a batch lifecycle operation.
//
// Batch items are processed independently: a failed item does not roll back
// items that already committed, and a follow-up read shows exactly which
// packages advanced. Callers use Err to decide the overall response while
// the outcomes list preserves the per-item detail.
type BatchResult struct {
	Outcomes []ItemOutcome
}

// Failed reports whether any item in the batch failed.
func (r BatchResult) Failed() bool {
	return r.Err() != nil
}

// Err returns the first item error, or nil when every item succeeded.
func (r BatchResult) Err() error {
	for _, outcome := range r.Outcomes {
		if outcome.Err != nil {
			return outcome.Err
		}
	}
	return nil
}
