package load

// TableReport is the deterministic outcome accounting for one table: how many
// items were written, which keys failed permanently after the retry bound,
// how many were never attempted because the run was cancelled, and how many
// retry attempts the table consumed. It is assembled once the table load
// returns; nothing is persisted mid-run.
type TableReport struct {
	Table        string
	Total        int
	Written      int
	NotAttempted int
	Retries      int
	// Failed lists the keys of items whose retries were exhausted. Failure is
	// isolated per batch and never aborts the rest of the table.
	Failed []string
}

// Clean reports whether every item of the table was written.
func (r TableReport) Clean() bool {
	return len(r.Failed) == 0 && r.NotAttempted == 0
}

// Summary aggregates the per-table reports of one load run.
type Summary struct {
	Tables []TableReport
}

// Failed reports whether any item across all tables ended up permanently
// failed or unattempted; the CLI exits non-zero in that case.
func (s Summary) Failed() bool {
	for _, t := range s.Tables {
		if !t.Clean() {
			return true
		}
	}

	return false
}

// Written returns the total number of items committed across tables.
func (s Summary) Written() int {
	var n int
	for _, t := range s.Tables {
		n += t.Written
	}

	return n
}
