package clock

import "time"

// Real is the wall clock. It satisfies the services.Clock interface.
type Real struct{}

// Now returns the current time in UTC. All persisted timestamps are UTC so
// retention cutoffs and ledger windows compare cleanly.
func (Real) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a clock pinned to a single instant, for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}
