package internal

import "time"

// Clock is the single trusted source of "now" for event timestamps.
// Abstracting it keeps record creation deterministic in tests.
type Clock interface {
	Now() time.Time
}

// OffsetClock returns wall-clock time shifted by a fixed, configured offset
// and truncated to second precision. The offset replaces any hard-coded
// timezone shift; it defaults to zero.
type OffsetClock struct {
	Offset time.Duration
}

func (c OffsetClock) Now() time.Time {
	return time.Now().Add(c.Offset).Truncate(time.Second)
}
