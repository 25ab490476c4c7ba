package sender

import (
	"time"
)

// Schedule rate-limits batch emission. The zero value with a positive Rate
// is due on its first check.
type Schedule struct {
	// Rate is the number of batches per second.
	Rate int

	last      time.Time
	armed     bool
	emissions int
}

// Interval returns the minimum time between batches.
func (s *Schedule) Interval() time.Duration {
	if s.Rate <= 0 {
		return 0
	}
	return time.Second / time.Duration(s.Rate)
}

// Due reports whether a batch may be emitted at now.
func (s *Schedule) Due(now time.Time) bool {
	if !s.armed {
		return true
	}
	return now.Sub(s.last) >= s.Interval()
}

// Mark records an emission at now. Skipped ticks must not call it.
func (s *Schedule) Mark(now time.Time) {
	s.last = now
	s.armed = true
	s.emissions++
}

// Reset starts the schedule at now without recording an emission; the first
// batch is due one interval later.
func (s *Schedule) Reset(now time.Time) {
	s.last = now
	s.armed = true
}

// Last returns the time of the last emission or reset.
func (s *Schedule) Last() time.Time {
	return s.last
}

// Emissions returns the number of times Mark was called.
func (s *Schedule) Emissions() int {
	return s.emissions
}
