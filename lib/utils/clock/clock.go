package clock

import "time"

// Provider abstracts wall-clock time and the simulated network latency the
// portal uses, so tests run with zero real wait.
type Provider interface {
	Now() time.Time
	Sleep(d time.Duration)
}

func NewInstance() Provider {
	return realClock{}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// NewStub returns a clock frozen at now whose Sleep returns immediately,
// recording the total requested wait.
func NewStub(now time.Time) *Stub {
	return &Stub{now: now}
}

type Stub struct {
	now   time.Time
	Slept time.Duration
}

func (s *Stub) Now() time.Time {
	return s.now
}

func (s *Stub) Sleep(d time.Duration) {
	s.Slept += d
	s.now = s.now.Add(d)
}

func (s *Stub) Advance(d time.Duration) {
	s.now = s.now.Add(d)
}
