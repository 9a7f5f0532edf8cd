// Package scheduler fires the periodic auto-refresh.
package scheduler

import (
	"sync/atomic"

	"github.com/robfig/cron/v3"

	"github.com/cpnews/cpnews/internal/logger"
)

// DefaultSpec refreshes every ten minutes
const DefaultSpec = "@every 10m"

// Scheduler calls trigger on a cron schedule while enabled
type Scheduler struct {
	cron    *cron.Cron
	spec    string
	trigger func()
	enabled atomic.Bool
	runs    atomic.Int64
}

// New parses spec and registers trigger. An empty spec returns a nil
// scheduler, meaning auto-refresh is disabled; all methods accept nil.
func New(spec string, trigger func()) (*Scheduler, error) {
	if spec == "" {
		return nil, nil
	}

	c := cron.New()
	s := &Scheduler{
		cron:    c,
		spec:    spec,
		trigger: trigger,
	}
	s.enabled.Store(true)

	if _, err := c.AddFunc(spec, s.runOnce); err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins the schedule in its own goroutine
func (s *Scheduler) Start() {
	if s == nil {
		return
	}
	logger.Infof("[scheduler] auto-refresh %q", s.spec)
	s.cron.Start()
}

// Stop halts the schedule and waits for a running trigger to return
func (s *Scheduler) Stop() {
	if s == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// SetEnabled pauses or resumes triggering without touching the schedule
func (s *Scheduler) SetEnabled(enabled bool) {
	if s == nil {
		return
	}
	s.enabled.Store(enabled)
}

// Enabled reports whether ticks reach the trigger
func (s *Scheduler) Enabled() bool {
	return s != nil && s.enabled.Load()
}

// runOnce fires the trigger unless paused
func (s *Scheduler) runOnce() {
	if !s.enabled.Load() || s.trigger == nil {
		return
	}
	n := s.runs.Add(1)
	logger.Debugf("[scheduler] tick %d", n)
	s.trigger()
}
