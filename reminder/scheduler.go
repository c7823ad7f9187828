// Package reminder runs the periodic time check: every interval it prompts
// the user to attribute the elapsed time to a life context, then posts the
// resulting time-log entry to the backend.
package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"lifeos/dashboard/config"
	"lifeos/dashboard/notify"
)

// TimeLogger posts one time-log entry. Satisfied by *lifeos.Client.
type TimeLogger interface {
	LogTime(ctx context.Context, lifeContext string, minutes int) error
}

// Broadcaster pushes events to the open page. Satisfied by *notify.Hub.
type Broadcaster interface {
	Broadcast(eventType string, data any)
}

type State string

const (
	StateIdle      State = "idle"
	StatePrompting State = "prompting"
)

// Prompt identifies one open time check. The token guards against a
// dismissal of a prompt that is no longer current.
type Prompt struct {
	Token   string    `json:"token"`
	FiredAt time.Time `json:"fired_at"`
}

// Scheduler is the idle/prompting state machine behind the time check.
// A single timer drives it: armed on Start, disarmed while a prompt is
// open, re-armed for a full interval from each dismissal. There is never
// more than one outstanding prompt.
type Scheduler struct {
	interval  time.Duration
	logger    TimeLogger
	events    Broadcaster
	perms     *notify.Permissions
	onDismiss func(context.Context)
	now       func() time.Time

	mu            sync.Mutex
	timer         *time.Timer
	state         State
	prompt        Prompt
	lastDismissal time.Time
	stopped       bool
}

func NewScheduler(interval time.Duration, logger TimeLogger, events Broadcaster, perms *notify.Permissions, onDismiss func(context.Context)) *Scheduler {
	return &Scheduler{
		interval:  interval,
		logger:    logger,
		events:    events,
		perms:     perms,
		onDismiss: onDismiss,
		now:       time.Now,
		state:     StateIdle,
	}
}

// Start arms the timer for the first prompt, one full interval out.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil || s.stopped {
		return
	}
	config.Logger.Info("Time check scheduler started, interval ", s.interval)
	s.timer = time.AfterFunc(s.interval, s.fire)
}

// Stop disarms the timer. A prompt already open stays dismissable.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
	}
}

func (s *Scheduler) fire() {
	s.mu.Lock()
	if s.stopped || s.state == StatePrompting {
		s.mu.Unlock()
		return
	}
	s.state = StatePrompting
	s.prompt = Prompt{Token: uuid.NewString(), FiredAt: s.now()}
	prompt := s.prompt
	s.mu.Unlock()

	s.events.Broadcast(notify.EventTimeCheck, prompt)
	if s.perms.ShouldNotify() {
		s.events.Broadcast(notify.EventNotification, map[string]string{
			"title": "⏰ Time Check",
			"body":  "What have you been working on?",
		})
	} else if s.perms.ShouldAsk() {
		s.events.Broadcast(notify.EventRequestPermission, map[string]string{})
	}
}

// State reports whether a prompt is currently open.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentPrompt returns the open prompt, if any.
func (s *Scheduler) CurrentPrompt() (Prompt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompt, s.state == StatePrompting
}

// Dismiss closes the open prompt, logs the elapsed minutes against the
// chosen context, and re-arms the timer for a full interval from now.
// Elapsed time is measured from the previous dismissal; the very first
// dismissal logs exactly one interval. A stale or unknown token is
// rejected. A failed LogTime is logged, not surfaced: the prompt still
// closes rather than nagging about a backend hiccup.
func (s *Scheduler) Dismiss(ctx context.Context, token, lifeContext string) (int, error) {
	s.mu.Lock()
	if s.state != StatePrompting {
		s.mu.Unlock()
		return 0, fmt.Errorf("no time check is open")
	}
	if token != s.prompt.Token {
		s.mu.Unlock()
		return 0, fmt.Errorf("stale time check token")
	}

	now := s.now()
	minutes := s.elapsedMinutes(now)
	s.state = StateIdle
	s.prompt = Prompt{}
	s.lastDismissal = now
	if !s.stopped {
		s.timer = time.AfterFunc(s.interval, s.fire)
	}
	s.mu.Unlock()

	if err := s.logger.LogTime(ctx, lifeContext, minutes); err != nil {
		config.Logger.Error("Failed to log time:", err)
	}
	if s.onDismiss != nil {
		s.onDismiss(ctx)
	}
	return minutes, nil
}

// elapsedMinutes is called with the lock held.
func (s *Scheduler) elapsedMinutes(now time.Time) int {
	if s.lastDismissal.IsZero() {
		return int(s.interval / time.Minute)
	}
	minutes := int(now.Sub(s.lastDismissal).Round(time.Minute) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
