package reminder

import (
	"context"
	"sync"
	"testing"
	"time"

	"lifeos/dashboard/notify"
)

type loggedEntry struct {
	context string
	minutes int
}

type fakeLogger struct {
	mu      sync.Mutex
	entries []loggedEntry
	err     error
}

func (f *fakeLogger) LogTime(_ context.Context, lifeContext string, minutes int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, loggedEntry{context: lifeContext, minutes: minutes})
	return f.err
}

type fakeHub struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeHub) Broadcast(eventType string, _ any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, eventType)
}

func (f *fakeHub) has(eventType string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.events {
		if e == eventType {
			return true
		}
	}
	return false
}

func testScheduler(t *testing.T, perms *notify.Permissions) (*Scheduler, *fakeLogger, *fakeHub, *time.Time) {
	t.Helper()
	logger := &fakeLogger{}
	hub := &fakeHub{}
	if perms == nil {
		perms = notify.NewPermissions()
	}
	s := NewScheduler(15*time.Minute, logger, hub, perms, nil)
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.Local)
	s.now = func() time.Time { return now }
	t.Cleanup(s.Stop)
	return s, logger, hub, &now
}

func TestDismiss_FirstLogsExactlyOneInterval(t *testing.T) {
	s, logger, _, _ := testScheduler(t, nil)

	s.fire()
	prompt, open := s.CurrentPrompt()
	if !open {
		t.Fatal("fire did not open a prompt")
	}

	minutes, err := s.Dismiss(context.Background(), prompt.Token, "phd")
	if err != nil {
		t.Fatalf("Dismiss failed: %v", err)
	}
	if minutes != 15 {
		t.Errorf("first dismissal logged %d minutes, want the 15-minute interval", minutes)
	}
	if len(logger.entries) != 1 || logger.entries[0].context != "phd" || logger.entries[0].minutes != 15 {
		t.Errorf("logged entries = %+v", logger.entries)
	}
	if s.State() != StateIdle {
		t.Errorf("state after dismissal = %q, want idle", s.State())
	}
}

func TestDismiss_ElapsedMeasuredFromLastDismissal(t *testing.T) {
	s, logger, _, now := testScheduler(t, nil)

	s.fire()
	prompt, _ := s.CurrentPrompt()
	if _, err := s.Dismiss(context.Background(), prompt.Token, "phd"); err != nil {
		t.Fatalf("first dismissal failed: %v", err)
	}

	// The user answers the next prompt 22 minutes later.
	*now = now.Add(22 * time.Minute)
	s.fire()
	prompt, _ = s.CurrentPrompt()
	minutes, err := s.Dismiss(context.Background(), prompt.Token, "avl")
	if err != nil {
		t.Fatalf("second dismissal failed: %v", err)
	}
	if minutes != 22 {
		t.Errorf("logged %d minutes, want 22 since last dismissal", minutes)
	}
	if logger.entries[1].context != "avl" {
		t.Errorf("second entry = %+v", logger.entries[1])
	}
}

func TestDismiss_MinimumOneMinute(t *testing.T) {
	s, _, _, now := testScheduler(t, nil)

	s.fire()
	prompt, _ := s.CurrentPrompt()
	s.Dismiss(context.Background(), prompt.Token, "phd")

	*now = now.Add(10 * time.Second)
	s.fire()
	prompt, _ = s.CurrentPrompt()
	minutes, err := s.Dismiss(context.Background(), prompt.Token, "phd")
	if err != nil {
		t.Fatalf("Dismiss failed: %v", err)
	}
	if minutes != 1 {
		t.Errorf("logged %d minutes, want the 1-minute floor", minutes)
	}
}

func TestDismiss_RejectsStaleToken(t *testing.T) {
	s, logger, _, _ := testScheduler(t, nil)

	if _, err := s.Dismiss(context.Background(), "any", "phd"); err == nil {
		t.Error("dismissal with no open prompt should fail")
	}

	s.fire()
	if _, err := s.Dismiss(context.Background(), "wrong-token", "phd"); err == nil {
		t.Error("dismissal with a stale token should fail")
	}
	if len(logger.entries) != 0 {
		t.Errorf("rejected dismissals must not log time: %+v", logger.entries)
	}
	if s.State() != StatePrompting {
		t.Errorf("rejected dismissal closed the prompt")
	}
}

func TestFire_WhilePromptingDoesNotReplacePrompt(t *testing.T) {
	s, _, hub, _ := testScheduler(t, nil)

	s.fire()
	first, _ := s.CurrentPrompt()
	s.fire()
	second, _ := s.CurrentPrompt()

	if first.Token != second.Token {
		t.Error("a second fire while prompting must not mint a new prompt")
	}
	if !hub.has(notify.EventTimeCheck) {
		t.Error("time-check event not broadcast")
	}
}

func TestFire_PermissionPolicy(t *testing.T) {
	t.Run("undetermined asks once", func(t *testing.T) {
		s, _, hub, _ := testScheduler(t, nil)
		s.fire()
		if !hub.has(notify.EventRequestPermission) {
			t.Error("undetermined permission should trigger a request")
		}
		if hub.has(notify.EventNotification) {
			t.Error("no notification while permission is undetermined")
		}

		// Next prompt: still undetermined, but already asked.
		prompt, _ := s.CurrentPrompt()
		s.Dismiss(context.Background(), prompt.Token, "phd")
		hub.events = nil
		s.fire()
		if hub.has(notify.EventRequestPermission) {
			t.Error("permission request must be one-time")
		}
	})

	t.Run("granted notifies", func(t *testing.T) {
		perms := notify.NewPermissions()
		perms.Report("granted")
		s, _, hub, _ := testScheduler(t, perms)
		s.fire()
		if !hub.has(notify.EventNotification) {
			t.Error("granted permission should trigger a notification")
		}
	})

	t.Run("denied stays silent", func(t *testing.T) {
		perms := notify.NewPermissions()
		perms.Report("denied")
		s, _, hub, _ := testScheduler(t, perms)
		s.fire()
		if hub.has(notify.EventNotification) || hub.has(notify.EventRequestPermission) {
			t.Error("denied permission must suppress both notification and request")
		}
	})
}

func TestDismiss_ClosesEvenWhenLogTimeFails(t *testing.T) {
	s, logger, _, _ := testScheduler(t, nil)
	logger.err = context.DeadlineExceeded

	s.fire()
	prompt, _ := s.CurrentPrompt()
	if _, err := s.Dismiss(context.Background(), prompt.Token, "phd"); err != nil {
		t.Fatalf("Dismiss surfaced a backend failure: %v", err)
	}
	if s.State() != StateIdle {
		t.Error("prompt must close even when the time log fails")
	}
}
