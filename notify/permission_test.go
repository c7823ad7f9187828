package notify

import "testing"

func TestPermissions_DeniedIsTerminal(t *testing.T) {
	p := NewPermissions()
	if err := p.Report("denied"); err != nil {
		t.Fatalf("Report(denied) failed: %v", err)
	}

	// A fresh page load reports "default" again; the denial must stick.
	if err := p.Report("default"); err != nil {
		t.Fatalf("Report(default) failed: %v", err)
	}
	if p.State() != PermissionDenied {
		t.Errorf("state = %q, want denied to be terminal", p.State())
	}
	if p.ShouldNotify() || p.ShouldAsk() {
		t.Error("denied permission must never notify or re-ask")
	}
}

func TestPermissions_AskOnce(t *testing.T) {
	p := NewPermissions()
	if !p.ShouldAsk() {
		t.Error("first ask while undetermined should be allowed")
	}
	if p.ShouldAsk() {
		t.Error("second ask must be suppressed")
	}
}

func TestPermissions_Granted(t *testing.T) {
	p := NewPermissions()
	if p.ShouldNotify() {
		t.Error("undetermined permission must not notify")
	}
	if err := p.Report("granted"); err != nil {
		t.Fatalf("Report(granted) failed: %v", err)
	}
	if !p.ShouldNotify() {
		t.Error("granted permission should notify")
	}
	if p.ShouldAsk() {
		t.Error("granted permission should not ask")
	}
}

func TestPermissions_RejectsUnknownState(t *testing.T) {
	p := NewPermissions()
	if err := p.Report("maybe"); err == nil {
		t.Error("unknown permission state should be rejected")
	}
}
