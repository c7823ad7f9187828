package notify

import (
	"fmt"
	"sync"
)

// PermissionState mirrors the browser's Notification.permission values.
type PermissionState string

const (
	PermissionUndetermined PermissionState = "default"
	PermissionGranted      PermissionState = "granted"
	PermissionDenied       PermissionState = "denied"
)

// Permissions is the server-side record of the page's notification
// permission. Denied is terminal: once reported, the dashboard never asks
// again, even across undetermined reports from a fresh page load.
type Permissions struct {
	mu     sync.Mutex
	state  PermissionState
	denied bool
	asked  bool
}

func NewPermissions() *Permissions {
	return &Permissions{state: PermissionUndetermined}
}

// Report records the state the page observed.
func (p *Permissions) Report(raw string) error {
	state := PermissionState(raw)
	switch state {
	case PermissionUndetermined, PermissionGranted, PermissionDenied:
	default:
		return fmt.Errorf("unknown permission state %q", raw)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if state == PermissionDenied {
		p.denied = true
	}
	if p.denied {
		p.state = PermissionDenied
		return nil
	}
	p.state = state
	return nil
}

// ShouldNotify reports whether a prompt may carry a browser notification.
func (p *Permissions) ShouldNotify() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == PermissionGranted
}

// ShouldAsk reports whether a permission request may be emitted. True at
// most once, and only while the state is still undetermined.
func (p *Permissions) ShouldAsk() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != PermissionUndetermined || p.asked {
		return false
	}
	p.asked = true
	return true
}

// State returns the current permission state.
func (p *Permissions) State() PermissionState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}
