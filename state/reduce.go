package state

import "lifeos/dashboard/types"

// Action is a state transition request. Reduce is the only place state
// changes shape.
type Action interface{ isAction() }

type SwitchTab struct{ Tab Tab }

type SetContextFilter struct{ Context string }

type SetTaskView struct{ View string }

type SetV2GView struct{ View string }

// BeginTaskLoad bumps the task generation; the caller reads the new value
// from the returned state and tags the eventual TasksLoaded with it.
type BeginTaskLoad struct{}

type BeginRequestLoad struct{}

type BeginAnalyticsLoad struct{}

type TasksLoaded struct {
	Gen     uint64
	Payload types.TasksPayload
}

type RequestsLoaded struct {
	Gen     uint64
	Payload types.RequestsPayload
}

type AnalyticsLoaded struct {
	Gen       uint64
	Analytics types.TimeAnalytics
}

func (SwitchTab) isAction()          {}
func (SetContextFilter) isAction()   {}
func (SetTaskView) isAction()        {}
func (SetV2GView) isAction()         {}
func (BeginTaskLoad) isAction()      {}
func (BeginRequestLoad) isAction()   {}
func (BeginAnalyticsLoad) isAction() {}
func (TasksLoaded) isAction()        {}
func (RequestsLoaded) isAction()     {}
func (AnalyticsLoaded) isAction()    {}

// Reduce applies one action to the state. Pure: no clock, no I/O, no
// mutation of the input. Stale loads (generation mismatch) are no-ops, so
// a late-arriving response for a superseded view never overwrites the
// snapshot.
func Reduce(s AppState, a Action) AppState {
	switch act := a.(type) {
	case SwitchTab:
		s.ActiveTab = act.Tab

	case SetContextFilter:
		s.ContextFilter = act.Context

	case SetTaskView:
		s.TaskView = act.View

	case SetV2GView:
		s.V2GView = act.View

	case BeginTaskLoad:
		s.TaskGen++

	case BeginRequestLoad:
		s.RequestGen++

	case BeginAnalyticsLoad:
		s.AnalyticsGen++

	case TasksLoaded:
		if act.Gen != s.TaskGen {
			return s
		}
		s.Tasks = act.Payload.Tasks
		s.TaskStats = act.Payload.Stats
		s.NextAction = act.Payload.NextAction
		if act.Payload.TimeAnalytics != nil {
			s.Analytics = *act.Payload.TimeAnalytics
			s.HasAnalytics = true
		}

	case RequestsLoaded:
		if act.Gen != s.RequestGen {
			return s
		}
		s.Requests = act.Payload.Requests
		s.V2GStats = act.Payload.Stats

	case AnalyticsLoaded:
		if act.Gen != s.AnalyticsGen {
			return s
		}
		s.Analytics = act.Analytics
		s.HasAnalytics = true
	}
	return s
}
