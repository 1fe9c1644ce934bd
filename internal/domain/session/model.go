package session

import "time"

// Action labels what the next toggle on a project will do.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// Session is one tracked interval for a project. A nil End means the
// session is open (tracking is running). Start is set at creation and
// never mutated afterwards.
type Session struct {
	ID          int64      `json:"id"`
	ProjectName string     `json:"project_name"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end,omitempty"`
}

// Open reports whether the session is currently running.
func (s *Session) Open() bool {
	return s != nil && s.End == nil
}

// NextAction derives the toggle label from a project's latest session.
// It is a pure function of the latest session's End field and must be
// recomputed on every render, never cached. A nil latest means the
// project has never been tracked.
func NextAction(latest *Session) string {
	if latest.Open() {
		return ActionEnd
	}
	return ActionStart
}
