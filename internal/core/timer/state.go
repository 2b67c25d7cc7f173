package timer

// Session identifies which interval type is active.
type Session string

const (
	SessionWork  Session = "work"
	SessionBreak Session = "break"
)

// Status represents the lifecycle phase of the timer.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
)

// Direction selects whether a duration adjustment grows or shrinks.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// Durations are whole seconds.
const (
	DefaultWorkDuration  = 25 * 60
	DefaultBreakDuration = 5 * 60
	MinDuration          = 60
	DurationStep         = 60
)

// State is the complete timer state.
type State struct {
	WorkDuration   int
	BreakDuration  int
	CurrentTime    int
	CurrentSession Session
	TimerStatus    Status
}

// NewState returns an idle work state for the given durations.
// Durations under MinDuration are raised to MinDuration.
func NewState(workDuration, breakDuration int) State {
	workDuration = clampDuration(workDuration)
	return State{
		WorkDuration:   workDuration,
		BreakDuration:  clampDuration(breakDuration),
		CurrentTime:    workDuration,
		CurrentSession: SessionWork,
		TimerStatus:    StatusIdle,
	}
}

// DefaultState returns the initial 25/5 state.
func DefaultState() State {
	return NewState(DefaultWorkDuration, DefaultBreakDuration)
}

// Running reports whether the countdown is active.
func (state State) Running() bool {
	return state.TimerStatus == StatusRunning
}

// DurationFor returns the configured duration of session.
func (state State) DurationFor(session Session) int {
	if session == SessionBreak {
		return state.BreakDuration
	}
	return state.WorkDuration
}

// Next returns the session that follows session.
func (session Session) Next() Session {
	if session == SessionWork {
		return SessionBreak
	}
	return SessionWork
}

// Valid reports whether session is a known value.
func (session Session) Valid() bool {
	return session == SessionWork || session == SessionBreak
}

func clampDuration(seconds int) int {
	if seconds < MinDuration {
		return MinDuration
	}
	return seconds
}
