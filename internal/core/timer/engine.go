package timer

// Transition describes the effect of a single engine operation.
type Transition struct {
	From    State
	To      State
	Expired bool
}

// Changed reports whether the operation mutated the state.
func (transition Transition) Changed() bool {
	return transition.From != transition.To
}

// Engine is the Pomodoro state machine. It performs no I/O and never
// schedules anything; callers drive it with commands and ticks.
// Engine is not safe for concurrent use.
type Engine struct {
	state State
}

// New creates an engine that owns state.
func New(state State) *Engine {
	state.WorkDuration = clampDuration(state.WorkDuration)
	state.BreakDuration = clampDuration(state.BreakDuration)
	if state.CurrentTime < 0 {
		state.CurrentTime = 0
	}
	if !state.CurrentSession.Valid() {
		state.CurrentSession = SessionWork
	}
	switch state.TimerStatus {
	case StatusIdle, StatusRunning, StatusPaused:
	default:
		state.TimerStatus = StatusIdle
	}
	return &Engine{state: state}
}

// State returns a copy of the current state.
func (engine *Engine) State() State {
	return engine.state
}

// Start begins or resumes the countdown. Starting a running timer is a no-op.
func (engine *Engine) Start() Transition {
	from := engine.state
	if engine.state.TimerStatus != StatusRunning {
		engine.state.TimerStatus = StatusRunning
	}
	return Transition{From: from, To: engine.state}
}

// Pause freezes a running countdown.
func (engine *Engine) Pause() Transition {
	from := engine.state
	if engine.state.TimerStatus == StatusRunning {
		engine.state.TimerStatus = StatusPaused
	}
	return Transition{From: from, To: engine.state}
}

// Reset returns to an idle work interval. Configured durations are kept.
func (engine *Engine) Reset() Transition {
	from := engine.state
	engine.state.TimerStatus = StatusIdle
	engine.state.CurrentSession = SessionWork
	engine.state.CurrentTime = engine.state.WorkDuration
	return Transition{From: from, To: engine.state}
}

// Tick applies one elapsed second. Ticks outside the running status are
// ignored. The tick that brings the countdown to zero also performs the
// session switch, so expiry happens exactly once per interval.
func (engine *Engine) Tick() Transition {
	from := engine.state
	if engine.state.TimerStatus != StatusRunning {
		return Transition{From: from, To: engine.state}
	}
	if engine.state.CurrentTime > 0 {
		engine.state.CurrentTime--
		if engine.state.CurrentTime > 0 {
			return Transition{From: from, To: engine.state}
		}
	}
	engine.switchSession()
	return Transition{From: from, To: engine.state, Expired: true}
}

// Expire switches to the next session when the running countdown is at zero.
// In any other state it does nothing.
func (engine *Engine) Expire() Transition {
	from := engine.state
	if engine.state.TimerStatus != StatusRunning || engine.state.CurrentTime != 0 {
		return Transition{From: from, To: engine.state}
	}
	engine.switchSession()
	return Transition{From: from, To: engine.state, Expired: true}
}

// AdjustDuration moves the configured duration of session by one step,
// never below MinDuration. When session is the active one the remaining
// time is overwritten with the new duration, even mid-countdown.
func (engine *Engine) AdjustDuration(session Session, direction Direction) Transition {
	from := engine.state
	var delta int
	switch direction {
	case DirectionIncrease:
		delta = DurationStep
	case DirectionDecrease:
		delta = -DurationStep
	default:
		return Transition{From: from, To: engine.state}
	}

	var updated int
	switch session {
	case SessionWork:
		updated = clampDuration(engine.state.WorkDuration + delta)
		engine.state.WorkDuration = updated
	case SessionBreak:
		updated = clampDuration(engine.state.BreakDuration + delta)
		engine.state.BreakDuration = updated
	default:
		return Transition{From: from, To: engine.state}
	}

	if session == engine.state.CurrentSession {
		engine.state.CurrentTime = updated
	}
	return Transition{From: from, To: engine.state}
}

// switchSession toggles the session and loads its full duration. The
// status stays running so the next interval counts down on its own.
func (engine *Engine) switchSession() {
	next := engine.state.CurrentSession.Next()
	engine.state.CurrentSession = next
	engine.state.CurrentTime = engine.state.DurationFor(next)
}
