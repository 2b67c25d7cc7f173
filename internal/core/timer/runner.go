package timer

import (
	"log/slog"
	"sync"
	"time"
)

// Options contains runtime settings for Runner.
type Options struct {
	TickInterval time.Duration
	Logger       *slog.Logger
	Now          func() time.Time
}

// Runner drives an Engine from the clock. It keeps at most one tick
// scheduled, re-arms it only after the previous tick was applied while the
// timer is still running, and cancels it whenever the timer leaves the
// running status.
type Runner struct {
	mu         sync.Mutex
	engine     *Engine
	scheduler  Scheduler
	options    Options
	pending    Handle
	generation uint64
	events     []chan Event
	closed     bool
}

// NewRunner creates a Runner around engine.
func NewRunner(engine *Engine, scheduler Scheduler, options Options) *Runner {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if scheduler == nil {
		scheduler = RealScheduler{}
	}
	return &Runner{
		engine:    engine,
		scheduler: scheduler,
		options:   options,
	}
}

// State returns a snapshot of the timer state.
func (runner *Runner) State() State {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	return runner.engine.State()
}

// Subscribe registers a new observer channel. Slow observers miss events
// rather than block the timer.
func (runner *Runner) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if runner.closed {
		close(ch)
		return ch
	}
	runner.events = append(runner.events, ch)
	return ch
}

// Start begins or resumes the countdown.
func (runner *Runner) Start() State {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if runner.closed {
		return runner.engine.State()
	}
	return runner.startLocked()
}

// Pause freezes the countdown and cancels the pending tick.
func (runner *Runner) Pause() State {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if runner.closed {
		return runner.engine.State()
	}
	return runner.pauseLocked()
}

// Toggle pauses a running timer and starts any other.
func (runner *Runner) Toggle() State {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if runner.closed {
		return runner.engine.State()
	}
	if runner.engine.State().Running() {
		return runner.pauseLocked()
	}
	return runner.startLocked()
}

// Reset cancels the pending tick and returns to an idle work interval.
func (runner *Runner) Reset() State {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if runner.closed {
		return runner.engine.State()
	}

	runner.cancelLocked()
	transition := runner.engine.Reset()
	runner.options.Logger.Debug("timer reset", "work", transition.To.WorkDuration)
	runner.emitLocked(EventStateChange, transition.To)
	return transition.To
}

// AdjustDuration changes the configured length of session by one step.
func (runner *Runner) AdjustDuration(session Session, direction Direction) State {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if runner.closed {
		return runner.engine.State()
	}

	transition := runner.engine.AdjustDuration(session, direction)
	if transition.Changed() {
		runner.options.Logger.Debug("duration adjusted",
			"session", session,
			"direction", direction,
			"work", transition.To.WorkDuration,
			"break", transition.To.BreakDuration)
		runner.emitLocked(EventDurationChange, transition.To)
	}
	return transition.To
}

// Close cancels the pending tick and closes all observers.
func (runner *Runner) Close() {
	runner.mu.Lock()
	if runner.closed {
		runner.mu.Unlock()
		return
	}
	runner.closed = true
	runner.cancelLocked()
	events := runner.events
	runner.events = nil
	runner.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (runner *Runner) startLocked() State {
	transition := runner.engine.Start()
	if transition.Changed() {
		runner.options.Logger.Debug("timer started",
			"session", transition.To.CurrentSession,
			"remaining", transition.To.CurrentTime)
		runner.emitLocked(EventStateChange, transition.To)
	}
	runner.armLocked()
	return transition.To
}

func (runner *Runner) pauseLocked() State {
	transition := runner.engine.Pause()
	if !transition.To.Running() {
		runner.cancelLocked()
	}
	if transition.Changed() {
		runner.options.Logger.Debug("timer paused", "remaining", transition.To.CurrentTime)
		runner.emitLocked(EventStateChange, transition.To)
	}
	return transition.To
}

func (runner *Runner) fire(generation uint64) {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if runner.closed || generation != runner.generation {
		return
	}
	runner.pending = nil
	if !runner.engine.State().Running() {
		return
	}

	transition := runner.engine.Tick()
	if transition.Expired {
		runner.options.Logger.Info("interval expired",
			"from", transition.From.CurrentSession,
			"to", transition.To.CurrentSession,
			"remaining", transition.To.CurrentTime)
		runner.emitLocked(EventExpired, transition.To)
	} else if transition.Changed() {
		runner.emitLocked(EventTick, transition.To)
	}
	runner.armLocked()
}

func (runner *Runner) armLocked() {
	if runner.pending != nil || !runner.engine.State().Running() {
		return
	}
	runner.generation++
	generation := runner.generation
	runner.pending = runner.scheduler.AfterFunc(runner.options.TickInterval, func() {
		runner.fire(generation)
	})
}

// cancelLocked stops the pending tick. Bumping the generation turns a
// callback that already started into a no-op.
func (runner *Runner) cancelLocked() {
	if runner.pending != nil {
		runner.pending.Stop()
		runner.pending = nil
	}
	runner.generation++
}

func (runner *Runner) emitLocked(eventType EventType, state State) {
	event := Event{
		Type:  eventType,
		State: state,
		At:    runner.options.Now(),
	}
	for _, ch := range runner.events {
		select {
		case ch <- event:
		default:
		}
	}
}
