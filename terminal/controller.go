package terminal

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"qc-reception/codes"
)

// State is the workflow position of the terminal
type State string

const (
	// AwaitingBox means the next scan must be a box label
	AwaitingBox State = "awaiting_box"
	// AwaitingPairs means pairs are being counted into the current box
	AwaitingPairs State = "awaiting_pairs"
	// Complete means the current box holds all its pairs; the terminal
	// returns to AwaitingBox after a short pause
	Complete State = "complete"
)

// ScanSource values for journaled scans
const (
	SourceKeyboard = "keyboard"
	SourceCamera   = "camera"
)

// ScanEvent is one logical scan delivered by an input device
type ScanEvent struct {
	RawText   string
	Source    string
	Timestamp time.Time
}

// View is the terminal state pushed to the display on every change
type View struct {
	State   State
	Box     *BoxSnapshot
	Message string
	Err     string
}

// DefaultAutoReturn is how long a completed box stays on screen before
// the terminal returns to awaiting the next box label.
const DefaultAutoReturn = 2 * time.Second

// Controller is the terminal's workflow state machine. Scans are handled
// one at a time; a scan arriving while another is in flight is dropped
// after its receipt beep.
type Controller struct {
	svc        ReceptionService
	sounder    Sounder
	recorder   Recorder
	autoReturn time.Duration
	onChange   func(View)

	mu    sync.Mutex
	state State
	box   *BoxSnapshot
	busy  bool
	timer *time.Timer
}

// ControllerConfig wires a Controller. Recorder and OnChange may be nil.
type ControllerConfig struct {
	Service    ReceptionService
	Sounder    Sounder
	Recorder   Recorder
	AutoReturn time.Duration
	OnChange   func(View)
}

// NewController creates a controller in the AwaitingBox state
func NewController(cfg ControllerConfig) *Controller {
	if cfg.AutoReturn <= 0 {
		cfg.AutoReturn = DefaultAutoReturn
	}
	return &Controller{
		svc:        cfg.Service,
		sounder:    cfg.Sounder,
		recorder:   cfg.Recorder,
		autoReturn: cfg.AutoReturn,
		onChange:   cfg.OnChange,
		state:      AwaitingBox,
	}
}

// View returns the current terminal state
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() View {
	return View{State: c.state, Box: c.box}
}

// HandleScan processes one scan event through the workflow. It blocks for
// the duration of the backend call, so input devices should deliver scans
// from their own goroutine.
func (c *Controller) HandleScan(ctx context.Context, ev ScanEvent) {
	c.sounder.Beep()

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return
	}
	c.busy = true
	state := c.state
	box := c.box
	c.mu.Unlock()

	if c.recorder != nil {
		// Journal failures must never hold up scanning.
		_ = c.recorder.RecordScan(ev.Source, ev.RawText, ev.Timestamp)
	}

	var view View
	_, parseErr := codes.ParseBoxCode(ev.RawText)
	switch {
	case parseErr == nil:
		// A box label restarts the workflow from any state.
		view = c.scanBox(ctx, ev.RawText)
	case state == AwaitingPairs && box != nil:
		view = c.scanPair(ctx, box.BoxID, ev.RawText)
	case state == AwaitingBox:
		c.sounder.Error()
		view = c.fail("Scan a box label to start")
	default:
		c.sounder.Error()
		view = c.fail("Box complete, scan the next box label")
	}

	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()

	c.publish(view)
}

// scanBox opens or resumes a box on the backend
func (c *Controller) scanBox(ctx context.Context, rawCode string) View {
	result, err := c.svc.ScanBox(ctx, rawCode)
	if err != nil {
		c.sounder.Error()
		return c.fail(errorMessage(err))
	}

	// A label whose box already holds all its pairs is a warning only:
	// the terminal stays exactly where it was.
	if result.Box.Complete {
		c.sounder.Error()
		return c.fail("Box already complete, scan another box")
	}

	c.mu.Lock()
	c.stopTimerLocked()
	c.box = &result.Box
	c.state = AwaitingPairs
	view := c.viewLocked()
	c.mu.Unlock()

	c.sounder.Success()
	if result.Resumed {
		view.Message = fmt.Sprintf("Box resumed, %d pairs remaining", result.Box.Remaining())
	} else {
		view.Message = fmt.Sprintf("Box opened, %d pairs expected", result.Box.ExpectedPairs)
	}
	return view
}

// scanPair registers one pair on the backend
func (c *Controller) scanPair(ctx context.Context, boxID, rawCode string) View {
	result, err := c.svc.ScanPair(ctx, boxID, codes.NormalizePairCode(rawCode))
	if err != nil {
		c.sounder.Error()
		return c.fail(errorMessage(err))
	}

	c.mu.Lock()
	c.box = &result.Box
	if result.Box.Complete {
		c.state = Complete
	}
	view := c.viewLocked()
	c.mu.Unlock()

	if result.Box.Complete {
		c.sounder.Completion()
		view.Message = "Box complete"
		c.scheduleReturn()
	} else {
		c.sounder.Success()
		view.Message = fmt.Sprintf("Pair registered, %d remaining", result.Box.Remaining())
	}
	return view
}

// NextBox returns the terminal to AwaitingBox, dropping the current box
// view. The box itself stays open on the server and can be resumed.
func (c *Controller) NextBox() {
	c.mu.Lock()
	c.stopTimerLocked()
	c.state = AwaitingBox
	c.box = nil
	view := c.viewLocked()
	c.mu.Unlock()

	c.publish(view)
}

// Abandon is NextBox under its workflow name: the operator walks away
// from an incomplete box.
func (c *Controller) Abandon() {
	c.NextBox()
}

// scheduleReturn arms the auto-return to AwaitingBox after a completed box
func (c *Controller) scheduleReturn() {
	c.mu.Lock()
	c.stopTimerLocked()
	c.timer = time.AfterFunc(c.autoReturn, c.NextBox)
	c.mu.Unlock()
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) fail(message string) View {
	c.mu.Lock()
	view := c.viewLocked()
	c.mu.Unlock()
	view.Err = message
	return view
}

func (c *Controller) publish(view View) {
	if c.onChange != nil {
		c.onChange(view)
	}
}

func errorMessage(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}
