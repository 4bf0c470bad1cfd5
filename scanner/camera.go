package scanner

import (
	"context"
	"errors"
	"image"
	"strings"
	"sync"
	"time"
)

// Camera device failure categories. Implementations of DeviceOpener wrap
// driver errors into one of these so the UI can show a distinct message per
// category.
var (
	ErrPermissionDenied = errors.New("camera permission denied")
	ErrDeviceNotFound   = errors.New("no camera device found")
	ErrDeviceInUse      = errors.New("camera is in use by another application")
	ErrOverconstrained  = errors.New("camera constraints cannot be satisfied")
)

// Facing selects a logical camera orientation when no explicit device ID is
// known (tablets usually expose one of each).
type Facing string

const (
	FacingBack  Facing = "back"
	FacingFront Facing = "front"
)

// DeviceConstraints narrows which camera to open and at what resolution.
// The zero value requests any available camera.
type DeviceConstraints struct {
	Facing   Facing
	DeviceID string
	Width    int
	Height   int
}

// DeviceInfo describes an enumerated video input device.
type DeviceInfo struct {
	ID    string
	Label string
}

// FrameSource supplies video frames from an open camera stream. Frame may
// return a nil image with no error when no new frame is ready yet.
type FrameSource interface {
	Frame() (image.Image, error)
	Close() error
}

// DeviceOpener acquires camera streams. Enumerate is only reliable after a
// stream has been opened at least once, since drivers hide device labels
// until a capture session exists.
type DeviceOpener interface {
	Open(c DeviceConstraints) (FrameSource, error)
	Enumerate() ([]DeviceInfo, error)
}

// Decoder extracts a code payload from a single frame. A decode miss is
// reported as an error and is expected to happen on most frames.
type Decoder interface {
	Decode(img image.Image) (string, error)
}

const (
	// DefaultCooldown suppresses re-emission of the same decoded value
	// while the label stays in frame.
	DefaultCooldown = 3 * time.Second
	// DefaultFrameInterval approximates a 30fps sampling cadence.
	DefaultFrameInterval = 33 * time.Millisecond
)

// CameraConfig tunes a CameraScanner. Zero fields take defaults.
type CameraConfig struct {
	Cooldown      time.Duration
	FrameInterval time.Duration
}

// CameraScanner runs a cooperative decode loop over a camera stream: one
// frame is sampled and decoded per iteration, and each distinct decoded
// value is emitted at most once per cooldown window. Stop is idempotent and
// releases the stream.
type CameraScanner struct {
	opener   DeviceOpener
	decoder  Decoder
	onScan   func(string)
	cooldown time.Duration
	interval time.Duration
	now      func() time.Time

	mu        sync.Mutex
	src       FrameSource
	cancel    context.CancelFunc
	lastValue string
	lastTime  time.Time
}

// NewCameraScanner creates a scanner that calls onScan with every deduped
// decoded value.
func NewCameraScanner(opener DeviceOpener, decoder Decoder, cfg CameraConfig, onScan func(string)) *CameraScanner {
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultCooldown
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = DefaultFrameInterval
	}
	return &CameraScanner{
		opener:   opener,
		decoder:  decoder,
		onScan:   onScan,
		cooldown: cfg.Cooldown,
		interval: cfg.FrameInterval,
		now:      time.Now,
	}
}

// Start opens the camera described by the constraints and begins the decode
// loop. An already-running scanner is stopped first, so camera reselection
// is a plain Start with new constraints. An overconstrained request falls
// back to a generic open before giving up.
func (s *CameraScanner) Start(c DeviceConstraints) error {
	s.Stop()

	src, err := s.opener.Open(c)
	if err != nil && errors.Is(err, ErrOverconstrained) {
		src, err = s.opener.Open(DeviceConstraints{})
	}
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	s.src = src
	s.cancel = cancel
	s.lastValue = ""
	s.lastTime = time.Time{}
	s.mu.Unlock()

	go s.loop(ctx, src)
	return nil
}

// Running reports whether a decode loop is active.
func (s *CameraScanner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Devices lists the available video inputs. Call after a successful Start.
func (s *CameraScanner) Devices() ([]DeviceInfo, error) {
	return s.opener.Enumerate()
}

// Stop cancels the decode loop and releases the camera stream. Safe to call
// multiple times and with no active stream.
func (s *CameraScanner) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	src := s.src
	s.cancel = nil
	s.src = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if src != nil {
		src.Close()
	}
}

// loop samples one frame per tick until cancelled. Each iteration finishes
// by yielding back to the ticker, never by busy-looping.
func (s *CameraScanner) loop(ctx context.Context, src FrameSource) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.step(src)
		}
	}
}

// step runs a single sample-decode-emit iteration. Frame and decode misses
// are routine and silently skip to the next iteration.
func (s *CameraScanner) step(src FrameSource) {
	img, err := src.Frame()
	if err != nil || img == nil {
		return
	}

	text, err := s.decoder.Decode(img)
	if err != nil {
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	s.mu.Lock()
	now := s.now()
	emit := text != s.lastValue || now.Sub(s.lastTime) >= s.cooldown
	if emit {
		s.lastValue = text
		s.lastTime = now
	}
	s.mu.Unlock()

	if emit {
		s.onScan(text)
	}
}
