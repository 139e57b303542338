// Package touch polls a Trill sensor and delivers touch frames over a
// channel. It adapts the single-owner, blocking driver API to consumers that
// want a stream: the poller owns the device while running and must be its
// only user.
package touch

import (
	"context"
	"errors"
	"time"

	"touchcode-go/drivers/trill"
	"touchcode-go/errcode"
)

// Frame is one full touch snapshot. Horizontal is empty for one-axis models.
type Frame struct {
	Vertical   []trill.Touch
	Horizontal []trill.Touch
	TsMs       int64
}

// Result carries either a frame or a classified error.
type Result struct {
	Frame Frame
	Err   error
	Code  errcode.Code
}

type Config struct {
	// Interval between reads. Default 20 ms.
	Interval time.Duration
	// ResultsQueueSz sizes the delivery channel. Default 16.
	ResultsQueueSz int
}

// Poller drives periodic centroid reads against one device.
type Poller struct {
	dev  *trill.Device
	cfg  Config
	sink chan Result
}

func NewPoller(dev *trill.Device, cfg Config) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = 20 * time.Millisecond
	}
	if cfg.ResultsQueueSz <= 0 {
		cfg.ResultsQueueSz = 16
	}
	return &Poller{dev: dev, cfg: cfg, sink: make(chan Result, cfg.ResultsQueueSz)}
}

// Results returns the delivery channel. Frames reference the slices produced
// by the last read; the driver replaces rather than reuses them, so a Frame
// stays valid after later reads.
func (p *Poller) Results() <-chan Result { return p.sink }

// Start launches the poll loop. It returns immediately; the loop stops when
// ctx is cancelled.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		tick := time.NewTicker(p.cfg.Interval)
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-tick.C:
				p.emit(p.poll())
			}
		}
	}()
}

func (p *Poller) poll() Result {
	if err := p.dev.Read(); err != nil {
		return Result{Err: err, Code: CodeFor(err)}
	}
	return Result{
		Frame: Frame{
			Vertical:   p.dev.VerticalTouches(),
			Horizontal: p.dev.HorizontalTouches(),
			TsMs:       time.Now().UnixMilli(),
		},
		Code: errcode.OK,
	}
}

// emit drops the result when the consumer lags. Frames are full-state
// snapshots, so the latest one is the only one that matters.
func (p *Poller) emit(r Result) {
	select {
	case p.sink <- r:
	default:
	}
}

// CodeFor classifies a driver error as a stable consumer-facing code.
func CodeFor(err error) errcode.Code {
	switch {
	case err == nil:
		return errcode.OK
	case errors.Is(err, trill.ErrNotCentroid):
		return errcode.ModePrecondition
	case errors.Is(err, trill.ErrTypeMismatch):
		return errcode.TypeMismatch
	case errors.Is(err, trill.ErrInvalidAddress):
		return errcode.InvalidAddress
	default:
		return errcode.Transport
	}
}
