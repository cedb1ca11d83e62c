package memtag

import "fmt"

// Controller owns the process-wide tag control state: the tag check fault
// mode and the included-tags mask. It is the only component that changes
// that state, and it does so only when asked to.
//
// The state is global to the process. On the native platform a change is
// applied to every OS thread, except in binaries built with cgo: there the
// kernel interface only reaches the calling thread, so goroutines scheduled
// on other threads keep the old mode. Such programs should lock the calling
// goroutine to its thread (runtime.LockOSThread) around tagged work.
//
// Changing the state while other goroutines
// perform tagged accesses can turn an intended fault into a silent pass or
// the reverse; callers must quiesce those goroutines first. Controller does
// no locking of its own.
type Controller struct {
	platform Platform
	mode     Mode
	included TagMask
	logger   *Logger
	metrics  MetricsCollector
}

// NewController reads the current state of p and returns a Controller that
// starts from it. It fails with ErrUnsupported if p cannot report its state.
func NewController(p Platform, optFns ...Option) (*Controller, error) {
	mode, included, err := p.TagControl()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupported, err)
	}

	o := applyOptions(optFns)

	return &Controller{
		platform: p,
		mode:     mode,
		included: included,
		logger:   o.logger,
		metrics:  o.metricsCollector,
	}, nil
}

// Mode returns the installed fault mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// IncludedTags returns the installed included-tags mask.
func (c *Controller) IncludedTags() TagMask {
	return c.included
}

// SetMode installs mode with every tag eligible for random generation.
// It panics with a *ModeError if the platform rejects the change.
func (c *Controller) SetMode(mode Mode) {
	c.SetModeWithTags(mode, AllTags)
}

// SetModeWithTags installs mode and included together. The change is visible
// to every thread as soon as it returns. It panics with a *ModeError if the
// platform rejects the change; continuing without the requested mode would
// make every later tag check meaningless.
func (c *Controller) SetModeWithTags(mode Mode, included TagMask) {
	if !mode.Valid() {
		c.abort(&ModeError{Mode: mode, Included: included})
	}
	if err := c.platform.SetTagControl(mode, included); err != nil {
		c.abort(&ModeError{Mode: mode, Included: included, cause: err})
	}

	prev := c.mode
	c.mode, c.included = mode, included

	c.logger.LogModeChange(prev, mode, included)
	c.metrics.RecordModeChange(mode, included)
}

func (c *Controller) abort(err error) {
	c.logger.LogAbort(err)
	panic(err)
}
