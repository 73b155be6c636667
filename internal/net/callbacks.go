package net

import (
	"log/slog"
	"math"
)

// Callback observes training progress. Callbacks are diagnostics only;
// they never alter the update rule.
type Callback interface {
	OnTrainBegin(n *Network)
	OnStepEnd(step int, loss float64, n *Network)
	OnTrainEnd(n *Network)
}

// Stopper is an optional interface for callbacks that can request an
// early end to training.
type Stopper interface {
	ShouldStop() bool
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (c BaseCallback) OnTrainBegin(n *Network)                      {}
func (c BaseCallback) OnStepEnd(step int, loss float64, n *Network) {}
func (c BaseCallback) OnTrainEnd(n *Network)                        {}

// Logger logs the per-step loss at a fixed step interval.
type Logger struct {
	BaseCallback
	Interval int
	Log      *slog.Logger // nil uses slog.Default
}

func (c Logger) OnStepEnd(step int, loss float64, n *Network) {
	if c.Interval <= 0 || step%c.Interval != 0 {
		return
	}
	logger := c.Log
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("training step", "step", step, "loss", loss)
}

// EarlyStopping requests a stop when the per-step loss has not improved
// by at least MinDelta for Patience consecutive steps. Per-step loss on
// randomly drawn items is noisy, so Patience should be generous.
type EarlyStopping struct {
	BaseCallback
	Patience int
	MinDelta float64

	bestLoss    float64
	numBadSteps int
	stopped     bool
}

// NewEarlyStopping creates an EarlyStopping callback.
func NewEarlyStopping(patience int, minDelta float64) *EarlyStopping {
	return &EarlyStopping{
		Patience: patience,
		MinDelta: minDelta,
		bestLoss: math.MaxFloat64,
	}
}

func (c *EarlyStopping) OnTrainBegin(n *Network) {
	c.bestLoss = math.MaxFloat64
	c.numBadSteps = 0
	c.stopped = false
}

func (c *EarlyStopping) OnStepEnd(step int, loss float64, n *Network) {
	if loss < c.bestLoss-c.MinDelta {
		c.bestLoss = loss
		c.numBadSteps = 0
		return
	}
	c.numBadSteps++
	if c.numBadSteps >= c.Patience {
		c.stopped = true
	}
}

// ShouldStop reports whether training should end early.
func (c *EarlyStopping) ShouldStop() bool {
	return c.stopped
}
