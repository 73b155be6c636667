// Package net provides unit tests for training callbacks.
package net

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perceptron-go/perceptron/internal/sample"
)

// countingCallback records how many steps it observed.
type countingCallback struct {
	BaseCallback
	begun bool
	ended bool
	steps int
}

func (c *countingCallback) OnTrainBegin(n *Network)                      { c.begun = true }
func (c *countingCallback) OnStepEnd(step int, loss float64, n *Network) { c.steps++ }
func (c *countingCallback) OnTrainEnd(n *Network)                        { c.ended = true }

// TestCallbackLifecycle tests that callbacks see begin, steps, and end.
func TestCallbackLifecycle(t *testing.T) {
	n, err := New(2, 2, 1, DefaultLearningRate)
	require.NoError(t, err)
	n.SetSampler(sample.NewSeeded(1))

	cb := &countingCallback{}
	n.AddCallback(cb)

	set := TrainSet{{Inputs: []float64{1, 0}, Targets: []float64{0.5}}}
	require.NoError(t, n.Train(set, 25, nil))

	assert.True(t, cb.begun)
	assert.True(t, cb.ended)
	assert.Equal(t, 25, cb.steps)
}

// TestEarlyStoppingEndsTraining tests that a stopped callback cuts the
// step count short. A zero learning rate keeps the per-step loss flat,
// so patience runs out quickly.
func TestEarlyStoppingEndsTraining(t *testing.T) {
	n, err := New(2, 2, 1, 0)
	require.NoError(t, err)
	n.SetSampler(sample.NewSeeded(1))

	counter := &countingCallback{}
	n.AddCallback(counter)
	n.AddCallback(NewEarlyStopping(10, 1e-9))

	set := TrainSet{{Inputs: []float64{1, 0}, Targets: []float64{0.5}}}
	require.NoError(t, n.Train(set, 100000, nil))

	assert.Less(t, counter.steps, 100, "early stopping did not end training")
	assert.True(t, counter.ended, "OnTrainEnd must still run after an early stop")
}

// TestLoggerInterval tests that Logger only reports at its interval.
func TestLoggerInterval(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	n, err := New(2, 2, 1, DefaultLearningRate)
	require.NoError(t, err)
	n.SetSampler(sample.NewSeeded(1))
	n.AddCallback(Logger{Interval: 10, Log: logger})

	set := TrainSet{{Inputs: []float64{1, 0}, Targets: []float64{0.5}}}
	require.NoError(t, n.Train(set, 30, nil))

	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Equal(t, 3, lines) // steps 0, 10, 20
}

// TestLoggerZeroIntervalIsSilent tests that Interval <= 0 disables output.
func TestLoggerZeroIntervalIsSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	n, err := New(2, 2, 1, DefaultLearningRate)
	require.NoError(t, err)
	n.SetSampler(sample.NewSeeded(1))
	n.AddCallback(Logger{Interval: 0, Log: logger})

	set := TrainSet{{Inputs: []float64{1, 0}, Targets: []float64{0.5}}}
	require.NoError(t, n.Train(set, 10, nil))

	assert.Zero(t, buf.Len())
}
