package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestRun(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	report, err := run(ctx, options{
		Duration:    200 * time.Millisecond,
		Width:       320,
		Height:      240,
		SwitchEvery: 5,
		Seed:        7,
	}, log.New(io.Discard, "", 0))
	require.NoError(t, err)

	assert.Positive(t, report.TotalFrames)
	assert.Zero(t, report.Violations)
	assert.Len(t, report.UpdateTime.Samples, int(report.TotalFrames))
	assert.NotEmpty(t, report.Systems)

	var out bytes.Buffer
	require.NoError(t, report.Generate(&out))
	assert.Contains(t, out.String(), "# Scene Benchmark Report")
	assert.Contains(t, out.String(), "PlayerMovementSystem")
}

func TestRunRejectsSwitchEvery(t *testing.T) {
	_, err := run(context.Background(), options{Width: 800, Height: 600}, log.New(io.Discard, "", 0))
	assert.Error(t, err)
}
