package main

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/plus3/ballgame/internal/app"
	"github.com/plus3/ballgame/internal/audio"
	"github.com/stretchr/testify/assert"
)

type fakeSpeaker struct {
	bumps  int
	closed int
}

func (f *fakeSpeaker) Bump()  { f.bumps++ }
func (f *fakeSpeaker) Close() { f.closed++ }

func stubHosts(t *testing.T, spk *fakeSpeaker, host func(app.Config, audio.Sink) error) {
	t.Helper()

	prevOpen, prevHosts := openSpeaker, hosts
	t.Cleanup(func() { openSpeaker, hosts = prevOpen, prevHosts })

	openSpeaker = func() (speaker, error) { return spk, nil }
	hosts = map[string]func(app.Config, audio.Sink) error{
		app.BackendEbiten:   host,
		app.BackendTerminal: host,
	}

	var buf bytes.Buffer
	prevOut := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prevOut) })
}

func TestRunClosesSpeakerWhenHostFails(t *testing.T) {
	spk := &fakeSpeaker{}
	var got audio.Sink
	stubHosts(t, spk, func(_ app.Config, sink audio.Sink) error {
		got = sink
		return errors.New("no display")
	})

	assert.Equal(t, 1, run([]string{"-sound"}))
	assert.Same(t, spk, got)
	assert.Equal(t, 1, spk.closed)
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		code   int
		closed int
	}{
		{"clean exit", []string{"-backend", "terminal", "-sound"}, 0, 1},
		{"without sound", nil, 0, 0},
		{"invalid config", []string{"-backend", "opengl", "-sound"}, 2, 0},
		{"unknown flag", []string{"-nope"}, 2, 0},
		{"zero hold on terminal", []string{"-backend", "terminal", "-hold", "0s"}, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spk := &fakeSpeaker{}
			stubHosts(t, spk, func(app.Config, audio.Sink) error { return nil })

			assert.Equal(t, tt.code, run(tt.args))
			assert.Equal(t, tt.closed, spk.closed)
		})
	}
}
