package ecs

import (
	"context"
	"fmt"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Startup        bool
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (st *systemStatsInternal) record(d time.Duration) {
	st.executionCount++
	st.lastDuration = d
	st.totalDuration += d
	st.minDuration = min(st.minDuration, d)
	st.maxDuration = max(st.maxDuration, d)
}

// storageBound is implemented by Query and Singleton fields.
type storageBound interface {
	Init(storage *Storage)
}

// frameQuery is implemented by Query fields, refreshed before every execution.
type frameQuery interface {
	Execute()
}

type registeredSystem struct {
	system  System
	name    string
	startup bool
	queries []frameQuery
	stats   systemStatsInternal
}

// Scheduler owns the ordered system lists of a Storage. Startup systems run
// once, at the start of the first pass; update systems run on every pass in
// registration order.
type Scheduler struct {
	storage *Storage
	startup []*registeredSystem
	update  []*registeredSystem
	started bool
	frames  int64
	current *registeredSystem
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{storage: storage}
}

// Storage returns the storage the scheduler runs against.
func (s *Scheduler) Storage() *Storage {
	return s.storage
}

// Register appends an update system and wires its Query and Singleton fields.
func (s *Scheduler) Register(system System) {
	s.update = append(s.update, s.prepare(system, false))
}

// RegisterStartup appends a system that runs once, before the first update
// pass. Commands queued by startup systems are applied before update systems
// run.
func (s *Scheduler) RegisterStartup(system System) {
	s.startup = append(s.startup, s.prepare(system, true))
}

func (s *Scheduler) prepare(system System, startup bool) *registeredSystem {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	return &registeredSystem{
		system:  system,
		name:    systemType.Name(),
		startup: startup,
		queries: s.initializeFields(system),
		stats:   systemStatsInternal{minDuration: time.Duration(1<<63 - 1)},
	}
}

func (s *Scheduler) initializeFields(system System) []frameQuery {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() != reflect.Ptr || systemValue.Elem().Kind() != reflect.Struct {
		return nil
	}
	systemValue = systemValue.Elem()

	var queries []frameQuery
	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		bound, ok := field.Addr().Interface().(storageBound)
		if !ok {
			continue
		}
		bound.Init(s.storage)

		if q, ok := bound.(frameQuery); ok {
			queries = append(queries, q)
		}
	}
	return queries
}

func (s *Scheduler) runStage(systems []*registeredSystem, frame *UpdateFrame) {
	for _, rs := range systems {
		s.current = rs
		for _, q := range rs.queries {
			q.Execute()
		}

		start := time.Now()
		rs.system.Execute(frame)
		rs.stats.record(time.Since(start))
	}
	s.current = nil
	frame.Commands.Flush(s.storage)
}

// Once executes one pass with the given delta time, in seconds. A system
// that panics aborts the pass and the panic propagates.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.storage)

	if !s.started {
		s.started = true
		s.runStage(s.startup, frame)
	}

	s.runStage(s.update, frame)
	s.frames++
}

// Step is Once that converts a system panic into a *SystemError.
func (s *Scheduler) Step(dt float64) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		name := "<unknown>"
		if s.current != nil {
			name = s.current.name
			s.current = nil
		}

		cause, ok := r.(error)
		if !ok {
			cause = fmt.Errorf("%v", r)
		}
		err = &SystemError{System: name, Err: cause}
	}()

	s.Once(dt)
	return nil
}

// Run steps the scheduler every interval until ctx is cancelled or a system
// fails. Cancellation is not an error.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if err := s.Step(dt); err != nil {
				return err
			}
		}
	}
}

// GetStats returns statistics about system execution, startup systems first.
func (s *Scheduler) GetStats() *SchedulerStats {
	all := make([]*registeredSystem, 0, len(s.startup)+len(s.update))
	all = append(all, s.startup...)
	all = append(all, s.update...)

	stats := &SchedulerStats{
		SystemCount: len(all),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(all)),
	}

	for i, rs := range all {
		internal := rs.stats
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           rs.name,
			Startup:        rs.startup,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		stats.TotalExecutions += internal.executionCount
	}

	return stats
}
