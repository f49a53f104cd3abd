package ecs

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSingleton is returned when a required singleton has not been added to storage.
	ErrMissingSingleton = errors.New("ecs: required singleton missing")
	// ErrNoEntities is returned by Query.Single when nothing matches.
	ErrNoEntities = errors.New("ecs: query matched no entities")
	// ErrMultipleEntities is returned by Query.Single when more than one entity matches.
	ErrMultipleEntities = errors.New("ecs: query matched more than one entity")
)

// SystemError reports a system that aborted the frame.
type SystemError struct {
	System string
	Err    error
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("system %s: %v", e.System, e.Err)
}

func (e *SystemError) Unwrap() error {
	return e.Err
}
