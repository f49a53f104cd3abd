package ecs

// System represents a behavior that operates on entities with specific components.
// Systems are structs whose Query and Singleton fields are wired by the Scheduler
// on registration; any other fields persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function into a System.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}
