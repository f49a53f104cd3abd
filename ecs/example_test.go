package ecs_test

import (
	"fmt"

	"github.com/plus3/ballgame/ecs"
)

// ExampleNewSingleton shows a singleton shared between two accessors.
func ExampleNewSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())

	bounds := ecs.NewSingleton[Bounds](storage, Bounds{Width: 800, Height: 600})
	bounds.Get().Width = 1024

	same := ecs.NewSingleton[Bounds](storage)
	fmt.Printf("%.0fx%.0f\n", same.Get().Width, same.Get().Height)

	// Output:
	// 1024x600
}

// ExampleStorage_ReadSingleton reads a singleton outside of a system.
func ExampleStorage_ReadSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	storage.AddSingleton(Bounds{Width: 640, Height: 384})

	var bounds *Bounds
	if storage.ReadSingleton(&bounds) {
		fmt.Printf("bounds %.0fx%.0f\n", bounds.Width, bounds.Height)
	}

	var label *Label
	fmt.Println("label present:", storage.ReadSingleton(&label))

	// Output:
	// bounds 640x384
	// label present: false
}

// ExampleQuery_Single looks up the one entity carrying a marker.
func ExampleQuery_Single() {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{X: 1, Y: 1})
	storage.Spawn(Position{X: 400, Y: 300}, Marker{})

	query := ecs.NewQuery[struct {
		*Position
		*Marker
	}](storage)
	query.Execute()

	_, item, err := query.Single()
	fmt.Println(item.Position.X, item.Position.Y, err)

	// Output:
	// 400 300 <nil>
}

// ExampleScheduler wires a startup system and an update system.
func ExampleScheduler() {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	scheduler.RegisterStartup(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
		frame.Commands.Spawn(Position{}, Velocity{DX: 2, DY: 1})
	}))
	movement := &MovementSystem{}
	scheduler.Register(movement)

	for range 4 {
		scheduler.Once(0.5)
	}

	movement.Entities.Execute()
	item := movement.Entities.MustSingle()
	fmt.Printf("(%.0f, %.0f) after %d frames\n", item.Position.X, item.Position.Y, movement.ExecuteCount)

	// Output:
	// (4, 2) after 4 frames
}
