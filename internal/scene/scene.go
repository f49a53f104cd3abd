package scene

import "github.com/plus3/ballgame/ecs"

// RegisterComponents adds the scene's component types to registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Sprite](registry)
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[Camera2D](registry)
}

// AddSystems registers the spawners as startup systems and movement followed
// by confinement as update systems. Input and window systems that feed the
// singletons must already be registered.
func AddSystems(scheduler *ecs.Scheduler) {
	scheduler.RegisterStartup(&SpawnPlayerSystem{})
	scheduler.RegisterStartup(&SpawnCameraSystem{})

	scheduler.Register(&PlayerMovementSystem{})
	scheduler.Register(&ConfinePlayerSystem{})
}
