package ecs_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/plus3/ballgame/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIdEncoding(t *testing.T) {
	tests := []struct {
		archetypeId uint32
		index       uint32
	}{
		{0, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("archetype=%d,index=%d", tt.archetypeId, tt.index), func(t *testing.T) {
			id := ecs.NewEntityId(tt.archetypeId, tt.index)
			assert.Equal(t, tt.archetypeId, id.ArchetypeId())
			assert.Equal(t, tt.index, id.Index())
		})
	}
}

func TestSpawnAndGetComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 3, Y: 4}, Label("ball"))
	assert.True(t, storage.Alive(id))

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, Position{X: 3, Y: 4}, *pos)

	label := storage.GetComponent(id, reflect.TypeFor[Label]())
	require.NotNil(t, label)
	assert.Equal(t, Label("ball"), *label.(*Label))

	assert.Nil(t, ecs.ReadComponent[Velocity](storage, id))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Position]()))
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Velocity]()))
}

func TestComponentOrderDoesNotMatter(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{X: 1}, Velocity{DX: 2})
	b := storage.Spawn(Velocity{DX: 4}, Position{X: 3})

	assert.Equal(t, a.ArchetypeId(), b.ArchetypeId())
	assert.Equal(t, float32(3), ecs.ReadComponent[Position](storage, b).X)
	assert.Equal(t, float32(4), ecs.ReadComponent[Velocity](storage, b).DX)
	assert.Len(t, storage.Archetypes(), 1)
}

func TestComponentPointersAreStable(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Position{X: 1})
	ptr := ecs.ReadComponent[Position](storage, first)

	// force several new blocks
	for i := range 500 {
		storage.Spawn(Position{X: float32(i)})
	}

	ptr.X = 42
	assert.Equal(t, float32(42), ecs.ReadComponent[Position](storage, first).X)
}

func TestDeleteReusesSlot(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{X: 1})
	storage.Spawn(Position{X: 2})
	storage.Delete(a)

	assert.False(t, storage.Alive(a))
	assert.Nil(t, ecs.ReadComponent[Position](storage, a))

	c := storage.Spawn(Position{X: 3})
	assert.Equal(t, a, c)
	assert.Equal(t, float32(3), ecs.ReadComponent[Position](storage, c).X)
}

func TestStaleIdAfterReuse(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	stale := storage.Spawn(Position{X: 1})
	storage.Delete(stale)
	reused := storage.Spawn(Position{X: 2})
	require.Equal(t, stale, reused)

	assert.True(t, storage.Alive(stale), "the stale id resolves to the new occupant")
	assert.Equal(t, float32(2), ecs.ReadComponent[Position](storage, stale).X)

	storage.Delete(stale)
	assert.False(t, storage.Alive(reused))
	assert.Equal(t, 0, storage.CollectStats().TotalEntityCount)
}

func TestEmptyMarkerComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Marker{}, Position{X: 5})
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Marker]()))
	assert.NotNil(t, ecs.ReadComponent[Marker](storage, id))
}

func TestSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })
	assert.Panics(t, func() { storage.Spawn(Bounds{}) }, "unregistered component")
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) })
}

func TestSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var bounds *Bounds
	assert.False(t, storage.ReadSingleton(&bounds))

	storage.AddSingleton(Bounds{Width: 800, Height: 600})
	require.True(t, storage.ReadSingleton(&bounds))
	assert.Equal(t, float32(800), bounds.Width)

	held := ecs.NewSingleton[Bounds](storage)
	storage.AddSingleton(&Bounds{Width: 1024, Height: 768})

	assert.Same(t, bounds, held.Get(), "replacing a singleton keeps its address")
	assert.Equal(t, float32(1024), held.Get().Width)
}

func TestSingletonMustGet(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var missing ecs.Singleton[Bounds]
	missing.Init(storage)
	assert.False(t, missing.Exists())

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ecs.ErrMissingSingleton)
	}()
	missing.MustGet()
}

func TestSingletonSeesLateAdd(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var s ecs.Singleton[Bounds]
	s.Init(storage)
	assert.Nil(t, s.Get())

	storage.AddSingleton(Bounds{Width: 10})
	require.NotNil(t, s.Get())
	assert.Equal(t, float32(10), s.Get().Width)
}

func TestCollectStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	stats := storage.CollectStats()
	assert.Zero(t, stats.ArchetypeCount)
	assert.Zero(t, stats.TotalEntityCount)
	assert.Zero(t, stats.SingletonCount)

	storage.Spawn(Position{}, Label("a"))
	storage.Spawn(Position{}, Label("b"))
	gone := storage.Spawn(Position{})
	storage.Spawn(Position{})
	storage.Delete(gone)
	storage.AddSingleton(Bounds{})

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.ArchetypeCount)
	assert.Equal(t, 3, stats.TotalEntityCount)
	assert.Equal(t, 1, stats.SingletonCount)
	assert.Equal(t, []string{"ecs_test.Bounds"}, stats.SingletonTypes)

	require.Len(t, stats.ArchetypeBreakdown, 2)
	assert.Equal(t, 2, stats.ArchetypeBreakdown[0].EntityCount)
	assert.Equal(t, []string{"ecs_test.Label", "ecs_test.Position"}, stats.ArchetypeBreakdown[0].ComponentTypes)
	assert.Equal(t, 1, stats.ArchetypeBreakdown[1].EntityCount)
}
