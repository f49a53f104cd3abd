package ecs

import (
	"fmt"
	"iter"
	"reflect"
)

// Query is a View whose matching archetypes and results are cached. The
// Scheduler refreshes every Query field of a system right before that
// system executes; code outside a scheduler calls Execute itself.
type Query[T any] struct {
	view               *View[T]
	storage            *Storage
	cachedArchetypes   []*Archetype
	lastArchetypeCount int

	cachedEntities   []EntityId
	cachedComponents []T
	cacheValid       bool
}

// NewQuery creates a new Query over storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the query to storage and drops any cached state.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.cachedArchetypes = nil
	q.lastArchetypeCount = -1
	q.cacheValid = false
}

// Execute rebuilds the cached results from the current storage contents.
func (q *Query[T]) Execute() {
	if count := len(q.storage.ordered); count != q.lastArchetypeCount {
		q.cachedArchetypes = q.cachedArchetypes[:0]
		for _, archetype := range q.storage.ordered {
			if q.view.matchesArchetype(archetype) {
				q.cachedArchetypes = append(q.cachedArchetypes, archetype)
			}
		}
		q.lastArchetypeCount = count
	}

	q.cachedEntities = q.cachedEntities[:0]
	q.cachedComponents = q.cachedComponents[:0]

	for _, archetype := range q.cachedArchetypes {
		for id, item := range q.view.iterArchetype(archetype) {
			q.cachedEntities = append(q.cachedEntities, id)
			q.cachedComponents = append(q.cachedComponents, item)
		}
	}

	q.cacheValid = true
}

func (q *Query[T]) mustBeExecuted(method string) {
	if !q.cacheValid {
		panic("Query." + method + "() called before Query.Execute()")
	}
}

// Iter yields the cached entity ids and views.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	q.mustBeExecuted("Iter")

	return func(yield func(EntityId, T) bool) {
		for i := range q.cachedEntities {
			if !yield(q.cachedEntities[i], q.cachedComponents[i]) {
				return
			}
		}
	}
}

// Values yields the cached views only.
func (q *Query[T]) Values() iter.Seq[T] {
	q.mustBeExecuted("Values")

	return func(yield func(T) bool) {
		for i := range q.cachedComponents {
			if !yield(q.cachedComponents[i]) {
				return
			}
		}
	}
}

// Count returns the number of cached matches.
func (q *Query[T]) Count() int {
	q.mustBeExecuted("Count")
	return len(q.cachedEntities)
}

// Single returns the one matching entity. It fails with ErrNoEntities or
// ErrMultipleEntities when the match count is not exactly one.
func (q *Query[T]) Single() (EntityId, T, error) {
	q.mustBeExecuted("Single")

	var zero T
	switch len(q.cachedEntities) {
	case 0:
		return 0, zero, fmt.Errorf("%w: %s", ErrNoEntities, reflect.TypeFor[T]())
	case 1:
		return q.cachedEntities[0], q.cachedComponents[0], nil
	default:
		return 0, zero, fmt.Errorf("%w: %d matches for %s", ErrMultipleEntities, len(q.cachedEntities), reflect.TypeFor[T]())
	}
}

// MustSingle is Single that panics on error.
func (q *Query[T]) MustSingle() T {
	_, item, err := q.Single()
	if err != nil {
		panic(err)
	}
	return item
}
