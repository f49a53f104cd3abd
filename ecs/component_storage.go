package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// iface mirrors the runtime layout of an interface value so a component
// pointer can be pulled out of an `any` without reflection.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

func dataPointer(v any) unsafe.Pointer {
	return (*iface)(unsafe.Pointer(&v)).data
}

// column is a type-erased slot store for one component type of an archetype.
type column interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Iter() iter.Seq[int]
}

// ComponentRegistry records which component types may be stored and how to
// build a column for each. Every Storage owns exactly one registry.
type ComponentRegistry struct {
	factories map[reflect.Type]func() column
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() column),
	}
}

// RegisterComponent registers T with the registry. A type must be registered
// before an entity carrying it can be spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() column {
		return &blockColumn[T]{}
	}
}

// Registered reports whether t has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) newColumn(t reflect.Type) column {
	factory, ok := r.factories[t]
	if !ok {
		panic("component type " + t.String() + " not registered")
	}
	return factory()
}

const blockSize = 64

type block[T any] struct {
	values [blockSize]T
	filled [blockSize]bool
}

// blockColumn stores components in fixed-size heap blocks. Blocks never move,
// so pointers handed out by Get stay valid until the slot is deleted.
type blockColumn[T any] struct {
	blocks    []*block[T]
	freeSlots []int
	nextIndex int
	count     int
}

func (c *blockColumn[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	var index int
	if n := len(c.freeSlots); n > 0 {
		index = c.freeSlots[n-1]
		c.freeSlots = c.freeSlots[:n-1]
	} else {
		index = c.nextIndex
		c.nextIndex++
		if index/blockSize >= len(c.blocks) {
			c.blocks = append(c.blocks, &block[T]{})
		}
	}

	b := c.blocks[index/blockSize]
	b.values[index%blockSize] = value
	b.filled[index%blockSize] = true
	c.count++
	return index
}

func (c *blockColumn[T]) slot(index int) (*block[T], int, bool) {
	if index < 0 || index >= c.nextIndex {
		return nil, 0, false
	}
	b := c.blocks[index/blockSize]
	return b, index % blockSize, b.filled[index%blockSize]
}

// Get returns a *T for the slot, or nil when the slot is empty.
func (c *blockColumn[T]) Get(index int) any {
	b, i, ok := c.slot(index)
	if !ok {
		return nil
	}
	return &b.values[i]
}

func (c *blockColumn[T]) Has(index int) bool {
	_, _, ok := c.slot(index)
	return ok
}

func (c *blockColumn[T]) Delete(index int) {
	b, i, ok := c.slot(index)
	if !ok {
		return
	}
	var zero T
	b.values[i] = zero
	b.filled[i] = false
	c.freeSlots = append(c.freeSlots, index)
	c.count--
}

func (c *blockColumn[T]) Len() int {
	return c.count
}

func (c *blockColumn[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < c.nextIndex; i++ {
			if !c.blocks[i/blockSize].filled[i%blockSize] {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}
