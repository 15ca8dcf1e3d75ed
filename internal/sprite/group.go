// Package sprite provides an ordered container for on-screen entities and
// rectangle collision between two containers.
package sprite

import "image"

// Sprite is anything with an on-screen bounding rectangle.
type Sprite interface {
	comparable
	Rect() image.Rectangle
}

// Group is an ordered set of sprites. Insertion order is kept so that
// update, draw and collision passes are deterministic.
type Group[T Sprite] struct {
	items []T
}

// NewGroup creates a group holding the given sprites.
func NewGroup[T Sprite](sprites ...T) *Group[T] {
	g := &Group[T]{}
	g.Add(sprites...)
	return g
}

// Add appends sprites that are not already members.
func (g *Group[T]) Add(sprites ...T) {
	for _, s := range sprites {
		if !g.Has(s) {
			g.items = append(g.items, s)
		}
	}
}

// Remove deletes s from the group and reports whether it was a member.
func (g *Group[T]) Remove(s T) bool {
	for i, item := range g.items {
		if item == s {
			g.items = append(g.items[:i], g.items[i+1:]...)
			return true
		}
	}
	return false
}

// Has reports whether s is a member.
func (g *Group[T]) Has(s T) bool {
	for _, item := range g.items {
		if item == s {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (g *Group[T]) Len() int {
	return len(g.items)
}

// Empty removes every member.
func (g *Group[T]) Empty() {
	clear(g.items)
	g.items = g.items[:0]
}

// Sprites returns a snapshot of the members. The group may be modified
// while ranging over the snapshot.
func (g *Group[T]) Sprites() []T {
	out := make([]T, len(g.items))
	copy(out, g.items)
	return out
}

// Each calls fn for every member in insertion order.
func (g *Group[T]) Each(fn func(T)) {
	for _, item := range g.Sprites() {
		fn(item)
	}
}

// RemoveFunc removes every member for which remove returns true and
// returns how many were removed.
func (g *Group[T]) RemoveFunc(remove func(T) bool) int {
	kept := g.items[:0]
	removed := 0
	for _, item := range g.items {
		if remove(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	clear(g.items[len(kept):])
	g.items = kept
	return removed
}
