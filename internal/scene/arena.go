// Package scene is a small scene graph: an arena of transform nodes
// addressed by generational indices, with parent/child hierarchy.
package scene

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an EntityID no longer refers to a live node.
var ErrNotFound = errors.New("scene: entity not found")

// EntityID is a generational index into an Arena. The zero value refers to
// no entity, so it can stand for "empty" in grids and parent links.
type EntityID struct {
	index uint32
	gen   uint32
}

// Valid reports whether id was issued by an arena. A valid id may still be
// stale if its node has been despawned.
func (id EntityID) Valid() bool {
	return id.gen != 0
}

func (id EntityID) String() string {
	if !id.Valid() {
		return "entity(none)"
	}
	return fmt.Sprintf("entity(%d@%d)", id.index, id.gen)
}

// Node is one element of the scene graph.
type Node struct {
	Transform Transform
	Parent    EntityID
	Children  []EntityID
	Visible   bool
	Tag       string
}

type slot struct {
	node  Node
	gen   uint32
	alive bool
}

// Arena owns every node. Slots are reused after Despawn with a bumped
// generation so old ids stop resolving.
type Arena struct {
	slots []slot
	free  []uint32
	live  int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Spawn creates a visible root node.
func (a *Arena) Spawn(t Transform, tag string) EntityID {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot{})
	}

	s := &a.slots[idx]
	s.gen++
	s.alive = true
	s.node = Node{Transform: t, Visible: true, Tag: tag}
	a.live++

	return EntityID{index: idx, gen: s.gen}
}

// SpawnChild creates a node attached under parent.
func (a *Arena) SpawnChild(parent EntityID, t Transform, tag string) (EntityID, error) {
	if a.Get(parent) == nil {
		return EntityID{}, fmt.Errorf("spawn child of %v: %w", parent, ErrNotFound)
	}
	id := a.Spawn(t, tag)
	a.slots[id.index].node.Parent = parent
	p := a.Get(parent)
	p.Children = append(p.Children, id)
	return id, nil
}

// Despawn removes a node and all of its descendants.
func (a *Arena) Despawn(id EntityID) error {
	n := a.Get(id)
	if n == nil {
		return fmt.Errorf("despawn %v: %w", id, ErrNotFound)
	}

	if p := a.Get(n.Parent); p != nil {
		for i, c := range p.Children {
			if c == id {
				p.Children = append(p.Children[:i], p.Children[i+1:]...)
				break
			}
		}
	}
	a.despawnTree(id)
	return nil
}

func (a *Arena) despawnTree(id EntityID) {
	n := a.Get(id)
	if n == nil {
		return
	}
	for _, c := range n.Children {
		a.despawnTree(c)
	}
	s := &a.slots[id.index]
	s.alive = false
	s.node = Node{}
	a.free = append(a.free, id.index)
	a.live--
}

// Get returns the live node for id, or nil if id is empty or stale.
func (a *Arena) Get(id EntityID) *Node {
	if !id.Valid() || int(id.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[id.index]
	if !s.alive || s.gen != id.gen {
		return nil
	}
	return &s.node
}

// Contains reports whether id refers to a live node.
func (a *Arena) Contains(id EntityID) bool {
	return a.Get(id) != nil
}

// Len returns the number of live nodes.
func (a *Arena) Len() int {
	return a.live
}

// GlobalTransform composes the transforms from the root down to id.
func (a *Arena) GlobalTransform(id EntityID) (Transform, bool) {
	n := a.Get(id)
	if n == nil {
		return Transform{}, false
	}
	if !n.Parent.Valid() {
		return n.Transform, true
	}
	parent, ok := a.GlobalTransform(n.Parent)
	if !ok {
		return n.Transform, true
	}
	return parent.Mul(n.Transform), true
}

// Owner walks from id up through its ancestors and returns the first node
// (id itself included) carrying tag.
func (a *Arena) Owner(id EntityID, tag string) (EntityID, bool) {
	for cur := id; ; {
		n := a.Get(cur)
		if n == nil {
			return EntityID{}, false
		}
		if n.Tag == tag {
			return cur, true
		}
		cur = n.Parent
	}
}

// Each calls fn for every live node in slot order.
func (a *Arena) Each(fn func(EntityID, *Node)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.alive {
			fn(EntityID{index: uint32(i), gen: s.gen}, &s.node)
		}
	}
}

// Clear despawns every node. Generations are kept so ids issued before the
// clear stay stale.
func (a *Arena) Clear() {
	a.free = a.free[:0]
	for i := range a.slots {
		if a.slots[i].alive {
			a.slots[i].alive = false
			a.slots[i].node = Node{}
		}
		a.free = append(a.free, uint32(len(a.slots)-1-i))
	}
	a.live = 0
}
