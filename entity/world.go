package entity

import (
	"github.com/milk9111/archer/common"
	"github.com/milk9111/archer/gfx"
)

// Handle identifies an entity for as long as it stays in a World. Handles
// are never reused; the zero Handle refers to nothing.
type Handle uint64

// World owns the entity collection and runs the per-frame protocol.
type World struct {
	entities []Entity
	handles  []Handle
	next     Handle

	spawn       SpawnQueue
	collide     CollisionPass
	comparisons int
}

// NewWorld creates an empty world using BruteForce collision.
func NewWorld() *World {
	return &World{collide: BruteForce}
}

// SetCollisionPass replaces the collision pass. nil restores BruteForce.
func (w *World) SetCollisionPass(p CollisionPass) {
	if p == nil {
		p = BruteForce
	}
	w.collide = p
}

// Add appends e to the collection and returns its handle.
func (w *World) Add(e Entity) Handle {
	if w == nil || e == nil {
		return 0
	}
	w.next++
	w.entities = append(w.entities, e)
	w.handles = append(w.handles, w.next)
	return w.next
}

// Get returns the entity for h if it is still in the collection.
func (w *World) Get(h Handle) (Entity, bool) {
	if w == nil || h == 0 {
		return nil, false
	}
	for i, other := range w.handles {
		if other == h {
			return w.entities[i], true
		}
	}
	return nil, false
}

// Len returns the number of entities in the collection.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return len(w.entities)
}

// Entities returns the collection in order. The slice must not be modified.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities
}

// Comparisons returns the pair count of the last collision pass.
func (w *World) Comparisons() int {
	return w.comparisons
}

// Step advances the simulation by one frame:
//  1. collision pass over the current collection
//  2. Update on every entity that is still live, in order
//  3. entities spawned during 2 are appended in push order
//  4. entities that are no longer live are pruned
func (w *World) Step(dt float64, buttons Buttons, tiles TileQuery, tracked common.Rect) {
	if w == nil {
		return
	}

	w.comparisons = 0
	if len(w.entities) > 1 {
		w.comparisons = w.collide(w.entities)
	}

	frame := Frame{
		DT:      dt,
		Spawn:   &w.spawn,
		Buttons: buttons,
		Tiles:   tiles,
		Tracked: tracked,
	}
	for _, e := range w.entities {
		if e.IsLive() {
			e.Update(&frame)
		}
	}

	for _, e := range w.spawn.Drain() {
		w.Add(e)
	}

	w.Prune()
}

// Prune removes entities that are no longer live, keeping the order of the
// rest, and returns how many were removed.
func (w *World) Prune() int {
	if w == nil {
		return 0
	}
	kept := 0
	for i, e := range w.entities {
		if !e.IsLive() {
			continue
		}
		w.entities[kept] = e
		w.handles[kept] = w.handles[i]
		kept++
	}
	removed := len(w.entities) - kept
	clear(w.entities[kept:])
	w.entities = w.entities[:kept]
	w.handles = w.handles[:kept]
	return removed
}

// Draw asks every live entity to place its sprites, in collection order.
func (w *World) Draw(p gfx.Placer) {
	if w == nil {
		return
	}
	for _, e := range w.entities {
		if e.IsLive() {
			e.Draw(p)
		}
	}
}
