package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/archer/tilemap"
)

var (
	ErrUnknownObject   = errors.New("entity: unknown object type")
	ErrNoPlayerFactory = errors.New("entity: no player factory registered")
)

// Factory creates an entity at a world position.
type Factory func(x, y int) Entity

// Registry maps tile map object names to factories.
type Registry struct {
	factories map[string]Factory
	player    Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for object markers called name.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" {
		return errors.New("entity: register: empty name")
	}
	if f == nil {
		return fmt.Errorf("entity: register %q: nil factory", name)
	}
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("entity: register %q: already registered", name)
	}
	r.factories[name] = f
	return nil
}

// RegisterPlayer sets the factory used once per level at the start position.
func (r *Registry) RegisterPlayer(f Factory) {
	r.player = f
}

// Has reports whether a factory exists for name.
func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Spawn creates an entity through the factory registered for name.
func (r *Registry) Spawn(name string, x, y int) (Entity, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownObject, name)
	}
	return f(x, y), nil
}

// Populate spawns the player at the map's start position followed by one
// entity per object marker, in marker order, and returns the player's handle.
// Every marker is resolved before anything is added, so on error w is left
// untouched.
func (r *Registry) Populate(w *World, m *tilemap.TileMap) (Handle, error) {
	if r.player == nil {
		return 0, ErrNoPlayerFactory
	}
	for _, obj := range m.Objects {
		if !r.Has(obj.Name) {
			return 0, fmt.Errorf("%w: %q at %d,%d", ErrUnknownObject, obj.Name, obj.X, obj.Y)
		}
	}

	player := w.Add(r.player(int(m.PlayerStartX), int(m.PlayerStartY)))
	for _, obj := range m.Objects {
		e, err := r.Spawn(obj.Name, int(obj.X), int(obj.Y))
		if err != nil {
			return 0, err
		}
		w.Add(e)
	}
	return player, nil
}
