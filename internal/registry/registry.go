// Package registry is the catalog of game variants. Game packages
// register themselves in init() functions; the engine discovers and
// instantiates them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/avolkov/ledboy/internal/games"
)

// Info describes a registered variant. Order fixes the menu position —
// the device menu is a stable physical list, not an alphabetical one.
type Info struct {
	ID    string
	Title string
	Order int
}

// Factory creates a fresh module instance bound to the given host
// environment. One instance lives for exactly one round.
type Factory func(env *games.Env) games.Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
)

// Register adds a variant. Panics on a duplicate ID or menu order so
// catalog mistakes surface at startup, not mid-game.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	for _, other := range infos {
		if other.Order == info.Order {
			panic(fmt.Sprintf("registry: games %q and %q share menu order %d", other.ID, info.ID, info.Order))
		}
	}

	factories[info.ID] = f
	infos[info.ID] = info
}

// List returns all variants in menu order.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})
	return result
}

// Create instantiates a variant by ID.
func Create(id string, env *games.Env) (games.Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(env), nil
}

// Exists checks whether a variant ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Count returns the number of registered variants.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()

	return len(factories)
}
