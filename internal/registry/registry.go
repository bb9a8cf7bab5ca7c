// Package registry provides a global registry for playable game entries.
// Each entry (one per built-in level) registers itself in an init() function,
// so the CLI and the terminal platform can list and start them by ID.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/pollo-run/internal/core"
)

// Game is the interface the terminal platform drives.
// Implementations keep simulation logic free of Bubble Tea; the platform
// handles key mapping, tick timing and turning the Screen into terminal output.
type Game interface {
	// ID returns a unique identifier (e.g., "pollo", "pollo-boss").
	// Used by the play and simulate commands.
	ID() string

	// Title returns a human-readable name for display (e.g., "Pollo Run: Desert Run").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Left, Jump, Throw, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, outcome, paused).
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Describer is implemented by games that carry a longer description.
type Describer interface {
	Description() string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories    = make(map[string]Factory)
	titles       = make(map[string]string)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title and description by creating a temporary instance
	g := f()
	titles[id] = g.Title()
	if d, ok := g.(Describer); ok {
		descriptions[id] = d.Description()
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:          id,
			Title:       titles[id],
			Description: descriptions[id],
		})
	}

	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
