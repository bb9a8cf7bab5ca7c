// Package levels provides level loading for Pollo Run.
// Levels are immutable once loaded; the simulation consumes them once per run.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/pollo-run/internal/games/pollo/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Kind identifies what a spawn group creates.
type Kind string

const (
	KindChicken      Kind = "chicken"
	KindSmallChicken Kind = "small-chicken"
	KindBoss         Kind = "boss"
	KindCoin         Kind = "coin"
	KindBottle       Kind = "bottle"
)

// Range is an inclusive placement interval.
type Range = formats.Range

// Spawn describes Count entities of one kind placed inside the X/Y ranges.
type Spawn struct {
	Kind  Kind
	Count int
	X     Range
	Y     Range
	Speed Range
}

// Level represents a complete level definition.
type Level struct {
	ID          string
	Name        string
	Description string
	EndX        float64
	Spawns      []Spawn
	FilePath    string
}

// Placement is a single resolved entity position.
type Placement struct {
	Kind  Kind
	X     float64
	Y     float64
	Speed float64
}

// Place resolves every spawn group into concrete placements.
// The same seed always yields the same placements.
func (l Level) Place(seed int64) []Placement {
	rng := rand.New(rand.NewSource(seed))
	var out []Placement
	for _, s := range l.Spawns {
		for i := 0; i < s.Count; i++ {
			out = append(out, Placement{
				Kind:  s.Kind,
				X:     pick(rng, s.X),
				Y:     pick(rng, s.Y),
				Speed: pick(rng, s.Speed),
			})
		}
	}
	return out
}

// HasBoss reports whether the level spawns a boss.
func (l Level) HasBoss() bool {
	for _, s := range l.Spawns {
		if s.Kind == KindBoss && s.Count > 0 {
			return true
		}
	}
	return false
}

func pick(rng *rand.Rand, r Range) float64 {
	if r.Fixed() {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// ValidationError describes why a level file was rejected.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Validate checks the structural invariants of a level.
func (l Level) Validate() error {
	if l.ID == "" {
		return &ValidationError{Code: "missing_id", Message: "level id is required"}
	}
	if l.EndX <= 0 {
		return &ValidationError{Code: "invalid_end", Message: fmt.Sprintf("end_x must be positive, got %v", l.EndX)}
	}

	bosses := 0
	for i, s := range l.Spawns {
		switch s.Kind {
		case KindChicken, KindSmallChicken, KindCoin, KindBottle:
		case KindBoss:
			bosses += s.Count
		default:
			return &ValidationError{Code: "unknown_kind", Message: fmt.Sprintf("spawn %d: unknown kind %q", i, s.Kind)}
		}
		if s.Count < 0 {
			return &ValidationError{Code: "invalid_count", Message: fmt.Sprintf("spawn %d: negative count %d", i, s.Count)}
		}
		for name, r := range map[string]Range{"x": s.X, "y": s.Y, "speed": s.Speed} {
			if r.Min > r.Max {
				return &ValidationError{Code: "invalid_range", Message: fmt.Sprintf("spawn %d: %s min %v > max %v", i, name, r.Min, r.Max)}
			}
		}
	}
	if bosses > 1 {
		return &ValidationError{Code: "multiple_bosses", Message: fmt.Sprintf("at most one boss allowed, got %d", bosses)}
	}
	return nil
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortByID(levels)
	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	level, err := decode(data, strings.ToLower(filepath.Ext(p)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	level.FilePath = p
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return find(levels, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	return ids(levels), nil
}

// Builtin returns the levels shipped with the binary, sorted by ID.
func Builtin() ([]Level, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("reading builtin levels: %w", err)
	}

	levels := make([]Level, 0, len(entries))
	for _, e := range entries {
		name := path.Join("builtin", e.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		level, err := decode(data, strings.ToLower(path.Ext(name)))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		levels = append(levels, level)
	}

	sortByID(levels)
	return levels, nil
}

// BuiltinByID returns a shipped level by ID.
func BuiltinByID(id string) (Level, error) {
	levels, err := Builtin()
	if err != nil {
		return Level{}, err
	}
	return find(levels, id)
}

// Default returns the first level of the game.
func Default() Level {
	lvl, err := BuiltinByID("level1")
	if err != nil {
		// Embedded data is fixed at build time; tests cover it.
		panic(fmt.Sprintf("levels: default level unavailable: %v", err))
	}
	return lvl
}

func decode(data []byte, ext string) (Level, error) {
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, err
	}

	level := Level{
		ID:          parsed.ID,
		Name:        parsed.Name,
		Description: parsed.Description,
		EndX:        parsed.EndX,
		Spawns:      make([]Spawn, len(parsed.Spawns)),
	}
	for i, s := range parsed.Spawns {
		level.Spawns[i] = Spawn{Kind: Kind(s.Kind), Count: s.Count, X: s.X, Y: s.Y, Speed: s.Speed}
	}
	if err := level.Validate(); err != nil {
		return Level{}, err
	}
	return level, nil
}

func find(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

func ids(levels []Level) []string {
	out := make([]string, len(levels))
	for i, lvl := range levels {
		out[i] = lvl.ID
	}
	return out
}

func sortByID(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
