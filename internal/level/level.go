// Package level loads level definitions from YAML and builds worlds from
// them.
package level

import (
	_ "embed"
	"fmt"
	"math/rand"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"grid-roguelike/internal/gamemap"
	"grid-roguelike/internal/generate"
	"grid-roguelike/internal/world"
)

//go:embed levels.yaml
var builtin []byte

// Def describes one level: either a fixed ASCII layout whose markers are
// spawns, or a generated map with spawn counts.
type Def struct {
	Name     string            `yaml:"name"`
	Layout   []string          `yaml:"layout"`
	Legend   map[string]string `yaml:"legend"`
	Generate *GenerateDef      `yaml:"generate"`
	Spawns   []SpawnDef        `yaml:"spawns"`
}

// GenerateDef sizes a procedurally generated map.
type GenerateDef struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Corridor string `yaml:"corridor"` // lshaped, zshaped, straight
}

func (g *GenerateDef) validate() error {
	if g.Width < minGeneratedSize || g.Height < minGeneratedSize {
		return fmt.Errorf("generated map %dx%d is smaller than %dx%d",
			g.Width, g.Height, minGeneratedSize, minGeneratedSize)
	}
	return nil
}

// SpawnDef asks for Count entities of Archetype on a generated map.
type SpawnDef struct {
	Archetype string `yaml:"archetype"`
	Count     int    `yaml:"count"`
}

type levelFile struct {
	Levels []Def `yaml:"levels"`
}

// Set holds level definitions indexed by name.
type Set struct {
	defs  map[string]Def
	order []string
}

// Partition settings for generated levels. A map must hold two leaves on
// each axis so that every leaf fits at least one room.
const (
	minLeafSize      = 8
	maxLeafSize      = 20
	minGeneratedSize = 2 * minLeafSize
)

// defaultLegend maps layout markers to archetype names.
var defaultLegend = map[rune]string{
	'@': "player",
	'g': "goblin",
	'b': "bat",
	't': "turtle",
	'o': "barrel",
	'w': "wisp",
}

// Default returns the built-in levels.
func Default() (*Set, error) {
	return Parse(builtin)
}

// Load reads a level set from a YAML file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read levels %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML level set.
func Parse(data []byte) (*Set, error) {
	var f levelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse levels: %w", err)
	}
	s := &Set{defs: make(map[string]Def, len(f.Levels))}
	for _, d := range f.Levels {
		if d.Name == "" {
			return nil, fmt.Errorf("level without a name")
		}
		if _, dup := s.defs[d.Name]; dup {
			return nil, fmt.Errorf("level %q defined twice", d.Name)
		}
		if (len(d.Layout) == 0) == (d.Generate == nil) {
			return nil, fmt.Errorf("level %q: need exactly one of layout or generate", d.Name)
		}
		if d.Generate != nil {
			if err := d.Generate.validate(); err != nil {
				return nil, fmt.Errorf("level %q: %w", d.Name, err)
			}
		}
		s.defs[d.Name] = d
		s.order = append(s.order, d.Name)
	}
	return s, nil
}

// Get returns the named level.
func (s *Set) Get(name string) (Def, bool) {
	d, ok := s.defs[name]
	return d, ok
}

// Names lists levels in file order.
func (s *Set) Names() []string { return s.order }

// Build creates a world for d. Layout levels spawn from their markers;
// generated levels place the player at the start cell and scatter Spawns.
func Build(d Def, rng *rand.Rand, log *zap.Logger) (*world.World, error) {
	if d.Generate != nil {
		return buildGenerated(d, rng, log)
	}
	gmap, markers, err := gamemap.Parse(d.Layout)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", d.Name, err)
	}
	w := world.New(gmap, rng, log)
	for _, m := range markers {
		name, ok := d.archetypeFor(m.Glyph)
		if !ok {
			return nil, fmt.Errorf("level %q: unknown marker %q at %v", d.Name, m.Glyph, m.Pos)
		}
		if _, err := w.CreateNamed(name, m.Pos); err != nil {
			return nil, fmt.Errorf("level %q: %w", d.Name, err)
		}
	}
	return w, nil
}

func (d Def) archetypeFor(glyph rune) (string, bool) {
	if name, ok := d.Legend[string(glyph)]; ok {
		return name, true
	}
	name, ok := defaultLegend[glyph]
	return name, ok
}

func buildGenerated(d Def, rng *rand.Rand, log *zap.Logger) (*world.World, error) {
	if err := d.Generate.validate(); err != nil {
		return nil, fmt.Errorf("level %q: %w", d.Name, err)
	}
	style, err := corridorStyle(d.Generate.Corridor)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", d.Name, err)
	}
	gmap, start := generate.Generate(&generate.Config{
		MapWidth:      d.Generate.Width,
		MapHeight:     d.Generate.Height,
		MinLeafSize:   minLeafSize,
		MaxLeafSize:   maxLeafSize,
		MinRoomSize:   4,
		RoomPadding:   1,
		CorridorStyle: style,
		Rand:          rng,
	})
	if len(gmap.Rooms) == 0 {
		return nil, fmt.Errorf("level %q: generated map has no rooms", d.Name)
	}

	counts := make([]generate.SpawnCount, 0, len(d.Spawns))
	for _, sp := range d.Spawns {
		counts = append(counts, generate.SpawnCount{Archetype: sp.Archetype, Count: sp.Count})
	}
	spawns := generate.Populate(gmap, start, counts, rng)

	w := world.New(gmap, rng, log)
	if _, err := w.CreateNamed("player", start); err != nil {
		return nil, fmt.Errorf("level %q: %w", d.Name, err)
	}
	for _, sp := range spawns {
		if _, err := w.CreateNamed(sp.Archetype, sp.Pos); err != nil {
			return nil, fmt.Errorf("level %q: %w", d.Name, err)
		}
	}
	return w, nil
}

func corridorStyle(name string) (generate.CorridorStyle, error) {
	switch name {
	case "", "lshaped":
		return generate.CorridorLShaped, nil
	case "zshaped":
		return generate.CorridorZShaped, nil
	case "straight":
		return generate.CorridorStraight, nil
	}
	return 0, fmt.Errorf("unknown corridor style %q", name)
}
