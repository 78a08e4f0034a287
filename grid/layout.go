package grid

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Glyphs understood by ParseLayout.
const (
	GlyphEmpty = '.'
	GlyphWall  = '#'
	GlyphStart = 'S'
	GlyphEnd   = 'E'
)

// Layout describes an initial board before any search has touched it.
//
// A Layout is given either explicitly (Rows, Cols, Start, End, Walls) or as
// ASCII art in Map; when Map is non-empty it takes precedence.
type Layout struct {
	Name  string   `json:"name,omitempty" yaml:"name,omitempty"`
	Rows  int      `json:"rows" yaml:"rows"`
	Cols  int      `json:"cols" yaml:"cols"`
	Start Coord    `json:"start" yaml:"start"`
	End   Coord    `json:"end" yaml:"end"`
	Walls []Coord  `json:"walls,omitempty" yaml:"walls,omitempty"`
	Map   []string `json:"map,omitempty" yaml:"map,omitempty"`

	// missing names the markers a decoded document left out.
	missing []string
}

// layoutFields is Layout without its decoding methods.
type layoutFields Layout

// markerKeys detects whether start and end were present in a document.
type markerKeys struct {
	Start *Coord `json:"start" yaml:"start"`
	End   *Coord `json:"end" yaml:"end"`
}

func (k markerKeys) missing() []string {
	var out []string
	if k.Start == nil {
		out = append(out, "start")
	}
	if k.End == nil {
		out = append(out, "end")
	}
	return out
}

// UnmarshalJSON decodes l and remembers absent start or end keys, so that
// Validate does not mistake them for (0,0).
func (l *Layout) UnmarshalJSON(b []byte) error {
	var keys markerKeys
	if err := json.Unmarshal(b, (*layoutFields)(l)); err != nil {
		return err
	}
	if err := json.Unmarshal(b, &keys); err != nil {
		return err
	}
	l.missing = keys.missing()
	return nil
}

// UnmarshalYAML is the YAML counterpart of UnmarshalJSON.
func (l *Layout) UnmarshalYAML(n *yaml.Node) error {
	var keys markerKeys
	if err := n.Decode((*layoutFields)(l)); err != nil {
		return err
	}
	if err := n.Decode(&keys); err != nil {
		return err
	}
	l.missing = keys.missing()
	return nil
}

// ParseLayout reads ASCII art, one string per row, using the glyphs
// '.' (empty), '#' (wall), 'S' (start) and 'E' (end).
// Rows must all be the same length and exactly one S and one E must appear.
func ParseLayout(lines []string) (Layout, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return Layout{}, ErrEmptyGrid
	}
	l := Layout{Rows: len(lines), Cols: len(lines[0])}
	var starts, ends int
	for r, line := range lines {
		if len(line) != l.Cols {
			return Layout{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidLayout, r, len(line), l.Cols)
		}
		for c, ch := range []byte(line) {
			switch ch {
			case GlyphEmpty:
			case GlyphWall:
				l.Walls = append(l.Walls, C(r, c))
			case GlyphStart:
				l.Start = C(r, c)
				starts++
			case GlyphEnd:
				l.End = C(r, c)
				ends++
			default:
				return Layout{}, fmt.Errorf("%w: unknown glyph %q at %v", ErrInvalidLayout, ch, C(r, c))
			}
		}
	}
	if starts != 1 || ends != 1 {
		return Layout{}, fmt.Errorf("%w: need exactly one %c and one %c, got %d and %d",
			ErrInvalidLayout, GlyphStart, GlyphEnd, starts, ends)
	}
	return l, nil
}

// LoadLayout decodes a YAML layout document from r.
func LoadLayout(r io.Reader) (Layout, error) {
	var l Layout
	if err := yaml.NewDecoder(r).Decode(&l); err != nil {
		return Layout{}, fmt.Errorf("%w: decode yaml: %v", ErrInvalidLayout, err)
	}
	return l.Resolve()
}

// Resolve expands Map, if present, into the explicit fields.
func (l Layout) Resolve() (Layout, error) {
	if len(l.Map) == 0 {
		return l, nil
	}
	parsed, err := ParseLayout(l.Map)
	if err != nil {
		return Layout{}, err
	}
	parsed.Name = l.Name
	parsed.Map = l.Map
	return parsed, nil
}

// Validate checks that the dimensions are positive and within MaxCells, that
// a decoded explicit layout named both start and end, and that start, end
// and every wall are in bounds and pairwise distinct.
func (l Layout) Validate() error {
	if err := checkDimensions(l.Rows, l.Cols); err != nil {
		return err
	}
	if len(l.Map) == 0 && len(l.missing) > 0 {
		return fmt.Errorf("%w: no %s given", ErrInvalidLayout, strings.Join(l.missing, " or "))
	}
	inBounds := func(c Coord) error {
		if c.Row < 0 || c.Row >= l.Rows || c.Col < 0 || c.Col >= l.Cols {
			return &BoundsError{Coord: c, Rows: l.Rows, Cols: l.Cols}
		}
		return nil
	}
	if err := inBounds(l.Start); err != nil {
		return fmt.Errorf("%w: start: %w", ErrInvalidLayout, err)
	}
	if err := inBounds(l.End); err != nil {
		return fmt.Errorf("%w: end: %w", ErrInvalidLayout, err)
	}
	if l.Start == l.End {
		return fmt.Errorf("%w: start and end both at %v", ErrInvalidLayout, l.Start)
	}
	seen := make(map[Coord]struct{}, len(l.Walls))
	for _, w := range l.Walls {
		if err := inBounds(w); err != nil {
			return fmt.Errorf("%w: wall: %w", ErrInvalidLayout, err)
		}
		if w == l.Start || w == l.End {
			return fmt.Errorf("%w: wall at marker %v", ErrInvalidLayout, w)
		}
		if _, dup := seen[w]; dup {
			return fmt.Errorf("%w: duplicate wall %v", ErrInvalidLayout, w)
		}
		seen[w] = struct{}{}
	}
	return nil
}

// Build resolves and validates l, then returns the initial grid.
func (l Layout) Build() (*Grid, error) {
	l, err := l.Resolve()
	if err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	g, err := New(l.Rows, l.Cols)
	if err != nil {
		return nil, err
	}
	for _, w := range l.Walls {
		g.cells[g.index(w)] = Wall
	}
	g.cells[g.index(l.Start)] = Start
	g.cells[g.index(l.End)] = End
	return g, nil
}

// String renders l as ASCII art in the ParseLayout format.
func (l Layout) String() string {
	g, err := l.Build()
	if err != nil {
		return fmt.Sprintf("Layout(%v)", err)
	}
	rows, cols := g.Dimensions()
	var b strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			switch g.At(C(r, c)) {
			case Wall:
				b.WriteByte(GlyphWall)
			case Start:
				b.WriteByte(GlyphStart)
			case End:
				b.WriteByte(GlyphEnd)
			default:
				b.WriteByte(GlyphEmpty)
			}
		}
		if r < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Classic returns the 20×20 demonstration board: a staircase of horizontal
// walls between the start at (2,2) and a goal at (17,11) tucked inside a
// pocket that can only be entered from the bottom row.
func Classic() Layout {
	l := Layout{
		Name:  "classic",
		Rows:  20,
		Cols:  20,
		Start: C(2, 2),
		End:   C(17, 11),
	}
	shift := 0
	for r := 4; r < 15; r += 2 {
		for c := shift; c < 15+shift; c++ {
			l.Walls = append(l.Walls, C(r, c))
		}
		shift++
	}
	for r := 16; r < 20; r++ {
		l.Walls = append(l.Walls, C(r, 9))
	}
	for c := 10; c < 12; c++ {
		l.Walls = append(l.Walls, C(16, c))
	}
	for r := 16; r < 19; r++ {
		l.Walls = append(l.Walls, C(r, 12))
	}
	return l
}
