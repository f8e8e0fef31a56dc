package engine

// ColorID indexes into the active palette.
type ColorID int

// SpecialKind is the extra effect a tile triggers when destroyed.
type SpecialKind uint8

const (
	SpecialNone SpecialKind = iota
	SpecialRowClear
	SpecialColumnClear
	SpecialCross
)

// String returns a human-readable name for the kind.
func (k SpecialKind) String() string {
	switch k {
	case SpecialNone:
		return "None"
	case SpecialRowClear:
		return "RowClear"
	case SpecialColumnClear:
		return "ColumnClear"
	case SpecialCross:
		return "Cross"
	default:
		return "Unknown"
	}
}

// Marker returns the single-letter glyph drawn on special tiles.
// L clears a line, D clears downwards, X clears both.
func (k SpecialKind) Marker() rune {
	switch k {
	case SpecialRowClear:
		return 'L'
	case SpecialColumnClear:
		return 'D'
	case SpecialCross:
		return 'X'
	default:
		return 0
	}
}

// Tile is a single colored piece. A special tile still matches by color.
type Tile struct {
	Color   ColorID
	Special SpecialKind
}

// IsSpecial reports whether destroying the tile triggers an effect.
func (t Tile) IsSpecial() bool {
	return t.Special != SpecialNone
}

// Rand is the random source used by the engine. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// TileFactory produces plain tiles with uniformly random colors.
type TileFactory struct {
	paletteSize int
	rng         Rand
}

// NewTileFactory returns a factory drawing colors from [0, paletteSize).
func NewTileFactory(paletteSize int, rng Rand) (*TileFactory, error) {
	if paletteSize < 1 {
		return nil, &ConfigurationError{Field: "palette_size", Reason: "must be at least 1"}
	}
	if rng == nil {
		return nil, &ConfigurationError{Field: "rng", Reason: "random source is required"}
	}
	return &TileFactory{paletteSize: paletteSize, rng: rng}, nil
}

// PaletteSize returns the number of colors the factory draws from.
func (f *TileFactory) PaletteSize() int {
	return f.paletteSize
}

// Create returns a new plain tile with a random color.
func (f *TileFactory) Create() Tile {
	return Tile{Color: f.randomColor()}
}

func (f *TileFactory) randomColor() ColorID {
	return ColorID(f.rng.Intn(f.paletteSize))
}

// shuffledColors returns every palette color in random order.
func (f *TileFactory) shuffledColors() []ColorID {
	colors := make([]ColorID, f.paletteSize)
	for i := range colors {
		colors[i] = ColorID(i)
	}
	for i := len(colors) - 1; i > 0; i-- {
		j := f.rng.Intn(i + 1)
		colors[i], colors[j] = colors[j], colors[i]
	}
	return colors
}
