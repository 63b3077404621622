package main

const (
	SpatialCellSize = 128.0
	// Largest entity radius the grid must never miss (PlanetMaxRadius).
	// Queries expand by this margin so broad phase has no false negatives.
	SpatialMaxEntityRadius = 80.0
)

// EntityRef identifies an entity in the grid
type EntityRef struct {
	Kind byte // 'l'=planet, 'r'=ring
	Idx  int  // index into the corresponding flat list
}

type cellKey struct {
	CX, CY int32
}

// SpatialGrid is a uniform-grid broad phase over an unbounded plane.
// It is fully rebuilt each frame; queries between rebuilds are consistent
// because nothing else mutates it within the same update pass.
type SpatialGrid struct {
	cells map[cellKey][]EntityRef
}

// NewSpatialGrid creates an empty grid
func NewSpatialGrid() *SpatialGrid {
	return &SpatialGrid{cells: make(map[cellKey][]EntityRef)}
}

func cellOf(v float64) int32 {
	c := v / SpatialCellSize
	if c < 0 {
		return int32(c) - 1
	}
	return int32(c)
}

// Insert adds an entity reference at the given position
func (g *SpatialGrid) Insert(x, y float64, ref EntityRef) {
	if g.cells == nil {
		g.cells = make(map[cellKey][]EntityRef)
	}
	key := cellKey{cellOf(x), cellOf(y)}
	g.cells[key] = append(g.cells[key], ref)
}

// InsertCircle adds an entity reference to all cells its bounding box overlaps
func (g *SpatialGrid) InsertCircle(x, y, radius float64, ref EntityRef) {
	if g.cells == nil {
		g.cells = make(map[cellKey][]EntityRef)
	}
	minCX := cellOf(x - radius)
	maxCX := cellOf(x + radius)
	minCY := cellOf(y - radius)
	maxCY := cellOf(y + radius)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			key := cellKey{cx, cy}
			g.cells[key] = append(g.cells[key], ref)
		}
	}
}

// Rebuild clears the grid and reinserts all planets and all uncollected
// rings. O(n) over the entity lists; called once per frame before queries.
func (g *SpatialGrid) Rebuild(planets []*Planet, rings []*Ring) {
	if g.cells == nil {
		g.cells = make(map[cellKey][]EntityRef)
	}
	for k := range g.cells {
		// Keep the allocated slices, drop the contents
		g.cells[k] = g.cells[k][:0]
	}
	for i, pl := range planets {
		g.InsertCircle(pl.X, pl.Y, pl.Radius, EntityRef{Kind: 'l', Idx: i})
	}
	for i, r := range rings {
		if r.Collected {
			continue
		}
		g.Insert(r.X, r.Y, EntityRef{Kind: 'r', Idx: i})
	}
}

// Query returns all entity refs in cells overlapping the query circle,
// expanded by the maximum entity radius. Callers must narrow-phase the
// results. A nil or never-built grid returns nil.
func (g *SpatialGrid) Query(x, y, radius float64) []EntityRef {
	if g == nil || g.cells == nil {
		return nil
	}
	reach := radius + SpatialMaxEntityRadius
	minCX := cellOf(x - reach)
	maxCX := cellOf(x + reach)
	minCY := cellOf(y - reach)
	maxCY := cellOf(y + reach)
	var result []EntityRef
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			result = append(result, g.cells[cellKey{cx, cy}]...)
		}
	}
	return result
}
