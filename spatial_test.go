package main

import "testing"

func TestSpatialGridInsertAndQuery(t *testing.T) {
	grid := NewSpatialGrid()

	ref := EntityRef{Kind: 'r', Idx: 0}
	grid.Insert(100, 100, ref)

	// Query around (100,100) should find it
	found := false
	for _, r := range grid.Query(100, 100, 50) {
		if r.Kind == 'r' && r.Idx == 0 {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected to find entity at (100,100)")
	}

	// Query far away should not find it
	for _, r := range grid.Query(3000, 3000, 50) {
		if r.Kind == 'r' && r.Idx == 0 {
			t.Error("should not find entity at (3000,3000)")
		}
	}
}

func TestSpatialGridNegativeCoords(t *testing.T) {
	grid := NewSpatialGrid()
	grid.Insert(-500, -500, EntityRef{Kind: 'r', Idx: 3})

	found := false
	for _, r := range grid.Query(-500, -500, 10) {
		if r.Kind == 'r' && r.Idx == 3 {
			found = true
		}
	}
	if !found {
		t.Error("expected to find entity at negative coords")
	}
}

func TestSpatialGridRebuild(t *testing.T) {
	grid := NewSpatialGrid()
	planets := []*Planet{{ID: 0, X: 200, Y: 200, Radius: 60}}
	rings := []*Ring{
		newRing(0, 500, 500, RingStandard, 10),
		newRing(1, 600, 600, RingStandard, 10),
	}
	rings[1].Collected = true

	grid.Rebuild(planets, rings)

	var gotPlanet, gotRing, gotCollected bool
	for _, r := range grid.Query(200, 200, 10) {
		if r.Kind == 'l' && r.Idx == 0 {
			gotPlanet = true
		}
	}
	for _, r := range grid.Query(500, 500, 10) {
		if r.Kind == 'r' && r.Idx == 0 {
			gotRing = true
		}
	}
	for _, r := range grid.Query(600, 600, 10) {
		if r.Kind == 'r' && r.Idx == 1 {
			gotCollected = true
		}
	}
	if !gotPlanet {
		t.Error("rebuild should insert planets")
	}
	if !gotRing {
		t.Error("rebuild should insert uncollected rings")
	}
	if gotCollected {
		t.Error("rebuild must exclude collected rings")
	}
}

func TestSpatialGridRebuildClearsOldEntries(t *testing.T) {
	grid := NewSpatialGrid()
	rings := []*Ring{newRing(0, 100, 100, RingStandard, 10)}
	grid.Rebuild(nil, rings)

	rings[0].Collected = true
	grid.Rebuild(nil, rings)

	for _, r := range grid.Query(100, 100, 50) {
		if r.Kind == 'r' {
			t.Error("stale entry survived rebuild")
		}
	}
}

func TestSpatialGridNoFalseNegativeAtPlanetEdge(t *testing.T) {
	// A big planet's body must be reachable from a query near its rim even
	// though its center sits cells away.
	grid := NewSpatialGrid()
	planets := []*Planet{{ID: 0, X: 1000, Y: 1000, Radius: SpatialMaxEntityRadius}}
	grid.Rebuild(planets, nil)

	found := false
	for _, r := range grid.Query(1000+SpatialMaxEntityRadius, 1000, 5) {
		if r.Kind == 'l' && r.Idx == 0 {
			found = true
		}
	}
	if !found {
		t.Error("query at planet rim should return the planet")
	}
}

func TestSpatialGridUninitializedQuery(t *testing.T) {
	var grid *SpatialGrid
	if got := grid.Query(0, 0, 100); got != nil {
		t.Errorf("nil grid query = %v, want nil", got)
	}
	empty := &SpatialGrid{}
	if got := empty.Query(0, 0, 100); got != nil {
		t.Errorf("unbuilt grid query = %v, want nil", got)
	}
}
