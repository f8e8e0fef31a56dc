package engine

import "testing"

func TestScanDeadlockBoardHasNoMatches(t *testing.T) {
	g := gridFromRows(t, deadlockRows...)
	if sets := Scan(g); len(sets) != 0 {
		t.Errorf("Scan() found %d matches on a match-free board", len(sets))
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		name      string
		rows      []string
		clear     []Position
		wantSets  int
		wantUnion int
	}{
		{
			name:      "horizontal run of four",
			rows:      withRow(deadlockRows, 7, "00001234"),
			wantSets:  1,
			wantUnion: 4,
		},
		{
			name:      "horizontal run of five",
			rows:      withRow(deadlockRows, 3, "99999340"),
			wantSets:  1,
			wantUnion: 5,
		},
		{
			name: "L shape counts both runs and shares the corner",
			rows: withRow(withRow(withRow(deadlockRows,
				2, "99901234"),
				3, "94012340"),
				4, "90123401"),
			wantSets:  2,
			wantUnion: 5,
		},
		{
			name:      "gap breaks a run",
			rows:      withRow(deadlockRows, 6, "99999123"),
			clear:     []Position{Pos(2, 6)},
			wantSets:  0,
			wantUnion: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := gridFromRows(t, tc.rows...)
			for _, p := range tc.clear {
				g.Clear(p)
			}
			sets := Scan(g)
			if len(sets) != tc.wantSets {
				t.Fatalf("Scan() returned %d sets, want %d", len(sets), tc.wantSets)
			}
			if got := len(Union(sets)); got != tc.wantUnion {
				t.Errorf("union size = %d, want %d", got, tc.wantUnion)
			}
			for _, m := range sets {
				if m.Len() < MinRun {
					t.Errorf("match of length %d is below the minimum", m.Len())
				}
			}
		})
	}
}

func TestScanReportsRunDetails(t *testing.T) {
	g := gridFromRows(t, withRow(deadlockRows, 7, "00001234")...)
	sets := Scan(g)
	if len(sets) != 1 {
		t.Fatalf("Scan() returned %d sets, want 1", len(sets))
	}
	m := sets[0]
	if m.Orientation != Horizontal || m.Color != 0 {
		t.Errorf("match = %+v, want horizontal color 0", m)
	}
	for i, p := range m.Positions {
		if p != Pos(i, 7) {
			t.Errorf("position %d = %v, want %v", i, p, Pos(i, 7))
		}
	}
}
