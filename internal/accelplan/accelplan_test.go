package accelplan

import "testing"

func TestGenerateIncludesStart(t *testing.T) {
	t.Parallel()

	p := New(0, 10, 1.10, 0.01)
	grid := p.Generate(100.0)

	if len(grid) == 0 || grid[0] != 0 {
		t.Fatalf("grid = %v, want to start at 0", grid)
	}
}

func TestGenerateMonotonic(t *testing.T) {
	t.Parallel()

	p := New(-10, 10, 1.10, 0.01)
	grid := p.Generate(50.0)

	for i := 1; i < len(grid); i++ {
		if grid[i] <= grid[i-1] {
			t.Fatalf("grid not strictly increasing at %d: %v", i, grid)
		}

		if grid[i] > p.End+1e-9 {
			t.Fatalf("grid[%d] = %v overshoots End = %v", i, grid[i], p.End)
		}
	}
}

func TestGenerateSinglePointWhenEndEqualsStart(t *testing.T) {
	t.Parallel()

	p := New(5, 5, 1.10, 0.01)
	grid := p.Generate(100.0)

	if len(grid) != 1 || grid[0] != 5 {
		t.Fatalf("grid = %v, want [5]", grid)
	}
}
