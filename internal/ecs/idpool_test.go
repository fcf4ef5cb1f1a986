package ecs

import (
	"slices"
	"testing"
)

func TestGenerateSequential(t *testing.T) {
	p := NewIDPool()
	for want := EntityID(1); want <= 3; want++ {
		if got := p.Generate(); got != want {
			t.Fatalf("Generate() = %d; want %d", got, want)
		}
	}
}

func TestGenerateReusesFreed(t *testing.T) {
	p := NewIDPool()
	p.Generate()
	p.Generate()
	p.Generate()
	p.Free(2)
	if got := p.Generate(); got != 2 {
		t.Fatalf("Generate() after Free(2) = %d; want 2", got)
	}
	if got := p.Generate(); got != 4 {
		t.Fatalf("Generate() with empty skip pool = %d; want 4", got)
	}
}

func TestFreeShrinksMax(t *testing.T) {
	p := NewIDPool()
	for i := 0; i < 4; i++ {
		p.Generate()
	}

	p.Free(3)
	if got := p.Skipped(); !slices.Equal(got, []EntityID{3}) {
		t.Fatalf("skip after Free(3) = %v; want [3]", got)
	}
	p.Free(2)
	if got := p.Skipped(); !slices.Equal(got, []EntityID{3, 2}) {
		t.Fatalf("skip after Free(2) = %v; want [3 2]", got)
	}
	p.Free(4)
	if p.Max() != 1 {
		t.Fatalf("max after Free(4) = %d; want 1", p.Max())
	}
	if got := p.Skipped(); len(got) != 0 {
		t.Fatalf("skip after Free(4) = %v; want empty", got)
	}
	if got := p.Generate(); got != 2 {
		t.Fatalf("Generate() after shrink = %d; want 2", got)
	}
}

func TestFreeSkipIsLIFO(t *testing.T) {
	p := NewIDPool()
	for i := 0; i < 5; i++ {
		p.Generate()
	}
	p.Free(1)
	p.Free(3)
	if got := p.Generate(); got != 3 {
		t.Fatalf("first reuse = %d; want 3", got)
	}
	if got := p.Generate(); got != 1 {
		t.Fatalf("second reuse = %d; want 1", got)
	}
}

func TestFreeIgnoresInvalid(t *testing.T) {
	p := NewIDPool()
	p.Generate()
	p.Generate()

	p.Free(NilEntity)
	p.Free(7)
	p.Free(1)
	p.Free(1) // double free
	if got := p.Skipped(); !slices.Equal(got, []EntityID{1}) {
		t.Fatalf("skip = %v; want [1]", got)
	}
	if p.Max() != 2 {
		t.Fatalf("max = %d; want 2", p.Max())
	}
}

func TestFreeEverythingEmptiesPool(t *testing.T) {
	p := NewIDPool()
	ids := []EntityID{p.Generate(), p.Generate(), p.Generate()}
	for _, id := range ids {
		p.Free(id)
	}
	if p.Max() != 0 || len(p.Skipped()) != 0 {
		t.Fatalf("pool not empty: max=%d skip=%v", p.Max(), p.Skipped())
	}
	if got := p.Generate(); got != 1 {
		t.Fatalf("Generate() on emptied pool = %d; want 1", got)
	}
}

// TestNoDuplicateLiveIDs churns the pool and checks that live IDs stay
// unique and that skip + [1,max] accounts for every issued ID.
func TestNoDuplicateLiveIDs(t *testing.T) {
	p := NewIDPool()
	live := map[EntityID]bool{}
	order := []int{1, 1, 1, 0, 1, 0, 0, 1, 1, 1, 0, 1, 0, 0, 0, 1, 1}
	var stack []EntityID
	for step, op := range order {
		if op == 1 {
			id := p.Generate()
			if live[id] {
				t.Fatalf("step %d: Generate() returned live id %d", step, id)
			}
			live[id] = true
			stack = append(stack, id)
			continue
		}
		// release from the middle to exercise the skip pool
		i := len(stack) / 2
		id := stack[i]
		stack = slices.Delete(stack, i, i+1)
		delete(live, id)
		p.Free(id)
	}
	for id := EntityID(1); id <= p.Max(); id++ {
		inSkip := slices.Contains(p.Skipped(), id)
		if live[id] == inSkip {
			t.Fatalf("id %d: live=%v inSkip=%v", id, live[id], inSkip)
		}
		if p.Live(id) != live[id] {
			t.Fatalf("Live(%d) = %v; want %v", id, p.Live(id), live[id])
		}
	}
}
