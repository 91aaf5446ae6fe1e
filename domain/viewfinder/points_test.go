package viewfinder

import (
	"math/rand"
	"sync"
	"testing"
)

func TestPointBuffer_BurstWithoutDrainStaysBounded(t *testing.T) {
	b := NewPointBuffer(MaxPoints)
	for i := 0; i < 25; i++ {
		b.Append(Point{X: float64(i), Y: float64(i)})
		if n := b.Len(); n > MaxPoints {
			t.Fatalf("append %d: length %d exceeds cap", i, n)
		}
	}
	if n := b.Len(); n > MaxPoints/2+1 {
		t.Fatalf("expected at most %d points after burst, got %d", MaxPoints/2+1, n)
	}
	fresh, _ := b.Drain()
	if fresh[len(fresh)-1] != (Point{X: 24, Y: 24}) {
		t.Fatalf("newest point lost, tail=%v", fresh[len(fresh)-1])
	}
	for i := 1; i < len(fresh); i++ {
		if fresh[i].X <= fresh[i-1].X {
			t.Fatalf("order not preserved: %v", fresh)
		}
	}
}

func TestPointBuffer_FirstOverflowKeepsNewestHalf(t *testing.T) {
	b := NewPointBuffer(MaxPoints)
	for i := 0; i <= MaxPoints; i++ {
		b.Append(Point{X: float64(i)})
	}
	if n := b.Len(); n != MaxPoints/2 {
		t.Fatalf("expected %d after first overflow, got %d", MaxPoints/2, n)
	}
	fresh, _ := b.Drain()
	if fresh[0].X != float64(MaxPoints/2+1) {
		t.Fatalf("expected oldest kept point %d, got %v", MaxPoints/2+1, fresh[0].X)
	}
}

func TestPointBuffer_DrainSwapsAndClears(t *testing.T) {
	b := NewPointBuffer(0)
	b.Append(Point{X: 1})
	b.Append(Point{X: 2})

	fresh, stale := b.Drain()
	if len(fresh) != 2 || len(stale) != 0 {
		t.Fatalf("first drain: fresh=%v stale=%v", fresh, stale)
	}
	if b.Len() != 0 {
		t.Fatalf("current not emptied")
	}
	if got := b.Previous(); len(got) != 2 {
		t.Fatalf("previous=%v", got)
	}

	// Nothing new: the fresh set decays into stale and previous is cleared.
	fresh, stale = b.Drain()
	if fresh != nil || len(stale) != 2 {
		t.Fatalf("second drain: fresh=%v stale=%v", fresh, stale)
	}
	if got := b.Previous(); len(got) != 0 {
		t.Fatalf("previous not cleared: %v", got)
	}

	fresh, stale = b.Drain()
	if fresh != nil || stale != nil {
		t.Fatalf("third drain should be empty: fresh=%v stale=%v", fresh, stale)
	}
}

func TestPointBuffer_DrainResetsSaturation(t *testing.T) {
	b := NewPointBuffer(MaxPoints)
	for i := 0; i < 30; i++ {
		b.Append(Point{X: float64(i)})
	}
	b.Drain()
	for i := 0; i < MaxPoints; i++ {
		b.Append(Point{X: float64(i)})
	}
	if n := b.Len(); n != MaxPoints {
		t.Fatalf("expected full window after drain, got %d", n)
	}
}

func TestPointBuffer_RandomInterleaving(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewPointBuffer(MaxPoints)
	for step := 0; step < 2000; step++ {
		if rng.Intn(4) == 0 {
			b.Drain()
			if b.Len() != 0 {
				t.Fatalf("step %d: current not empty after drain", step)
			}
			if n := len(b.Previous()); n > MaxPoints {
				t.Fatalf("step %d: previous has %d points", step, n)
			}
			continue
		}
		b.Append(Point{X: rng.Float64(), Y: rng.Float64()})
		if n := b.Len(); n > MaxPoints {
			t.Fatalf("step %d: current has %d points", step, n)
		}
	}
}

func TestPointBuffer_ConcurrentProducers(t *testing.T) {
	b := NewPointBuffer(MaxPoints)
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				b.Append(Point{X: float64(g), Y: float64(i)})
			}
		}(g)
	}
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for {
		fresh, stale := b.Drain()
		if len(fresh) > MaxPoints || len(stale) > MaxPoints {
			t.Fatalf("drained oversized sets: fresh=%d stale=%d", len(fresh), len(stale))
		}
		select {
		case <-done:
			return
		default:
		}
	}
}

func TestPointBuffer_NilSafe(t *testing.T) {
	var b *PointBuffer
	b.Append(Point{})
	if f, s := b.Drain(); f != nil || s != nil || b.Len() != 0 {
		t.Fatalf("nil buffer should be inert")
	}
}
