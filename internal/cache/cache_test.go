package cache

import (
	"sync"
	"testing"
)

func TestCache_GetSet(t *testing.T) {
	c := New[rune, int](0)
	if _, ok := c.Get('a'); ok {
		t.Fatal("empty cache should miss")
	}
	c.Set('a', 1)
	if v, ok := c.Get('a'); !ok || v != 1 {
		t.Errorf("Get('a') = %d, %v; want 1, true", v, ok)
	}

	st := c.Stats()
	if st.Hits != 1 || st.Misses != 1 || st.Len != 1 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](4)
	for i := 0; i < 4; i++ {
		c.Set(i, i)
	}
	// Touch 0 so it is the most recently used.
	c.Get(0)

	c.Set(4, 4) // 5 entries > 4: evict down to 3.

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	for _, k := range []int{0, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("recently used key %d was evicted", k)
		}
	}
	if _, ok := c.Get(1); ok {
		t.Error("oldest key 1 should have been evicted")
	}
	if ev := c.Stats().Evictions; ev != 2 {
		t.Errorf("Evictions = %d, want 2", ev)
	}
}

func TestCache_GetOrCreateOnce(t *testing.T) {
	c := New[string, int](0)
	var (
		mu    sync.Mutex
		calls int
		wg    sync.WaitGroup
	)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := c.GetOrCreate("k", func() int {
				mu.Lock()
				calls++
				mu.Unlock()
				return 7
			})
			if v != 7 {
				t.Errorf("GetOrCreate() = %d, want 7", v)
			}
		}()
	}
	wg.Wait()
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestCache_Clear(t *testing.T) {
	c := New[int, int](0)
	c.Set(1, 1)
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
}
