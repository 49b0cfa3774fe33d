// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package cache

import (
	"strconv"
	"sync"
	"testing"
	"time"
)

func TestLRU_BasicOperations(t *testing.T) {
	c := NewLRU[string, float64](3, 0)

	c.Add("a", 0.5)
	c.Add("b", -0.25)
	c.Add("c", 1)

	for key, want := range map[string]float64{"a": 0.5, "b": -0.25, "c": 1} {
		got, found := c.Get(key)
		if !found {
			t.Errorf("Expected to find key %q", key)
			continue
		}
		if got != want {
			t.Errorf("Get(%q) = %v, want %v", key, got, want)
		}
	}

	if c.Len() != 3 {
		t.Errorf("Expected len 3, got %d", c.Len())
	}
}

func TestLRU_Eviction(t *testing.T) {
	c := NewLRU[string, int](3, 0)

	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	// 'a' becomes most recently used, so 'b' is the eviction candidate
	c.Get("a")
	c.Add("d", 4)

	if _, found := c.Get("b"); found {
		t.Error("Expected 'b' to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, found := c.Get(key); !found {
			t.Errorf("Expected %q to be present", key)
		}
	}
	if s := c.Stats(); s.Evictions != 1 {
		t.Errorf("Expected 1 eviction, got %d", s.Evictions)
	}
}

func TestLRU_UpdateExisting(t *testing.T) {
	c := NewLRU[string, int](2, 0)

	c.Add("a", 1)
	c.Add("a", 2)

	if c.Len() != 1 {
		t.Errorf("Expected len 1 after update, got %d", c.Len())
	}
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Expected updated value 2, got %d", v)
	}
}

func TestLRU_TTLExpiry(t *testing.T) {
	c := NewLRU[string, int](10, time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Add("a", 1)
	if _, found := c.Get("a"); !found {
		t.Fatal("Expected 'a' before expiry")
	}

	now = now.Add(2 * time.Minute)
	if _, found := c.Get("a"); found {
		t.Error("Expected 'a' to have expired")
	}
	if c.Len() != 0 {
		t.Errorf("Expected expired entry to be removed, len = %d", c.Len())
	}
}

func TestLRU_GetOrCompute(t *testing.T) {
	c := NewLRU[string, int](10, 0)
	calls := 0
	compute := func() int {
		calls++
		return 42
	}

	if v := c.GetOrCompute("k", compute); v != 42 {
		t.Errorf("GetOrCompute() = %d, want 42", v)
	}
	if v := c.GetOrCompute("k", compute); v != 42 {
		t.Errorf("GetOrCompute() second call = %d, want 42", v)
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 {
		t.Errorf("Stats() = %+v, want 1 hit and 1 miss", s)
	}
}

func TestLRU_RemoveAndClear(t *testing.T) {
	c := NewLRU[int, string](5, 0)
	c.Add(1, "one")
	c.Add(2, "two")

	if !c.Remove(1) {
		t.Error("Remove(1) = false, want true")
	}
	if c.Remove(1) {
		t.Error("Remove(1) second call = true, want false")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Expected empty cache after Clear, got %d", c.Len())
	}
	if _, found := c.Get(2); found {
		t.Error("Expected key 2 to be gone after Clear")
	}
}

func TestLRU_DefaultCapacity(t *testing.T) {
	c := NewLRU[string, int](0, -time.Second)
	if c.capacity != 10000 {
		t.Errorf("Expected default capacity 10000, got %d", c.capacity)
	}
	if c.ttl != 0 {
		t.Errorf("Expected negative ttl to disable expiry, got %v", c.ttl)
	}
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := NewLRU[string, int](100, 0)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := strconv.Itoa((g * 500) + i)
				c.Add(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 100 {
		t.Errorf("Expected len <= 100, got %d", c.Len())
	}
}
