package cache

import (
	"testing"
	"time"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](time.Minute)
	c.Set("a", 1)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) should report absent")
	}
}

func TestCacheLazyExpiry(t *testing.T) {
	c := New[string, int](time.Minute)
	now := time.Unix(1000, 0)
	c.now = func() time.Time { return now }

	c.Set("a", 1)
	now = now.Add(2 * time.Minute)

	if _, ok := c.Get("a"); ok {
		t.Error("stale entry should not be returned")
	}
	if c.Len() != 0 {
		t.Errorf("stale entry should be evicted on read, len = %d", c.Len())
	}
}

func TestCacheSweep(t *testing.T) {
	c := New[string, int](time.Minute)
	now := time.Unix(1000, 0)
	c.now = func() time.Time { return now }

	c.Set("a", 1)
	c.Set("b", 2)
	now = now.Add(30 * time.Second)
	c.Set("c", 3)
	now = now.Add(45 * time.Second)

	if dropped := c.Sweep(); dropped != 2 {
		t.Errorf("Sweep dropped %d, want 2", dropped)
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("live entry lost in sweep")
	}
}

func TestCacheDelete(t *testing.T) {
	c := New[string, int](time.Minute)
	c.Set("a", 1)
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("deleted entry still present")
	}
}
