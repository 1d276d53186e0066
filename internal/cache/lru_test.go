package cache

import "testing"

func TestLRUCache_SetGet(t *testing.T) {
	c := NewLRUCache(2)

	c.Set("a", 1)

	val, found := c.Get("a")
	if !found {
		t.Fatal("expected key 'a' to be found")
	}
	if val.(int) != 1 {
		t.Errorf("expected 1, got %v", val)
	}
}

func TestLRUCache_Missing(t *testing.T) {
	c := NewLRUCache(2)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}
}

func TestLRUCache_Eviction(t *testing.T) {
	c := NewLRUCache(2)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	if _, found := c.Get("a"); found {
		t.Error("expected 'a' to be evicted")
	}
	if _, found := c.Get("b"); !found {
		t.Error("expected 'b' to remain")
	}
	if _, found := c.Get("c"); !found {
		t.Error("expected 'c' to remain")
	}
}

func TestLRUCache_GetRefreshesRecency(t *testing.T) {
	c := NewLRUCache(2)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	if _, found := c.Get("a"); !found {
		t.Error("expected recently used 'a' to remain")
	}
	if _, found := c.Get("b"); found {
		t.Error("expected 'b' to be evicted")
	}
}

func TestLRUCache_Update(t *testing.T) {
	c := NewLRUCache(2)

	c.Set("a", 1)
	c.Set("a", 2)
	c.Set("b", 3)

	// A duplicate Set must reuse the entry, so "b" does not evict "a".
	val, found := c.Get("a")
	if !found || val.(int) != 2 {
		t.Errorf("expected updated value 2, got %v (found=%v)", val, found)
	}
	if _, found := c.Get("b"); !found {
		t.Error("expected 'b' to remain")
	}
}

func TestLRUCache_Delete(t *testing.T) {
	c := NewLRUCache(2)

	c.Set("a", 1)
	c.Delete("a")

	if _, found := c.Get("a"); found {
		t.Error("expected 'a' to be deleted")
	}
}
