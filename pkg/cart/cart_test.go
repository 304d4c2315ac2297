package cart

import (
	"errors"
	"testing"

	"asset-browser/pkg/models"
)

func TestAddIdempotent(t *testing.T) {
	c := New(&MemStore{})

	if !c.Add("/Music/a.mp3", "a.mp3") {
		t.Fatal("first add returned false")
	}
	if c.Add("/Music/a.mp3", "a.mp3") {
		t.Error("duplicate add returned true")
	}
	if c.Add("Music/a.mp3", "a.mp3") {
		t.Error("normalized duplicate add returned true")
	}
	if c.Len() != 1 {
		t.Errorf("cart has %d items, want 1", c.Len())
	}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	c := New(&MemStore{})
	c.Add("/Music/b.mp3", "b.mp3")
	c.Add("/Art/a.png", "a.png")
	c.Add("/Videos/c.mp4", "c.mp4")

	items := c.Items()
	want := []string{"b.mp3", "a.png", "c.mp4"}
	for i, name := range want {
		if items[i].Name != name {
			t.Errorf("item %d = %q, want %q", i, items[i].Name, name)
		}
	}
}

func TestRemove(t *testing.T) {
	c := New(&MemStore{})
	c.Add("/Music/a.mp3", "a.mp3")
	c.Add("/Music/b.mp3", "b.mp3")

	c.Remove("/Music/a.mp3")
	if c.Contains("/Music/a.mp3") {
		t.Error("removed item still present")
	}
	if c.Len() != 1 {
		t.Errorf("cart has %d items, want 1", c.Len())
	}

	c.Remove("/Music/ghost.mp3") // absent path is a no-op
	if c.Len() != 1 {
		t.Error("removing an absent path changed the cart")
	}
}

func TestClear(t *testing.T) {
	c := New(&MemStore{})
	c.Add("/Music/a.mp3", "a.mp3")
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("cart has %d items after clear", c.Len())
	}
}

func TestPersistence(t *testing.T) {
	store := &MemStore{}
	c := New(store)
	c.Add("/Music/a.mp3", "a.mp3")
	c.Add("/Art/b.png", "b.png")

	restored := New(store)
	if restored.Len() != 2 {
		t.Fatalf("restored cart has %d items, want 2", restored.Len())
	}
	if !restored.Contains("/Music/a.mp3") || !restored.Contains("/Art/b.png") {
		t.Error("restored cart is missing items")
	}
}

type failingStore struct{}

func (failingStore) Load() ([]models.CartItem, error) { return nil, errors.New("corrupt slot") }
func (failingStore) Save([]models.CartItem) error     { return errors.New("disk full") }

func TestLoadFailureMeansEmptyCart(t *testing.T) {
	c := New(failingStore{})
	if c.Len() != 0 {
		t.Error("failed load produced a non-empty cart")
	}
	// Save failures are logged, not fatal.
	if !c.Add("/Music/a.mp3", "a.mp3") {
		t.Error("add failed because the store cannot save")
	}
}
