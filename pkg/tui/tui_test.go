package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"asset-browser/pkg/cart"
	"asset-browser/pkg/config"
	"asset-browser/pkg/models"
	"asset-browser/pkg/player"
)

func testModel(assetCount int) Model {
	nodes := make([]models.ManifestNode, assetCount)
	assets := make([]models.Asset, assetCount)
	for i := range nodes {
		name := fmt.Sprintf("piece-%03d.png", i)
		path := fmt.Sprintf("/Art/piece-%03d.png", i)
		nodes[i] = models.ManifestNode{Name: name, Type: models.NodeFile, Path: path}
		assets[i] = models.Asset{Name: name, Path: path, Category: "Art"}
	}
	m := models.Manifest{"Art": nodes}

	cfg := &config.Config{AssetRoot: "/tmp/assets", AppPrefix: "test"}
	return New(cfg, m, assets, player.New(nil, nil), cart.New(&cart.MemStore{}))
}

func TestModelInitialGrid(t *testing.T) {
	m := testModel(95)

	if len(m.shown) != 30 {
		t.Errorf("initial grid shows %d items, want 30", len(m.shown))
	}
	if len(m.visible) != 95 {
		t.Errorf("visible set = %d, want 95", len(m.visible))
	}
	if len(m.treeRows) != 1 || m.treeRows[0].Label != "Art" {
		t.Errorf("tree rows = %+v", m.treeRows)
	}
}

func TestModelLoadMore(t *testing.T) {
	m := testModel(95)

	m.loadMore()
	if len(m.shown) != 60 {
		t.Errorf("after one load-more %d items shown, want 60", len(m.shown))
	}
	m.loadMore()
	m.loadMore()
	if len(m.shown) != 95 {
		t.Errorf("after three load-mores %d items shown, want all 95", len(m.shown))
	}

	// Exhausted: a further trigger changes nothing.
	m.loadMore()
	if len(m.shown) != 95 {
		t.Errorf("load-more past the end grew the grid to %d", len(m.shown))
	}
}

func TestModelBackFromPreviewKeepsLoadedPages(t *testing.T) {
	m := testModel(95)
	m.focus = paneGrid
	m.loadMore()
	m.loadMore()
	if len(m.shown) != 90 {
		t.Fatalf("setup: %d items shown, want 90", len(m.shown))
	}

	updated, _ := m.selectGridItem()
	next := updated.(Model)
	if next.preview == nil {
		t.Fatal("selecting a grid item did not open preview")
	}

	updated, _ = next.goBack()
	next = updated.(Model)
	if next.preview != nil {
		t.Fatal("back did not close the preview")
	}
	if len(next.shown) != 90 {
		t.Errorf("after back %d items shown, want the 90 already loaded", len(next.shown))
	}
	if remaining := len(next.visible) - len(next.shown); remaining != 5 {
		t.Errorf("remaining after back = %d, want 5", remaining)
	}

	// The load-more affordance stays live and fetches exactly the rest.
	next.loadMore()
	if len(next.shown) != 95 {
		t.Errorf("load-more after back shows %d items, want all 95", len(next.shown))
	}
}

func TestModelUnrelatedCollapseKeepsLoadedPages(t *testing.T) {
	m := testModel(95)
	m.manifest["Videos"] = []models.ManifestNode{
		{Name: "clip.mp4", Type: models.NodeFile, Path: "/Videos/clip.mp4"},
	}
	m.assets = append(m.assets, models.Asset{Name: "clip.mp4", Path: "/Videos/clip.mp4", Category: "Videos"})

	m.state.SelectFolder("/Videos")
	m.refreshGrid(true)
	m.state.SelectFolder("/Art")
	m.refreshGrid(true)
	m.loadMore()
	m.loadMore()
	if len(m.shown) != 90 {
		t.Fatalf("setup: %d items shown, want 90", len(m.shown))
	}

	// Collapsing a folder outside the active context keeps the context
	// and everything already loaded in it.
	m.state.SelectFolder("/Videos")
	m.refreshGrid(true)
	if got := m.state.FolderContext(); got != "/Art" {
		t.Fatalf("folder context = %q, want /Art", got)
	}
	if len(m.shown) != 90 {
		t.Errorf("after collapse %d items shown, want the 90 already loaded", len(m.shown))
	}
}

func TestModelSearchNarrowsGrid(t *testing.T) {
	m := testModel(95)

	m.state.Search("piece-001")
	m.refreshGrid(true)
	if len(m.shown) != 1 {
		t.Errorf("search shows %d items, want 1", len(m.shown))
	}

	m.state.Search("")
	m.refreshGrid(true)
	if len(m.shown) != 30 {
		t.Errorf("cleared search shows %d items, want a fresh first page", len(m.shown))
	}
}

func TestModelAddToCartOpensPanel(t *testing.T) {
	m := testModel(5)
	m.focus = paneGrid

	updated, _ := m.addCurrentToCart()
	next := updated.(Model)
	if !next.cartOpen {
		t.Error("successful add did not open the cart panel")
	}
	if next.cart.Len() != 1 {
		t.Errorf("cart has %d items, want 1", next.cart.Len())
	}

	// Duplicate add keeps the cart unchanged.
	updated, _ = next.addCurrentToCart()
	next = updated.(Model)
	if next.cart.Len() != 1 {
		t.Errorf("duplicate add grew the cart to %d", next.cart.Len())
	}
}

func TestModelWindowSize(t *testing.T) {
	m := testModel(5)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	next := updated.(Model)
	if next.width != 120 || next.height != 40 {
		t.Errorf("size = %dx%d", next.width, next.height)
	}
	if view := next.View(); view == "" {
		t.Error("view rendered empty")
	}
}

func TestModelViewBeforeSize(t *testing.T) {
	m := testModel(5)
	if view := m.View(); view != "Loading..." {
		t.Errorf("pre-size view = %q", view)
	}
}
