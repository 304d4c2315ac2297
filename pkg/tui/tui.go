// Package tui is the interactive asset browser. It is a thin consumer
// of the core state machines: browse.State decides what is visible,
// grid.Paginator decides how much of it is shown, and the player and
// cart own their own state across every view transition.
package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"asset-browser/pkg/browse"
	"asset-browser/pkg/cart"
	"asset-browser/pkg/config"
	"asset-browser/pkg/grid"
	"asset-browser/pkg/manifest"
	"asset-browser/pkg/models"
	"asset-browser/pkg/player"
)

// pane identifies the focused pane.
type pane int

const (
	paneTree pane = iota
	paneGrid
)

// Messages
type zipDoneMsg struct {
	name    string
	written int
	total   int
}

type zipErrMsg struct{ err error }

type statusClearMsg struct{ id int }

// Model is the main Bubble Tea model.
type Model struct {
	cfg *config.Config

	manifest models.Manifest
	assets   []models.Asset

	state     *browse.State
	paginator *grid.Paginator
	lazy      *grid.LazyTracker
	player    *player.Player
	cart      *cart.Cart

	keys   keyMap
	help   help.Model
	search textinput.Model

	focus      pane
	searching  bool
	treeRows   []treeRow
	treeCursor int

	visible    []models.Asset
	shown      []models.Asset
	layout     grid.Layout
	gridCursor int

	preview  *models.Asset
	cartOpen bool
	zipping  bool

	status   string
	statusID int
	showHelp bool

	width  int
	height int
}

// New wires the browser model from its already-constructed components.
func New(cfg *config.Config, m models.Manifest, assets []models.Asset, p *player.Player, c *cart.Cart) Model {
	search := textinput.New()
	search.Placeholder = "Search assets..."
	search.CharLimit = 80

	model := Model{
		cfg:       cfg,
		manifest:  m,
		assets:    assets,
		state:     browse.New(),
		paginator: grid.NewPaginator(grid.DefaultPageSize),
		lazy:      grid.NewLazyTracker(),
		player:    p,
		cart:      c,
		keys:      defaultKeyMap(),
		help:      help.New(),
		search:    search,
	}
	model.treeRows = buildTreeRows(m, model.state)
	model.refreshGrid(true)
	return model
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case zipDoneMsg:
		m.zipping = false
		return m.setStatus(fmt.Sprintf("Saved %s (%d of %d files)", msg.name, msg.written, msg.total))

	case zipErrMsg:
		// The trigger is re-armed even on a top-level failure.
		m.zipping = false
		return m.setStatus(fmt.Sprintf("Zip failed: %v", msg.err))

	case statusClearMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.NextPane):
		if m.focus == paneTree {
			m.focus = paneGrid
		} else {
			m.focus = paneTree
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		return m.goBack()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Select):
		return m.selectCurrent()

	case key.Matches(msg, m.keys.LoadMore):
		m.loadMore()
		return m, nil

	case key.Matches(msg, m.keys.AddCart):
		return m.addCurrentToCart()

	case key.Matches(msg, m.keys.CartPanel):
		m.cartOpen = !m.cartOpen
		return m, nil

	case key.Matches(msg, m.keys.Download):
		return m.startZip()

	case key.Matches(msg, m.keys.PlayPause):
		m.player.TogglePlay()
		return m, nil

	case key.Matches(msg, m.keys.NextTrack):
		m.player.Next()
		return m, nil

	case key.Matches(msg, m.keys.PrevTrack):
		m.player.Prev()
		return m, nil

	case key.Matches(msg, m.keys.Mute):
		m.player.ToggleMute()
		return m, nil

	case key.Matches(msg, m.keys.VolumeUp):
		m.player.SetVolume(m.player.Volume() + 0.1)
		return m, nil

	case key.Matches(msg, m.keys.VolumeDn):
		m.player.SetVolume(m.player.Volume() - 0.1)
		return m, nil
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		m.focus = paneGrid
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.state.Search("")
		m.refreshGrid(true)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	// Live filtering: every keystroke narrows the grid.
	if m.search.Value() != m.state.SearchQuery() {
		m.state.Search(m.search.Value())
		m.preview = nil
		m.refreshGrid(true)
	}
	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	if m.focus == paneTree {
		m.treeCursor = clamp(m.treeCursor+delta, 0, len(m.treeRows)-1)
		return
	}
	m.gridCursor = clamp(m.gridCursor+delta, 0, len(m.shown)-1)
}

func (m Model) selectCurrent() (tea.Model, tea.Cmd) {
	if m.focus == paneTree {
		return m.selectTreeRow()
	}
	return m.selectGridItem()
}

func (m Model) selectTreeRow() (tea.Model, tea.Cmd) {
	if len(m.treeRows) == 0 {
		return m, nil
	}
	row := m.treeRows[m.treeCursor]

	if row.IsDir {
		m.state.SelectFolder(row.Path)
		m.treeRows = buildTreeRows(m.manifest, m.state)
		m.treeCursor = clamp(m.treeCursor, 0, len(m.treeRows)-1)
		m.preview = nil
		m.refreshGrid(true)
		return m, nil
	}

	asset := m.assetAt(row.Path)
	return m.openAsset(asset)
}

func (m Model) selectGridItem() (tea.Model, tea.Cmd) {
	if len(m.shown) == 0 {
		return m, nil
	}
	asset := m.shown[m.gridCursor]
	return m.openAsset(asset)
}

// openAsset routes a selection: audio goes to the persistent player,
// everything else enters preview.
func (m Model) openAsset(asset models.Asset) (tea.Model, tea.Cmd) {
	if !m.state.SelectAsset(asset) {
		if !m.player.PlayPath(asset.Path) {
			return m.setStatus("Track not in playlist: " + asset.Name)
		}
		return m, nil
	}
	m.preview = &asset
	return m, nil
}

func (m Model) goBack() (tea.Model, tea.Cmd) {
	if m.cartOpen {
		m.cartOpen = false
		return m, nil
	}
	if m.state.Mode() == browse.ModePreview && m.preview != nil {
		m.state.Back()
		m.preview = nil
		m.refreshGrid(true)
		return m, nil
	}
	return m, nil
}

func (m *Model) loadMore() {
	if !m.paginator.LoadMore() {
		return
	}
	m.state.NextPage()
	m.refreshGrid(false)
	m.paginator.Done()
}

func (m Model) addCurrentToCart() (tea.Model, tea.Cmd) {
	var asset models.Asset
	switch {
	case m.preview != nil:
		asset = *m.preview
	case m.focus == paneTree && len(m.treeRows) > 0 && !m.treeRows[m.treeCursor].IsDir:
		asset = m.assetAt(m.treeRows[m.treeCursor].Path)
	case len(m.shown) > 0:
		asset = m.shown[m.gridCursor]
	default:
		return m, nil
	}
	if asset.Path == "" {
		return m, nil
	}

	if m.cart.Add(asset.Path, asset.Name) {
		// A successful insertion opens the panel.
		m.cartOpen = true
		return m.setStatus("Added " + asset.Name)
	}
	return m.setStatus(asset.Name + " already in cart")
}

// startZip kicks off archive assembly in the background. The trigger
// stays disabled until a done or error message re-arms it.
func (m Model) startZip() (tea.Model, tea.Cmd) {
	if m.zipping || m.cart.Len() == 0 {
		return m, nil
	}
	m.zipping = true

	items := m.cart.Items()
	root := m.cfg.AssetRoot
	prefix := m.cfg.AppPrefix

	return m, func() tea.Msg {
		name := cart.ArchiveName(prefix, time.Now())
		f, err := os.Create(name)
		if err != nil {
			return zipErrMsg{err}
		}
		defer f.Close()

		written, err := cart.BuildZip(context.Background(), f, items, cart.FSFetcher{Root: root})
		if err != nil {
			return zipErrMsg{err}
		}
		return zipDoneMsg{name: name, written: written, total: len(items)}
	}
}

// refreshGrid recomputes the visible set and applies a batch for the
// current page. replace rebuilds the grid through the current page, so
// a return from preview brings back every page loaded before it;
// otherwise the new slice is appended to what is already shown.
func (m *Model) refreshGrid(replace bool) {
	m.visible = m.state.VisibleAssets(m.assets)
	m.layout = grid.ListLayoutFor(m.state.FolderContext(), m.visible, manifest.CategoryFromPath)

	var batch grid.Batch
	if replace {
		batch = m.paginator.Through(m.visible, m.state.Page(), m.layout)
	} else {
		batch = m.paginator.Page(m.visible, m.state.Page(), m.layout)
	}
	if batch.Replace {
		m.shown = append([]models.Asset(nil), batch.Items...)
		m.lazy.Reset()
		m.gridCursor = 0
	} else {
		m.shown = append(m.shown, batch.Items...)
	}

	for _, asset := range batch.Items {
		m.lazy.Observe(asset.Path)
	}
}

func (m Model) assetAt(path string) models.Asset {
	for _, asset := range m.assets {
		if manifest.SamePath(asset.Path, path) {
			return asset
		}
	}
	return models.Asset{Name: path, Path: path, Category: manifest.CategoryFromPath(path)}
}

func (m Model) setStatus(text string) (tea.Model, tea.Cmd) {
	m.status = text
	m.statusID++
	id := m.statusID
	return m, tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{id: id}
	})
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
