// Package browse holds the view-state machine for the asset browser:
// which view is active, which folder scopes the grid, the search query,
// and the pagination cursor. The display layer renders from this state
// and never mutates it directly.
package browse

import (
	"strings"

	"asset-browser/pkg/manifest"
	"asset-browser/pkg/models"
)

// Mode identifies the active view.
type Mode int

const (
	ModePreview Mode = iota
	ModeGrid
)

// Snapshot captures the restorable portion of the view state when
// entering preview, enabling a single-level back action.
type Snapshot struct {
	Mode          Mode
	FolderContext string
	SearchQuery   string
}

// State is the view-state machine. FolderContext == "" means all
// assets, unfiltered by folder.
type State struct {
	mode          Mode
	folderContext string
	searchQuery   string
	page          int

	expanded   map[string]bool
	activePath string // last selected asset, for best-effort back
	previous   *Snapshot
}

// New returns a view state in preview mode with no folder context.
func New() *State {
	return &State{
		mode:     ModePreview,
		page:     1,
		expanded: make(map[string]bool),
	}
}

// Mode returns the active view mode.
func (s *State) Mode() Mode { return s.mode }

// FolderContext returns the active folder path, "" when unfiltered.
func (s *State) FolderContext() string { return s.folderContext }

// SearchQuery returns the current search query.
func (s *State) SearchQuery() string { return s.searchQuery }

// Page returns the 1-based pagination cursor.
func (s *State) Page() int { return s.page }

// ActivePath returns the most recently selected asset path.
func (s *State) ActivePath() string { return s.activePath }

// Expanded reports whether a folder is currently expanded in the tree.
func (s *State) Expanded(path string) bool {
	return s.expanded[manifest.NormalizePath(path)]
}

// SelectFolder activates a folder as the grid context and expands it in
// the tree. Selecting a folder that is already expanded collapses it
// instead: its descendants leave the expanded set and the context
// contracts to the nearest still-expanded ancestor, or to all assets.
func (s *State) SelectFolder(path string) {
	key := manifest.NormalizePath(path)

	if s.expanded[key] {
		s.collapse(key)
		return
	}

	s.expanded[key] = true
	s.folderContext = path
	s.mode = ModeGrid
	s.page = 1
}

func (s *State) collapse(key string) {
	for expanded := range s.expanded {
		if expanded == key || strings.HasPrefix(expanded, key+"/") {
			delete(s.expanded, expanded)
		}
	}

	// The context only contracts when it pointed into the collapsed
	// branch; collapsing an unrelated folder leaves it alone.
	if !manifest.InFolder(s.folderContext, "/"+key) {
		return
	}

	s.folderContext = s.nearestExpandedAncestor(key)
	s.page = 1
}

func (s *State) nearestExpandedAncestor(key string) string {
	for key != "" {
		idx := strings.LastIndex(key, "/")
		if idx < 0 {
			return ""
		}
		key = key[:idx]
		if s.expanded[key] {
			return "/" + key
		}
	}
	return ""
}

// Search sets the query. A non-empty query forces the grid view;
// clearing the query keeps whatever view is active. The page resets
// either way.
func (s *State) Search(query string) {
	s.searchQuery = query
	if strings.TrimSpace(query) != "" {
		s.mode = ModeGrid
	}
	s.page = 1
}

// SelectAsset transitions into preview for the given asset and returns
// true. Audio assets are the deliberate exception: they return false so
// the caller hands them to the persistent player, and the view state is
// left untouched.
func (s *State) SelectAsset(asset models.Asset) bool {
	if asset.IsAudio() {
		return false
	}

	prev := Snapshot{
		Mode:          s.mode,
		FolderContext: s.folderContext,
		SearchQuery:   s.searchQuery,
	}
	// Selecting while already previewing must not record a preview to
	// return to; back from a chained select lands on the grid.
	if prev.Mode == ModePreview {
		prev.Mode = ModeGrid
	}
	s.previous = &prev
	s.mode = ModePreview
	s.activePath = asset.Path
	return true
}

// Back restores the snapshot captured on the last preview entry and
// clears it. Without a snapshot it derives a folder context from the
// active asset's parent folder and falls back to the unfiltered grid.
func (s *State) Back() {
	if s.previous != nil {
		s.mode = s.previous.Mode
		s.folderContext = s.previous.FolderContext
		s.searchQuery = s.previous.SearchQuery
		s.previous = nil
		return
	}

	s.mode = ModeGrid
	s.folderContext = ""
	if s.activePath != "" {
		s.folderContext = manifest.ParentFolder(s.activePath)
	}
	s.page = 1
}

// NextPage advances the pagination cursor.
func (s *State) NextPage() {
	s.page++
}

// VisibleAssets derives the asset subset for the current folder context
// and search query. Ordering is the stable input order; no re-sort.
func (s *State) VisibleAssets(all []models.Asset) []models.Asset {
	visible := all
	if s.folderContext != "" {
		visible = filterFolder(visible, s.folderContext)
	}

	query := strings.ToLower(strings.TrimSpace(s.searchQuery))
	if query != "" {
		visible = filterSearch(visible, query)
	}
	return visible
}

func filterFolder(assets []models.Asset, folder string) []models.Asset {
	out := make([]models.Asset, 0, len(assets))
	for _, asset := range assets {
		if manifest.InFolder(asset.Path, folder) {
			out = append(out, asset)
		}
	}
	return out
}

func filterSearch(assets []models.Asset, query string) []models.Asset {
	out := make([]models.Asset, 0, len(assets))
	for _, asset := range assets {
		if strings.Contains(strings.ToLower(asset.Name), query) ||
			strings.Contains(strings.ToLower(asset.Path), query) {
			out = append(out, asset)
		}
	}
	return out
}
