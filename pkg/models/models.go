package models

import "sort"

// Node types used in the manifest.
const (
	NodeFile      = "file"
	NodeDirectory = "directory"
)

// ManifestNode represents a single entry in the file manifest tree.
// Children is present exactly when Type is "directory".
type ManifestNode struct {
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	Path     string         `json:"path"`
	Children []ManifestNode `json:"children,omitempty"`
}

// IsDir reports whether the node describes a directory.
func (n ManifestNode) IsDir() bool {
	return n.Type == NodeDirectory
}

// Manifest is the document consumed at runtime: top-level directory name
// (or "." for root-level files) mapped to its nodes, directories before
// files then alphabetical at every level.
type Manifest map[string][]ManifestNode

// SortedKeys returns the manifest's top-level keys in alphabetical
// order, with the root-level "." key last. Map iteration order is not
// deterministic and the grid depends on stable asset ordering.
func (m Manifest) SortedKeys() []string {
	keys := make([]string, 0, len(m))
	hasRoot := false
	for key := range m {
		if key == "." {
			hasRoot = true
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if hasRoot {
		keys = append(keys, ".")
	}
	return keys
}

// Asset is a manifest file entry recognized as browsable media.
type Asset struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Category string `json:"category"`
}

// PlaylistEntry is one audio asset in the persistent player's playlist.
type PlaylistEntry struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	DisplayName string `json:"displayName"`
}

// CartItem is one selected asset in the zip cart, unique by path.
type CartItem struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// Index represents the gallery index page data for serve mode.
type Index struct {
	Title      string
	Categories []CategoryGroup
}

// CategoryGroup is a category with the assets that fall into it.
type CategoryGroup struct {
	Name   string
	Assets []Asset
}
