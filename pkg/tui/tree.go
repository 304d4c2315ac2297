package tui

import (
	"asset-browser/pkg/browse"
	"asset-browser/pkg/models"
)

// treeRow is one visible line of the folder tree pane.
type treeRow struct {
	Label string
	Path  string
	IsDir bool
	Level int
}

// buildTreeRows flattens the manifest into the rows currently visible:
// top-level directories always, children only under expanded folders.
// Root-level files (the "." key) appear at the bottom, matching the
// manifest's ordering contract.
func buildTreeRows(m models.Manifest, state *browse.State) []treeRow {
	var rows []treeRow
	for _, key := range m.SortedKeys() {
		if key == "." {
			for _, node := range m[key] {
				rows = append(rows, treeRow{Label: node.Name, Path: node.Path, Level: 0})
			}
			continue
		}
		rows = append(rows, treeRow{Label: key, Path: "/" + key, IsDir: true, Level: 0})
		if state.Expanded("/" + key) {
			rows = appendChildren(rows, m[key], state, 1)
		}
	}
	return rows
}

func appendChildren(rows []treeRow, nodes []models.ManifestNode, state *browse.State, level int) []treeRow {
	for _, node := range nodes {
		rows = append(rows, treeRow{
			Label: node.Name,
			Path:  node.Path,
			IsDir: node.IsDir(),
			Level: level,
		})
		if node.IsDir() && state.Expanded(node.Path) {
			rows = appendChildren(rows, node.Children, state, level+1)
		}
	}
	return rows
}
