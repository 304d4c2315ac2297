package manifest

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"asset-browser/pkg/models"
)

// Scan builds a manifest by walking the named top-level directories
// under root. Missing directories are logged and skipped. Root-level
// media files are collected under the "." key.
func Scan(root string, assetDirs []string) (models.Manifest, error) {
	m := models.Manifest{}

	for _, dir := range assetDirs {
		dirPath := filepath.Join(root, dir)
		if _, err := os.Stat(dirPath); err != nil {
			log.Printf("Directory %s not found, skipping", dir)
			continue
		}
		nodes, err := scanDirectory(dirPath, dir)
		if err != nil {
			return nil, err
		}
		m[dir] = nodes
	}

	rootFiles, err := scanRootFiles(root)
	if err != nil {
		return nil, err
	}
	if len(rootFiles) > 0 {
		m["."] = rootFiles
	}

	return m, nil
}

// scanDirectory recursively builds the node list for one directory.
// basePath is the manifest-relative path of the directory being read.
func scanDirectory(dirPath, basePath string) ([]models.ManifestNode, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	nodes := make([]models.ManifestNode, 0, len(entries))
	for _, entry := range entries {
		relative := strings.ReplaceAll(filepath.Join(basePath, entry.Name()), "\\", "/")
		if entry.IsDir() {
			children, err := scanDirectory(filepath.Join(dirPath, entry.Name()), relative)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, models.ManifestNode{
				Name:     entry.Name(),
				Type:     models.NodeDirectory,
				Path:     "/" + relative,
				Children: children,
			})
		} else {
			nodes = append(nodes, models.ManifestNode{
				Name: entry.Name(),
				Type: models.NodeFile,
				Path: "/" + relative,
			})
		}
	}

	sortNodes(nodes)
	return nodes, nil
}

func scanRootFiles(root string) ([]models.ManifestNode, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var nodes []models.ManifestNode
	for _, entry := range entries {
		if entry.IsDir() || !models.IsMedia(entry.Name()) {
			continue
		}
		nodes = append(nodes, models.ManifestNode{
			Name: entry.Name(),
			Type: models.NodeFile,
			Path: "/" + entry.Name(),
		})
	}

	sortNodes(nodes)
	return nodes, nil
}

// sortNodes orders directories before files, then alphabetically. The
// grid inherits this ordering from the manifest, so it has to be stable.
func sortNodes(nodes []models.ManifestNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].IsDir() != nodes[j].IsDir() {
			return nodes[i].IsDir()
		}
		return strings.ToLower(nodes[i].Name) < strings.ToLower(nodes[j].Name)
	})
}
