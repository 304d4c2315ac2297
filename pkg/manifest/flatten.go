package manifest

import (
	"strings"

	"asset-browser/pkg/models"
)

// Category buckets checked against path segments, in order. The first
// match wins; anything else falls into "Other".
var categoryBuckets = []struct {
	needle   string
	category string
}{
	{"Music", "Music"},
	{"Videos", "Videos"},
	{"Stickers", "Stickers"},
	{"Brand Kit", "Brand Kit"},
	{"Art", "Art"},
}

// CategoryFromPath derives the category tag for an asset path.
func CategoryFromPath(path string) string {
	normalized := NormalizePath(path)
	for _, bucket := range categoryBuckets {
		if strings.Contains(normalized, bucket.needle) {
			return bucket.category
		}
	}
	return "Other"
}

// FlattenAssets walks the manifest depth-first and returns every
// media-typed file node as an Asset, in manifest order. Top-level keys
// named in exclude are skipped entirely, as is the "." key: root-level
// files show up in the tree but not in the flat browsing list.
func FlattenAssets(m models.Manifest, exclude []string) []models.Asset {
	excluded := make(map[string]struct{}, len(exclude)+1)
	excluded["."] = struct{}{}
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}

	var assets []models.Asset
	for _, key := range m.SortedKeys() {
		if _, skip := excluded[key]; skip {
			continue
		}
		assets = collect(m[key], assets)
	}
	return assets
}

func collect(nodes []models.ManifestNode, assets []models.Asset) []models.Asset {
	for _, node := range nodes {
		if node.IsDir() {
			assets = collect(node.Children, assets)
			continue
		}
		if !models.IsMedia(node.Name) {
			continue
		}
		assets = append(assets, models.Asset{
			Name:     node.Name,
			Path:     node.Path,
			Category: CategoryFromPath(node.Path),
		})
	}
	return assets
}

// GroupByCategory buckets assets by their category tag, preserving
// asset order within each group.
func GroupByCategory(assets []models.Asset) []models.CategoryGroup {
	index := make(map[string]int)
	var groups []models.CategoryGroup
	for _, asset := range assets {
		i, ok := index[asset.Category]
		if !ok {
			i = len(groups)
			index[asset.Category] = i
			groups = append(groups, models.CategoryGroup{Name: asset.Category})
		}
		groups[i].Assets = append(groups[i].Assets, asset)
	}
	return groups
}
