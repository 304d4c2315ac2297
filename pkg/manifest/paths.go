package manifest

import "strings"

// NormalizePath returns the canonical form of an asset path: forward
// slashes only, no leading slash. Manifest paths produced on Windows
// carry backslashes, so both are compared in this form.
func NormalizePath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	return strings.TrimPrefix(p, "/")
}

// InFolder reports whether an asset path is equal to, or nested one or
// more levels under, the folder path. The trailing-separator check keeps
// sibling folders sharing a prefix apart: "/Music2/a.mp3" is not inside
// "/Music".
func InFolder(assetPath, folderPath string) bool {
	if folderPath == "" {
		return true
	}
	asset := NormalizePath(assetPath)
	folder := NormalizePath(folderPath)
	return asset == folder || strings.HasPrefix(asset, folder+"/")
}

// SamePath compares two asset paths in normalized form.
func SamePath(a, b string) bool {
	return NormalizePath(a) == NormalizePath(b)
}

// ParentFolder returns the folder portion of an asset path, "" when the
// path has no directory component.
func ParentFolder(p string) string {
	normalized := NormalizePath(p)
	idx := strings.LastIndex(normalized, "/")
	if idx < 0 {
		return ""
	}
	return "/" + normalized[:idx]
}
