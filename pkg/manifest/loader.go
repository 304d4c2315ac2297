package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"asset-browser/pkg/models"
)

// Load failure kinds. Callers branch on these to render an actionable
// message (missing build artifact vs. unreachable server).
var (
	ErrNotFound    = errors.New("manifest not found")
	ErrInvalidJSON = errors.New("manifest is not valid JSON")
	ErrNetwork     = errors.New("manifest fetch failed")
)

// Load fetches and parses the manifest document. The location may be a
// local file path or an http(s) URL.
func Load(location string) (models.Manifest, error) {
	var (
		data []byte
		err  error
	)

	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		data, err = fetchHTTP(location)
	} else {
		data, err = os.ReadFile(location)
		if os.IsNotExist(err) {
			err = fmt.Errorf("%w: %s", ErrNotFound, location)
		}
	}
	if err != nil {
		return nil, err
	}

	var m models.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	if err := Validate(m); err != nil {
		return nil, err
	}
	return m, nil
}

func fetchHTTP(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrNetwork, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Validate checks the structural invariants of the manifest tree: file
// nodes never carry children, node types are known, and paths are
// unique across the whole tree. Directories without a children key are
// accepted, because an empty directory loses the key when the manifest
// is written out.
func Validate(m models.Manifest) error {
	seen := make(map[string]struct{})
	for key, nodes := range m {
		if err := validateNodes(key, nodes, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateNodes(key string, nodes []models.ManifestNode, seen map[string]struct{}) error {
	for _, node := range nodes {
		switch node.Type {
		case models.NodeDirectory:
			// A nil Children on a directory is tolerated: the children key
			// is dropped on marshal when the directory is empty, and the
			// document must survive its own round trip.
		case models.NodeFile:
			if node.Children != nil {
				return fmt.Errorf("%w: file node %q has children", ErrInvalidJSON, node.Path)
			}
		default:
			return fmt.Errorf("%w: node %q has unknown type %q", ErrInvalidJSON, node.Path, node.Type)
		}

		normalized := NormalizePath(node.Path)
		if _, dup := seen[normalized]; dup {
			return fmt.Errorf("%w: duplicate path %q", ErrInvalidJSON, node.Path)
		}
		seen[normalized] = struct{}{}

		if node.IsDir() {
			if err := validateNodes(key, node.Children, seen); err != nil {
				return err
			}
		}
	}
	return nil
}
