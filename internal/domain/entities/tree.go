package entities

import (
	"fmt"
	"sort"
	"strings"

	"harmonystrings/internal/domain"
)

// Tree is a localization document: a nested mapping from string keys to
// either a sub-Tree or a leaf string. A Tree is built once when a catalog is
// loaded and treated as read-only afterwards.
type Tree map[string]any

// FromMap converts a freshly decoded document (map[string]any, as produced by
// the TOML decoder) into a Tree. Every leaf must be a string; any other
// scalar makes the document malformed.
func FromMap(raw map[string]any) (Tree, error) {
	tree := make(Tree, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			tree[key] = v
		case map[string]any:
			sub, err := FromMap(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			tree[key] = sub
		case Tree:
			sub, err := FromMap(map[string]any(v))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			tree[key] = sub
		default:
			return nil, fmt.Errorf("%s: leaf is %T, not string: %w", key, value, domain.ErrMalformedDocument)
		}
	}
	return tree, nil
}

// Lookup walks a dot-delimited key path ("config.step.link.description") and
// returns the leaf string it points to.
func (t Tree) Lookup(path string) (string, error) {
	return t.lookup(strings.Split(path, "."))
}

// LookupRef walks a double-colon-delimited reference path
// ("common::config_flow::data::host"), the form used inside indirection
// references.
func (t Tree) LookupRef(path string) (string, error) {
	return t.lookup(strings.Split(path, "::"))
}

func (t Tree) lookup(segments []string) (string, error) {
	node := any(t)
	for _, seg := range segments {
		sub, ok := node.(Tree)
		if !ok {
			return "", domain.ErrNotALeaf
		}
		node, ok = sub[seg]
		if !ok {
			return "", domain.ErrKeyNotFound
		}
	}
	leaf, ok := node.(string)
	if !ok {
		return "", domain.ErrNotALeaf
	}
	return leaf, nil
}

// Flatten returns every leaf keyed by its dot-delimited path.
func (t Tree) Flatten() map[string]string {
	flat := make(map[string]string)
	t.walk("", func(path, value string) {
		flat[path] = value
	})
	return flat
}

// Walk visits every leaf in sorted key order, passing the dot-delimited path
// and the leaf value.
func (t Tree) Walk(visit func(path, value string)) {
	t.walk("", visit)
}

func (t Tree) walk(prefix string, visit func(path, value string)) {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch v := t[key].(type) {
		case string:
			visit(path, v)
		case Tree:
			v.walk(path, visit)
		}
	}
}

// Clone returns a deep copy. Loaders hand out clones so the trees they hold
// stay immutable no matter what a caller does with the result.
func (t Tree) Clone() Tree {
	out := make(Tree, len(t))
	for key, value := range t {
		switch v := value.(type) {
		case Tree:
			out[key] = v.Clone()
		default:
			out[key] = v
		}
	}
	return out
}

// Merge returns a new Tree containing the top-level keys of both trees. The
// key sets must be disjoint: the component document and the common namespace
// occupy different regions of the combined key space.
func (t Tree) Merge(other Tree) (Tree, error) {
	out := t.Clone()
	for key, value := range other {
		if _, exists := out[key]; exists {
			return nil, fmt.Errorf("%s: %w", key, domain.ErrDuplicateKey)
		}
		switch v := value.(type) {
		case Tree:
			out[key] = v.Clone()
		default:
			out[key] = v
		}
	}
	return out, nil
}
