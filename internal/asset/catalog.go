// Package asset hands out stable handles for asset paths and resolves them
// lazily into loaded values.
package asset

import "path/filepath"

// Handle identifies an asset path registered in a Catalog. The zero Handle
// refers to nothing.
type Handle struct {
	id uint32
}

// Valid reports whether h was issued by a Catalog.
func (h Handle) Valid() bool {
	return h.id != 0
}

// Catalog maps asset paths, relative to Root, to handles. Loading a path
// only records it; the bytes are read when a Cache first resolves the handle.
type Catalog struct {
	Root   string
	byPath map[string]Handle
	paths  []string
}

// NewCatalog creates a catalog rooted at root.
func NewCatalog(root string) Catalog {
	return Catalog{
		Root:   root,
		byPath: make(map[string]Handle),
	}
}

// Load returns the handle for path, registering it on first use. The same
// path always yields the same handle.
func (c *Catalog) Load(path string) Handle {
	if c.byPath == nil {
		c.byPath = make(map[string]Handle)
	}
	path = filepath.ToSlash(filepath.Clean(path))
	if h, ok := c.byPath[path]; ok {
		return h
	}
	c.paths = append(c.paths, path)
	h := Handle{id: uint32(len(c.paths))}
	c.byPath[path] = h
	return h
}

// Path returns the relative path behind h.
func (c *Catalog) Path(h Handle) (string, bool) {
	if !h.Valid() || int(h.id) > len(c.paths) {
		return "", false
	}
	return c.paths[h.id-1], true
}

// Resolve returns the path behind h joined with the catalog root.
func (c *Catalog) Resolve(h Handle) (string, bool) {
	path, ok := c.Path(h)
	if !ok {
		return "", false
	}
	return filepath.Join(c.Root, filepath.FromSlash(path)), true
}

// Len returns the number of registered paths.
func (c *Catalog) Len() int {
	return len(c.paths)
}
