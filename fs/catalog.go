// Package fs loads the offline documentation catalog from JSON snapshots
// on disk.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/apidoc"
	"golang.org/x/sync/singleflight"
)

// Snapshot file names inside the catalog directory.
const (
	IndexFile  = "api_index.json"
	PagesDir   = "pages"
	LookupFile = "_lookup.json"
)

// noPages is returned for namespaces without a readable page file.
var noPages = apidoc.NewPageSet(nil, nil)

// Ensure Catalog implements apidoc.PageSource at compile time.
var _ apidoc.PageSource = (*Catalog)(nil)

// Catalog is a read-only view over a catalog directory:
//
//	<dir>/api_index.json
//	<dir>/pages/_lookup.json
//	<dir>/pages/<namespace>.json
//
// The index and lookup table are read by Open. Namespace pages are loaded
// on first access and cached for the lifetime of the Catalog. Only
// namespaces backed by a page file are cached, and namespaces that do not
// map to a plain file name inside the pages directory are never read.
type Catalog struct {
	dir string

	index       *apidoc.Index
	lookup      apidoc.LookupTable
	fingerprint string

	mu    sync.RWMutex
	pages map[string]*apidoc.PageSet
	group singleflight.Group
}

// NewCatalog creates a new Catalog rooted at dir.
func NewCatalog(dir string) *Catalog {
	return &Catalog{
		dir:   dir,
		pages: make(map[string]*apidoc.PageSet),
	}
}

// Open reads the type index and the lookup table.
// Returns EUNAVAILABLE if the index file does not exist and EMALFORMED if
// a snapshot cannot be decoded.
func (c *Catalog) Open() error {
	path := filepath.Join(c.dir, IndexFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return apidoc.Errorf(apidoc.EUNAVAILABLE, "index file not found: %s", path)
	} else if err != nil {
		return fmt.Errorf("failed to read index: %w", err)
	}

	index, err := decodeIndex(data)
	if err != nil {
		return malformed(path, err)
	}

	lookup, err := c.readLookup()
	if err != nil {
		return err
	}

	c.index = index
	c.lookup = lookup
	c.fingerprint = fmt.Sprintf("%016x", xxhash.Sum64(data))
	return nil
}

// Index returns the type and namespace index read by Open.
func (c *Catalog) Index() *apidoc.Index {
	return c.index
}

// Lookup returns the identifier-to-namespace table read by Open.
func (c *Catalog) Lookup() apidoc.LookupTable {
	return c.lookup
}

// Fingerprint returns a content hash of the index snapshot.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

// Pages returns the pages of a namespace, loading them on first access.
// Concurrent first loads of the same namespace share a single read.
func (c *Catalog) Pages(ctx context.Context, namespace string) (*apidoc.PageSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if set, ok := c.cached(namespace); ok {
		return set, nil
	}

	v, err, _ := c.group.Do(namespace, func() (any, error) {
		if set, ok := c.cached(namespace); ok {
			return set, nil
		}
		set, err := c.readPages(namespace)
		if err != nil || set == noPages {
			return set, err
		}
		c.mu.Lock()
		c.pages[namespace] = set
		c.mu.Unlock()
		return set, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*apidoc.PageSet), nil
}

func (c *Catalog) cached(namespace string) (*apidoc.PageSet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	set, ok := c.pages[namespace]
	return set, ok
}

func (c *Catalog) readLookup() (apidoc.LookupTable, error) {
	path := filepath.Join(c.dir, PagesDir, LookupFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return apidoc.LookupTable{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read lookup table: %w", err)
	}

	lookup := apidoc.LookupTable{}
	if err := json.Unmarshal(data, &lookup); err != nil {
		return nil, malformed(path, err)
	}
	return lookup, nil
}

// readPages returns noPages when the namespace has no page file.
func (c *Catalog) readPages(namespace string) (*apidoc.PageSet, error) {
	name, ok := pageFile(namespace)
	if !ok {
		return noPages, nil
	}
	path := filepath.Join(c.dir, PagesDir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return noPages, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read pages of %q: %w", namespace, err)
	}

	set, err := decodePages(data)
	if err != nil {
		return nil, malformed(path, err)
	}
	return set, nil
}

// pageFile returns the page file name of namespace. It reports false when
// the name would escape the pages directory.
func pageFile(namespace string) (string, bool) {
	name := apidoc.SafeNamespaceFile(namespace) + ".json"
	if strings.ContainsAny(name, `/\`) || !filepath.IsLocal(name) {
		return "", false
	}
	return name, true
}

func malformed(path string, err error) error {
	var e *apidoc.Error
	if errors.As(err, &e) {
		return apidoc.Errorf(e.Code, "%s: %s", path, e.Message)
	}
	return apidoc.Errorf(apidoc.EMALFORMED, "%s: %v", path, err)
}

// decodeIndex decodes api_index.json keeping the order of the types and
// namespaces objects.
func decodeIndex(data []byte) (*apidoc.Index, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var types []*apidoc.TypeRecord
	var namespaces []*apidoc.NamespaceRecord
	var sawTypes, sawNamespaces bool

	err := decodeObject(dec, func(key string) error {
		switch key {
		case "types":
			sawTypes = true
			return decodeObject(dec, func(fqn string) error {
				t := &apidoc.TypeRecord{}
				if err := dec.Decode(t); err != nil {
					return fmt.Errorf("type %q: %w", fqn, err)
				}
				t.FQN = fqn
				if err := t.Validate(); err != nil {
					return err
				}
				types = append(types, t)
				return nil
			})
		case "namespaces":
			sawNamespaces = true
			return decodeObject(dec, func(name string) error {
				ns := &apidoc.NamespaceRecord{}
				if err := dec.Decode(ns); err != nil {
					return fmt.Errorf("namespace %q: %w", name, err)
				}
				ns.Name = name
				namespaces = append(namespaces, ns)
				return nil
			})
		default:
			var skip json.RawMessage
			return dec.Decode(&skip)
		}
	})
	if err != nil {
		return nil, err
	}

	if !sawTypes {
		return nil, apidoc.Errorf(apidoc.EMALFORMED, "missing \"types\" key")
	}
	if !sawNamespaces {
		return nil, apidoc.Errorf(apidoc.EMALFORMED, "missing \"namespaces\" key")
	}

	return apidoc.NewIndex(types, namespaces), nil
}

// decodePages decodes a namespace page file keeping key order.
func decodePages(data []byte) (*apidoc.PageSet, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var keys []string
	pages := make(map[string]*apidoc.PageRecord)
	err := decodeObject(dec, func(id string) error {
		p := &apidoc.PageRecord{}
		if err := dec.Decode(p); err != nil {
			return fmt.Errorf("page %q: %w", id, err)
		}
		keys = append(keys, id)
		pages[id] = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return apidoc.NewPageSet(keys, pages), nil
}

// decodeObject reads a JSON object from dec, calling fn for each key.
// fn must consume the key's value from dec.
func decodeObject(dec *json.Decoder, fn func(key string) error) error {
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		if err := fn(key); err != nil {
			return err
		}
	}
	return expectDelim(dec, '}')
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
