package templates

import (
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is one template document as loaded from a JSON resource.
type Document = map[string]interface{}

// IdentityField is stripped from every clone before it is reused as an
// insert payload.
const IdentityField = "_id"

// Cache holds the template documents used as the basis for generated writes.
// It is not safe for concurrent mutation: Load and Clear belong to the
// single-threaded setup phases, after which the cache is read-only and may be
// shared across workers without locking.
type Cache struct {
	dir  string
	docs []Document
}

// NewCache returns an empty cache reading template files from dir.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// Load reads each named file as a JSON array of documents and appends them in
// file order. It is idempotent: once the cache holds documents, any further
// call is a no-op. A missing or malformed file fails the whole call, but
// documents appended from files already processed by the same call are kept.
func (c *Cache) Load(files []string) error {
	if len(c.docs) > 0 || len(files) == 0 {
		return nil
	}
	for _, name := range files {
		data, err := os.ReadFile(filepath.Join(c.dir, name))
		if err != nil {
			return fmt.Errorf("read template file %s: %w", name, err)
		}
		var list []Document
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("parse template file %s: %w", name, err)
		}
		c.docs = append(c.docs, list...)
	}
	return nil
}

// Len returns the number of cached documents.
func (c *Cache) Len() int {
	return len(c.docs)
}

// Empty reports whether the cache holds no documents.
func (c *Cache) Empty() bool {
	return len(c.docs) == 0
}

// Clear drops all cached documents so a later Load starts fresh.
func (c *Cache) Clear() {
	c.docs = nil
}

// CloneFirst returns a deep copy of the first cached template with the
// identity field stripped, ready to take a freshly generated key.
func (c *Cache) CloneFirst() (Document, error) {
	if len(c.docs) == 0 {
		return nil, fmt.Errorf("template cache is empty")
	}
	data, err := json.Marshal(c.docs[0])
	if err != nil {
		return nil, fmt.Errorf("clone template: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("clone template: %w", err)
	}
	delete(doc, IdentityField)
	return doc, nil
}
