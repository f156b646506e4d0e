// Package schema describes the record shapes the reconciliation engine can
// write. Each target entity kind implements RecordSchema and is registered by
// name at startup, so batches are checked against a concrete Go type rather
// than by reflecting over a model.
package schema

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
)

// RecordSchema is the capability a target entity kind provides.
type RecordSchema interface {
	// Name is the lookup key used by callers.
	Name() string
	// Table is the relational table rows of this kind live in.
	Table() string
	// FieldNames lists every field a record may carry, sorted.
	FieldNames() []string
	// Writable reports whether a field is persisted from a record. Read-only
	// fields (primary key, audit stamps) are accepted but ignored.
	Writable(field string) bool
	// Validate checks one record and returns all problems it finds.
	Validate(index int, rec models.Record) []common.FieldViolation
	// Apply copies the writable fields of rec onto dst. rec must have passed
	// Validate.
	Apply(dst *models.FileMetadata, rec models.Record) error
}

// Registry resolves schemas by name.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]RecordSchema
}

// NewRegistry returns a registry holding the given schemas. It panics on a
// duplicate name, which is a programming error.
func NewRegistry(schemas ...RecordSchema) *Registry {
	r := &Registry{schemas: make(map[string]RecordSchema, len(schemas))}
	for _, s := range schemas {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

// Default returns a registry with the built-in file storage schema.
func Default() *Registry {
	return NewRegistry(NewFileStorage(FileStorageName, FileStorageTable))
}

// Register adds a schema. Names are case-insensitive.
func (r *Registry) Register(s RecordSchema) error {
	key := strings.ToLower(s.Name())
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.schemas[key]; ok {
		return fmt.Errorf("schema %q already registered", s.Name())
	}
	r.schemas[key] = s
	return nil
}

// Lookup returns the schema registered under name or ErrSchemaResolution.
func (r *Registry) Lookup(name string) (RecordSchema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrSchemaResolution, name)
	}
	return s, nil
}

// Names lists registered schema names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.schemas))
	for _, s := range r.schemas {
		out = append(out, s.Name())
	}
	sort.Strings(out)
	return out
}
