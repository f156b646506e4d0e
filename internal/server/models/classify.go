package models

import (
	"fmt"
	"strings"
)

// StorageClassification is the first segment of an object key and tells
// whether the object is still temporary or already committed.
type StorageClassification string

const (
	// Temps holds uploads that were not committed yet. An external retention
	// policy may purge them.
	Temps StorageClassification = "TEMPS"
	// Uploaded holds committed, durable objects.
	Uploaded StorageClassification = "UPLOADED"
)

// ParseClassification accepts the names case-insensitively. An empty string
// means Temps.
func ParseClassification(s string) (StorageClassification, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(Temps):
		return Temps, nil
	case string(Uploaded):
		return Uploaded, nil
	default:
		return "", fmt.Errorf("unknown classification %q", s)
	}
}

// Prefix returns "<classification>/<module>/".
func (c StorageClassification) Prefix(module string) string {
	return string(c) + "/" + module + "/"
}

// Key joins a classification, a module and a module-relative remainder.
func (c StorageClassification) Key(module, rest string) string {
	return c.Prefix(module) + rest
}

// RelocationTarget maps TEMPS/<module>/<rest> to UPLOADED/<module>/<rest>.
// It returns the destination key and <rest>, which is what the gateway's
// batch relocation expects.
func RelocationTarget(key, module string) (dst, rest string, err error) {
	prefix := Temps.Prefix(module)
	if !strings.HasPrefix(key, prefix) {
		return "", "", fmt.Errorf("key %q is not under %q", key, prefix)
	}
	rest = strings.TrimPrefix(key, prefix)
	if rest == "" {
		return "", "", fmt.Errorf("key %q has no object name", key)
	}
	return Uploaded.Key(module, rest), rest, nil
}

// BaseName returns the last path segment of a key.
func BaseName(key string) string {
	if i := strings.LastIndex(key, "/"); i >= 0 {
		return key[i+1:]
	}
	return key
}
