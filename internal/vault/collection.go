package vault

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	errNotAnObject = errors.New("payload is not a json object")
	errEmptyField  = errors.New("payload holds an empty label or value")
)

// collection is the in-memory label to value mapping. It is the sole unit of
// encryption: it is always encoded, sealed and written as a whole.
type collection struct {
	m map[string]string
}

func newCollection() *collection {
	return &collection{m: make(map[string]string)}
}

// decodeCollection parses a decrypted payload. Anything other than a JSON
// object of non-empty string labels to non-empty string values is rejected,
// including null.
func decodeCollection(b []byte) (*collection, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errNotAnObject
	}

	c := newCollection()
	if err := json.Unmarshal(trimmed, &c.m); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	for label, value := range c.m {
		if label == "" || value == "" {
			return nil, errEmptyField
		}
	}
	return c, nil
}

// encode returns the JSON object form of the collection. Keys come out
// sorted, so equal collections encode to equal bytes.
func (c *collection) encode() ([]byte, error) {
	return json.Marshal(c.m)
}

func (c *collection) store(label, value string) {
	c.m[label] = value
}

func (c *collection) load(label string) (string, bool) {
	v, ok := c.m[label]
	return v, ok
}

func (c *collection) remove(label string) bool {
	if _, ok := c.m[label]; !ok {
		return false
	}
	delete(c.m, label)
	return true
}

func (c *collection) labels() []string {
	return slices.Sorted(maps.Keys(c.m))
}

func (c *collection) size() int {
	return len(c.m)
}

// reset drops every entry. Go strings are immutable, so the values cannot be
// wiped in place; dropping the references is all that can be done.
func (c *collection) reset() {
	clear(c.m)
}
