package viz

import "github.com/pkg/errors"

// ErrKeyNotFound is returned when a detection refers to a class id the class map
// does not contain.
var ErrKeyNotFound = errors.New("class id not found")

// ClassMap maps class ids to human readable labels. Ids need not be contiguous.
type ClassMap map[int]string

// NewClassMap builds a class map where names[i] is the label of class i.
func NewClassMap(names ...string) ClassMap {
	m := make(ClassMap, len(names))
	for i, name := range names {
		m[i] = name
	}
	return m
}

// Lookup returns the label of class id.
func (m ClassMap) Lookup(id int) (string, error) {
	label, ok := m[id]
	if !ok {
		return "", errors.Wrapf(ErrKeyNotFound, "class %d", id)
	}
	return label, nil
}
