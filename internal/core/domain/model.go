package domain

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/zerr"
)

// placeCacheSize bounds the lookup memo; source files rarely define more than
// a few dozen places.
const placeCacheSize = 128

// Model is the compiled contact graph: the world of places plus every
// registered entity, in source order. A Model restored from a cache snapshot
// answers the same queries as one built fresh from the same source.
type Model struct {
	world    *World
	entities []*Entity
	keywords map[string]struct{}

	placeMemo *lru.Cache[string, *Place]
}

// NewModel returns an empty model.
func NewModel() *Model {
	memo, _ := lru.New[string, *Place](placeCacheSize)
	return &Model{
		world:     &World{},
		keywords:  make(map[string]struct{}),
		placeMemo: memo,
	}
}

// World exposes the country/area definitions for building and serialization.
func (m *Model) World() *World {
	return m.world
}

// AddEntity registers an entity. Registration order is preserved and is the
// order reports enumerate in.
func (m *Model) AddEntity(e *Entity) {
	m.entities = append(m.entities, e)
	for _, k := range e.Keywords {
		m.keywords[k] = struct{}{}
	}
}

// Entities returns all registered entities in registration order.
func (m *Model) Entities() []*Entity {
	return m.entities
}

// LookupPlace resolves a place name against the world. Successful lookups are
// memoized since reports repeat them for every entity.
func (m *Model) LookupPlace(name string) (*Place, error) {
	if p, ok := m.placeMemo.Get(name); ok {
		return p, nil
	}
	p, err := m.world.LookupPlace(name)
	if err != nil {
		return nil, err
	}
	m.placeMemo.Add(name, p)
	return p, nil
}

// Keyword checks that a keyword is used somewhere in the model.
func (m *Model) Keyword(name string) (string, error) {
	if _, ok := m.keywords[name]; ok {
		return name, nil
	}
	return "", zerr.With(ErrNoSuchKeyword, "keyword", name)
}

// FindOrganisation finds the single organisation matching text.
func (m *Model) FindOrganisation(text string) (*Entity, error) {
	var found *Entity
	for _, e := range m.entities {
		if e.Kind == KindOrganisation && e.Matches(text) {
			if found != nil {
				return nil, zerr.With(ErrAmbiguousName, "name", text)
			}
			found = e
		}
	}
	if found == nil {
		return nil, zerr.With(ErrNoSuchOrganisation, "name", text)
	}
	return found, nil
}
