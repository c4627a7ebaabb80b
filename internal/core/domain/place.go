// Package domain contains the compiled contact graph: the world of countries
// and areas, the registered entities, and the predicate and snapshot types the
// pipeline is built around.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Country is a node in the world model. CallingCode is the international
// dialing code ("61"), AreaPrefix the trunk prefix dialled before an area code
// within the country ("0"), and ServicePrefix the leading digits of numbers
// that carry no area code at all ("1" for Australian service numbers).
type Country struct {
	Code          string // ISO 3166 alpha-2
	Name          string
	FullName      string
	CallingCode   string
	AreaPrefix    string
	ServicePrefix string
	Areas         []*Area
}

// Area is a dialing area within a country.
type Area struct {
	Code     string // area code without the trunk prefix
	Name     string
	FullName string
	Country  *Country `json:"-"`
}

// Place identifies either a whole country or one area within it. It is the
// unit of "where": entity home places, address places, and the local reference
// place are all Places.
type Place struct {
	Country *Country
	Area    *Area // nil when the place is the whole country
}

// Name returns the area name if the place names an area, else the country name.
func (p *Place) Name() string {
	if p.Area != nil {
		return p.Area.Name
	}
	return p.Country.Name
}

// Contains reports whether q falls within p: a country place contains all its
// areas, an area place contains only itself.
func (p *Place) Contains(q *Place) bool {
	if p == nil || q == nil || p.Country != q.Country {
		return false
	}
	return p.Area == nil || p.Area == q.Area
}

func (c *Country) matches(name string) bool {
	return strings.EqualFold(name, c.Code) ||
		strings.EqualFold(name, c.Name) ||
		strings.EqualFold(name, c.FullName)
}

func (a *Area) matches(name string) bool {
	return strings.EqualFold(name, a.Name) || strings.EqualFold(name, a.FullName)
}

// World holds every known country and area.
type World struct {
	Countries []*Country
}

// AddCountry adds a country definition. ISO codes and calling codes must be
// unique across the world.
func (w *World) AddCountry(c *Country) error {
	for _, have := range w.Countries {
		if strings.EqualFold(have.Code, c.Code) {
			return zerr.With(ErrDuplicateCountry, "code", c.Code)
		}
		if have.CallingCode == c.CallingCode {
			return zerr.With(ErrDuplicateCountry, "calling_code", c.CallingCode)
		}
	}
	w.Countries = append(w.Countries, c)
	return nil
}

// AddArea adds an area to the given country.
func (w *World) AddArea(c *Country, a *Area) error {
	for _, have := range c.Areas {
		if strings.EqualFold(have.Name, a.Name) {
			return zerr.With(ErrDuplicateArea, "name", a.Name)
		}
		if have.Code == a.Code {
			return zerr.With(ErrDuplicateArea, "area_code", a.Code)
		}
	}
	a.Country = c
	c.Areas = append(c.Areas, a)
	return nil
}

// LookupCallingCode finds the country with the given international dialing code.
func (w *World) LookupCallingCode(cc string) (*Country, bool) {
	for _, c := range w.Countries {
		if c.CallingCode == cc {
			return c, true
		}
	}
	return nil, false
}

// LookupPlace resolves a name to a country or area place. Country matches are
// tried first, then areas across all countries. A name matching more than one
// area is ambiguous.
func (w *World) LookupPlace(name string) (*Place, error) {
	for _, c := range w.Countries {
		if c.matches(name) {
			return &Place{Country: c}, nil
		}
	}
	var found *Place
	for _, c := range w.Countries {
		for _, a := range c.Areas {
			if a.matches(name) {
				if found != nil {
					return nil, zerr.With(ErrAmbiguousName, "name", name)
				}
				found = &Place{Country: c, Area: a}
			}
		}
	}
	if found == nil {
		return nil, zerr.With(ErrPlaceNotFound, "name", name)
	}
	return found, nil
}
