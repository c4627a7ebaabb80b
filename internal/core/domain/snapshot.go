package domain

import "go.trai.ch/zerr"

// Snapshot is the flat, serialization-friendly form of a Model. Entities refer
// to each other by index and to places by country/area code, so encoding is a
// single pass over slices without graph recursion.
type Snapshot struct {
	Countries []CountrySnap `json:"countries"`
	Entities  []EntitySnap  `json:"entities"`
}

// CountrySnap mirrors Country with nested areas.
type CountrySnap struct {
	Code          string     `json:"code"`
	Name          string     `json:"name"`
	FullName      string     `json:"full_name,omitempty"`
	CallingCode   string     `json:"cc"`
	AreaPrefix    string     `json:"ap,omitempty"`
	ServicePrefix string     `json:"sp,omitempty"`
	Areas         []AreaSnap `json:"areas,omitempty"`
}

// AreaSnap mirrors Area without the country back-reference.
type AreaSnap struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	FullName string `json:"full_name,omitempty"`
}

// PlaceRef names a place by codes; empty Area means the whole country.
type PlaceRef struct {
	Country string `json:"country"`
	Area    string `json:"area,omitempty"`
}

// PhoneSnap mirrors Phone with the country by code.
type PhoneSnap struct {
	Kind    int    `json:"kind"`
	Country string `json:"country"`
	Area    string `json:"area,omitempty"`
	Local   string `json:"local"`
	Comment string `json:"comment,omitempty"`
}

// EmailSnap mirrors Email.
type EmailSnap struct {
	Addr  string `json:"addr"`
	Label string `json:"label,omitempty"`
}

// AddressSnap mirrors Address.
type AddressSnap struct {
	Lines []string  `json:"lines"`
	Place *PlaceRef `json:"place,omitempty"`
}

// AffiliationSnap links to the organisation by entity index.
type AffiliationSnap struct {
	Org      int    `json:"org"`
	Kind     int    `json:"kind"`
	Position string `json:"position,omitempty"`
}

// MembershipSnap links to the person by entity index.
type MembershipSnap struct {
	Person int  `json:"person"`
	Head   bool `json:"head,omitempty"`
}

// EntitySnap mirrors Entity with index-based links. Parent is -1 for
// top-level entities.
type EntitySnap struct {
	Kind         int               `json:"kind"`
	Name         string            `json:"name"`
	Aliases      []string          `json:"aliases,omitempty"`
	Principal    bool              `json:"principal,omitempty"`
	Place        *PlaceRef         `json:"place,omitempty"`
	Keywords     []string          `json:"keywords,omitempty"`
	Comments     []string          `json:"comments,omitempty"`
	Phones       []PhoneSnap       `json:"phones,omitempty"`
	Emails       []EmailSnap       `json:"emails,omitempty"`
	Addresses    []AddressSnap     `json:"addresses,omitempty"`
	Affiliations []AffiliationSnap `json:"affiliations,omitempty"`
	Members      []MembershipSnap  `json:"members,omitempty"`
	Departments  []int             `json:"departments,omitempty"`
	Parent       int               `json:"parent"`
}

// Snapshot flattens the model.
func (m *Model) Snapshot() *Snapshot {
	index := make(map[*Entity]int, len(m.entities))
	for i, e := range m.entities {
		index[e] = i
	}

	s := &Snapshot{}
	for _, c := range m.world.Countries {
		cs := CountrySnap{
			Code:          c.Code,
			Name:          c.Name,
			FullName:      c.FullName,
			CallingCode:   c.CallingCode,
			AreaPrefix:    c.AreaPrefix,
			ServicePrefix: c.ServicePrefix,
		}
		for _, a := range c.Areas {
			cs.Areas = append(cs.Areas, AreaSnap{Code: a.Code, Name: a.Name, FullName: a.FullName})
		}
		s.Countries = append(s.Countries, cs)
	}

	for _, e := range m.entities {
		es := EntitySnap{
			Kind:      int(e.Kind),
			Name:      e.Name,
			Aliases:   e.Aliases,
			Principal: e.Principal,
			Place:     placeRef(e.Place),
			Keywords:  e.Keywords,
			Comments:  e.Comments,
			Parent:    -1,
		}
		for _, p := range e.Phones {
			es.Phones = append(es.Phones, PhoneSnap{
				Kind:    int(p.Kind),
				Country: p.Country.Code,
				Area:    p.AreaCode,
				Local:   p.Local,
				Comment: p.Comment,
			})
		}
		for _, em := range e.Emails {
			es.Emails = append(es.Emails, EmailSnap{Addr: em.Addr, Label: em.Label})
		}
		for _, a := range e.Addresses {
			es.Addresses = append(es.Addresses, AddressSnap{Lines: a.Lines, Place: placeRef(a.Place)})
		}
		for _, aff := range e.Affiliations {
			es.Affiliations = append(es.Affiliations, AffiliationSnap{
				Org:      index[aff.Org],
				Kind:     int(aff.Kind),
				Position: aff.Position,
			})
		}
		for _, mb := range e.Members {
			es.Members = append(es.Members, MembershipSnap{Person: index[mb.Person], Head: mb.Head})
		}
		for _, d := range e.Departments {
			es.Departments = append(es.Departments, index[d])
		}
		if e.Parent != nil {
			es.Parent = index[e.Parent]
		}
		s.Entities = append(s.Entities, es)
	}
	return s
}

// ModelFromSnapshot rebuilds a model from its flat form. Any dangling index or
// unknown code yields ErrSnapshotInvalid; callers treat that as corruption.
func ModelFromSnapshot(s *Snapshot) (*Model, error) {
	m := NewModel()
	for _, cs := range s.Countries {
		c := &Country{
			Code:          cs.Code,
			Name:          cs.Name,
			FullName:      cs.FullName,
			CallingCode:   cs.CallingCode,
			AreaPrefix:    cs.AreaPrefix,
			ServicePrefix: cs.ServicePrefix,
		}
		if err := m.world.AddCountry(c); err != nil {
			return nil, zerr.Wrap(ErrSnapshotInvalid, err.Error())
		}
		for _, as := range cs.Areas {
			a := &Area{Code: as.Code, Name: as.Name, FullName: as.FullName}
			if err := m.world.AddArea(c, a); err != nil {
				return nil, zerr.Wrap(ErrSnapshotInvalid, err.Error())
			}
		}
	}

	entities := make([]*Entity, len(s.Entities))
	for i := range s.Entities {
		entities[i] = &Entity{}
	}
	ref := func(i int) (*Entity, error) {
		if i < 0 || i >= len(entities) {
			return nil, zerr.With(ErrSnapshotInvalid, "entity_index", i)
		}
		return entities[i], nil
	}

	for i, es := range s.Entities {
		e := entities[i]
		e.Kind = Kind(es.Kind)
		e.Name = es.Name
		e.Aliases = es.Aliases
		e.Principal = es.Principal
		e.Keywords = es.Keywords
		e.Comments = es.Comments

		var err error
		if e.Place, err = m.resolveRef(es.Place); err != nil {
			return nil, err
		}
		for _, ps := range es.Phones {
			country, ok := findCountry(m.world, ps.Country)
			if !ok {
				return nil, zerr.With(ErrSnapshotInvalid, "country", ps.Country)
			}
			e.Phones = append(e.Phones, Phone{
				Kind:     PhoneKind(ps.Kind),
				Country:  country,
				AreaCode: ps.Area,
				Local:    ps.Local,
				Comment:  ps.Comment,
			})
		}
		for _, ems := range es.Emails {
			e.Emails = append(e.Emails, Email{Addr: ems.Addr, Label: ems.Label})
		}
		for _, as := range es.Addresses {
			place, err := m.resolveRef(as.Place)
			if err != nil {
				return nil, err
			}
			e.Addresses = append(e.Addresses, Address{Lines: as.Lines, Place: place})
		}
		for _, affs := range es.Affiliations {
			org, err := ref(affs.Org)
			if err != nil {
				return nil, err
			}
			e.Affiliations = append(e.Affiliations, Affiliation{
				Org:      org,
				Kind:     LinkKind(affs.Kind),
				Position: affs.Position,
			})
		}
		for _, ms := range es.Members {
			person, err := ref(ms.Person)
			if err != nil {
				return nil, err
			}
			e.Members = append(e.Members, Membership{Person: person, Head: ms.Head})
		}
		for _, di := range es.Departments {
			dept, err := ref(di)
			if err != nil {
				return nil, err
			}
			e.Departments = append(e.Departments, dept)
		}
		if es.Parent >= 0 {
			if e.Parent, err = ref(es.Parent); err != nil {
				return nil, err
			}
		}
		m.AddEntity(e)
	}
	return m, nil
}

func placeRef(p *Place) *PlaceRef {
	if p == nil {
		return nil
	}
	r := &PlaceRef{Country: p.Country.Code}
	if p.Area != nil {
		r.Area = p.Area.Code
	}
	return r
}

func (m *Model) resolveRef(r *PlaceRef) (*Place, error) {
	if r == nil {
		return nil, nil
	}
	c, ok := findCountry(m.world, r.Country)
	if !ok {
		return nil, zerr.With(ErrSnapshotInvalid, "country", r.Country)
	}
	if r.Area == "" {
		return &Place{Country: c}, nil
	}
	for _, a := range c.Areas {
		if a.Code == r.Area {
			return &Place{Country: c, Area: a}, nil
		}
	}
	return nil, zerr.With(ErrSnapshotInvalid, "area", r.Area)
}

func findCountry(w *World, code string) (*Country, bool) {
	for _, c := range w.Countries {
		if c.Code == code {
			return c, true
		}
	}
	return nil, false
}
