package domain

import "strings"

// Kind is the entity type: person, organisation (or department), or family.
type Kind int

const (
	KindPerson Kind = iota + 1
	KindOrganisation
	KindFamily
)

func (k Kind) String() string {
	switch k {
	case KindPerson:
		return "person"
	case KindOrganisation:
		return "organisation"
	case KindFamily:
		return "family"
	default:
		return "unknown"
	}
}

// LinkKind is the relationship between a person and an organisation.
type LinkKind int

const (
	LinkWork LinkKind = iota + 1 // current employment
	LinkWith                     // association
	LinkEx                       // former employment
)

func (k LinkKind) String() string {
	switch k {
	case LinkWork:
		return "work"
	case LinkWith:
		return "with"
	case LinkEx:
		return "ex"
	default:
		return "unknown"
	}
}

// Email is an electronic address with an optional label.
type Email struct {
	Addr  string
	Label string
}

// Format renders the address RFC 5322 style when a display name is available.
func (e Email) Format(name string) string {
	if name == "" {
		return e.Addr
	}
	return name + " <" + e.Addr + ">"
}

// Address is a postal address, one element per written line. Place is resolved
// from the last line when it names a known country or area.
type Address struct {
	Lines []string
	Place *Place
}

// Affiliation links a person to an organisation.
type Affiliation struct {
	Org      *Entity
	Kind     LinkKind
	Position string
}

// Membership links a family to one of its people. Heads are the family's
// principal adults; a report listing a head individually suppresses the
// family's own entry.
type Membership struct {
	Person *Entity
	Head   bool
}

// Entity is one registered node of the contact graph.
type Entity struct {
	Kind      Kind
	Name      string
	Aliases   []string
	Principal bool
	Place     *Place // home place, set by the source's place context
	Keywords  []string
	Comments  []string
	Phones    []Phone
	Emails    []Email
	Addresses []Address

	Affiliations []Affiliation // person → organisations
	Members      []Membership  // family → people
	Departments  []*Entity     // organisation → departments
	Parent       *Entity       // department → organisation
}

// Matches reports whether text case-insensitively occurs in the entity's name
// or any alias.
func (e *Entity) Matches(text string) bool {
	t := strings.ToLower(text)
	if strings.Contains(strings.ToLower(e.Name), t) {
		return true
	}
	for _, a := range e.Aliases {
		if strings.Contains(strings.ToLower(a), t) {
			return true
		}
	}
	return false
}

// HasKeyword reports whether the entity is keyed with the given keyword.
func (e *Entity) HasKeyword(kw string) bool {
	for _, k := range e.Keywords {
		if strings.EqualFold(k, kw) {
			return true
		}
	}
	return false
}

// InPlace reports whether the entity's home place or any address falls within p.
func (e *Entity) InPlace(p *Place) bool {
	if p.Contains(e.Place) {
		return true
	}
	for _, a := range e.Addresses {
		if p.Contains(a.Place) {
			return true
		}
	}
	return false
}

// LinkedTo reports whether the entity has an affiliation of the given kind
// with org, directly or via one of org's departments.
func (e *Entity) LinkedTo(org *Entity, kind LinkKind) bool {
	for _, aff := range e.Affiliations {
		if aff.Kind != kind {
			continue
		}
		if aff.Org == org || aff.Org.Parent == org {
			return true
		}
	}
	return false
}

// DisplayName returns the name with aliases appended.
func (e *Entity) DisplayName() string {
	if len(e.Aliases) == 0 {
		return e.Name
	}
	return e.Name + " (" + strings.Join(e.Aliases, ", ") + ")"
}
