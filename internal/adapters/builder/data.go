package builder

import (
	"strings"

	"go.trai.ch/six/internal/core/domain"
)

// part is one delimited section of a data block.
type part struct {
	delim   byte // 0 for the implicit first part
	name    string
	starred bool // "* Name" marks an organisation
	line    int
	fields  []field
}

type field struct {
	key   string
	value string
	line  int
}

var knownFields = map[string]bool{
	"aka": true, "in": true, "ph": true, "fax": true, "mob": true,
	"email": true, "ad": true, "key": true, "com": true, "pos": true,
	"head": true, "work": true, "with": true, "ex": true,
}

func splitParts(block domain.Block) ([]*part, error) {
	var parts []*part
	current := &part{}
	for _, l := range block {
		trimmed := strings.TrimSpace(l.Text)
		if len(trimmed) == 1 && strings.ContainsAny(trimmed, "=+-") {
			if current.name != "" || len(current.fields) > 0 {
				parts = append(parts, current)
			} else if current.delim != 0 {
				return nil, parseErr("empty part", l.Number)
			}
			current = &part{delim: trimmed[0], line: l.Number}
			continue
		}
		if current.name == "" {
			name := trimmed
			if strings.HasPrefix(name, "* ") {
				current.starred = true
				name = strings.TrimSpace(name[2:])
			}
			if name == "" {
				return nil, parseErr("missing name", l.Number)
			}
			current.name = name
			current.line = l.Number
			continue
		}
		key, value, _ := strings.Cut(trimmed, " ")
		if !knownFields[key] {
			return nil, parseErr("unknown field \""+key+"\"", l.Number)
		}
		current.fields = append(current.fields, field{key: key, value: strings.TrimSpace(value), line: l.Number})
	}
	if current.name == "" && len(current.fields) == 0 {
		if current.delim != 0 {
			return nil, parseErr("empty part", current.line)
		}
	} else {
		parts = append(parts, current)
	}
	return parts, nil
}

// parseData assembles the entities defined by one data block. A single part is
// a person or (starred) an organisation. Multiple parts: the '='-delimited
// common part is the organisation (starred) or family (unstarred); the
// remaining parts are its people, or its departments when starred.
func (b *Builder) parseData(block domain.Block) error {
	parts, err := splitParts(block)
	if err != nil {
		return err
	}
	if len(parts) == 1 {
		p := parts[0]
		kind := domain.KindPerson
		if p.starred {
			kind = domain.KindOrganisation
		}
		_, err := b.buildEntity(p, kind, p.delim != '-')
		return err
	}

	var common *part
	var members []*part
	for _, p := range parts {
		if p.delim == '=' {
			if common != nil {
				return parseErr("duplicate \"=\" part", p.line)
			}
			common = p
			continue
		}
		members = append(members, p)
	}
	if common == nil {
		return parseErr("missing \"=\" part", parts[0].line)
	}

	if common.starred {
		return b.buildOrganisation(common, members)
	}
	return b.buildFamily(common, members)
}

func (b *Builder) buildOrganisation(common *part, members []*part) error {
	org, err := b.buildEntity(common, domain.KindOrganisation, true)
	if err != nil {
		return err
	}
	for _, m := range members {
		if m.starred {
			dept, err := b.buildEntity(m, domain.KindOrganisation, false)
			if err != nil {
				return err
			}
			dept.Parent = org
			org.Departments = append(org.Departments, dept)
			continue
		}
		person, err := b.buildEntity(m, domain.KindPerson, m.delim == '+')
		if err != nil {
			return err
		}
		person.Affiliations = append(person.Affiliations, domain.Affiliation{
			Org:      org,
			Kind:     domain.LinkWork,
			Position: position(m),
		})
	}
	return nil
}

func (b *Builder) buildFamily(common *part, members []*part) error {
	if len(members) < 2 {
		return parseErr("a family needs at least two people", common.line)
	}
	family, err := b.buildEntity(common, domain.KindFamily, true)
	if err != nil {
		return err
	}
	for _, m := range members {
		if m.starred {
			return parseErr("organisation part in a family block", m.line)
		}
		person, err := b.buildEntity(m, domain.KindPerson, m.delim == '+')
		if err != nil {
			return err
		}
		// Heads are the '+'-delimited people; "head" marks one explicitly.
		family.Members = append(family.Members, domain.Membership{
			Person: person,
			Head:   m.delim == '+' || hasFlag(m, "head"),
		})
	}
	return nil
}

// buildEntity creates and registers one entity from a part's fields.
func (b *Builder) buildEntity(p *part, kind domain.Kind, principal bool) (*domain.Entity, error) {
	e := &domain.Entity{
		Kind:      kind,
		Name:      p.name,
		Principal: principal,
		Keywords:  append([]string(nil), b.defaultKeywords...),
	}

	// The place context must be known before phone numbers are parsed.
	for _, f := range p.fields {
		if f.key == "in" {
			place, err := b.model.World().LookupPlace(f.value)
			if err != nil {
				return nil, parseErr("no such place \""+f.value+"\"", f.line)
			}
			e.Place = place
		}
	}
	if e.Place == nil {
		e.Place = b.defaultPlace
	}

	for _, f := range p.fields {
		var err error
		switch f.key {
		case "in", "pos", "head":
			// Handled elsewhere.
		case "aka":
			e.Aliases = append(e.Aliases, f.value)
		case "ph":
			err = b.addPhone(e, domain.PhoneFixed, f)
		case "fax":
			err = b.addPhone(e, domain.PhoneFax, f)
		case "mob":
			err = b.addPhone(e, domain.PhoneMobile, f)
		case "email":
			addr, label, _ := strings.Cut(f.value, " ")
			if !strings.Contains(addr, "@") {
				return nil, parseErr("malformed email address \""+addr+"\"", f.line)
			}
			e.Emails = append(e.Emails, domain.Email{Addr: addr, Label: strings.TrimSpace(label)})
		case "ad":
			e.Addresses = append(e.Addresses, b.parseAddress(f.value))
		case "key":
			e.Keywords = append(e.Keywords, strings.Fields(f.value)...)
		case "com":
			e.Comments = append(e.Comments, f.value)
		case "work", "with", "ex":
			b.pending = append(b.pending, pendingLink{
				from:     e,
				kind:     linkKind(f.key),
				orgName:  f.value,
				position: position(p),
				line:     f.line,
			})
		}
		if err != nil {
			return nil, err
		}
	}
	b.model.AddEntity(e)
	return e, nil
}

func (b *Builder) addPhone(e *domain.Entity, kind domain.PhoneKind, f field) error {
	context := e.Place
	if context == nil {
		context = b.defaultPlace
	}
	phone, err := domain.ParsePhone(b.model.World(), kind, f.value, context)
	if err != nil {
		return parseErr(err.Error(), f.line)
	}
	e.Phones = append(e.Phones, phone)
	return nil
}

// parseAddress splits an address on ';' into written lines. When the last
// line names a known place, the address is located there.
func (b *Builder) parseAddress(value string) domain.Address {
	var lines []string
	for _, seg := range strings.Split(value, ";") {
		if seg = strings.TrimSpace(seg); seg != "" {
			lines = append(lines, seg)
		}
	}
	a := domain.Address{Lines: lines}
	if len(lines) > 0 {
		if place, err := b.model.World().LookupPlace(lines[len(lines)-1]); err == nil {
			a.Place = place
		}
	}
	return a
}

func linkKind(key string) domain.LinkKind {
	switch key {
	case "with":
		return domain.LinkWith
	case "ex":
		return domain.LinkEx
	default:
		return domain.LinkWork
	}
}

func position(p *part) string {
	for _, f := range p.fields {
		if f.key == "pos" {
			return f.value
		}
	}
	return ""
}

func hasFlag(p *part, key string) bool {
	for _, f := range p.fields {
		if f.key == key {
			return true
		}
	}
	return false
}
