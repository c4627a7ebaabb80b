// Package builder compiles source blocks into the domain model. It implements
// the three-phase protocol of ports.ModelBuilder: feed blocks, finish (which
// resolves forward references), finalise (release, always called).
//
// Control blocks ('%'-led) declare the world and defaults:
//
//	%country AU lang=en cc=61 ap=0 sp=1 "Australia"
//	%area ac=8 "SA" / "South Australia"
//	%default in Adelaide
//
// Data blocks declare entities. Parts are separated by delimiter lines
// consisting of a single '=' (the common part), '+' (principal member) or '-'
// (non-principal member). The first line of a part is the entity name; a
// leading "* " marks an organisation (a starred member part is a department).
// A multi-part block whose common part is unstarred defines a family. The
// remaining lines are "key value" fields: aka, in, ph, fax, mob, email, ad,
// key, com, pos, head, work, with, ex.
package builder

import (
	"strings"

	"go.trai.ch/six/internal/core/domain"
	"go.trai.ch/six/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModelBuilder = (*Builder)(nil)

// Builder accumulates blocks into a model.
type Builder struct {
	model           *domain.Model
	lastCountry     *domain.Country
	defaultPlace    *domain.Place
	defaultKeywords []string
	pending         []pendingLink
	finished        bool
	finalised       bool
}

// pendingLink is an organisation reference that could not be resolved when its
// block was parsed. Forward references are legal; they resolve in
// FinishParsing once every block has been fed.
type pendingLink struct {
	from     *domain.Entity
	kind     domain.LinkKind
	orgName  string
	position string
	line     int
}

// New returns a builder with an empty model.
func New() *Builder {
	return &Builder{model: domain.NewModel()}
}

func parseErr(msg string, line int) error {
	return zerr.With(zerr.Wrap(domain.ErrSourceInput, msg), "line", line)
}

// ParseBlock consumes one block.
func (b *Builder) ParseBlock(block domain.Block) error {
	if b.finalised || b.finished {
		return zerr.New("builder already finished")
	}
	if len(block) == 0 {
		return nil
	}
	if block.IsControl() {
		return b.parseControl(block)
	}
	return b.parseData(block)
}

// FinishParsing resolves forward references and returns the finished model.
func (b *Builder) FinishParsing() (*domain.Model, error) {
	if b.finalised || b.finished {
		return nil, zerr.New("builder already finished")
	}
	for _, p := range b.pending {
		org, err := b.model.FindOrganisation(p.orgName)
		if err != nil {
			return nil, parseErr("unresolved organisation \""+p.orgName+"\"", p.line)
		}
		p.from.Affiliations = append(p.from.Affiliations, domain.Affiliation{
			Org:      org,
			Kind:     p.kind,
			Position: p.position,
		})
	}
	b.pending = nil
	b.finished = true
	return b.model, nil
}

// Finalise releases builder state. Safe to call whether or not parsing
// succeeded; later calls are no-ops.
func (b *Builder) Finalise() {
	if b.finalised {
		return
	}
	b.finalised = true
	b.model = nil
	b.pending = nil
	b.lastCountry = nil
	b.defaultPlace = nil
	b.defaultKeywords = nil
}

// parseControl handles a block of '%'-led lines, folding continuation lines
// ("%  more text") into the preceding control.
func (b *Builder) parseControl(block domain.Block) error {
	type control struct {
		text string
		line int
	}
	var controls []control
	for _, l := range block {
		if !strings.HasPrefix(l.Text, "%") {
			return parseErr("illegal non-control line in a control block", l.Number)
		}
		text := l.Text[1:]
		if trimmed := strings.TrimLeft(text, " \t"); trimmed != text {
			if len(controls) == 0 {
				return parseErr("continuation without a preceding control line", l.Number)
			}
			controls[len(controls)-1].text += " " + trimmed
			continue
		}
		controls = append(controls, control{text: text, line: l.Number})
	}
	for _, c := range controls {
		word, rest, _ := strings.Cut(c.text, " ")
		rest = strings.TrimSpace(rest)
		var err error
		switch word {
		case "country":
			err = b.parseCountry(rest, c.line)
		case "area":
			err = b.parseArea(rest, c.line)
		case "default":
			err = b.parseDefault(rest, c.line)
		default:
			err = parseErr("unsupported control %"+word, c.line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) parseCountry(text string, line int) error {
	tokens, err := scanNameTokens(text, line)
	if err != nil {
		return err
	}
	c := &domain.Country{}
	for _, t := range tokens {
		switch {
		case t.quoted && c.Name == "":
			c.Name = t.text
		case t.quoted:
			c.FullName = t.text
		case strings.HasPrefix(t.text, "cc="):
			c.CallingCode = t.text[3:]
		case strings.HasPrefix(t.text, "ap="):
			c.AreaPrefix = t.text[3:]
		case strings.HasPrefix(t.text, "sp="):
			c.ServicePrefix = t.text[3:]
		case strings.HasPrefix(t.text, "lang="):
			// Locale handling is out of scope; accepted for compatibility.
		case t.text == "/":
			// Separates name from full name.
		case c.Code == "":
			if len(t.text) != 2 || strings.ToUpper(t.text) != t.text {
				return parseErr("invalid ISO 3166 country code \""+t.text+"\"", line)
			}
			c.Code = t.text
		default:
			return parseErr("malformed country description", line)
		}
	}
	if c.Code == "" || c.CallingCode == "" || c.Name == "" {
		return parseErr("country needs a code, cc= and a name", line)
	}
	if c.ServicePrefix != "" && c.AreaPrefix == "" {
		return parseErr("sp= without ap=", line)
	}
	if err := b.model.World().AddCountry(c); err != nil {
		return parseErr(err.Error(), line)
	}
	b.lastCountry = c
	return nil
}

func (b *Builder) parseArea(text string, line int) error {
	if b.lastCountry == nil {
		return parseErr("no preceding country definition", line)
	}
	tokens, err := scanNameTokens(text, line)
	if err != nil {
		return err
	}
	a := &domain.Area{}
	for _, t := range tokens {
		switch {
		case t.quoted && a.Name == "":
			a.Name = t.text
		case t.quoted:
			a.FullName = t.text
		case strings.HasPrefix(t.text, "ac="):
			a.Code = t.text[3:]
		case t.text == "/":
		default:
			return parseErr("malformed area description", line)
		}
	}
	if a.Code == "" || a.Name == "" {
		return parseErr("area needs ac= and a name", line)
	}
	if err := b.model.World().AddArea(b.lastCountry, a); err != nil {
		return parseErr(err.Error(), line)
	}
	return nil
}

func (b *Builder) parseDefault(text string, line int) error {
	key, value, _ := strings.Cut(text, " ")
	value = strings.TrimSpace(value)
	switch key {
	case "in":
		if value == "" {
			return parseErr("%default in: missing place or \"none\"", line)
		}
		if value == "none" {
			b.defaultPlace = nil
			return nil
		}
		place, err := b.model.World().LookupPlace(value)
		if err != nil {
			return parseErr("no such place \""+value+"\"", line)
		}
		b.defaultPlace = place
	case "key":
		b.defaultKeywords = strings.Fields(value)
	default:
		return parseErr("unsupported %default", line)
	}
	return nil
}

// nameToken is a field of a country/area definition: either a bare word or a
// quoted name.
type nameToken struct {
	text   string
	quoted bool
}

func scanNameTokens(text string, line int) ([]nameToken, error) {
	var tokens []nameToken
	for text = strings.TrimSpace(text); text != ""; text = strings.TrimLeft(text, " \t") {
		if text[0] == '"' {
			end := strings.IndexByte(text[1:], '"')
			if end < 0 {
				return nil, parseErr("unterminated quote", line)
			}
			tokens = append(tokens, nameToken{text: text[1 : end+1], quoted: true})
			text = text[end+2:]
			continue
		}
		word, rest, _ := strings.Cut(text, " ")
		tokens = append(tokens, nameToken{text: word})
		text = rest
	}
	return tokens, nil
}
