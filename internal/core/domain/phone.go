package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// PhoneKind distinguishes the contact methods a number serves.
type PhoneKind int

const (
	PhoneFixed PhoneKind = iota
	PhoneMobile
	PhoneFax
)

// String returns the source-file field name for the kind.
func (k PhoneKind) String() string {
	switch k {
	case PhoneMobile:
		return "mob"
	case PhoneFax:
		return "fax"
	default:
		return "ph"
	}
}

// Phone is a telephone number normalised to country + optional area code +
// local digits. Mobile and service numbers carry no area code; their local
// part is already complete within the country.
type Phone struct {
	Kind     PhoneKind
	Country  *Country
	AreaCode string
	Local    string
	Comment  string
}

var phonePattern = regexp.MustCompile(`^(?:\+(\d+) )?(?:(\d+) )?(\d+(?:-\d+)*)`)

// ParsePhone parses a written number of the form "+CC AC LOCAL", "0AC LOCAL"
// or "LOCAL", with an optional trailing comment. The context place supplies
// the country (and default area) when the number omits them.
func ParsePhone(w *World, kind PhoneKind, text string, context *Place) (Phone, error) {
	m := phonePattern.FindStringSubmatch(text)
	if m == nil || m[3] == "" {
		return Phone{}, zerr.With(zerr.New("malformed telephone number"), "text", text)
	}
	ccode, acode, local := m[1], m[2], m[3]
	comment := strings.TrimSpace(text[len(m[0]):])

	var country *Country
	if ccode == "" {
		if context == nil {
			return Phone{}, zerr.With(zerr.New("missing country code"), "text", text)
		}
		country = context.Country
	} else {
		var ok bool
		if country, ok = w.LookupCallingCode(ccode); !ok {
			return Phone{}, zerr.With(zerr.New("unknown country code"), "code", ccode)
		}
	}

	switch {
	case country.AreaPrefix == "":
		if acode != "" {
			return Phone{}, zerr.With(zerr.New("country does not have area codes"), "country", country.Name)
		}
	case acode != "":
		sp := country.ServicePrefix
		if sp != "" && (strings.HasPrefix(acode, sp) || strings.HasPrefix(local, sp)) {
			return Phone{}, zerr.With(zerr.New("number cannot start with service prefix"), "text", text)
		}
		if ccode == "" {
			// Written domestically, the area code carries the trunk prefix.
			if !strings.HasPrefix(acode, country.AreaPrefix) {
				return Phone{}, zerr.With(zerr.New("missing area prefix"), "text", text)
			}
			acode = acode[len(country.AreaPrefix):]
			if acode == "" {
				return Phone{}, zerr.With(zerr.New("missing area code"), "text", text)
			}
		} else if strings.HasPrefix(acode, country.AreaPrefix) {
			return Phone{}, zerr.With(zerr.New("area prefix not permitted after country code"), "text", text)
		}
	case ccode != "":
		// "+CC LOCAL": mobiles and service numbers embed any routing digits.
	case strings.HasPrefix(local, country.AreaPrefix):
		local = local[len(country.AreaPrefix):]
	case country.ServicePrefix != "" && strings.HasPrefix(local, country.ServicePrefix):
		// Service number, complete as written.
	case context != nil && context.Area != nil:
		acode = context.Area.Code
	default:
		return Phone{}, zerr.With(zerr.New("missing area code"), "text", text)
	}

	return Phone{Kind: kind, Country: country, AreaCode: acode, Local: local, Comment: comment}, nil
}

// Absolute renders the number in full international form.
func (p Phone) Absolute() string {
	parts := []string{"+" + p.Country.CallingCode}
	if p.AreaCode != "" {
		parts = append(parts, p.AreaCode)
	}
	return strings.Join(append(parts, p.Local), " ")
}

// Relative renders the number as dialled from the given place: local digits
// only within the same area, trunk-prefixed within the same country, full
// international form otherwise.
func (p Phone) Relative(local *Place) string {
	if local == nil || local.Country != p.Country {
		return p.Absolute()
	}
	if p.AreaCode != "" {
		if local.Area == nil || local.Area.Code != p.AreaCode {
			return p.Country.AreaPrefix + p.AreaCode + " " + p.Local
		}
		return p.Local
	}
	if p.Country.AreaPrefix != "" &&
		!(p.Country.ServicePrefix != "" && strings.HasPrefix(p.Local, p.Country.ServicePrefix)) {
		return p.Country.AreaPrefix + p.Local
	}
	return p.Local
}
