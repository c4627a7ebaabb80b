package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/six/internal/adapters/query"
	"go.trai.ch/six/internal/core/domain"
)

func queryModel(t *testing.T) *domain.Model {
	t.Helper()
	m := domain.NewModel()
	au := &domain.Country{Code: "AU", Name: "Australia", CallingCode: "61"}
	require.NoError(t, m.World().AddCountry(au))
	require.NoError(t, m.World().AddArea(au, &domain.Area{Code: "8", Name: "SA"}))
	require.NoError(t, m.World().AddArea(au, &domain.Area{Code: "2", Name: "NSW"}))
	sa, err := m.World().LookupPlace("SA")
	require.NoError(t, err)
	nsw, err := m.World().LookupPlace("NSW")
	require.NoError(t, err)

	acme := &domain.Entity{Kind: domain.KindOrganisation, Name: "Acme", Place: sa}
	ann := &domain.Entity{
		Kind: domain.KindPerson, Name: "Ann Example", Place: sa,
		Keywords:     []string{"friend"},
		Affiliations: []domain.Affiliation{{Org: acme, Kind: domain.LinkWork}},
	}
	bob := &domain.Entity{
		Kind: domain.KindPerson, Name: "Bob Sample", Place: nsw,
		Keywords:     []string{"friend", "chess"},
		Affiliations: []domain.Affiliation{{Org: acme, Kind: domain.LinkEx}},
	}
	m.AddEntity(acme)
	m.AddEntity(ann)
	m.AddEntity(bob)
	return m
}

func names(ents []*domain.Entity) []string {
	out := make([]string, len(ents))
	for i, e := range ents {
		out[i] = e.Name
	}
	return out
}

func TestCompile_Terms(t *testing.T) {
	m := queryModel(t)
	c := query.New()

	cases := map[string]struct {
		tokens []string
		want   []string
	}{
		"name substring":   {[]string{"ann"}, []string{"Ann Example"}},
		"keyword":          {[]string{"=friend"}, []string{"Ann Example", "Bob Sample"}},
		"place":            {[]string{"in:NSW"}, []string{"Bob Sample"}},
		"work link":        {[]string{"work:Acme"}, []string{"Ann Example"}},
		"ex link":          {[]string{"ex:Acme"}, []string{"Bob Sample"}},
		"implicit and":     {[]string{"=friend", "in:SA"}, []string{"Ann Example"}},
		"explicit and":     {[]string{"=friend", "-and", "in:SA"}, []string{"Ann Example"}},
		"or":               {[]string{"in:SA", "-or", "in:NSW"}, []string{"Acme", "Ann Example", "Bob Sample"}},
		"not":              {[]string{"=friend", "-not", "=chess"}, []string{"Ann Example"}},
		"and binds tighter": {
			[]string{"=chess", "-or", "=friend", "in:SA"},
			[]string{"Ann Example", "Bob Sample"},
		},
		"parens override": {
			[]string{"(", "=chess", "-or", "=friend", ")", "in:SA"},
			[]string{"Ann Example"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			pred, err := c.Compile(m, tc.tokens)
			require.NoError(t, err)
			assert.Equal(t, tc.want, names(m.Select(pred)))
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	m := queryModel(t)
	c := query.New()

	cases := map[string]struct {
		tokens []string
		want   error
	}{
		"unknown keyword":  {[]string{"=hobby"}, domain.ErrNoSuchKeyword},
		"unknown place":    {[]string{"in:Atlantis"}, domain.ErrPlaceNotFound},
		"unknown org":      {[]string{"work:Globex"}, domain.ErrNoSuchOrganisation},
		"dangling not":     {[]string{"-not"}, domain.ErrBadArgument},
		"dangling or":      {[]string{"ann", "-or"}, domain.ErrBadArgument},
		"leading and":      {[]string{"-and", "ann"}, domain.ErrBadArgument},
		"unclosed paren":   {[]string{"(", "ann"}, domain.ErrBadArgument},
		"unopened paren":   {[]string{"ann", ")"}, domain.ErrBadArgument},
		"empty parens":     {[]string{"(", ")"}, domain.ErrBadArgument},
		"empty expression": {nil, domain.ErrBadArgument},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := c.Compile(m, tc.tokens)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
