package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/six/internal/core/domain"
)

func TestModelSelect_NilPredicateSelectsAll(t *testing.T) {
	m := testModel(t)

	all := m.Select(nil)
	require.Len(t, all, 3)
	assert.Equal(t, m.Entities(), all)
}

func TestModelSelect_PredicateCombinators(t *testing.T) {
	m := testModel(t)

	isPerson := domain.Predicate(func(e *domain.Entity) bool { return e.Kind == domain.KindPerson })
	isOrg := domain.Predicate(func(e *domain.Entity) bool { return e.Kind == domain.KindOrganisation })

	assert.Len(t, m.Select(isPerson), 1)
	assert.Len(t, m.Select(isOrg), 2)
	assert.Len(t, m.Select(isPerson.Or(isOrg)), 3)
	assert.Len(t, m.Select(isPerson.And(isOrg)), 0)
	assert.Len(t, m.Select(isPerson.Not()), 2)
}

func TestModelKeyword(t *testing.T) {
	m := testModel(t)

	kw, err := m.Keyword("work")
	require.NoError(t, err)
	assert.Equal(t, "work", kw)

	_, err = m.Keyword("hobby")
	require.ErrorIs(t, err, domain.ErrNoSuchKeyword)
}

func TestModelFindOrganisation(t *testing.T) {
	m := testModel(t)

	org, err := m.FindOrganisation("acme sales")
	require.NoError(t, err)
	assert.Equal(t, "Acme Sales", org.Name)

	_, err = m.FindOrganisation("Acme")
	require.ErrorIs(t, err, domain.ErrAmbiguousName, "substring match hits both organisations")

	_, err = m.FindOrganisation("Globex")
	require.ErrorIs(t, err, domain.ErrNoSuchOrganisation)
}

func TestModelLookupPlace_Memoized(t *testing.T) {
	m := testModel(t)

	p1, err := m.LookupPlace("SA")
	require.NoError(t, err)
	p2, err := m.LookupPlace("SA")
	require.NoError(t, err)
	assert.Same(t, p1, p2)

	_, err = m.LookupPlace("Atlantis")
	require.ErrorIs(t, err, domain.ErrPlaceNotFound)
}

func TestEntityLinkedTo_ViaDepartment(t *testing.T) {
	m := testModel(t)
	ents := m.Entities()
	org, dept, person := ents[0], ents[1], ents[2]

	assert.True(t, person.LinkedTo(org, domain.LinkWork))
	assert.False(t, person.LinkedTo(org, domain.LinkEx))
	assert.False(t, person.LinkedTo(dept, domain.LinkWork))

	// Affiliation with a department also links to its parent organisation.
	person.Affiliations = []domain.Affiliation{{Org: dept, Kind: domain.LinkWork}}
	assert.True(t, person.LinkedTo(org, domain.LinkWork))
	assert.True(t, person.LinkedTo(dept, domain.LinkWork))
}
