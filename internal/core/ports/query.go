package ports

import "go.trai.ch/six/internal/core/domain"

// PredicateCompiler compiles a user-supplied query expression against a model
// into a reusable selection predicate.
//
//go:generate go run go.uber.org/mock/mockgen -source=query.go -destination=mocks/mock_query.go -package=mocks
type PredicateCompiler interface {
	// Compile parses tokens against model. tokens must be non-empty; the
	// zero-token "select all" case is decided by the caller.
	Compile(model *domain.Model, tokens []string) (domain.Predicate, error)
}
