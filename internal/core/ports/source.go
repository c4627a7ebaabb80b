// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/six/internal/core/domain"

// SourceReader turns a source file into a sequence of logical blocks:
// comment-stripped, line-oriented, blank-line separated.
//
//go:generate go run go.uber.org/mock/mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type SourceReader interface {
	// Blocks reads the file at path and returns its blocks in file order.
	Blocks(path string) ([]domain.Block, error)
}
