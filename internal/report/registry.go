// Package report renders query results. Each report registers itself in a
// process-wide table; the command layer looks the chosen one up by name and
// gives it a chance to contribute command-line flags before parsing.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"go.trai.ch/six/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultName is the report used when none is requested.
const DefaultName = "dump"

// RunContext carries everything a report needs to render.
type RunContext struct {
	// Out receives the rendered report.
	Out io.Writer

	// Model is the full compiled model.
	Model *domain.Model

	// Entities are the selected entities, in source order.
	Entities []*domain.Entity

	// Local is the place phone numbers render relative to; may be nil.
	Local *domain.Place
}

// Report is one output format.
type Report interface {
	// Name is the value of the --report flag selecting this report.
	Name() string

	// Synopsis is a one-line description for usage text.
	Synopsis() string

	// RegisterOptions contributes report-specific flags. Called before flag
	// parsing when this report is selected.
	RegisterOptions(fs *pflag.FlagSet)

	// Run renders the selection.
	Run(rc RunContext) error
}

var registry = map[string]Report{}

// Register adds a report to the table. Duplicate names are a programming
// error.
func Register(r Report) {
	if _, dup := registry[r.Name()]; dup {
		panic(fmt.Sprintf("report %q registered twice", r.Name()))
	}
	registry[r.Name()] = r
}

// Lookup returns the named report.
func Lookup(name string) (Report, error) {
	r, ok := registry[name]
	if !ok {
		return nil, zerr.Wrap(domain.ErrUnknownReport,
			fmt.Sprintf("no report %q, have %s", name, strings.Join(Names(), ", ")))
	}
	return r, nil
}

// Names lists the registered reports, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Summaries lists the registered reports with their synopses, for usage text.
func Summaries() []string {
	out := make([]string, 0, len(registry))
	for _, name := range Names() {
		out = append(out, name+" ("+registry[name].Synopsis()+")")
	}
	return out
}
