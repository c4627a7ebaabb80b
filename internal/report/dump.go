package report

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"go.trai.ch/six/internal/core/domain"
)

func init() {
	Register(&dumpReport{})
}

// dumpReport prints every recorded detail of each selected entity, one
// indented paragraph per entity.
type dumpReport struct {
	keywords bool
}

func (r *dumpReport) Name() string { return "dump" }

func (r *dumpReport) Synopsis() string { return "full listing of every selected entry" }

func (r *dumpReport) RegisterOptions(fs *pflag.FlagSet) {
	fs.BoolVarP(&r.keywords, "keywords", "k", false, "include keywords in the listing")
}

func (r *dumpReport) Run(rc RunContext) error {
	for i, e := range rc.Entities {
		if i > 0 {
			if _, err := fmt.Fprintln(rc.Out); err != nil {
				return err
			}
		}
		if err := r.dump(rc, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *dumpReport) dump(rc RunContext, e *domain.Entity) error {
	w := rc.Out
	name := e.DisplayName()
	if e.Kind == domain.KindOrganisation {
		name = "* " + name
	}
	fmt.Fprintln(w, name)
	if e.Place != nil {
		fmt.Fprintf(w, "   in %s\n", e.Place.Name())
	}
	for _, p := range e.Phones {
		line := p.Relative(rc.Local)
		if p.Comment != "" {
			line += " (" + p.Comment + ")"
		}
		fmt.Fprintf(w, "   %-4s %s\n", p.Kind.String(), line)
	}
	for _, m := range e.Emails {
		label := ""
		if m.Label != "" {
			label = " (" + m.Label + ")"
		}
		fmt.Fprintf(w, "   email %s%s\n", m.Addr, label)
	}
	for _, a := range e.Addresses {
		fmt.Fprintf(w, "   ad %s\n", strings.Join(a.Lines, ", "))
	}
	for _, aff := range e.Affiliations {
		pos := ""
		if aff.Position != "" {
			pos = " (" + aff.Position + ")"
		}
		fmt.Fprintf(w, "   %s %s%s\n", aff.Kind, aff.Org.DisplayName(), pos)
	}
	for _, m := range e.Members {
		head := ""
		if m.Head {
			head = " (head)"
		}
		fmt.Fprintf(w, "   member %s%s\n", m.Person.DisplayName(), head)
	}
	for _, d := range e.Departments {
		fmt.Fprintf(w, "   dept %s\n", d.DisplayName())
	}
	if r.keywords && len(e.Keywords) > 0 {
		fmt.Fprintf(w, "   key %s\n", strings.Join(e.Keywords, " "))
	}
	for _, c := range e.Comments {
		fmt.Fprintf(w, "   com %s\n", c)
	}
	return nil
}
