package report

import (
	"fmt"

	"github.com/spf13/pflag"
)

func init() {
	Register(&emailReport{})
}

// emailReport prints one RFC 5322 mailbox per line, suitable for pasting into
// a mail client. Entities without an email address are skipped silently.
type emailReport struct {
	all bool
}

func (r *emailReport) Name() string { return "email" }

func (r *emailReport) Synopsis() string { return "mailbox lines for the selected entries" }

func (r *emailReport) RegisterOptions(fs *pflag.FlagSet) {
	fs.BoolVarP(&r.all, "all", "a", false, "list every address, not just the first")
}

func (r *emailReport) Run(rc RunContext) error {
	for _, e := range rc.Entities {
		for i, m := range e.Emails {
			if i > 0 && !r.all {
				break
			}
			if _, err := fmt.Fprintln(rc.Out, m.Format(e.Name)); err != nil {
				return err
			}
		}
	}
	return nil
}
