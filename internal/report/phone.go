package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"go.trai.ch/six/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

func init() {
	Register(&phoneReport{})
}

// phoneReport prints a compact telephone list, numbers rendered relative to
// the local place. Entities without a number are skipped silently.
type phoneReport struct {
	encoding string
}

func (r *phoneReport) Name() string { return "phone" }

func (r *phoneReport) Synopsis() string { return "telephone list for the selected entries" }

func (r *phoneReport) RegisterOptions(fs *pflag.FlagSet) {
	fs.StringVarP(&r.encoding, "encode", "e", "utf-8", "Character encoding for the rendered list")
}

func (r *phoneReport) Run(rc RunContext) error {
	out, flush, err := encodedWriter(rc.Out, r.encoding)
	if err != nil {
		return err
	}
	for _, e := range rc.Entities {
		if len(e.Phones) == 0 {
			continue
		}
		var cells []string
		for _, p := range e.Phones {
			cells = append(cells, p.Kind.String()+" "+p.Relative(rc.Local))
		}
		if _, err := fmt.Fprintf(out, "%-28s %s\n", e.DisplayName(), strings.Join(cells, "; ")); err != nil {
			return err
		}
	}
	return flush()
}

// encodedWriter wraps w so the output comes out in the named character
// encoding, with unencodable runes replaced. utf-8 passes through untouched.
func encodedWriter(w io.Writer, name string) (io.Writer, func() error, error) {
	if name == "utf-8" {
		return w, func() error { return nil }, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(domain.ErrBadArgument, "unknown output encoding"), "encoding", name)
	}
	tw := transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder()))
	return tw, tw.Close, nil
}
