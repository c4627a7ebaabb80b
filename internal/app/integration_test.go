package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/six/internal/adapters/builder"
	"go.trai.ch/six/internal/adapters/cache"
	"go.trai.ch/six/internal/adapters/query"
	"go.trai.ch/six/internal/adapters/source"
	"go.trai.ch/six/internal/app"
	"go.trai.ch/six/internal/core/domain"
	"go.trai.ch/six/internal/core/ports"
	"go.trai.ch/six/internal/core/ports/mocks"
	"go.trai.ch/six/internal/report"
	"go.uber.org/mock/gomock"
)

const springfieldSource = `%country AU cc=61 ap=0 sp=1 "Australia"
%area ac=8 "SA" / "South Australia"
%area ac=2 "NSW" / "New South Wales"
%default in SA

Homer Simpson
pos safety inspector
ph 8555-1234
email homer@example.com
=
* Springfield Power Plant
ph 8123-4567
key employer
-
Waylon Smithers
email smithers@example.com

Marge Simpson
email marge@example.com
=
The Simpsons
-
Bart Simpson
`

type rebuildCounter struct {
	builds int
}

func (f *rebuildCounter) NewBuilder() ports.ModelBuilder {
	f.builds++
	return builder.New()
}

func realApp(t *testing.T, counter *rebuildCounter) *app.App {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	settings := mocks.NewMockSettingsLoader(ctrl)
	settings.EXPECT().Load().Return(&domain.Settings{}, nil).AnyTimes()

	return app.New(settings, cache.New(&source.Reader{}, counter, log), query.New(), log)
}

func TestRun_EndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts")
	require.NoError(t, os.WriteFile(path, []byte(springfieldSource), 0o600))
	t.Setenv("SIX_SOURCE", path)
	t.Setenv("SIX_LOCAL", "")

	counter := &rebuildCounter{}
	a := realApp(t, counter)

	dump, err := report.Lookup("dump")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = a.Run(context.Background(), app.Request{
		Report: dump,
		Local:  "SA",
		Out:    &buf,
		Query:  []string{"simpson"},
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Homer Simpson")
	assert.Contains(t, out, "Marge Simpson")
	assert.Contains(t, out, "ph   8555-1234", "local place renders same-area numbers short")
	assert.Contains(t, out, "work Springfield Power Plant (safety inspector)")
	assert.NotContains(t, out, "Waylon")
	assert.Equal(t, 1, counter.builds)

	// Second run hits the snapshot and still answers structural queries.
	buf.Reset()
	err = a.Run(context.Background(), app.Request{
		Report: dump,
		Out:    &buf,
		Query:  []string{"work:Power", "-or", "=employer"},
	})
	require.NoError(t, err)
	out = buf.String()
	assert.Contains(t, out, "* Springfield Power Plant")
	assert.Contains(t, out, "Homer Simpson")
	assert.NotContains(t, out, "Marge")
	assert.Equal(t, 1, counter.builds, "the snapshot must be reused")

	// Forced rebuild through the email report.
	email, err := report.Lookup("email")
	require.NoError(t, err)
	buf.Reset()
	err = a.Run(context.Background(), app.Request{
		Report: email,
		Out:    &buf,
		Force:  true,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Homer Simpson <homer@example.com>")
	assert.Equal(t, 2, counter.builds)
}
