package cache_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/six/internal/adapters/builder"
	"go.trai.ch/six/internal/adapters/cache"
	"go.trai.ch/six/internal/adapters/source"
	"go.trai.ch/six/internal/core/domain"
	"go.trai.ch/six/internal/core/ports"
	"go.trai.ch/six/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const sourceText = `%country AU cc=61 ap=0 "Australia"
%area ac=8 "SA"
%default in SA

Ann Example
ph 8123-4567
email ann@example.com

* Acme
key employer
`

func nopLogger(t *testing.T) ports.Logger {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

// countingFactory counts how many rebuilds the cache performs.
type countingFactory struct {
	builds int
}

func (f *countingFactory) NewBuilder() ports.ModelBuilder {
	f.builds++
	return builder.New()
}

func writeSource(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contacts")
	require.NoError(t, os.WriteFile(path, []byte(sourceText), 0o600))
	return path
}

func TestObtainModel_BuildsOnceThenReuses(t *testing.T) {
	path := writeSource(t)
	factory := &countingFactory{}
	c := cache.New(&source.Reader{}, factory, nopLogger(t))

	m1, err := c.ObtainModel(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, 1, factory.builds)
	assert.FileExists(t, cache.Path(path))

	m2, err := c.ObtainModel(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, 1, factory.builds, "second call must reuse the snapshot")

	require.Len(t, m2.Entities(), len(m1.Entities()))
	assert.Equal(t, "Ann Example", m2.Entities()[0].Name)
}

func TestObtainModel_StaleSnapshotTriggersRebuild(t *testing.T) {
	path := writeSource(t)
	factory := &countingFactory{}
	c := cache.New(&source.Reader{}, factory, nopLogger(t))

	_, err := c.ObtainModel(context.Background(), path, false)
	require.NoError(t, err)

	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	_, err = c.ObtainModel(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, 2, factory.builds)
}

func TestObtainModel_ForceBypassesSnapshot(t *testing.T) {
	path := writeSource(t)
	factory := &countingFactory{}
	c := cache.New(&source.Reader{}, factory, nopLogger(t))

	_, err := c.ObtainModel(context.Background(), path, false)
	require.NoError(t, err)
	_, err = c.ObtainModel(context.Background(), path, true)
	require.NoError(t, err)
	assert.Equal(t, 2, factory.builds)
}

func TestObtainModel_CorruptSnapshotFallsBackToRebuild(t *testing.T) {
	path := writeSource(t)
	factory := &countingFactory{}
	c := cache.New(&source.Reader{}, factory, nopLogger(t))

	_, err := c.ObtainModel(context.Background(), path, false)
	require.NoError(t, err)

	corruptions := map[string]func(t *testing.T, cachePath string){
		"garbage": func(t *testing.T, cachePath string) {
			require.NoError(t, os.WriteFile(cachePath, []byte("not json"), 0o600))
		},
		"truncated": func(t *testing.T, cachePath string) {
			data, err := os.ReadFile(cachePath)
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(cachePath, data[:len(data)/2], 0o600))
		},
		"bit flip": func(t *testing.T, cachePath string) {
			data, err := os.ReadFile(cachePath)
			require.NoError(t, err)
			data[len(data)/2] ^= 0x01
			require.NoError(t, os.WriteFile(cachePath, data, 0o600))
		},
	}
	for name, corrupt := range corruptions {
		t.Run(name, func(t *testing.T) {
			before := factory.builds
			corrupt(t, cache.Path(path))
			// Keep the snapshot looking fresh so only content checks reject it.
			future := time.Now().Add(time.Hour)
			require.NoError(t, os.Chtimes(cache.Path(path), future, future))

			m, err := c.ObtainModel(context.Background(), path, false)
			require.NoError(t, err, "corruption must never surface as an error")
			assert.Equal(t, before+1, factory.builds)
			require.NotEmpty(t, m.Entities())
		})
	}
}

func TestObtainModel_SourceMustBeRegularFile(t *testing.T) {
	factory := &countingFactory{}
	c := cache.New(&source.Reader{}, factory, nopLogger(t))

	_, err := c.ObtainModel(context.Background(), t.TempDir(), false)
	require.ErrorIs(t, err, domain.ErrEnvironment)

	_, err = c.ObtainModel(context.Background(), filepath.Join(t.TempDir(), "absent"), false)
	require.ErrorIs(t, err, domain.ErrEnvironment)
	assert.Zero(t, factory.builds)
}

func TestObtainModel_FinaliseRunsOnParseFailure(t *testing.T) {
	path := writeSource(t)
	ctrl := gomock.NewController(t)

	mb := mocks.NewMockModelBuilder(ctrl)
	mb.EXPECT().ParseBlock(gomock.Any()).Return(domain.ErrSourceInput)
	mb.EXPECT().Finalise().Times(1)

	factory := mocks.NewMockBuilderFactory(ctrl)
	factory.EXPECT().NewBuilder().Return(mb)

	c := cache.New(&source.Reader{}, factory, nopLogger(t))
	_, err := c.ObtainModel(context.Background(), path, true)
	require.ErrorIs(t, err, domain.ErrSourceInput)
}

func TestObtainModel_FinaliseRunsOnFinishFailure(t *testing.T) {
	path := writeSource(t)
	ctrl := gomock.NewController(t)

	mb := mocks.NewMockModelBuilder(ctrl)
	mb.EXPECT().ParseBlock(gomock.Any()).Return(nil).AnyTimes()
	mb.EXPECT().FinishParsing().Return(nil, domain.ErrSourceInput)
	mb.EXPECT().Finalise().Times(1)

	factory := mocks.NewMockBuilderFactory(ctrl)
	factory.EXPECT().NewBuilder().Return(mb)

	c := cache.New(&source.Reader{}, factory, nopLogger(t))
	_, err := c.ObtainModel(context.Background(), path, true)
	require.ErrorIs(t, err, domain.ErrSourceInput)
}

func TestObtainModel_UnwritableSnapshotFailsTheCall(t *testing.T) {
	path := writeSource(t)
	factory := &countingFactory{}
	c := cache.New(&source.Reader{}, factory, nopLogger(t))

	// Occupy the snapshot path with a non-empty directory so neither the
	// removal nor the write can succeed.
	blocked := cache.Path(path)
	require.NoError(t, os.Mkdir(blocked, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(blocked, "keep"), nil, 0o600))

	_, err := c.ObtainModel(context.Background(), path, false)
	require.Error(t, err)
	assert.Equal(t, 1, factory.builds)
}

func TestObtainModel_FailedRebuildLeavesNoValidSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contacts")
	require.NoError(t, os.WriteFile(path, []byte("Ann Example\nshoe 42\n"), 0o600))

	c := cache.New(&source.Reader{}, &countingFactory{}, nopLogger(t))
	_, err := c.ObtainModel(context.Background(), path, false)
	require.ErrorIs(t, err, domain.ErrSourceInput)
	assert.NoFileExists(t, cache.Path(path))
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/home/ann/.contacts.six-cache", cache.Path("/home/ann/contacts"))
	assert.Equal(t, ".contacts.six-cache", cache.Path("contacts"))
}
