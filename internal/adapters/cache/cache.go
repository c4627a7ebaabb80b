// Package cache keeps a compiled model snapshot next to its source file and
// decides on every lookup whether the snapshot may be reused or the model has
// to be rebuilt from source.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/six/internal/core/domain"
	"go.trai.ch/six/internal/core/ports"
	"go.trai.ch/zerr"
)

// snapshotVersion is bumped whenever the envelope or snapshot layout changes.
// A version mismatch is an ordinary cache miss.
const snapshotVersion = 1

// envelope is the on-disk cache format. The checksum covers the raw Model
// bytes, so a truncated or bit-rotted file is detected before decoding.
type envelope struct {
	Version  int             `json:"version"`
	Checksum uint64          `json:"checksum"`
	Model    json.RawMessage `json:"model"`
}

var _ ports.ModelCache = (*Cache)(nil)

// Cache implements ports.ModelCache with a per-source snapshot file.
type Cache struct {
	reader  ports.SourceReader
	factory ports.BuilderFactory
	log     ports.Logger
}

// New returns a cache that rebuilds via reader and factory.
func New(reader ports.SourceReader, factory ports.BuilderFactory, log ports.Logger) *Cache {
	return &Cache{reader: reader, factory: factory, log: log}
}

// Path returns the cache file location for a source path: a dotfile in the
// same directory, so it shares the source's filesystem and permissions.
func Path(sourcePath string) string {
	dir, base := filepath.Split(sourcePath)
	return filepath.Join(dir, "."+base+".six-cache")
}

// cacheMiss explains why a snapshot was not reused. It is a decision, not a
// failure: every miss leads to a rebuild.
type cacheMiss struct {
	reason string
	err    error
}

func (m cacheMiss) String() string {
	if m.err != nil {
		return m.reason + ": " + m.err.Error()
	}
	return m.reason
}

// ObtainModel returns the model for sourcePath, loading the snapshot when it
// is fresh and rebuilding from source otherwise. A rebuild rewrites the
// snapshot; failing to persist it is an error, since the next run would
// silently pay for another rebuild.
func (c *Cache) ObtainModel(ctx context.Context, sourcePath string, force bool) (*domain.Model, error) {
	srcInfo, err := os.Stat(sourcePath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrEnvironment, "source file not accessible"), "path", sourcePath)
	}
	if !srcInfo.Mode().IsRegular() {
		return nil, zerr.With(zerr.Wrap(domain.ErrEnvironment, "source is not a regular file"), "path", sourcePath)
	}

	cachePath := Path(sourcePath)
	if miss := c.tryLoad(ctx, cachePath, srcInfo, force); miss != nil {
		c.log.Debug("cache miss, rebuilding: " + miss.String())
	} else if model, loadErr := c.load(cachePath); loadErr == nil {
		c.log.Debug("cache hit: " + cachePath)
		return model, nil
	} else {
		c.log.Debug("cache unusable, rebuilding: " + loadErr.Error())
	}

	model, err := c.rebuild(ctx, sourcePath)
	if err != nil {
		return nil, err
	}
	if err := c.store(cachePath, model); err != nil {
		return nil, zerr.With(err, "path", cachePath)
	}
	return model, nil
}

// tryLoad decides whether the snapshot at cachePath may be consulted at all.
// It returns nil when the snapshot is fresh enough to attempt loading.
func (c *Cache) tryLoad(ctx context.Context, cachePath string, srcInfo fs.FileInfo, force bool) *cacheMiss {
	if err := ctx.Err(); err != nil {
		return &cacheMiss{reason: "context cancelled", err: err}
	}
	if force {
		return &cacheMiss{reason: "rebuild forced"}
	}
	cacheInfo, err := os.Stat(cachePath)
	if err != nil {
		return &cacheMiss{reason: "no snapshot", err: err}
	}
	if srcInfo.ModTime().After(cacheInfo.ModTime()) {
		return &cacheMiss{reason: "snapshot older than source"}
	}
	return nil
}

// load decodes a snapshot file. Any failure, from unreadable file to checksum
// mismatch to dangling entity index, is reported to the caller, which treats
// it as a miss.
func (c *Cache) load(cachePath string) (*domain.Model, error) {
	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, zerr.Wrap(err, "read snapshot")
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, zerr.Wrap(err, "decode envelope")
	}
	if env.Version != snapshotVersion {
		return nil, zerr.New(fmt.Sprintf("snapshot version %d, want %d", env.Version, snapshotVersion))
	}
	if sum := xxhash.Sum64(env.Model); sum != env.Checksum {
		return nil, zerr.New("snapshot checksum mismatch")
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(env.Model, &snap); err != nil {
		return nil, zerr.Wrap(err, "decode snapshot")
	}
	model, err := domain.ModelFromSnapshot(&snap)
	if err != nil {
		return nil, err
	}
	return model, nil
}

// rebuild compiles the model from source. The builder is finalised on every
// exit path.
func (c *Cache) rebuild(ctx context.Context, sourcePath string) (*domain.Model, error) {
	c.log.Info("compiling " + sourcePath)
	blocks, err := c.reader.Blocks(sourcePath)
	if err != nil {
		return nil, err
	}
	builder := c.factory.NewBuilder()
	defer builder.Finalise()
	for _, block := range blocks {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "compile cancelled")
		}
		if err := builder.ParseBlock(block); err != nil {
			return nil, err
		}
	}
	return builder.FinishParsing()
}

// store writes the snapshot. The stale file is removed first, so a failed
// write leaves no snapshot rather than a half-written one.
func (c *Cache) store(cachePath string, model *domain.Model) error {
	payload, err := json.Marshal(model.Snapshot())
	if err != nil {
		return zerr.Wrap(err, "encode snapshot")
	}
	env := envelope{
		Version:  snapshotVersion,
		Checksum: xxhash.Sum64(payload),
		Model:    payload,
	}
	data, err := json.Marshal(env)
	if err != nil {
		return zerr.Wrap(err, "encode envelope")
	}
	if err := os.Remove(cachePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, "remove stale snapshot")
	}
	if err := os.WriteFile(cachePath, data, 0o644); err != nil {
		return zerr.Wrap(err, "write snapshot")
	}
	return nil
}
