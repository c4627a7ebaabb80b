// Package app implements the application layer: it turns one parsed command
// line into one rendered report.
package app

import (
	"context"
	"errors"
	"io"
	"os"

	"go.trai.ch/six/internal/core/domain"
	"go.trai.ch/six/internal/core/ports"
	"go.trai.ch/six/internal/report"
	"go.trai.ch/zerr"
)

// Request is one query invocation as parsed from the command line.
type Request struct {
	// Report renders the selection. Its flags have already been parsed.
	Report report.Report

	// Local is the --local override; empty means fall back to SIX_LOCAL and
	// then the settings file.
	Local string

	// Output is the --output file path; empty means Out.
	Output string

	// Out receives the report when no output file is requested.
	Out io.Writer

	// Force discards any cached model.
	Force bool

	// Query is the expression tokens; empty selects everything.
	Query []string
}

// App wires the pipeline together: settings, model cache, predicate compiler,
// report.
type App struct {
	settings ports.SettingsLoader
	cache    ports.ModelCache
	compiler ports.PredicateCompiler
	log      ports.Logger
}

// New creates a new App instance.
func New(settings ports.SettingsLoader, cache ports.ModelCache, compiler ports.PredicateCompiler, log ports.Logger) *App {
	return &App{settings: settings, cache: cache, compiler: compiler, log: log}
}

// Run executes one query end to end.
func (a *App) Run(ctx context.Context, req Request) error {
	settings, err := a.settings.Load()
	if err != nil {
		return zerr.Wrap(err, "failed to load settings")
	}

	sourcePath := os.Getenv("SIX_SOURCE")
	if sourcePath == "" {
		sourcePath = settings.SourcePath
	}
	if sourcePath == "" {
		return zerr.Wrap(domain.ErrEnvironment, "SIX_SOURCE is not set and no source is configured")
	}
	a.log.Debug("using source " + sourcePath)

	model, err := a.cache.ObtainModel(ctx, sourcePath, req.Force)
	if err != nil {
		return err
	}

	var predicate domain.Predicate
	if len(req.Query) > 0 {
		predicate, err = a.compiler.Compile(model, req.Query)
		if err != nil {
			// Term lookups fail with their own sentinels; to the user they
			// are still a bad argument.
			if !errors.Is(err, domain.ErrBadArgument) {
				err = zerr.Wrap(domain.ErrBadArgument, err.Error())
			}
			return zerr.Wrap(err, "bad query expression")
		}
	}

	local, err := a.resolveLocal(model, req.Local, settings)
	if err != nil {
		return err
	}

	out := req.Out
	if req.Output != "" {
		f, err := os.Create(req.Output)
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrEnvironment, "cannot open output file"), "path", req.Output)
		}
		defer f.Close()
		out = f
	}

	rc := report.RunContext{
		Out:      out,
		Model:    model,
		Entities: model.Select(predicate),
		Local:    local,
	}
	if err := req.Report.Run(rc); err != nil {
		return zerr.Wrap(err, "report failed")
	}
	return nil
}

// resolveLocal picks the local place: the --local flag wins, then SIX_LOCAL,
// then the settings file. A flag naming an unknown place is the user's
// mistake; a bad environment value or setting is an environment error.
func (a *App) resolveLocal(model *domain.Model, flag string, settings *domain.Settings) (*domain.Place, error) {
	if flag != "" {
		place, err := model.LookupPlace(flag)
		if err != nil {
			return nil, zerr.Wrap(domain.ErrBadArgument, err.Error())
		}
		return place, nil
	}
	name := os.Getenv("SIX_LOCAL")
	if name == "" {
		name = settings.LocalPlace
	}
	if name == "" {
		return nil, nil
	}
	place, err := model.LookupPlace(name)
	if err != nil {
		return nil, zerr.Wrap(domain.ErrEnvironment, err.Error())
	}
	return place, nil
}
