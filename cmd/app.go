package cmd

import (
	"fmt"
	"io"

	"github.com/ginjaninja78/ifsc-enricher/internal/config"
	"github.com/ginjaninja78/ifsc-enricher/internal/ifsc"
	"github.com/ginjaninja78/ifsc-enricher/internal/logging"
	"github.com/ginjaninja78/ifsc-enricher/internal/pipeline"
	"github.com/ginjaninja78/ifsc-enricher/internal/region"
)

// app holds the configuration and logger shared by all commands.
type app struct {
	cfg    *config.Config
	logger logging.Logger
}

// newApp loads the configuration named by --config and sets up logging.
func newApp(logOut io.Writer) (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	return &app{cfg: cfg, logger: logging.New(logOut, level)}, nil
}

// resolver builds the IFSC validator and lookup client.
func (a *app) resolver() (*ifsc.Resolver, error) {
	registry, err := ifsc.LoadRegistry(a.cfg.BankRegistry)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("bank registry has %d bank code(s)", registry.Len())

	client := ifsc.NewClient(a.cfg.IFSCAPIURL,
		ifsc.WithUserAgent(a.cfg.UserAgent),
		ifsc.WithRateLimit(a.cfg.IFSCRequestsPerSecond),
		ifsc.WithLogger(a.logger),
	)
	return ifsc.NewResolver(ifsc.NewValidator(registry), client), nil
}

// pipeline builds the enrichment pipeline, reporting progress to console.
func (a *app) pipeline(console io.Writer) (*pipeline.Pipeline, error) {
	resolver, err := a.resolver()
	if err != nil {
		return nil, err
	}
	return pipeline.New(pipeline.Options{
		InputFile:             a.cfg.InputFile,
		OutputFile:            a.cfg.OutputFile,
		ContinueOnLookupError: a.cfg.ContinueOnLookupError,
	}, resolver, pipeline.NewReporter(console), a.logger), nil
}

// regionClient builds the geocoding search client.
func (a *app) regionClient() *region.Client {
	return region.NewClient(a.cfg.GeocodeURL,
		region.WithUserAgent(a.cfg.UserAgent),
		region.WithRateLimit(a.cfg.GeocodeRequestsPerSecond),
		region.WithLogger(a.logger),
	)
}
