package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/getchurch/church/internal/data"
	"github.com/getchurch/church/internal/output"
	"github.com/getchurch/church/pkg/config"
	"github.com/getchurch/church/pkg/logging"
	"github.com/getchurch/church/pkg/metrics"
	"github.com/getchurch/church/pkg/provider"
	"github.com/getchurch/church/pkg/resolver"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// globalFlags holds values bound to persistent and per-command flags. They
// only override the loaded configuration when set on the command line.
type globalFlags struct {
	json      bool
	logLevel  string
	logFormat string
	stats     bool
	locale    string
	seed      uint64
	count     int
}

// app is the state of one CLI invocation.
type app struct {
	loader config.Loader
	flags  globalFlags

	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	resolver *resolver.Resolver
}

// NewRootCmd builds the command tree. Configuration is loaded from the
// user's config directory, the working directory and the environment.
func NewRootCmd() *cobra.Command {
	return newRootCmd(config.Loader{})
}

func newRootCmd(loader config.Loader) *cobra.Command {
	a := &app{loader: loader}

	cmd := &cobra.Command{
		Use:   "church",
		Short: "church generates locale-aware fake data",
		Long: `church generates fake data (names, addresses, text, network values and more)
from locale-partitioned reference datasets embedded in the binary.

Configuration can be provided via flags, CHURCH_* environment variables, a .env
file, a local .churchrc.yaml or the global $XDG_CONFIG_HOME/church/config.yaml.`,
		SilenceUsage:       true,
		SilenceErrors:      true, // We handle errors in Execute()
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.report,
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&a.flags.json, "json", false, "Output command results in JSON format")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (default warn)")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "Log format: text or json (default text)")
	pf.BoolVar(&a.flags.stats, "stats", false, "Print dataset statistics to stderr when done")
	pf.StringVarP(&a.flags.locale, "locale", "l", "", "Locale of the reference data (default en_us)")
	pf.Uint64Var(&a.flags.seed, "seed", 0, "Seed for reproducible output")

	cmd.AddCommand(
		a.genCmd(),
		a.renderCmd(),
		a.fieldsCmd(),
		a.localesCmd(),
		a.categoriesCmd(),
		a.naughtyCmd(),
		a.configCmd(),
		a.versionCmd(),
	)
	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	return execute(NewRootCmd(), nil)
}

func execute(cmd *cobra.Command, args []string) int {
	if args != nil {
		cmd.SetArgs(args)
	}
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

// setup loads configuration, applies flags and builds the resolver.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loader.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("locale") {
		cfg.SetLocale(a.flags.locale, config.SourceFlag)
	}
	if flags.Changed("seed") {
		cfg.SetSeed(a.flags.seed, config.SourceFlag)
	}
	if flags.Lookup("count") != nil && flags.Changed("count") {
		cfg.SetCount(a.flags.count, config.SourceFlag)
	}
	if flags.Changed("log-level") {
		cfg.SetLogLevel(a.flags.logLevel, config.SourceFlag)
	}
	if flags.Changed("log-format") {
		cfg.SetLogFormat(a.flags.logFormat, config.SourceFlag)
	}
	if flags.Changed("json") {
		cfg.SetJSON(a.flags.json, config.SourceFlag)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	a.logger = logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
		Output: cmd.ErrOrStderr(),
	})
	a.registry = metrics.NewRegistry()

	a.resolver, err = resolver.New(data.FS(),
		resolver.WithLogger(a.logger),
		resolver.WithObserver(metrics.New(a.registry)),
	)
	if err != nil {
		return fmt.Errorf("opening reference data: %w", err)
	}
	a.logger.Debug("configuration loaded", "locale", cfg.Locale, "source", cfg.Sources[config.KeyLocale])
	return nil
}

// report prints the metrics snapshot when --stats is set.
func (a *app) report(cmd *cobra.Command, _ []string) error {
	if !a.flags.stats || a.registry == nil {
		return nil
	}
	samples, err := metrics.Snapshot(a.registry)
	if err != nil {
		return err
	}
	return writeStats(cmd.ErrOrStderr(), samples)
}

func writeStats(w io.Writer, samples []metrics.Sample) error {
	t := output.Table(w)
	fmt.Fprintln(t, "METRIC\tVALUE")
	for _, s := range samples {
		fmt.Fprintf(t, "%s\t%g\n", s.Name, s.Value)
	}
	return t.Flush()
}

// requireLocale fails early with the supported list when the configured
// locale has no partition.
func (a *app) requireLocale() error {
	if a.resolver.Supports(a.cfg.Locale) {
		return nil
	}
	return fmt.Errorf("%w (supported: %v)", &resolver.LocaleError{Locale: a.cfg.Locale}, a.resolver.Locales())
}

// generator returns a provider bundle for the configured locale and seed.
func (a *app) generator() (*provider.Generic, error) {
	if err := a.requireLocale(); err != nil {
		return nil, err
	}
	opts := []provider.Option{
		provider.WithResolver(a.resolver),
		provider.WithLocale(a.cfg.Locale),
	}
	if a.cfg.Seed != nil {
		opts = append(opts, provider.WithSeed(*a.cfg.Seed))
	}
	return provider.New(opts...), nil
}

func addCountFlag(cmd *cobra.Command, count *int) {
	cmd.Flags().IntVarP(count, "count", "n", config.DefaultCount, "Number of values to produce")
}
