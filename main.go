// sblocales fetches Scratch block translations from translate.scratch.mit.edu
// and writes them as scratchblocks locale files.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/scratchblocks/sblocales/aliases"
	"github.com/scratchblocks/sblocales/config"
	"github.com/scratchblocks/sblocales/console"
	"github.com/scratchblocks/sblocales/coverage"
	"github.com/scratchblocks/sblocales/fetch"
	"github.com/scratchblocks/sblocales/langmeta"
	"github.com/scratchblocks/sblocales/localefile"
	"github.com/scratchblocks/sblocales/pipeline"
	"github.com/scratchblocks/sblocales/specs"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usageText = `Fetches scratch translations from translate.scratch.mit.edu.

  Usage: sblocales [language code | all]

If no language code is given, translations for forum languages will be fetched.`

// options holds the command-line flags.
type options struct {
	configPath  string
	localesDir  string
	baseURL     string
	concurrency int
	progress    bool
	verbose     bool
	noColor     bool
}

// bindFlags registers the flags shared by every command.
func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.configPath, "config", config.FileName, "Config file")
	fs.StringVar(&o.localesDir, "locales-dir", "", "Output directory for <lang>.json files")
	fs.StringVar(&o.baseURL, "base-url", "", "Download root of the translation server")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colored output")
}

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

// cli carries the state of one invocation.
type cli struct {
	opts      options
	stdout    io.Writer
	stderr    io.Writer
	helpShown bool
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "sblocales [language code | all]",
		Short:         "Fetch Scratch block translations for scratchblocks",
		Long:          usageText,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			return c.runFetch(cmd.Context(), cmd, arg)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	// Asking for help is not a run: print usage and fail like a bad invocation.
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		c.helpShown = true
		fmt.Fprintln(c.stdout, cmd.Long)
		fmt.Fprintln(c.stdout)
		fmt.Fprint(c.stdout, cmd.UsageString())
	})

	bindFlags(root.PersistentFlags(), &c.opts)
	root.Flags().IntVarP(&c.opts.concurrency, "concurrency", "j", 0, "Languages fetched at once (0 = all)")
	root.Flags().BoolVar(&c.opts.progress, "progress", false, "Show a progress bar on stderr")

	root.AddCommand(
		newVersionCmd(c),
		newLanguagesCmd(c),
	)

	return root
}

// execute runs the CLI and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	c := &cli{stdout: stdout, stderr: stderr}
	root := newRootCmd(c)
	root.SetArgs(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		fmt.Fprintln(stderr, usageText)
		return 1
	}
	if c.helpShown {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// setupLogging installs the slog handler for diagnostics on stderr.
func (c *cli) setupLogging() *slog.Logger {
	level := slog.LevelWarn
	if c.opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// loadConfig resolves settings from .env, the config file and flags.
func (c *cli) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	cfg, err := config.Load(c.opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("locales-dir") {
		cfg.LocalesDir = c.opts.localesDir
	}
	if flags.Changed("base-url") {
		cfg.BaseURL = c.opts.baseURL
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = c.opts.concurrency
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadAliases(cfg *config.Config) (aliases.Table, error) {
	table, err := aliases.Default()
	if err != nil {
		return nil, err
	}
	if cfg.AliasFile == "" {
		return table, nil
	}
	extra, err := aliases.Load(cfg.AliasFile)
	if err != nil {
		return nil, err
	}
	return table.Merge(extra), nil
}

func (c *cli) printer() *console.Printer {
	return console.New(c.stdout, c.stderr, c.opts.noColor || console.NoColorEnv())
}

// ---------------------------------------------------------------------------
// fetch (root command)
// ---------------------------------------------------------------------------

func (c *cli) runFetch(ctx context.Context, cmd *cobra.Command, arg string) error {
	tables := specs.Default()
	langs, ok := tables.Select(arg)
	if !ok {
		fmt.Fprintln(c.stdout, "Language code not valid, supported languages:")
		fmt.Fprintln(c.stdout, strings.Join(tables.AllLanguages, ", "))
		return nil
	}

	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := c.setupLogging()

	table, err := loadAliases(cfg)
	if err != nil {
		return err
	}

	opts := cfg.FetchOptions()
	opts.UserAgent = "sblocales/" + version
	opts.Logger = logger

	r := &pipeline.Runner{
		Fetcher:     fetch.New(opts),
		Tables:      tables,
		Aliases:     table,
		Dir:         cfg.LocalesDir,
		Console:     c.printer(),
		Concurrency: cfg.Concurrency,
		Logger:      logger,
	}
	if c.opts.progress {
		r.Progress = c.stderr
	}

	logger.Debug("Fetching translations", "languages", len(langs), "dir", cfg.LocalesDir, "base_url", cfg.BaseURL)
	summary, err := r.Run(ctx, langs)
	if err != nil {
		return err
	}
	logger.Debug("Finished", "written", len(summary.Written), "failed", len(summary.Failed))
	if errors.Is(ctx.Err(), context.Canceled) {
		return ctx.Err()
	}
	return nil
}

// ---------------------------------------------------------------------------
// version
// ---------------------------------------------------------------------------

func newVersionCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(c.stdout, "sblocales version %s\n", version)
			fmt.Fprintf(c.stdout, "  commit:    %s\n", commit)
			fmt.Fprintf(c.stdout, "  built:     %s\n", date)
		},
	}

	return cmd
}

// ---------------------------------------------------------------------------
// languages (read-only: supported codes + status of written files)
// ---------------------------------------------------------------------------

func newLanguagesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported language codes",
		Long: `List every supported language code with its native name.

Forum languages, fetched when no code is given, are marked with *. When a
locale file for a language exists in the locales directory, its coverage is
shown. Does not modify any files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			c.setupLogging()
			c.listLanguages(specs.Default(), cfg.LocalesDir)
			return nil
		},
	}

	return cmd
}

func (c *cli) listLanguages(tables *specs.Tables, dir string) {
	color := colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: c.opts.noColor || console.NoColorEnv(),
	}
	forum := make(map[string]bool, len(tables.ForumLanguages))
	for _, lang := range tables.ForumLanguages {
		forum[lang] = true
	}

	width := langColumnWidth(tables.AllLanguages)
	for _, lang := range tables.AllLanguages {
		mark := " "
		if forum[lang] {
			mark = "*"
		}
		meta := langmeta.Resolve(lang)
		line := fmt.Sprintf("%s %s  %-24s", mark, langCell(lang, meta.Flag, width), meta.Name)
		if report, ok := fileCoverage(dir, lang, tables); ok {
			line += " " + coverageBar(report.Percent(), 20, color)
		}
		fmt.Fprintln(c.stdout, strings.TrimRight(line, " "))
	}
}

// fileCoverage reports the coverage of an already written locale file.
func fileCoverage(dir, lang string, tables *specs.Tables) (coverage.Report, bool) {
	trs, err := localefile.ReadFile(localefile.Path(dir, lang))
	if err != nil {
		return coverage.Report{}, false
	}
	for _, tr := range trs {
		if tr.Lang == lang {
			return coverage.Compute(tr, tables), true
		}
	}
	return coverage.Report{}, false
}

func langColumnWidth(langs []string) int {
	width := 0
	for _, lang := range langs {
		if len(lang) > width {
			width = len(lang)
		}
	}
	return width
}

func langCell(lang, flag string, width int) string {
	if flag == "" {
		flag = "  "
	}
	return fmt.Sprintf("%s %-*s", flag, width, lang)
}

// coverageBar renders percent as a bar of the given width: red below half,
// yellow until complete, green at 100.
func coverageBar(percent, width int, color colorstring.Colorize) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100

	tone := "[green]"
	switch {
	case percent < 50:
		tone = "[red]"
	case percent < 100:
		tone = "[yellow]"
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return color.Color(tone) + bar + color.Color("[reset]") + fmt.Sprintf(" %3d%%", percent)
}
