package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/dshills/superheroes/internal/config"
	"github.com/dshills/superheroes/internal/hero"
	"github.com/dshills/superheroes/internal/logging"
	"github.com/dshills/superheroes/internal/menu"
	"github.com/dshills/superheroes/internal/orderdiff"
	"github.com/dshills/superheroes/internal/render"
	"github.com/dshills/superheroes/internal/seed"
	"github.com/dshills/superheroes/internal/store"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// app is everything a command needs, built once per invocation.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *store.Store
	renderer render.Renderer
	caseMode hero.CaseMode
}

func main() {
	root := newRootCmd(os.Stdin, os.Stdout)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var ee *exitErr
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var (
		configPath string
		verbose    bool
		a          *app
	)

	root := &cobra.Command{
		Use:     "heroes",
		Short:   "Browse and extend an in-memory catalog of obscure superheroes",
		Long:    "heroes manages a small in-memory superhero catalog. Run without a subcommand for the interactive menu.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = setup(configPath, verbose, cmd.Flags())
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(a, in, out)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(in)
	root.SetOut(out)

	d := config.Defaults()
	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file")
	pf.BoolVar(&verbose, "verbose", false, "Log debug output to stderr")
	pf.String("format", d.Display.Format, "Output format: text, table, md or json")
	pf.String("case", d.Display.Case, "Case for search and ranking output: upper, lower or as-entered")
	pf.Bool("color", d.Display.Color, "Colorize text output on a terminal")
	pf.Bool("sort-diff", d.Display.SortDiff, "Show how the name order changed after sorting")
	pf.String("seed", d.Seed.File, "YAML file replacing the built-in catalog")
	pf.String("log-level", d.Log.Level, "Log level: debug, info, warn or error")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Display every superhero in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(a, out)
		},
	}

	var field string
	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find superheroes whose name or power contains the query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(a, out, field, args[0])
		},
	}
	searchCmd.Flags().StringVar(&field, "field", string(hero.FieldName), "Field to search: name or power")

	rankCmd := &cobra.Command{
		Use:   "rank",
		Short: "Display superheroes by ascending ranking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(a, out)
		},
	}

	sortCmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort the catalog alphabetically by name and display it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(a, out)
		},
	}

	root.AddCommand(listCmd, searchCmd, rankCmd, sortCmd)
	return root
}

// setup loads configuration, the logger, the seed and the renderer.
func setup(configPath string, verbose bool, flags *pflag.FlagSet) (*app, error) {
	cfg, err := config.Load(configPath, flags)
	if err != nil {
		return nil, codeError(3, "loading config: %s", err)
	}

	logger, err := logging.New(cfg.Log.Level, verbose)
	if err != nil {
		return nil, codeError(3, "creating logger: %s", err)
	}

	records := seed.Default()
	if cfg.Seed.File != "" {
		logger.Debug("loading seed file", zap.String("path", cfg.Seed.File))
		records, err = seed.Load(cfg.Seed.File)
		if err != nil {
			return nil, codeError(3, "loading seed: %s", err)
		}
	}
	st, err := store.New(records)
	if err != nil {
		return nil, codeError(3, "seeding store: %s", err)
	}
	logger.Debug("store ready", zap.Int("records", st.Len()))

	caseMode, err := hero.ParseCaseMode(cfg.Display.Case)
	if err != nil {
		return nil, codeError(3, "invalid case: %s", err)
	}
	// Color is only used on a terminal; fatih/color sets NoColor otherwise.
	cfg.Display.Color = cfg.Display.Color && !color.NoColor
	renderer, err := render.NewRenderer(cfg.Display.Format, cfg.Display.Color)
	if err != nil {
		return nil, codeError(3, "invalid format: %s", err)
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		store:    st,
		renderer: renderer,
		caseMode: caseMode,
	}, nil
}

func runMenu(a *app, in io.Reader, out io.Writer) error {
	session := menu.New(a.store, in, out, menu.Options{
		Renderer: a.renderer,
		Case:     a.caseMode,
		SortDiff: a.cfg.Display.SortDiff,
		Color:    a.cfg.Display.Color,
		Logger:   a.logger,
	})
	return session.Run()
}

func runList(a *app, out io.Writer) error {
	return write(a, out, a.store.All())
}

func runSearch(a *app, out io.Writer, fieldName, query string) error {
	field, err := hero.ParseField(fieldName)
	if err != nil {
		return codeError(3, "invalid flags: %s", err)
	}
	matches := a.store.Search(field, query)
	a.logger.Debug("search", zap.String("field", string(field)), zap.String("query", query), zap.Int("matches", len(matches)))
	if len(matches) == 0 {
		return codeError(1, "no superhero found with the %s containing %q", field, query)
	}
	return write(a, out, matches)
}

func runRank(a *app, out io.Writer) error {
	return write(a, out, a.store.ByRank())
}

func runSort(a *app, out io.Writer) error {
	before := a.store.Names()
	a.store.SortByName()
	if err := write(a, out, a.store.All()); err != nil {
		return err
	}
	if a.cfg.Display.SortDiff {
		fmt.Fprint(out, orderdiff.Lines(before, a.store.Names()))
	}
	return nil
}

// write renders records with the configured case and format.
func write(a *app, out io.Writer, records []hero.Record) error {
	outputBytes, err := a.renderer.Render(hero.RenderAll(records, a.caseMode))
	if err != nil {
		return codeError(3, "rendering output: %s", err)
	}
	if _, err := out.Write(outputBytes); err != nil {
		return codeError(3, "writing output: %s", err)
	}
	// Ensure output ends with a newline for terminal friendliness.
	if len(outputBytes) > 0 && outputBytes[len(outputBytes)-1] != '\n' {
		fmt.Fprintln(out)
	}
	return nil
}
