package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/tally-dev/tally/internal/categories"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/logger"
	"github.com/tally-dev/tally/internal/planner"
	"github.com/tally-dev/tally/internal/records"
	"github.com/tally-dev/tally/internal/report"
	"github.com/tally-dev/tally/internal/session"
)

// app is everything a command needs, built from config and flags.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	store   *records.Store
	cats    *categories.Service
	planner *planner.Planner
	format  *report.Formatter
}

func loadApp(opts *rootOptions) (*app, error) {
	if err := config.LoadDotEnv(""); err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return nil, err
	}
	// A relative data path in the config file is relative to that file.
	if !filepath.IsAbs(cfg.Data.Path) {
		cfg.Data.Path = filepath.Join(filepath.Dir(opts.configPath), cfg.Data.Path)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if opts.dataPath != "" {
		cfg.Data.Path = opts.dataPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Env, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	p, err := planner.New(cfg.Planner.PeriodMonths)
	if err != nil {
		return nil, err
	}

	f, err := report.NewFormatter(cfg.Report.Locale)
	if err != nil {
		return nil, err
	}

	store := records.NewStore(cfg.Data.Path)
	return &app{
		cfg:     cfg,
		log:     log.With(zap.String("data", store.Path())),
		store:   store,
		cats:    categories.NewService(cfg.Categories.Extra...),
		planner: p,
		format:  f,
	}, nil
}

// open loads the records and reports any load problems to w.
func (a *app) open(w io.Writer) *session.Session {
	sess, st := session.Open(a.store, a.planner, a.cats, a.log)
	if st.HasIssues() {
		printStatus(w, st)
	}
	return sess
}

func (a *app) close() {
	_ = a.log.Sync()
}

func printStatus(w io.Writer, st session.Status) {
	if st.StorageErr != nil {
		fmt.Fprintf(w, "Warning: %v\nStarting with an empty ledger.\n", st.StorageErr)
	}
	if len(st.RowErrors) > 0 {
		fmt.Fprintf(w, "Skipped %d malformed row(s):\n", len(st.RowErrors))
		for _, e := range st.RowErrors {
			fmt.Fprintf(w, "  %v\n", e)
		}
	}
}
