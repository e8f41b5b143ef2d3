package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/records"
)

type initOptions struct {
	file         string
	periodMonths int
	locale       string
	categories   []string
	force        bool
}

func newInitCommand() *cobra.Command {
	opts := initOptions{}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a config file and an empty record file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", defaults.Data.Path, "record file name, relative to the directory")
	cmd.Flags().IntVar(&opts.periodMonths, "period-months", defaults.Planner.PeriodMonths, "months covered by the record file")
	cmd.Flags().StringVar(&opts.locale, "locale", defaults.Report.Locale, "locale for amounts in reports")
	cmd.Flags().StringSliceVar(&opts.categories, "category", nil, "extra category to offer (repeatable)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite an existing config file")

	return cmd
}

func runInit(w io.Writer, dir string, opts initOptions) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, config.DefaultPath)
	if _, err := os.Stat(cfgPath); err == nil && !opts.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	}

	cfg := config.Default()
	cfg.Data.Path = opts.file
	cfg.Planner.PeriodMonths = opts.periodMonths
	cfg.Report.Locale = opts.locale
	cfg.Categories.Extra = opts.categories
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Write tally.yaml.
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	// Create the record file with just a header, keeping any existing records.
	dataPath := cfg.Data.Path
	if !filepath.IsAbs(dataPath) {
		dataPath = filepath.Join(dir, dataPath)
	}
	store := records.NewStore(dataPath)
	created, err := store.Init()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Wrote %s\n", cfgPath)
	if created {
		fmt.Fprintf(w, "Created %s\n", store.Path())
	} else {
		fmt.Fprintf(w, "Kept existing %s\n", store.Path())
	}
	return nil
}
