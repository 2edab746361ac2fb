package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"skid-extractor/internal/config"
	"skid-extractor/internal/filewalker"
	"skid-extractor/internal/report"
	"skid-extractor/internal/skill"
	"skid-extractor/internal/source"
	"skid-extractor/internal/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	setLogLevel(cfg.LogLevel)

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "skid-extract",
		Short: "Extract skill id and name tables from client .lub files",
		Long: `Reads the skill id enumeration (skillid.lub) and the skill info list
(skillinfolist.lub) and writes two listings:
  SKILL_id_handle.txt   "<id> <handle>" for every known id
  skillnametable.txt    "<handle>#<name>#" for every id with a display name`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runExtract(cfg, cmd.OutOrStdout())
			return err
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Client data directory to search for the sources by file name")
	flags.StringVar(&cfg.EnumPath, "enum", cfg.EnumPath, "Enumeration source (HANDLE = ID table)")
	flags.StringVar(&cfg.InfoPath, "info", cfg.InfoPath, "Info-list source ([KEY] = { ... } records)")
	flags.StringVar(&cfg.IDHandleOutput, "ids-out", cfg.IDHandleOutput, "Output path for the id/handle listing")
	flags.StringVar(&cfg.NameTableOutput, "names-out", cfg.NameTableOutput, "Output path for the handle/name table")
	flags.StringVar(&cfg.EnumTable, "table", cfg.EnumTable, "Name of the enumeration table in the enumeration source")
	flags.StringVar(&cfg.NameField, "field", cfg.NameField, "Record field holding the display name")
	flags.StringVar(&cfg.SourceEncoding, "encoding", cfg.SourceEncoding, "Charset of the sources, e.g. euc-kr (empty: raw bytes)")
	flags.StringVar(&cfg.JSONOutput, "json", cfg.JSONOutput, "Also export the merged table as JSON to this path")

	rootCmd.AddCommand(publishCmd(cfg))

	return rootCmd
}

func publishCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Extract the tables and upsert them into PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "PostgreSQL connection URL")
	cmd.Flags().StringVar(&cfg.DBTable, "db-table", cfg.DBTable, "Destination table")

	return cmd
}

// runExtract handles the root command. The id listing is written before the
// info list is read, so it survives a missing or broken info list.
func runExtract(cfg *config.Config, out io.Writer) ([]report.Row, error) {
	enc, err := source.Encoding(cfg.SourceEncoding)
	if err != nil {
		return nil, err
	}

	enumPath, infoPath, err := resolveSources(cfg)
	if err != nil {
		return nil, err
	}

	enumSrc, err := source.Read(enumPath, enc)
	if err != nil {
		return nil, fmt.Errorf("read enumeration source: %w", err)
	}

	table, err := skill.ExtractHandleIDs(enumSrc, cfg.EnumTable)
	if err != nil {
		return nil, fmt.Errorf("parse enumeration source %s: %w", enumPath, err)
	}
	log.Info().Str("path", enumPath).Int("ids", table.Len()).Msg("Loaded enumeration table")

	rows := report.Merge(table, nil)
	n, err := report.WriteFile(cfg.IDHandleOutput, rows, report.WriteIDHandles)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Wrote %d lines to %s\n", n, cfg.IDHandleOutput)

	var names map[int64]string
	infoSrc, err := source.Read(infoPath, enc)
	if err != nil {
		log.Warn().Err(err).Str("path", infoPath).Msg("Info-list source unavailable, name table will be empty")
	} else {
		names = skill.ExtractNames(infoSrc, table, cfg.NameField)
		log.Info().Str("path", infoPath).Int("names", len(names)).Msg("Loaded info-list names")
	}

	rows = report.Merge(table, names)
	n, err = report.WriteFile(cfg.NameTableOutput, rows, report.WriteNameTable)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Wrote %d lines to %s\n", n, cfg.NameTableOutput)

	if cfg.JSONOutput != "" {
		if err := report.ExportJSON(cfg.JSONOutput, rows); err != nil {
			return nil, fmt.Errorf("export JSON: %w", err)
		}
	}

	return rows, nil
}

// resolveSources returns the enumeration and info-list paths. With a data
// directory set, each is looked up there by base name; a file that cannot be
// found keeps its configured path so the usual read error applies.
func resolveSources(cfg *config.Config) (enumPath, infoPath string, err error) {
	enumPath, infoPath = cfg.EnumPath, cfg.InfoPath
	if cfg.DataDir == "" {
		return enumPath, infoPath, nil
	}

	enumName, infoName := filepath.Base(enumPath), filepath.Base(infoPath)
	found, err := filewalker.NewWalker(enumName, infoName).Walk(cfg.DataDir)
	if err != nil {
		return "", "", fmt.Errorf("search data directory: %w", err)
	}

	if p, ok := found[enumName]; ok {
		enumPath = p
	}
	if p, ok := found[infoName]; ok {
		infoPath = p
	}
	return enumPath, infoPath, nil
}

// runPublish handles the `publish` command.
func runPublish(cfg *config.Config, out io.Writer) error {
	if cfg.DatabaseURL == "" {
		return errors.New("no database URL, set DATABASE_URL or --database-url")
	}

	rows, err := runExtract(cfg, out)
	if err != nil {
		return err
	}

	ctx, cancel := setupContext()
	defer cancel()

	pool, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	skillStore, err := store.NewSkillStore(pool, cfg.DBTable)
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	if err := skillStore.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	if _, err := skillStore.Upsert(ctx, rows); err != nil {
		return fmt.Errorf("publish rows: %w", err)
	}

	fmt.Fprintf(out, "Published %d rows to %s\n", len(rows), cfg.DBTable)
	return nil
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

func setLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		log.Warn().Str("level", level).Msg("Unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
