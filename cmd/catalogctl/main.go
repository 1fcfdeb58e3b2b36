package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"catalog/config"
	"catalog/internal/infra/feed"
	logs "catalog/internal/infra/log"
	"catalog/internal/infra/persistence/gateway"
	"catalog/internal/infra/persistence/sqlstore"
	"catalog/internal/usecase"
	"catalog/internal/usecase/impl"
	"catalog/internal/util"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - migrate: Create the catalog tables
// - ingest:  Fetch (or read) the feed, then persist it
// - export:  Write the ranked catalog to CSV

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)

	ingestCmd := flag.NewFlagSet("ingest", flag.ExitOnError)
	ingestFeed := ingestCmd.String("feed", "", "Feed file to ingest instead of fetching the configured source")
	ingestDryRun := ingestCmd.Bool("dry-run", false, "Parse the feed without writing to the database")

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportOutput := exportCmd.String("output", "", "CSV output path (defaults to feed.csvPath)")
	exportFeed := exportCmd.String("feed", "", "Rank this feed file instead of the database contents")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := ctlFlags{
		Migrate: migrateCmd,
		Ingest: ingestFlags{
			cmd:    ingestCmd,
			feed:   ingestFeed,
			dryRun: ingestDryRun,
		},
		Export: exportFlags{
			cmd:    exportCmd,
			output: exportOutput,
			feed:   exportFeed,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Migrate *flag.FlagSet
	Ingest  ingestFlags
	Export  exportFlags
}

type ingestFlags struct {
	cmd    *flag.FlagSet
	feed   *string
	dryRun *bool
}

type exportFlags struct {
	cmd    *flag.FlagSet
	output *string
	feed   *string
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "migrate":
		return handleMigrate(ctx, flags)
	case "ingest":
		return handleIngest(ctx, flags)
	case "export":
		return handleExport(ctx, flags)
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown subcommand: %s", os.Args[1])
	}
}

// app is the subset of the server wiring a single command needs.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	gw      *gateway.GormGateway
	catalog usecase.CatalogUsecase
}

func newApp(ctx context.Context, withDatabase bool) (*app, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger}
	if !withDatabase {
		a.catalog = impl.NewCatalogService(impl.CatalogServiceParams{
			Config: cfg,
			Logger: logger,
			Parser: feed.NewParser(logger, nil),
		})

		return a, nil
	}

	gw, err := gateway.Connect(ctx, cfg, logger, nil)
	if err != nil {
		return nil, err
	}
	a.gw = gw

	countries := sqlstore.NewCountryRepository(gw, logger)
	categories := sqlstore.NewCategoryRepository(gw, logger)
	a.catalog = impl.NewCatalogService(impl.CatalogServiceParams{
		Config:     cfg,
		Logger:     logger,
		Countries:  countries,
		Categories: categories,
		Prices:     sqlstore.NewPriceHistoryRepository(gw, cfg, logger),
		Products:   sqlstore.NewProductRepository(gw, countries, categories, cfg, logger),
		Parser:     feed.NewParser(logger, nil),
	})

	return a, nil
}

func (a *app) close() {
	if a.gw != nil {
		if err := a.gw.Close(); err != nil {
			a.logger.Warn("Failed to close database", slog.Any("error", err))
		}
	}
}

func handleMigrate(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Migrate.Parse(os.Args[2:]); err != nil {
		return errors.WithStack(err)
	}

	a, err := newApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.gw.Migrate(ctx); err != nil {
		return err
	}
	a.logger.InfoContext(ctx, "Catalog schema migrated", slog.String("dialect", a.gw.Dialect().Name()))

	return nil
}

func handleIngest(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Ingest.cmd.Parse(os.Args[2:]); err != nil {
		return errors.WithStack(err)
	}

	a, err := newApp(ctx, !*flags.Ingest.dryRun)
	if err != nil {
		return err
	}
	defer a.close()

	path := *flags.Ingest.feed
	if path == "" {
		if path, err = feed.NewSource(a.cfg, a.logger).Fetch(ctx); err != nil {
			return err
		}
	}

	products, err := a.catalog.IngestFeed(ctx, path)
	if err != nil {
		return err
	}

	if *flags.Ingest.dryRun {
		fmt.Printf("Parsed %d products from %s\n", len(products), path)

		return nil
	}

	result, err := a.catalog.Persist(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Persisted %d products and %d price observations in %s\n",
		result.Products, result.PriceObservations, util.FormatDuration(result.Duration))

	return nil
}

func handleExport(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Export.cmd.Parse(os.Args[2:]); err != nil {
		return errors.WithStack(err)
	}

	fromFeed := *flags.Export.feed != ""

	a, err := newApp(ctx, !fromFeed)
	if err != nil {
		return err
	}
	defer a.close()

	if fromFeed {
		if _, err := a.catalog.IngestFeed(ctx, *flags.Export.feed); err != nil {
			return err
		}
	} else if err := a.catalog.LoadStores(ctx); err != nil {
		return err
	}

	output := *flags.Export.output
	if output == "" {
		output = a.cfg.Feed.CSVPath
	}

	products := a.catalog.Products()
	if err := feed.ExportCSV(output, products); err != nil {
		return err
	}
	fmt.Printf("Exported %d products to %s\n", len(products), output)

	return nil
}

func printUsage() {
	fmt.Println("Usage: catalogctl <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  migrate   Create the catalog tables")
	fmt.Println("  ingest    Fetch the feed and persist it")
	fmt.Println("  export    Write the ranked catalog to CSV")
	fmt.Println()
	fmt.Println("Run 'catalogctl <command> -h' for command options.")
}
