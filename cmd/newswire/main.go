package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"newswire/adapter/export"
	"newswire/adapter/postgres"
	"newswire/adapter/rss"
	"newswire/app"
	"newswire/internal/config"
	"newswire/internal/langdetect"
	"newswire/internal/logger"
	"newswire/internal/report"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "--help", "-h", "help":
		printHelp()
		return
	case "scrape":
		err = cmdScrape(args)
	case "articles":
		err = cmdArticles(args)
	case "sources":
		err = cmdSources(args)
	default:
		fmt.Printf("unknown command: %s\n\n", cmd)
		printHelp()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "newswire: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Print(`Usage:
  newswire COMMAND [OPTIONS]

Commands:
   scrape          fetch all registry feeds once and persist the articles
                   [--registry FILE]
   articles        show stored articles [--country NAME] [--num N]
   sources         list the feed registry [--registry FILE]
   help            show this help
`)
}

func cmdScrape(args []string) error {
	fset := flag.NewFlagSet("scrape", flag.ContinueOnError)
	var registryPath string
	fset.StringVar(&registryPath, "registry", "", "path to YAML feed registry (default: built-in)")
	if err := fset.Parse(args); err != nil {
		return err
	}

	cfg := config.Load()
	if registryPath != "" {
		cfg.RegistryPath = registryPath
	}
	log := logger.New(cfg.LogLevel)

	registry, err := config.LoadRegistry(cfg.RegistryPath)
	if err != nil {
		return err
	}

	database, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer database.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo := postgres.New(database)
	if err := repo.Ensure(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	pipe := app.NewPipeline(
		repo,
		rss.NewHTTPFetcher(cfg.FetchTimeout, cfg.FetchRetries),
		rss.NewParser(),
		langdetect.New(),
		export.NewCSVExporter(cfg.ExportPath, cfg.ExportMode),
		log,
	)

	log.Info("scrape started", "feeds", len(registry))
	summary, err := pipe.Run(ctx, registry)
	if err != nil {
		return err
	}
	fmt.Print(report.Render(summary))
	return nil
}

func cmdArticles(args []string) error {
	fset := flag.NewFlagSet("articles", flag.ContinueOnError)
	var country string
	var num int
	fset.StringVar(&country, "country", "", "filter by country")
	fset.IntVar(&num, "num", 10, "number of articles")
	if err := fset.Parse(args); err != nil {
		return err
	}

	cfg := config.Load()
	database, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer database.Close()

	repo := postgres.New(database)
	if err := repo.Ensure(context.Background()); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	arts, err := repo.ListArticles(context.Background(), country, num)
	if err != nil {
		return err
	}
	for i, a := range arts {
		published := "unknown date"
		if a.PublishedAt != nil {
			published = a.PublishedAt.Format("2006-01-02")
		}
		fmt.Printf("%d. [%s | %s | %s] %s\n   %s\n\n",
			i+1, a.Country, a.Language, published, a.Title, a.Link)
	}
	return nil
}

func cmdSources(args []string) error {
	fset := flag.NewFlagSet("sources", flag.ContinueOnError)
	var registryPath string
	fset.StringVar(&registryPath, "registry", "", "path to YAML feed registry (default: built-in)")
	if err := fset.Parse(args); err != nil {
		return err
	}

	cfg := config.Load()
	if registryPath != "" {
		cfg.RegistryPath = registryPath
	}
	registry, err := config.LoadRegistry(cfg.RegistryPath)
	if err != nil {
		return err
	}
	for i, f := range registry {
		fmt.Printf("%d. %s - %s\n   %s\n", i+1, f.Country, f.Source, f.URL)
	}
	return nil
}

func openDB(cfg config.Config) (*sql.DB, error) {
	pgURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDatabase,
	)
	database, err := sql.Open("postgres", pgURL)
	if err != nil {
		return nil, err
	}
	database.SetMaxOpenConns(10)
	database.SetMaxIdleConns(10)
	database.SetConnMaxLifetime(30 * time.Minute)
	if err := database.Ping(); err != nil {
		return nil, err
	}
	return database, nil
}
