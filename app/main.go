package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/ckjeong/blogforge/app/api"
	"github.com/ckjeong/blogforge/app/cfg"
	"github.com/ckjeong/blogforge/app/cleaner"
	"github.com/ckjeong/blogforge/app/config"
	"github.com/ckjeong/blogforge/app/feed"
	"github.com/ckjeong/blogforge/app/index"
	"github.com/ckjeong/blogforge/app/site"
)

type options struct {
	OutDir     string `long:"out-dir" env:"OUT_DIR" default:"blog" description:"Directory for generated post files"`
	SiteConfig string `long:"site-config" env:"SITE_CONFIG" default:"site.yml" description:"Optional site configuration file"`
	Debug      bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Import importCommand `command:"import" description:"Convert a Blogger export file into HTML post pages"`
	Clean  cleanCommand  `command:"clean" description:"Clean up titles and formatting of generated post pages"`
	Index  indexCommand  `command:"index" description:"Generate the blog index and category pages"`
	Serve  serveCommand  `command:"serve" description:"Serve the generated site for preview"`
}

var opts options

func main() {
	parser := flags.NewParser(&opts, flags.Default)

	// Apply global options before any command runs
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if opts.Debug {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
		cfg.Set(&cfg.Cfg{
			OutDir:         opts.OutDir,
			SiteConfigPath: opts.SiteConfig,
			Debug:          opts.Debug,
		})
		return command.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return
			}
			// Parse errors are already printed by the flags.Default parser
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadSiteConfig() (*config.SiteConfig, error) {
	return config.NewLoader(cfg.Get().SiteConfigPath).Load()
}

type importCommand struct {
	Args struct {
		ExportFile string `positional-arg-name:"export-file" description:"Path to the Blogger export XML" required:"true"`
	} `positional-args:"true"`
}

func (c *importCommand) Execute([]string) error {
	siteConfig, err := loadSiteConfig()
	if err != nil {
		return err
	}

	exportFile := c.Args.ExportFile
	if _, err := os.Stat(exportFile); err != nil {
		return fmt.Errorf("file '%s' not found", exportFile)
	}

	fmt.Printf("Parsing %s...\n", exportFile)
	data, err := os.ReadFile(exportFile)
	if err != nil {
		return fmt.Errorf("failed to read '%s': %w", exportFile, err)
	}

	posts, err := feed.NewParser(siteConfig.OriginalHost).Run(data)
	if err != nil {
		return err
	}
	posts = feed.NewFilterer(siteConfig.ExcludedLabels).Run(posts)
	fmt.Printf("Found %d blog posts\n", len(posts))

	fmt.Println("\nGenerating HTML files...")
	generated, categoryPosts, err := site.NewGenerator(siteConfig, cfg.Get().OutDir).Run(posts)
	if err != nil {
		return err
	}

	fmt.Printf("\nSuccessfully generated %d blog posts\n", len(generated))
	fmt.Println("\nCategories found:")
	printCategoryCounts(categoryPosts)

	return nil
}

type cleanCommand struct{}

func (c *cleanCommand) Execute([]string) error {
	modified, err := cleaner.NewCleaner(cfg.Get().OutDir).Run()
	if err != nil {
		return err
	}

	fmt.Printf("\nModified %d files\n", modified)

	return nil
}

type indexCommand struct{}

func (c *indexCommand) Execute([]string) error {
	siteConfig, err := loadSiteConfig()
	if err != nil {
		return err
	}

	fmt.Println("Scanning blog posts...")
	allPosts, postsByCategory, err := index.NewScanner(cfg.Get().OutDir).Run()
	if err != nil {
		return err
	}
	fmt.Printf("Found %d posts in %d categories\n", len(allPosts), len(postsByCategory))

	if err := index.NewBuilder(siteConfig, cfg.Get().OutDir).Run(allPosts, postsByCategory); err != nil {
		return err
	}

	fmt.Println("\nCategory breakdown:")
	printCategoryCounts(postsByCategory)

	return nil
}

type serveCommand struct {
	Port string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
}

func (c *serveCommand) Execute([]string) error {
	server := api.NewServer(cfg.Get().OutDir)

	httpServer := &http.Server{
		Addr:         ":" + c.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		fmt.Printf("Serving site preview on http://localhost:%s/\n", c.Port)
		fmt.Println("Press Ctrl+C to shutdown gracefully...")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		fmt.Printf("Received signal: %v\n", sig)
	case err := <-serverErrChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}
	fmt.Println("Preview server stopped")

	return nil
}

func printCategoryCounts[T any](postsByCategory map[string][]T) {
	categories := make([]string, 0, len(postsByCategory))
	for category := range postsByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		fmt.Printf("  - %s: %d posts\n", category, len(postsByCategory[category]))
	}
}
