package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/feedrank/pkg/config"
	"github.com/umputun/feedrank/pkg/content"
	"github.com/umputun/feedrank/pkg/engagement"
	"github.com/umputun/feedrank/pkg/feed"
	"github.com/umputun/feedrank/pkg/ingest"
	"github.com/umputun/feedrank/pkg/interest"
	"github.com/umputun/feedrank/pkg/llm"
	"github.com/umputun/feedrank/pkg/popularity"
	"github.com/umputun/feedrank/pkg/profile"
	"github.com/umputun/feedrank/pkg/ranking"
	"github.com/umputun/feedrank/pkg/repository"
	"github.com/umputun/feedrank/pkg/scheduler"
	"github.com/umputun/feedrank/pkg/service"
	"github.com/umputun/feedrank/pkg/tag"
	"github.com/umputun/feedrank/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides server.listen"`
	DB     string `long:"db" env:"DB" description:"database dsn, overrides database.dsn"`

	IngestOnce bool `long:"ingest-once" description:"run a single ingestion pass and exit"`
	Clear      bool `long:"clear" description:"delete all articles with their tags links and exit"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)
	lgr.Printf("[INFO] starting feedrank version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	lgr.Print("[INFO] shutdown complete")
}

// run wires all components and blocks until ctx is canceled, or until a one-shot command is done
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DB != "" {
		cfg.Database.DSN = opts.DB
	}

	// hide provider keys from logs
	setupLog(opts.Debug, secrets(cfg)...)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()
	store := service.NewStore(repos)

	if opts.Clear {
		n, err := store.ClearArticles(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear articles: %w", err)
		}
		lgr.Printf("[INFO] deleted %d articles", n)
		return nil
	}

	retry := ingest.LinearRetry(cfg.Ingestion.MaxRetries, cfg.Ingestion.RetryDelay)
	embedder := llm.NewEmbedder(cfg.Embedding)
	tags := tag.NewResolver(repos.Tag)

	source := feed.NewSource(cfg.Feeds,
		feed.NewParser(cfg.Feeds.Timeout, cfg.Feeds.UserAgent),
		content.NewExtractor(cfg.Feeds.Timeout, cfg.Feeds.UserAgent))

	pipeline := ingest.NewPipeline(ingest.PipelineConfig{
		Source:     source,
		Summarizer: llm.NewSummarizer(cfg.LLM),
		Embedder:   embedder,
		Articles:   store,
		Tags:       tags,
		Ingestion:  cfg.Ingestion,
		RetryFunc:  retry,
	})

	if opts.IngestOnce {
		res, err := pipeline.Ingest(ctx)
		lgr.Printf("[INFO] ingestion done: fetched %d, new %d, skipped %d, failed %d",
			res.TotalFetched, res.NewArticles, res.Skipped, res.Failed)
		for _, e := range res.Errors {
			lgr.Printf("[WARN] %s", e)
		}
		if err != nil {
			return fmt.Errorf("ingestion failed: %w", err)
		}
		return nil
	}

	notifier := profile.NewNotifier(cfg.Profile.UpdateQueue)
	builder := profile.NewBuilder(profile.BuilderConfig{Store: store, Profile: cfg.Profile, RetryFunc: retry})
	pop := popularity.NewAggregator(store, cfg.Popularity)

	sched := scheduler.NewScheduler(scheduler.Params{
		Ingester:      pipeline,
		ProfileWorker: builder,
		Requests:      notifier.Requests(),
		Interval:      cfg.Ingestion.Interval,
		RunTimeout:    cfg.Ingestion.RunTimeout,
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(server.Params{
		Config: &serverConfig{cfg: cfg},
		Ranker: ranking.NewEngine(ranking.EngineConfig{
			Store:      store,
			Popularity: pop,
			Embedder:   embedder,
			Ranking:    cfg.Ranking,
		}),
		Articles:   store,
		Popularity: pop,
		Tags:       tags,
		Engagement: engagement.NewService(store, notifier),
		Interests:  interest.NewService(store, embedder, notifier),
		Profiles:   store,
		Similarity: store,
		Scheduler:  sched,
		Version:    revision,
		Debug:      opts.Debug,
	})

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// serverConfig exposes the parts of the configuration used by the http server
type serverConfig struct {
	cfg *config.Config
}

func (c *serverConfig) GetServerConfig() (listen string, timeout time.Duration) {
	return c.cfg.Server.Listen, c.cfg.Server.Timeout
}

func (c *serverConfig) GetBaseURL() string { return c.cfg.Server.BaseURL }

func (c *serverConfig) GetFeedURLs() []string { return c.cfg.Feeds.URLs }

func secrets(cfg *config.Config) []string {
	var res []string
	for _, s := range []string{cfg.LLM.APIKey, cfg.Embedding.APIKey} {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
