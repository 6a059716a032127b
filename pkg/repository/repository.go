package repository

import (
	"context"
	"database/sql/driver"
	"embed"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"

	"github.com/umputun/feedrank/pkg/vector"
)

//go:embed schema.sql
var schemaFS embed.FS

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Repositories contains all repository instances
type Repositories struct {
	Article    *ArticleRepository
	Tag        *TagRepository
	Engagement *EngagementRepository
	Interest   *InterestRepository
	Profile    *ProfileRepository
	Similarity *SimilarityRepository
	DB         *sqlx.DB
}

var registerOnce sync.Once

// NewRepositories creates all repositories with a shared database connection
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	if cfg.DSN == "" {
		cfg.DSN = "feedrank.db"
	}

	var regErr error
	registerOnce.Do(func() { regErr = registerFunctions() })
	if regErr != nil {
		return nil, fmt.Errorf("register sql functions: %w", regErr)
	}

	db, err := sqlx.Open("sqlite", prepareDSN(cfg.DSN))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// initialize schema
	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	repos := &Repositories{
		Article:    NewArticleRepository(db),
		Tag:        NewTagRepository(db),
		Engagement: NewEngagementRepository(db),
		Interest:   NewInterestRepository(db),
		Profile:    NewProfileRepository(db),
		Similarity: NewSimilarityRepository(db),
		DB:         db,
	}

	lgr.Printf("[DEBUG] database initialized, dsn=%s", cfg.DSN)
	return repos, nil
}

// Close closes the database connection
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// Ping verifies the database connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// sqlitePragmas are applied to every pooled connection, not just the first one
var sqlitePragmas = []string{
	"busy_timeout(5000)",
	"foreign_keys(1)",
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
	"cache_size(-64000)",
	"temp_store(MEMORY)",
}

// prepareDSN adds per-connection pragmas and the sqlite time format to dsn
// unless the caller already set them
func prepareDSN(dsn string) string {
	base, query, _ := strings.Cut(dsn, "?")
	params, err := url.ParseQuery(query)
	if err != nil {
		return dsn
	}
	if _, ok := params["_pragma"]; !ok {
		for _, p := range sqlitePragmas {
			if base == ":memory:" && strings.HasPrefix(p, "journal_mode") {
				continue
			}
			params.Add("_pragma", p)
		}
	}
	if params.Get("_time_format") == "" {
		params.Set("_time_format", "sqlite")
	}
	if params.Get("_txlock") == "" {
		params.Set("_txlock", "immediate")
	}
	return base + "?" + params.Encode()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sqlx.DB) error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}

	return nil
}

// registerFunctions adds cosine_similarity(a, b) over embedding blobs, NULL for
// missing, zero-norm or mismatched vectors
func registerFunctions() error {
	return sqlite.RegisterDeterministicScalarFunction("cosine_similarity", 2,
		func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			a, okA := args[0].([]byte)
			b, okB := args[1].([]byte)
			if !okA || !okB {
				return nil, nil
			}
			va, err := vector.Decode(a)
			if err != nil {
				return nil, err
			}
			vb, err := vector.Decode(b)
			if err != nil {
				return nil, err
			}
			sim, ok := vector.Cosine(va, vb)
			if !ok {
				return nil, nil
			}
			return sim, nil
		})
}
