package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/goccy/go-json"

	"github.com/umputun/feedrank/pkg/vector"
)

var (
	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert violates a unique constraint
	ErrDuplicate = errors.New("duplicate record")
)

// maxInParams caps the number of values bound in a single IN list
const maxInParams = 500

// withLockRetry runs fn, retrying only on SQLite lock contention,
// any other error stops retries and is returned as is
func withLockRetry(ctx context.Context, fn func() error) error {
	var critical error
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		err := fn()
		if err != nil && !isLockError(err) {
			critical = err
			return nil
		}
		return err
	})
	if critical != nil {
		return critical
	}
	return err
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// isUniqueError checks if an error is a unique constraint violation
func isUniqueError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "SQLITE_CONSTRAINT_UNIQUE")
}

// chunks splits values into slices of at most size elements
func chunks[T any](values []T, size int) [][]T {
	var res [][]T
	for len(values) > size {
		res = append(res, values[:size])
		values = values[size:]
	}
	if len(values) > 0 {
		res = append(res, values)
	}
	return res
}

// embeddingSQL is a vector stored as a little-endian float64 blob
type embeddingSQL []float64

// Value implements driver.Valuer for database storage
func (e embeddingSQL) Value() (driver.Value, error) {
	if len(e) == 0 {
		return nil, nil
	}
	return vector.Encode(e), nil
}

// Scan implements sql.Scanner for database retrieval
func (e *embeddingSQL) Scan(value any) error {
	if value == nil {
		*e = nil
		return nil
	}
	data, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into embeddingSQL", value)
	}
	v, err := vector.Decode(data)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// stringsSQL is a JSON array of strings for SQL operations
type stringsSQL []string

// Value implements driver.Valuer for database storage
func (s stringsSQL) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (s *stringsSQL) Scan(value any) error {
	data, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		*s = stringsSQL{}
		return nil
	}
	return json.Unmarshal(data, (*[]string)(s))
}

// metadataSQL is a JSON object of free-form event metadata
type metadataSQL map[string]any

// Value implements driver.Valuer for database storage
func (m metadataSQL) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(map[string]any(m))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (m *metadataSQL) Scan(value any) error {
	data, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(data) == 0 || string(data) == "{}" {
		*m = nil
		return nil
	}
	return json.Unmarshal(data, (*map[string]any)(m))
}

func jsonBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("cannot scan %T as json", value)
	}
}

// utc normalizes a time for storage so stored values compare lexically
func utc(t time.Time) time.Time {
	return t.UTC().Round(0)
}
