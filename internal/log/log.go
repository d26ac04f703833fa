// Package log provides the local audit log for chtools operations.
// Entries are stored in ~/.chtools/log/chtools-log.db and record every CLI
// command and MCP tool invocation: what was asked, of which company, and
// how it ended.
//
// Entries never carry the API key. The builder has no field for it and
// error text from the client omits credentials.
//
// # Fluent API
//
//	log.Event("company:profile", "profile").
//		Company(number).
//		Write(err)
//
//	log.Event("mcp:search_companies", "search").
//		Query(q).
//		Detail("count", len(res.Items)).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	RequestID string `json:"request_id"`        // unique per invocation
	Source    string `json:"source"`            // e.g., "company:report", "mcp:generate_company_report"
	Action    string `json:"action"`            // verb: search, profile, officers, report, etc.
	Company   string `json:"company,omitempty"` // company number requested, if any
	Query     string `json:"query,omitempty"`   // search text, if any

	// Timing, unix milliseconds
	Start int64 `json:"start"` // when Event() was called
	End   int64 `json:"end"`   // when Write() was called

	Success bool           `json:"success"`          // whether the operation succeeded
	Code    string         `json:"code,omitempty"`   // stable error code when it did not
	Error   string         `json:"error,omitempty"`  // error message if failed
	Detail  map[string]any `json:"detail,omitempty"` // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write].
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation and assigns it a
// request id.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			RequestID: uuid.NewString(),
			Source:    source,
			Action:    action,
			Start:     time.Now().UnixMilli(),
		},
	}
}

// RequestID returns the id assigned to this entry, for correlating with
// operational logs.
func (b *Builder) RequestID() string {
	return b.entry.RequestID
}

// Company sets the company number this operation targets.
func (b *Builder) Company(number string) *Builder {
	b.entry.Company = number
	return b
}

// Query sets the search text.
func (b *Builder) Query(q string) *Builder {
	b.entry.Query = q
	return b
}

// Code records the stable error code reported to the caller.
func (b *Builder) Code(code string) *Builder {
	b.entry.Code = code
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// result counts, paging, unavailable report sections.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
//	res, err := svc.Profile(ctx, key, number)
//	log.Event("company:profile", "profile").Company(number).Write(err)
//	if err != nil {
//		return err
//	}
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().UnixMilli()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute working directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
