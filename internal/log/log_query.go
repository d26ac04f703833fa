// log_query.go reads and prunes the audit log.
//
// Separated from log_storage.go, which only ever appends. Both queries run
// against the global logger, so Open must have succeeded first.

package log

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotOpen is returned by queries when the audit log is not open, either
// because Open failed or because audit.enabled is false.
var ErrNotOpen = errors.New("audit log not open")

// QueryOptions filters Recent.
type QueryOptions struct {
	Limit   int    // maximum entries, newest first; 0 means 20
	Company string // exact company number
	Source  string // source prefix, e.g. "mcp:" or "company:report"
	Failed  bool   // only unsuccessful entries
}

func current() (*Logger, error) {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		return nil, ErrNotOpen
	}
	return global, nil
}

// Recent returns the newest entries matching opts.
func Recent(opts QueryOptions) ([]Entry, error) {
	l, err := current()
	if err != nil {
		return nil, err
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}

	var (
		where []string
		args  []any
	)
	if opts.Company != "" {
		where = append(where, "company = ?")
		args = append(args, opts.Company)
	}
	if opts.Source != "" {
		where = append(where, "source LIKE ? ESCAPE '\\'")
		args = append(args, escapeLike(opts.Source)+"%")
	}
	if opts.Failed {
		where = append(where, "success = 0")
	}

	q := `SELECT request_id, start, end, source, action, company, query,
	             success, code, error, detail FROM log`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY start DESC, id DESC LIMIT ?"
	args = append(args, opts.Limit)

	rows, err := l.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e                             Entry
			success                       int
			company, query, code, errText sql.NullString
			detail                        sql.NullString
		)
		if err := rows.Scan(&e.RequestID, &e.Start, &e.End, &e.Source, &e.Action,
			&company, &query, &success, &code, &errText, &detail); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		e.Company = company.String
		e.Query = query.String
		e.Success = success == 1
		e.Code = code.String
		e.Error = errText.String
		if detail.Valid {
			_ = json.Unmarshal([]byte(detail.String), &e.Detail)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Prune deletes entries that started before the cutoff and returns how
// many were (or, with dryRun, would be) removed.
func Prune(before time.Time, dryRun bool) (int64, error) {
	l, err := current()
	if err != nil {
		return 0, err
	}
	cutoff := before.UnixMilli()

	if dryRun {
		var n int64
		if err := l.db.QueryRow(`SELECT COUNT(*) FROM log WHERE start < ?`, cutoff).Scan(&n); err != nil {
			return 0, fmt.Errorf("count audit log: %w", err)
		}
		return n, nil
	}

	res, err := l.db.Exec(`DELETE FROM log WHERE start < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune audit log: %w", err)
	}
	return res.RowsAffected()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
