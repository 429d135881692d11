// Package query offers full-text search over a parsed thread through an
// in-memory SQLite FTS5 index. The index lives and dies with the process;
// parsed results are never written to disk.
package query

import (
	"database/sql"
	"fmt"
	"strings"
	"unicode"

	_ "modernc.org/sqlite"

	"github.com/threadstat/threadstat/internal/thread"
)

const schema = `
CREATE TABLE items (
    msg_id  INTEGER NOT NULL,
    item_id INTEGER NOT NULL,
    author  TEXT NOT NULL,
    sent    TEXT NOT NULL,
    kind    TEXT NOT NULL,
    body    TEXT NOT NULL,
    PRIMARY KEY (msg_id, item_id)
);

CREATE VIRTUAL TABLE items_fts USING fts5(
    body,
    content=items,
    content_rowid=rowid,
    tokenize='unicode61'
);

CREATE TRIGGER items_ai AFTER INSERT ON items BEGIN
    INSERT INTO items_fts(rowid, body) VALUES (new.rowid, new.body);
END;
`

// Index is a searchable view of one thread.
type Index struct {
	db *sql.DB
}

// Open builds a fresh in-memory index from the thread's content items.
func Open(t *thread.Thread) (*Index, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("begin load: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO items (msg_id, item_id, author, sent, kind, body) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		db.Close()
		return nil, fmt.Errorf("prepare load: %w", err)
	}

	for mi := range t.Messages {
		m := &t.Messages[mi]
		sent := m.Sent.Time().Format("2006-01-02 15:04")
		for ii, item := range m.Items {
			var kind, body string
			switch it := item.(type) {
			case thread.Text:
				kind, body = "text", it.Content
			case thread.Media:
				kind, body = "media", it.URL
			}
			if _, err := stmt.Exec(mi, ii, m.Author, sent, kind, body); err != nil {
				stmt.Close()
				tx.Rollback()
				db.Close()
				return nil, fmt.Errorf("load message %d: %w", mi, err)
			}
		}
	}
	stmt.Close()

	if err := tx.Commit(); err != nil {
		db.Close()
		return nil, fmt.Errorf("load index: %w", err)
	}

	return &Index{db: db}, nil
}

func (ix *Index) Close() error {
	return ix.db.Close()
}

type Result struct {
	Author  string
	Sent    string
	Kind    string
	Snippet string
}

type Options struct {
	Author string // "" = all authors
	Limit  int    // <= 0 = default 50
}

// containsCJK reports whether the query holds any CJK Unified Ideograph.
// FTS5's unicode61 tokenizer cannot split those, so substring matching is
// used instead.
func containsCJK(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// Search runs a full-text query over the indexed items. Snippets wrap the
// matched fragment in >>> <<< markers for the rendering layer.
func (ix *Index) Search(q string, opts Options) ([]Result, error) {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	if containsCJK(q) {
		return ix.searchLike(q, opts)
	}
	return ix.searchFTS(q, opts)
}

func (ix *Index) searchFTS(q string, opts Options) ([]Result, error) {
	conditions := []string{"items_fts MATCH ?"}
	args := []interface{}{q}

	if opts.Author != "" {
		conditions = append(conditions, "i.author = ?")
		args = append(args, opts.Author)
	}

	query := fmt.Sprintf(`
		SELECT i.author, i.sent, i.kind,
		       snippet(items_fts, 0, '>>>', '<<<', '...', 20) AS snip
		FROM items_fts
		JOIN items i ON items_fts.rowid = i.rowid
		WHERE %s
		ORDER BY bm25(items_fts)
		LIMIT ?
	`, strings.Join(conditions, " AND "))
	args = append(args, opts.Limit)

	rows, err := ix.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("search query: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

func (ix *Index) searchLike(q string, opts Options) ([]Result, error) {
	conditions := []string{"i.body LIKE ?"}
	args := []interface{}{"%" + q + "%"}

	if opts.Author != "" {
		conditions = append(conditions, "i.author = ?")
		args = append(args, opts.Author)
	}

	query := fmt.Sprintf(`
		SELECT i.author, i.sent, i.kind, i.body
		FROM items i
		WHERE %s
		ORDER BY i.msg_id, i.item_id
		LIMIT ?
	`, strings.Join(conditions, " AND "))
	args = append(args, opts.Limit)

	rows, err := ix.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("search query: %w", err)
	}
	defer rows.Close()

	results, err := scanResults(rows)
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].Snippet = markMatch(results[i].Snippet, q)
	}
	return results, nil
}

// markMatch wraps the first occurrence of q with the snippet markers.
func markMatch(body, q string) string {
	idx := strings.Index(body, q)
	if idx < 0 {
		return body
	}
	return body[:idx] + ">>>" + body[idx:idx+len(q)] + "<<<" + body[idx+len(q):]
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Author, &r.Sent, &r.Kind, &r.Snippet); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
