// Package store persists the active group and the last fetched balance
// sheet between command invocations. The server owns the ledger; this is
// only the local session state a browser tab would have kept in memory.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"splitsnap/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store is a SQLite-backed session file.
type Store struct {
	db *sql.DB
}

// Open opens or creates the session database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating session dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the session database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveGroup replaces the stored group and roster and clears any cached
// sheet, mirroring the server-side ledger reset on group creation.
func (s *Store) SaveGroup(g model.Group) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"group_info", "members", "expenses", "settlements", "balances"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.Exec("INSERT INTO group_info (id, name, created_at) VALUES (1, ?, ?)", g.Name, now); err != nil {
		return err
	}
	for i, m := range g.Members {
		if _, err := tx.Exec("INSERT INTO members (position, name) VALUES (?, ?)", i, m); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadGroup returns the stored group, or ok=false when none exists.
func (s *Store) LoadGroup() (model.Group, bool, error) {
	var g model.Group
	err := s.db.QueryRow("SELECT name FROM group_info WHERE id = 1").Scan(&g.Name)
	if err == sql.ErrNoRows {
		return model.Group{}, false, nil
	}
	if err != nil {
		return model.Group{}, false, err
	}

	rows, err := s.db.Query("SELECT name FROM members ORDER BY position")
	if err != nil {
		return model.Group{}, false, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return model.Group{}, false, err
		}
		g.Members = append(g.Members, m)
	}
	return g, true, rows.Err()
}

// SaveSheet replaces the cached balance sheet wholesale. Each fetch from
// the server is authoritative; nothing is merged.
func (s *Store) SaveSheet(sheet model.BalanceSheet) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"expenses", "settlements", "balances"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	for i, e := range sheet.Expenses {
		_, err := tx.Exec(`INSERT INTO expenses (position, title, amount, payer, category, split_type)
			VALUES (?, ?, ?, ?, ?, ?)`,
			i, e.Title, e.Amount.Raw, e.Payer, e.Category, string(e.Split))
		if err != nil {
			return err
		}
	}
	for i, st := range sheet.Settlements {
		_, err := tx.Exec(`INSERT INTO settlements (position, from_member, to_member, amount, raw)
			VALUES (?, ?, ?, ?, ?)`,
			i, st.From, st.To, st.Amount.Raw, st.Raw)
		if err != nil {
			return err
		}
	}
	for member, amt := range sheet.Balances {
		_, err := tx.Exec("INSERT INTO balances (member, amount) VALUES (?, ?)", member, amt.Raw)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadSheet reads the cached balance sheet. An empty session yields an
// empty sheet, which renders as all settled.
func (s *Store) LoadSheet() (model.BalanceSheet, error) {
	sheet := model.BalanceSheet{Balances: map[string]model.Amount{}}

	rows, err := s.db.Query("SELECT title, amount, payer, category, split_type FROM expenses ORDER BY position")
	if err != nil {
		return sheet, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var e model.Expense
		var amount, split string
		if err := rows.Scan(&e.Title, &amount, &e.Payer, &e.Category, &split); err != nil {
			return sheet, err
		}
		e.Amount = model.ParseAmount(amount)
		e.Split = model.SplitType(split)
		sheet.Expenses = append(sheet.Expenses, e)
	}
	if err := rows.Err(); err != nil {
		return sheet, err
	}

	stRows, err := s.db.Query("SELECT from_member, to_member, amount, raw FROM settlements ORDER BY position")
	if err != nil {
		return sheet, err
	}
	defer func() { _ = stRows.Close() }()
	for stRows.Next() {
		var st model.Settlement
		var amount string
		var raw sql.NullString
		if err := stRows.Scan(&st.From, &st.To, &amount, &raw); err != nil {
			return sheet, err
		}
		st.Amount = model.ParseAmount(amount)
		st.Raw = raw.String
		sheet.Settlements = append(sheet.Settlements, st)
	}
	if err := stRows.Err(); err != nil {
		return sheet, err
	}

	balRows, err := s.db.Query("SELECT member, amount FROM balances")
	if err != nil {
		return sheet, err
	}
	defer func() { _ = balRows.Close() }()
	for balRows.Next() {
		var member, amount string
		if err := balRows.Scan(&member, &amount); err != nil {
			return sheet, err
		}
		sheet.Balances[member] = model.ParseAmount(amount)
	}
	return sheet, balRows.Err()
}

// DropSettlement removes the index-th cached settlement, counted in
// display order, after the user marks it paid. Indexing by rank rather
// than stored position keeps consecutive drops correct: positions are
// not renumbered, so after one drop the remaining rows no longer line
// up with their original positions. Local-only either way: the server
// recomputes the real sheet on next fetch.
func (s *Store) DropSettlement(index int) error {
	_, err := s.db.Exec(`DELETE FROM settlements WHERE position =
		(SELECT position FROM settlements ORDER BY position LIMIT 1 OFFSET ?)`, index)
	return err
}

// Clear wipes the whole session.
func (s *Store) Clear() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for _, table := range []string{"group_info", "members", "expenses", "settlements", "balances"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}
	return tx.Commit()
}
