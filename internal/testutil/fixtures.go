// Package testutil provides shared schema and database fixtures.
package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/relquery/relq/internal/schema"
)

// TicketSchema returns the schema used across tests: a ticket entity
// with a default scope hiding closed tickets and two named scopes.
func TicketSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.Parse([]byte(`
entities:
  ticket:
    table: tickets
    attributes:
      - {name: status, type: string}
      - {name: priority, type: number}
      - {name: assignee, type: string}
    default_scope:
      - {column: status, values: [open, triaged]}
    scopes:
      open:
        - {column: status, value: open}
      urgent:
        - {column: priority, value: 1}
  note:
    table: notes
    attributes:
      - {name: body, type: string}
`))
	if err != nil {
		t.Fatalf("failed to parse fixture schema: %v", err)
	}
	return s
}

// TicketEntity returns the ticket entity from the fixture schema.
func TicketEntity(t *testing.T) *schema.Entity {
	t.Helper()
	entity, err := TicketSchema(t).Entity("ticket")
	if err != nil {
		t.Fatalf("fixture schema has no ticket entity: %v", err)
	}
	return entity
}

// SetupDB opens an in-memory sqlite database with the tickets table
// seeded. Rows are inserted in id order so default query order is
// stable.
func SetupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE tickets (
			id INTEGER PRIMARY KEY,
			status TEXT NOT NULL,
			priority INTEGER NOT NULL,
			assignee TEXT
		);

		INSERT INTO tickets (id, status, priority, assignee) VALUES
			(1, 'open',    1, 'kim'),
			(2, 'open',    3, 'ada'),
			(3, 'triaged', 2, 'kim'),
			(4, 'closed',  1, NULL),
			(5, 'open',    2, 'sam');
	`)
	if err != nil {
		t.Fatalf("failed to seed database: %v", err)
	}
	return db
}
