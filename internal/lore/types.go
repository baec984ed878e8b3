package lore

import (
	"database/sql"
	"time"
)

// GeneralCategory is the label substituted for facts written without a
// category. Substitution happens on read so stored rows keep whatever the
// writer supplied.
const GeneralCategory = "General"

type Store struct {
	db *sql.DB
}

type User struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Story is a free-standing narrative record, optionally tagged with the
// homeworld it belongs to. Homeworld is "" when the row is untagged.
type Story struct {
	ID        int64
	Title     string
	Content   string
	Homeworld string
	CreatedAt time.Time
}

// InfoGroup is one category of a user's recorded facts, in insertion order.
type InfoGroup struct {
	Category string
	Items    []string
}

// Profile is the aggregated read view of a user: identity, aliases and
// every recorded fact grouped by category. Categories appear in the order
// they were first written.
type Profile struct {
	ID          int64
	Name        string
	Aliases     []string
	Information []InfoGroup
}

// Group returns the items recorded under category, or nil.
func (p *Profile) Group(category string) []string {
	for _, g := range p.Information {
		if g.Category == category {
			return g.Items
		}
	}
	return nil
}
