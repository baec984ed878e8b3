package lore

import (
	"database/sql"
	"errors"
)

// UpsertUser records a user the first time they are seen and keeps the
// display name current after that. Name updates are last-write-wins; the
// creation timestamp is set once and never touched. Called on every observed
// interaction, so the no-change path does no write at all.
func (s *Store) UpsertUser(id int64, name string) error {
	var current string
	err := s.db.QueryRow(`SELECT name FROM users WHERE discord_id = ?`, id).Scan(&current)

	if errors.Is(err, sql.ErrNoRows) {
		_, err = s.db.Exec(`INSERT INTO users (discord_id, name) VALUES (?, ?)`, id, name)
		return err
	}

	if err != nil {
		return err
	}

	if current == name {
		return nil
	}

	_, err = s.db.Exec(`UPDATE users SET name = ? WHERE discord_id = ?`, name, id)
	return err
}

// AddAlias appends an alias row. Duplicates are allowed and the user id is
// not checked against the users table; writers upsert the user first.
func (s *Store) AddAlias(id int64, alias string) error {
	_, err := s.db.Exec(`INSERT INTO user_aliases (user_id, alias) VALUES (?, ?)`, id, alias)
	return err
}

// SearchUserByName resolves a free-text token to a user id by matching the
// display name or any alias, case-insensitively. When several users match,
// the lowest stored id wins so the result is deterministic. A miss is
// (0, false, nil); an error means the lookup itself failed.
func (s *Store) SearchUserByName(token string) (int64, bool, error) {
	const query = `
		SELECT discord_id AS id FROM users WHERE LOWER(name) = LOWER(?)
		UNION
		SELECT user_id AS id FROM user_aliases WHERE LOWER(alias) = LOWER(?)
		ORDER BY id
		LIMIT 1`

	var id int64
	err := s.db.QueryRow(query, token, token).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, err
	}

	return id, true, nil
}
