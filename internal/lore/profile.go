package lore

import (
	"database/sql"
	"errors"
)

// GetUserProfile composes the directory row, aliases and categorized facts
// into a single read view. Returns (nil, nil) when no user row exists for
// id; an error always means the storage layer failed.
func (s *Store) GetUserProfile(id int64) (*Profile, error) {
	var name string
	err := s.db.QueryRow(`SELECT name FROM users WHERE discord_id = ?`, id).Scan(&name)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	p := &Profile{ID: id, Name: name}

	if p.Aliases, err = s.aliases(id); err != nil {
		return nil, err
	}

	if p.Information, err = s.information(id); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Store) aliases(id int64) ([]string, error) {
	rows, err := s.db.Query(`SELECT alias FROM user_aliases WHERE user_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var aliases []string

	for rows.Next() {
		var alias string
		if err := rows.Scan(&alias); err != nil {
			return nil, err
		}
		aliases = append(aliases, alias)
	}

	return aliases, rows.Err()
}

func (s *Store) information(id int64) ([]InfoGroup, error) {
	rows, err := s.db.Query(`SELECT category, content FROM information WHERE user_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var groups []InfoGroup
	index := make(map[string]int)

	for rows.Next() {
		var category sql.NullString
		var content string
		if err := rows.Scan(&category, &content); err != nil {
			return nil, err
		}

		label := category.String
		if label == "" {
			label = GeneralCategory
		}

		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, InfoGroup{Category: label})
		}
		groups[i].Items = append(groups[i].Items, content)
	}

	return groups, rows.Err()
}
