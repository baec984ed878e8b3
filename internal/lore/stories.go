package lore

import "database/sql"

// AddStory appends a story. An empty homeworld is stored as NULL so untagged
// rows stay distinguishable from a literal empty tag.
func (s *Store) AddStory(title, content, homeworld string) error {
	var tag any
	if homeworld != "" {
		tag = homeworld
	}

	_, err := s.db.Exec(
		`INSERT INTO stories (title, content, homeworld) VALUES (?, ?, ?)`,
		title, content, tag,
	)
	return err
}

// GetRecentStories returns up to limit stories, preferring those tagged with
// homeworld. Matching stories come first, most recent first; if they fall
// short of limit the remainder is filled with the globally most recent
// untagged-or-other stories, so regional lore is surfaced without starving
// the result when it is sparse. Homeworld comparison is case-sensitive.
func (s *Store) GetRecentStories(limit int, homeworld string) ([]Story, error) {
	if limit <= 0 {
		return nil, nil
	}

	var stories []Story

	if homeworld != "" {
		rows, err := s.db.Query(
			`SELECT id, title, content, homeworld, created_at FROM stories
			 WHERE homeworld = ?
			 ORDER BY created_at DESC, id DESC
			 LIMIT ?`, homeworld, limit)
		if err != nil {
			return nil, err
		}

		stories, err = scanStories(rows)
		if err != nil {
			return nil, err
		}
	}

	remaining := limit - len(stories)
	if remaining == 0 {
		return stories, nil
	}

	// The preferred tier drained every matching story, so excluding the tag
	// excludes exactly the rows already selected.
	query := `SELECT id, title, content, homeworld, created_at FROM stories
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`
	args := []any{remaining}

	if homeworld != "" {
		query = `SELECT id, title, content, homeworld, created_at FROM stories
			 WHERE homeworld IS NULL OR homeworld <> ?
			 ORDER BY created_at DESC, id DESC
			 LIMIT ?`
		args = []any{homeworld, remaining}
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}

	filler, err := scanStories(rows)
	if err != nil {
		return nil, err
	}

	return append(stories, filler...), nil
}

// GetAllStories returns every story, most recent first.
func (s *Store) GetAllStories() ([]Story, error) {
	rows, err := s.db.Query(
		`SELECT id, title, content, homeworld, created_at FROM stories
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}

	return scanStories(rows)
}

func scanStories(rows *sql.Rows) ([]Story, error) {
	defer rows.Close()
	var stories []Story

	for rows.Next() {
		var st Story
		var homeworld sql.NullString
		if err := rows.Scan(&st.ID, &st.Title, &st.Content, &homeworld, &st.CreatedAt); err != nil {
			return nil, err
		}
		st.Homeworld = homeworld.String
		stories = append(stories, st)
	}

	return stories, rows.Err()
}
