package lore

// AddInformation appends a categorized fact about a user. Facts are
// append-only: a later fact in the same category never replaces an earlier
// one, both show up on the profile in insertion order.
func (s *Store) AddInformation(id int64, category, content string) error {
	_, err := s.db.Exec(
		`INSERT INTO information (user_id, category, content) VALUES (?, ?, ?)`,
		id, category, content,
	)
	return err
}
