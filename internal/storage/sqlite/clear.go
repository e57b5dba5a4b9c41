package sqlite

// ClearAll удаляет все транзакции из БД
func (s *SQLiteStorage) ClearAll() error {
	query := `DELETE FROM transactions`
	_, err := s.DB.Exec(query)
	return err
}
