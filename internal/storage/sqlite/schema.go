package sqlite

// initSchema инициализирует схему БД
func (s *SQLiteStorage) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		transaction_id TEXT UNIQUE NOT NULL,
		sender_account TEXT NOT NULL,
		recipient_account TEXT NOT NULL,
		amount REAL NOT NULL,
		currency TEXT NOT NULL,
		location TEXT,
		card_type TEXT,
		phone TEXT,
		client_ip TEXT,
		timestamp DATETIME NOT NULL,
		anomalous INTEGER NOT NULL,
		reasons TEXT NOT NULL DEFAULT '[]',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_transaction_id ON transactions(transaction_id);
	CREATE INDEX IF NOT EXISTS idx_sender_account ON transactions(sender_account);
	CREATE INDEX IF NOT EXISTS idx_card_type ON transactions(card_type);
	CREATE INDEX IF NOT EXISTS idx_timestamp ON transactions(timestamp);
	`

	_, err := s.DB.Exec(query)
	return err
}
