package migrations

import (
	"database/sql"
	"fmt"

	"github.com/ItalyPaleAle/motivation-bot/db"
)

func V2() error {
	DB := db.GetDB()

	// Get the version
	res := &struct {
		Version int
	}{}
	err := DB.Get(res, "SELECT version FROM migrations WHERE ROWID = 0")
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	version = res.Version

	// Update to version 2 if needed
	// This adds the subscribed flag, so chats that stop the daily messages are kept in the table
	if version < 2 {
		fmt.Println("Migrating database to version 2")
		sqlStmt := `
ALTER TABLE subscribers ADD COLUMN subscribed integer not null default 1;
ALTER TABLE subscribers ADD COLUMN subscribed_at timestamp not null default "0001-01-01 00:00:00";
INSERT OR REPLACE INTO migrations (ROWID, version) VALUES (0, 2);
`

		_, err := DB.Exec(sqlStmt)
		if err != nil {
			return err
		}
		version = 2
	}
	return nil
}
