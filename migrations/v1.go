package migrations

import (
	"github.com/ItalyPaleAle/motivation-bot/db"
)

func V1() error {
	DB := db.GetDB()
	sqlStmt := `
CREATE TABLE IF NOT EXISTS migrations (
	version integer not null
);
CREATE TABLE IF NOT EXISTS subscribers (
	chat_id integer primary key,
	first_name text not null default "",
	timezone text not null default ""
);
`

	_, err := DB.Exec(sqlStmt)
	if err != nil {
		return err
	}
	return nil
}
