package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-budget-sync/models"
)

const (
	createUser = `INSERT INTO users (login, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, password_hash, name, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, name, created_at
    FROM users
    WHERE login = $1;`
)

// Dollar placeholders work against both backends: PostgreSQL natively, and
// SQLite via its $NNN named-parameter form.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectDocument builds the lookup of one document row's body.
func buildSelectDocument(userID int64, collection models.Collection) (string, []any, error) {
	return psql.
		Select("data").
		From("documents").
		Where(sq.Eq{"user_id": userID, "collection": string(collection)}).
		ToSql()
}

// buildUpsertDocument builds the insert-or-overwrite of one document row.
func buildUpsertDocument(userID int64, collection models.Collection, data string, updatedAt time.Time) (string, []any, error) {
	return psql.
		Insert("documents").
		Columns("user_id", "collection", "data", "updated_at").
		Values(userID, string(collection), data, updatedAt).
		Suffix("ON CONFLICT (user_id, collection) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at").
		ToSql()
}
