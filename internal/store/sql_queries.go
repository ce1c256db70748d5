package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const localStorageTable = "local_storage"

// sqlite uses "?" placeholders, which is squirrel's default.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetItemQuery(key string) (string, []any, error) {
	return builder.
		Select("value").
		From(localStorageTable).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
}

func buildSetItemQuery(key, value string, now time.Time) (string, []any, error) {
	return builder.
		Insert(localStorageTable).
		Columns("key", "value", "updated_at").
		Values(key, value, now).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildRemoveItemsQuery(keys []string) (string, []any, error) {
	return builder.
		Delete(localStorageTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
}

func buildClearQuery() (string, []any, error) {
	return builder.Delete(localStorageTable).ToSql()
}
