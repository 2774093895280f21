package sqlutils

import (
	"database/sql"
	"time"
)

var zeroTime = time.Time{}

// GetNullableSqlTime maps the zero time onto SQL NULL.
func GetNullableSqlTime(u time.Time) sql.NullTime {
	if zeroTime.Equal(u) {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: u, Valid: true}
}
