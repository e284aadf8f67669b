package sqlstore

import (
	"database/sql"
	"errors"

	sqlite "modernc.org/sqlite"
)

func getAffected(res sql.Result) int64 {
	rows, err := res.RowsAffected()
	if err != nil {
		return -1
	}
	return rows
}

// sqliteErrCodeConstraintUnique mirrors modernc.org/sqlite's extended result code
// layout: the primary code occupies the low byte.
const sqliteErrCodeConstraintUnique = 2067 // SQLITE_CONSTRAINT_UNIQUE

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqliteErrCodeConstraintUnique
	}
	return false
}
