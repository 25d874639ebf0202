package repositories

import (
	"errors"
	"fmt"

	"cmms-backend/internal/core/domain"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// MySQL server error numbers the store translates
const (
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452
)

// translate maps driver level failures onto the domain taxonomy.
// Anything it does not recognise is returned wrapped, untouched.
func translate(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateEntry
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry:
			return domain.ErrDuplicateEntry
		case mysqlRowIsReferenced:
			return domain.ErrReferentialConflict
		case mysqlNoReferencedRow:
			return fmt.Errorf("%w: referenced row missing", domain.ErrNotFound)
		}
	}

	return fmt.Errorf("store: %w", err)
}
