package dbmetrics

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок Postgres, означающие проигрыш конкурентной транзакции
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// IsConcurrencyConflict возвращает true, если err - это откат транзакции
// из-за конкурентного доступа (serialization failure или deadlock)
// Такие операции можно безопасно повторить
func IsConcurrencyConflict(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) &&
		(pqErr.Code == pgSerializationFailure || pqErr.Code == pgDeadlockDetected)
}
