package txmanager

import "errors"

// ErrTransaction возвращается при ошибках begin/commit/rollback
var ErrTransaction = errors.New("txmanager: transaction error")
