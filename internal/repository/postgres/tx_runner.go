package postgres

import (
	"gorm.io/gorm"
)

// TxRunner реализует repository.TxRunner поверх gorm
type TxRunner struct {
	db *gorm.DB
}

// NewTxRunner создает новый исполнитель транзакций
func NewTxRunner(db *gorm.DB) *TxRunner {
	return &TxRunner{db: db}
}

// WithinTransaction выполняет fn в одной транзакции; при ошибке вся операция откатывается
func (r *TxRunner) WithinTransaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}
