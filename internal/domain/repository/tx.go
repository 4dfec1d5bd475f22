package repository

import (
	"gorm.io/gorm"
)

// TxRunner выполняет функцию в рамках одной транзакции хранилища.
// Мутации ядра (закрытие сессии, запись прогресса, отправка квиза)
// должны выполняться атомарно; tx передается в методы репозиториев,
// принимающие *gorm.DB.
type TxRunner interface {
	WithinTransaction(fn func(tx *gorm.DB) error) error
}
