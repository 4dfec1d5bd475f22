package service

import (
	"fmt"

	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
)

// Кастомные ошибки сервисов. Оборачивают общие сентинелы,
// чтобы обработчики могли различать их через errors.Is.
var (
	// ErrNoQuestionsAvailable возвращается при попытке начать квиз по теме без активных вопросов.
	// Попытка при этом не создается — иначе деление на ноль при подсчете счета.
	ErrNoQuestionsAvailable = fmt.Errorf("%w: no active questions for this topic", apperrors.ErrValidation)

	// ErrSessionAlreadyClosed возвращается при повторном закрытии учебной сессии.
	// Переход Open -> Closed одноразовый.
	ErrSessionAlreadyClosed = fmt.Errorf("%w: study session is already closed", apperrors.ErrConflict)

	// ErrAttemptCompleted возвращается при повторной отправке ответов на уже оцененную попытку.
	// Переход Started -> Completed одноразовый.
	ErrAttemptCompleted = fmt.Errorf("%w: quiz attempt is already completed", apperrors.ErrConflict)

	// ErrUsernameTaken возвращается при регистрации с занятым именем пользователя.
	ErrUsernameTaken = fmt.Errorf("%w: username is already taken", apperrors.ErrValidation)

	// ErrEmailTaken возвращается при регистрации с занятым email.
	ErrEmailTaken = fmt.Errorf("%w: email is already in use", apperrors.ErrValidation)

	// ErrInvalidCredentials возвращается при неверной паре логин/пароль.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
)
