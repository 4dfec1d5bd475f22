package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	"github.com/VictorSilvaVS/enem/internal/domain/repository"
	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
)

// SessionService ведет журнал учебных сессий: открывает сессию при начале
// работы с материалом и закрывает ее при завершении, вычисляя длительность.
// Прогресс он не трогает — обновление прогресса компонует вызывающая сторона.
type SessionService struct {
	sessionRepo  repository.SessionRepository
	materialRepo repository.MaterialRepository
	txRunner     repository.TxRunner
}

// NewSessionService создает новый сервис учебных сессий
func NewSessionService(
	sessionRepo repository.SessionRepository,
	materialRepo repository.MaterialRepository,
	txRunner repository.TxRunner,
) *SessionService {
	return &SessionService{
		sessionRepo:  sessionRepo,
		materialRepo: materialRepo,
		txRunner:     txRunner,
	}
}

// Start открывает учебную сессию по материалу и возвращает ее вместе
// с самим материалом. Дисциплина и тема денормализуются на сессию из материала.
func (s *SessionService) Start(userID, materialID uint, startTime time.Time) (*entity.StudySession, *entity.StudyMaterial, error) {
	material, err := s.materialRepo.GetByID(materialID)
	if err != nil {
		return nil, nil, err
	}
	if !material.IsActive {
		return nil, nil, apperrors.ErrNotFound
	}

	session := &entity.StudySession{
		UserID:     userID,
		SubjectID:  material.SubjectID,
		TopicID:    material.TopicID,
		MaterialID: material.ID,
		StartTime:  startTime,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, nil, fmt.Errorf("failed to create study session: %w", err)
	}
	return session, material, nil
}

// Finish закрывает сессию: устанавливает время окончания, длительность
// в целых минутах, отметку завершения и заметки. Закрыть можно только
// свою и только открытую сессию; повторное закрытие отклоняется,
// check-and-set выполняется под блокировкой строки.
func (s *SessionService) Finish(sessionID, userID uint, endTime time.Time, notes string) (*entity.StudySession, error) {
	var closed *entity.StudySession

	err := s.txRunner.WithinTransaction(func(tx *gorm.DB) error {
		session, err := s.sessionRepo.GetByIDForUpdate(tx, sessionID)
		if err != nil {
			return err
		}
		if session.UserID != userID {
			return apperrors.ErrForbidden
		}
		if session.Completed {
			return ErrSessionAlreadyClosed
		}

		session.Close(endTime, notes)
		if err := s.sessionRepo.Save(tx, session); err != nil {
			return fmt.Errorf("failed to close study session: %w", err)
		}
		closed = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}
