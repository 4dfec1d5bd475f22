package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	"github.com/VictorSilvaVS/enem/internal/domain/repository"
	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
)

// ProgressService отслеживает прогресс пользователя по темам:
// ведет уникальную запись на тройку (user, subject, topic) и пересчитывает
// процент завершения по живому числу активных материалов темы.
type ProgressService struct {
	progressRepo repository.ProgressRepository
	materialRepo repository.MaterialRepository
	subjectRepo  repository.SubjectRepository
	txRunner     repository.TxRunner
}

// NewProgressService создает новый сервис прогресса
func NewProgressService(
	progressRepo repository.ProgressRepository,
	materialRepo repository.MaterialRepository,
	subjectRepo repository.SubjectRepository,
	txRunner repository.TxRunner,
) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		materialRepo: materialRepo,
		subjectRepo:  subjectRepo,
		txRunner:     txRunner,
	}
}

// RecordCompletion фиксирует завершение одного материала темы.
// Запись прогресса создается лениво при первом завершении, далее счетчик
// инкрементируется ровно на 1 за вызов. Дедупликации по материалу нет —
// не вызывать дважды за одно событие завершения отвечает вызывающая сторона.
// Чтение-изменение-запись выполняется под блокировкой строки, чтобы два
// конкурентных завершения не дали двойного инкремента.
func (s *ProgressService) RecordCompletion(userID, topicID, subjectID uint, now time.Time) (*entity.ProgressRecord, error) {
	var updated *entity.ProgressRecord

	err := s.txRunner.WithinTransaction(func(tx *gorm.DB) error {
		total, err := s.materialRepo.CountActiveByTopic(topicID)
		if err != nil {
			return fmt.Errorf("failed to count topic materials: %w", err)
		}

		record, err := s.progressRepo.GetByUserTopicForUpdate(tx, userID, topicID)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			record = &entity.ProgressRecord{
				UserID:             userID,
				SubjectID:          subjectID,
				TopicID:            topicID,
				MaterialsCompleted: 1,
				LastStudied:        now,
			}
			record.Recalculate(int(total))
			if err := s.progressRepo.Create(tx, record); err != nil {
				return fmt.Errorf("failed to create progress record: %w", err)
			}
		case err != nil:
			return err
		default:
			record.MaterialsCompleted++
			record.LastStudied = now
			record.Recalculate(int(total))
			if err := s.progressRepo.Save(tx, record); err != nil {
				return fmt.Errorf("failed to update progress record: %w", err)
			}
		}

		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AggregateBySubject возвращает средний процент прогресса по каждой активной
// дисциплине. Дисциплины без записей прогресса дают 0.0, а не ошибку.
func (s *ProgressService) AggregateBySubject(userID uint) (map[string]float64, error) {
	subjects, err := s.subjectRepo.GetActive()
	if err != nil {
		return nil, err
	}

	aggregated := make(map[string]float64, len(subjects))
	for _, subject := range subjects {
		records, err := s.progressRepo.ListByUserAndSubject(userID, subject.ID)
		if err != nil {
			return nil, err
		}
		aggregated[subject.Name] = meanPercentage(records)
	}
	return aggregated, nil
}

// SubjectProgress объединяет дисциплину со средним прогрессом и записями по темам
type SubjectProgress struct {
	Subject entity.Subject          `json:"subject"`
	Average float64                 `json:"average"`
	Records []entity.ProgressRecord `json:"records"`
}

// DetailBySubject возвращает развернутый прогресс по каждой активной дисциплине
func (s *ProgressService) DetailBySubject(userID uint) ([]SubjectProgress, error) {
	subjects, err := s.subjectRepo.GetActive()
	if err != nil {
		return nil, err
	}

	details := make([]SubjectProgress, 0, len(subjects))
	for _, subject := range subjects {
		records, err := s.progressRepo.ListByUserAndSubject(userID, subject.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, SubjectProgress{
			Subject: subject,
			Average: meanPercentage(records),
			Records: records,
		})
	}
	return details, nil
}

// meanPercentage считает среднее по процентам записей; пустой срез дает 0.0
func meanPercentage(records []entity.ProgressRecord) float64 {
	if len(records) == 0 {
		return 0.0
	}
	var sum float64
	for _, record := range records {
		sum += record.ProgressPercentage
	}
	return sum / float64(len(records))
}
