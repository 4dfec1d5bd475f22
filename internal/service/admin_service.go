package service

import (
	"fmt"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	"github.com/VictorSilvaVS/enem/internal/domain/repository"
	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
)

// AdminTotals — сводные счетчики для административного дашборда
type AdminTotals struct {
	TotalUsers     int64 `json:"total_users"`
	TotalSubjects  int64 `json:"total_subjects"`
	TotalMaterials int64 `json:"total_materials"`
	TotalQuestions int64 `json:"total_questions"`
}

// AdminService обслуживает административные операции: счетчики
// и пакетный импорт вопросов каталога
type AdminService struct {
	userRepo     repository.UserRepository
	subjectRepo  repository.SubjectRepository
	materialRepo repository.MaterialRepository
	questionRepo repository.QuestionRepository
	topicRepo    repository.TopicRepository
}

// NewAdminService создает новый административный сервис
func NewAdminService(
	userRepo repository.UserRepository,
	subjectRepo repository.SubjectRepository,
	materialRepo repository.MaterialRepository,
	questionRepo repository.QuestionRepository,
	topicRepo repository.TopicRepository,
) *AdminService {
	return &AdminService{
		userRepo:     userRepo,
		subjectRepo:  subjectRepo,
		materialRepo: materialRepo,
		questionRepo: questionRepo,
		topicRepo:    topicRepo,
	}
}

// Totals возвращает сводные счетчики по всей базе
func (s *AdminService) Totals() (*AdminTotals, error) {
	users, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	subjects, err := s.subjectRepo.Count()
	if err != nil {
		return nil, err
	}
	materials, err := s.materialRepo.Count()
	if err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.Count()
	if err != nil {
		return nil, err
	}
	return &AdminTotals{
		TotalUsers:     users,
		TotalSubjects:  subjects,
		TotalMaterials: materials,
		TotalQuestions: questions,
	}, nil
}

// ImportQuestions валидирует и сохраняет пакет вопросов с ответами.
// У каждого вопроса должна существовать тема (subject_id денормализуется
// из нее), минимум два варианта и ровно один правильный — инвариант
// каталога, на который опирается оценивание квизов.
func (s *AdminService) ImportQuestions(questions []entity.Question) (int, error) {
	if len(questions) == 0 {
		return 0, fmt.Errorf("%w: no questions to import", apperrors.ErrValidation)
	}

	for i := range questions {
		q := &questions[i]
		topic, err := s.topicRepo.GetByID(q.TopicID)
		if err != nil {
			return 0, fmt.Errorf("%w: question %d references unknown topic %d", apperrors.ErrValidation, i+1, q.TopicID)
		}
		q.SubjectID = topic.SubjectID

		if len(q.Answers) < 2 {
			return 0, fmt.Errorf("%w: question %d needs at least 2 answers", apperrors.ErrValidation, i+1)
		}
		correct := 0
		for _, a := range q.Answers {
			if a.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return 0, fmt.Errorf("%w: question %d must have exactly one correct answer, got %d", apperrors.ErrValidation, i+1, correct)
		}
	}

	if err := s.questionRepo.CreateBatch(questions); err != nil {
		return 0, fmt.Errorf("failed to import questions: %w", err)
	}
	return len(questions), nil
}
