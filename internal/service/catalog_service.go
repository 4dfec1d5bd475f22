package service

import (
	"errors"
	"strings"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	"github.com/VictorSilvaVS/enem/internal/domain/repository"
	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
)

// searchLimit — максимум результатов поиска на категорию
const searchLimit = 10

// LandingStats — публичная статистика каталога для стартовой страницы
type LandingStats struct {
	TotalSubjects  int64 `json:"total_subjects"`
	TotalTopics    int64 `json:"total_topics"`
	TotalMaterials int64 `json:"total_materials"`
}

// SearchResults — результаты поиска по каталогу
type SearchResults struct {
	Materials []entity.StudyMaterial `json:"materials"`
	Topics    []entity.Topic         `json:"topics"`
}

// CatalogService отдает каталог дисциплин/тем/материалов вместе с
// прогрессом пользователя. Каталог read-only с точки зрения этого сервиса.
type CatalogService struct {
	subjectRepo  repository.SubjectRepository
	topicRepo    repository.TopicRepository
	materialRepo repository.MaterialRepository
	progressRepo repository.ProgressRepository
}

// NewCatalogService создает новый сервис каталога
func NewCatalogService(
	subjectRepo repository.SubjectRepository,
	topicRepo repository.TopicRepository,
	materialRepo repository.MaterialRepository,
	progressRepo repository.ProgressRepository,
) *CatalogService {
	return &CatalogService{
		subjectRepo:  subjectRepo,
		topicRepo:    topicRepo,
		materialRepo: materialRepo,
		progressRepo: progressRepo,
	}
}

// ListSubjects возвращает активные дисциплины
func (s *CatalogService) ListSubjects() ([]entity.Subject, error) {
	return s.subjectRepo.GetActive()
}

// SubjectDetail возвращает дисциплину, ее активные темы и записи прогресса
// пользователя в этой дисциплине
func (s *CatalogService) SubjectDetail(subjectID, userID uint) (*entity.Subject, []entity.Topic, []entity.ProgressRecord, error) {
	subject, err := s.subjectRepo.GetByID(subjectID)
	if err != nil {
		return nil, nil, nil, err
	}
	topics, err := s.topicRepo.GetActiveBySubject(subjectID)
	if err != nil {
		return nil, nil, nil, err
	}
	progress, err := s.progressRepo.ListByUserAndSubject(userID, subjectID)
	if err != nil {
		return nil, nil, nil, err
	}
	return subject, topics, progress, nil
}

// TopicDetail возвращает тему, ее активные материалы и запись прогресса
// пользователя. Прогресс может отсутствовать — это не ошибка.
func (s *CatalogService) TopicDetail(topicID, userID uint) (*entity.Topic, []entity.StudyMaterial, *entity.ProgressRecord, error) {
	topic, err := s.topicRepo.GetByID(topicID)
	if err != nil {
		return nil, nil, nil, err
	}
	materials, err := s.materialRepo.GetActiveByTopic(topicID)
	if err != nil {
		return nil, nil, nil, err
	}
	progress, err := s.progressRepo.GetByUserTopic(userID, topicID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, nil, err
	}
	return topic, materials, progress, nil
}

// LandingStats возвращает публичные счетчики активного каталога
func (s *CatalogService) LandingStats() (*LandingStats, error) {
	subjects, err := s.subjectRepo.CountActive()
	if err != nil {
		return nil, err
	}
	topics, err := s.topicRepo.CountActive()
	if err != nil {
		return nil, err
	}
	materials, err := s.materialRepo.CountActive()
	if err != nil {
		return nil, err
	}
	return &LandingStats{
		TotalSubjects:  subjects,
		TotalTopics:    topics,
		TotalMaterials: materials,
	}, nil
}

// Search ищет по активным материалам и темам. Пустой запрос дает пустые результаты.
func (s *CatalogService) Search(query string) (*SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &SearchResults{}, nil
	}
	materials, err := s.materialRepo.SearchActive(query, searchLimit)
	if err != nil {
		return nil, err
	}
	topics, err := s.topicRepo.SearchActive(query, searchLimit)
	if err != nil {
		return nil, err
	}
	return &SearchResults{Materials: materials, Topics: topics}, nil
}
