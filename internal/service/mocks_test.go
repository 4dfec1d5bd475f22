package service

import (
	"time"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
)

// ============================================================================
// Общие моки репозиториев для тестов сервисов.
// Все m.Called-обертки следуют одному шаблону: nil в первом аргументе
// означает "вернуть только ошибку".
// ============================================================================

// fakeTxRunner выполняет функцию сразу, без настоящей транзакции
type fakeTxRunner struct{}

func (fakeTxRunner) WithinTransaction(fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

// MockSessionRepository реализует repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(session *entity.StudySession) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByID(id uint) (*entity.StudySession, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StudySession), args.Error(1)
}

func (m *MockSessionRepository) GetByIDForUpdate(tx *gorm.DB, id uint) (*entity.StudySession, error) {
	args := m.Called(tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StudySession), args.Error(1)
}

func (m *MockSessionRepository) Save(tx *gorm.DB, session *entity.StudySession) error {
	args := m.Called(tx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) ListRecentByUser(userID uint, limit int) ([]entity.StudySession, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StudySession), args.Error(1)
}

func (m *MockSessionRepository) SumDurationByUser(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository реализует repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(userID uint, loginTime time.Time) error {
	args := m.Called(userID, loginTime)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockMaterialRepository реализует repository.MaterialRepository
type MockMaterialRepository struct {
	mock.Mock
}

func (m *MockMaterialRepository) Create(material *entity.StudyMaterial) error {
	args := m.Called(material)
	return args.Error(0)
}

func (m *MockMaterialRepository) GetByID(id uint) (*entity.StudyMaterial, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StudyMaterial), args.Error(1)
}

func (m *MockMaterialRepository) GetActiveByTopic(topicID uint) ([]entity.StudyMaterial, error) {
	args := m.Called(topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StudyMaterial), args.Error(1)
}

func (m *MockMaterialRepository) CountActiveByTopic(topicID uint) (int64, error) {
	args := m.Called(topicID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMaterialRepository) SearchActive(query string, limit int) ([]entity.StudyMaterial, error) {
	args := m.Called(query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StudyMaterial), args.Error(1)
}

func (m *MockMaterialRepository) CountActive() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMaterialRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockProgressRepository реализует repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Create(tx *gorm.DB, record *entity.ProgressRecord) error {
	args := m.Called(tx, record)
	return args.Error(0)
}

func (m *MockProgressRepository) Save(tx *gorm.DB, record *entity.ProgressRecord) error {
	args := m.Called(tx, record)
	return args.Error(0)
}

func (m *MockProgressRepository) GetByUserTopicForUpdate(tx *gorm.DB, userID, topicID uint) (*entity.ProgressRecord, error) {
	args := m.Called(tx, userID, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ProgressRecord), args.Error(1)
}

func (m *MockProgressRepository) GetByUserTopic(userID, topicID uint) (*entity.ProgressRecord, error) {
	args := m.Called(userID, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ProgressRecord), args.Error(1)
}

func (m *MockProgressRepository) ListByUser(userID uint) ([]entity.ProgressRecord, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ProgressRecord), args.Error(1)
}

func (m *MockProgressRepository) ListByUserAndSubject(userID, subjectID uint) ([]entity.ProgressRecord, error) {
	args := m.Called(userID, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ProgressRecord), args.Error(1)
}

func (m *MockProgressRepository) SumMaterialsCompleted(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockSubjectRepository реализует repository.SubjectRepository
type MockSubjectRepository struct {
	mock.Mock
}

func (m *MockSubjectRepository) Create(subject *entity.Subject) error {
	args := m.Called(subject)
	return args.Error(0)
}

func (m *MockSubjectRepository) GetByID(id uint) (*entity.Subject, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subject), args.Error(1)
}

func (m *MockSubjectRepository) GetActive() ([]entity.Subject, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Subject), args.Error(1)
}

func (m *MockSubjectRepository) CountActive() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubjectRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockTopicRepository реализует repository.TopicRepository
type MockTopicRepository struct {
	mock.Mock
}

func (m *MockTopicRepository) Create(topic *entity.Topic) error {
	args := m.Called(topic)
	return args.Error(0)
}

func (m *MockTopicRepository) GetByID(id uint) (*entity.Topic, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Topic), args.Error(1)
}

func (m *MockTopicRepository) GetActiveBySubject(subjectID uint) ([]entity.Topic, error) {
	args := m.Called(subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Topic), args.Error(1)
}

func (m *MockTopicRepository) SearchActive(query string, limit int) ([]entity.Topic, error) {
	args := m.Called(query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Topic), args.Error(1)
}

func (m *MockTopicRepository) CountActive() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockQuestionRepository реализует repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepository) CreateBatch(questions []entity.Question) error {
	args := m.Called(questions)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(id uint) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetActiveByTopic(topicID uint, limit int) ([]entity.Question, error) {
	args := m.Called(topicID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetAnswersByIDs(ids []uint) ([]entity.Answer, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Answer), args.Error(1)
}

func (m *MockQuestionRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockAttemptRepository реализует repository.AttemptRepository
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) Create(attempt *entity.QuizAttempt) error {
	args := m.Called(attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) GetByID(id uint) (*entity.QuizAttempt, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QuizAttempt), args.Error(1)
}

func (m *MockAttemptRepository) GetByIDForUpdate(tx *gorm.DB, id uint) (*entity.QuizAttempt, error) {
	args := m.Called(tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QuizAttempt), args.Error(1)
}

func (m *MockAttemptRepository) Save(tx *gorm.DB, attempt *entity.QuizAttempt) error {
	args := m.Called(tx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) SaveUserAnswers(tx *gorm.DB, answers []entity.UserAnswer) error {
	args := m.Called(tx, answers)
	return args.Error(0)
}

func (m *MockAttemptRepository) CountByUser(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttemptRepository) AverageScoreByUser(userID uint) (float64, error) {
	args := m.Called(userID)
	return args.Get(0).(float64), args.Error(1)
}

// MockCacheRepository реализует repository.CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Set(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepository) Get(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepository) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockCacheRepository) SetJSON(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepository) GetJSON(key string, dest interface{}) error {
	args := m.Called(key, dest)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(key string) (bool, error) {
	args := m.Called(key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) DeleteByPattern(pattern string) error {
	args := m.Called(pattern)
	return args.Error(0)
}
