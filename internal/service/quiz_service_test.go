package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
)

func newQuizServiceForTest() (*QuizService, *MockAttemptRepository, *MockQuestionRepository, *MockTopicRepository) {
	attemptRepo := new(MockAttemptRepository)
	questionRepo := new(MockQuestionRepository)
	topicRepo := new(MockTopicRepository)
	svc := NewQuizService(attemptRepo, questionRepo, topicRepo, fakeTxRunner{})
	return svc, attemptRepo, questionRepo, topicRepo
}

func TestQuizService_StartAttempt(t *testing.T) {
	// Arrange: в теме всего 2 вопроса при лимите 10
	svc, attemptRepo, questionRepo, topicRepo := newQuizServiceForTest()
	now := time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC)

	topicRepo.On("GetByID", uint(3)).Return(&entity.Topic{ID: 3, SubjectID: 2}, nil)
	questions := []entity.Question{{ID: 10, TopicID: 3}, {ID: 11, TopicID: 3}}
	questionRepo.On("GetActiveByTopic", uint(3), DefaultQuestionLimit).Return(questions, nil)
	attemptRepo.On("Create", mock.AnythingOfType("*entity.QuizAttempt")).Return(nil)

	// Act
	attempt, selected, err := svc.StartAttempt(1, 3, 0, now)

	// Assert
	require.NoError(t, err)
	assert.Len(t, selected, 2)
	assert.Equal(t, 2, attempt.TotalQuestions, "Снимок total_questions должен равняться фактической выборке")
	assert.Equal(t, uint(2), attempt.SubjectID, "Дисциплина должна денормализоваться из темы")
	assert.Equal(t, now, attempt.StartTime)
	assert.False(t, attempt.Completed)
	attemptRepo.AssertExpectations(t)
}

func TestQuizService_StartAttempt_NoQuestions(t *testing.T) {
	// Arrange
	svc, attemptRepo, questionRepo, topicRepo := newQuizServiceForTest()

	topicRepo.On("GetByID", uint(3)).Return(&entity.Topic{ID: 3, SubjectID: 2}, nil)
	questionRepo.On("GetActiveByTopic", uint(3), DefaultQuestionLimit).Return([]entity.Question{}, nil)

	// Act
	attempt, selected, err := svc.StartAttempt(1, 3, 0, time.Now())

	// Assert
	assert.Nil(t, attempt)
	assert.Nil(t, selected)
	assert.ErrorIs(t, err, ErrNoQuestionsAvailable)
	attemptRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestQuizService_StartAttempt_TopicNotFound(t *testing.T) {
	// Arrange
	svc, attemptRepo, questionRepo, topicRepo := newQuizServiceForTest()

	topicRepo.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound)

	// Act
	_, _, err := svc.StartAttempt(1, 99, 0, time.Now())

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	questionRepo.AssertNotCalled(t, "GetActiveByTopic", mock.Anything, mock.Anything)
	attemptRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestQuizService_SubmitAttempt(t *testing.T) {
	// Arrange: 2 вопроса, один ответ правильный, один — нет
	svc, attemptRepo, questionRepo, _ := newQuizServiceForTest()
	now := time.Date(2026, 3, 12, 14, 5, 0, 0, time.UTC)

	attempt := &entity.QuizAttempt{
		ID:             8,
		UserID:         1,
		TotalQuestions: 2,
		StartTime:      now.Add(-90 * time.Second),
	}
	answers := []entity.Answer{
		{ID: 100, QuestionID: 10, IsCorrect: true},
		{ID: 111, QuestionID: 11, IsCorrect: false},
	}

	questionRepo.On("GetAnswersByIDs", mock.AnythingOfType("[]uint")).Return(answers, nil)
	attemptRepo.On("GetByIDForUpdate", mock.Anything, uint(8)).Return(attempt, nil)
	attemptRepo.On("Save", mock.Anything, attempt).Return(nil)
	attemptRepo.On("SaveUserAnswers", mock.Anything, mock.AnythingOfType("[]entity.UserAnswer")).Return(nil)

	// Act
	result, err := svc.SubmitAttempt(8, 1, map[uint]uint{10: 100, 11: 111}, now)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.CorrectAnswers)
	assert.Equal(t, 2, result.TotalQuestions)
	assert.Equal(t, 50.0, result.Score, "1 из 2 правильных = 50.0")
	assert.True(t, attempt.Completed)
	require.NotNil(t, attempt.TimeTaken)
	assert.Equal(t, 90, *attempt.TimeTaken, "Время прохождения в целых секундах")
	attemptRepo.AssertExpectations(t)
}

func TestQuizService_SubmitAttempt_ForeignAnswerNotCounted(t *testing.T) {
	// Arrange: правильный ответ чужого вопроса отправлен на вопрос 10
	svc, attemptRepo, questionRepo, _ := newQuizServiceForTest()

	attempt := &entity.QuizAttempt{
		ID:             8,
		UserID:         1,
		TotalQuestions: 1,
		StartTime:      time.Now(),
	}
	// Вариант 111 правильный, но принадлежит вопросу 11
	questionRepo.On("GetAnswersByIDs", mock.AnythingOfType("[]uint")).
		Return([]entity.Answer{{ID: 111, QuestionID: 11, IsCorrect: true}}, nil)
	attemptRepo.On("GetByIDForUpdate", mock.Anything, uint(8)).Return(attempt, nil)
	attemptRepo.On("Save", mock.Anything, attempt).Return(nil)
	attemptRepo.On("SaveUserAnswers", mock.Anything, mock.MatchedBy(func(ua []entity.UserAnswer) bool {
		return len(ua) == 1 && !ua[0].IsCorrect
	})).Return(nil)

	// Act
	result, err := svc.SubmitAttempt(8, 1, map[uint]uint{10: 111}, time.Now())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, result.CorrectAnswers, "Ответ чужого вопроса не должен засчитываться")
	assert.Equal(t, 0.0, result.Score)
	attemptRepo.AssertExpectations(t)
}

func TestQuizService_SubmitAttempt_UnknownAnswerNotCounted(t *testing.T) {
	// Arrange: выбранный вариант вообще не существует
	svc, attemptRepo, questionRepo, _ := newQuizServiceForTest()

	attempt := &entity.QuizAttempt{
		ID:             8,
		UserID:         1,
		TotalQuestions: 1,
		StartTime:      time.Now(),
	}
	questionRepo.On("GetAnswersByIDs", mock.AnythingOfType("[]uint")).Return([]entity.Answer{}, nil)
	attemptRepo.On("GetByIDForUpdate", mock.Anything, uint(8)).Return(attempt, nil)
	attemptRepo.On("Save", mock.Anything, attempt).Return(nil)
	attemptRepo.On("SaveUserAnswers", mock.Anything, mock.AnythingOfType("[]entity.UserAnswer")).Return(nil)

	// Act
	result, err := svc.SubmitAttempt(8, 1, map[uint]uint{10: 999}, time.Now())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, result.CorrectAnswers)
}

func TestQuizService_SubmitAttempt_AlreadyCompleted(t *testing.T) {
	// Arrange
	svc, attemptRepo, questionRepo, _ := newQuizServiceForTest()

	questionRepo.On("GetAnswersByIDs", mock.AnythingOfType("[]uint")).Return([]entity.Answer{}, nil)
	attemptRepo.On("GetByIDForUpdate", mock.Anything, uint(8)).
		Return(&entity.QuizAttempt{ID: 8, UserID: 1, Completed: true}, nil)

	// Act
	result, err := svc.SubmitAttempt(8, 1, map[uint]uint{}, time.Now())

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrAttemptCompleted, "Повторная отправка должна отклоняться")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	attemptRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	attemptRepo.AssertNotCalled(t, "SaveUserAnswers", mock.Anything, mock.Anything)
}

func TestQuizService_SubmitAttempt_WrongUser(t *testing.T) {
	// Arrange
	svc, attemptRepo, questionRepo, _ := newQuizServiceForTest()

	questionRepo.On("GetAnswersByIDs", mock.AnythingOfType("[]uint")).Return([]entity.Answer{}, nil)
	attemptRepo.On("GetByIDForUpdate", mock.Anything, uint(8)).
		Return(&entity.QuizAttempt{ID: 8, UserID: 1}, nil)

	// Act
	result, err := svc.SubmitAttempt(8, 2, map[uint]uint{}, time.Now())

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	attemptRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
