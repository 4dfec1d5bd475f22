package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	"github.com/VictorSilvaVS/enem/internal/domain/repository"
	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
)

// DefaultQuestionLimit — максимум вопросов в одной попытке квиза
const DefaultQuestionLimit = 10

// ScoreResult — итог оценивания попытки квиза
type ScoreResult struct {
	Score          float64 `json:"score"`
	CorrectAnswers int     `json:"correct_answers"`
	TotalQuestions int     `json:"total_questions"`
}

// QuizService оценивает квизы: создает попытку со снимком числа вопросов
// и оценивает отправленные ответы. Попытка оценивается ровно один раз.
type QuizService struct {
	attemptRepo  repository.AttemptRepository
	questionRepo repository.QuestionRepository
	topicRepo    repository.TopicRepository
	txRunner     repository.TxRunner
}

// NewQuizService создает новый сервис квизов
func NewQuizService(
	attemptRepo repository.AttemptRepository,
	questionRepo repository.QuestionRepository,
	topicRepo repository.TopicRepository,
	txRunner repository.TxRunner,
) *QuizService {
	return &QuizService{
		attemptRepo:  attemptRepo,
		questionRepo: questionRepo,
		topicRepo:    topicRepo,
		txRunner:     txRunner,
	}
}

// StartAttempt выбирает до questionLimit активных вопросов темы в порядке
// каталога и создает попытку со снимком total_questions. Если вопросов нет,
// возвращается ErrNoQuestionsAvailable и попытка не сохраняется — это
// защита от деления на ноль при подсчете счета.
func (s *QuizService) StartAttempt(userID, topicID uint, questionLimit int, now time.Time) (*entity.QuizAttempt, []entity.Question, error) {
	topic, err := s.topicRepo.GetByID(topicID)
	if err != nil {
		return nil, nil, err
	}

	if questionLimit <= 0 {
		questionLimit = DefaultQuestionLimit
	}

	questions, err := s.questionRepo.GetActiveByTopic(topicID, questionLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to select questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, nil, ErrNoQuestionsAvailable
	}

	attempt := &entity.QuizAttempt{
		UserID:         userID,
		SubjectID:      topic.SubjectID,
		TopicID:        topic.ID,
		TotalQuestions: len(questions),
		StartTime:      now,
	}
	if err := s.attemptRepo.Create(attempt); err != nil {
		return nil, nil, fmt.Errorf("failed to create quiz attempt: %w", err)
	}
	return attempt, questions, nil
}

// SubmitAttempt оценивает отправленные ответы и завершает попытку.
// Ответ засчитывается только если выбранный вариант существует, принадлежит
// именно тому вопросу, на который отвечали, и помечен правильным — ответ из
// чужого вопроса не проходит, даже если он правильный у себя. Выбранные
// варианты сохраняются в user_answers той же транзакцией. Повторная отправка
// отклоняется: переход Started -> Completed одноразовый.
func (s *QuizService) SubmitAttempt(attemptID, userID uint, answersByQuestion map[uint]uint, now time.Time) (*ScoreResult, error) {
	answerIDs := make([]uint, 0, len(answersByQuestion))
	for _, answerID := range answersByQuestion {
		answerIDs = append(answerIDs, answerID)
	}
	answers, err := s.questionRepo.GetAnswersByIDs(answerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}
	answersByID := make(map[uint]entity.Answer, len(answers))
	for _, answer := range answers {
		answersByID[answer.ID] = answer
	}

	var result *ScoreResult
	err = s.txRunner.WithinTransaction(func(tx *gorm.DB) error {
		attempt, err := s.attemptRepo.GetByIDForUpdate(tx, attemptID)
		if err != nil {
			return err
		}
		if attempt.UserID != userID {
			return apperrors.ErrForbidden
		}
		if attempt.Completed {
			return ErrAttemptCompleted
		}

		correct := 0
		userAnswers := make([]entity.UserAnswer, 0, len(answersByQuestion))
		for questionID, answerID := range answersByQuestion {
			answer, ok := answersByID[answerID]
			isCorrect := ok && answer.Belongs(questionID) && answer.IsCorrect
			if isCorrect {
				correct++
			}
			userAnswers = append(userAnswers, entity.UserAnswer{
				QuizAttemptID:    attempt.ID,
				QuestionID:       questionID,
				SelectedAnswerID: answerID,
				IsCorrect:        isCorrect,
			})
		}

		attempt.Finish(correct, now)
		if err := s.attemptRepo.Save(tx, attempt); err != nil {
			return fmt.Errorf("failed to save quiz attempt: %w", err)
		}
		if err := s.attemptRepo.SaveUserAnswers(tx, userAnswers); err != nil {
			return fmt.Errorf("failed to save user answers: %w", err)
		}

		result = &ScoreResult{
			Score:          attempt.Score,
			CorrectAnswers: attempt.CorrectAnswers,
			TotalQuestions: attempt.TotalQuestions,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
