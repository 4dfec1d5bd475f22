package dto

import (
	"time"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
)

// AnswerOption представляет вариант ответа в формате для клиента.
// Флаг правильности и объяснение до отправки попытки не раскрываются.
type AnswerOption struct {
	ID         uint   `json:"id"`
	AnswerText string `json:"answer_text"`
}

// QuestionResponse представляет вопрос квиза в формате для клиента
type QuestionResponse struct {
	ID              uint           `json:"id"`
	QuestionText    string         `json:"question_text"`
	QuestionType    string         `json:"question_type"`
	DifficultyLevel int            `json:"difficulty_level"`
	TopicID         uint           `json:"topic_id"`
	Answers         []AnswerOption `json:"answers"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	options := make([]AnswerOption, 0, len(q.Answers))
	for _, a := range q.Answers {
		options = append(options, AnswerOption{
			ID:         a.ID,
			AnswerText: a.AnswerText,
		})
	}
	return QuestionResponse{
		ID:              q.ID,
		QuestionText:    q.QuestionText,
		QuestionType:    q.QuestionType,
		DifficultyLevel: q.DifficultyLevel,
		TopicID:         q.TopicID,
		Answers:         options,
	}
}

// NewQuestionResponseList создает DTO для выборки вопросов попытки
func NewQuestionResponseList(questions []entity.Question) []QuestionResponse {
	responses := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		responses = append(responses, NewQuestionResponse(&questions[i]))
	}
	return responses
}

// AttemptResponse представляет попытку квиза в формате для клиента
type AttemptResponse struct {
	ID             uint       `json:"id"`
	TopicID        uint       `json:"topic_id"`
	SubjectID      uint       `json:"subject_id"`
	TotalQuestions int        `json:"total_questions"`
	CorrectAnswers int        `json:"correct_answers"`
	Score          float64    `json:"score"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	TimeTaken      *int       `json:"time_taken,omitempty"`
	Completed      bool       `json:"completed"`
}

// NewAttemptResponse создает DTO для попытки
func NewAttemptResponse(a *entity.QuizAttempt) *AttemptResponse {
	return &AttemptResponse{
		ID:             a.ID,
		TopicID:        a.TopicID,
		SubjectID:      a.SubjectID,
		TotalQuestions: a.TotalQuestions,
		CorrectAnswers: a.CorrectAnswers,
		Score:          a.Score,
		StartTime:      a.StartTime,
		EndTime:        a.EndTime,
		TimeTaken:      a.TimeTaken,
		Completed:      a.Completed,
	}
}
