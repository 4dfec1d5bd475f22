package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizAttempt_Finish_CalculatesScore(t *testing.T) {
	// Arrange: попытка из 2 вопросов, 1 правильный ответ
	start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	attempt := &QuizAttempt{
		ID:             1,
		UserID:         7,
		TotalQuestions: 2,
		StartTime:      start,
	}

	// Act
	attempt.Finish(1, start.Add(90*time.Second))

	// Assert
	assert.Equal(t, 50.0, attempt.Score, "1 из 2 правильных = 50%")
	assert.Equal(t, 1, attempt.CorrectAnswers)
	assert.True(t, attempt.Completed, "Попытка должна быть завершена")
	require.NotNil(t, attempt.TimeTaken)
	assert.Equal(t, 90, *attempt.TimeTaken, "Время прохождения в целых секундах")
	require.NotNil(t, attempt.EndTime)
}

func TestQuizAttempt_Finish_AllCorrect(t *testing.T) {
	// Arrange
	start := time.Now()
	attempt := &QuizAttempt{TotalQuestions: 10, StartTime: start}

	// Act
	attempt.Finish(10, start.Add(5*time.Minute))

	// Assert
	assert.Equal(t, 100.0, attempt.Score)
	assert.Equal(t, 10, attempt.CorrectAnswers)
}

func TestQuizAttempt_Finish_NegativeTimeClampedToZero(t *testing.T) {
	// Arrange: время отправки раньше времени старта
	start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	attempt := &QuizAttempt{TotalQuestions: 3, StartTime: start}

	// Act
	attempt.Finish(0, start.Add(-time.Minute))

	// Assert
	require.NotNil(t, attempt.TimeTaken)
	assert.Equal(t, 0, *attempt.TimeTaken, "Отрицательное время обрезается до нуля")
	assert.Equal(t, 0.0, attempt.Score)
}
