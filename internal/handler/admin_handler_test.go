package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestionRows(t *testing.T) {
	// Arrange
	rows := [][]string{
		{"topic_id", "question", "difficulty", "A", "B", "C", "D", "correct", "explanation"},
		{"3", "Qual é a solução de 3x + 5 = 17?", "2", "x = 3", "x = 4", "x = 5", "x = 6", "B", "3x = 12, x = 4"},
		{},
		{"3", "Qual classe gramatical nomeia seres?", "1", "Adjetivo", "Substantivo", "Advérbio", "Verbo", "b"},
	}

	// Act
	questions, err := parseQuestionRows(rows)

	// Assert
	require.NoError(t, err)
	require.Len(t, questions, 2)

	first := questions[0]
	assert.Equal(t, uint(3), first.TopicID)
	assert.Equal(t, "Qual é a solução de 3x + 5 = 17?", first.QuestionText)
	assert.Equal(t, 2, first.DifficultyLevel)
	assert.True(t, first.IsActive)
	require.Len(t, first.Answers, 4)
	assert.False(t, first.Answers[0].IsCorrect)
	assert.True(t, first.Answers[1].IsCorrect)
	assert.Equal(t, "3x = 12, x = 4", first.Answers[1].Explanation)

	// Буква в нижнем регистре тоже принимается
	assert.True(t, questions[1].Answers[1].IsCorrect)
}

func TestParseQuestionRows_InvalidCorrectLetter(t *testing.T) {
	rows := [][]string{
		{"topic_id", "question", "difficulty", "A", "B", "C", "D", "correct"},
		{"3", "Pergunta", "2", "a", "b", "c", "d", "E"},
	}

	questions, err := parseQuestionRows(rows)

	assert.Nil(t, questions)
	assert.ErrorContains(t, err, "letter A-D")
}

func TestParseQuestionRows_MissingColumns(t *testing.T) {
	rows := [][]string{
		{"topic_id", "question", "difficulty", "A", "B", "C", "D", "correct"},
		{"3", "Pergunta", "2", "a", "b"},
	}

	_, err := parseQuestionRows(rows)

	assert.ErrorContains(t, err, "columns")
}

func TestParseQuestionRows_Empty(t *testing.T) {
	_, err := parseQuestionRows([][]string{{"header"}})
	assert.Error(t, err)
}
