package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
	"github.com/VictorSilvaVS/enem/internal/service"
)

// AdminHandler обрабатывает административные запросы: сводные счетчики
// и массовый импорт вопросов из Excel.
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler создает новый административный обработчик
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Totals возвращает сводные счетчики платформы
func (h *AdminHandler) Totals(c *gin.Context) {
	totals, err := h.adminService.Totals()
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// ImportQuestions импортирует вопросы из xlsx-файла.
// Ожидаемые колонки: topic_id, текст вопроса, сложность, варианты A-D,
// буква правильного варианта, объяснение. Первая строка — заголовки.
func (h *AdminHandler) ImportQuestions(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid xlsx file"})
		return
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read sheet"})
		return
	}

	questions, err := parseQuestionRows(rows)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	imported, err := h.adminService.ImportQuestions(questions)
	if err != nil {
		h.handleError(c, err)
		return
	}

	log.Printf("[AdminHandler] Импортировано %d вопросов из %s", imported, fileHeader.Filename)
	c.JSON(http.StatusCreated, gin.H{"imported": imported})
}

// parseQuestionRows превращает строки листа в вопросы с вариантами.
// Пустые строки пропускаются, первая строка считается заголовком.
func parseQuestionRows(rows [][]string) ([]entity.Question, error) {
	const minColumns = 8 // topic_id, текст, сложность, A, B, C, D, правильная буква

	questions := make([]entity.Question, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		if len(row) < minColumns {
			return nil, fmt.Errorf("row %d: expected at least %d columns, got %d", i+1, minColumns, len(row))
		}

		topicID, err := strconv.ParseUint(strings.TrimSpace(row[0]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid topic_id %q", i+1, row[0])
		}
		difficulty, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil || difficulty < 1 || difficulty > 5 {
			return nil, fmt.Errorf("row %d: invalid difficulty %q", i+1, row[2])
		}

		correctLetter := strings.ToUpper(strings.TrimSpace(row[7]))
		if len(correctLetter) != 1 || correctLetter[0] < 'A' || correctLetter[0] > 'D' {
			return nil, fmt.Errorf("row %d: correct answer must be a letter A-D, got %q", i+1, row[7])
		}
		correctIdx := int(correctLetter[0] - 'A')

		explanation := ""
		if len(row) > 8 {
			explanation = strings.TrimSpace(row[8])
		}

		answers := make([]entity.Answer, 0, 4)
		for j, cell := range row[3:7] {
			text := strings.TrimSpace(cell)
			if text == "" {
				return nil, fmt.Errorf("row %d: answer option %c is empty", i+1, 'A'+j)
			}
			answer := entity.Answer{AnswerText: text, IsCorrect: j == correctIdx}
			if answer.IsCorrect {
				answer.Explanation = explanation
			}
			answers = append(answers, answer)
		}

		questions = append(questions, entity.Question{
			QuestionText:    strings.TrimSpace(row[1]),
			QuestionType:    "multiple_choice",
			DifficultyLevel: difficulty,
			TopicID:         uint(topicID),
			IsActive:        true,
			Answers:         answers,
		})
	}
	if len(questions) == 0 {
		return nil, errors.New("no question rows found in sheet")
	}
	return questions, nil
}

// handleError преобразует ошибки сервисов в HTTP-статусы
func (h *AdminHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in AdminHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
