package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VictorSilvaVS/enem/internal/handler/dto"
	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
	"github.com/VictorSilvaVS/enem/internal/service"
)

// QuizHandler обрабатывает запросы квизов: старт попытки и отправку ответов
type QuizHandler struct {
	quizService      *service.QuizService
	dashboardService *service.DashboardService
}

// NewQuizHandler создает новый обработчик квизов
func NewQuizHandler(quizService *service.QuizService, dashboardService *service.DashboardService) *QuizHandler {
	return &QuizHandler{
		quizService:      quizService,
		dashboardService: dashboardService,
	}
}

// StartAttemptRequest представляет запрос на старт попытки
type StartAttemptRequest struct {
	TopicID       uint `json:"topic_id" binding:"required"`
	QuestionLimit int  `json:"question_limit" binding:"omitempty,min=1,max=50"`
}

// SubmitAttemptRequest представляет отправку ответов попытки.
// Ключ — ID вопроса, значение — ID выбранного варианта.
type SubmitAttemptRequest struct {
	Answers map[uint]uint `json:"answers" binding:"required"`
}

// StartAttempt создает попытку и возвращает выборку вопросов без правильных ответов
func (h *QuizHandler) StartAttempt(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var req StartAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, questions, err := h.quizService.StartAttempt(userID, req.TopicID, req.QuestionLimit, time.Now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"attempt":   dto.NewAttemptResponse(attempt),
		"questions": dto.NewQuestionResponseList(questions),
	})
}

// SubmitAttempt оценивает ответы и завершает попытку
func (h *QuizHandler) SubmitAttempt(c *gin.Context) {
	attemptID := c.MustGet("attemptID").(uint)
	userID := c.MustGet("user_id").(uint)

	var req SubmitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.quizService.SubmitAttempt(attemptID, userID, req.Answers, time.Now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.dashboardService.InvalidateUser(userID)

	c.JSON(http.StatusOK, result)
}

// handleError преобразует ошибки сервисов в HTTP-статусы
func (h *QuizHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in QuizHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
