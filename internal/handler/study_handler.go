package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
	"github.com/VictorSilvaVS/enem/internal/service"
)

// StudyHandler обрабатывает учебный цикл: открытие материала,
// закрытие сессии и фиксацию прогресса.
type StudyHandler struct {
	sessionService   *service.SessionService
	progressService  *service.ProgressService
	dashboardService *service.DashboardService
}

// NewStudyHandler создает новый обработчик учебных сессий
func NewStudyHandler(
	sessionService *service.SessionService,
	progressService *service.ProgressService,
	dashboardService *service.DashboardService,
) *StudyHandler {
	return &StudyHandler{
		sessionService:   sessionService,
		progressService:  progressService,
		dashboardService: dashboardService,
	}
}

// FinishSessionRequest представляет запрос на завершение сессии
type FinishSessionRequest struct {
	Notes string `json:"notes" binding:"max=2000"`
}

// OpenMaterial возвращает материал и открывает по нему учебную сессию.
// ID открытой сессии клиент присылает обратно при завершении.
func (h *StudyHandler) OpenMaterial(c *gin.Context) {
	materialID := c.MustGet("materialID").(uint)
	userID := c.MustGet("user_id").(uint)

	session, material, err := h.sessionService.Start(userID, materialID, time.Now())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"material": material,
		"session":  session,
	})
}

// FinishSession закрывает сессию, засчитывает завершение материала
// в прогресс и сбрасывает кеш дашборда пользователя.
func (h *StudyHandler) FinishSession(c *gin.Context) {
	sessionID := c.MustGet("sessionID").(uint)
	userID := c.MustGet("user_id").(uint)

	var req FinishSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionService.Finish(sessionID, userID, time.Now(), req.Notes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	record, err := h.progressService.RecordCompletion(userID, session.TopicID, session.SubjectID, time.Now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.dashboardService.InvalidateUser(userID)

	c.JSON(http.StatusOK, gin.H{
		"session":  session,
		"progress": record,
	})
}

// handleError преобразует ошибки сервисов в HTTP-статусы
func (h *StudyHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in StudyHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
