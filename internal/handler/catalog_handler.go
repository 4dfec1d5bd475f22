package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/VictorSilvaVS/enem/internal/pkg/errors"
	"github.com/VictorSilvaVS/enem/internal/service"
)

// CatalogHandler обрабатывает запросы к учебному каталогу:
// дисциплины, темы, поиск и статистика для лендинга.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler создает новый обработчик каталога
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// LandingStats возвращает агрегаты для публичной страницы
func (h *CatalogHandler) LandingStats(c *gin.Context) {
	stats, err := h.catalogService.LandingStats()
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListSubjects возвращает все активные дисциплины
func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.catalogService.ListSubjects()
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subjects": subjects})
}

// SubjectDetail возвращает дисциплину с темами и прогрессом пользователя
func (h *CatalogHandler) SubjectDetail(c *gin.Context) {
	subjectID := c.MustGet("subjectID").(uint)
	userID := c.MustGet("user_id").(uint)

	subject, topics, progress, err := h.catalogService.SubjectDetail(subjectID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"subject":  subject,
		"topics":   topics,
		"progress": progress,
	})
}

// TopicDetail возвращает тему с материалами и записью прогресса пользователя
func (h *CatalogHandler) TopicDetail(c *gin.Context) {
	topicID := c.MustGet("topicID").(uint)
	userID := c.MustGet("user_id").(uint)

	topic, materials, progress, err := h.catalogService.TopicDetail(topicID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"topic":     topic,
		"materials": materials,
		"progress":  progress,
	})
}

// Search ищет темы и материалы по подстроке
func (h *CatalogHandler) Search(c *gin.Context) {
	results, err := h.catalogService.Search(c.Query("q"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// handleError преобразует ошибки сервисов в HTTP-статусы
func (h *CatalogHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in CatalogHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
