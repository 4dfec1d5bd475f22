package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VictorSilvaVS/enem/internal/service"
)

// DashboardHandler обрабатывает запросы дашборда и страниц прогресса
type DashboardHandler struct {
	dashboardService *service.DashboardService
	progressService  *service.ProgressService
}

// NewDashboardHandler создает новый обработчик дашборда
func NewDashboardHandler(dashboardService *service.DashboardService, progressService *service.ProgressService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		progressService:  progressService,
	}
}

// Summary возвращает сводку текущего пользователя
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	summary, err := h.dashboardService.Summary(userID)
	if err != nil {
		log.Printf("ERROR: Internal server error in DashboardHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Progress возвращает развернутый прогресс по всем дисциплинам
func (h *DashboardHandler) Progress(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	details, err := h.progressService.DetailBySubject(userID)
	if err != nil {
		log.Printf("ERROR: Internal server error in DashboardHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subjects": details})
}
