package service

import (
	"fmt"
	"log"
	"time"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
	"github.com/VictorSilvaVS/enem/internal/domain/repository"
)

// dashboardCacheTTL — срок жизни кешированных сводок.
// Данные презентационные, устаревание на минуты допустимо.
const dashboardCacheTTL = 5 * time.Minute

// DashboardSummary — сводка для дашборда пользователя
type DashboardSummary struct {
	TotalStudyMinutes  int64                 `json:"total_study_minutes"`
	TotalQuizzes       int64                 `json:"total_quizzes"`
	CompletedMaterials int64                 `json:"completed_materials"`
	AverageQuizScore   float64               `json:"average_quiz_score"`
	SubjectProgress    map[string]float64    `json:"subject_progress"`
	RecentSessions     []entity.StudySession `json:"recent_sessions"`
}

// DashboardService собирает сводки по накопленному состоянию: суммы, средние
// и последние сессии. Только чтение, ничего не мутирует; результаты кешируются
// на пользователя и инвалидируются при закрытии сессии или отправке квиза.
type DashboardService struct {
	sessionRepo  repository.SessionRepository
	attemptRepo  repository.AttemptRepository
	progressRepo repository.ProgressRepository
	progress     *ProgressService
	cacheRepo    repository.CacheRepository
}

// NewDashboardService создает новый сервис дашборда.
// cacheRepo передается явно — никакого глобального состояния кеша.
func NewDashboardService(
	sessionRepo repository.SessionRepository,
	attemptRepo repository.AttemptRepository,
	progressRepo repository.ProgressRepository,
	progress *ProgressService,
	cacheRepo repository.CacheRepository,
) *DashboardService {
	return &DashboardService{
		sessionRepo:  sessionRepo,
		attemptRepo:  attemptRepo,
		progressRepo: progressRepo,
		progress:     progress,
		cacheRepo:    cacheRepo,
	}
}

// Summary возвращает сводку пользователя, при возможности из кеша.
// Ошибки кеша не фатальны — сводка пересчитывается из хранилища.
func (s *DashboardService) Summary(userID uint) (*DashboardSummary, error) {
	cacheKey := s.summaryKey(userID)
	if s.cacheRepo != nil {
		var cached DashboardSummary
		if err := s.cacheRepo.GetJSON(cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	totalMinutes, err := s.sessionRepo.SumDurationByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum study time: %w", err)
	}
	totalQuizzes, err := s.attemptRepo.CountByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count quiz attempts: %w", err)
	}
	completedMaterials, err := s.progressRepo.SumMaterialsCompleted(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum completed materials: %w", err)
	}
	averageScore, err := s.attemptRepo.AverageScoreByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to average quiz score: %w", err)
	}
	subjectProgress, err := s.progress.AggregateBySubject(userID)
	if err != nil {
		return nil, err
	}
	recentSessions, err := s.sessionRepo.ListRecentByUser(userID, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent sessions: %w", err)
	}

	summary := &DashboardSummary{
		TotalStudyMinutes:  totalMinutes,
		TotalQuizzes:       totalQuizzes,
		CompletedMaterials: completedMaterials,
		AverageQuizScore:   averageScore,
		SubjectProgress:    subjectProgress,
		RecentSessions:     recentSessions,
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(cacheKey, summary, dashboardCacheTTL); err != nil {
			log.Printf("[DashboardService] Не удалось закешировать сводку user=%d: %v", userID, err)
		}
	}
	return summary, nil
}

// InvalidateUser сбрасывает кешированные сводки пользователя.
// Вызывается после закрытия сессии и отправки квиза.
func (s *DashboardService) InvalidateUser(userID uint) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.DeleteByPattern(fmt.Sprintf("dashboard:%d:*", userID)); err != nil {
		log.Printf("[DashboardService] Не удалось инвалидировать кеш user=%d: %v", userID, err)
	}
}

func (s *DashboardService) summaryKey(userID uint) string {
	return fmt.Sprintf("dashboard:%d:summary", userID)
}
