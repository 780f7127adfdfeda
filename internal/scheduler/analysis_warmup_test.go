package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/avmoura/sankhya-crm-api/infrastructure/repository/mocks"
	"github.com/avmoura/sankhya-crm-api/internal/domain"
	analyzingmocks "github.com/avmoura/sankhya-crm-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func newWarmupService(userRepo *mocks.MockUserRepository, analyzer *analyzingmocks.MockAnalyzer) *AnalysisWarmupService {
	return &AnalysisWarmupService{
		config: AnalysisWarmupConfig{
			CronSchedule:        "0 5 * * *",
			LookbackDays:        30,
			RequestDelaySeconds: 0,
			Enabled:             true,
		},
		userRepo:        userRepo,
		analysisService: analyzer,
	}
}

func TestAnalysisWarmupService_warmupAllUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	users := []*domain.User{
		{ID: 1, RoleID: domain.RoleAdmin, Active: true},
		{ID: 2, RoleID: domain.RoleSalesRep, Active: true},
	}

	mockUserRepo.EXPECT().ListActiveUsers().Return(users, nil)

	// Admin enxerga todos os leads, vendedor só os próprios
	mockAnalyzer.EXPECT().
		Analyze(gomock.Any(), 1, true).
		Return(&domain.AnalysisData{}, nil)
	mockAnalyzer.EXPECT().
		Analyze(gomock.Any(), 2, false).
		Return(&domain.AnalysisData{}, nil)

	service := newWarmupService(mockUserRepo, mockAnalyzer)
	service.warmupAllUsers()

	assert.False(t, service.lastRunCompletedAt.IsZero())
}

func TestAnalysisWarmupService_warmupAllUsers_ContinuesOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	users := []*domain.User{
		{ID: 1, RoleID: domain.RoleSalesRep, Active: true},
		{ID: 2, RoleID: domain.RoleSalesRep, Active: true},
	}

	mockUserRepo.EXPECT().ListActiveUsers().Return(users, nil)

	// A falha de um usuário não interrompe os demais
	mockAnalyzer.EXPECT().
		Analyze(gomock.Any(), 1, false).
		Return(nil, errors.New("sessão expirada, tente novamente"))
	mockAnalyzer.EXPECT().
		Analyze(gomock.Any(), 2, false).
		Return(&domain.AnalysisData{}, nil)

	service := newWarmupService(mockUserRepo, mockAnalyzer)
	service.warmupAllUsers()
}

func TestAnalysisWarmupService_currentWindow(t *testing.T) {
	service := &AnalysisWarmupService{
		config: AnalysisWarmupConfig{LookbackDays: 30},
	}

	window := service.currentWindow()

	assert.NotEmpty(t, window.StartDate)
	assert.NotEmpty(t, window.EndDate)
	assert.True(t, window.StartDate < window.EndDate)
}
