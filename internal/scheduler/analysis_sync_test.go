package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
	analyzingmocks "github.com/vfg2006/sns-analyzer-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func newSyncService(
	trackedRepo *mocks.MockTrackedAccountRepository,
	snapshotRepo *mocks.MockAnalysisSnapshotRepository,
	analyzer *analyzingmocks.MockAnalyzer,
) *AnalysisSyncService {
	return &AnalysisSyncService{
		config: AnalysisSyncConfig{
			PeriodDays:        30,
			MaxConcurrentJobs: 1,
		},
		trackedAccountRepo: trackedRepo,
		snapshotRepo:       snapshotRepo,
		analyzer:           analyzer,
	}
}

func TestAnalysisSyncService_SyncAllAnalyses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trackedRepo := mocks.NewMockTrackedAccountRepository(ctrl)
	snapshotRepo := mocks.NewMockAnalysisSnapshotRepository(ctrl)
	analyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	service := newSyncService(trackedRepo, snapshotRepo, analyzer)

	generatedAt := time.Date(2025, 6, 30, 3, 0, 0, 0, time.UTC)
	result := &domain.AnalysisResult{
		Platform:    domain.PlatformTwitter,
		Username:    "empresa_x",
		Stats:       &domain.SummaryStats{TotalPosts: 10},
		GeneratedAt: generatedAt,
	}

	trackedRepo.EXPECT().
		ListActive().
		Return([]*domain.TrackedAccount{
			{ID: "abc123", Platform: domain.PlatformTwitter, Username: "empresa_x", Active: true},
		}, nil)

	analyzer.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, request *domain.AnalysisRequest) (*domain.AnalysisResult, error) {
			assert.Equal(t, "twitter", request.Platform)
			assert.Equal(t, "empresa_x", request.Username)
			assert.Equal(t, "30d", request.Period)
			assert.Len(t, request.AnalysisTypes, 3)
			return result, nil
		})

	snapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(snapshot *domain.AnalysisSnapshot) error {
			assert.Equal(t, domain.PlatformTwitter, snapshot.Platform)
			assert.Equal(t, "empresa_x", snapshot.Username)
			assert.Equal(t, generatedAt, snapshot.Date)
			assert.Equal(t, result, snapshot.Result)
			return nil
		})

	service.syncAllAnalyses()
}

func TestAnalysisSyncService_SyncAllAnalyses_SemContas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trackedRepo := mocks.NewMockTrackedAccountRepository(ctrl)
	snapshotRepo := mocks.NewMockAnalysisSnapshotRepository(ctrl)
	analyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	service := newSyncService(trackedRepo, snapshotRepo, analyzer)

	trackedRepo.EXPECT().
		ListActive().
		Return(nil, nil)

	// Nenhuma análise nem escrita deve acontecer
	service.syncAllAnalyses()
}

func TestAnalysisSyncService_SyncAllAnalyses_FalhaNaAnalise(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trackedRepo := mocks.NewMockTrackedAccountRepository(ctrl)
	snapshotRepo := mocks.NewMockAnalysisSnapshotRepository(ctrl)
	analyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	service := newSyncService(trackedRepo, snapshotRepo, analyzer)

	trackedRepo.EXPECT().
		ListActive().
		Return([]*domain.TrackedAccount{
			{ID: "abc123", Platform: domain.PlatformTwitter, Username: "empresa_x", Active: true},
			{ID: "def456", Platform: domain.PlatformInstagram, Username: "outra_conta", Active: true},
		}, nil)

	// A primeira conta falha, a segunda segue normalmente
	analyzer.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	analyzer.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		Return(&domain.AnalysisResult{
			Platform:    domain.PlatformInstagram,
			Username:    "outra_conta",
			GeneratedAt: time.Now(),
		}, nil)

	snapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(nil)

	service.syncAllAnalyses()
}

func TestAnalysisSyncService_PeriodPreset(t *testing.T) {
	tests := []struct {
		days   int
		preset string
	}{
		{7, "7d"},
		{14, "30d"},
		{30, "30d"},
		{60, "90d"},
	}

	for _, tt := range tests {
		service := &AnalysisSyncService{config: AnalysisSyncConfig{PeriodDays: tt.days}}
		assert.Equal(t, tt.preset, service.periodPreset())
	}
}
