package analyzing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sns-analyzer-api/internal/config"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
	"github.com/vfg2006/sns-analyzer-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/sns-analyzer-api/internal/usecases/normalizing"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, source PostSource) *Service {
	t.Helper()

	cfg := &config.Config{
		Fetch: config.Fetch{TimeoutSeconds: 5},
	}

	service := &Service{
		cfg:      cfg,
		sources:  map[domain.Platform]PostSource{},
		registry: normalizing.NewRegistry(normalizing.NewTwitterNormalizer(), normalizing.NewInstagramNormalizer()),
		now:      func() time.Time { return testNow },
	}

	if source != nil {
		service.sources[domain.PlatformTwitter] = source
	}

	return service
}

func intPtr(v int) *int {
	return &v
}

func TestService_Analyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockPostSource(ctrl)
	service := newTestService(t, mockSource)

	account := &domain.AccountSnapshot{
		AccountID:     "123",
		Username:      "empresa_x",
		Platform:      domain.PlatformTwitter,
		FollowerCount: 50000,
		FetchedAt:     testNow,
	}

	rawPosts := []domain.RawPost{
		{
			ID:          "tw1",
			Timestamp:   "2025-06-10T14:30:00Z",
			Text:        "lançamento #golang",
			Likes:       intPtr(120),
			Comments:    intPtr(14),
			Shares:      intPtr(33),
			Impressions: intPtr(9800),
			Tags:        []string{"golang"},
		},
		{ID: "tw2", Timestamp: "inválido"},
	}

	mockSource.EXPECT().
		FetchAccount(gomock.Any(), "empresa_x").
		Return(account, nil)

	mockSource.EXPECT().
		FetchPosts(gomock.Any(), "empresa_x", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, period domain.Period) ([]domain.RawPost, error) {
			// Preset 30d conta a partir do relógio injetado
			assert.Equal(t, testNow, period.End)
			assert.Equal(t, testNow.AddDate(0, 0, -30), period.Start)
			return rawPosts, nil
		})

	result, err := service.Analyze(context.Background(), &domain.AnalysisRequest{
		Platform:      "twitter",
		Username:      "@empresa_x", // o arroba é removido na validação
		Period:        "30d",
		AnalysisTypes: []string{"engagement", "hashtags"},
	})

	require.NoError(t, err)
	require.NotNil(t, result.Stats)
	assert.Equal(t, 1, result.Stats.TotalPosts)
	assert.Equal(t, 50000, result.Stats.FollowerCount)

	require.Len(t, result.HashtagRanking, 1)
	assert.Equal(t, "golang", result.HashtagRanking[0].Tag)

	// O post malformado vira aviso sem derrubar a análise
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "tw2", result.Warnings[0].PostID)

	// Seção não solicitada fica nula
	assert.Nil(t, result.TimingHistogram)

	assert.Equal(t, testNow, result.GeneratedAt)
}

func TestService_Analyze_Validacao(t *testing.T) {
	tests := []struct {
		name    string
		request *domain.AnalysisRequest
		field   string
	}{
		{
			name:    "Requisição nula",
			request: nil,
			field:   "body",
		},
		{
			name: "Plataforma não suportada",
			request: &domain.AnalysisRequest{
				Platform:      "tiktok",
				Username:      "alguem",
				AnalysisTypes: []string{"engagement"},
			},
			field: "platform",
		},
		{
			name: "Usuário ausente",
			request: &domain.AnalysisRequest{
				Platform:      "twitter",
				Username:      "  ",
				AnalysisTypes: []string{"engagement"},
			},
			field: "username",
		},
		{
			name: "Período não suportado",
			request: &domain.AnalysisRequest{
				Platform:      "twitter",
				Username:      "alguem",
				Period:        "1y",
				AnalysisTypes: []string{"engagement"},
			},
			field: "period",
		},
		{
			name: "Sem tipos de análise",
			request: &domain.AnalysisRequest{
				Platform: "twitter",
				Username: "alguem",
			},
			field: "analysis_types",
		},
		{
			name: "Tipo de análise desconhecido",
			request: &domain.AnalysisRequest{
				Platform:      "twitter",
				Username:      "alguem",
				AnalysisTypes: []string{"sentiment"},
			},
			field: "analysis_types",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Nenhuma busca externa deve acontecer
			service := newTestService(t, mocks.NewMockPostSource(ctrl))

			_, err := service.Analyze(context.Background(), tt.request)

			var invalidErr *InvalidRequestError
			require.ErrorAs(t, err, &invalidErr)
			assert.Equal(t, tt.field, invalidErr.Field)
		})
	}
}

func TestService_Analyze_PeriodoPadrao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockPostSource(ctrl)
	service := newTestService(t, mockSource)

	mockSource.EXPECT().
		FetchAccount(gomock.Any(), "alguem").
		Return(&domain.AccountSnapshot{Username: "alguem", Platform: domain.PlatformTwitter}, nil)

	mockSource.EXPECT().
		FetchPosts(gomock.Any(), "alguem", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, period domain.Period) ([]domain.RawPost, error) {
			// Sem período informado aplica o preset padrão de 30 dias
			assert.Equal(t, testNow.AddDate(0, 0, -30), period.Start)
			return nil, nil
		})

	_, err := service.Analyze(context.Background(), &domain.AnalysisRequest{
		Platform:      "twitter",
		Username:      "alguem",
		AnalysisTypes: []string{"timing"},
	})

	require.NoError(t, err)
}

func TestService_Analyze_FonteNaoConfigurada(t *testing.T) {
	service := newTestService(t, nil)

	_, err := service.Analyze(context.Background(), &domain.AnalysisRequest{
		Platform:      "twitter",
		Username:      "alguem",
		AnalysisTypes: []string{"engagement"},
	})

	var invalidErr *InvalidRequestError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "platform", invalidErr.Field)
}

func TestService_Analyze_FalhaNaBusca(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockPostSource(ctrl)
	service := newTestService(t, mockSource)

	platformErr := errors.New("rate limit excedido")

	mockSource.EXPECT().
		FetchAccount(gomock.Any(), "alguem").
		Return(nil, platformErr)

	_, err := service.Analyze(context.Background(), &domain.AnalysisRequest{
		Platform:      "twitter",
		Username:      "alguem",
		AnalysisTypes: []string{"engagement"},
	})

	var fetchErr *FetchFailedError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "twitter", fetchErr.Platform)
	assert.ErrorIs(t, err, platformErr)
}

func TestService_Analyze_PrazoExcedido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockPostSource(ctrl)
	service := newTestService(t, mockSource)

	mockSource.EXPECT().
		FetchAccount(gomock.Any(), "alguem").
		Return(&domain.AccountSnapshot{Username: "alguem", Platform: domain.PlatformTwitter}, nil)

	mockSource.EXPECT().
		FetchPosts(gomock.Any(), "alguem", gomock.Any()).
		Return(nil, context.DeadlineExceeded)

	_, err := service.Analyze(context.Background(), &domain.AnalysisRequest{
		Platform:      "twitter",
		Username:      "alguem",
		AnalysisTypes: []string{"engagement"},
	})

	var timeoutErr *FetchTimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, "twitter", timeoutErr.Platform)
}
