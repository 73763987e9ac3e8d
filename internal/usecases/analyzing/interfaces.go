package analyzing

import (
	"context"

	"github.com/vfg2006/sns-analyzer-api/internal/domain"
)

// PostSource define a interface de busca de dados em uma rede social
type PostSource interface {
	// Platform identifica a plataforma atendida por esta fonte
	Platform() domain.Platform

	// FetchAccount busca os dados da conta pelo nome de usuário
	FetchAccount(ctx context.Context, username string) (*domain.AccountSnapshot, error)

	// FetchPosts busca os posts da conta publicados dentro do período
	FetchPosts(ctx context.Context, username string, period domain.Period) ([]domain.RawPost, error)
}

// Analyzer é a interface do orquestrador de análises
type Analyzer interface {
	// Analyze valida a requisição, busca os dados na plataforma, normaliza
	// e agrega o resultado
	Analyze(ctx context.Context, request *domain.AnalysisRequest) (*domain.AnalysisResult, error)
}
