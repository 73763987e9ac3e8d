package analyzing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sns-analyzer-api/internal/config"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
	"github.com/vfg2006/sns-analyzer-api/internal/usecases/aggregating"
	"github.com/vfg2006/sns-analyzer-api/internal/usecases/normalizing"
)

// periodPresets mapeia os presets aceitos para a quantidade de dias da janela
var periodPresets = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
}

// DefaultPeriod é o preset usado quando a requisição não informa período
const DefaultPeriod = "30d"

// Service orquestra o fluxo de análise: validação, busca, normalização e
// agregação
type Service struct {
	cfg      *config.Config
	sources  map[domain.Platform]PostSource
	registry *normalizing.Registry
	now      func() time.Time
}

// NewService cria uma nova instância do orquestrador de análises
func NewService(
	cfg *config.Config,
	registry *normalizing.Registry,
	sources ...PostSource,
) Analyzer {
	service := &Service{
		cfg:      cfg,
		sources:  make(map[domain.Platform]PostSource, len(sources)),
		registry: registry,
		now:      time.Now,
	}

	for _, source := range sources {
		service.sources[source.Platform()] = source
	}

	return service
}

// Analyze valida a requisição, busca conta e posts na plataforma dentro do
// prazo configurado, normaliza e agrega apenas os tipos solicitados
func (s *Service) Analyze(ctx context.Context, request *domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	platform, username, period, types, err := s.validate(request)
	if err != nil {
		return nil, err
	}

	source, ok := s.sources[platform]
	if !ok {
		return nil, &InvalidRequestError{
			Field:  "platform",
			Reason: "nenhuma fonte configurada para a plataforma " + string(platform),
		}
	}

	normalizer, ok := s.registry.ForPlatform(platform)
	if !ok {
		return nil, &InvalidRequestError{
			Field:  "platform",
			Reason: "nenhum normalizador configurado para a plataforma " + string(platform),
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.Fetch.FetchTimeout())
	defer cancel()

	account, err := source.FetchAccount(fetchCtx, username)
	if err != nil {
		return nil, s.classifyFetchError(platform, err)
	}

	rawPosts, err := source.FetchPosts(fetchCtx, username, period)
	if err != nil {
		return nil, s.classifyFetchError(platform, err)
	}

	posts, warnings := normalizer.Normalize(rawPosts)

	logrus.Info("Análise concluída", map[string]any{
		"platform":  platform,
		"username":  username,
		"rawPosts":  len(rawPosts),
		"discarded": len(warnings),
	})

	result := aggregating.Aggregate(aggregating.Input{
		Posts:    posts,
		Account:  *account,
		Period:   period,
		Types:    types,
		Warnings: warnings,
	})
	result.GeneratedAt = s.now().UTC()

	return result, nil
}

// validate verifica plataforma, usuário, período e tipos de análise da
// requisição, resolvendo os presets
func (s *Service) validate(request *domain.AnalysisRequest) (
	domain.Platform,
	string,
	domain.Period,
	domain.AnalysisTypeSet,
	error,
) {
	if request == nil {
		return "", "", domain.Period{}, nil, &InvalidRequestError{Field: "body", Reason: "corpo da requisição ausente"}
	}

	platform := domain.Platform(strings.ToLower(strings.TrimSpace(request.Platform)))
	if !platform.Valid() {
		return "", "", domain.Period{}, nil, &InvalidRequestError{
			Field:  "platform",
			Reason: "plataforma não suportada: " + request.Platform,
		}
	}

	username := strings.TrimPrefix(strings.TrimSpace(request.Username), "@")
	if username == "" {
		return "", "", domain.Period{}, nil, &InvalidRequestError{
			Field:  "username",
			Reason: "nome de usuário obrigatório",
		}
	}

	preset := request.Period
	if preset == "" {
		preset = DefaultPeriod
	}

	days, ok := periodPresets[preset]
	if !ok {
		return "", "", domain.Period{}, nil, &InvalidRequestError{
			Field:  "period",
			Reason: "período não suportado: " + request.Period,
		}
	}

	end := s.now().UTC()
	period := domain.Period{
		Start: end.AddDate(0, 0, -days),
		End:   end,
	}

	if len(request.AnalysisTypes) == 0 {
		return "", "", domain.Period{}, nil, &InvalidRequestError{
			Field:  "analysis_types",
			Reason: "informe ao menos um tipo de análise",
		}
	}

	types := make(domain.AnalysisTypeSet, len(request.AnalysisTypes))
	for _, raw := range request.AnalysisTypes {
		analysisType := domain.AnalysisType(strings.ToLower(strings.TrimSpace(raw)))
		if !analysisType.Valid() {
			return "", "", domain.Period{}, nil, &InvalidRequestError{
				Field:  "analysis_types",
				Reason: "tipo de análise não suportado: " + raw,
			}
		}
		types[analysisType] = struct{}{}
	}

	return platform, username, period, types, nil
}

// classifyFetchError distingue estouro de prazo de falha da plataforma
func (s *Service) classifyFetchError(platform domain.Platform, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		logrus.Warn("Busca excedeu o prazo configurado", map[string]any{
			"platform": platform,
			"timeout":  s.cfg.Fetch.FetchTimeout(),
		})
		return &FetchTimeoutError{Platform: string(platform)}
	}

	logrus.Error("Falha ao buscar dados na plataforma", map[string]any{
		"platform": platform,
		"error":    err,
	})

	return &FetchFailedError{Platform: string(platform), Err: err}
}
