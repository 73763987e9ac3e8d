package normalizing

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
)

// Normalizer converte posts brutos de uma plataforma para o formato canônico
type Normalizer interface {
	// Platform identifica a plataforma atendida por esta variante
	Platform() domain.Platform

	// Normalize converte o lote. Posts malformados são descartados e
	// reportados como avisos; a ordem dos posts válidos é preservada.
	Normalize(rawPosts []domain.RawPost) ([]domain.CanonicalPost, []domain.Warning)
}

// Registry mantém as variantes de normalização por plataforma
type Registry struct {
	normalizers map[domain.Platform]Normalizer
}

// NewRegistry monta o registro com as variantes informadas
func NewRegistry(normalizers ...Normalizer) *Registry {
	registry := &Registry{
		normalizers: make(map[domain.Platform]Normalizer, len(normalizers)),
	}
	for _, n := range normalizers {
		registry.normalizers[n.Platform()] = n
	}
	return registry
}

// ForPlatform retorna a variante da plataforma, se registrada
func (r *Registry) ForPlatform(platform domain.Platform) (Normalizer, bool) {
	n, ok := r.normalizers[platform]
	return n, ok
}

// normalizeBatch aplica a conversão de uma variante a cada post do lote,
// acumulando avisos para os malformados
func normalizeBatch(
	platform domain.Platform,
	rawPosts []domain.RawPost,
	convert func(domain.RawPost) (domain.CanonicalPost, error),
) ([]domain.CanonicalPost, []domain.Warning) {
	posts := make([]domain.CanonicalPost, 0, len(rawPosts))
	var warnings []domain.Warning

	for _, raw := range rawPosts {
		post, err := convert(raw)
		if err != nil {
			logrus.Warn("Post descartado durante a normalização", map[string]any{
				"platform": platform,
				"postID":   raw.ID,
				"error":    err,
			})

			warnings = append(warnings, domain.Warning{
				PostID:  raw.ID,
				Message: err.Error(),
			})

			continue
		}

		posts = append(posts, post)
	}

	return posts, warnings
}

// normalizeTags padroniza hashtags: minúsculas, sem '#', sem vazias e sem
// duplicatas, em ordem alfabética
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))

	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), "#"))
		if tag == "" {
			continue
		}

		if _, ok := seen[tag]; ok {
			continue
		}

		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}

	sort.Strings(normalized)

	return normalized
}

// intOrZero resolve campos numéricos ausentes como zero
func intOrZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
