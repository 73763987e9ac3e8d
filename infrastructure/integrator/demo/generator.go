package demo

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"

	"github.com/vfg2006/sns-analyzer-api/internal/domain"
)

// hashtagPool são as hashtags usadas nos posts gerados
var hashtagPool = []string{
	"marketing", "dicas", "lancamento", "promo", "bastidores",
	"novidades", "moda", "tecnologia", "negocios", "brasil",
}

var captionTemplates = []string{
	"Novidade chegando! Confira #%s #%s",
	"Bastidores do time hoje #%s",
	"Obrigado pelo carinho de sempre! #%s #%s",
	"Conteúdo novo no ar #%s",
	"Olha só o que preparamos para vocês #%s #%s",
}

// Generator é uma fonte de dados fictícia e determinística, usada quando o
// modo demo está habilitado ou quando não há credenciais configuradas.
// A mesma combinação de plataforma e usuário sempre produz a mesma conta e,
// para o mesmo período, os mesmos posts.
type Generator struct {
	platform domain.Platform
}

// NewGenerator cria uma fonte demo para a plataforma informada
func NewGenerator(platform domain.Platform) *Generator {
	return &Generator{platform: platform}
}

func (g *Generator) Platform() domain.Platform {
	return g.platform
}

// FetchAccount gera os dados fictícios da conta
func (g *Generator) FetchAccount(_ context.Context, username string) (*domain.AccountSnapshot, error) {
	rng := g.rng(username)

	return &domain.AccountSnapshot{
		AccountID:     fmt.Sprintf("demo-%d", rng.Intn(900000)+100000),
		Username:      username,
		Platform:      g.platform,
		FollowerCount: rng.Intn(95000) + 5000,
		FetchedAt:     time.Now().UTC(),
	}, nil
}

// FetchPosts gera posts fictícios dentro do período, no formato bruto da
// plataforma. Nunca gera posts no futuro.
func (g *Generator) FetchPosts(_ context.Context, username string, period domain.Period) ([]domain.RawPost, error) {
	rng := g.rng(username + period.Start.UTC().Format("2006-01-02"))

	window := period.End.Sub(period.Start)
	if window <= 0 {
		return nil, nil
	}

	total := rng.Intn(25) + 15
	posts := make([]domain.RawPost, 0, total)

	for i := 0; i < total; i++ {
		offset := time.Duration(rng.Int63n(int64(window)))
		createdAt := period.Start.Add(offset).UTC()

		likes := rng.Intn(480) + 20
		comments := rng.Intn(60) + 2
		shares := rng.Intn(40)
		impressions := (likes + comments + shares) * (rng.Intn(30) + 10)

		text, tags := g.caption(rng)

		posts = append(posts, domain.RawPost{
			ID:          fmt.Sprintf("demo-%s-%d", g.platform, i+1),
			Timestamp:   g.formatTimestamp(createdAt),
			Text:        text,
			Likes:       &likes,
			Comments:    &comments,
			Shares:      &shares,
			Impressions: &impressions,
			Tags:        tags,
		})
	}

	return posts, nil
}

// rng monta o gerador pseudoaleatório com semente estável por plataforma e
// usuário
func (g *Generator) rng(key string) *rand.Rand {
	hasher := fnv.New64a()
	hasher.Write([]byte(string(g.platform) + ":" + key))
	return rand.New(rand.NewSource(int64(hasher.Sum64())))
}

// formatTimestamp usa o formato de data nativo de cada plataforma, para que
// os posts demo passem pelo mesmo normalizador dos posts reais
func (g *Generator) formatTimestamp(t time.Time) string {
	if g.platform == domain.PlatformInstagram {
		return t.Format("2006-01-02T15:04:05-0700")
	}
	return t.Format(time.RFC3339)
}

// caption monta o texto do post e devolve também as hashtags usadas, no mesmo
// molde das entities que as APIs reais entregam junto do texto
func (g *Generator) caption(rng *rand.Rand) (string, []string) {
	template := captionTemplates[rng.Intn(len(captionTemplates))]
	first := hashtagPool[rng.Intn(len(hashtagPool))]
	second := hashtagPool[rng.Intn(len(hashtagPool))]

	if strings.Count(template, "%s") == 1 {
		return fmt.Sprintf(template, first), []string{first}
	}

	return fmt.Sprintf(template, first, second), []string{first, second}
}
