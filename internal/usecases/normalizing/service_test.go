package normalizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
)

func intPtr(v int) *int {
	return &v
}

func TestRegistry_ForPlatform(t *testing.T) {
	registry := NewRegistry(NewTwitterNormalizer(), NewInstagramNormalizer())

	twitter, ok := registry.ForPlatform(domain.PlatformTwitter)
	require.True(t, ok)
	assert.Equal(t, domain.PlatformTwitter, twitter.Platform())

	instagram, ok := registry.ForPlatform(domain.PlatformInstagram)
	require.True(t, ok)
	assert.Equal(t, domain.PlatformInstagram, instagram.Platform())

	_, ok = registry.ForPlatform(domain.Platform("tiktok"))
	assert.False(t, ok)
}

func TestTwitterNormalizer_Normalize(t *testing.T) {
	normalizer := NewTwitterNormalizer()

	tests := []struct {
		name     string
		rawPosts []domain.RawPost
		validate func(t *testing.T, posts []domain.CanonicalPost, warnings []domain.Warning)
	}{
		{
			name: "Post completo - deve converter todos os campos",
			rawPosts: []domain.RawPost{
				{
					ID:          "tw1",
					Timestamp:   "2025-06-10T14:30:00Z",
					Text:        "lançamento hoje! #GoLang #golang",
					Likes:       intPtr(120),
					Comments:    intPtr(14),
					Shares:      intPtr(33),
					Impressions: intPtr(9800),
					Tags:        []string{"GoLang", "golang"},
				},
			},
			validate: func(t *testing.T, posts []domain.CanonicalPost, warnings []domain.Warning) {
				require.Len(t, posts, 1)
				assert.Empty(t, warnings)

				post := posts[0]
				assert.Equal(t, "tw1", post.ID)
				assert.Equal(t, time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC), post.CreatedAt)
				assert.Equal(t, 120, post.LikeCount)
				assert.Equal(t, 14, post.CommentCount)
				assert.Equal(t, 33, post.ShareCount)
				assert.Equal(t, 9800, post.ImpressionCount)
				assert.Equal(t, []string{"golang"}, post.Hashtags)
				assert.Equal(t, 167, post.Engagements())
			},
		},
		{
			name: "Métricas ausentes - deve resolver como zero",
			rawPosts: []domain.RawPost{
				{
					ID:        "tw2",
					Timestamp: "2025-06-11T08:00:00Z",
					Text:      "sem métricas",
				},
			},
			validate: func(t *testing.T, posts []domain.CanonicalPost, warnings []domain.Warning) {
				require.Len(t, posts, 1)
				assert.Empty(t, warnings)
				assert.Equal(t, 0, posts[0].LikeCount)
				assert.Equal(t, 0, posts[0].ImpressionCount)
				assert.Empty(t, posts[0].Hashtags)
			},
		},
		{
			name: "Timestamp inválido - deve descartar com aviso e manter os demais",
			rawPosts: []domain.RawPost{
				{ID: "tw3", Timestamp: "ontem", Likes: intPtr(1)},
				{ID: "tw4", Timestamp: "2025-06-12T10:00:00Z"},
			},
			validate: func(t *testing.T, posts []domain.CanonicalPost, warnings []domain.Warning) {
				require.Len(t, posts, 1)
				assert.Equal(t, "tw4", posts[0].ID)

				require.Len(t, warnings, 1)
				assert.Equal(t, "tw3", warnings[0].PostID)
				assert.Contains(t, warnings[0].Message, "timestamp inválido")
			},
		},
		{
			name: "Identificador ausente - deve descartar com aviso",
			rawPosts: []domain.RawPost{
				{Timestamp: "2025-06-12T10:00:00Z"},
			},
			validate: func(t *testing.T, posts []domain.CanonicalPost, warnings []domain.Warning) {
				assert.Empty(t, posts)
				require.Len(t, warnings, 1)
				assert.Contains(t, warnings[0].Message, "identificador ausente")
			},
		},
		{
			name: "Timezone diferente de UTC - deve converter para UTC",
			rawPosts: []domain.RawPost{
				{ID: "tw5", Timestamp: "2025-06-10T21:00:00-03:00"},
			},
			validate: func(t *testing.T, posts []domain.CanonicalPost, warnings []domain.Warning) {
				require.Len(t, posts, 1)
				assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), posts[0].CreatedAt)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts, warnings := normalizer.Normalize(tt.rawPosts)
			tt.validate(t, posts, warnings)
		})
	}
}

func TestInstagramNormalizer_Normalize(t *testing.T) {
	normalizer := NewInstagramNormalizer()

	tests := []struct {
		name     string
		rawPosts []domain.RawPost
		validate func(t *testing.T, posts []domain.CanonicalPost, warnings []domain.Warning)
	}{
		{
			name: "Formato de data da Graph API - deve converter para UTC",
			rawPosts: []domain.RawPost{
				{
					ID:        "ig1",
					Timestamp: "2025-06-10T18:45:00-0300",
					Text:      "bastidores da coleção #moda #Verao #moda",
					Likes:     intPtr(300),
					Comments:  intPtr(25),
				},
			},
			validate: func(t *testing.T, posts []domain.CanonicalPost, warnings []domain.Warning) {
				require.Len(t, posts, 1)
				assert.Empty(t, warnings)

				post := posts[0]
				assert.Equal(t, time.Date(2025, 6, 10, 21, 45, 0, 0, time.UTC), post.CreatedAt)
				assert.Equal(t, []string{"moda", "verao"}, post.Hashtags)
				assert.Equal(t, 0, post.ShareCount)
			},
		},
		{
			name: "Formato RFC3339 - deve aceitar como fallback",
			rawPosts: []domain.RawPost{
				{ID: "ig2", Timestamp: "2025-06-11T09:00:00Z", Text: "sem hashtag"},
			},
			validate: func(t *testing.T, posts []domain.CanonicalPost, warnings []domain.Warning) {
				require.Len(t, posts, 1)
				assert.Empty(t, posts[0].Hashtags)
			},
		},
		{
			name: "Legenda vazia com timestamp inválido - deve descartar com aviso",
			rawPosts: []domain.RawPost{
				{ID: "ig3", Timestamp: "10/06/2025"},
			},
			validate: func(t *testing.T, posts []domain.CanonicalPost, warnings []domain.Warning) {
				assert.Empty(t, posts)
				require.Len(t, warnings, 1)
				assert.Equal(t, "ig3", warnings[0].PostID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts, warnings := normalizer.Normalize(tt.rawPosts)
			tt.validate(t, posts, warnings)
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	tags := normalizeTags([]string{"#Verao", "MODA", "moda", " ", "", "#praia"})
	assert.Equal(t, []string{"moda", "praia", "verao"}, tags)
}
