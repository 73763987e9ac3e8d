package demo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
	"github.com/vfg2006/sns-analyzer-api/internal/usecases/normalizing"
)

func demoPeriod() domain.Period {
	return domain.Period{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC),
	}
}

func TestGenerator_Deterministico(t *testing.T) {
	generator := NewGenerator(domain.PlatformTwitter)
	ctx := context.Background()

	first, err := generator.FetchPosts(ctx, "empresa_x", demoPeriod())
	require.NoError(t, err)

	second, err := generator.FetchPosts(ctx, "empresa_x", demoPeriod())
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// Usuário diferente produz dados diferentes
	other, err := generator.FetchPosts(ctx, "outra_conta", demoPeriod())
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestGenerator_PostsDentroDoPeriodo(t *testing.T) {
	generator := NewGenerator(domain.PlatformTwitter)
	period := demoPeriod()

	posts, err := generator.FetchPosts(context.Background(), "empresa_x", period)
	require.NoError(t, err)
	require.NotEmpty(t, posts)

	for _, post := range posts {
		createdAt, err := time.Parse(time.RFC3339, post.Timestamp)
		require.NoError(t, err)
		assert.True(t, period.Contains(createdAt), "post fora do período: %s", post.Timestamp)
		assert.NotEmpty(t, post.Tags, "todo post demo deve vir com as hashtags da legenda")
	}
}

func TestGenerator_CompativelComNormalizador(t *testing.T) {
	tests := []struct {
		name       string
		platform   domain.Platform
		normalizer normalizing.Normalizer
	}{
		{"Twitter", domain.PlatformTwitter, normalizing.NewTwitterNormalizer()},
		{"Instagram", domain.PlatformInstagram, normalizing.NewInstagramNormalizer()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := NewGenerator(tt.platform)

			posts, err := generator.FetchPosts(context.Background(), "empresa_x", demoPeriod())
			require.NoError(t, err)

			normalized, warnings := tt.normalizer.Normalize(posts)
			assert.Empty(t, warnings, "nenhum post demo deveria ser descartado")
			assert.Len(t, normalized, len(posts))

			for _, post := range normalized {
				assert.NotEmpty(t, post.Hashtags, "as legendas demo sempre carregam hashtags")
			}
		})
	}
}

func TestGenerator_FetchAccount(t *testing.T) {
	generator := NewGenerator(domain.PlatformInstagram)
	ctx := context.Background()

	first, err := generator.FetchAccount(ctx, "empresa_x")
	require.NoError(t, err)

	second, err := generator.FetchAccount(ctx, "empresa_x")
	require.NoError(t, err)

	assert.Equal(t, first.AccountID, second.AccountID)
	assert.Equal(t, first.FollowerCount, second.FollowerCount)
	assert.Equal(t, domain.PlatformInstagram, first.Platform)
	assert.GreaterOrEqual(t, first.FollowerCount, 5000)
}
