package twitter

import (
	"context"
	"testing"
	"time"

	gotwitter "github.com/g8rswimmer/go-twitter/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/integrator/twitter/twitterclient"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/integrator/twitter/twitterclient/mocks"
	"github.com/vfg2006/sns-analyzer-api/internal/config"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestTwitterIntegrator_FetchAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, mockClient)

	mockClient.EXPECT().
		UserByUsername(gomock.Any(), "empresa_x").
		Return(&gotwitter.UserObj{
			ID:       "123",
			UserName: "empresa_x",
			PublicMetrics: &gotwitter.UserMetricsObj{
				Followers: 50000,
			},
		}, nil)

	account, err := integrator.FetchAccount(context.Background(), "empresa_x")
	require.NoError(t, err)

	assert.Equal(t, "123", account.AccountID)
	assert.Equal(t, "empresa_x", account.Username)
	assert.Equal(t, domain.PlatformTwitter, account.Platform)
	assert.Equal(t, 50000, account.FollowerCount)
}

func TestTwitterIntegrator_FetchAccount_NaoEncontrada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, mockClient)

	mockClient.EXPECT().
		UserByUsername(gomock.Any(), "fantasma").
		Return(nil, twitterclient.ErrUserNotFound)

	_, err := integrator.FetchAccount(context.Background(), "fantasma")
	assert.ErrorIs(t, err, twitterclient.ErrUserNotFound)
}

func TestTwitterIntegrator_FetchPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, mockClient)

	period := domain.Period{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	mockClient.EXPECT().
		UserByUsername(gomock.Any(), "empresa_x").
		Return(&gotwitter.UserObj{ID: "123", UserName: "empresa_x"}, nil)

	mockClient.EXPECT().
		TweetsByUserID(gomock.Any(), "123", period).
		Return([]*gotwitter.TweetObj{
			{
				ID:        "tw1",
				Text:      "lançamento #golang",
				CreatedAt: "2025-06-10T14:30:00Z",
				PublicMetrics: &gotwitter.TweetMetricsObj{
					Likes:       120,
					Replies:     14,
					Retweets:    30,
					Quotes:      3,
					Impressions: 9800,
				},
				Entities: &gotwitter.EntitiesObj{
					HashTags: []gotwitter.EntityTagObj{{Tag: "golang"}},
				},
			},
			{
				ID:        "tw2",
				Text:      "sem métricas públicas",
				CreatedAt: "2025-06-11T08:00:00Z",
			},
		}, nil)

	rawPosts, err := integrator.FetchPosts(context.Background(), "empresa_x", period)
	require.NoError(t, err)
	require.Len(t, rawPosts, 2)

	first := rawPosts[0]
	assert.Equal(t, "tw1", first.ID)
	assert.Equal(t, "2025-06-10T14:30:00Z", first.Timestamp)
	require.NotNil(t, first.Likes)
	assert.Equal(t, 120, *first.Likes)
	require.NotNil(t, first.Shares)
	assert.Equal(t, 33, *first.Shares) // retweets + quotes
	require.NotNil(t, first.Impressions)
	assert.Equal(t, 9800, *first.Impressions)
	assert.Equal(t, []string{"golang"}, first.Tags)

	// Sem métricas públicas os campos ficam nulos para o normalizador
	second := rawPosts[1]
	assert.Nil(t, second.Likes)
	assert.Nil(t, second.Impressions)
	assert.Empty(t, second.Tags)
}
