package instagram

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	instagramdomain "github.com/vfg2006/sns-analyzer-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/integrator/instagram/instagramclient/mocks"
	"github.com/vfg2006/sns-analyzer-api/internal/config"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestInstagramIntegrator_FetchAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, mockClient)

	mockClient.EXPECT().
		GetProfile(gomock.Any()).
		Return(&instagramdomain.Profile{
			ID:             "178414",
			Username:       "empresa_x",
			FollowersCount: 12000,
			MediaCount:     340,
		}, nil)

	account, err := integrator.FetchAccount(context.Background(), "Empresa_X")
	require.NoError(t, err)

	assert.Equal(t, "178414", account.AccountID)
	assert.Equal(t, "empresa_x", account.Username)
	assert.Equal(t, domain.PlatformInstagram, account.Platform)
	assert.Equal(t, 12000, account.FollowerCount)
}

func TestInstagramIntegrator_FetchAccount_ContaDiferenteDoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, mockClient)

	mockClient.EXPECT().
		GetProfile(gomock.Any()).
		Return(&instagramdomain.Profile{Username: "empresa_x"}, nil)

	_, err := integrator.FetchAccount(context.Background(), "outra_conta")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pertence à conta")
}

func TestInstagramIntegrator_FetchPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, mockClient)

	period := domain.Period{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	mockClient.EXPECT().
		GetProfile(gomock.Any()).
		Return(&instagramdomain.Profile{Username: "empresa_x"}, nil)

	mockClient.EXPECT().
		GetUserMedia(gomock.Any(), period).
		Return([]instagramdomain.Media{
			{
				ID:            "ig1",
				Caption:       "bastidores #moda",
				MediaType:     "IMAGE",
				Timestamp:     "2025-06-10T18:45:00-0300",
				LikeCount:     300,
				CommentsCount: 25,
			},
		}, nil)

	rawPosts, err := integrator.FetchPosts(context.Background(), "empresa_x", period)
	require.NoError(t, err)
	require.Len(t, rawPosts, 1)

	raw := rawPosts[0]
	assert.Equal(t, "ig1", raw.ID)
	assert.Equal(t, "2025-06-10T18:45:00-0300", raw.Timestamp)
	require.NotNil(t, raw.Likes)
	assert.Equal(t, 300, *raw.Likes)
	require.NotNil(t, raw.Comments)
	assert.Equal(t, 25, *raw.Comments)

	// A Graph API não expõe compartilhamentos nem impressões por mídia
	assert.Nil(t, raw.Shares)
	assert.Nil(t, raw.Impressions)
}
