package instagram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	instagramdomain "github.com/vfg2006/sns-analyzer-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/integrator/instagram/instagramclient"
	"github.com/vfg2006/sns-analyzer-api/internal/config"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
)

// InstagramIntegrator busca a conta e as mídias na Graph API e as converte
// para o formato bruto do domínio. A Graph API só expõe a conta autenticada
// pelo token, então o usuário solicitado precisa bater com ela.
type InstagramIntegrator struct {
	cfg    *config.Config
	Client instagramclient.Client
}

func New(cfg *config.Config, client instagramclient.Client) *InstagramIntegrator {
	return &InstagramIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *InstagramIntegrator) Platform() domain.Platform {
	return domain.PlatformInstagram
}

func (s *InstagramIntegrator) FetchAccount(ctx context.Context, username string) (*domain.AccountSnapshot, error) {
	profile, err := s.profileFor(ctx, username)
	if err != nil {
		return nil, err
	}

	return &domain.AccountSnapshot{
		AccountID:     profile.ID,
		Username:      profile.Username,
		Platform:      domain.PlatformInstagram,
		FollowerCount: profile.FollowersCount,
		FetchedAt:     time.Now().UTC(),
	}, nil
}

func (s *InstagramIntegrator) FetchPosts(ctx context.Context, username string, period domain.Period) ([]domain.RawPost, error) {
	if _, err := s.profileFor(ctx, username); err != nil {
		return nil, err
	}

	media, err := s.Client.GetUserMedia(ctx, period)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"username": username,
			"error":    err.Error(),
		}).Error("instagram: falha ao buscar as mídias")
		return nil, err
	}

	rawPosts := make([]domain.RawPost, 0, len(media))
	for _, item := range media {
		rawPosts = append(rawPosts, mapMedia(item))
	}

	return rawPosts, nil
}

// profileFor busca o perfil autenticado e confirma que é o usuário pedido
func (s *InstagramIntegrator) profileFor(ctx context.Context, username string) (*instagramdomain.Profile, error) {
	profile, err := s.Client.GetProfile(ctx)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"username": username,
			"error":    err.Error(),
		}).Error("instagram: falha ao buscar o perfil")
		return nil, err
	}

	if !strings.EqualFold(profile.Username, username) {
		return nil, fmt.Errorf(
			"o token configurado pertence à conta %q, não à conta %q",
			profile.Username, username,
		)
	}

	return profile, nil
}

// mapMedia converte uma mídia da Graph API para o registro bruto do domínio.
// A API não entrega compartilhamentos nem impressões por mídia, então esses
// campos ficam nulos e o cálculo de engajamento cai para a base de seguidores.
func mapMedia(media instagramdomain.Media) domain.RawPost {
	likes := media.LikeCount
	comments := media.CommentsCount

	return domain.RawPost{
		ID:        media.ID,
		Timestamp: media.Timestamp,
		Text:      media.Caption,
		Likes:     &likes,
		Comments:  &comments,
	}
}
