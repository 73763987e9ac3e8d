package twitter

import (
	"context"
	"time"

	gotwitter "github.com/g8rswimmer/go-twitter/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/integrator/twitter/twitterclient"
	"github.com/vfg2006/sns-analyzer-api/internal/config"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
)

// TwitterIntegrator busca contas e tweets na API v2 e os converte para o
// formato bruto do domínio
type TwitterIntegrator struct {
	cfg    *config.Config
	Client twitterclient.Client
}

func New(cfg *config.Config, client twitterclient.Client) *TwitterIntegrator {
	return &TwitterIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *TwitterIntegrator) Platform() domain.Platform {
	return domain.PlatformTwitter
}

func (s *TwitterIntegrator) FetchAccount(ctx context.Context, username string) (*domain.AccountSnapshot, error) {
	user, err := s.Client.UserByUsername(ctx, username)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"username": username,
			"error":    err.Error(),
		}).Error("twitter: falha ao buscar a conta")
		return nil, err
	}

	followers := 0
	if user.PublicMetrics != nil {
		followers = user.PublicMetrics.Followers
	}

	return &domain.AccountSnapshot{
		AccountID:     user.ID,
		Username:      user.UserName,
		Platform:      domain.PlatformTwitter,
		FollowerCount: followers,
		FetchedAt:     time.Now().UTC(),
	}, nil
}

func (s *TwitterIntegrator) FetchPosts(ctx context.Context, username string, period domain.Period) ([]domain.RawPost, error) {
	user, err := s.Client.UserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	tweets, err := s.Client.TweetsByUserID(ctx, user.ID, period)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"username": username,
			"user_id":  user.ID,
			"error":    err.Error(),
		}).Error("twitter: falha ao buscar a timeline")
		return nil, err
	}

	rawPosts := make([]domain.RawPost, 0, len(tweets))
	for _, tweet := range tweets {
		if tweet == nil {
			continue
		}
		rawPosts = append(rawPosts, mapTweet(tweet))
	}

	return rawPosts, nil
}

// mapTweet converte um tweet da API para o registro bruto do domínio.
// Retweets contam como compartilhamentos.
func mapTweet(tweet *gotwitter.TweetObj) domain.RawPost {
	raw := domain.RawPost{
		ID:        tweet.ID,
		Timestamp: tweet.CreatedAt,
		Text:      tweet.Text,
	}

	if tweet.PublicMetrics != nil {
		likes := tweet.PublicMetrics.Likes
		comments := tweet.PublicMetrics.Replies
		shares := tweet.PublicMetrics.Retweets + tweet.PublicMetrics.Quotes
		impressions := tweet.PublicMetrics.Impressions

		raw.Likes = &likes
		raw.Comments = &comments
		raw.Shares = &shares
		raw.Impressions = &impressions
	}

	if tweet.Entities != nil {
		for _, hashtag := range tweet.Entities.HashTags {
			raw.Tags = append(raw.Tags, hashtag.Tag)
		}
	}

	return raw
}
