package twitterclient

import (
	"context"
	"net/http"
	"time"

	twitter "github.com/g8rswimmer/go-twitter/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sns-analyzer-api/internal/config"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
)

// ErrUserNotFound indica que o usuário não existe na plataforma
var ErrUserNotFound = errors.New("usuário não encontrado no Twitter")

// tweetsPerPage é o máximo aceito pela API de timeline
const tweetsPerPage = 100

// Client encapsula as chamadas à API v2 do Twitter
type Client interface {
	// UserByUsername busca o usuário pelo handle, com as métricas públicas
	UserByUsername(ctx context.Context, username string) (*twitter.UserObj, error)

	// TweetsByUserID busca os tweets do usuário dentro do período, paginando
	// até o limite configurado. Retweets e replies ficam de fora.
	TweetsByUserID(ctx context.Context, userID string, period domain.Period) ([]*twitter.TweetObj, error)
}

type client struct {
	api      *twitter.Client
	maxPages int
}

// authorizer injeta o bearer token nas requisições
type authorizer struct {
	token string
}

func (a *authorizer) Add(req *http.Request) {
	req.Header.Add("Authorization", "Bearer "+a.token)
}

// NewClient cria um cliente para a API v2 do Twitter
func NewClient(cfg *config.Config) Client {
	return &client{
		api: &twitter.Client{
			Authorizer: &authorizer{token: cfg.Twitter.BearerToken},
			Client: &http.Client{
				Timeout: 30 * time.Second,
			},
			Host: cfg.Twitter.BaseURL,
		},
		maxPages: cfg.Twitter.MaxPages,
	}
}

func (c *client) UserByUsername(ctx context.Context, username string) (*twitter.UserObj, error) {
	resp, err := c.api.UserNameLookup(ctx, []string{username}, twitter.UserLookupOpts{
		UserFields: []twitter.UserField{twitter.UserFieldPublicMetrics},
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar usuário no Twitter")
	}

	if len(resp.Raw.Users) == 0 {
		return nil, ErrUserNotFound
	}

	return resp.Raw.Users[0], nil
}

func (c *client) TweetsByUserID(ctx context.Context, userID string, period domain.Period) ([]*twitter.TweetObj, error) {
	opts := twitter.UserTweetTimelineOpts{
		MaxResults: tweetsPerPage,
		StartTime:  period.Start,
		EndTime:    period.End,
		Excludes: []twitter.Exclude{
			twitter.ExcludeRetweets,
			twitter.ExcludeReplies,
		},
		TweetFields: []twitter.TweetField{
			twitter.TweetFieldCreatedAt,
			twitter.TweetFieldPublicMetrics,
			twitter.TweetFieldEntities,
		},
	}

	tweets := make([]*twitter.TweetObj, 0, tweetsPerPage)

	for page := 0; page < c.maxPages; page++ {
		resp, err := c.api.UserTweetTimeline(ctx, userID, opts)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar timeline no Twitter")
		}

		tweets = append(tweets, resp.Raw.Tweets...)

		if resp.Meta == nil || resp.Meta.NextToken == "" {
			break
		}

		opts.PaginationToken = resp.Meta.NextToken
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"tweets":  len(tweets),
	}).Debug("twitter: timeline carregada")

	return tweets, nil
}
