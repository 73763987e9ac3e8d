package normalizing

import (
	"time"

	"github.com/vfg2006/sns-analyzer-api/internal/domain"
)

// TwitterNormalizer converte tweets brutos para o formato canônico. Os
// timestamps chegam em RFC3339 e as hashtags vêm das entities da API.
type TwitterNormalizer struct{}

func NewTwitterNormalizer() *TwitterNormalizer {
	return &TwitterNormalizer{}
}

func (n *TwitterNormalizer) Platform() domain.Platform {
	return domain.PlatformTwitter
}

func (n *TwitterNormalizer) Normalize(rawPosts []domain.RawPost) ([]domain.CanonicalPost, []domain.Warning) {
	return normalizeBatch(domain.PlatformTwitter, rawPosts, n.convert)
}

func (n *TwitterNormalizer) convert(raw domain.RawPost) (domain.CanonicalPost, error) {
	if raw.ID == "" {
		return domain.CanonicalPost{}, &MalformedPostError{Reason: "identificador ausente"}
	}

	if raw.Timestamp == "" {
		return domain.CanonicalPost{}, &MalformedPostError{PostID: raw.ID, Reason: "timestamp ausente"}
	}

	createdAt, err := time.Parse(time.RFC3339, raw.Timestamp)
	if err != nil {
		return domain.CanonicalPost{}, &MalformedPostError{
			PostID: raw.ID,
			Reason: "timestamp inválido: " + raw.Timestamp,
		}
	}

	return domain.CanonicalPost{
		ID:              raw.ID,
		CreatedAt:       createdAt.UTC(),
		Text:            raw.Text,
		LikeCount:       intOrZero(raw.Likes),
		CommentCount:    intOrZero(raw.Comments),
		ShareCount:      intOrZero(raw.Shares),
		ImpressionCount: intOrZero(raw.Impressions),
		Hashtags:        normalizeTags(raw.Tags),
	}, nil
}
