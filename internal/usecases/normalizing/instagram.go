package normalizing

import (
	"regexp"
	"time"

	"github.com/vfg2006/sns-analyzer-api/internal/domain"
)

// instagramTimeLayout é o formato de data da Graph API ("-0700" sem os dois
// pontos do RFC3339)
const instagramTimeLayout = "2006-01-02T15:04:05-0700"

var hashtagPattern = regexp.MustCompile(`#(\w+)`)

// InstagramNormalizer converte mídias brutas do Instagram para o formato
// canônico. A Graph API não entrega hashtags estruturadas, então elas são
// extraídas da legenda.
type InstagramNormalizer struct{}

func NewInstagramNormalizer() *InstagramNormalizer {
	return &InstagramNormalizer{}
}

func (n *InstagramNormalizer) Platform() domain.Platform {
	return domain.PlatformInstagram
}

func (n *InstagramNormalizer) Normalize(rawPosts []domain.RawPost) ([]domain.CanonicalPost, []domain.Warning) {
	return normalizeBatch(domain.PlatformInstagram, rawPosts, n.convert)
}

func (n *InstagramNormalizer) convert(raw domain.RawPost) (domain.CanonicalPost, error) {
	if raw.ID == "" {
		return domain.CanonicalPost{}, &MalformedPostError{Reason: "identificador ausente"}
	}

	if raw.Timestamp == "" {
		return domain.CanonicalPost{}, &MalformedPostError{PostID: raw.ID, Reason: "timestamp ausente"}
	}

	createdAt, err := time.Parse(instagramTimeLayout, raw.Timestamp)
	if err != nil {
		// Alguns endpoints já entregam RFC3339
		createdAt, err = time.Parse(time.RFC3339, raw.Timestamp)
		if err != nil {
			return domain.CanonicalPost{}, &MalformedPostError{
				PostID: raw.ID,
				Reason: "timestamp inválido: " + raw.Timestamp,
			}
		}
	}

	tags := raw.Tags
	if len(tags) == 0 {
		tags = extractHashtags(raw.Text)
	}

	return domain.CanonicalPost{
		ID:              raw.ID,
		CreatedAt:       createdAt.UTC(),
		Text:            raw.Text,
		LikeCount:       intOrZero(raw.Likes),
		CommentCount:    intOrZero(raw.Comments),
		ShareCount:      intOrZero(raw.Shares),
		ImpressionCount: intOrZero(raw.Impressions),
		Hashtags:        normalizeTags(tags),
	}, nil
}

// extractHashtags varre a legenda em busca de hashtags
func extractHashtags(caption string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(caption, -1)
	if len(matches) == 0 {
		return nil
	}

	tags := make([]string, 0, len(matches))
	for _, match := range matches {
		tags = append(tags, match[1])
	}

	return tags
}
