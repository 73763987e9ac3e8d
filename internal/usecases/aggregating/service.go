package aggregating

import (
	"fmt"
	"sort"

	"github.com/vfg2006/sns-analyzer-api/internal/domain"
	"github.com/vfg2006/sns-analyzer-api/pkg/utils"
)

// Input agrupa tudo que a agregação precisa. A função é pura: mesmo input,
// mesmo resultado.
type Input struct {
	Posts    []domain.CanonicalPost
	Account  domain.AccountSnapshot
	Period   domain.Period
	Types    domain.AnalysisTypeSet
	Warnings []domain.Warning
}

// Aggregate calcula as seções solicitadas sobre os posts dentro do período.
// Seções não solicitadas ficam nulas no resultado; GeneratedAt fica a cargo
// do orquestrador.
func Aggregate(input Input) *domain.AnalysisResult {
	posts := filterByPeriod(input.Posts, input.Period)

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.Before(posts[j].CreatedAt)
	})

	result := &domain.AnalysisResult{
		Platform: input.Account.Platform,
		Username: input.Account.Username,
		Period:   input.Period,
		Warnings: input.Warnings,
	}

	if input.Types.Has(domain.AnalysisEngagement) {
		result.Stats = summarize(posts, input.Account)
		result.EngagementSeries = dailySeries(posts, input.Account)
	}

	if input.Types.Has(domain.AnalysisTiming) {
		result.TimingHistogram = hourlyHistogram(posts)
	}

	if input.Types.Has(domain.AnalysisHashtags) {
		result.HashtagRanking = rankHashtags(posts, input.Account)
	}

	return result
}

// filterByPeriod descarta posts fora da janela (inclusiva nas duas pontas)
func filterByPeriod(posts []domain.CanonicalPost, period domain.Period) []domain.CanonicalPost {
	filtered := make([]domain.CanonicalPost, 0, len(posts))
	for _, post := range posts {
		if period.Contains(post.CreatedAt) {
			filtered = append(filtered, post)
		}
	}
	return filtered
}

// engagementRate calcula a taxa de engajamento percentual de um post. Usa
// impressões como base; quando o post não tem impressões, cai para a base de
// seguidores da conta (mínimo 1 para nunca dividir por zero).
func engagementRate(post domain.CanonicalPost, account domain.AccountSnapshot) float64 {
	base := post.ImpressionCount
	if base == 0 {
		base = account.FollowerCount
		if base < 1 {
			base = 1
		}
	}

	return float64(post.Engagements()) / float64(base) * 100
}

// summarize calcula as estatísticas gerais do período
func summarize(posts []domain.CanonicalPost, account domain.AccountSnapshot) *domain.SummaryStats {
	stats := &domain.SummaryStats{
		TotalPosts:    len(posts),
		FollowerCount: account.FollowerCount,
	}

	if len(posts) == 0 {
		return stats
	}

	var rateSum float64
	for _, post := range posts {
		stats.TotalImpressions += post.ImpressionCount
		stats.TotalLikes += post.LikeCount
		stats.TotalComments += post.CommentCount
		rateSum += engagementRate(post, account)
	}

	stats.AvgEngagementRate = utils.RoundWithTwoDecimalPlace(rateSum / float64(len(posts)))

	return stats
}

// dailySeries monta a série temporal de engajamento médio por dia (UTC).
// Dias sem posts não entram na série; a ordem é cronológica.
func dailySeries(posts []domain.CanonicalPost, account domain.AccountSnapshot) []domain.SeriesPoint {
	type dayAccumulator struct {
		rateSum float64
		count   int
	}

	days := make(map[string]*dayAccumulator)
	order := make([]string, 0)

	for _, post := range posts {
		day := post.CreatedAt.UTC().Format("2006-01-02")
		accumulator, ok := days[day]
		if !ok {
			accumulator = &dayAccumulator{}
			days[day] = accumulator
			order = append(order, day)
		}

		accumulator.rateSum += engagementRate(post, account)
		accumulator.count++
	}

	series := make([]domain.SeriesPoint, 0, len(order))
	for _, day := range order {
		accumulator := days[day]
		series = append(series, domain.SeriesPoint{
			Label: day,
			Value: utils.RoundWithTwoDecimalPlace(accumulator.rateSum / float64(accumulator.count)),
		})
	}

	return series
}

// hourlyHistogram conta posts por hora do dia (UTC), nos 24 baldes. A ordem
// é por contagem decrescente, com desempate pela hora crescente.
func hourlyHistogram(posts []domain.CanonicalPost) []domain.TimingBucket {
	counts := make([]int, 24)
	for _, post := range posts {
		counts[post.CreatedAt.UTC().Hour()]++
	}

	buckets := make([]domain.TimingBucket, 0, 24)
	for hour := 0; hour < 24; hour++ {
		buckets = append(buckets, domain.TimingBucket{
			Label: fmt.Sprintf("%02d:00", hour),
			Count: counts[hour],
		})
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Label < buckets[j].Label
	})

	return buckets
}

// rankHashtags monta o ranking de hashtags por frequência, com o engajamento
// médio dos posts que usam cada tag. Desempate alfabético.
func rankHashtags(posts []domain.CanonicalPost, account domain.AccountSnapshot) []domain.HashtagStat {
	type tagAccumulator struct {
		count   int
		rateSum float64
	}

	tags := make(map[string]*tagAccumulator)

	for _, post := range posts {
		rate := engagementRate(post, account)
		for _, tag := range post.Hashtags {
			accumulator, ok := tags[tag]
			if !ok {
				accumulator = &tagAccumulator{}
				tags[tag] = accumulator
			}

			accumulator.count++
			accumulator.rateSum += rate
		}
	}

	ranking := make([]domain.HashtagStat, 0, len(tags))
	for tag, accumulator := range tags {
		ranking = append(ranking, domain.HashtagStat{
			Tag:           tag,
			Count:         accumulator.count,
			AvgEngagement: utils.RoundWithTwoDecimalPlace(accumulator.rateSum / float64(accumulator.count)),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].Tag < ranking[j].Tag
	})

	return ranking
}
