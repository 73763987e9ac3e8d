package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
)

func testAccount(followers int) domain.AccountSnapshot {
	return domain.AccountSnapshot{
		AccountID:     "acc1",
		Username:      "empresa_x",
		Platform:      domain.PlatformTwitter,
		FollowerCount: followers,
		FetchedAt:     time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC),
	}
}

func testPeriod() domain.Period {
	return domain.Period{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC),
	}
}

func post(id string, createdAt time.Time, likes, comments, shares, impressions int, tags ...string) domain.CanonicalPost {
	return domain.CanonicalPost{
		ID:              id,
		CreatedAt:       createdAt,
		LikeCount:       likes,
		CommentCount:    comments,
		ShareCount:      shares,
		ImpressionCount: impressions,
		Hashtags:        tags,
	}
}

func TestAggregate_Engagement(t *testing.T) {
	// Dois posts: 167/9800 = 1.7041% e 100/5000 = 2%, média 1.85%
	posts := []domain.CanonicalPost{
		post("p1", time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC), 120, 14, 33, 9800),
		post("p2", time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC), 80, 10, 10, 5000),
	}

	result := Aggregate(Input{
		Posts:   posts,
		Account: testAccount(50000),
		Period:  testPeriod(),
		Types:   domain.NewAnalysisTypeSet(domain.AnalysisEngagement),
	})

	require.NotNil(t, result.Stats)
	assert.Equal(t, 2, result.Stats.TotalPosts)
	assert.Equal(t, 14800, result.Stats.TotalImpressions)
	assert.Equal(t, 200, result.Stats.TotalLikes)
	assert.Equal(t, 24, result.Stats.TotalComments)
	assert.Equal(t, 50000, result.Stats.FollowerCount)
	assert.InDelta(t, 1.85, result.Stats.AvgEngagementRate, 0.01)

	require.Len(t, result.EngagementSeries, 2)
	assert.Equal(t, "2025-06-10", result.EngagementSeries[0].Label)
	assert.InDelta(t, 1.70, result.EngagementSeries[0].Value, 0.01)
	assert.Equal(t, "2025-06-11", result.EngagementSeries[1].Label)
	assert.InDelta(t, 2.0, result.EngagementSeries[1].Value, 0.01)

	// Seções não solicitadas ficam nulas
	assert.Nil(t, result.TimingHistogram)
	assert.Nil(t, result.HashtagRanking)
}

func TestAggregate_FallbackParaSeguidores(t *testing.T) {
	// Post sem impressões usa a base de seguidores: 50/1000 = 5%
	posts := []domain.CanonicalPost{
		post("p1", time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC), 40, 5, 5, 0),
	}

	result := Aggregate(Input{
		Posts:   posts,
		Account: testAccount(1000),
		Period:  testPeriod(),
		Types:   domain.NewAnalysisTypeSet(domain.AnalysisEngagement),
	})

	require.NotNil(t, result.Stats)
	assert.InDelta(t, 5.0, result.Stats.AvgEngagementRate, 0.001)
}

func TestAggregate_ContaSemSeguidores(t *testing.T) {
	// Sem impressões e sem seguidores a base mínima é 1, nunca divide por zero
	posts := []domain.CanonicalPost{
		post("p1", time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC), 2, 1, 0, 0),
	}

	result := Aggregate(Input{
		Posts:   posts,
		Account: testAccount(0),
		Period:  testPeriod(),
		Types:   domain.NewAnalysisTypeSet(domain.AnalysisEngagement),
	})

	require.NotNil(t, result.Stats)
	assert.InDelta(t, 300.0, result.Stats.AvgEngagementRate, 0.001)
}

func TestAggregate_FiltroDePeriodoInclusivo(t *testing.T) {
	period := testPeriod()
	posts := []domain.CanonicalPost{
		post("antes", period.Start.Add(-time.Second), 1, 0, 0, 100),
		post("inicio", period.Start, 1, 0, 0, 100),
		post("fim", period.End, 1, 0, 0, 100),
		post("depois", period.End.Add(time.Second), 1, 0, 0, 100),
	}

	result := Aggregate(Input{
		Posts:   posts,
		Account: testAccount(1000),
		Period:  period,
		Types:   domain.NewAnalysisTypeSet(domain.AnalysisEngagement),
	})

	require.NotNil(t, result.Stats)
	assert.Equal(t, 2, result.Stats.TotalPosts)
}

func TestAggregate_Timing(t *testing.T) {
	posts := []domain.CanonicalPost{
		post("p1", time.Date(2025, 6, 10, 9, 15, 0, 0, time.UTC), 1, 0, 0, 100),
		post("p2", time.Date(2025, 6, 11, 9, 45, 0, 0, time.UTC), 1, 0, 0, 100),
		post("p3", time.Date(2025, 6, 12, 18, 0, 0, 0, time.UTC), 1, 0, 0, 100),
	}

	result := Aggregate(Input{
		Posts:   posts,
		Account: testAccount(1000),
		Period:  testPeriod(),
		Types:   domain.NewAnalysisTypeSet(domain.AnalysisTiming),
	})

	require.Len(t, result.TimingHistogram, 24)

	// Mais frequente primeiro, desempate pela hora
	assert.Equal(t, domain.TimingBucket{Label: "09:00", Count: 2}, result.TimingHistogram[0])
	assert.Equal(t, domain.TimingBucket{Label: "18:00", Count: 1}, result.TimingHistogram[1])
	assert.Equal(t, domain.TimingBucket{Label: "00:00", Count: 0}, result.TimingHistogram[2])

	total := 0
	for _, bucket := range result.TimingHistogram {
		total += bucket.Count
	}
	assert.Equal(t, len(posts), total)

	assert.Nil(t, result.Stats)
}

func TestAggregate_Hashtags(t *testing.T) {
	posts := []domain.CanonicalPost{
		post("p1", time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC), 10, 0, 0, 100, "moda", "verao"),
		post("p2", time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC), 30, 0, 0, 100, "moda"),
		post("p3", time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC), 20, 0, 0, 100, "praia"),
	}

	result := Aggregate(Input{
		Posts:   posts,
		Account: testAccount(1000),
		Period:  testPeriod(),
		Types:   domain.NewAnalysisTypeSet(domain.AnalysisHashtags),
	})

	require.Len(t, result.HashtagRanking, 3)

	assert.Equal(t, "moda", result.HashtagRanking[0].Tag)
	assert.Equal(t, 2, result.HashtagRanking[0].Count)
	assert.InDelta(t, 20.0, result.HashtagRanking[0].AvgEngagement, 0.01)

	// Empate em contagem resolve por ordem alfabética
	assert.Equal(t, "praia", result.HashtagRanking[1].Tag)
	assert.Equal(t, "verao", result.HashtagRanking[2].Tag)
}

func TestAggregate_SemPosts(t *testing.T) {
	result := Aggregate(Input{
		Posts:   nil,
		Account: testAccount(1000),
		Period:  testPeriod(),
		Types: domain.NewAnalysisTypeSet(
			domain.AnalysisEngagement,
			domain.AnalysisTiming,
			domain.AnalysisHashtags,
		),
	})

	require.NotNil(t, result.Stats)
	assert.Equal(t, 0, result.Stats.TotalPosts)
	assert.Equal(t, 0.0, result.Stats.AvgEngagementRate)
	assert.Equal(t, 1000, result.Stats.FollowerCount)

	assert.Empty(t, result.EngagementSeries)
	require.Len(t, result.TimingHistogram, 24)
	assert.Empty(t, result.HashtagRanking)
}

func TestAggregate_PreservaAvisos(t *testing.T) {
	warnings := []domain.Warning{{PostID: "x", Message: "timestamp inválido"}}

	result := Aggregate(Input{
		Account:  testAccount(1000),
		Period:   testPeriod(),
		Types:    domain.NewAnalysisTypeSet(domain.AnalysisEngagement),
		Warnings: warnings,
	})

	assert.Equal(t, warnings, result.Warnings)
}

func TestAggregate_Deterministico(t *testing.T) {
	posts := []domain.CanonicalPost{
		post("p2", time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC), 30, 2, 1, 500, "moda", "praia"),
		post("p1", time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC), 10, 1, 0, 200, "moda"),
	}

	input := Input{
		Posts:   posts,
		Account: testAccount(2000),
		Period:  testPeriod(),
		Types: domain.NewAnalysisTypeSet(
			domain.AnalysisEngagement,
			domain.AnalysisTiming,
			domain.AnalysisHashtags,
		),
	}

	first := Aggregate(input)
	second := Aggregate(input)

	assert.Equal(t, first, second)
}
