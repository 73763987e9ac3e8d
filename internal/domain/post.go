package domain

import "time"

// Platform identifica a rede social de origem de uma análise.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
)

// Valid verifica se a plataforma é suportada
func (p Platform) Valid() bool {
	return p == PlatformTwitter || p == PlatformInstagram
}

// RawPost é o registro bruto de um post, com os campos já mapeados a partir
// dos nomes específicos de cada plataforma mas ainda sem interpretação.
// Campos numéricos são ponteiros para distinguir "ausente" de "zero".
type RawPost struct {
	ID          string
	Timestamp   string // no formato original da plataforma
	Text        string
	Likes       *int
	Comments    *int
	Shares      *int
	Impressions *int
	Tags        []string // hashtags entregues pela API (entities), quando houver
}

// CanonicalPost é a representação normalizada de um post, independente de
// plataforma. Toda a agregação opera apenas sobre este formato.
type CanonicalPost struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"` // sempre em UTC
	Text            string    `json:"text"`
	LikeCount       int       `json:"like_count"`
	CommentCount    int       `json:"comment_count"`
	ShareCount      int       `json:"share_count"`
	ImpressionCount int       `json:"impression_count"`
	Hashtags        []string  `json:"hashtags"` // minúsculas, sem '#', sem duplicatas
}

// Engagements retorna o total de interações do post
func (p CanonicalPost) Engagements() int {
	return p.LikeCount + p.CommentCount + p.ShareCount
}

// AccountSnapshot são os dados da conta no momento da análise. Tem ciclo de
// vida próprio: é buscado uma vez por análise, não por post.
type AccountSnapshot struct {
	AccountID     string    `json:"account_id"`
	Username      string    `json:"username"`
	Platform      Platform  `json:"platform"`
	FollowerCount int       `json:"follower_count"`
	FetchedAt     time.Time `json:"fetched_at"`
}

// Warning registra uma falha não fatal ocorrida durante a normalização
type Warning struct {
	PostID  string `json:"post_id"`
	Message string `json:"message"`
}

// Period delimita a janela de análise, inclusiva nas duas pontas.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains verifica se o instante está dentro do período [Start, End]
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}
