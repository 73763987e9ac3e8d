package normalizing

import "fmt"

// MalformedPostError indica um post bruto que não pôde ser convertido para o
// formato canônico. Nunca interrompe a normalização do lote: o post é
// descartado e o erro vira um aviso no resultado.
type MalformedPostError struct {
	PostID string
	Reason string
}

func (e *MalformedPostError) Error() string {
	if e.PostID == "" {
		return fmt.Sprintf("post malformado: %s", e.Reason)
	}
	return fmt.Sprintf("post %s malformado: %s", e.PostID, e.Reason)
}
