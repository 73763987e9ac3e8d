package analyzing

import "fmt"

// InvalidRequestError indica uma requisição de análise rejeitada antes de
// qualquer busca externa
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("requisição inválida (%s): %s", e.Field, e.Reason)
}

// FetchTimeoutError indica que a plataforma não respondeu dentro do prazo
type FetchTimeoutError struct {
	Platform string
}

func (e *FetchTimeoutError) Error() string {
	return fmt.Sprintf("a busca na plataforma %s excedeu o prazo", e.Platform)
}

// FetchFailedError indica uma falha da plataforma durante a busca
type FetchFailedError struct {
	Platform string
	Err      error
}

func (e *FetchFailedError) Error() string {
	return fmt.Sprintf("falha ao buscar dados na plataforma %s: %v", e.Platform, e.Err)
}

func (e *FetchFailedError) Unwrap() error {
	return e.Err
}
