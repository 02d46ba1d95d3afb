package api

type AggregateRequest struct {
	Prompt string `json:"prompt"`
}

type AggregateResponse struct {
	OK bool `json:"ok"`

	Document string `json:"document"`
	FileName string `json:"fileName"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
