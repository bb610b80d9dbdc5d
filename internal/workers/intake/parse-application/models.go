// internal/workers/intake/parse-application/models.go
package parseapplication

import "mortgage-workers/internal/parse"

type Input struct {
	RawText string `json:"rawText"`
}

type Output struct {
	Parsed *parse.Record `json:"parsed"`
}
