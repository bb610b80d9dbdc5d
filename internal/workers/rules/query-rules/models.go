// internal/workers/rules/query-rules/models.go
package queryrules

import "mortgage-workers/internal/models"

type Input struct {
	Category    string `json:"category"`
	LoanProgram string `json:"loanProgram,omitempty"`
	Pagination  *struct {
		From int `json:"from"`
		Size int `json:"size"`
	} `json:"pagination,omitempty"`
}

type Output struct {
	Rules     []models.Rule `json:"rules"`
	TotalHits int64         `json:"totalHits"`
	Took      int64         `json:"took"`
}
