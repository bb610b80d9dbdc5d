package queries

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"mortgage-workers/internal/models"
)

var (
	ErrInvalidCategory = errors.New("invalid rule category")
	ErrMissingIndex    = errors.New("index name is required")
)

// RuleQuery describes a lookup against the underwriting rules index.
type RuleQuery struct {
	Index       string
	Category    string
	LoanProgram string
	Pagination  struct {
		From int
		Size int
	}
}

// BuildQuery builds the search request for a rule category. Only active
// rules are returned; an optional loan program narrows the result set.
func BuildQuery(rq RuleQuery) (*esapi.SearchRequest, error) {
	if rq.Index == "" {
		return nil, ErrMissingIndex
	}
	if !models.ValidRuleCategory(rq.Category) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, rq.Category)
	}

	filterClauses := []interface{}{
		map[string]interface{}{
			"term": map[string]interface{}{"category": rq.Category},
		},
		map[string]interface{}{
			"term": map[string]interface{}{"active": true},
		},
	}

	if rq.LoanProgram != "" {
		filterClauses = append(filterClauses, map[string]interface{}{
			"term": map[string]interface{}{"loanProgram": rq.LoanProgram},
		})
	}

	queryBody := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": filterClauses,
			},
		},
		"sort": []interface{}{
			map[string]interface{}{"updatedAt": map[string]interface{}{"order": "desc"}},
		},
	}

	body, _ := json.Marshal(queryBody)

	req := esapi.SearchRequest{
		Index: []string{rq.Index},
		Body:  strings.NewReader(string(body)),
		From:  &rq.Pagination.From,
		Size:  &rq.Pagination.Size,
	}

	return &req, nil
}
