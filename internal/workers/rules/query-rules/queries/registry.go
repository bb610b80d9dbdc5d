package queries

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"

	"mortgage-workers/internal/models"
)

type QueryResult struct {
	Rules     []models.Rule
	TotalHits int64
	Took      int64
}

// Execute runs a rule query and decodes the hits into rule documents.
func Execute(ctx context.Context, esClient *elasticsearch.Client, rq RuleQuery) (*QueryResult, error) {
	if rq.Pagination.Size <= 0 {
		rq.Pagination.Size = 20
	}
	if rq.Pagination.Size > 100 {
		rq.Pagination.Size = 100
	}

	req, err := BuildQuery(rq)
	if err != nil {
		return nil, err
	}

	res, err := req.Do(ctx, esClient)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("rule query failed: %s", res.String())
	}

	var r struct {
		Took int64 `json:"took"`
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID     string      `json:"_id"`
				Source models.Rule `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode rule query response: %w", err)
	}

	rules := make([]models.Rule, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		rule := hit.Source
		if rule.ID == "" {
			rule.ID = hit.ID
		}
		rules = append(rules, rule)
	}

	return &QueryResult{
		Rules:     rules,
		TotalHits: r.Hits.Total.Value,
		Took:      r.Took,
	}, nil
}
