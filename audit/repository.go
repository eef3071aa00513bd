// audit/repository.go
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const esIndex = "hms-audit-logs"

type Repository interface {
	Record(ctx context.Context, entry Entry) error
	Query(ctx context.Context, from, to time.Time, userEmail, action string) ([]Entry, error)
}

// ElasticsearchRepository indexes entries into a shared cluster so audits
// from every operator seat land in one searchable place.
type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
}

func NewElasticsearchRepository(esURL string) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{esURL},
	}
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &ElasticsearchRepository{esClient: esClient}, nil
}

func (r *ElasticsearchRepository) Record(ctx context.Context, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      esIndex,
		DocumentID: entry.ID,
		Body:       strings.NewReader(string(data)),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *ElasticsearchRepository) Query(ctx context.Context, from, to time.Time, userEmail, action string) ([]Entry, error) {
	must := []interface{}{
		map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{
					"gte": from.Format(time.RFC3339),
					"lte": to.Format(time.RFC3339),
				},
			},
		},
	}
	if userEmail != "" {
		must = append(must, map[string]interface{}{
			"match": map[string]interface{}{"user_email": userEmail},
		})
	}
	if action != "" {
		must = append(must, map[string]interface{}{
			"match": map[string]interface{}{"action": action},
		})
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{"must": must},
		},
	}

	var buf strings.Builder
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, err
	}

	res, err := r.esClient.Search(
		r.esClient.Search.WithContext(ctx),
		r.esClient.Search.WithIndex(esIndex),
		r.esClient.Search.WithBody(strings.NewReader(buf.String())),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching documents: %s", res.String())
	}

	var rmap struct {
		Hits struct {
			Hits []struct {
				Source Entry `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&rmap); err != nil {
		return nil, err
	}

	entries := make([]Entry, len(rmap.Hits.Hits))
	for i, hit := range rmap.Hits.Hits {
		entries[i] = hit.Source
	}
	return entries, nil
}
