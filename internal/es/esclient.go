package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/Skotchmaster/storefront/internal/models"
)

// NewClient connects to Elasticsearch and checks that the cluster answers.
func NewClient(ctx context.Context, url, user, password string) (*elasticsearch.Client, error) {
	slog.Info("es_connecting", "url", url)

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
		Username:  user,
		Password:  password,
	})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}

	res, err := client.Info(client.Info.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("elasticsearch info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch info: %s: %s", res.Status(), body)
	}

	return client, nil
}

// Mirror copies the catalog into an index so site search can run outside the API.
type Mirror struct {
	Client *elasticsearch.Client
	Index  string
}

type bulkResponse struct {
	Errors bool `json:"errors"`
	Items  []map[string]struct {
		ID     string `json:"_id"`
		Status int    `json:"status"`
		Error  *struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		} `json:"error"`
	} `json:"items"`
}

// IndexServices upserts every service with its id as document id and returns the number indexed.
func (m *Mirror) IndexServices(ctx context.Context, services []models.Service) (int, error) {
	if len(services) == 0 {
		return 0, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, s := range services {
		meta := map[string]any{"index": map[string]any{"_index": m.Index, "_id": s.ID}}
		if err := enc.Encode(meta); err != nil {
			return 0, fmt.Errorf("encode bulk meta: %w", err)
		}
		if err := enc.Encode(s); err != nil {
			return 0, fmt.Errorf("encode service %s: %w", s.ID, err)
		}
	}

	res, err := m.Client.Bulk(
		&buf,
		m.Client.Bulk.WithContext(ctx),
		m.Client.Bulk.WithIndex(m.Index),
		m.Client.Bulk.WithRefresh("true"),
	)
	if err != nil {
		return 0, fmt.Errorf("bulk index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return 0, fmt.Errorf("bulk index: %s: %s", res.Status(), body)
	}

	var br bulkResponse
	if err := json.NewDecoder(res.Body).Decode(&br); err != nil {
		return 0, fmt.Errorf("decode bulk response: %w", err)
	}

	indexed := 0
	var firstErr string
	for _, item := range br.Items {
		for _, r := range item {
			if r.Error == nil && r.Status < 300 {
				indexed++
				continue
			}
			if firstErr == "" && r.Error != nil {
				firstErr = fmt.Sprintf("%s: %s: %s", r.ID, r.Error.Type, r.Error.Reason)
			}
		}
	}
	if br.Errors {
		return indexed, fmt.Errorf("bulk index: %d of %d failed, first: %s", len(services)-indexed, len(services), firstErr)
	}
	return indexed, nil
}
