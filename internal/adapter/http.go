// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/gemctl/gemctl/internal/auth"
	"github.com/gemctl/gemctl/internal/logger"
	"github.com/gemctl/gemctl/models"
)

// Config carries the transport settings of the adapter.
type Config struct {
	// BaseURL is the regional API endpoint including the version prefix,
	// e.g. https://us-discoveryengine.googleapis.com/v1.
	BaseURL string

	// Timeout bounds every single HTTP request. Zero means the default.
	Timeout time.Duration

	// QuotaProject, when non-empty, is sent as X-Goog-User-Project on every
	// request. Required for user-credential invocations, which bill against
	// the target project rather than the credential's own.
	QuotaProject string
}

const defaultRequestTimeout = 30 * time.Second

type discoveryAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewDiscoveryAdapter constructs the resty-backed [DiscoveryAdapter]. Every
// outbound request is stamped with a bearer token freshly obtained from
// tokens (sources cache internally), plus the quota project header when
// configured.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewDiscoveryAdapter(cfg Config, tokens auth.TokenSource, log *logger.Logger) (DiscoveryAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRequestTimeout
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	cli.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		token, err := tokens.Token(req.Context())
		if err != nil {
			return fmt.Errorf("obtain access token: %w", err)
		}
		req.SetHeader("Authorization", "Bearer "+token)
		if cfg.QuotaProject != "" {
			req.SetHeader("X-Goog-User-Project", cfg.QuotaProject)
		}
		return nil
	})

	return &discoveryAdapter{client: cli, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListCollections implements [DiscoveryAdapter]. It GETs
// /{parent}/collections and treats 404 as an empty result, matching the
// API's behavior for projects that never created one.
func (a *discoveryAdapter) ListCollections(ctx context.Context, parent string) ([]models.Collection, error) {
	resp, err := a.client.R().SetContext(ctx).Get("/" + parent + "/collections")
	if err != nil {
		return nil, fmt.Errorf("list collections request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var out models.ListCollectionsResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode collections response: %w", err)
	}
	return out.Collections, nil
}

// ListEngines implements [DiscoveryAdapter]. It GETs
// /{collection}/engines; 404 yields an empty result.
func (a *discoveryAdapter) ListEngines(ctx context.Context, collection string) ([]models.Engine, error) {
	resp, err := a.client.R().SetContext(ctx).Get("/" + collection + "/engines")
	if err != nil {
		return nil, fmt.Errorf("list engines request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var out models.ListEnginesResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode engines response: %w", err)
	}
	return out.Engines, nil
}

// GetEngine implements [DiscoveryAdapter].
func (a *discoveryAdapter) GetEngine(ctx context.Context, name string) (*models.Engine, error) {
	resp, err := a.client.R().SetContext(ctx).Get("/" + name)
	if err != nil {
		return nil, fmt.Errorf("get engine request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var engine models.Engine
	if err = json.Unmarshal(resp.Body(), &engine); err != nil {
		return nil, fmt.Errorf("decode engine response: %w", err)
	}
	return &engine, nil
}

// CreateEngine implements [DiscoveryAdapter]. It POSTs the engine body to
// /{collection}/engines?engineId={id} and returns the creation operation.
func (a *discoveryAdapter) CreateEngine(ctx context.Context, collection, engineID string, req models.CreateEngineRequest) (*models.Operation, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("engineId", engineID).
		SetBody(req).
		Post("/" + collection + "/engines")
	if err != nil {
		return nil, fmt.Errorf("create engine request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeOperation(resp.Body(), "create engine")
}

// DeleteEngine implements [DiscoveryAdapter].
func (a *discoveryAdapter) DeleteEngine(ctx context.Context, name string) error {
	resp, err := a.client.R().SetContext(ctx).Delete("/" + name)
	if err != nil {
		return fmt.Errorf("delete engine request: %w", err)
	}
	return mapHTTPError(resp)
}

// ListDataStores implements [DiscoveryAdapter]. It GETs
// /{parent}/dataStores; 404 yields an empty result.
func (a *discoveryAdapter) ListDataStores(ctx context.Context, parent string) ([]models.DataStore, error) {
	resp, err := a.client.R().SetContext(ctx).Get("/" + parent + "/dataStores")
	if err != nil {
		return nil, fmt.Errorf("list data stores request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var out models.ListDataStoresResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode data stores response: %w", err)
	}
	return out.DataStores, nil
}

// GetDataStore implements [DiscoveryAdapter].
func (a *discoveryAdapter) GetDataStore(ctx context.Context, name string) (*models.DataStore, error) {
	resp, err := a.client.R().SetContext(ctx).Get("/" + name)
	if err != nil {
		return nil, fmt.Errorf("get data store request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var store models.DataStore
	if err = json.Unmarshal(resp.Body(), &store); err != nil {
		return nil, fmt.Errorf("decode data store response: %w", err)
	}
	return &store, nil
}

// GetSchema implements [DiscoveryAdapter]. A 404 means the store has no
// schema and yields nil without error.
func (a *discoveryAdapter) GetSchema(ctx context.Context, dataStoreName string) (*models.Schema, error) {
	resp, err := a.client.R().SetContext(ctx).Get("/" + dataStoreName + "/schemas/default_schema")
	if err != nil {
		return nil, fmt.Errorf("get schema request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var schema models.Schema
	if err = json.Unmarshal(resp.Body(), &schema); err != nil {
		return nil, fmt.Errorf("decode schema response: %w", err)
	}
	return &schema, nil
}

// CreateDataStore implements [DiscoveryAdapter]. It POSTs the store body to
// /{collection}/dataStores?dataStoreId={id} and returns the creation
// operation.
func (a *discoveryAdapter) CreateDataStore(ctx context.Context, collection, dataStoreID string, req models.CreateDataStoreRequest) (*models.Operation, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("dataStoreId", dataStoreID).
		SetBody(req).
		Post("/" + collection + "/dataStores")
	if err != nil {
		return nil, fmt.Errorf("create data store request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeOperation(resp.Body(), "create data store")
}

// DeleteDataStore implements [DiscoveryAdapter].
func (a *discoveryAdapter) DeleteDataStore(ctx context.Context, name string) error {
	resp, err := a.client.R().SetContext(ctx).Delete("/" + name)
	if err != nil {
		return fmt.Errorf("delete data store request: %w", err)
	}
	return mapHTTPError(resp)
}

// ListDocuments implements [DiscoveryAdapter]. It GETs
// /{branch}/documents; 404 yields an empty result.
func (a *discoveryAdapter) ListDocuments(ctx context.Context, branch string) ([]models.Document, error) {
	resp, err := a.client.R().SetContext(ctx).Get("/" + branch + "/documents")
	if err != nil {
		return nil, fmt.Errorf("list documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var out models.ListDocumentsResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode documents response: %w", err)
	}
	return out.Documents, nil
}

// ImportDocuments implements [DiscoveryAdapter]. It POSTs the import body to
// /{branch}/documents:import and returns the import operation.
func (a *discoveryAdapter) ImportDocuments(ctx context.Context, branch string, req models.ImportDocumentsRequest) (*models.Operation, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/" + branch + "/documents:import")
	if err != nil {
		return nil, fmt.Errorf("import documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeOperation(resp.Body(), "import documents")
}

// GetOperation implements [DiscoveryAdapter].
func (a *discoveryAdapter) GetOperation(ctx context.Context, name string) (*models.Operation, error) {
	resp, err := a.client.R().SetContext(ctx).Get("/" + name)
	if err != nil {
		return nil, fmt.Errorf("get operation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeOperation(resp.Body(), "get operation")
}

func decodeOperation(body []byte, action string) (*models.Operation, error) {
	var op models.Operation
	if err := json.Unmarshal(body, &op); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", action, err)
	}
	return &op, nil
}
