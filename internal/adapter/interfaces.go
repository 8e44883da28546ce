// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

// Package adapter provides the transport layer for talking to the Discovery
// Engine REST API.
//
// The primary abstraction is [DiscoveryAdapter], which decouples command
// handlers from the HTTP wire. The resty-backed implementation
// ([NewDiscoveryAdapter]) attaches bearer tokens from an injected
// auth.TokenSource and maps HTTP status codes to the sentinel errors defined
// in errors.go so callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/gemctl/gemctl/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/discovery_adapter_mock.go -package=mock

// DiscoveryAdapter defines the Discovery Engine API surface used by gemctl.
// All resource name and parent arguments are fully-qualified paths produced
// by the resource package; the adapter never constructs hierarchy itself.
type DiscoveryAdapter interface {
	// ListCollections returns the collections under a project parent
	// (projects/{p}/locations/{l}). A 404 from the API means no collections
	// and yields an empty slice, not an error.
	ListCollections(ctx context.Context, parent string) ([]models.Collection, error)

	// ListEngines returns the engines under a collection parent. A 404
	// yields an empty slice.
	ListEngines(ctx context.Context, collection string) ([]models.Engine, error)

	// GetEngine fetches a single engine by its qualified name.
	GetEngine(ctx context.Context, name string) (*models.Engine, error)

	// CreateEngine starts engine creation under the collection parent and
	// returns the long-running operation tracking it.
	CreateEngine(ctx context.Context, collection, engineID string, req models.CreateEngineRequest) (*models.Operation, error)

	// DeleteEngine deletes an engine by its qualified name.
	DeleteEngine(ctx context.Context, name string) error

	// ListDataStores returns the data stores under a project parent. A 404
	// yields an empty slice.
	ListDataStores(ctx context.Context, parent string) ([]models.DataStore, error)

	// GetDataStore fetches a single data store by its qualified name.
	GetDataStore(ctx context.Context, name string) (*models.DataStore, error)

	// GetSchema fetches the default schema of a data store, or nil when the
	// store has none.
	GetSchema(ctx context.Context, dataStoreName string) (*models.Schema, error)

	// CreateDataStore starts data store creation under the collection parent
	// and returns the long-running operation tracking it.
	CreateDataStore(ctx context.Context, collection, dataStoreID string, req models.CreateDataStoreRequest) (*models.Operation, error)

	// DeleteDataStore deletes a data store by its qualified name.
	DeleteDataStore(ctx context.Context, name string) error

	// ListDocuments returns the documents in a data store branch
	// ({dataStore}/branches/{b}). A 404 yields an empty slice.
	ListDocuments(ctx context.Context, branch string) ([]models.Document, error)

	// ImportDocuments starts a document import into a branch and returns the
	// long-running operation tracking it.
	ImportDocuments(ctx context.Context, branch string, req models.ImportDocumentsRequest) (*models.Operation, error)

	// GetOperation fetches the current state of a long-running operation.
	GetOperation(ctx context.Context, name string) (*models.Operation, error)

	// WaitOperation polls a long-running operation until it finishes or the
	// wait budget runs out. Returns [ErrOperationFailed] (wrapped) when the
	// operation reports an error status.
	WaitOperation(ctx context.Context, name string) (*models.Operation, error)
}
