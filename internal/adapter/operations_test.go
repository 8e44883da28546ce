// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemctl/gemctl/models"
)

func shortPollInterval(t *testing.T) {
	t.Helper()
	old := operationPollInterval
	operationPollInterval = 5 * time.Millisecond
	t.Cleanup(func() { operationPollInterval = old })
}

func TestWaitOperation_DoneImmediately(t *testing.T) {
	shortPollInterval(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Operation{
			Name:     "op/create-1",
			Done:     true,
			Response: map[string]any{"name": "projects/p/locations/us/collections/c/engines/e"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	op, err := a.WaitOperation(context.Background(), "op/create-1")

	require.NoError(t, err)
	assert.True(t, op.Done)
	assert.Equal(t, "projects/p/locations/us/collections/c/engines/e", op.ResourceName())
}

func TestWaitOperation_PendingThenDone(t *testing.T) {
	shortPollInterval(t)

	var polls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		done := polls.Add(1) >= 3
		_ = json.NewEncoder(w).Encode(models.Operation{Name: "op/create-1", Done: done})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	op, err := a.WaitOperation(context.Background(), "op/create-1")

	require.NoError(t, err)
	assert.True(t, op.Done)
	assert.GreaterOrEqual(t, polls.Load(), int32(3))
}

func TestWaitOperation_FailedStatus(t *testing.T) {
	shortPollInterval(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Operation{
			Name:  "op/create-1",
			Done:  true,
			Error: &models.OperationError{Code: 9, Message: "quota exceeded"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	op, err := a.WaitOperation(context.Background(), "op/create-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.Contains(t, err.Error(), "quota exceeded")
	require.NotNil(t, op)
	assert.True(t, op.Done)
}

func TestWaitOperation_RequestErrorIsPermanent(t *testing.T) {
	shortPollInterval(t)

	var polls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.WaitOperation(context.Background(), "op/create-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Equal(t, int32(1), polls.Load())
}

func TestWaitOperation_ContextCancelled(t *testing.T) {
	shortPollInterval(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Operation{Name: "op/create-1", Done: false})
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	a := newTestAdapter(t, srv.URL)
	_, err := a.WaitOperation(ctx, "op/create-1")

	require.Error(t, err)
}
