// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gemctl Authors

package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/gemctl/gemctl/models"
)

const operationWaitBudget = 5 * time.Minute

// var so tests can shorten the cadence
var operationPollInterval = 5 * time.Second

var errOperationPending = errors.New("operation still running")

// WaitOperation implements [DiscoveryAdapter]. It polls the operation on a
// fixed cadence until it reports done, the wait budget elapses, or ctx is
// cancelled. Request failures abort the wait immediately; only a pending
// operation keeps the loop going.
func (a *discoveryAdapter) WaitOperation(ctx context.Context, name string) (*models.Operation, error) {
	ctx, cancel := context.WithTimeout(ctx, operationWaitBudget)
	defer cancel()

	var op *models.Operation

	poll := func() error {
		current, err := a.GetOperation(ctx, name)
		if err != nil {
			return backoff.Permanent(err)
		}
		if !current.Done {
			a.logger.Debug().Str("operation", name).Msg("operation still running")
			return errOperationPending
		}
		op = current
		return nil
	}

	policy := backoff.WithContext(backoff.NewConstantBackOff(operationPollInterval), ctx)
	if err := backoff.Retry(poll, policy); err != nil {
		return nil, fmt.Errorf("wait for operation %s: %w", name, err)
	}

	if op.Error != nil {
		return op, fmt.Errorf("%w: %s (code %d)", ErrOperationFailed, op.Error.Message, op.Error.Code)
	}
	return op, nil
}
