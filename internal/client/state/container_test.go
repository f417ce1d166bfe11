package state

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/timesheets/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_Lifecycle(t *testing.T) {
	ctx := context.Background()
	var c Container[int]

	assert.Equal(t, StatusIdle, c.Snapshot().Status)

	require.NoError(t, c.Load(ctx, func(context.Context) (int, error) {
		assert.True(t, c.Snapshot().Loading(), "pending while the request runs")
		return 7, nil
	}))
	snap := c.Snapshot()
	assert.Equal(t, StatusSucceeded, snap.Status)
	assert.Equal(t, 7, snap.Data)
	assert.NoError(t, snap.Err)

	boom := &client.APIError{StatusCode: 500, Message: "Database down"}
	err := c.Load(ctx, func(context.Context) (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)

	snap = c.Snapshot()
	assert.True(t, snap.Failed())
	assert.Equal(t, 7, snap.Data, "failure keeps the previous data")
	assert.Equal(t, "Database down", snap.Message())

	require.NoError(t, c.Load(ctx, func(context.Context) (int, error) {
		s := c.Snapshot()
		assert.NoError(t, s.Err, "pending clears the error")
		assert.Equal(t, 7, s.Data, "pending keeps the data")
		return 8, nil
	}))
	assert.Equal(t, 8, c.Snapshot().Data)
}

func TestContainer_GenericMessage(t *testing.T) {
	var c Container[string]
	_ = c.Load(context.Background(), func(context.Context) (string, error) { return "", errors.New("dial tcp: refused") })
	assert.Equal(t, client.GenericErrorMessage, c.Snapshot().Message())
}

func TestContainer_StaleResultDiscarded(t *testing.T) {
	ctx := context.Background()
	var c Container[int]

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- c.Load(ctx, func(context.Context) (int, error) {
			close(started)
			<-release
			return 0, errors.New("slow and failed")
		})
	}()
	<-started

	require.NoError(t, c.Load(ctx, func(context.Context) (int, error) { return 2, nil }))
	close(release)
	require.Error(t, <-done, "the caller still sees its own error")

	snap := c.Snapshot()
	assert.Equal(t, StatusSucceeded, snap.Status)
	assert.Equal(t, 2, snap.Data)
	assert.NoError(t, snap.Err)
}

func TestContainer_ResetAndClearError(t *testing.T) {
	ctx := context.Background()
	var c Container[int]

	_ = c.Load(ctx, func(context.Context) (int, error) { return 0, errors.New("x") })
	c.ClearError()
	assert.Equal(t, StatusIdle, c.Snapshot().Status)
	assert.NoError(t, c.Snapshot().Err)

	c.Set(5)
	assert.Equal(t, Snapshot[int]{Status: StatusSucceeded, Data: 5}, c.Snapshot())

	c.Reset()
	assert.Equal(t, Snapshot[int]{}, c.Snapshot())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "succeeded", StatusSucceeded.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "unknown", Status(9).String())
}
