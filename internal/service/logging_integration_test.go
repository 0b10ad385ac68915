//go:build integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acaipro/storefront-service/internal/domain/model"
	"github.com/acaipro/storefront-service/internal/repository"
	"github.com/acaipro/storefront-service/internal/testutil"
)

func TestLoggingService_Integration(t *testing.T) {
	ctx := context.Background()

	mongoContainer, err := testutil.SetupMongoDB(ctx)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, mongoContainer.Cleanup(ctx))
	}()

	db, err := repository.NewMongoDB(mongoContainer.URI, "test_storefront_service")
	require.NoError(t, err)
	defer func() {
		_ = db.Close(ctx)
	}()

	err = db.SetLogsTTL(ctx, 30)
	require.NoError(t, err)

	logsRepo := repository.NewLogsRepository(db)
	loggingService := NewLoggingService(logsRepo)

	t.Run("create single log", func(t *testing.T) {
		entry := &model.RequestLog{
			Level:     "info",
			Message:   "Test log entry",
			RequestID: "test-req-1",
			Method:    "POST",
			Path:      "/api/checkout",
		}

		err := loggingService.CreateLog(ctx, entry)
		assert.NoError(t, err)
	})

	t.Run("create multiple logs", func(t *testing.T) {
		entries := []*model.RequestLog{
			{
				Level:     "info",
				Message:   "Log 1",
				RequestID: "req-1",
			},
			{
				Level:     "error",
				Message:   "Log 2",
				RequestID: "req-2",
			},
		}

		err := loggingService.CreateLogs(ctx, entries)
		assert.NoError(t, err)
	})

	t.Run("query logs by request ID", func(t *testing.T) {
		entries, err := loggingService.QueryLogs(ctx, model.RequestLogQuery{
			RequestID: "test-req-1",
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(entries), 1)
		assert.Equal(t, "test-req-1", entries[0].RequestID)
	})

	t.Run("query logs by actor", func(t *testing.T) {
		entry := &model.RequestLog{
			Level:      "info",
			Message:    "Order status updated",
			Actor:      "admin",
			ActionType: "order_status_update",
			Fields:     map[string]interface{}{"order_id": "order-1"},
		}
		require.NoError(t, loggingService.CreateLog(ctx, entry))

		entries, err := loggingService.QueryLogs(ctx, model.RequestLogQuery{Actor: "admin"})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(entries), 1)
		assert.Equal(t, "order_status_update", entries[0].ActionType)
	})

	t.Run("count logs by level", func(t *testing.T) {
		count, err := loggingService.CountLogs(ctx, model.RequestLogQuery{Level: "error"})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, int64(1))
	})

	t.Run("query logs with time range", func(t *testing.T) {
		start := time.Now().Add(-time.Hour)
		end := time.Now().Add(time.Hour)
		entries, err := loggingService.QueryLogs(ctx, model.RequestLogQuery{
			StartTime: &start,
			EndTime:   &end,
			Limit:     100,
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(entries), 3)
	})
}
