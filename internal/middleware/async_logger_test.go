package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/acaipro/storefront-service/internal/domain/model"
)

// blockingLoggingService is a mock implementation of the LoggingService
// interface whose writes can be delayed or blocked for backpressure tests.
type blockingLoggingService struct {
	mock.Mock
}

func (m *blockingLoggingService) CreateLog(ctx context.Context, entry *model.RequestLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *blockingLoggingService) CreateLogs(ctx context.Context, entries []*model.RequestLog) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *blockingLoggingService) QueryLogs(ctx context.Context, opts model.RequestLogQuery) ([]model.RequestLog, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RequestLog), args.Error(1)
}

func (m *blockingLoggingService) CountLogs(ctx context.Context, opts model.RequestLogQuery) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

func TestDefaultAsyncLoggerConfig(t *testing.T) {
	cfg := DefaultAsyncLoggerConfig()

	assert.Equal(t, 1000, cfg.BufferSize)
	assert.Equal(t, 4, cfg.NumWorkers)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
}

func TestNewAsyncLogger(t *testing.T) {
	t.Run("nil logging service returns nil", func(t *testing.T) {
		assert.Nil(t, NewAsyncLogger(nil, DefaultAsyncLoggerConfig()))
	})

	t.Run("valid logging service creates logger", func(t *testing.T) {
		al := NewAsyncLogger(&blockingLoggingService{}, DefaultAsyncLoggerConfig())
		assert.NotNil(t, al)
		al.Stop()
	})
}

func TestAsyncLogger_Log(t *testing.T) {
	t.Run("logs within buffer size", func(t *testing.T) {
		mockService := &blockingLoggingService{}
		mockService.On("CreateLog", mock.Anything, mock.Anything).Return(nil)

		al := NewAsyncLogger(mockService, AsyncLoggerConfig{
			BufferSize:   10,
			NumWorkers:   1,
			WriteTimeout: time.Second,
		})

		enqueued := 0
		for i := 0; i < 5; i++ {
			if al.Log(&model.RequestLog{Level: "info", Message: "request"}) {
				enqueued++
			}
		}

		assert.Equal(t, 5, enqueued)
		al.Stop()
	})

	t.Run("drops entries when buffer full", func(t *testing.T) {
		blockCh := make(chan struct{})
		mockService := &blockingLoggingService{}
		mockService.On("CreateLog", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			<-blockCh
		}).Return(nil)

		al := NewAsyncLogger(mockService, AsyncLoggerConfig{
			BufferSize:   3,
			NumWorkers:   1,
			WriteTimeout: time.Second,
		})

		dropped := 0
		for i := 0; i < 10; i++ {
			if !al.Log(&model.RequestLog{Level: "info", Message: "request"}) {
				dropped++
			}
		}

		assert.Greater(t, dropped, 0, "entries beyond the buffer are dropped")

		close(blockCh)
		al.Stop()
	})
}

func TestAsyncLogger_Stats(t *testing.T) {
	mockService := &blockingLoggingService{}
	mockService.On("CreateLog", mock.Anything, mock.Anything).Return(nil)

	al := NewAsyncLogger(mockService, AsyncLoggerConfig{
		BufferSize:   100,
		NumWorkers:   2,
		WriteTimeout: time.Second,
	})

	for i := 0; i < 5; i++ {
		al.Log(&model.RequestLog{Level: "info", Message: "request"})
	}

	time.Sleep(100 * time.Millisecond)

	enqueued, dropped, written, errCount := al.Stats()
	assert.Equal(t, int64(5), enqueued)
	assert.Equal(t, int64(0), dropped)
	assert.Equal(t, int64(5), written)
	assert.Equal(t, int64(0), errCount)

	al.Stop()
}

func TestAsyncLogger_ErrorHandling(t *testing.T) {
	mockService := &blockingLoggingService{}
	mockService.On("CreateLog", mock.Anything, mock.Anything).Return(errors.New("db error"))

	al := NewAsyncLogger(mockService, AsyncLoggerConfig{
		BufferSize:   100,
		NumWorkers:   2,
		WriteTimeout: time.Second,
	})

	for i := 0; i < 3; i++ {
		al.Log(&model.RequestLog{Level: "info", Message: "request"})
	}

	time.Sleep(100 * time.Millisecond)

	_, _, _, errCount := al.Stats()
	assert.Equal(t, int64(3), errCount)

	al.Stop()
}

func TestAsyncLogger_StopDrains(t *testing.T) {
	mockService := &blockingLoggingService{}
	mockService.On("CreateLog", mock.Anything, mock.Anything).Return(nil)

	al := NewAsyncLogger(mockService, AsyncLoggerConfig{
		BufferSize:   100,
		NumWorkers:   4,
		WriteTimeout: time.Second,
	})

	for i := 0; i < 10; i++ {
		al.Log(&model.RequestLog{Level: "info", Message: "request"})
	}

	al.Stop()

	_, _, written, _ := al.Stats()
	assert.Equal(t, int64(10), written)
}

func TestGlobalAsyncLogger(t *testing.T) {
	assert.Nil(t, GetAsyncLogger())

	mockService := &blockingLoggingService{}
	mockService.On("CreateLog", mock.Anything, mock.Anything).Return(nil)

	InitAsyncLogger(mockService, DefaultAsyncLoggerConfig())
	assert.NotNil(t, GetAsyncLogger())

	GetAsyncLogger().Log(&model.RequestLog{Level: "info", Message: "request"})

	StopAsyncLogger()
	assert.Nil(t, GetAsyncLogger())

	// Calling stop again is safe
	StopAsyncLogger()
}

func TestInitAsyncLogger_ReplacesExisting(t *testing.T) {
	mockService1 := &blockingLoggingService{}
	mockService2 := &blockingLoggingService{}
	mockService1.On("CreateLog", mock.Anything, mock.Anything).Return(nil)
	mockService2.On("CreateLog", mock.Anything, mock.Anything).Return(nil)

	InitAsyncLogger(mockService1, DefaultAsyncLoggerConfig())
	first := GetAsyncLogger()
	assert.NotNil(t, first)

	InitAsyncLogger(mockService2, DefaultAsyncLoggerConfig())
	second := GetAsyncLogger()
	assert.NotNil(t, second)
	assert.NotSame(t, first, second)

	StopAsyncLogger()
}
