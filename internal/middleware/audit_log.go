package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acaipro/storefront-service/internal/domain/model"
	"github.com/acaipro/storefront-service/internal/service"
)

// AuditLog records a tracked action for the admin activity view.
// Used for critical actions: admin login, checkout, order status changes.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := &model.RequestLog{
		Timestamp:  time.Now(),
		Level:      "info",
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Actor:      GetAdminSubject(c),
		ActionType: actionType,
		Fields:     fields,
	}

	// Store asynchronously to avoid blocking
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

// AuditLogError records a failed tracked action.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := &model.RequestLog{
		Timestamp:  time.Now(),
		Level:      "error",
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Actor:      GetAdminSubject(c),
		ActionType: actionType,
		Error:      err.Error(),
		Fields:     fields,
	}

	// Store asynchronously to avoid blocking
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
