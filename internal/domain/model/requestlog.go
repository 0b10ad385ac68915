package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequestLog is a structured record of one HTTP request or audited action,
// persisted for the admin dashboard's activity view.
type RequestLog struct {
	ID         primitive.ObjectID `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Level      string             `json:"level"`
	Message    string             `json:"message"`
	RequestID  string             `json:"request_id,omitempty"`
	Method     string             `json:"method,omitempty"`
	Path       string             `json:"path,omitempty"`
	StatusCode int                `json:"status_code,omitempty"`
	Duration   int64              `json:"duration_ms,omitempty"`
	IP         string             `json:"ip,omitempty"`
	UserAgent  string             `json:"user_agent,omitempty"`
	Error      string             `json:"error,omitempty"`
	// Audit fields for tracked actions (checkout, admin status changes).
	Actor      string                 `json:"actor,omitempty"`
	ActionType string                 `json:"action_type,omitempty"`
	Fields     map[string]interface{} `json:"fields,omitempty"`
}

// RequestLogQuery provides filters for querying request logs.
type RequestLogQuery struct {
	RequestID string
	Level     string
	Method    string
	Path      string
	Actor     string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}
