// Package dto provides data transfer objects for HTTP response handling.
package dto

import (
	"time"

	auditDomain "github.com/badgeops/badgeops/internal/audit/domain"
)

// EventResponse represents an audit event in API responses.
type EventResponse struct {
	ID        string         `json:"id"`
	ActorID   string         `json:"actor_id"`
	Action    string         `json:"action"`
	Area      string         `json:"area,omitempty"`
	RecordID  *string        `json:"record_id,omitempty"`
	Outcome   string         `json:"outcome"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// MapEventToResponse converts a domain audit event to an API response.
func MapEventToResponse(event *auditDomain.Event) EventResponse {
	resp := EventResponse{
		ID:        event.ID.String(),
		ActorID:   event.ActorID.String(),
		Action:    event.Action,
		Area:      event.Area,
		Outcome:   string(event.Outcome),
		Metadata:  event.Metadata,
		CreatedAt: event.CreatedAt,
	}
	if event.RecordID != nil {
		recordID := event.RecordID.String()
		resp.RecordID = &recordID
	}
	return resp
}

// ListEventsResponse represents a paginated list of audit events in API responses.
type ListEventsResponse struct {
	Data []EventResponse `json:"data"`
}

// MapEventsToListResponse converts a slice of domain audit events to a list API response.
func MapEventsToListResponse(events []*auditDomain.Event) ListEventsResponse {
	eventResponses := make([]EventResponse, 0, len(events))
	for _, event := range events {
		eventResponses = append(eventResponses, MapEventToResponse(event))
	}
	return ListEventsResponse{
		Data: eventResponses,
	}
}
