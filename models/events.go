package models

import "github.com/google/uuid"

// Notification event names published on lifecycle transitions.
const (
	EventWorkOrderCreated   = "WorkOrderCreated"
	EventWorkOrderAssigned  = "WorkOrderAssigned"
	EventWorkOrderCompleted = "WorkOrderCompleted"
	EventWorkOrderInspected = "WorkOrderInspected"
	EventWorkOrderCanceled  = "WorkOrderCanceled"
	EventSparePartRequested = "SparePartRequested"
	EventSparePartApproved  = "SparePartApproved"
	EventSparePartRejected  = "SparePartRejected"
)

// Group audiences.
const ManagersGroup = "Managers"

// Audience targets either a named group or specific users, never both.
type Audience struct {
	Group   string
	UserIDs []uuid.UUID
}

func GroupAudience(group string) Audience {
	return Audience{Group: group}
}

func UserAudience(userIDs ...uuid.UUID) Audience {
	return Audience{UserIDs: userIDs}
}
