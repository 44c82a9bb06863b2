package models

import "time"

type WorkOrderStatus string

const (
	StatusCreated      WorkOrderStatus = "Created"
	StatusAssigned     WorkOrderStatus = "Assigned"
	StatusPartsOrdered WorkOrderStatus = "PartsOrdered"
	StatusInProgress   WorkOrderStatus = "InProgress"
	StatusCompleted    WorkOrderStatus = "Completed"
	StatusInspected    WorkOrderStatus = "Inspected"
	StatusCanceled     WorkOrderStatus = "Canceled"
)

// IsTerminal reports whether no further lifecycle mutation is allowed.
// Completed is soft-terminal: it still advances to Inspected.
func (s WorkOrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusInspected || s == StatusCanceled
}

type PriorityLevel string

const (
	PriorityLow      PriorityLevel = "Low"
	PriorityMedium   PriorityLevel = "Medium"
	PriorityHigh     PriorityLevel = "High"
	PriorityCritical PriorityLevel = "Critical"
)

func IsValidPriority(p PriorityLevel) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh || p == PriorityCritical
}

type SparePartStatus string

const (
	SparePartRequested SparePartStatus = "Requested"
	SparePartApproved  SparePartStatus = "Approved"
	SparePartRejected  SparePartStatus = "Rejected"
)

type EquipmentStatus string

const (
	EquipmentAvailable        EquipmentStatus = "Available"
	EquipmentInUse            EquipmentStatus = "InUse"
	EquipmentUnderMaintenance EquipmentStatus = "UnderMaintenance"
	EquipmentRetired          EquipmentStatus = "Retired"
)

type AssetStatus string

const (
	AssetNew             AssetStatus = "New"
	AssetOnRepair        AssetStatus = "OnRepair"
	AssetSentToOwner     AssetStatus = "SentToOwner"
	AssetPickedUpByOwner AssetStatus = "PickedUpByOwner"
)

// slaDaysByPriority drives the SLA deadline lookup. Update in one place only.
var slaDaysByPriority = map[PriorityLevel]time.Duration{
	PriorityLow:      30 * 24 * time.Hour,
	PriorityMedium:   15 * 24 * time.Hour,
	PriorityHigh:     7 * 24 * time.Hour,
	PriorityCritical: 2 * 24 * time.Hour,
}

// GetSlaEndDate computes the SLA deadline from the work order creation time.
// An unmapped priority contributes zero duration.
func GetSlaEndDate(startDate time.Time, priority PriorityLevel) time.Time {
	return startDate.Add(slaDaysByPriority[priority])
}

// serviceFeeByPriority is the flat service fee billed per completed work order.
var serviceFeeByPriority = map[PriorityLevel]float64{
	PriorityLow:      20,
	PriorityMedium:   30,
	PriorityHigh:     50,
	PriorityCritical: 100,
}

// ServiceFee returns the fee for the order's priority. A nil priority is
// billed as Medium; an unmapped priority costs nothing.
func ServiceFee(priority *PriorityLevel) float64 {
	effective := PriorityMedium
	if priority != nil {
		effective = *priority
	}
	return serviceFeeByPriority[effective]
}
