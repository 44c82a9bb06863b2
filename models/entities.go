package models

import (
	"time"

	"github.com/google/uuid"
)

type Asset struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Brand        string      `json:"brand" db:"brand"`
	Model        string      `json:"model" db:"model"`
	SerialNumber string      `json:"serial_number" db:"serial_number"`
	OwnerUserID  uuid.UUID   `json:"owner_user_id" db:"owner_user_id"`
	Status       AssetStatus `json:"status" db:"status"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
}

type WorkOrder struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	Title            string          `json:"title" db:"title"`
	Description      string          `json:"description" db:"description"`
	CreatedByUserID  uuid.UUID       `json:"created_by_user_id" db:"created_by_user_id"`
	AssignedToUserID *uuid.UUID      `json:"assigned_to_user_id" db:"assigned_to_user_id"`
	AssignedByID     *uuid.UUID      `json:"assigned_by_id" db:"assigned_by_id"`
	AssetID          uuid.UUID       `json:"asset_id" db:"asset_id"`
	Status           WorkOrderStatus `json:"status" db:"status"`
	Priority         *PriorityLevel  `json:"priority" db:"priority"`
	RepairReport     *string         `json:"repair_report" db:"repair_report"`
	SLAEndTime       *time.Time      `json:"sla_end_time" db:"sla_end_time"`
	CompletedAt      *time.Time      `json:"completed_at" db:"completed_at"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
}

type Equipment struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	Name         string          `json:"name" db:"name"`
	Type         string          `json:"type" db:"type"`
	Status       EquipmentStatus `json:"status" db:"status"`
	PurchaseDate *time.Time      `json:"purchase_date" db:"purchase_date"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

type SparePart struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Stock     int       `json:"stock" db:"stock"`
	UnitPrice float64   `json:"unit_price" db:"unit_price"`
}

type WorkOrderEquipment struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	WorkOrderID uuid.UUID  `json:"work_order_id" db:"work_order_id"`
	EquipmentID uuid.UUID  `json:"equipment_id" db:"equipment_id"`
	UsageNotes  string     `json:"usage_notes" db:"usage_notes"`
	UsedAt      time.Time  `json:"used_at" db:"used_at"`
	AssignedAt  time.Time  `json:"assigned_at" db:"assigned_at"`
	ReturnedAt  *time.Time `json:"returned_at" db:"returned_at"`
}

type WorkOrderSparePart struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	WorkOrderID  uuid.UUID       `json:"work_order_id" db:"work_order_id"`
	SparePartID  uuid.UUID       `json:"spare_part_id" db:"spare_part_id"`
	Status       SparePartStatus `json:"status" db:"status"`
	QuantityUsed int             `json:"quantity_used" db:"quantity_used"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

type WorkOrderAttachment struct {
	ID          uuid.UUID `json:"id" db:"id"`
	WorkOrderID uuid.UUID `json:"work_order_id" db:"work_order_id"`
	FilePath    string    `json:"file_path" db:"file_path"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type Inspection struct {
	ID             uuid.UUID `json:"id" db:"id"`
	WorkOrderID    uuid.UUID `json:"work_order_id" db:"work_order_id"`
	InspectorID    uuid.UUID `json:"inspector_id" db:"inspector_id"`
	InspectionDate time.Time `json:"inspection_date" db:"inspection_date"`
	Rating         int       `json:"rating" db:"rating"`
	Comments       string    `json:"comments" db:"comments"`
}

type Invoice struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	WorkOrderID uuid.UUID `json:"work_order_id" db:"work_order_id"`
	InvoiceText string    `json:"invoice_text" db:"invoice_text"`
	Total       float64   `json:"total" db:"total"`
	InvoiceDate time.Time `json:"invoice_date" db:"invoice_date"`
}

type WorkOrderHistory struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	WorkOrderID     uuid.UUID  `json:"work_order_id" db:"work_order_id"`
	Action          string     `json:"action" db:"action"`
	OldValue        *string    `json:"old_value" db:"old_value"`
	NewValue        *string    `json:"new_value" db:"new_value"`
	ChangedByUserID *uuid.UUID `json:"changed_by_user_id" db:"changed_by_user_id"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}
