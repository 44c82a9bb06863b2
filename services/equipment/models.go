package equipmentservice

import "time"

type AddEquipmentReq struct {
	WorkOrderID string `json:"work_order_id" validate:"required,uuid"`
	EquipmentID string `json:"equipment_id" validate:"required,uuid"`
	UsageNotes  string `json:"usage_notes"`
}

type CreateEquipmentReq struct {
	Name         string     `json:"name" validate:"required"`
	Type         string     `json:"type" validate:"required"`
	PurchaseDate *time.Time `json:"purchase_date"`
}
