package workorderservice

import (
	"io"

	"workorder/models"
)

type CreateWorkOrderReq struct {
	Title       string                `json:"title" validate:"required"`
	Description string                `json:"description" validate:"required"`
	AssetID     string                `json:"asset_id" validate:"required,uuid"`
	Priority    *models.PriorityLevel `json:"priority"`
}

type UpdateAssignmentReq struct {
	AssignedToUserID *string               `json:"assigned_to_user_id" validate:"omitempty,uuid"`
	Priority         *models.PriorityLevel `json:"priority"`
}

type CompleteWorkOrderReq struct {
	RepairReport string `json:"repair_report" validate:"required"`
}

type InspectWorkOrderReq struct {
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comments string `json:"comments"`
}

// AttachmentUpload carries one uploaded file through the filter/store
// pipeline without holding the bytes in memory.
type AttachmentUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type WorkOrderDetailRes struct {
	models.WorkOrder
	Equipment  []models.WorkOrderEquipment `json:"equipment"`
	SpareParts []models.WorkOrderSparePart `json:"spare_parts"`
}
