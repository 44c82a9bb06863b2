package workorderservice

import (
	"fmt"
	"net/http"

	"workorder/models"
	"workorder/providers"
	historyservice "workorder/services/history"
	invoiceservice "workorder/services/invoice"
	"workorder/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type WorkOrderHandler struct {
	Service        WorkOrderService
	History        historyservice.HistoryService
	Invoices       invoiceservice.InvoiceService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewWorkOrderHandler(service WorkOrderService, history historyservice.HistoryService, invoices invoiceservice.InvoiceService, auth providers.AuthMiddlewareService) *WorkOrderHandler {
	return &WorkOrderHandler{
		Service:        service,
		History:        history,
		Invoices:       invoices,
		AuthMiddleware: auth,
	}
}

func (h *WorkOrderHandler) actor(r *http.Request) (uuid.UUID, []string, error) {
	userID, roles, err := h.AuthMiddleware.GetUserAndRolesFromContext(r)
	if err != nil {
		return uuid.Nil, nil, err
	}
	actorID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, nil, err
	}
	return actorID, roles, nil
}

func workOrderIDFromURL(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "workOrderID"))
}

func (h *WorkOrderHandler) CreateWorkOrder(w http.ResponseWriter, r *http.Request) {
	creatorID, _, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req CreateWorkOrderReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid work order input")
		return
	}

	created, err := h.Service.Create(r.Context(), req, creatorID)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, created)
}

func (h *WorkOrderHandler) UploadAttachments(w http.ResponseWriter, r *http.Request) {
	actorID, roles, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	workOrderID, err := workOrderIDFromURL(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid work order id")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid multipart form")
		return
	}

	uploads := make([]AttachmentUpload, 0)
	for _, header := range r.MultipartForm.File["images"] {
		file, openErr := header.Open()
		if openErr != nil {
			continue
		}
		defer file.Close()
		uploads = append(uploads, AttachmentUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Reader:      file,
		})
	}

	saved, err := h.Service.SaveAttachments(r.Context(), workOrderID, actorID, roles, uploads)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"attachments": saved})
}

func (h *WorkOrderHandler) UpdateAssignmentAndPriority(w http.ResponseWriter, r *http.Request) {
	managerID, roles, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	if !models.HasRole(roles, models.ManagerRole) {
		utils.RespondError(w, http.StatusForbidden, fmt.Errorf("forbidden"), "only managers can assign work orders")
		return
	}
	workOrderID, err := workOrderIDFromURL(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid work order id")
		return
	}

	var req UpdateAssignmentReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid assignment input")
		return
	}

	if err := h.Service.UpdateAssignmentAndPriority(r.Context(), workOrderID, req, managerID); err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "work order updated successfully"})
}

func (h *WorkOrderHandler) CompleteWorkOrder(w http.ResponseWriter, r *http.Request) {
	actorID, roles, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	workOrderID, err := workOrderIDFromURL(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid work order id")
		return
	}

	var req CompleteWorkOrderReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	if err := h.Service.Complete(r.Context(), workOrderID, actorID, roles, req.RepairReport); err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "work order completed"})
}

func (h *WorkOrderHandler) InspectWorkOrder(w http.ResponseWriter, r *http.Request) {
	inspectorID, _, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	workOrderID, err := workOrderIDFromURL(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid work order id")
		return
	}

	var req InspectWorkOrderReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	inspection, err := h.Service.Inspect(r.Context(), workOrderID, inspectorID, req.Rating, req.Comments)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, inspection)
}

func (h *WorkOrderHandler) CancelWorkOrder(w http.ResponseWriter, r *http.Request) {
	actorID, _, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	workOrderID, err := workOrderIDFromURL(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid work order id")
		return
	}

	if err := h.Service.Cancel(r.Context(), workOrderID, actorID); err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "work order canceled"})
}

func (h *WorkOrderHandler) GetWorkOrder(w http.ResponseWriter, r *http.Request) {
	actorID, roles, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	workOrderID, err := workOrderIDFromURL(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid work order id")
		return
	}

	detail, err := h.Service.GetByID(r.Context(), workOrderID, actorID, roles)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, detail)
}

func (h *WorkOrderHandler) GetWorkOrderHistory(w http.ResponseWriter, r *http.Request) {
	actorID, roles, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	workOrderID, err := workOrderIDFromURL(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid work order id")
		return
	}

	// Reuse the detail access check before exposing the audit trail.
	if _, err := h.Service.GetByID(r.Context(), workOrderID, actorID, roles); err != nil {
		utils.RespondDomainError(w, err)
		return
	}

	entries, err := h.History.ListByWorkOrder(r.Context(), workOrderID)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"history": entries})
}

func (h *WorkOrderHandler) GetWorkOrderInvoice(w http.ResponseWriter, r *http.Request) {
	actorID, roles, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	workOrderID, err := workOrderIDFromURL(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid work order id")
		return
	}

	invoice, err := h.Invoices.GetByWorkOrder(r.Context(), workOrderID, actorID, roles)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, invoice)
}

func (h *WorkOrderHandler) ListMyWorkOrders(w http.ResponseWriter, r *http.Request) {
	actorID, _, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	orders, err := h.Service.ListByCreator(r.Context(), actorID)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"work_orders": orders})
}

func (h *WorkOrderHandler) ListMyTasks(w http.ResponseWriter, r *http.Request) {
	actorID, _, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	orders, err := h.Service.ListByAssignee(r.Context(), actorID)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"work_orders": orders})
}

func (h *WorkOrderHandler) ListAllWorkOrders(w http.ResponseWriter, r *http.Request) {
	_, _, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	orders, err := h.Service.ListAll(r.Context())
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"work_orders": orders})
}
