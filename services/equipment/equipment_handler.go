package equipmentservice

import (
	"net/http"

	"workorder/providers"
	"workorder/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type EquipmentHandler struct {
	Service        EquipmentService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewEquipmentHandler(service EquipmentService, auth providers.AuthMiddlewareService) *EquipmentHandler {
	return &EquipmentHandler{Service: service, AuthMiddleware: auth}
}

func (h *EquipmentHandler) actor(r *http.Request) (uuid.UUID, []string, error) {
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

func (h *EquipmentHandler) AddEquipmentToWorkOrder(w http.ResponseWriter, r *http.Request) {
	actorID, roles, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req AddEquipmentReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid equipment input")
		return
	}

	if err := h.Service.AddToWorkOrder(r.Context(), req, actorID, roles); err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"message": "equipment added to work order"})
}

func (h *EquipmentHandler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	var req CreateEquipmentReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid equipment input")
		return
	}

	created, err := h.Service.CreateEquipment(r.Context(), req)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, created)
}

func (h *EquipmentHandler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	equipment, err := h.Service.ListEquipment(r.Context())
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"equipments": equipment})
}
