package sparepartservice

import (
	"net/http"

	"workorder/providers"
	"workorder/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type SparePartHandler struct {
	Service        SparePartService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewSparePartHandler(service SparePartService, auth providers.AuthMiddlewareService) *SparePartHandler {
	return &SparePartHandler{Service: service, AuthMiddleware: auth}
}

func (h *SparePartHandler) actor(r *http.Request) (uuid.UUID, []string, error) {
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

func requestIDFromURL(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "requestID"))
}

func (h *SparePartHandler) RequestSparePart(w http.ResponseWriter, r *http.Request) {
	actorID, roles, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req RequestSparePartReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid spare part request")
		return
	}

	requestID, err := h.Service.Request(r.Context(), req, actorID, roles)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"request_id": requestID.String()})
}

func (h *SparePartHandler) ApproveSparePart(w http.ResponseWriter, r *http.Request) {
	actorID, _, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	requestID, err := requestIDFromURL(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request id")
		return
	}

	if err := h.Service.Approve(r.Context(), requestID, actorID); err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "spare part request approved"})
}

func (h *SparePartHandler) RejectSparePart(w http.ResponseWriter, r *http.Request) {
	actorID, _, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	requestID, err := requestIDFromURL(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request id")
		return
	}

	if err := h.Service.Reject(r.Context(), requestID, actorID); err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "spare part request rejected"})
}

func (h *SparePartHandler) CreateSparePart(w http.ResponseWriter, r *http.Request) {
	var req CreateSparePartReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid spare part input")
		return
	}

	created, err := h.Service.CreateSparePart(r.Context(), req)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, created)
}

func (h *SparePartHandler) ListSpareParts(w http.ResponseWriter, r *http.Request) {
	parts, err := h.Service.ListSpareParts(r.Context())
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"spare_parts": parts})
}
