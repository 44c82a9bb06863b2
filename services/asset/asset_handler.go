package assetservice

import (
	"net/http"

	"workorder/providers"
	"workorder/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type AssetHandler struct {
	Service        AssetService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewAssetHandler(service AssetService, auth providers.AuthMiddlewareService) *AssetHandler {
	return &AssetHandler{Service: service, AuthMiddleware: auth}
}

func (h *AssetHandler) actor(r *http.Request) (uuid.UUID, []string, error) {
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

func (h *AssetHandler) RegisterAsset(w http.ResponseWriter, r *http.Request) {
	ownerID, _, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req RegisterAssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset input")
		return
	}

	assetID, err := h.Service.Register(r.Context(), req, ownerID)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"asset_id": assetID.String()})
}

func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	actorID, roles, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	assetID, err := uuid.Parse(chi.URLParam(r, "assetID"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset id")
		return
	}

	asset, err := h.Service.GetByID(r.Context(), assetID, actorID, roles)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) ListMyAssets(w http.ResponseWriter, r *http.Request) {
	ownerID, _, err := h.actor(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	assets, err := h.Service.ListOwn(r.Context(), ownerID)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"assets": assets})
}

func (h *AssetHandler) ListAllAssets(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.GetPageLimitAndOffset(r)
	assets, err := h.Service.ListAll(r.Context(), limit, offset)
	if err != nil {
		utils.RespondDomainError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"assets": assets})
}
