package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	middlewareprovider "workorder/providers/middlewareprovider"
	assetservice "workorder/services/asset"
	equipmentservice "workorder/services/equipment"
	sparepartservice "workorder/services/sparepart"
	userservice "workorder/services/user"
	workorderservice "workorder/services/workorder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	mw := middlewareprovider.NewAuthMiddlewareService(nil)
	srv := &Server{
		Middleware:       mw,
		UserHandler:      userservice.NewUserHandler(nil, mw),
		AssetHandler:     assetservice.NewAssetHandler(nil, mw),
		WorkOrderHandler: workorderservice.NewWorkOrderHandler(nil, nil, nil, mw),
		EquipmentHandler: equipmentservice.NewEquipmentHandler(nil, mw),
		SparePartHandler: sparepartservice.NewSparePartHandler(nil, mw),
	}
	return srv.InjectRoutes()
}

func postWorkOrder(t *testing.T, router http.Handler, roles []string) *httptest.ResponseRecorder {
	t.Helper()

	token, err := middlewareprovider.GenerateJWT(uuid.New().String(), roles)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/workorders", strings.NewReader(`{}`))
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateWorkOrderRoleGate(t *testing.T) {
	router := newTestRouter(t)

	t.Run("requester role passes the gate", func(t *testing.T) {
		// The empty body fails validation in the handler, which proves the
		// request got past the role check.
		rec := postWorkOrder(t, router, []string{"User"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("technician alone is forbidden", func(t *testing.T) {
		rec := postWorkOrder(t, router, []string{"Technician"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("manager alone is forbidden", func(t *testing.T) {
		rec := postWorkOrder(t, router, []string{"Manager"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
