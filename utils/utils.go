package utils

import (
	"net/http"
	"strconv"
	"time"

	"workorder/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := jsoniter.NewEncoder(w).Encode(payload); err != nil {
		Logger.Error("failed to encode response", zap.Error(err))
	}
}

func RespondError(w http.ResponseWriter, statusCode int, err error, message string) {
	if err != nil {
		Logger.Error(message, zap.Error(err))
	}
	RespondJSON(w, statusCode, map[string]string{"error": message})
}

// RespondDomainError maps the domain error taxonomy onto HTTP status codes.
// Anything outside the taxonomy is treated as a storage/internal fault.
func RespondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		RespondError(w, http.StatusNotFound, err, err.Error())
	case errors.Is(err, models.ErrForbidden):
		RespondError(w, http.StatusForbidden, err, err.Error())
	case errors.Is(err, models.ErrConflict):
		RespondError(w, http.StatusConflict, err, err.Error())
	case errors.Is(err, models.ErrValidation):
		RespondError(w, http.StatusBadRequest, err, err.Error())
	default:
		RespondError(w, http.StatusInternalServerError, err, "internal server error")
	}
}

func GetPageLimitAndOffset(r *http.Request) (int, int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// zap logger, replaced with a real one by InitLogger at boot
var Logger = zap.NewNop()

func InitLogger() {
	var err error
	Logger, err = zap.NewDevelopment()
	if err != nil {
		panic("Failed to initialize zap logger: " + err.Error())
	}
	zap.ReplaceGlobals(Logger)
}

func SyncLogger() {
	if Logger != nil {
		Logger.Sync()
	}
}

func NowUTC() time.Time {
	return time.Now().UTC()
}
