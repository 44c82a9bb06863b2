package providers

import (
	"context"
	"io"
	"net/http"

	"workorder/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type AuthMiddlewareService interface {
	JWTAuthMiddleware() func(http.Handler) http.Handler
	RequireRole(roles ...models.Role) func(http.Handler) http.Handler
	GetUserAndRolesFromContext(r *http.Request) (string, []string, error)
}

type ConfigProvider interface {
	LoadEnv() error
	GetDatabaseString() string
	GetServerPort() string
	GetRedisAddr() string
	GetMinioEndpoint() string
	GetMinioAccessKey() string
	GetMinioSecretKey() string
	GetMinioBucket() string
	GetMinioUseSSL() bool
}

type DBProvider interface {
	DB() *sqlx.DB
	Close() error
}

type ZapLoggerProvider interface {
	InitLogger()
	SyncLogger()
	GetLogger() *zap.Logger
}

// NotificationPublisher delivers lifecycle events to a group or user
// audience. Delivery is best effort: implementations log failures and
// never propagate them to the calling operation.
type NotificationPublisher interface {
	Publish(ctx context.Context, event string, audience models.Audience, payload interface{})
	Close() error
}

// AttachmentStore persists uploaded file bytes under a key derived from the
// work order and returns the retrievable object path.
type AttachmentStore interface {
	Store(ctx context.Context, workOrderID uuid.UUID, fileName, contentType string, size int64, r io.Reader) (string, error)
}
