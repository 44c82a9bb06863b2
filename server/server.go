package server

import (
	"context"
	"net/http"
	"time"

	"workorder/providers"
	configprovider "workorder/providers/configProvider"
	attachmentprovider "workorder/providers/attachmentProvider"
	databaseprovider "workorder/providers/databaseProvider"
	loggerprovider "workorder/providers/loggerProvider"
	middlewareprovider "workorder/providers/middlewareprovider"
	notificationprovider "workorder/providers/notificationProvider"
	assetservice "workorder/services/asset"
	equipmentservice "workorder/services/equipment"
	historyservice "workorder/services/history"
	invoiceservice "workorder/services/invoice"
	sparepartservice "workorder/services/sparepart"
	userservice "workorder/services/user"
	workorderservice "workorder/services/workorder"
	"workorder/utils"

	"go.uber.org/zap"
)

type Server struct {
	Config   providers.ConfigProvider
	DB       providers.DBProvider
	Logger   providers.ZapLoggerProvider
	Notifier providers.NotificationPublisher

	Middleware providers.AuthMiddlewareService

	UserHandler      *userservice.UserHandler
	AssetHandler     *assetservice.AssetHandler
	WorkOrderHandler *workorderservice.WorkOrderHandler
	EquipmentHandler *equipmentservice.EquipmentHandler
	SparePartHandler *sparepartservice.SparePartHandler

	httpServer *http.Server
}

func ServerInit() *Server {
	cfg := configprovider.NewConfigProvider()
	cfg.LoadEnv()

	logProvider := loggerprovider.NewLogProvider()
	logProvider.InitLogger()

	db := databaseprovider.NewDBProvider(cfg.GetDatabaseString())
	authMiddleware := middlewareprovider.NewAuthMiddlewareService(db.DB())
	notifier := notificationprovider.NewRedisPublisher(cfg.GetRedisAddr())

	attachments, err := attachmentprovider.NewMinioStore(
		cfg.GetMinioEndpoint(),
		cfg.GetMinioAccessKey(),
		cfg.GetMinioSecretKey(),
		cfg.GetMinioBucket(),
		cfg.GetMinioUseSSL(),
	)
	if err != nil {
		utils.Logger.Fatal("failed to initialize attachment store", zap.Error(err))
	}

	// repositories
	userRepo := userservice.NewUserRepository(db.DB())
	assetRepo := assetservice.NewAssetRepository(db.DB())
	workOrderRepo := workorderservice.NewWorkOrderRepository(db.DB())
	equipmentRepo := equipmentservice.NewEquipmentRepository(db.DB())
	sparePartRepo := sparepartservice.NewSparePartRepository(db.DB())
	historyRepo := historyservice.NewHistoryRepository(db.DB())
	invoiceRepo := invoiceservice.NewInvoiceRepository(db.DB())

	// services
	historySvc := historyservice.NewHistoryService(historyRepo)
	invoiceSvc := invoiceservice.NewInvoiceService(invoiceRepo)
	userSvc := userservice.NewUserService(userRepo, db.DB())
	assetSvc := assetservice.NewAssetService(assetRepo)
	workOrderSvc := workorderservice.NewWorkOrderService(workOrderRepo, db.DB(), historySvc, invoiceSvc, notifier, attachments)
	equipmentSvc := equipmentservice.NewEquipmentService(equipmentRepo, db.DB(), historySvc)
	sparePartSvc := sparepartservice.NewSparePartService(sparePartRepo, db.DB(), historySvc, notifier)

	return &Server{
		Config:           cfg,
		DB:               db,
		Logger:           logProvider,
		Notifier:         notifier,
		Middleware:       authMiddleware,
		UserHandler:      userservice.NewUserHandler(userSvc, authMiddleware),
		AssetHandler:     assetservice.NewAssetHandler(assetSvc, authMiddleware),
		WorkOrderHandler: workorderservice.NewWorkOrderHandler(workOrderSvc, historySvc, invoiceSvc, authMiddleware),
		EquipmentHandler: equipmentservice.NewEquipmentHandler(equipmentSvc, authMiddleware),
		SparePartHandler: sparepartservice.NewSparePartHandler(sparePartSvc, authMiddleware),
	}
}

func (s *Server) Start() {
	addr := ":" + s.Config.GetServerPort()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.InjectRoutes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	utils.Logger.Info("server running", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		utils.Logger.Fatal("server error", zap.Error(err))
	}
}

func (s *Server) Stop() {
	utils.Logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		utils.Logger.Error("error shutting down server", zap.Error(err))
	}
	if err := s.Notifier.Close(); err != nil {
		utils.Logger.Error("error closing notifier", zap.Error(err))
	}
	if err := s.DB.Close(); err != nil {
		utils.Logger.Error("error closing database", zap.Error(err))
	}

	utils.Logger.Info("server shutdown complete")
}
