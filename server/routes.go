package server

import (
	"net/http"

	"workorder/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (srv *Server) InjectRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	//public routes
	r.Route("/api", func(api chi.Router) {
		api.Post("/user/register", srv.UserHandler.Register)
		api.Post("/user/login", srv.UserHandler.Login)

		//protected
		api.Group(func(protected chi.Router) {
			protected.Use(srv.Middleware.JWTAuthMiddleware())

			protected.Get("/users/me", srv.UserHandler.GetProfile)

			//asset registration for owners
			protected.Route("/assets", func(assets chi.Router) {
				assets.Post("/", srv.AssetHandler.RegisterAsset)
				assets.Get("/mine", srv.AssetHandler.ListMyAssets)
				assets.Get("/{assetID}", srv.AssetHandler.GetAsset)
				assets.With(srv.Middleware.RequireRole(models.ManagerRole)).
					Get("/", srv.AssetHandler.ListAllAssets)
			})

			protected.Route("/workorders", func(workorders chi.Router) {
				workorders.With(srv.Middleware.RequireRole(models.UserRole)).
					Post("/", srv.WorkOrderHandler.CreateWorkOrder)
				workorders.Get("/mine", srv.WorkOrderHandler.ListMyWorkOrders)
				workorders.Get("/{workOrderID}", srv.WorkOrderHandler.GetWorkOrder)
				workorders.Get("/{workOrderID}/history", srv.WorkOrderHandler.GetWorkOrderHistory)
				workorders.Get("/{workOrderID}/invoice", srv.WorkOrderHandler.GetWorkOrderInvoice)
				workorders.Post("/{workOrderID}/attachments", srv.WorkOrderHandler.UploadAttachments)
				workorders.Post("/{workOrderID}/cancel", srv.WorkOrderHandler.CancelWorkOrder)

				//creator decisions on spare part requests
				workorders.Post("/spare-parts/{requestID}/approve", srv.SparePartHandler.ApproveSparePart)
				workorders.Post("/spare-parts/{requestID}/reject", srv.SparePartHandler.RejectSparePart)

				//technician and manager actions
				workorders.Group(func(tech chi.Router) {
					tech.Use(srv.Middleware.RequireRole(models.TechnicianRole, models.ManagerRole))
					tech.Get("/tasks", srv.WorkOrderHandler.ListMyTasks)
					tech.Post("/{workOrderID}/complete", srv.WorkOrderHandler.CompleteWorkOrder)
					tech.Post("/equipment", srv.EquipmentHandler.AddEquipmentToWorkOrder)
					tech.Post("/spare-parts", srv.SparePartHandler.RequestSparePart)
				})

				//manager-only actions
				workorders.Group(func(manager chi.Router) {
					manager.Use(srv.Middleware.RequireRole(models.ManagerRole))
					manager.Get("/", srv.WorkOrderHandler.ListAllWorkOrders)
					manager.Put("/{workOrderID}/assignment", srv.WorkOrderHandler.UpdateAssignmentAndPriority)
					manager.Post("/{workOrderID}/inspect", srv.WorkOrderHandler.InspectWorkOrder)
				})
			})

			//catalogs
			protected.Route("/catalog", func(catalog chi.Router) {
				catalog.Get("/equipments", srv.EquipmentHandler.ListEquipment)
				catalog.Get("/spare-parts", srv.SparePartHandler.ListSpareParts)

				catalog.Group(func(manager chi.Router) {
					manager.Use(srv.Middleware.RequireRole(models.ManagerRole))
					manager.Post("/equipments", srv.EquipmentHandler.CreateEquipment)
					manager.Post("/spare-parts", srv.SparePartHandler.CreateSparePart)
				})
			})

			//role administration
			protected.With(srv.Middleware.RequireRole(models.ManagerRole)).
				Post("/admin/roles", srv.UserHandler.AssignRole)
		})
	})

	return r
}
