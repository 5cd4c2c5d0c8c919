package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"propdesk-backend/internal/repository"
	"propdesk-backend/internal/security"
	"propdesk-backend/internal/service"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Property *PropertyHandler
	Tenant   *TenantHandler
	Renewal  *RenewalHandler
	Task     *TaskHandler
	Partner  *PartnerHandler
	Ledger   *LedgerHandler
	Settings *SettingsHandler
	Message  *MessageHandler
}

func NewHandlers(
	authSvc service.AuthService,
	userSvc service.UserService,
	propertySvc service.PropertyService,
	tenantSvc service.TenantService,
	renewalSvc service.RenewalService,
	taskSvc service.TaskService,
	partnerSvc service.PartnerService,
	ledgerSvc service.LedgerService,
	settingsSvc service.SettingsService,
	messageSvc service.MessageService,
	noteSvc service.NotificationService,
) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(authSvc, userSvc),
		User:     NewUserHandler(userSvc),
		Property: NewPropertyHandler(propertySvc),
		Tenant:   NewTenantHandler(tenantSvc),
		Renewal:  NewRenewalHandler(renewalSvc),
		Task:     NewTaskHandler(taskSvc),
		Partner:  NewPartnerHandler(partnerSvc),
		Ledger:   NewLedgerHandler(ledgerSvc),
		Settings: NewSettingsHandler(settingsSvc),
		Message:  NewMessageHandler(messageSvc, noteSvc),
	}
}

// NewRouter builds the API router. Route names must match the entries in
// config.EndpointAccessConfig; the access middleware keys off them.
func NewRouter(h *Handlers, tokens security.TokenManager, userRepo repository.UserRepository) *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware)
	r.Use(NewAccessMiddleware(tokens, userRepo).Handler)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Auth
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost).Name("auth.login")
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost).Name("auth.refresh")
	api.HandleFunc("/auth/logout", h.Auth.Logout).Methods(http.MethodPost).Name("auth.logout")

	// Profile
	api.HandleFunc("/profile", h.Auth.GetProfile).Methods(http.MethodGet).Name("profile.get")
	api.HandleFunc("/profile", h.Auth.UpdateProfile).Methods(http.MethodPut).Name("profile.update")

	// Users
	api.HandleFunc("/users", h.User.List).Methods(http.MethodGet).Name("users.list")
	api.HandleFunc("/users/search", h.User.Search).Methods(http.MethodGet).Name("users.search")
	api.HandleFunc("/users", h.User.Create).Methods(http.MethodPost).Name("users.create")
	api.HandleFunc("/users/{id}", h.User.Get).Methods(http.MethodGet).Name("users.get")
	api.HandleFunc("/users/{id}", h.User.Update).Methods(http.MethodPut).Name("users.update")
	api.HandleFunc("/users/{id}/approve", h.User.Approve).Methods(http.MethodPost).Name("users.approve")
	api.HandleFunc("/users/{id}/block", h.User.Block).Methods(http.MethodPost).Name("users.block")
	api.HandleFunc("/users/{id}/permissions", h.User.SetPermissions).Methods(http.MethodPut).Name("users.permissions")

	// Properties
	api.HandleFunc("/properties", h.Property.List).Methods(http.MethodGet).Name("properties.list")
	api.HandleFunc("/properties", h.Property.Create).Methods(http.MethodPost).Name("properties.create")
	api.HandleFunc("/properties/{id}", h.Property.Get).Methods(http.MethodGet).Name("properties.get")
	api.HandleFunc("/properties/{id}", h.Property.Update).Methods(http.MethodPut).Name("properties.update")
	api.HandleFunc("/properties/{id}", h.Property.Delete).Methods(http.MethodDelete).Name("properties.delete")

	// Condominiums
	api.HandleFunc("/condominiums", h.Property.ListCondominiums).Methods(http.MethodGet).Name("condominiums.list")
	api.HandleFunc("/condominiums", h.Property.CreateCondominium).Methods(http.MethodPost).Name("condominiums.create")
	api.HandleFunc("/condominiums/{id}", h.Property.GetCondominium).Methods(http.MethodGet).Name("condominiums.get")
	api.HandleFunc("/condominiums/{id}", h.Property.UpdateCondominium).Methods(http.MethodPut).Name("condominiums.update")
	api.HandleFunc("/condominiums/{id}", h.Property.DeleteCondominium).Methods(http.MethodDelete).Name("condominiums.delete")

	// Tenants
	api.HandleFunc("/tenants", h.Tenant.List).Methods(http.MethodGet).Name("tenants.list")
	api.HandleFunc("/tenants", h.Tenant.Create).Methods(http.MethodPost).Name("tenants.create")
	api.HandleFunc("/tenants/{id}", h.Tenant.Get).Methods(http.MethodGet).Name("tenants.get")
	api.HandleFunc("/tenants/{id}", h.Tenant.Update).Methods(http.MethodPut).Name("tenants.update")
	api.HandleFunc("/tenants/{id}/documents", h.Tenant.Documents).Methods(http.MethodGet).Name("tenants.documents")

	// Renewals board
	api.HandleFunc("/renewals", h.Renewal.List).Methods(http.MethodGet).Name("renewals.list")
	api.HandleFunc("/renewals/{id}/status", h.Renewal.UpdateStatus).Methods(http.MethodPut).Name("renewals.status")
	api.HandleFunc("/renewals/{id}/close", h.Renewal.Close).Methods(http.MethodPost).Name("renewals.close")

	// Tasks
	api.HandleFunc("/tasks", h.Task.List).Methods(http.MethodGet).Name("tasks.list")
	api.HandleFunc("/tasks", h.Task.Create).Methods(http.MethodPost).Name("tasks.create")
	api.HandleFunc("/tasks/{id}", h.Task.Get).Methods(http.MethodGet).Name("tasks.get")
	api.HandleFunc("/tasks/{id}", h.Task.Update).Methods(http.MethodPut).Name("tasks.update")
	api.HandleFunc("/tasks/{id}", h.Task.Delete).Methods(http.MethodDelete).Name("tasks.delete")
	api.HandleFunc("/tasks/{id}/start", h.Task.Start).Methods(http.MethodPost).Name("tasks.start")
	api.HandleFunc("/tasks/{id}/review", h.Task.Review).Methods(http.MethodPost).Name("tasks.review")
	api.HandleFunc("/tasks/{id}/complete", h.Task.Complete).Methods(http.MethodPost).Name("tasks.complete")
	api.HandleFunc("/tasks/{id}/images", h.Task.Images).Methods(http.MethodGet).Name("tasks.images")
	api.HandleFunc("/tasks/{id}/images", h.Task.AttachImage).Methods(http.MethodPost).Name("tasks.images.add")

	// Partners
	api.HandleFunc("/partners", h.Partner.List).Methods(http.MethodGet).Name("partners.list")
	api.HandleFunc("/partners", h.Partner.Create).Methods(http.MethodPost).Name("partners.create")
	api.HandleFunc("/partners/{id}", h.Partner.Get).Methods(http.MethodGet).Name("partners.get")
	api.HandleFunc("/partners/{id}", h.Partner.Update).Methods(http.MethodPut).Name("partners.update")
	api.HandleFunc("/partners/{id}", h.Partner.Delete).Methods(http.MethodDelete).Name("partners.delete")

	// Ledger
	api.HandleFunc("/ledger", h.Ledger.List).Methods(http.MethodGet).Name("ledger.list")
	api.HandleFunc("/ledger/summary", h.Ledger.Summary).Methods(http.MethodGet).Name("ledger.summary")
	api.HandleFunc("/ledger", h.Ledger.Create).Methods(http.MethodPost).Name("ledger.create")

	// Settings
	api.HandleFunc("/settings/financial", h.Settings.GetFinancial).Methods(http.MethodGet).Name("settings.financial.get")
	api.HandleFunc("/settings/financial", h.Settings.UpdateFinancial).Methods(http.MethodPut).Name("settings.financial.update")
	api.HandleFunc("/settings/rates", h.Settings.ListRates).Methods(http.MethodGet).Name("settings.rates.list")
	api.HandleFunc("/settings/rates", h.Settings.CreateRate).Methods(http.MethodPost).Name("settings.rates.create")
	api.HandleFunc("/settings/rates/{id}", h.Settings.UpdateRate).Methods(http.MethodPut).Name("settings.rates.update")

	// Messages and notifications
	api.HandleFunc("/messages", h.Message.List).Methods(http.MethodGet).Name("messages.list")
	api.HandleFunc("/messages", h.Message.Send).Methods(http.MethodPost).Name("messages.send")
	api.HandleFunc("/messages/{id}/read", h.Message.MarkRead).Methods(http.MethodPost).Name("messages.read")
	api.HandleFunc("/notifications", h.Message.Notifications).Methods(http.MethodGet).Name("notifications.list")
	api.HandleFunc("/notifications/{id}/read", h.Message.MarkNotificationRead).Methods(http.MethodPost).Name("notifications.read")

	return r
}
