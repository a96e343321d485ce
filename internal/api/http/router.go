package http

import (
	"fleetdesk-backend/internal/security"
	"fleetdesk-backend/internal/service"
	"fleetdesk-backend/internal/storage"

	"github.com/gorilla/mux"
)

// Services bundles everything the router wires up.
type Services struct {
	Auth        service.AuthService
	Users       service.UserService
	Vehicles    service.VehicleService
	Drivers     service.DriverService
	Activities  service.ActivityService
	Revenues    service.RevenueService
	Expenses    service.ExpenseService
	CustomField service.CustomFieldService
	Reports     service.ReportService
}

// NewRouter builds the API. Everything under /api/v1 except auth
// requires a valid access token.
func NewRouter(svcs Services, tokens security.TokenManager, store storage.Storage, maxFileSizeMB int64) *mux.Router {
	root := mux.NewRouter()
	root.Use(loggingMiddleware)

	api := root.PathPrefix("/api/v1").Subrouter()

	authHandler := NewAuthHandler(svcs.Auth)
	fileHandler := NewFileHandler(store, svcs.Vehicles, svcs.Drivers, maxFileSizeMB)

	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")

	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware(tokens))

	// Driver documents come through here too, so downloads need a token.
	protected.HandleFunc("/files/{key:.+}", fileHandler.ServeFile).Methods("GET")

	userHandler := NewUserHandler(svcs.Users)
	protected.HandleFunc("/users", userHandler.Create).Methods("POST")
	protected.HandleFunc("/users", userHandler.List).Methods("GET")
	protected.HandleFunc("/users/{id}", userHandler.Get).Methods("GET")
	protected.HandleFunc("/users/{id}", userHandler.Update).Methods("PUT")

	vehicleHandler := NewVehicleHandler(svcs.Vehicles)
	protected.HandleFunc("/vehicles", vehicleHandler.Create).Methods("POST")
	protected.HandleFunc("/vehicles", vehicleHandler.List).Methods("GET")
	protected.HandleFunc("/vehicles/{id}", vehicleHandler.Get).Methods("GET")
	protected.HandleFunc("/vehicles/{id}", vehicleHandler.Update).Methods("PUT")
	protected.HandleFunc("/vehicles/{id}", vehicleHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/vehicles/{id}/photos", fileHandler.UploadVehiclePhoto).Methods("POST")

	driverHandler := NewDriverHandler(svcs.Drivers)
	protected.HandleFunc("/drivers", driverHandler.Create).Methods("POST")
	protected.HandleFunc("/drivers", driverHandler.List).Methods("GET")
	protected.HandleFunc("/drivers/{id}", driverHandler.Get).Methods("GET")
	protected.HandleFunc("/drivers/{id}", driverHandler.Update).Methods("PUT")
	protected.HandleFunc("/drivers/{id}", driverHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/drivers/{id}/documents/{type}", fileHandler.UploadDriverDocument).Methods("PUT")

	activityHandler := NewActivityHandler(svcs.Activities)
	protected.HandleFunc("/activities", activityHandler.Create).Methods("POST")
	protected.HandleFunc("/activities", activityHandler.List).Methods("GET")
	protected.HandleFunc("/activities/{id}", activityHandler.Get).Methods("GET")
	protected.HandleFunc("/activities/{id}", activityHandler.Update).Methods("PUT")
	protected.HandleFunc("/activities/{id}", activityHandler.Delete).Methods("DELETE")

	revenueHandler := NewRevenueHandler(svcs.Revenues)
	protected.HandleFunc("/revenues", revenueHandler.Create).Methods("POST")
	protected.HandleFunc("/revenues", revenueHandler.List).Methods("GET")
	protected.HandleFunc("/revenues/{id}", revenueHandler.Get).Methods("GET")
	protected.HandleFunc("/revenues/{id}", revenueHandler.Update).Methods("PUT")
	protected.HandleFunc("/revenues/{id}", revenueHandler.Delete).Methods("DELETE")

	expenseHandler := NewExpenseHandler(svcs.Expenses)
	protected.HandleFunc("/expenses", expenseHandler.Create).Methods("POST")
	protected.HandleFunc("/expenses", expenseHandler.List).Methods("GET")
	protected.HandleFunc("/expenses/{id}", expenseHandler.Get).Methods("GET")
	protected.HandleFunc("/expenses/{id}", expenseHandler.Update).Methods("PUT")
	protected.HandleFunc("/expenses/{id}", expenseHandler.Delete).Methods("DELETE")

	fieldHandler := NewCustomFieldHandler(svcs.CustomField)
	protected.HandleFunc("/custom-fields", fieldHandler.Define).Methods("POST")
	protected.HandleFunc("/custom-fields", fieldHandler.List).Methods("GET")
	protected.HandleFunc("/custom-fields/{id}", fieldHandler.Delete).Methods("DELETE")

	reportHandler := NewReportHandler(svcs.Reports)
	protected.HandleFunc("/reports/dashboard", reportHandler.Dashboard).Methods("GET")
	protected.HandleFunc("/reports/finances", reportHandler.Finances).Methods("GET")

	return root
}
