package routes

import (
	"net/http"
	"time"

	"barberdesk/handlers"
	"barberdesk/middleware"
	"barberdesk/models"
	"barberdesk/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers the routes need.
type HandlerBundle struct {
	Auth      *handlers.AuthHandler
	Users     *handlers.UserHandler
	Operation *handlers.OperationHandler
	Branches  *handlers.BranchHandler
	Reports   *handlers.ReportHandler
	Storage   *handlers.StorageHandler
}

var (
	owner      = string(models.RoleOwner)
	admin      = string(models.RoleAdmin)
	barber     = string(models.RoleBarber)
	washer     = string(models.RoleWasher)
	staffRoles = []string{owner, admin, barber, washer}
)

// RegisterAuthRoutes registers registration and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		api.Use(middleware.AuthRequired())
		api.DELETE("/revoke", hb.Auth.RevokeHandler)
	}
}

// RegisterUserRoutes registers staff management and the operation lifecycle
// endpoints. Role gating runs on the token claims before any handler touches
// the store.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.AuthRequired())
	{
		api.POST("", middleware.RequireRoles(owner), hb.Users.CreateStaffHandler)
		api.GET("", middleware.RequireRoles(owner), hb.Users.ListUsersHandler)
		api.GET("/:userId", middleware.RequireRoles(owner, admin), hb.Users.GetUserHandler)
		api.PUT("/:userId", middleware.RequireRoles(owner), hb.Users.UpdateUserHandler)
		api.DELETE("/:userId", middleware.RequireRoles(owner), hb.Users.DeleteUserHandler)
		api.PUT("/:userId/suspend", middleware.RequireRoles(owner), hb.Users.SuspendUserHandler)
		api.PUT("/:userId/activate", middleware.RequireRoles(owner), hb.Users.ActivateUserHandler)

		// Operation lifecycle.
		api.POST("/:userId/operations", middleware.RequireRoles(staffRoles...), hb.Operation.RecordOperationHandler)
		api.GET("/:userId/operations", middleware.RequireRoles(owner), hb.Operation.ListOperationsHandler)
		api.PATCH("/:userId/operations/bulk-update", middleware.RequireRoles(owner), hb.Operation.BulkUpdateOperationsHandler)
		api.PATCH("/:userId/operations/:operationId", middleware.RequireRoles(owner), hb.Operation.UpdateOperationHandler)
		api.POST("/:userId/confirm-payment", middleware.RequireRoles(staffRoles...), hb.Operation.ConfirmPaymentHandler)
		api.POST("/:userId/bulk-confirm-payment", middleware.RequireRoles(staffRoles...), hb.Operation.BulkConfirmPaymentHandler)
		api.GET("/:userId/payment-confirmations", hb.Operation.PaymentConfirmationsHandler)
		api.DELETE("/:userId/admin-operations/:operationId", middleware.RequireRoles(owner, admin), hb.Operation.DeleteAdminOperationHandler)
	}
}

// RegisterBranchRoutes registers branch management and the revenue dashboard.
func RegisterBranchRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/branches")
	api.Use(middleware.AuthRequired(), middleware.RequireRoles(owner))
	{
		api.POST("", hb.Branches.CreateBranchHandler)
		api.GET("", hb.Branches.ListBranchesHandler)
		api.GET("/:branchId", hb.Branches.GetBranchHandler)
		api.PUT("/:branchId", hb.Branches.UpdateBranchHandler)
		api.DELETE("/:branchId", hb.Branches.DeleteBranchHandler)
		api.POST("/:branchId/services", hb.Branches.UpsertBranchServiceHandler)
		api.PUT("/:branchId/services", hb.Branches.UpsertBranchServiceHandler)
		api.DELETE("/:branchId/services/:serviceName", hb.Branches.RemoveBranchServiceHandler)

		api.GET("/:branchId/reports/daily", hb.Reports.DailyReportHandler)
		api.GET("/:branchId/reports/range", hb.Reports.RangeReportHandler)
	}
}

// RegisterStorageRoutes registers payment-proof uploads for staff.
func RegisterStorageRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/storage")
	api.Use(middleware.AuthRequired(), middleware.RequireRoles(staffRoles...))
	{
		api.POST("/payment-proof", hb.Storage.UploadPaymentProofHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterBranchRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}
