package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/controllers"
	"backend/middlewares"
)

type Deps struct {
	DB          *gorm.DB
	JWTSecret   string
	CORSOrigins []string

	Auth     *controllers.AuthController
	Apps     *controllers.ApplicationController
	Bookings *controllers.BookingController
	Reviews  *controllers.VideoReviewController
	Payments *controllers.PaymentController
	Admin    *controllers.AdminController
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middlewares.CORSMiddleware(d.CORSOrigins))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	authed := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(d.DB, d.JWTSecret, roles...)
	}

	api := r.Group("/api")

	// Auth (public)
	auth := api.Group("/auth")
	{
		auth.POST("/login", d.Auth.Login)
		auth.POST("/register", d.Apps.RegisterBusinessClient)
	}

	// Public applications
	api.POST("/pilots/register", d.Apps.RegisterPilot)
	api.POST("/editors/register", d.Apps.RegisterEditor)
	api.POST("/referrals/register", d.Apps.RegisterReferral)

	// Pricing is public so the booking form can quote before signup
	api.POST("/cost/preview", d.Bookings.CostPreview)

	// Gateway redirects land here without a token
	api.POST("/payment/callback", d.Payments.Callback)
	api.GET("/payment/callback", d.Payments.Callback)

	// Auth (protected, any role)
	authAuthed := auth.Group("", authed())
	{
		authAuthed.GET("/verify", d.Auth.Verify)
		authAuthed.GET("/profile", d.Auth.Profile)
		authAuthed.POST("/change-password", d.Auth.ChangePassword)
	}

	// Any signed-in account can delete itself; the service refuses while
	// bookings are still in flight.
	api.DELETE("/clients/account", authed(), d.Auth.DeleteAccount)

	// Bookings (visibility is role-filtered inside the service)
	bookings := api.Group("/bookings", authed())
	{
		bookings.GET("", d.Bookings.List)
		bookings.GET("/:id", d.Bookings.Get)
		bookings.PUT("/:id", d.Bookings.Update)
	}

	// Client actions
	client := api.Group("/bookings", authed("client", "admin"))
	{
		client.POST("", d.Bookings.Create)
		client.POST("/:id/payment", d.Bookings.RecordPayment)
	}

	// Pilot actions
	pilot := api.Group("/bookings", authed("pilot"))
	{
		pilot.POST("/:id/claim", d.Bookings.Claim)
		pilot.POST("/:id/start", d.Bookings.Start)
		pilot.POST("/:id/complete", d.Bookings.Complete)
	}

	// Video submissions
	api.POST("/pilot/video-submissions", authed("pilot"), d.Reviews.SubmitPilotCut)
	api.GET("/pilot/video-submissions", authed("pilot"), d.Reviews.List)
	api.POST("/editor/video-submissions", authed("editor"), d.Reviews.SubmitEditorCut)
	api.GET("/editor/video-submissions", authed("editor"), d.Reviews.List)

	// Payments
	payment := api.Group("/payment", authed())
	{
		payment.POST("/initiate", d.Payments.Initiate)
		payment.GET("/status/:txn", d.Payments.Status)
	}
	api.POST("/payment/refund", authed("admin"), d.Payments.Refund)

	// Admin
	admin := api.Group("/admin", authed("admin"))
	{
		admin.GET("/applications", d.Apps.List)
		admin.GET("/applications/:kind", d.Apps.ListByKind)
		admin.POST("/applications/:kind/:id/approve", d.Apps.Approve)
		admin.POST("/applications/:kind/:id/reject", d.Apps.Reject)

		admin.POST("/orders", d.Admin.CreateOrder)
		admin.POST("/cancellations", d.Admin.CancelBooking)
		admin.GET("/cancellations", d.Admin.ListCancellations)

		admin.GET("/pilots", d.Admin.ListPilots)
		admin.GET("/editors", d.Admin.ListEditors)
		admin.GET("/referrals", d.Admin.ListReferrals)
		admin.GET("/business-clients", d.Admin.ListBusinessClients)

		admin.GET("/video-reviews", d.Reviews.List)
		admin.GET("/video-reviews/:id", d.Reviews.Get)
		admin.GET("/video-reviews/order/:id", d.Reviews.ListForOrder)
		admin.PUT("/video-reviews/:id", d.Reviews.AdminUpdate)

		admin.GET("/payments", d.Payments.ListAll)
	}
}
