package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"backend/configs"
	"backend/controllers"
	"backend/pkg/logger"
	"backend/pkg/mailer"
	"backend/pkg/notify"
	"backend/pkg/phonepe"
	"backend/repository"
	"backend/routes"
	"backend/services"
)

func main() {
	cfg := configs.LoadConfig()

	zlog := logger.New(cfg.LogFile)
	defer zlog.Sync()
	controllers.UseLogger(zlog)

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// Notification queue + mailer
	queue := notify.NewQueue(zlog)
	defer queue.Close()
	sender := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SenderEmail)
	if err := queue.Consume(context.Background(), sender); err != nil {
		log.Fatalf("start notification consumer failed: %v", err)
	}

	// Payment gateway
	gateway := phonepe.NewClient(phonepe.Config{
		MerchantID:   cfg.PhonePeMerchantID,
		SaltKey:      cfg.PhonePeSaltKey,
		SaltIndex:    cfg.PhonePeSaltIndex,
		BaseURL:      cfg.PhonePeBaseURL,
		RedirectURL:  cfg.PhonePeRedirectURL,
		CallbackURL:  cfg.PhonePeCallbackURL,
		MockFallback: cfg.PaymentMockFallback,
	}, zlog)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	pilotRepo := repository.NewPilotRepository(db)
	editorRepo := repository.NewEditorRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	businessRepo := repository.NewBusinessClientRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewVideoReviewRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, pilotRepo, editorRepo, cfg.JWTSecret, cfg.JWTTTL)
	appSvc := services.NewApplicationService(db, appRepo, userRepo, pilotRepo, editorRepo, referralRepo, businessRepo, queue)
	bookingSvc := services.NewBookingService(db, bookingRepo, pilotRepo, editorRepo, userRepo)
	reviewSvc := services.NewVideoReviewService(db, reviewRepo, bookingRepo)
	paymentSvc := services.NewPaymentService(db, paymentRepo, bookingRepo, gateway)

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, routes.Deps{
		DB:          db,
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSOrigins,
		Auth:        controllers.NewAuthController(authSvc, bookingSvc),
		Apps:        controllers.NewApplicationController(appSvc),
		Bookings:    controllers.NewBookingController(bookingSvc),
		Reviews:     controllers.NewVideoReviewController(reviewSvc),
		Payments:    controllers.NewPaymentController(paymentSvc),
		Admin:       controllers.NewAdminController(bookingSvc, pilotRepo, editorRepo, referralRepo, businessRepo),
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	zlog.Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
