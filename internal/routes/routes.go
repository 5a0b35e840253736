package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/barbeariabiu/agenda/internal/config"
	domain "github.com/barbeariabiu/agenda/internal/domain/booking"
	"github.com/barbeariabiu/agenda/internal/handlers"
	infraRepo "github.com/barbeariabiu/agenda/internal/infra/repository"
	"github.com/barbeariabiu/agenda/internal/notify"
	ucBooking "github.com/barbeariabiu/agenda/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *mongo.Database, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	cache := infraRepo.NewListCache(cfg, log)
	bookingRepo := infraRepo.NewBookingMongoRepository(db, cache)

	linkBuilder := notify.NewBuilder(cfg)
	linkDispatcher := notify.NewDispatcher(log)

	hours := domain.Hours{
		OpenHour:      cfg.OpenHour,
		CloseHour:     cfg.CloseHour,
		ClosedWeekday: cfg.ClosedWeekday,
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		hours,
		linkBuilder,
		linkDispatcher,
	)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	webHandler := handlers.NewWebHandler(cfg, createBookingUC, listBookingsUC)
	bookingHandler := handlers.NewBookingHandler(cfg, createBookingUC, listBookingsUC)

	// ======================================================
	// 🌍 ROTAS WEB (HTML)
	// ======================================================
	r.GET("/", webHandler.Index)
	r.POST("/agendar", webHandler.Agendar)
	r.GET("/agendamentos", webHandler.ListPage)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/agendamentos", bookingHandler.Create)
		api.GET("/agendamentos", bookingHandler.List)
	}
}
