package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"admin-orders-service/internal/auth"
	"admin-orders-service/internal/config"
	"admin-orders-service/internal/handler"
	"admin-orders-service/internal/middleware"
	"admin-orders-service/internal/order"
)

func NewRouter(dbConn *pgxpool.Pool, adminCfg config.AdminConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Metrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	repo := order.NewRepository(dbConn)
	svc := order.NewService(repo)
	orderHandler := handler.NewOrderHandler(svc)
	authHandler := handler.NewAuthHandler(auth.NewService(adminCfg))

	r.Post("/auth/login", authHandler.Login)
	r.Get("/orders", orderHandler.ListOrders)
	r.Post("/products", orderHandler.OrderProducts)
	r.Post("/update-status", orderHandler.UpdateStatus)

	return r
}
