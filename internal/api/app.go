package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/handlers"

	"github.com/avelichko/chequeroom/internal/auth"
	"github.com/avelichko/chequeroom/internal/config"
	"github.com/avelichko/chequeroom/internal/database"
	"github.com/avelichko/chequeroom/internal/service"
	"github.com/avelichko/chequeroom/internal/stats"
)

type ChequeApp struct {
	log    *log.Logger
	db     database.Repository
	svc    *service.Service
	tokens *auth.TokenService
	srv    *http.Server
	stats  stats.StatsProvider
}

func NewChequeApp(mux *http.ServeMux, logger *log.Logger, db database.Repository, statsProvider stats.StatsProvider, cfg *config.Config) *ChequeApp {
	a := &ChequeApp{
		log:    logger,
		db:     db,
		svc:    service.NewService(db),
		tokens: auth.NewTokenService(cfg.SigningKey),
		stats:  statsProvider,
	}

	mux.HandleFunc("GET /healthz", a.healthCheck)

	mux.HandleFunc("POST /register", a.requireFields(a.register, "email", "name", "password"))
	mux.HandleFunc("POST /login", a.requireFields(a.login, "email", "password"))
	mux.HandleFunc("GET /auth", a.authMiddleware(a.checkAuth))
	mux.HandleFunc("GET /delete_user", a.authMiddleware(a.deleteUser))

	mux.HandleFunc("POST /add_room", a.authMiddleware(a.requireFields(a.addRoom, "name")))
	mux.HandleFunc("POST /delete_room", a.authMiddleware(a.requireFields(a.deleteRoom, "id")))
	mux.HandleFunc("GET /get_rooms", a.authMiddleware(a.getRooms))
	mux.HandleFunc("GET /get_rooms_admin", a.authMiddleware(a.getRoomsAdmin))
	mux.HandleFunc("GET /get_rooms_member", a.authMiddleware(a.getRoomsMember))
	mux.HandleFunc("POST /join_room", a.authMiddleware(a.requireFields(a.joinRoom, "id")))
	mux.HandleFunc("POST /leave_room", a.authMiddleware(a.requireFields(a.leaveRoom, "id")))
	mux.HandleFunc("POST /delete_member", a.authMiddleware(a.requireFields(a.deleteMember, "room_id", "user_id")))

	mux.HandleFunc("POST /add_cheque", a.authMiddleware(a.requireFields(a.addCheque, "room_id", "name")))
	mux.HandleFunc("POST /get_cheques", a.authMiddleware(a.requireFields(a.getCheques, "id")))
	mux.HandleFunc("POST /get_cheques_admin", a.authMiddleware(a.requireFields(a.getChequesAdmin, "id")))
	mux.HandleFunc("POST /get_cheques_member", a.authMiddleware(a.requireFields(a.getChequesMember, "id")))
	mux.HandleFunc("POST /delete_cheque", a.authMiddleware(a.requireFields(a.deleteCheque, "id")))
	mux.HandleFunc("POST /join_cheque", a.authMiddleware(a.requireFields(a.joinCheque, "id", "room_id")))
	mux.HandleFunc("POST /leave_cheque", a.authMiddleware(a.requireFields(a.leaveCheque, "id")))

	mux.HandleFunc("POST /add_product", a.authMiddleware(a.requireFields(a.addProduct, "cheque_id", "name", "price", "count")))
	mux.HandleFunc("POST /get_products", a.authMiddleware(a.requireFields(a.getProducts, "id")))
	mux.HandleFunc("POST /delete_product", a.authMiddleware(a.requireFields(a.deleteProduct, "id")))
	mux.HandleFunc("POST /join_product", a.authMiddleware(a.requireFields(a.joinProduct, "id", "cheque_id")))
	mux.HandleFunc("POST /leave_product", a.authMiddleware(a.requireFields(a.leaveProduct, "id")))

	h := handlers.CORS(
		handlers.MaxAge(3600),
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Origin", "Content-Type", "Accept", tokenHeader}),
	)(mux)

	h = a.logRequests(h)
	h = a.errorHandler(h)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: h,
	}

	a.srv = srv
	return a
}

func (a *ChequeApp) Start() error {
	a.log.Printf("starting server on %s\n", a.srv.Addr)
	return a.srv.ListenAndServe()
}

func (a *ChequeApp) Shutdown(ctx context.Context) error {
	a.log.Println("shutting down HTTP server...")
	if err := a.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
