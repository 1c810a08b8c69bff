package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/handlers"

	"github.com/campuschat/go-campuschat/internal/config"
	"github.com/campuschat/go-campuschat/internal/database"
	"github.com/campuschat/go-campuschat/internal/objectstore"
	"github.com/campuschat/go-campuschat/internal/realtime"
)

type CampusChatApp struct {
	log            *log.Logger
	db             database.CampusChatRepository
	mux            *http.Server
	rt             realtime.EventPublisher
	store          objectstore.Store
	translator     Translator
	signingKey     []byte
	allowedOrigins []string
}

func NewCampusChatApp(mux *http.ServeMux, logger *log.Logger, rt realtime.EventPublisher,
	db database.CampusChatRepository, store objectstore.Store, translator Translator, cfg *config.Config) *CampusChatApp {
	s := &CampusChatApp{
		log:            logger,
		db:             db,
		rt:             rt,
		store:          store,
		translator:     translator,
		signingKey:     cfg.SigningKey,
		allowedOrigins: cfg.AllowedOrigins,
	}

	mux.HandleFunc("POST /api/auth/signup", s.signup)
	mux.HandleFunc("POST /api/auth/login", s.login)
	mux.HandleFunc("POST /api/auth/logout", s.logout)
	mux.HandleFunc("GET /api/auth/check", s.authMiddleware(s.checkAuth))
	mux.HandleFunc("PUT /api/auth/update-profile", s.authMiddleware(s.updateProfile))
	mux.HandleFunc("PUT /api/auth/update-semester", s.authMiddleware(s.updateSemester))

	mux.HandleFunc("GET /api/messages/users", s.authMiddleware(s.getSidebarUsers))
	mux.HandleFunc("GET /api/messages/{id}", s.authMiddleware(s.getMessages))
	mux.HandleFunc("POST /api/messages/send/{id}", s.authMiddleware(s.sendMessage))
	mux.HandleFunc("DELETE /api/messages/{id}", s.authMiddleware(s.deleteMessage))

	mux.HandleFunc("GET /api/group-messages", s.authMiddleware(s.getGroupMessages))
	mux.HandleFunc("POST /api/group-messages/send", s.authMiddleware(s.sendGroupMessage))
	mux.HandleFunc("DELETE /api/group-messages/{id}", s.authMiddleware(s.deleteGroupMessage))
	mux.HandleFunc("PUT /api/group-messages/{id}/read", s.authMiddleware(s.markGroupMessageRead))

	mux.HandleFunc("PUT /api/users/block/{id}", s.authMiddleware(s.blockUser))
	mux.HandleFunc("PUT /api/users/unblock/{id}", s.authMiddleware(s.unblockUser))
	mux.HandleFunc("DELETE /api/users/delete-account", s.authMiddleware(s.deleteAccount))

	mux.HandleFunc("POST /api/friends/request", s.authMiddleware(s.sendFriendRequest))
	mux.HandleFunc("GET /api/friends/requests/incoming", s.authMiddleware(s.getIncomingFriendRequests))
	mux.HandleFunc("GET /api/friends/requests/sent", s.authMiddleware(s.getSentFriendRequests))
	mux.HandleFunc("PUT /api/friends/accept/{id}", s.authMiddleware(s.acceptFriendRequest))
	mux.HandleFunc("PUT /api/friends/reject/{id}", s.authMiddleware(s.rejectFriendRequest))
	mux.HandleFunc("GET /api/friends", s.authMiddleware(s.getFriends))

	mux.HandleFunc("POST /api/reports", s.authMiddleware(s.createReport))
	mux.HandleFunc("GET /api/reports", s.authMiddleware(s.adminMiddleware(s.getReports)))
	mux.HandleFunc("PUT /api/reports/{id}/review", s.authMiddleware(s.adminMiddleware(s.reviewReport)))

	mux.HandleFunc("GET /api/admin/users", s.authMiddleware(s.adminMiddleware(s.getUsers)))
	mux.HandleFunc("PUT /api/admin/ban/{id}", s.authMiddleware(s.adminMiddleware(s.banUser)))
	mux.HandleFunc("DELETE /api/admin/group-messages", s.authMiddleware(s.adminMiddleware(s.clearGroupMessages)))
	mux.HandleFunc("GET /api/admin/deleted-users", s.authMiddleware(s.adminMiddleware(s.getDeletedUsers)))

	mux.HandleFunc("POST /api/translate", s.authMiddleware(s.translate))

	mux.HandleFunc("GET /ws", s.authMiddleware(s.serveWs))
	mux.HandleFunc("GET /healthz", s.healthCheck)

	h := handlers.CORS(
		handlers.MaxAge(3600),
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Origin", "Content-Type", "Accept", "Authorization"}),
		handlers.AllowCredentials(),
	)(mux)

	h = s.errorHandler(h)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: h,
	}

	s.mux = srv
	return s
}

func (s *CampusChatApp) Start() error {
	s.log.Printf("starting server on %s\n", s.mux.Addr)
	return s.mux.ListenAndServe()
}

func (s *CampusChatApp) Shutdown(ctx context.Context) error {
	s.log.Println("shutting down HTTP server...")
	if err := s.mux.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}

func (s *CampusChatApp) writeJson(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Printf("json encode: %v", err)
	}
}

func (s *CampusChatApp) healthCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.log.Println("health check:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, map[string]string{"status": "ok"})
}
