package api

import (
	"net/http"
	"slices"

	"github.com/gorilla/websocket"

	"github.com/campuschat/go-campuschat/internal/types"
)

// serveWs upgrades the request and hands the connection to the
// realtime gateway. The course and semester query parameters pick the
// group room for the life of the connection.
func (s *CampusChatApp) serveWs(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	scope := types.ScopeKey{
		Course:   r.URL.Query().Get("course"),
		Semester: r.URL.Query().Get("semester"),
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			// only allow connections from allowed origins
			origin := r.Header.Get("Origin")
			if origin == "" {
				// if no origin header, allow the request
				return true
			}

			return slices.Contains(s.allowedOrigins, origin)
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Println("error upgrading connection:", err)
		return
	}

	s.rt.HandleConn(user, scope, conn)
}
