package api

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campuschat/go-campuschat/internal/realtime"
	"github.com/campuschat/go-campuschat/internal/types"
)

func (s *CampusChatApp) getUsers(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	dbUsers, err := s.db.SearchUsers(r.Context(), search)
	if err != nil {
		s.log.Println("search users:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	users := make([]types.User, 0, len(dbUsers))
	for _, u := range dbUsers {
		users = append(users, apiUser(u))
	}

	s.writeJson(w, http.StatusOK, users)
}

// banUser flags the account and force-disconnects any live session.
// There is no unban operation.
func (s *CampusChatApp) banUser(w http.ResponseWriter, r *http.Request) {
	userId := r.PathValue("id")

	if err := s.db.BanUser(r.Context(), userId); err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.rt.DisconnectUser(userId, realtime.BannedEvent("You have been banned from the app."))

	s.writeJson(w, http.StatusOK, map[string]string{"message": "user banned"})
}

// clearGroupMessages wipes every group message across all rooms.
// Deliberately no realtime fan-out: connected clients keep their
// in-memory history until the next refresh.
func (s *CampusChatApp) clearGroupMessages(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.db.ClearGroupMessages(r.Context())
	if err != nil {
		s.log.Println("clear group messages:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, map[string]any{
		"message":       "group messages cleared",
		"deleted_count": deleted,
	})
}

func (s *CampusChatApp) getDeletedUsers(w http.ResponseWriter, r *http.Request) {
	dbDeleted, err := s.db.ListDeletedUsers(r.Context())
	if err != nil {
		s.log.Println("list deleted users:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	deleted := make([]types.DeletedUser, 0, len(dbDeleted))
	for _, d := range dbDeleted {
		deleted = append(deleted, apiDeletedUser(d))
	}

	s.writeJson(w, http.StatusOK, deleted)
}
