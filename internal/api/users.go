package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campuschat/go-campuschat/internal/database"
	"github.com/campuschat/go-campuschat/internal/realtime"
)

type DeleteAccountRequest struct {
	Reason string `json:"reason"`
}

func (s *CampusChatApp) blockUser(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	targetId := r.PathValue("id")
	if targetId == user.Id {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := s.db.AddBlockedUser(r.Context(), user.Id, targetId); err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, map[string]string{"message": "user blocked"})
}

func (s *CampusChatApp) unblockUser(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	targetId := r.PathValue("id")

	if err := s.db.RemoveBlockedUser(r.Context(), user.Id, targetId); err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	// the target's client reconnects on this event so the restored
	// conversation shows up without a refresh
	s.rt.SendToUser(targetId, realtime.UserUnblockedEvent(user.Id))

	updated, err := s.db.GetUserById(r.Context(), user.Id)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, map[string]any{
		"message":       "user unblocked",
		"blocked_users": apiUser(updated).BlockedUsers,
	})
}

// deleteAccount archives a snapshot of the account before destroying
// it, so moderation history survives self-service deletion.
func (s *CampusChatApp) deleteAccount(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req DeleteAccountRequest
	if r.Body != nil {
		// the reason is optional, a missing body is fine
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	params := database.ArchiveUserParams{
		FullName:       user.FullName,
		EmailAddress:   user.EmailAddress,
		CollegeName:    user.CollegeName,
		Course:         user.Course,
		Semester:       user.Semester,
		CreatedAt:      user.CreatedAt,
		DeletionReason: req.Reason,
	}

	if _, err := s.db.ArchiveUser(r.Context(), params); err != nil {
		s.log.Println("archive user:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := s.db.DeleteUser(r.Context(), user.Id); err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	http.SetCookie(w, createJwtCookie("", 0))
	s.writeJson(w, http.StatusOK, map[string]string{"message": "account deleted"})
}
