package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campuschat/go-campuschat/internal/database"
	"github.com/campuschat/go-campuschat/internal/types"
)

type FriendRequestRequest struct {
	ReceiverId string `json:"receiver_id"`
}

func (s *CampusChatApp) sendFriendRequest(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req FriendRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ReceiverId == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.ReceiverId == user.Id {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if _, err := s.db.GetUserById(r.Context(), req.ReceiverId); err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	exists, err := s.db.ActiveFriendRequestExists(r.Context(), user.Id, req.ReceiverId)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}
	if exists {
		errResp := NewConflictError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	fr, err := s.db.CreateFriendRequest(r.Context(), user.Id, req.ReceiverId)
	if err != nil {
		s.log.Println("create friend request:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusCreated, apiFriendRequest(fr))
}

func (s *CampusChatApp) getIncomingFriendRequests(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	dbRequests, err := s.db.ListIncomingFriendRequests(r.Context(), user.Id)
	if err != nil {
		s.log.Println("list incoming friend requests:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	requests := make([]types.FriendRequest, 0, len(dbRequests))
	for _, dbReq := range dbRequests {
		fr := apiFriendRequest(dbReq)
		if sender, err := s.db.GetUserById(r.Context(), fr.SenderId); err == nil {
			u := apiUser(sender)
			fr.Sender = &u
		}
		requests = append(requests, fr)
	}

	s.writeJson(w, http.StatusOK, requests)
}

func (s *CampusChatApp) getSentFriendRequests(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	dbRequests, err := s.db.ListSentFriendRequests(r.Context(), user.Id)
	if err != nil {
		s.log.Println("list sent friend requests:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	requests := make([]types.FriendRequest, 0, len(dbRequests))
	for _, dbReq := range dbRequests {
		fr := apiFriendRequest(dbReq)
		if receiver, err := s.db.GetUserById(r.Context(), fr.ReceiverId); err == nil {
			u := apiUser(receiver)
			fr.Receiver = &u
		}
		requests = append(requests, fr)
	}

	s.writeJson(w, http.StatusOK, requests)
}

func (s *CampusChatApp) acceptFriendRequest(w http.ResponseWriter, r *http.Request) {
	s.resolveFriendRequest(w, r, database.FriendStatusAccepted)
}

func (s *CampusChatApp) rejectFriendRequest(w http.ResponseWriter, r *http.Request) {
	s.resolveFriendRequest(w, r, database.FriendStatusRejected)
}

// resolveFriendRequest moves a pending request to a terminal status.
// Only the receiver may resolve it, and resolved requests stay put.
func (s *CampusChatApp) resolveFriendRequest(w http.ResponseWriter, r *http.Request, status string) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	requestId := r.PathValue("id")

	dbReq, err := s.db.GetFriendRequest(r.Context(), requestId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if dbReq.Receiver.Hex() != user.Id {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if dbReq.Status != database.FriendStatusPending {
		errResp := NewConflictError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	updated, err := s.db.UpdateFriendRequestStatus(r.Context(), requestId, status)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, apiFriendRequest(updated))
}

// getFriends lists accepted friends who still share the caller's course
// and semester. Friends who moved on to another semester drop out of
// the list without the relationship being removed.
func (s *CampusChatApp) getFriends(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	dbRequests, err := s.db.ListAcceptedFriendRequests(r.Context(), user.Id)
	if err != nil {
		s.log.Println("list accepted friend requests:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	friends := make([]types.User, 0, len(dbRequests))
	for _, dbReq := range dbRequests {
		friendId := dbReq.Sender.Hex()
		if friendId == user.Id {
			friendId = dbReq.Receiver.Hex()
		}

		dbFriend, err := s.db.GetUserById(r.Context(), friendId)
		if err != nil {
			// the friend deleted their account, skip
			continue
		}

		if dbFriend.Course != user.Course || dbFriend.Semester != user.Semester {
			continue
		}

		friends = append(friends, apiUser(dbFriend))
	}

	s.writeJson(w, http.StatusOK, friends)
}
