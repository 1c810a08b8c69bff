package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campuschat/go-campuschat/internal/database"
	"github.com/campuschat/go-campuschat/internal/realtime"
	"github.com/campuschat/go-campuschat/internal/types"
)

type SendMessageRequest struct {
	Text     string `json:"text"`
	Image    string `json:"image"`
	File     string `json:"file"`
	FileName string `json:"file_name"`
}

func attachmentName(userId string) string {
	return fmt.Sprintf("%s-%d", userId, time.Now().UnixNano())
}

// getSidebarUsers lists the users sharing the caller's course and
// semester, which is the set the frontend shows as chat candidates.
func (s *CampusChatApp) getSidebarUsers(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	dbUsers, err := s.db.ListUsersByScope(r.Context(), user.Course, user.Semester, user.Id)
	if err != nil {
		s.log.Println("list users by scope:", err)
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

func (s *CampusChatApp) getMessages(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	otherId := r.PathValue("id")

	other, err := s.db.GetUserById(r.Context(), otherId)
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

	apiOther := apiUser(other)

	// a block in either direction hides the conversation
	if user.HasBlocked(apiOther.Id) || apiOther.HasBlocked(user.Id) {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	dbMessages, err := s.db.ListConversation(r.Context(), user.Id, otherId)
	if err != nil {
		s.log.Println("list conversation:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	messages := make([]types.Message, 0, len(dbMessages))
	for _, m := range dbMessages {
		messages = append(messages, apiMessage(m))
	}

	s.writeJson(w, http.StatusOK, messages)
}

func (s *CampusChatApp) sendMessage(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	receiverId := r.PathValue("id")

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.Text == "" && req.Image == "" && req.File == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	receiver, err := s.db.GetUserById(r.Context(), receiverId)
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

	apiReceiver := apiUser(receiver)
	if user.HasBlocked(receiverId) || apiReceiver.HasBlocked(user.Id) {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	params := database.CreateMessageParams{
		SenderId:   user.Id,
		ReceiverId: receiverId,
		Text:       req.Text,
		FileName:   req.FileName,
	}

	if req.Image != "" {
		url, err := s.uploadDataURI(r.Context(), attachmentName(user.Id), req.Image)
		if err != nil {
			s.log.Println("upload image:", err)
			errResp := NewBadGatewayError(err)
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}
		params.Image = url
	}

	if req.File != "" {
		url, err := s.uploadDataURI(r.Context(), attachmentName(user.Id), req.File)
		if err != nil {
			s.log.Println("upload file:", err)
			errResp := NewBadGatewayError(err)
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}
		params.File = url
	}

	dbMsg, err := s.db.CreateMessage(r.Context(), params)
	if err != nil {
		s.log.Println("create message:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	msg := apiMessage(dbMsg)

	// realtime delivery is best-effort: skipped when the receiver is
	// offline or has blocked the sender, the message is persisted either way
	if !apiReceiver.HasBlocked(user.Id) {
		s.rt.SendToUser(receiverId, realtime.NewMessageEvent(msg))
	}

	s.writeJson(w, http.StatusCreated, msg)
}

func (s *CampusChatApp) deleteMessage(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	messageId := r.PathValue("id")

	dbMsg, err := s.db.GetMessage(r.Context(), messageId)
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

	// only the sender may delete a message
	if dbMsg.SenderId.Hex() != user.Id {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := s.db.DeleteMessage(r.Context(), messageId); err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.rt.SendToUser(dbMsg.ReceiverId.Hex(), realtime.MessageDeletedEvent(messageId))

	s.writeJson(w, http.StatusOK, map[string]string{
		"message":    "message deleted",
		"message_id": messageId,
	})
}
