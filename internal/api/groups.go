package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campuschat/go-campuschat/internal/database"
	"github.com/campuschat/go-campuschat/internal/realtime"
	"github.com/campuschat/go-campuschat/internal/types"
)

type SendGroupMessageRequest struct {
	Text     string `json:"text"`
	Image    string `json:"image"`
	File     string `json:"file"`
	FileName string `json:"file_name"`
}

func (s *CampusChatApp) getGroupMessages(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	dbMessages, err := s.db.ListGroupMessages(r.Context(), user.Course, user.Semester)
	if err != nil {
		s.log.Println("list group messages:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	// resolve sender display fields once per distinct sender
	senders := make(map[string]types.User)
	messages := make([]types.GroupMessage, 0, len(dbMessages))
	for _, m := range dbMessages {
		msg := apiGroupMessage(m)

		sender, ok := senders[msg.SenderId]
		if !ok {
			dbSender, err := s.db.GetUserById(r.Context(), msg.SenderId)
			if err == nil {
				sender = apiUser(dbSender)
			}
			senders[msg.SenderId] = sender
		}
		msg.SenderName = sender.FullName
		msg.SenderProfilePic = sender.ProfilePic

		messages = append(messages, msg)
	}

	s.writeJson(w, http.StatusOK, messages)
}

func (s *CampusChatApp) sendGroupMessage(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req SendGroupMessageRequest
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

	params := database.CreateGroupMessageParams{
		SenderId: user.Id,
		Course:   user.Course,
		Semester: user.Semester,
		Text:     req.Text,
		FileName: req.FileName,
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

	dbMsg, err := s.db.CreateGroupMessage(r.Context(), params)
	if err != nil {
		s.log.Println("create group message:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	msg := apiGroupMessage(dbMsg)
	msg.SenderName = user.FullName
	msg.SenderProfilePic = user.ProfilePic

	scope := types.ScopeKey{Course: user.Course, Semester: user.Semester}
	s.rt.BroadcastRoom(scope, realtime.NewGroupMessageEvent(msg))

	s.writeJson(w, http.StatusCreated, msg)
}

func (s *CampusChatApp) deleteGroupMessage(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	messageId := r.PathValue("id")

	dbMsg, err := s.db.GetGroupMessage(r.Context(), messageId)
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

	if dbMsg.SenderId.Hex() != user.Id {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := s.db.DeleteGroupMessage(r.Context(), messageId); err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	scope := types.ScopeKey{Course: dbMsg.Course, Semester: dbMsg.Semester}
	s.rt.BroadcastRoom(scope, realtime.MessageDeletedEvent(messageId))

	s.writeJson(w, http.StatusOK, map[string]string{
		"message":    "message deleted",
		"message_id": messageId,
	})
}

func (s *CampusChatApp) markGroupMessageRead(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	messageId := r.PathValue("id")

	if err := s.db.MarkGroupMessageRead(r.Context(), messageId, user.Id); err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusNoContent, nil)
}
