package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campuschat/go-campuschat/internal/database"
	"github.com/campuschat/go-campuschat/internal/types"
)

func TestSendFriendRequest(t *testing.T) {
	senderId := primitive.NewObjectID()
	receiverId := primitive.NewObjectID()

	tcases := []struct {
		name         string
		receiverId   string
		receiverErr  error
		exists       bool
		expectedCode int
		expectLookup bool
		expectCreate bool
	}{
		{
			name:         "creates a pending request",
			receiverId:   receiverId.Hex(),
			expectedCode: http.StatusCreated,
			expectLookup: true,
			expectCreate: true,
		},
		{
			name:         "cannot friend self",
			receiverId:   senderId.Hex(),
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "fails when the receiver does not exist",
			receiverId:   receiverId.Hex(),
			receiverErr:  mongo.ErrNoDocuments,
			expectedCode: http.StatusNotFound,
			expectLookup: true,
		},
		{
			name:         "conflicts with an active request",
			receiverId:   receiverId.Hex(),
			exists:       true,
			expectedCode: http.StatusConflict,
			expectLookup: true,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockCampusChatRepository{}
			defer mockRepo.AssertExpectations(t)

			if tc.expectLookup {
				mockRepo.On("GetUserById", mock.Anything, tc.receiverId).
					Return(database.User{Id: receiverId}, tc.receiverErr).Once()
			}

			if tc.receiverErr == nil && tc.expectLookup {
				mockRepo.On("ActiveFriendRequestExists", mock.Anything, senderId.Hex(), tc.receiverId).
					Return(tc.exists, nil).Once()
			}

			if tc.expectCreate {
				mockRepo.On("CreateFriendRequest", mock.Anything, senderId.Hex(), tc.receiverId).
					Return(database.FriendRequest{
						Id:       primitive.NewObjectID(),
						Sender:   senderId,
						Receiver: receiverId,
						Status:   database.FriendStatusPending,
					}, nil).Once()
			}

			app := newTestApp(t, mockRepo, nil, nil, nil)

			rr := httptest.NewRecorder()
			req := authedRequest(t, http.MethodPost, "/api/friends/request",
				FriendRequestRequest{ReceiverId: tc.receiverId}, types.User{Id: senderId.Hex()})
			app.sendFriendRequest(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code)
		})
	}
}

func TestResolveFriendRequest(t *testing.T) {
	senderId := primitive.NewObjectID()
	receiverId := primitive.NewObjectID()
	requestId := primitive.NewObjectID()

	tcases := []struct {
		name         string
		caller       string
		status       string
		expectedCode int
		expectUpdate bool
	}{
		{
			name:         "receiver accepts a pending request",
			caller:       receiverId.Hex(),
			status:       database.FriendStatusPending,
			expectedCode: http.StatusOK,
			expectUpdate: true,
		},
		{
			name:         "sender cannot resolve",
			caller:       senderId.Hex(),
			status:       database.FriendStatusPending,
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "resolved requests stay put",
			caller:       receiverId.Hex(),
			status:       database.FriendStatusRejected,
			expectedCode: http.StatusConflict,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockCampusChatRepository{}
			defer mockRepo.AssertExpectations(t)

			mockRepo.On("GetFriendRequest", mock.Anything, requestId.Hex()).
				Return(database.FriendRequest{
					Id:       requestId,
					Sender:   senderId,
					Receiver: receiverId,
					Status:   tc.status,
				}, nil).Once()

			if tc.expectUpdate {
				mockRepo.On("UpdateFriendRequestStatus", mock.Anything, requestId.Hex(), database.FriendStatusAccepted).
					Return(database.FriendRequest{
						Id:       requestId,
						Sender:   senderId,
						Receiver: receiverId,
						Status:   database.FriendStatusAccepted,
					}, nil).Once()
			}

			app := newTestApp(t, mockRepo, nil, nil, nil)

			rr := httptest.NewRecorder()
			req := authedRequest(t, http.MethodPut, "/api/friends/accept/"+requestId.Hex(), nil,
				types.User{Id: tc.caller})
			req.SetPathValue("id", requestId.Hex())
			app.acceptFriendRequest(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code)
		})
	}
}

func TestGetFriends_FilteredByScope(t *testing.T) {
	userId := primitive.NewObjectID()
	sameScopeId := primitive.NewObjectID()
	otherScopeId := primitive.NewObjectID()
	deletedId := primitive.NewObjectID()

	user := types.User{Id: userId.Hex(), Course: "BCA", Semester: "3"}

	mockRepo := &database.MockCampusChatRepository{}
	defer mockRepo.AssertExpectations(t)

	mockRepo.On("ListAcceptedFriendRequests", mock.Anything, userId.Hex()).
		Return([]database.FriendRequest{
			{Id: primitive.NewObjectID(), Sender: userId, Receiver: sameScopeId, Status: database.FriendStatusAccepted},
			{Id: primitive.NewObjectID(), Sender: otherScopeId, Receiver: userId, Status: database.FriendStatusAccepted},
			{Id: primitive.NewObjectID(), Sender: userId, Receiver: deletedId, Status: database.FriendStatusAccepted},
		}, nil).Once()

	mockRepo.On("GetUserById", mock.Anything, sameScopeId.Hex()).
		Return(database.User{Id: sameScopeId, FullName: "Same Scope", Course: "BCA", Semester: "3"}, nil).Once()
	mockRepo.On("GetUserById", mock.Anything, otherScopeId.Hex()).
		Return(database.User{Id: otherScopeId, FullName: "Moved On", Course: "BCA", Semester: "4"}, nil).Once()
	mockRepo.On("GetUserById", mock.Anything, deletedId.Hex()).
		Return(database.User{}, mongo.ErrNoDocuments).Once()

	app := newTestApp(t, mockRepo, nil, nil, nil)

	rr := httptest.NewRecorder()
	req := authedRequest(t, http.MethodGet, "/api/friends", nil, user)
	app.getFriends(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Same Scope")
	assert.NotContains(t, rr.Body.String(), "Moved On")
}

func TestGetIncomingFriendRequests(t *testing.T) {
	userId := primitive.NewObjectID()
	senderId := primitive.NewObjectID()

	mockRepo := &database.MockCampusChatRepository{}
	defer mockRepo.AssertExpectations(t)

	mockRepo.On("ListIncomingFriendRequests", mock.Anything, userId.Hex()).
		Return([]database.FriendRequest{
			{Id: primitive.NewObjectID(), Sender: senderId, Receiver: userId, Status: database.FriendStatusPending},
		}, nil).Once()
	mockRepo.On("GetUserById", mock.Anything, senderId.Hex()).
		Return(database.User{Id: senderId, FullName: "Requester"}, nil).Once()

	app := newTestApp(t, mockRepo, nil, nil, nil)

	rr := httptest.NewRecorder()
	req := authedRequest(t, http.MethodGet, "/api/friends/requests/incoming", nil,
		types.User{Id: userId.Hex()})
	app.getIncomingFriendRequests(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Requester")
}
