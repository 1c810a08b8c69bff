package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campuschat/go-campuschat/internal/database"
	"github.com/campuschat/go-campuschat/internal/realtime"
	"github.com/campuschat/go-campuschat/internal/types"
)

func TestBlockUser(t *testing.T) {
	userId := primitive.NewObjectID()
	targetId := primitive.NewObjectID()

	tcases := []struct {
		name         string
		targetId     string
		mockErr      error
		expectedCode int
		expectCall   bool
	}{
		{
			name:         "blocks a user",
			targetId:     targetId.Hex(),
			expectedCode: http.StatusOK,
			expectCall:   true,
		},
		{
			name:         "cannot block self",
			targetId:     userId.Hex(),
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "fails when the caller no longer exists",
			targetId:     targetId.Hex(),
			mockErr:      mongo.ErrNoDocuments,
			expectedCode: http.StatusNotFound,
			expectCall:   true,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockCampusChatRepository{}
			defer mockRepo.AssertExpectations(t)

			if tc.expectCall {
				mockRepo.On("AddBlockedUser", mock.Anything, userId.Hex(), tc.targetId).
					Return(tc.mockErr).Once()
			}

			app := newTestApp(t, mockRepo, nil, nil, nil)

			rr := httptest.NewRecorder()
			req := authedRequest(t, http.MethodPut, "/api/users/block/"+tc.targetId, nil,
				types.User{Id: userId.Hex()})
			req.SetPathValue("id", tc.targetId)
			app.blockUser(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code)
		})
	}
}

func TestUnblockUser(t *testing.T) {
	userId := primitive.NewObjectID()
	targetId := primitive.NewObjectID()

	mockRepo := &database.MockCampusChatRepository{}
	mockRt := &realtime.MockEventPublisher{}
	defer mockRepo.AssertExpectations(t)
	defer mockRt.AssertExpectations(t)

	mockRepo.On("RemoveBlockedUser", mock.Anything, userId.Hex(), targetId.Hex()).
		Return(nil).Once()
	mockRepo.On("GetUserById", mock.Anything, userId.Hex()).
		Return(database.User{Id: userId}, nil).Once()

	// the unblocked user is told to reconnect
	mockRt.On("SendToUser", targetId.Hex(), mock.MatchedBy(func(ev *realtime.Event) bool {
		payload, ok := ev.Payload.(map[string]string)
		return ev.Name == realtime.EventUserUnblocked && ok && payload["user_id"] == userId.Hex()
	})).Return(true).Once()

	app := newTestApp(t, mockRepo, mockRt, nil, nil)

	rr := httptest.NewRecorder()
	req := authedRequest(t, http.MethodPut, "/api/users/unblock/"+targetId.Hex(), nil,
		types.User{Id: userId.Hex()})
	req.SetPathValue("id", targetId.Hex())
	app.unblockUser(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDeleteAccount(t *testing.T) {
	userId := primitive.NewObjectID()
	user := types.User{
		Id:           userId.Hex(),
		FullName:     "Leaving User",
		EmailAddress: "leaving@example.edu",
		CollegeName:  "Test College",
		Course:       "BCA",
		Semester:     "3",
	}

	tcases := []struct {
		name         string
		archiveErr   error
		deleteErr    error
		expectedCode int
		expectDelete bool
	}{
		{
			name:         "archives then deletes",
			expectedCode: http.StatusOK,
			expectDelete: true,
		},
		{
			name:         "stops when archiving fails",
			archiveErr:   errors.New("db error"),
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "reports not found when already deleted",
			deleteErr:    mongo.ErrNoDocuments,
			expectedCode: http.StatusNotFound,
			expectDelete: true,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockCampusChatRepository{}
			defer mockRepo.AssertExpectations(t)

			mockRepo.On("ArchiveUser", mock.Anything, mock.MatchedBy(func(params database.ArchiveUserParams) bool {
				return params.EmailAddress == user.EmailAddress &&
					params.DeletionReason == "graduating"
			})).Return(database.DeletedUser{Id: primitive.NewObjectID()}, tc.archiveErr).Once()

			if tc.expectDelete {
				mockRepo.On("DeleteUser", mock.Anything, userId.Hex()).
					Return(tc.deleteErr).Once()
			}

			app := newTestApp(t, mockRepo, nil, nil, nil)

			rr := httptest.NewRecorder()
			req := authedRequest(t, http.MethodDelete, "/api/users/delete-account",
				DeleteAccountRequest{Reason: "graduating"}, user)
			app.deleteAccount(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code)

			if tc.expectedCode == http.StatusOK {
				cookie := findCookie(rr, tokenCookieKey)
				assert.NotNil(t, cookie, "expected session cookie to be cleared")
				assert.Empty(t, cookie.Value)
			}
		})
	}
}
