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
)

func TestBanUser(t *testing.T) {
	targetId := primitive.NewObjectID()

	tcases := []struct {
		name         string
		banErr       error
		expectedCode int
		expectKick   bool
	}{
		{
			name:         "bans and disconnects",
			expectedCode: http.StatusOK,
			expectKick:   true,
		},
		{
			name:         "fails when the user does not exist",
			banErr:       mongo.ErrNoDocuments,
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "fails on db error",
			banErr:       errors.New("db error"),
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockCampusChatRepository{}
			mockRt := &realtime.MockEventPublisher{}
			defer mockRepo.AssertExpectations(t)
			defer mockRt.AssertExpectations(t)

			mockRepo.On("BanUser", mock.Anything, targetId.Hex()).
				Return(tc.banErr).Once()

			if tc.expectKick {
				mockRt.On("DisconnectUser", targetId.Hex(), mock.MatchedBy(func(ev *realtime.Event) bool {
					return ev.Name == realtime.EventBanned
				})).Return(true).Once()
			}

			app := newTestApp(t, mockRepo, mockRt, nil, nil)

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/admin/ban/"+targetId.Hex(), nil)
			req.SetPathValue("id", targetId.Hex())
			app.banUser(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code)
		})
	}
}

func TestClearGroupMessages_NoFanOut(t *testing.T) {
	mockRepo := &database.MockCampusChatRepository{}
	mockRt := &realtime.MockEventPublisher{}
	defer mockRepo.AssertExpectations(t)
	defer mockRt.AssertExpectations(t)

	mockRepo.On("ClearGroupMessages", mock.Anything).
		Return(int64(42), nil).Once()

	app := newTestApp(t, mockRepo, mockRt, nil, nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/group-messages", nil)
	app.clearGroupMessages(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "42")

	// connected clients are not told, they keep stale history until refresh
	mockRt.AssertNotCalled(t, "BroadcastRoom", mock.Anything, mock.Anything)
}

func TestGetUsers(t *testing.T) {
	mockRepo := &database.MockCampusChatRepository{}
	defer mockRepo.AssertExpectations(t)

	mockRepo.On("SearchUsers", mock.Anything, "bca").
		Return([]database.User{
			{Id: primitive.NewObjectID(), FullName: "Found User", Course: "BCA"},
		}, nil).Once()

	app := newTestApp(t, mockRepo, nil, nil, nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users?search=bca", nil)
	app.getUsers(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Found User")
}

func TestGetDeletedUsers(t *testing.T) {
	mockRepo := &database.MockCampusChatRepository{}
	defer mockRepo.AssertExpectations(t)

	mockRepo.On("ListDeletedUsers", mock.Anything).
		Return([]database.DeletedUser{
			{Id: primitive.NewObjectID(), FullName: "Former User", DeletionReason: "left school"},
		}, nil).Once()

	app := newTestApp(t, mockRepo, nil, nil, nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/deleted-users", nil)
	app.getDeletedUsers(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Former User")
	assert.Contains(t, rr.Body.String(), "left school")
}

func Test_healthCheck(t *testing.T) {
	tcases := []struct {
		name    string
		mockErr error
	}{
		{
			name: "successful health check",
		},
		{
			name:    "failed health check",
			mockErr: errors.New("db error"),
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockCampusChatRepository{}
			defer mockRepo.AssertExpectations(t)

			mockRepo.On("Ping", mock.Anything).Return(tc.mockErr).Once()

			app := newTestApp(t, mockRepo, nil, nil, nil)

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			app.healthCheck(rr, req)

			if tc.mockErr != nil {
				assert.Equal(t, http.StatusInternalServerError, rr.Code)
			} else {
				assert.Equal(t, http.StatusOK, rr.Code)
			}
		})
	}
}
