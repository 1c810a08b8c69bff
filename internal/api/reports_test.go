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

func TestCreateReport(t *testing.T) {
	reporterId := primitive.NewObjectID()
	senderId := primitive.NewObjectID()
	messageId := primitive.NewObjectID()

	reporter := types.User{
		Id:           reporterId.Hex(),
		FullName:     "Reporter",
		EmailAddress: "reporter@example.edu",
		Course:       "BCA",
		Semester:     "3",
	}

	t.Run("reports a group message", func(t *testing.T) {
		mockRepo := &database.MockCampusChatRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetGroupMessage", mock.Anything, messageId.Hex()).
			Return(database.GroupMessage{
				Id:       messageId,
				SenderId: senderId,
				Text:     "offensive text",
			}, nil).Once()
		mockRepo.On("GetUserById", mock.Anything, senderId.Hex()).
			Return(database.User{
				Id:           senderId,
				FullName:     "Offender",
				EmailAddress: "offender@example.edu",
			}, nil).Once()
		mockRepo.On("CreateReport", mock.Anything, mock.MatchedBy(func(params database.CreateReportParams) bool {
			return params.ReportedMessageId == messageId.Hex() &&
				params.MessageText == "offensive text" &&
				params.ReportedUserName == "Offender" &&
				params.ReporterName == reporter.FullName
		})).Return(database.Report{
			Id:     primitive.NewObjectID(),
			Status: database.ReportStatusPending,
		}, nil).Once()

		app := newTestApp(t, mockRepo, nil, nil, nil)

		rr := httptest.NewRecorder()
		req := authedRequest(t, http.MethodPost, "/api/reports",
			CreateReportRequest{ReportedMessageId: messageId.Hex(), Reason: "abuse"}, reporter)
		app.createReport(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("falls back to the direct message collection", func(t *testing.T) {
		mockRepo := &database.MockCampusChatRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetGroupMessage", mock.Anything, messageId.Hex()).
			Return(database.GroupMessage{}, mongo.ErrNoDocuments).Once()
		mockRepo.On("GetMessage", mock.Anything, messageId.Hex()).
			Return(database.Message{
				Id:       messageId,
				SenderId: senderId,
				Text:     "direct offense",
			}, nil).Once()
		mockRepo.On("GetUserById", mock.Anything, senderId.Hex()).
			Return(database.User{}, mongo.ErrNoDocuments).Once()
		mockRepo.On("CreateReport", mock.Anything, mock.MatchedBy(func(params database.CreateReportParams) bool {
			// the sender deleted their account, snapshot falls back to placeholders
			return params.MessageText == "direct offense" &&
				params.ReportedUserName == "Unknown User" &&
				params.ReportedUserEmail == "Unknown"
		})).Return(database.Report{Id: primitive.NewObjectID()}, nil).Once()

		app := newTestApp(t, mockRepo, nil, nil, nil)

		rr := httptest.NewRecorder()
		req := authedRequest(t, http.MethodPost, "/api/reports",
			CreateReportRequest{ReportedMessageId: messageId.Hex(), Reason: "abuse"}, reporter)
		app.createReport(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("fails when the message does not exist anywhere", func(t *testing.T) {
		mockRepo := &database.MockCampusChatRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetGroupMessage", mock.Anything, messageId.Hex()).
			Return(database.GroupMessage{}, mongo.ErrNoDocuments).Once()
		mockRepo.On("GetMessage", mock.Anything, messageId.Hex()).
			Return(database.Message{}, mongo.ErrNoDocuments).Once()

		app := newTestApp(t, mockRepo, nil, nil, nil)

		rr := httptest.NewRecorder()
		req := authedRequest(t, http.MethodPost, "/api/reports",
			CreateReportRequest{ReportedMessageId: messageId.Hex(), Reason: "abuse"}, reporter)
		app.createReport(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("fails with missing reason", func(t *testing.T) {
		app := newTestApp(t, &database.MockCampusChatRepository{}, nil, nil, nil)

		rr := httptest.NewRecorder()
		req := authedRequest(t, http.MethodPost, "/api/reports",
			CreateReportRequest{ReportedMessageId: messageId.Hex()}, reporter)
		app.createReport(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestReviewReport(t *testing.T) {
	reportId := primitive.NewObjectID()

	tcases := []struct {
		name         string
		mockErr      error
		expectedCode int
	}{
		{
			name:         "marks a report reviewed",
			expectedCode: http.StatusOK,
		},
		{
			name:         "fails when the report does not exist",
			mockErr:      mongo.ErrNoDocuments,
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockCampusChatRepository{}
			defer mockRepo.AssertExpectations(t)

			mockRepo.On("MarkReportReviewed", mock.Anything, reportId.Hex()).
				Return(tc.mockErr).Once()

			app := newTestApp(t, mockRepo, nil, nil, nil)

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/reports/"+reportId.Hex()+"/review", nil)
			req.SetPathValue("id", reportId.Hex())
			app.reviewReport(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code)
		})
	}
}

func TestGetReports(t *testing.T) {
	mockRepo := &database.MockCampusChatRepository{}
	defer mockRepo.AssertExpectations(t)

	mockRepo.On("ListReports", mock.Anything).
		Return([]database.Report{
			{Id: primitive.NewObjectID(), Reason: "spam", Status: database.ReportStatusPending},
		}, nil).Once()

	app := newTestApp(t, mockRepo, nil, nil, nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
	app.getReports(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "spam")
}
