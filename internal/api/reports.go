package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campuschat/go-campuschat/internal/database"
	"github.com/campuschat/go-campuschat/internal/types"
)

type CreateReportRequest struct {
	ReportedMessageId string `json:"reported_message_id"`
	Reason            string `json:"reason"`
	Description       string `json:"description"`
}

// createReport files a moderation report against a message. The report
// carries denormalized snapshots of the message and both users so it
// stays reviewable after the message or accounts are deleted.
func (s *CampusChatApp) createReport(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.ReportedMessageId == "" || req.Reason == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	params := database.CreateReportParams{
		ReportedMessageId: req.ReportedMessageId,
		ReporterId:        user.Id,
		Reason:            req.Reason,
		Description:       req.Description,
		ReporterName:      user.FullName,
		ReporterEmail:     user.EmailAddress,
		ReporterCourse:    user.Course,
		ReporterSemester:  user.Semester,
	}

	// the reported message may be a group or a direct message, try the
	// group collection first
	var senderId string
	if groupMsg, err := s.db.GetGroupMessage(r.Context(), req.ReportedMessageId); err == nil {
		params.MessageText = groupMsg.Text
		params.MessageImage = groupMsg.Image
		params.MessageFile = groupMsg.File
		params.MessageFileName = groupMsg.FileName
		senderId = groupMsg.SenderId.Hex()
	} else if directMsg, err := s.db.GetMessage(r.Context(), req.ReportedMessageId); err == nil {
		params.MessageText = directMsg.Text
		params.MessageImage = directMsg.Image
		params.MessageFile = directMsg.File
		params.MessageFileName = directMsg.FileName
		senderId = directMsg.SenderId.Hex()
	} else {
		errResp := NewNotFoundError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if reported, err := s.db.GetUserById(r.Context(), senderId); err == nil {
		params.ReportedUserName = reported.FullName
		params.ReportedUserEmail = reported.EmailAddress
		params.ReportedUserCourse = reported.Course
		params.ReportedUserSemester = reported.Semester
	} else {
		params.ReportedUserName = "Unknown User"
		params.ReportedUserEmail = "Unknown"
	}

	report, err := s.db.CreateReport(r.Context(), params)
	if err != nil {
		s.log.Println("create report:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusCreated, apiReport(report))
}

func (s *CampusChatApp) getReports(w http.ResponseWriter, r *http.Request) {
	dbReports, err := s.db.ListReports(r.Context())
	if err != nil {
		s.log.Println("list reports:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	reports := make([]types.Report, 0, len(dbReports))
	for _, rep := range dbReports {
		reports = append(reports, apiReport(rep))
	}

	s.writeJson(w, http.StatusOK, reports)
}

func (s *CampusChatApp) reviewReport(w http.ResponseWriter, r *http.Request) {
	reportId := r.PathValue("id")

	if err := s.db.MarkReportReviewed(r.Context(), reportId); err != nil {
		var errResp *ApiError
		if errors.Is(err, mongo.ErrNoDocuments) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, map[string]string{"message": "report reviewed"})
}
