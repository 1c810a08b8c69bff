package api

import (
	"github.com/campuschat/go-campuschat/internal/database"
	"github.com/campuschat/go-campuschat/internal/types"
)

func apiUser(u database.User) types.User {
	var blocked []string
	for _, id := range u.BlockedUsers {
		blocked = append(blocked, id.Hex())
	}

	return types.User{
		Id:           u.Id.Hex(),
		FullName:     u.FullName,
		EmailAddress: u.EmailAddress,
		ProfilePic:   u.ProfilePic,
		CollegeName:  u.CollegeName,
		Course:       u.Course,
		Semester:     u.Semester,
		BlockedUsers: blocked,
		IsAdmin:      u.IsAdmin,
		IsBanned:     u.IsBanned,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func apiMessage(m database.Message) types.Message {
	return types.Message{
		Id:         m.Id.Hex(),
		SenderId:   m.SenderId.Hex(),
		ReceiverId: m.ReceiverId.Hex(),
		Text:       m.Text,
		Image:      m.Image,
		File:       m.File,
		FileName:   m.FileName,
		CreatedAt:  m.CreatedAt,
	}
}

func apiGroupMessage(m database.GroupMessage) types.GroupMessage {
	var readBy []string
	for _, id := range m.IsReadBy {
		readBy = append(readBy, id.Hex())
	}

	return types.GroupMessage{
		Id:        m.Id.Hex(),
		SenderId:  m.SenderId.Hex(),
		Course:    m.Course,
		Semester:  m.Semester,
		Text:      m.Text,
		Image:     m.Image,
		File:      m.File,
		FileName:  m.FileName,
		ReadBy:    readBy,
		CreatedAt: m.CreatedAt,
	}
}

func apiFriendRequest(fr database.FriendRequest) types.FriendRequest {
	return types.FriendRequest{
		Id:         fr.Id.Hex(),
		SenderId:   fr.Sender.Hex(),
		ReceiverId: fr.Receiver.Hex(),
		Status:     fr.Status,
		CreatedAt:  fr.CreatedAt,
		UpdatedAt:  fr.UpdatedAt,
	}
}

func apiReport(r database.Report) types.Report {
	return types.Report{
		Id:                   r.Id.Hex(),
		ReportedMessageId:    r.ReportedMessage.Hex(),
		ReporterId:           r.Reporter.Hex(),
		Reason:               r.Reason,
		Description:          r.Description,
		Status:               r.Status,
		MessageText:          r.MessageText,
		MessageImage:         r.MessageImage,
		MessageFile:          r.MessageFile,
		MessageFileName:      r.MessageFileName,
		ReportedUserName:     r.ReportedUserName,
		ReportedUserEmail:    r.ReportedUserEmail,
		ReportedUserCourse:   r.ReportedUserCourse,
		ReportedUserSemester: r.ReportedUserSemester,
		ReporterName:         r.ReporterName,
		ReporterEmail:        r.ReporterEmail,
		ReporterCourse:       r.ReporterCourse,
		ReporterSemester:     r.ReporterSemester,
		CreatedAt:            r.CreatedAt,
	}
}

func apiDeletedUser(d database.DeletedUser) types.DeletedUser {
	return types.DeletedUser{
		Id:             d.Id.Hex(),
		FullName:       d.FullName,
		EmailAddress:   d.EmailAddress,
		CollegeName:    d.CollegeName,
		Course:         d.Course,
		Semester:       d.Semester,
		CreatedAt:      d.CreatedAt,
		DeletedAt:      d.DeletedAt,
		DeletionReason: d.DeletionReason,
	}
}
