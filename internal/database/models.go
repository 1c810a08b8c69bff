package database

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FriendStatusPending  = "pending"
	FriendStatusAccepted = "accepted"
	FriendStatusRejected = "rejected"

	ReportStatusPending  = "Pending"
	ReportStatusReviewed = "Reviewed"
)

type User struct {
	Id           primitive.ObjectID   `bson:"_id,omitempty"`
	EmailAddress string               `bson:"email"`
	FullName     string               `bson:"full_name"`
	PasswordHash string               `bson:"password"`
	ProfilePic   string               `bson:"profile_pic,omitempty"`
	CollegeName  string               `bson:"college_name"`
	Course       string               `bson:"course"`
	Semester     string               `bson:"semester"`
	BlockedUsers []primitive.ObjectID `bson:"blocked_users,omitempty"`
	IsAdmin      bool                 `bson:"is_admin"`
	IsBanned     bool                 `bson:"is_banned"`
	CreatedAt    time.Time            `bson:"created_at"`
	UpdatedAt    time.Time            `bson:"updated_at"`
}

// HasBlocked reports whether target is on the user's block list.
func (u User) HasBlocked(target primitive.ObjectID) bool {
	for _, id := range u.BlockedUsers {
		if id == target {
			return true
		}
	}
	return false
}

type DeletedUser struct {
	Id             primitive.ObjectID `bson:"_id,omitempty"`
	FullName       string             `bson:"full_name"`
	EmailAddress   string             `bson:"email"`
	CollegeName    string             `bson:"college_name"`
	Course         string             `bson:"course"`
	Semester       string             `bson:"semester"`
	CreatedAt      time.Time          `bson:"created_at"`
	DeletedAt      time.Time          `bson:"deleted_at"`
	DeletionReason string             `bson:"deletion_reason,omitempty"`
}

type Message struct {
	Id         primitive.ObjectID `bson:"_id,omitempty"`
	SenderId   primitive.ObjectID `bson:"sender_id"`
	ReceiverId primitive.ObjectID `bson:"receiver_id"`
	Text       string             `bson:"text,omitempty"`
	Image      string             `bson:"image,omitempty"`
	File       string             `bson:"file,omitempty"`
	FileName   string             `bson:"file_name,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
}

type GroupMessage struct {
	Id        primitive.ObjectID   `bson:"_id,omitempty"`
	SenderId  primitive.ObjectID   `bson:"sender_id"`
	Course    string               `bson:"course"`
	Semester  string               `bson:"semester"`
	Text      string               `bson:"text,omitempty"`
	Image     string               `bson:"image,omitempty"`
	File      string               `bson:"file,omitempty"`
	FileName  string               `bson:"file_name,omitempty"`
	IsReadBy  []primitive.ObjectID `bson:"is_read_by,omitempty"`
	CreatedAt time.Time            `bson:"created_at"`
}

type FriendRequest struct {
	Id        primitive.ObjectID `bson:"_id,omitempty"`
	Sender    primitive.ObjectID `bson:"sender"`
	Receiver  primitive.ObjectID `bson:"receiver"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

type Report struct {
	Id                   primitive.ObjectID `bson:"_id,omitempty"`
	ReportedMessage      primitive.ObjectID `bson:"reported_message"`
	Reporter             primitive.ObjectID `bson:"reporter"`
	Reason               string             `bson:"reason"`
	Description          string             `bson:"description,omitempty"`
	Status               string             `bson:"status"`
	MessageText          string             `bson:"message_text,omitempty"`
	MessageImage         string             `bson:"message_image,omitempty"`
	MessageFile          string             `bson:"message_file,omitempty"`
	MessageFileName      string             `bson:"message_file_name,omitempty"`
	ReportedUserName     string             `bson:"reported_user_name,omitempty"`
	ReportedUserEmail    string             `bson:"reported_user_email,omitempty"`
	ReportedUserCourse   string             `bson:"reported_user_course,omitempty"`
	ReportedUserSemester string             `bson:"reported_user_semester,omitempty"`
	ReporterName         string             `bson:"reporter_name,omitempty"`
	ReporterEmail        string             `bson:"reporter_email,omitempty"`
	ReporterCourse       string             `bson:"reporter_course,omitempty"`
	ReporterSemester     string             `bson:"reporter_semester,omitempty"`
	CreatedAt            time.Time          `bson:"created_at"`
}

type CreateUserParams struct {
	FullName     string
	EmailAddress string
	PasswordHash string
	CollegeName  string
	Course       string
	Semester     string
}

type CreateMessageParams struct {
	SenderId   string
	ReceiverId string
	Text       string
	Image      string
	File       string
	FileName   string
}

type CreateGroupMessageParams struct {
	SenderId string
	Course   string
	Semester string
	Text     string
	Image    string
	File     string
	FileName string
}

type ArchiveUserParams struct {
	FullName       string
	EmailAddress   string
	CollegeName    string
	Course         string
	Semester       string
	CreatedAt      time.Time
	DeletionReason string
}

type CreateReportParams struct {
	ReportedMessageId    string
	ReporterId           string
	Reason               string
	Description          string
	MessageText          string
	MessageImage         string
	MessageFile          string
	MessageFileName      string
	ReportedUserName     string
	ReportedUserEmail    string
	ReportedUserCourse   string
	ReportedUserSemester string
	ReporterName         string
	ReporterEmail        string
	ReporterCourse       string
	ReporterSemester     string
}
