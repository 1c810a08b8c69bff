package types

import (
	"time"
)

type User struct {
	Id           string    `json:"id"`
	FullName     string    `json:"full_name"`
	EmailAddress string    `json:"email_address,omitempty"`
	Password     string    `json:"-"`
	ProfilePic   string    `json:"profile_pic,omitempty"`
	CollegeName  string    `json:"college_name,omitempty"`
	Course       string    `json:"course,omitempty"`
	Semester     string    `json:"semester,omitempty"`
	BlockedUsers []string  `json:"blocked_users,omitempty"`
	IsAdmin      bool      `json:"is_admin,omitempty"`
	IsBanned     bool      `json:"is_banned,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// HasBlocked reports whether the user's block list contains id.
func (u User) HasBlocked(id string) bool {
	for _, b := range u.BlockedUsers {
		if b == id {
			return true
		}
	}
	return false
}

// ScopeKey identifies the group-chat room shared by all users
// enrolled in the same course and semester.
type ScopeKey struct {
	Course   string `json:"course"`
	Semester string `json:"semester"`
}

func (s ScopeKey) Valid() bool {
	return s.Course != "" && s.Semester != ""
}

func (s ScopeKey) String() string {
	return s.Course + "-" + s.Semester
}

type Message struct {
	Id         string    `json:"id"`
	SenderId   string    `json:"sender_id"`
	ReceiverId string    `json:"receiver_id"`
	Text       string    `json:"text,omitempty"`
	Image      string    `json:"image,omitempty"`
	File       string    `json:"file,omitempty"`
	FileName   string    `json:"file_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type GroupMessage struct {
	Id               string    `json:"id"`
	SenderId         string    `json:"sender_id"`
	SenderName       string    `json:"sender_name,omitempty"`
	SenderProfilePic string    `json:"sender_profile_pic,omitempty"`
	Course           string    `json:"course"`
	Semester         string    `json:"semester"`
	Text             string    `json:"text,omitempty"`
	Image            string    `json:"image,omitempty"`
	File             string    `json:"file,omitempty"`
	FileName         string    `json:"file_name,omitempty"`
	ReadBy           []string  `json:"read_by,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type FriendRequest struct {
	Id         string    `json:"id"`
	SenderId   string    `json:"sender_id"`
	ReceiverId string    `json:"receiver_id"`
	Status     string    `json:"status"`
	Sender     *User     `json:"sender,omitempty"`
	Receiver   *User     `json:"receiver,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

type Report struct {
	Id                   string    `json:"id"`
	ReportedMessageId    string    `json:"reported_message_id"`
	ReporterId           string    `json:"reporter_id"`
	Reason               string    `json:"reason"`
	Description          string    `json:"description,omitempty"`
	Status               string    `json:"status"`
	MessageText          string    `json:"message_text,omitempty"`
	MessageImage         string    `json:"message_image,omitempty"`
	MessageFile          string    `json:"message_file,omitempty"`
	MessageFileName      string    `json:"message_file_name,omitempty"`
	ReportedUserName     string    `json:"reported_user_name,omitempty"`
	ReportedUserEmail    string    `json:"reported_user_email,omitempty"`
	ReportedUserCourse   string    `json:"reported_user_course,omitempty"`
	ReportedUserSemester string    `json:"reported_user_semester,omitempty"`
	ReporterName         string    `json:"reporter_name,omitempty"`
	ReporterEmail        string    `json:"reporter_email,omitempty"`
	ReporterCourse       string    `json:"reporter_course,omitempty"`
	ReporterSemester     string    `json:"reporter_semester,omitempty"`
	CreatedAt            time.Time `json:"created_at,omitempty"`
}

type DeletedUser struct {
	Id             string    `json:"id"`
	FullName       string    `json:"full_name"`
	EmailAddress   string    `json:"email_address"`
	CollegeName    string    `json:"college_name,omitempty"`
	Course         string    `json:"course,omitempty"`
	Semester       string    `json:"semester,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
	DeletedAt      time.Time `json:"deleted_at"`
	DeletionReason string    `json:"deletion_reason,omitempty"`
}
