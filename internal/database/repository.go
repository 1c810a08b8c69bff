package database

import "context"

type CampusChatRepository interface {
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	GetUserById(ctx context.Context, id string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	UpdateProfilePic(ctx context.Context, id, picURL string) (User, error)
	UpdateSemester(ctx context.Context, id, semester string) (User, error)
	ListUsersByScope(ctx context.Context, course, semester, excludeId string) ([]User, error)
	SearchUsers(ctx context.Context, search string) ([]User, error)
	AddBlockedUser(ctx context.Context, userId, targetId string) error
	RemoveBlockedUser(ctx context.Context, userId, targetId string) error
	BanUser(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
	ArchiveUser(ctx context.Context, params ArchiveUserParams) (DeletedUser, error)
	ListDeletedUsers(ctx context.Context) ([]DeletedUser, error)

	CreateMessage(ctx context.Context, params CreateMessageParams) (Message, error)
	GetMessage(ctx context.Context, id string) (Message, error)
	ListConversation(ctx context.Context, userA, userB string) ([]Message, error)
	DeleteMessage(ctx context.Context, id string) error

	CreateGroupMessage(ctx context.Context, params CreateGroupMessageParams) (GroupMessage, error)
	GetGroupMessage(ctx context.Context, id string) (GroupMessage, error)
	ListGroupMessages(ctx context.Context, course, semester string) ([]GroupMessage, error)
	MarkGroupMessageRead(ctx context.Context, id, userId string) error
	DeleteGroupMessage(ctx context.Context, id string) error
	ClearGroupMessages(ctx context.Context) (int64, error)

	CreateFriendRequest(ctx context.Context, senderId, receiverId string) (FriendRequest, error)
	ActiveFriendRequestExists(ctx context.Context, userA, userB string) (bool, error)
	GetFriendRequest(ctx context.Context, id string) (FriendRequest, error)
	UpdateFriendRequestStatus(ctx context.Context, id, status string) (FriendRequest, error)
	ListIncomingFriendRequests(ctx context.Context, userId string) ([]FriendRequest, error)
	ListSentFriendRequests(ctx context.Context, userId string) ([]FriendRequest, error)
	ListAcceptedFriendRequests(ctx context.Context, userId string) ([]FriendRequest, error)

	CreateReport(ctx context.Context, params CreateReportParams) (Report, error)
	ListReports(ctx context.Context) ([]Report, error)
	MarkReportReviewed(ctx context.Context, id string) error
}
