package database

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCampusChatRepository struct {
	mock.Mock
}

func (m *MockCampusChatRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCampusChatRepository) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockCampusChatRepository) GetUserById(ctx context.Context, id string) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockCampusChatRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockCampusChatRepository) UpdateProfilePic(ctx context.Context, id, picURL string) (User, error) {
	args := m.Called(ctx, id, picURL)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockCampusChatRepository) UpdateSemester(ctx context.Context, id, semester string) (User, error) {
	args := m.Called(ctx, id, semester)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockCampusChatRepository) ListUsersByScope(ctx context.Context, course, semester, excludeId string) ([]User, error) {
	args := m.Called(ctx, course, semester, excludeId)
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockCampusChatRepository) SearchUsers(ctx context.Context, search string) ([]User, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockCampusChatRepository) AddBlockedUser(ctx context.Context, userId, targetId string) error {
	args := m.Called(ctx, userId, targetId)
	return args.Error(0)
}

func (m *MockCampusChatRepository) RemoveBlockedUser(ctx context.Context, userId, targetId string) error {
	args := m.Called(ctx, userId, targetId)
	return args.Error(0)
}

func (m *MockCampusChatRepository) BanUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCampusChatRepository) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCampusChatRepository) ArchiveUser(ctx context.Context, params ArchiveUserParams) (DeletedUser, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(DeletedUser), args.Error(1)
}

func (m *MockCampusChatRepository) ListDeletedUsers(ctx context.Context) ([]DeletedUser, error) {
	args := m.Called(ctx)
	return args.Get(0).([]DeletedUser), args.Error(1)
}

func (m *MockCampusChatRepository) CreateMessage(ctx context.Context, params CreateMessageParams) (Message, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(Message), args.Error(1)
}

func (m *MockCampusChatRepository) GetMessage(ctx context.Context, id string) (Message, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Message), args.Error(1)
}

func (m *MockCampusChatRepository) ListConversation(ctx context.Context, userA, userB string) ([]Message, error) {
	args := m.Called(ctx, userA, userB)
	return args.Get(0).([]Message), args.Error(1)
}

func (m *MockCampusChatRepository) DeleteMessage(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCampusChatRepository) CreateGroupMessage(ctx context.Context, params CreateGroupMessageParams) (GroupMessage, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(GroupMessage), args.Error(1)
}

func (m *MockCampusChatRepository) GetGroupMessage(ctx context.Context, id string) (GroupMessage, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(GroupMessage), args.Error(1)
}

func (m *MockCampusChatRepository) ListGroupMessages(ctx context.Context, course, semester string) ([]GroupMessage, error) {
	args := m.Called(ctx, course, semester)
	return args.Get(0).([]GroupMessage), args.Error(1)
}

func (m *MockCampusChatRepository) MarkGroupMessageRead(ctx context.Context, id, userId string) error {
	args := m.Called(ctx, id, userId)
	return args.Error(0)
}

func (m *MockCampusChatRepository) DeleteGroupMessage(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCampusChatRepository) ClearGroupMessages(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCampusChatRepository) CreateFriendRequest(ctx context.Context, senderId, receiverId string) (FriendRequest, error) {
	args := m.Called(ctx, senderId, receiverId)
	return args.Get(0).(FriendRequest), args.Error(1)
}

func (m *MockCampusChatRepository) ActiveFriendRequestExists(ctx context.Context, userA, userB string) (bool, error) {
	args := m.Called(ctx, userA, userB)
	return args.Bool(0), args.Error(1)
}

func (m *MockCampusChatRepository) GetFriendRequest(ctx context.Context, id string) (FriendRequest, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(FriendRequest), args.Error(1)
}

func (m *MockCampusChatRepository) UpdateFriendRequestStatus(ctx context.Context, id, status string) (FriendRequest, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(FriendRequest), args.Error(1)
}

func (m *MockCampusChatRepository) ListIncomingFriendRequests(ctx context.Context, userId string) ([]FriendRequest, error) {
	args := m.Called(ctx, userId)
	return args.Get(0).([]FriendRequest), args.Error(1)
}

func (m *MockCampusChatRepository) ListSentFriendRequests(ctx context.Context, userId string) ([]FriendRequest, error) {
	args := m.Called(ctx, userId)
	return args.Get(0).([]FriendRequest), args.Error(1)
}

func (m *MockCampusChatRepository) ListAcceptedFriendRequests(ctx context.Context, userId string) ([]FriendRequest, error) {
	args := m.Called(ctx, userId)
	return args.Get(0).([]FriendRequest), args.Error(1)
}

func (m *MockCampusChatRepository) CreateReport(ctx context.Context, params CreateReportParams) (Report, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(Report), args.Error(1)
}

func (m *MockCampusChatRepository) ListReports(ctx context.Context) ([]Report, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Report), args.Error(1)
}

func (m *MockCampusChatRepository) MarkReportReviewed(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
