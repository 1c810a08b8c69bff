package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoCampusChatRepository) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	now := time.Now().UTC()
	user := User{
		Id:           primitive.NewObjectID(),
		FullName:     params.FullName,
		EmailAddress: params.EmailAddress,
		PasswordHash: params.PasswordHash,
		CollegeName:  params.CollegeName,
		Course:       params.Course,
		Semester:     params.Semester,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := r.db.Collection(usersCollection).InsertOne(ctx, user); err != nil {
		return User{}, err
	}

	return user, nil
}

func (r *MongoCampusChatRepository) GetUserById(ctx context.Context, id string) (User, error) {
	oid, err := objectId(id)
	if err != nil {
		return User{}, err
	}

	var user User
	err = r.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	return user, err
}

func (r *MongoCampusChatRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := r.db.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	return user, err
}

func (r *MongoCampusChatRepository) updateUser(ctx context.Context, oid primitive.ObjectID, set bson.M) (User, error) {
	set["updated_at"] = time.Now().UTC()

	var user User
	err := r.db.Collection(usersCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)

	return user, err
}

func (r *MongoCampusChatRepository) UpdateProfilePic(ctx context.Context, id, picURL string) (User, error) {
	oid, err := objectId(id)
	if err != nil {
		return User{}, err
	}
	return r.updateUser(ctx, oid, bson.M{"profile_pic": picURL})
}

func (r *MongoCampusChatRepository) UpdateSemester(ctx context.Context, id, semester string) (User, error) {
	oid, err := objectId(id)
	if err != nil {
		return User{}, err
	}
	return r.updateUser(ctx, oid, bson.M{"semester": semester})
}

func (r *MongoCampusChatRepository) ListUsersByScope(ctx context.Context, course, semester, excludeId string) ([]User, error) {
	filter := bson.M{
		"course":   course,
		"semester": semester,
	}
	if oid, err := objectId(excludeId); err == nil {
		filter["_id"] = bson.M{"$ne": oid}
	}

	cur, err := r.db.Collection(usersCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var users []User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoCampusChatRepository) SearchUsers(ctx context.Context, search string) ([]User, error) {
	filter := bson.M{}
	if search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"full_name": regex},
			bson.M{"email": regex},
			bson.M{"course": regex},
			bson.M{"semester": regex},
		}
	}

	cur, err := r.db.Collection(usersCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var users []User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoCampusChatRepository) AddBlockedUser(ctx context.Context, userId, targetId string) error {
	oid, err := objectId(userId)
	if err != nil {
		return err
	}
	target, err := objectId(targetId)
	if err != nil {
		return err
	}

	res, err := r.db.Collection(usersCollection).UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{
			"$addToSet": bson.M{"blocked_users": target},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoCampusChatRepository) RemoveBlockedUser(ctx context.Context, userId, targetId string) error {
	oid, err := objectId(userId)
	if err != nil {
		return err
	}
	target, err := objectId(targetId)
	if err != nil {
		return err
	}

	res, err := r.db.Collection(usersCollection).UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{
			"$pull": bson.M{"blocked_users": target},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// BanUser flags the account permanently. There is no inverse operation.
func (r *MongoCampusChatRepository) BanUser(ctx context.Context, id string) error {
	oid, err := objectId(id)
	if err != nil {
		return err
	}

	res, err := r.db.Collection(usersCollection).UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"is_banned": true, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoCampusChatRepository) DeleteUser(ctx context.Context, id string) error {
	oid, err := objectId(id)
	if err != nil {
		return err
	}

	res, err := r.db.Collection(usersCollection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoCampusChatRepository) ArchiveUser(ctx context.Context, params ArchiveUserParams) (DeletedUser, error) {
	archived := DeletedUser{
		Id:             primitive.NewObjectID(),
		FullName:       params.FullName,
		EmailAddress:   params.EmailAddress,
		CollegeName:    params.CollegeName,
		Course:         params.Course,
		Semester:       params.Semester,
		CreatedAt:      params.CreatedAt,
		DeletedAt:      time.Now().UTC(),
		DeletionReason: params.DeletionReason,
	}

	if _, err := r.db.Collection(deletedUsersCollection).InsertOne(ctx, archived); err != nil {
		return DeletedUser{}, err
	}

	return archived, nil
}

func (r *MongoCampusChatRepository) ListDeletedUsers(ctx context.Context) ([]DeletedUser, error) {
	cur, err := r.db.Collection(deletedUsersCollection).Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "deleted_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}

	var archived []DeletedUser
	if err := cur.All(ctx, &archived); err != nil {
		return nil, err
	}
	return archived, nil
}

func (r *MongoCampusChatRepository) CreateMessage(ctx context.Context, params CreateMessageParams) (Message, error) {
	sender, err := objectId(params.SenderId)
	if err != nil {
		return Message{}, err
	}
	receiver, err := objectId(params.ReceiverId)
	if err != nil {
		return Message{}, err
	}

	msg := Message{
		Id:         primitive.NewObjectID(),
		SenderId:   sender,
		ReceiverId: receiver,
		Text:       params.Text,
		Image:      params.Image,
		File:       params.File,
		FileName:   params.FileName,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := r.db.Collection(messagesCollection).InsertOne(ctx, msg); err != nil {
		return Message{}, err
	}

	return msg, nil
}

func (r *MongoCampusChatRepository) GetMessage(ctx context.Context, id string) (Message, error) {
	oid, err := objectId(id)
	if err != nil {
		return Message{}, err
	}

	var msg Message
	err = r.db.Collection(messagesCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&msg)
	return msg, err
}

func (r *MongoCampusChatRepository) ListConversation(ctx context.Context, userA, userB string) ([]Message, error) {
	a, err := objectId(userA)
	if err != nil {
		return nil, err
	}
	b, err := objectId(userB)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"$or": bson.A{
		bson.M{"sender_id": a, "receiver_id": b},
		bson.M{"sender_id": b, "receiver_id": a},
	}}

	cur, err := r.db.Collection(messagesCollection).Find(
		ctx,
		filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}

	var messages []Message
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MongoCampusChatRepository) DeleteMessage(ctx context.Context, id string) error {
	oid, err := objectId(id)
	if err != nil {
		return err
	}

	res, err := r.db.Collection(messagesCollection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoCampusChatRepository) CreateGroupMessage(ctx context.Context, params CreateGroupMessageParams) (GroupMessage, error) {
	sender, err := objectId(params.SenderId)
	if err != nil {
		return GroupMessage{}, err
	}

	msg := GroupMessage{
		Id:        primitive.NewObjectID(),
		SenderId:  sender,
		Course:    params.Course,
		Semester:  params.Semester,
		Text:      params.Text,
		Image:     params.Image,
		File:      params.File,
		FileName:  params.FileName,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := r.db.Collection(groupMessagesCollection).InsertOne(ctx, msg); err != nil {
		return GroupMessage{}, err
	}

	return msg, nil
}

func (r *MongoCampusChatRepository) GetGroupMessage(ctx context.Context, id string) (GroupMessage, error) {
	oid, err := objectId(id)
	if err != nil {
		return GroupMessage{}, err
	}

	var msg GroupMessage
	err = r.db.Collection(groupMessagesCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&msg)
	return msg, err
}

func (r *MongoCampusChatRepository) ListGroupMessages(ctx context.Context, course, semester string) ([]GroupMessage, error) {
	cur, err := r.db.Collection(groupMessagesCollection).Find(
		ctx,
		bson.M{"course": course, "semester": semester},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}

	var messages []GroupMessage
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MongoCampusChatRepository) MarkGroupMessageRead(ctx context.Context, id, userId string) error {
	oid, err := objectId(id)
	if err != nil {
		return err
	}
	reader, err := objectId(userId)
	if err != nil {
		return err
	}

	res, err := r.db.Collection(groupMessagesCollection).UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$addToSet": bson.M{"is_read_by": reader}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoCampusChatRepository) DeleteGroupMessage(ctx context.Context, id string) error {
	oid, err := objectId(id)
	if err != nil {
		return err
	}

	res, err := r.db.Collection(groupMessagesCollection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoCampusChatRepository) ClearGroupMessages(ctx context.Context) (int64, error) {
	res, err := r.db.Collection(groupMessagesCollection).DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoCampusChatRepository) CreateFriendRequest(ctx context.Context, senderId, receiverId string) (FriendRequest, error) {
	sender, err := objectId(senderId)
	if err != nil {
		return FriendRequest{}, err
	}
	receiver, err := objectId(receiverId)
	if err != nil {
		return FriendRequest{}, err
	}

	now := time.Now().UTC()
	req := FriendRequest{
		Id:        primitive.NewObjectID(),
		Sender:    sender,
		Receiver:  receiver,
		Status:    FriendStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.db.Collection(friendRequestsCollection).InsertOne(ctx, req); err != nil {
		return FriendRequest{}, err
	}

	return req, nil
}

// ActiveFriendRequestExists checks both directions of the pair for a
// pending or accepted request. This is a read, not a constraint: two
// near-simultaneous requests can still slip through.
func (r *MongoCampusChatRepository) ActiveFriendRequestExists(ctx context.Context, userA, userB string) (bool, error) {
	a, err := objectId(userA)
	if err != nil {
		return false, err
	}
	b, err := objectId(userB)
	if err != nil {
		return false, err
	}

	filter := bson.M{
		"$or": bson.A{
			bson.M{"sender": a, "receiver": b},
			bson.M{"sender": b, "receiver": a},
		},
		"status": bson.M{"$in": bson.A{FriendStatusPending, FriendStatusAccepted}},
	}

	count, err := r.db.Collection(friendRequestsCollection).CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MongoCampusChatRepository) GetFriendRequest(ctx context.Context, id string) (FriendRequest, error) {
	oid, err := objectId(id)
	if err != nil {
		return FriendRequest{}, err
	}

	var req FriendRequest
	err = r.db.Collection(friendRequestsCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&req)
	return req, err
}

func (r *MongoCampusChatRepository) UpdateFriendRequestStatus(ctx context.Context, id, status string) (FriendRequest, error) {
	oid, err := objectId(id)
	if err != nil {
		return FriendRequest{}, err
	}

	var req FriendRequest
	err = r.db.Collection(friendRequestsCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&req)

	return req, err
}

func (r *MongoCampusChatRepository) listFriendRequests(ctx context.Context, filter bson.M) ([]FriendRequest, error) {
	cur, err := r.db.Collection(friendRequestsCollection).Find(
		ctx,
		filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}

	var requests []FriendRequest
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *MongoCampusChatRepository) ListIncomingFriendRequests(ctx context.Context, userId string) ([]FriendRequest, error) {
	oid, err := objectId(userId)
	if err != nil {
		return nil, err
	}
	return r.listFriendRequests(ctx, bson.M{"receiver": oid, "status": FriendStatusPending})
}

func (r *MongoCampusChatRepository) ListSentFriendRequests(ctx context.Context, userId string) ([]FriendRequest, error) {
	oid, err := objectId(userId)
	if err != nil {
		return nil, err
	}
	return r.listFriendRequests(ctx, bson.M{"sender": oid, "status": FriendStatusPending})
}

func (r *MongoCampusChatRepository) ListAcceptedFriendRequests(ctx context.Context, userId string) ([]FriendRequest, error) {
	oid, err := objectId(userId)
	if err != nil {
		return nil, err
	}
	return r.listFriendRequests(ctx, bson.M{
		"status": FriendStatusAccepted,
		"$or":    bson.A{bson.M{"sender": oid}, bson.M{"receiver": oid}},
	})
}

func (r *MongoCampusChatRepository) CreateReport(ctx context.Context, params CreateReportParams) (Report, error) {
	message, err := objectId(params.ReportedMessageId)
	if err != nil {
		return Report{}, err
	}
	reporter, err := objectId(params.ReporterId)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Id:                   primitive.NewObjectID(),
		ReportedMessage:      message,
		Reporter:             reporter,
		Reason:               params.Reason,
		Description:          params.Description,
		Status:               ReportStatusPending,
		MessageText:          params.MessageText,
		MessageImage:         params.MessageImage,
		MessageFile:          params.MessageFile,
		MessageFileName:      params.MessageFileName,
		ReportedUserName:     params.ReportedUserName,
		ReportedUserEmail:    params.ReportedUserEmail,
		ReportedUserCourse:   params.ReportedUserCourse,
		ReportedUserSemester: params.ReportedUserSemester,
		ReporterName:         params.ReporterName,
		ReporterEmail:        params.ReporterEmail,
		ReporterCourse:       params.ReporterCourse,
		ReporterSemester:     params.ReporterSemester,
		CreatedAt:            time.Now().UTC(),
	}

	if _, err := r.db.Collection(reportsCollection).InsertOne(ctx, report); err != nil {
		return Report{}, err
	}

	return report, nil
}

func (r *MongoCampusChatRepository) ListReports(ctx context.Context) ([]Report, error) {
	cur, err := r.db.Collection(reportsCollection).Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}

	var reports []Report
	if err := cur.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *MongoCampusChatRepository) MarkReportReviewed(ctx context.Context, id string) error {
	oid, err := objectId(id)
	if err != nil {
		return err
	}

	res, err := r.db.Collection(reportsCollection).UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": ReportStatusReviewed}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
