package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"tour-booking-api/entity"
	"tour-booking-api/repository"
	"tour-booking-api/util/testdb"
)

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	user := &entity.User{SupabaseID: "sb-" + email, Email: email, Name: email}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestCategoryUniqueName(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := repository.NewCategoryRepository()

	first := &entity.Category{Name: "Mountains"}
	require.NoError(t, repo.Save(ctx, db, first))

	taken, err := repo.NameTaken(ctx, db, "Mountains", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.NameTaken(ctx, db, "Mountains", first.ID)
	require.NoError(t, err)
	assert.False(t, taken, "a category does not collide with itself")

	err = repo.Save(ctx, db, &entity.Category{Name: "Mountains"})
	assert.True(t, repository.IsUniqueConstraintViolation(err))

	var count int64
	require.NoError(t, db.Model(&entity.Category{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFavoritePairStaysUnique(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := repository.NewFavoriteRepository()
	user := seedUser(t, db, "fav@example.com")
	popular := &entity.Popular{Title: "Lake tour", Price: 10}
	require.NoError(t, db.Create(popular).Error)

	require.NoError(t, repo.Save(ctx, db, &entity.Favorite{UserID: user.ID, PopularID: popular.ID}))
	err := repo.Save(ctx, db, &entity.Favorite{UserID: user.ID, PopularID: popular.ID})
	assert.True(t, repository.IsUniqueConstraintViolation(err))

	count, err := repo.Count(ctx, db, user.ID, popular.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	removed, err := repo.Remove(ctx, db, user.ID, popular.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	removed, err = repo.Remove(ctx, db, user.ID, popular.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, removed)
}

func TestReviewUniquePerTarget(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := repository.NewReviewRepository()
	user := seedUser(t, db, "rev@example.com")
	popular := &entity.Popular{Title: "Canyon"}
	available := &entity.Available{Title: "Canyon, June"}
	require.NoError(t, db.Create(popular).Error)
	require.NoError(t, db.Create(available).Error)

	require.NoError(t, repo.Save(ctx, db, &entity.Review{Rating: 4, UserID: user.ID, PopularID: &popular.ID}))
	require.NoError(t, repo.Save(ctx, db, &entity.Review{Rating: 5, UserID: user.ID, AvailableID: &available.ID}))

	reviewed, err := repo.Reviewed(ctx, db, user.ID, &popular.ID, nil)
	require.NoError(t, err)
	assert.True(t, reviewed)

	err = repo.Save(ctx, db, &entity.Review{Rating: 2, UserID: user.ID, PopularID: &popular.ID})
	assert.True(t, repository.IsUniqueConstraintViolation(err))

	reviews, err := repo.FindAllWithRelations(ctx, db)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	for _, review := range reviews {
		require.NotNil(t, review.User)
		assert.Equal(t, "rev@example.com", review.User.Email)
	}
}

func TestGenericFindByIdNotFound(t *testing.T) {
	db := testdb.New(t)
	repo := repository.NewPopularRepository()

	var popular entity.Popular
	err := repo.FindById(context.Background(), db, &popular, 99)
	assert.True(t, repository.IsNotFound(err))

	exists, err := repo.ExistsById(context.Background(), db, 99)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdatesKeepsAbsentFields(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := repository.NewPopularRepository()
	popular := &entity.Popular{Title: "River", Description: "rafting", Price: 120}
	require.NoError(t, repo.Save(ctx, db, popular))

	require.NoError(t, repo.Updates(ctx, db, popular, map[string]interface{}{"price": 99.5}))

	var reloaded entity.Popular
	require.NoError(t, repo.FindById(ctx, db, &reloaded, popular.ID))
	assert.Equal(t, "River", reloaded.Title)
	assert.Equal(t, "rafting", reloaded.Description)
	assert.Equal(t, 99.5, reloaded.Price)
}

func TestDeletePopularRemovesDependants(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := repository.NewPopularRepository()
	user := seedUser(t, db, "dep@example.com")
	popular := &entity.Popular{Title: "Desert"}
	require.NoError(t, db.Create(popular).Error)
	require.NoError(t, db.Create(&entity.Favorite{UserID: user.ID, PopularID: popular.ID}).Error)
	require.NoError(t, db.Create(&entity.Review{Rating: 3, UserID: user.ID, PopularID: &popular.ID}).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		return repo.DeleteWithDependants(ctx, tx, popular)
	})
	require.NoError(t, err)

	var favorites, reviews int64
	db.Model(&entity.Favorite{}).Count(&favorites)
	db.Model(&entity.Review{}).Count(&reviews)
	assert.Zero(t, favorites)
	assert.Zero(t, reviews)
}

func TestCategoryDetach(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := repository.NewCategoryRepository()
	category := &entity.Category{Name: "Sea"}
	require.NoError(t, db.Create(category).Error)
	popular := &entity.Popular{Title: "Reef", CategoryID: &category.ID}
	require.NoError(t, db.Create(popular).Error)

	require.NoError(t, repo.Detach(ctx, db, category.ID))

	var reloaded entity.Popular
	require.NoError(t, db.First(&reloaded, popular.ID).Error)
	assert.Nil(t, reloaded.CategoryID)
}

func TestConversationAndLastMessage(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := repository.NewChatRepository()
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	carol := seedUser(t, db, "carol@example.com")

	base := time.Now().Add(-time.Hour)
	messages := []entity.PrivateMessage{
		{SenderID: alice.ID, ReceiverID: bob.ID, Message: "hi bob"},
		{SenderID: bob.ID, ReceiverID: alice.ID, Message: "hi alice"},
		{SenderID: carol.ID, ReceiverID: bob.ID, Message: "not yours"},
	}
	for i := range messages {
		messages[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Create(&messages[i]).Error)
	}

	conversation, err := repo.FindConversation(ctx, db, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, conversation, 2)
	assert.Equal(t, "hi bob", conversation[0].Message)
	assert.Equal(t, "hi alice", conversation[1].Message)

	last, err := repo.FindLastMessage(ctx, db, bob.ID, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "hi alice", last.Message)

	none, err := repo.FindLastMessage(ctx, db, alice.ID, carol.ID)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestSavePrivateMessageIsAtomic(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := repository.NewChatRepository()
	alice := seedUser(t, db, "a@example.com")
	bob := seedUser(t, db, "b@example.com")

	message := &entity.PrivateMessage{SenderID: alice.ID, ReceiverID: bob.ID, Message: "hello"}
	broken := &entity.Notification{UserID: bob.ID, SenderID: alice.ID}
	broken.ID = 1
	require.NoError(t, db.Create(&entity.Notification{UserID: bob.ID, SenderID: alice.ID, Title: "seed"}).Error)

	err := repo.SavePrivateMessage(ctx, db, message, broken)
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&entity.PrivateMessage{}).Count(&count).Error)
	assert.Zero(t, count, "the message is rolled back with the notification")
}

func TestNotificationsMarkAllRead(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := repository.NewNotificationRepository()
	alice := seedUser(t, db, "n1@example.com")
	bob := seedUser(t, db, "n2@example.com")
	require.NoError(t, db.Create(&entity.Notification{UserID: alice.ID, SenderID: bob.ID, Title: "one"}).Error)
	require.NoError(t, db.Create(&entity.Notification{UserID: alice.ID, SenderID: bob.ID, Title: "two"}).Error)
	require.NoError(t, db.Create(&entity.Notification{UserID: bob.ID, SenderID: alice.ID, Title: "other"}).Error)

	updated, err := repo.MarkAllRead(ctx, db, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated)

	updated, err = repo.MarkAllRead(ctx, db, alice.ID)
	require.NoError(t, err)
	assert.Zero(t, updated)

	unread, err := repo.FindByUser(ctx, db, alice.ID, false)
	require.NoError(t, err)
	assert.Empty(t, unread)

	all, err := repo.FindByUser(ctx, db, alice.ID, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	bobs, err := repo.FindByUser(ctx, db, bob.ID, false)
	require.NoError(t, err)
	assert.Len(t, bobs, 1)
}

func TestUserLookups(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := repository.NewUserRepository()
	user := seedUser(t, db, "  Mixed@Example.com ")
	other := seedUser(t, db, "other@example.com")

	found, err := repo.FindByEmail(ctx, db, "mixed@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	found, err = repo.FindBySupabaseID(ctx, db, "sb-other@example.com")
	require.NoError(t, err)
	assert.Equal(t, other.ID, found.ID)

	_, err = repo.FindBySupabaseID(ctx, db, "missing")
	assert.True(t, repository.IsNotFound(err))

	others, err := repo.FindAllExcept(ctx, db, user.ID)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, other.ID, others[0].ID)

	taken, err := repo.EmailTakenByOther(ctx, db, "other@example.com", user.ID)
	require.NoError(t, err)
	assert.True(t, taken)

	ids, err := repo.ExistingSupabaseIDs(ctx, db)
	require.NoError(t, err)
	assert.Contains(t, ids, "sb-other@example.com")
}

func TestSessionRepositoryWithoutRedis(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSessionRepository(nil)

	assert.False(t, repo.Enabled())
	assert.NoError(t, repo.Revoke(ctx, "session", time.Minute))

	revoked, err := repo.IsRevoked(ctx, "session")
	require.NoError(t, err)
	assert.False(t, revoked)

	assert.NoError(t, repo.CacheUserID(ctx, "subject", 3))
	id, err := repo.CachedUserID(ctx, "subject")
	require.NoError(t, err)
	assert.Zero(t, id)
	assert.NoError(t, repo.EvictUserID(ctx, "subject"))
}
