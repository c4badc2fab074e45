package model

import (
	"path/filepath"
	"testing"

	"github.com/christianjamesnaguit/wcs-backend/backend/common"

	"github.com/stretchr/testify/assert"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	originalPath := common.SQLitePath
	common.SQLitePath = filepath.Join(t.TempDir(), "model_test.db")

	err := InitDB()
	assert.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, CloseDB())
		common.SQLitePath = originalPath
	})
}

func mustInsertFolder(t *testing.T, userID int64, name string) *Folder {
	t.Helper()
	folder := &Folder{UserID: userID, Name: name}
	assert.NoError(t, folder.Insert())
	return folder
}

func mustInsertEvent(t *testing.T, userID int64, title string, folderID *int64) *Event {
	t.Helper()
	event := &Event{UserID: userID, Title: title, Date: mustDate(t, "2024-05-01"), FolderID: folderID}
	assert.NoError(t, event.Insert())
	return event
}

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	var d Date
	assert.NoError(t, d.UnmarshalJSON([]byte(`"`+s+`"`)))
	return d
}

func countEvents(t *testing.T, where string, args ...any) int64 {
	t.Helper()
	var count int64
	assert.NoError(t, DB.Model(&Event{}).Where(where, args...).Count(&count).Error)
	return count
}

func TestDeleteFolderWithEvents_RemovesAllDependents(t *testing.T) {
	setupTestDB(t)

	const owner = int64(1)
	trip := mustInsertFolder(t, owner, "Trip")
	other := mustInsertFolder(t, owner, "Other")

	for i := 0; i < 3; i++ {
		mustInsertEvent(t, owner, "trip event", &trip.ID)
	}
	kept := mustInsertEvent(t, owner, "other event", &other.ID)
	loose := mustInsertEvent(t, owner, "no folder", nil)

	err := DeleteFolderWithEvents(trip.ID, owner)
	assert.NoError(t, err)

	assert.EqualValues(t, 0, countEvents(t, "folder_id = ?", trip.ID))

	var folderCount int64
	assert.NoError(t, DB.Model(&Folder{}).Where("id = ?", trip.ID).Count(&folderCount).Error)
	assert.EqualValues(t, 0, folderCount)

	// Unrelated records survive.
	assert.EqualValues(t, 1, countEvents(t, "id = ?", kept.ID))
	assert.EqualValues(t, 1, countEvents(t, "id = ?", loose.ID))
}

func TestDeleteFolderWithEvents_UnknownFolder(t *testing.T) {
	setupTestDB(t)

	const owner = int64(1)
	folder := mustInsertFolder(t, owner, "Keep")
	mustInsertEvent(t, owner, "keep event", &folder.ID)

	err := DeleteFolderWithEvents(9999, owner)
	assert.ErrorIs(t, err, ErrFolderNotFound)

	assert.EqualValues(t, 1, countEvents(t, "folder_id = ?", folder.ID))
}

func TestDeleteFolderWithEvents_WrongOwnerMutatesNothing(t *testing.T) {
	setupTestDB(t)

	const userA = int64(1)
	const userB = int64(2)

	work := mustInsertFolder(t, userA, "Work")
	mustInsertEvent(t, userA, "meeting", &work.ID)
	// An event of B's that happens to reference A's folder id: the failed
	// delete must roll its removal back too.
	strayB := mustInsertEvent(t, userB, "stray", &work.ID)

	err := DeleteFolderWithEvents(work.ID, userB)
	assert.ErrorIs(t, err, ErrFolderNotFound)

	folders, err := GetFoldersByUser(userA)
	assert.NoError(t, err)
	assert.Len(t, folders, 1)
	assert.Equal(t, "Work", folders[0].Name)

	assert.EqualValues(t, 1, countEvents(t, "user_id = ? AND folder_id = ?", userA, work.ID))
	assert.EqualValues(t, 1, countEvents(t, "id = ?", strayB.ID))
}

func TestDeleteUserCascade(t *testing.T) {
	setupTestDB(t)

	user := &User{FirstName: "Ada", LastName: "L", Email: "ada@example.com", Username: "ada", Password: "secret123"}
	assert.NoError(t, user.Insert())

	folder := mustInsertFolder(t, user.ID, "Personal")
	mustInsertEvent(t, user.ID, "errand", &folder.ID)
	assert.NoError(t, InsertFiles([]*File{{UserID: user.ID, Name: "a.txt", Filename: "1-a.txt", Path: "/uploads/1-a.txt", Size: 3}}))

	// Another user's data must not be touched.
	bystander := mustInsertFolder(t, user.ID+1, "Bystander")

	paths, err := DeleteUserCascade(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"/uploads/1-a.txt"}, paths)

	_, err = GetUserById(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.EqualValues(t, 0, countEvents(t, "user_id = ?", user.ID))

	folders, err := GetFoldersByUser(bystander.UserID)
	assert.NoError(t, err)
	assert.Len(t, folders, 1)
}

func TestDeleteUserCascade_UnknownUser(t *testing.T) {
	setupTestDB(t)

	_, err := DeleteUserCascade(404)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
