package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventDateRoundTrip(t *testing.T) {
	setupTestDB(t)

	event := &Event{UserID: 1, Title: "Flight", Date: mustDate(t, "2024-05-01")}
	assert.NoError(t, event.Insert())

	stored, err := GetEventForUser(event.ID, 1)
	assert.NoError(t, err)

	data, err := json.Marshal(stored)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"date":"2024-05-01"`)
}

func TestEventDateAcceptsTimestamps(t *testing.T) {
	var d Date
	assert.NoError(t, d.UnmarshalJSON([]byte(`"2024-05-01T15:04:05Z"`)))

	data, err := d.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"2024-05-01"`, string(data))
}

func TestGetEventsByUser_SortedAndFiltered(t *testing.T) {
	setupTestDB(t)

	const owner = int64(1)
	folder := mustInsertFolder(t, owner, "Trip")

	later := &Event{UserID: owner, Title: "later", Date: mustDate(t, "2024-06-02"), FolderID: &folder.ID}
	assert.NoError(t, later.Insert())
	earlier := &Event{UserID: owner, Title: "earlier", Date: mustDate(t, "2024-06-01"), FolderID: &folder.ID}
	assert.NoError(t, earlier.Insert())
	mustInsertEvent(t, owner, "elsewhere", nil)
	mustInsertEvent(t, owner+1, "not mine", &folder.ID)

	all, err := GetEventsByUser(owner, nil)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	inFolder, err := GetEventsByUser(owner, &folder.ID)
	assert.NoError(t, err)
	assert.Len(t, inFolder, 2)
	assert.Equal(t, "earlier", inFolder[0].Title)
	assert.Equal(t, "later", inFolder[1].Title)
}

func TestEventPlannerFilesDefaultsToEmptyList(t *testing.T) {
	setupTestDB(t)

	event := &Event{UserID: 1, Title: "no files", Date: mustDate(t, "2024-05-01")}
	assert.NoError(t, event.Insert())

	stored, err := GetEventForUser(event.ID, 1)
	assert.NoError(t, err)

	data, err := json.Marshal(stored)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"plannerFiles":[]`)
}

func TestDeleteEventForUser_OwnerScoped(t *testing.T) {
	setupTestDB(t)

	event := mustInsertEvent(t, 1, "mine", nil)

	assert.ErrorIs(t, DeleteEventForUser(event.ID, 2), ErrEventNotFound)
	assert.NoError(t, DeleteEventForUser(event.ID, 1))
	assert.ErrorIs(t, DeleteEventForUser(event.ID, 1), ErrEventNotFound)
}
