package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/christianjamesnaguit/wcs-backend/backend/model"

	"github.com/stretchr/testify/assert"
)

func TestWriteCalendar(t *testing.T) {
	date, err := time.Parse("2006-01-02", "2024-05-01")
	assert.NoError(t, err)

	events := []*model.Event{
		{ID: 3, UserID: 1, Title: "Flight", Date: model.Date{Time: date}},
		{ID: 4, UserID: 1, Title: "Hotel check-in", Date: model.Date{Time: date.AddDate(0, 0, 1)}},
	}

	var buf bytes.Buffer
	err = WriteCalendar(&buf, events)
	assert.NoError(t, err)

	feed := buf.String()
	assert.Contains(t, feed, "BEGIN:VCALENDAR")
	assert.Contains(t, feed, "BEGIN:VEVENT")
	assert.Contains(t, feed, "SUMMARY:Flight")
	assert.Contains(t, feed, "SUMMARY:Hotel check-in")
	assert.Contains(t, feed, "DTSTART;VALUE=DATE:20240501")
	assert.Contains(t, feed, "UID:event-3@wcs-planner")
}
