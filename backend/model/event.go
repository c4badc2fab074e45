package model

import (
	"errors"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

// Event is a calendar entry. FolderID is optional; PlannerFiles holds
// attachment path references which may outlive the File records they point
// to (files are deleted independently).
type Event struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	UserID       int64      `json:"userId" gorm:"index;not null"`
	Date         Date       `json:"date" gorm:"type:date;index;not null"`
	Title        string     `json:"title" gorm:"size:200;not null"`
	Color        string     `json:"color" gorm:"size:50"`
	FolderID     *int64     `json:"folderId,omitempty" gorm:"index"`
	PlannerFiles StringList `json:"plannerFiles" gorm:"type:text"`
}

// GetEventsByUser lists a user's events sorted by date, optionally
// restricted to one folder.
func GetEventsByUser(userID int64, folderID *int64) ([]*Event, error) {
	query := DB.Where("user_id = ?", userID)
	if folderID != nil {
		query = query.Where("folder_id = ?", *folderID)
	}
	var events []*Event
	err := query.Order("date ASC").Find(&events).Error
	return events, err
}

func GetEventForUser(id int64, userID int64) (*Event, error) {
	var event Event
	err := DB.Where("id = ? AND user_id = ?", id, userID).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (event *Event) Insert() error {
	if event.Color == "" {
		event.Color = DefaultColor
	}
	if event.PlannerFiles == nil {
		event.PlannerFiles = StringList{}
	}
	return DB.Create(event).Error
}

func (event *Event) Update() error {
	return DB.Save(event).Error
}

func DeleteEventForUser(id int64, userID int64) error {
	res := DB.Where("id = ? AND user_id = ?", id, userID).Delete(&Event{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}
