package model

import (
	"errors"
	"fmt"

	"github.com/christianjamesnaguit/wcs-backend/backend/common"

	"gorm.io/gorm"
)

const DefaultColor = "bg-indigo-500"

var ErrFolderNotFound = errors.New("planner not found")

// Folder groups a user's events ("planner" in the UI).
type Folder struct {
	ID     int64  `json:"id" gorm:"primaryKey"`
	UserID int64  `json:"userId" gorm:"index;not null"`
	Name   string `json:"name" gorm:"size:100;not null"`
	Color  string `json:"color" gorm:"size:50"`
}

func GetFoldersByUser(userID int64) ([]*Folder, error) {
	var folders []*Folder
	err := DB.Where("user_id = ?", userID).Find(&folders).Error
	return folders, err
}

func (folder *Folder) Insert() error {
	if folder.Color == "" {
		folder.Color = DefaultColor
	}
	return DB.Create(folder).Error
}

// DeleteFolderWithEvents removes a folder and every event referencing it.
// The store has no foreign-key cascade, so referential integrity is
// enforced here, and every deletion entry point must go through this
// function. Both deletes filter by owner; a folder that does not exist or
// belongs to someone else yields ErrFolderNotFound with no mutation.
//
// Events are deleted before the folder: if the transaction tears down
// between the two steps the recoverable state is a folder without events,
// never events pointing at a deleted folder.
func DeleteFolderWithEvents(folderID int64, userID int64) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		events := tx.Where("folder_id = ? AND user_id = ?", folderID, userID).Delete(&Event{})
		if events.Error != nil {
			return events.Error
		}

		folder := tx.Where("id = ? AND user_id = ?", folderID, userID).Delete(&Folder{})
		if folder.Error != nil {
			return folder.Error
		}
		if folder.RowsAffected == 0 {
			// Rolls back the event delete as well.
			return ErrFolderNotFound
		}

		common.SysLog(fmt.Sprintf("deleted folder %d and %d associated events", folderID, events.RowsAffected))
		return nil
	})
}
