package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrFileNotFound = errors.New("file not found")

// File is the metadata record for an uploaded binary. Path is the public
// reference ("/uploads/<stored>"); the binary itself lives on disk.
type File struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"userId" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Filename  string    `json:"filename" gorm:"size:255;not null"`
	Path      string    `json:"path" gorm:"size:255;not null"`
	Size      int64     `json:"size" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func InsertFiles(files []*File) error {
	if len(files) == 0 {
		return nil
	}
	return DB.Create(files).Error
}

func GetFilesByUser(userID int64) ([]*File, error) {
	var files []*File
	err := DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&files).Error
	return files, err
}

func GetFileForUser(id int64, userID int64) (*File, error) {
	var file File
	err := DB.Where("id = ? AND user_id = ?", id, userID).First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return &file, nil
}

func (file *File) Delete() error {
	return DB.Delete(file).Error
}
