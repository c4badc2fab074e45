package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/christianjamesnaguit/wcs-backend/backend/common"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the store handle, constructed explicitly in InitDB and closed in
// CloseDB. Model functions are the only readers of it.
var DB *gorm.DB

func InitDB() (err error) {
	if dir := filepath.Dir(common.SQLitePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}
	DB, err = gorm.Open(sqlite.Open(common.SQLitePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open database %s: %w", common.SQLitePath, err)
	}
	return DB.AutoMigrate(&User{}, &Folder{}, &Event{}, &File{})
}

func CloseDB() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
