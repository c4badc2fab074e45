package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/christianjamesnaguit/wcs-backend/backend/common"

	"gorm.io/gorm"
)

const DefaultAvatar = "https://placehold.co/200x200?text=User"

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User is an account record. Password is the bcrypt hash and is never
// serialized. The reset-password fields exist for schema compatibility but
// no route uses them.
type User struct {
	ID                  int64      `json:"id" gorm:"primaryKey"`
	FirstName           string     `json:"firstName" gorm:"size:50;not null"`
	LastName            string     `json:"lastName" gorm:"size:50;not null"`
	Email               string     `json:"email" gorm:"uniqueIndex;size:100;not null"`
	Username            string     `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password            string     `json:"-" gorm:"size:100;not null"`
	Avatar              string     `json:"avatar" gorm:"size:255"`
	BirthDate           *Date      `json:"birthDate,omitempty" gorm:"type:date"`
	ResetPasswordToken  string     `json:"-" gorm:"size:100"`
	ResetPasswordExpire *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

func GetUserById(id int64) (*User, error) {
	var user User
	if err := DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func IsIdentityTaken(email string, username string) (bool, error) {
	var count int64
	err := DB.Model(&User{}).Where("email = ? OR username = ?", email, username).Count(&count).Error
	return count > 0, err
}

// Insert hashes the plaintext password and creates the account.
func (user *User) Insert() error {
	hashed, err := common.Password2Hash(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed
	if user.Avatar == "" {
		user.Avatar = DefaultAvatar
	}
	return DB.Create(user).Error
}

func (user *User) Update() error {
	return DB.Save(user).Error
}

// ValidateAndFill authenticates by username or email plus plaintext
// password and fills the receiver with the stored record on success.
func (user *User) ValidateAndFill(login string, password string) error {
	var found User
	err := DB.Where("username = ? OR email = ?", login, login).First(&found).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}
	if !common.ValidatePasswordAndHash(password, found.Password) {
		return ErrInvalidCredentials
	}
	*user = found
	return nil
}

// DeleteUserCascade removes the account and everything it owns (events,
// folders, file records) in one transaction, then returns the disk paths
// of the removed file records so the caller can clean them up best-effort.
func DeleteUserCascade(userID int64) ([]string, error) {
	var paths []string
	err := DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&File{}).Where("user_id = ?", userID).Pluck("path", &paths).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&Event{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&Folder{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&File{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&User{}, userID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	common.SysLog(fmt.Sprintf("deleted account %d and %d file records", userID, len(paths)))
	return paths, nil
}
