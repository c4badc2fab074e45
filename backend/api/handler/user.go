package handler

import (
	"errors"
	"net/http"

	"github.com/christianjamesnaguit/wcs-backend/backend/common"
	apperrors "github.com/christianjamesnaguit/wcs-backend/backend/common/errors"
	"github.com/christianjamesnaguit/wcs-backend/backend/model"

	"github.com/gin-gonic/gin"
)

// GetSelf returns the authenticated user's profile. A valid token whose
// account no longer exists gets a 404 here.
func GetSelf(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	user, err := model.GetUserById(userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			common.RespError(c, http.StatusNotFound, apperrors.MsgUserNotFound)
			return
		}
		common.RespInternalError(c, http.StatusInternalServerError, "failed to fetch user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateSelfRequest uses pointers so "not provided" and "empty" are
// distinguishable. Id and owner fields are not part of the payload, so a
// client cannot reassign either.
type UpdateSelfRequest struct {
	FirstName *string     `json:"firstName" validate:"omitempty,max=50"`
	LastName  *string     `json:"lastName" validate:"omitempty,max=50"`
	Email     *string     `json:"email" validate:"omitempty,email"`
	Username  *string     `json:"username" validate:"omitempty,max=50"`
	BirthDate *model.Date `json:"birthDate"`
}

func UpdateSelf(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req UpdateSelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespError(c, http.StatusBadRequest, apperrors.MsgInvalidEventData)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		common.RespError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := model.GetUserById(userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			common.RespError(c, http.StatusNotFound, apperrors.MsgUserNotFound)
			return
		}
		common.RespInternalError(c, http.StatusInternalServerError, "failed to fetch user", err)
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.BirthDate != nil {
		user.BirthDate = req.BirthDate
	}

	if err := user.Update(); err != nil {
		common.RespInternalError(c, http.StatusInternalServerError, "failed to update user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UploadAvatar stores a new avatar image and updates the profile reference.
func UploadAvatar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		common.RespError(c, http.StatusBadRequest, apperrors.MsgNoAvatarUploaded)
		return
	}

	user, err := model.GetUserById(userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			common.RespError(c, http.StatusNotFound, apperrors.MsgUserNotFound)
			return
		}
		common.RespInternalError(c, http.StatusInternalServerError, "failed to fetch user", err)
		return
	}

	storedName := common.AvatarFileName(fileHeader.Filename)
	if _, err := common.SaveUploadedFile(fileHeader, common.AvatarPath, storedName); err != nil {
		common.RespInternalError(c, http.StatusInternalServerError, "failed to store avatar", err)
		return
	}

	user.Avatar = "/avatars/" + storedName
	if err := user.Update(); err != nil {
		common.RespInternalError(c, http.StatusInternalServerError, "failed to update user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar": user.Avatar})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword verifies the current password before replacing it.
func ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CurrentPassword == "" || req.NewPassword == "" {
		common.RespError(c, http.StatusBadRequest, apperrors.MsgMissingPasswords)
		return
	}

	user, err := model.GetUserById(userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			common.RespError(c, http.StatusNotFound, apperrors.MsgUserNotFound)
			return
		}
		common.RespInternalError(c, http.StatusInternalServerError, "failed to fetch user", err)
		return
	}

	if !common.ValidatePasswordAndHash(req.CurrentPassword, user.Password) {
		common.RespError(c, http.StatusUnauthorized, apperrors.MsgWrongCurrentPassword)
		return
	}

	hashed, err := common.Password2Hash(req.NewPassword)
	if err != nil {
		common.RespInternalError(c, http.StatusInternalServerError, "failed to update password", err)
		return
	}
	user.Password = hashed
	if err := user.Update(); err != nil {
		common.RespInternalError(c, http.StatusInternalServerError, "failed to update password", err)
		return
	}
	common.RespMessage(c, http.StatusOK, "Password updated successfully")
}

// DeleteSelf removes the account together with everything it owns: events,
// folders and file records in one transaction, then the stored binaries
// from disk best-effort.
func DeleteSelf(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	paths, err := model.DeleteUserCascade(userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			common.RespError(c, http.StatusNotFound, apperrors.MsgUserNotFound)
			return
		}
		common.RespInternalError(c, http.StatusInternalServerError, "failed to delete account", err)
		return
	}
	for _, path := range paths {
		if err := common.DeleteLocalFile(uploadDiskPath(path)); err != nil {
			common.SysError("failed to remove file from disk: " + err.Error())
		}
	}
	common.RespMessage(c, http.StatusOK, "Account deleted successfully")
}
