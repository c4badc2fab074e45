package handler

import (
	"errors"
	"net/http"

	"github.com/christianjamesnaguit/wcs-backend/backend/common"
	apperrors "github.com/christianjamesnaguit/wcs-backend/backend/common/errors"
	"github.com/christianjamesnaguit/wcs-backend/backend/model"

	"github.com/gin-gonic/gin"
)

func GetFolders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	folders, err := model.GetFoldersByUser(userID)
	if err != nil {
		common.RespInternalError(c, http.StatusInternalServerError, "failed to fetch folders", err)
		return
	}
	if folders == nil {
		folders = []*model.Folder{}
	}
	c.JSON(http.StatusOK, folders)
}

type CreateFolderRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func CreateFolder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		common.RespError(c, http.StatusBadRequest, apperrors.MsgFolderNameNeeded)
		return
	}

	folder := model.Folder{
		UserID: userID,
		Name:   req.Name,
		Color:  req.Color,
	}
	if err := folder.Insert(); err != nil {
		common.RespInternalError(c, http.StatusInternalServerError, "failed to create folder", err)
		return
	}
	c.JSON(http.StatusCreated, folder)
}

// DeleteFolder removes a folder and, through the cascade in the model
// layer, every event that referenced it. 204 on success, 404 when the
// folder does not exist or belongs to another user.
func DeleteFolder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	folderID, ok := pathID(c)
	if !ok {
		return
	}

	err := model.DeleteFolderWithEvents(folderID, userID)
	if err != nil {
		if errors.Is(err, model.ErrFolderNotFound) {
			common.RespError(c, http.StatusNotFound, apperrors.MsgFolderNotFound)
			return
		}
		common.RespInternalError(c, http.StatusInternalServerError, apperrors.MsgFolderDeleteFailed, err)
		return
	}
	c.Status(http.StatusNoContent)
}
