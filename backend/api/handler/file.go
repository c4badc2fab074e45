package handler

import (
	"errors"
	"net/http"

	"github.com/christianjamesnaguit/wcs-backend/backend/common"
	apperrors "github.com/christianjamesnaguit/wcs-backend/backend/common/errors"
	"github.com/christianjamesnaguit/wcs-backend/backend/model"

	"github.com/gin-gonic/gin"
)

// UploadFiles stores one or more binaries in the upload directory and
// records their metadata. If the metadata write fails, the binaries
// already on disk are removed again.
func UploadFiles(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		common.RespError(c, http.StatusBadRequest, apperrors.MsgNoFilesUploaded)
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		common.RespError(c, http.StatusBadRequest, apperrors.MsgNoFilesUploaded)
		return
	}

	var savedPaths []string
	var records []*model.File
	for _, fileHeader := range files {
		storedName := common.StoredFileName(fileHeader.Filename)
		diskPath, err := common.SaveUploadedFile(fileHeader, common.UploadPath, storedName)
		if err != nil {
			removeSavedUploads(savedPaths)
			common.RespInternalError(c, http.StatusInternalServerError, "failed to store file", err)
			return
		}
		savedPaths = append(savedPaths, diskPath)
		records = append(records, &model.File{
			UserID:   userID,
			Name:     fileHeader.Filename,
			Filename: storedName,
			Path:     "/uploads/" + storedName,
			Size:     fileHeader.Size,
		})
	}

	if err := model.InsertFiles(records); err != nil {
		removeSavedUploads(savedPaths)
		common.RespInternalError(c, http.StatusInternalServerError, "failed to save file records", err)
		return
	}
	c.JSON(http.StatusCreated, records)
}

func GetFiles(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	files, err := model.GetFilesByUser(userID)
	if err != nil {
		common.RespInternalError(c, http.StatusInternalServerError, "failed to fetch files", err)
		return
	}
	if files == nil {
		files = []*model.File{}
	}
	c.JSON(http.StatusOK, files)
}

// DeleteFile removes the binary from disk and then the metadata record.
// Attachment references in events are left alone; they may dangle.
func DeleteFile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	fileID, ok := pathID(c)
	if !ok {
		return
	}

	file, err := model.GetFileForUser(fileID, userID)
	if err != nil {
		if errors.Is(err, model.ErrFileNotFound) {
			common.RespError(c, http.StatusNotFound, apperrors.MsgFileNotFound)
			return
		}
		common.RespInternalError(c, http.StatusInternalServerError, "failed to fetch file", err)
		return
	}

	if err := common.DeleteLocalFile(uploadDiskPath(file.Path)); err != nil {
		common.SysError("failed to remove file from disk: " + err.Error())
	}
	if err := file.Delete(); err != nil {
		common.RespInternalError(c, http.StatusInternalServerError, "failed to delete file record", err)
		return
	}
	common.RespMessage(c, http.StatusOK, "File deleted successfully")
}
