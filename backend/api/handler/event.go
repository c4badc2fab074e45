package handler

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/christianjamesnaguit/wcs-backend/backend/common"
	apperrors "github.com/christianjamesnaguit/wcs-backend/backend/common/errors"
	"github.com/christianjamesnaguit/wcs-backend/backend/model"
	"github.com/christianjamesnaguit/wcs-backend/backend/service"

	"github.com/gin-gonic/gin"
)

// EventPayload is the client-supplied part of an event. Id and owner are
// not bindable fields, so an update body cannot reassign either.
type EventPayload struct {
	Date         *model.Date `json:"date"`
	Title        *string     `json:"title" validate:"omitempty,max=200"`
	Color        *string     `json:"color" validate:"omitempty,max=50"`
	FolderID     *int64      `json:"folderId"`
	PlannerFiles []string    `json:"plannerFiles"`
}

func GetEvents(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	folderID, ok := queryFolderID(c)
	if !ok {
		return
	}
	events, err := model.GetEventsByUser(userID, folderID)
	if err != nil {
		common.RespInternalError(c, http.StatusInternalServerError, "failed to fetch events", err)
		return
	}
	if events == nil {
		events = []*model.Event{}
	}
	c.JSON(http.StatusOK, events)
}

func CreateEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var payload EventPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		common.RespError(c, http.StatusBadRequest, apperrors.MsgInvalidEventData)
		return
	}
	if payload.Date == nil || payload.Title == nil || *payload.Title == "" {
		common.RespError(c, http.StatusBadRequest, apperrors.MsgEventFieldsNeeded)
		return
	}
	if err := common.Validate.Struct(&payload); err != nil {
		common.RespError(c, http.StatusBadRequest, err.Error())
		return
	}

	event := model.Event{
		UserID:       userID,
		Date:         *payload.Date,
		Title:        *payload.Title,
		FolderID:     payload.FolderID,
		PlannerFiles: retainedFiles(payload.PlannerFiles),
	}
	if payload.Color != nil {
		event.Color = *payload.Color
	}
	if err := event.Insert(); err != nil {
		common.RespInternalError(c, http.StatusInternalServerError, "failed to create event", err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// UpdateEvent patches an event. A plain JSON body updates fields only; a
// multipart body carries the patch in the "data" field plus new
// attachments in "files", which are appended to plannerFiles and recorded
// in the file library. If anything fails after binaries hit the disk they
// are removed again, best-effort.
func UpdateEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	eventID, ok := pathID(c)
	if !ok {
		return
	}

	var payload EventPayload
	var newFiles []*multipart.FileHeader

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		form, err := c.MultipartForm()
		if err != nil {
			common.RespError(c, http.StatusBadRequest, apperrors.MsgInvalidEventData)
			return
		}
		newFiles = form.File["files"]
		if data := c.PostForm("data"); data != "" {
			if err := json.Unmarshal([]byte(data), &payload); err != nil {
				common.RespError(c, http.StatusBadRequest, apperrors.MsgInvalidEventData)
				return
			}
		}
	} else {
		if err := c.ShouldBindJSON(&payload); err != nil {
			common.RespError(c, http.StatusBadRequest, apperrors.MsgInvalidEventData)
			return
		}
	}
	if err := common.Validate.Struct(&payload); err != nil {
		common.RespError(c, http.StatusBadRequest, err.Error())
		return
	}

	event, err := model.GetEventForUser(eventID, userID)
	if err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			common.RespError(c, http.StatusNotFound, apperrors.MsgEventNotFound)
			return
		}
		common.RespInternalError(c, http.StatusInternalServerError, "failed to fetch event", err)
		return
	}

	// Store new attachments before touching the record so a failed write
	// can still clean them up.
	var savedPaths []string
	var fileRecords []*model.File
	for _, fileHeader := range newFiles {
		storedName := common.StoredFileName(fileHeader.Filename)
		diskPath, err := common.SaveUploadedFile(fileHeader, common.UploadPath, storedName)
		if err != nil {
			removeSavedUploads(savedPaths)
			common.RespInternalError(c, http.StatusInternalServerError, "failed to store attachment", err)
			return
		}
		savedPaths = append(savedPaths, diskPath)
		fileRecords = append(fileRecords, &model.File{
			UserID:   userID,
			Name:     fileHeader.Filename,
			Filename: storedName,
			Path:     "/uploads/" + storedName,
			Size:     fileHeader.Size,
		})
	}

	if payload.Date != nil {
		event.Date = *payload.Date
	}
	if payload.Title != nil {
		event.Title = *payload.Title
	}
	if payload.Color != nil {
		event.Color = *payload.Color
	}
	if payload.FolderID != nil {
		event.FolderID = payload.FolderID
	}

	// An absent plannerFiles field leaves the attachment list alone; a
	// present one replaces it (the client sends the full retained set).
	if payload.PlannerFiles != nil || len(fileRecords) > 0 {
		finalFiles := event.PlannerFiles
		if payload.PlannerFiles != nil {
			finalFiles = retainedFiles(payload.PlannerFiles)
		}
		for _, record := range fileRecords {
			finalFiles = append(finalFiles, record.Path)
		}
		event.PlannerFiles = finalFiles
	}

	if err := event.Update(); err != nil {
		removeSavedUploads(savedPaths)
		common.RespInternalError(c, http.StatusInternalServerError, "failed to update event", err)
		return
	}
	if err := model.InsertFiles(fileRecords); err != nil {
		removeSavedUploads(savedPaths)
		common.RespInternalError(c, http.StatusInternalServerError, "failed to record attachments", err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func DeleteEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	eventID, ok := pathID(c)
	if !ok {
		return
	}
	if err := model.DeleteEventForUser(eventID, userID); err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			common.RespError(c, http.StatusNotFound, apperrors.MsgEventNotFound)
			return
		}
		common.RespInternalError(c, http.StatusInternalServerError, "failed to delete event", err)
		return
	}
	common.RespMessage(c, http.StatusOK, "Event deleted successfully")
}

// ExportCalendar serves the user's events as an iCalendar feed.
func ExportCalendar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	folderID, ok := queryFolderID(c)
	if !ok {
		return
	}
	events, err := model.GetEventsByUser(userID, folderID)
	if err != nil {
		common.RespInternalError(c, http.StatusInternalServerError, "failed to fetch events", err)
		return
	}

	c.Header("Content-Type", "text/calendar; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="calendar.ics"`)
	c.Status(http.StatusOK)
	if err := service.WriteCalendar(c.Writer, events); err != nil {
		common.SysError("failed to encode calendar feed: " + err.Error())
	}
}

func queryFolderID(c *gin.Context) (*int64, bool) {
	raw := c.Query("folderId")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		common.RespError(c, http.StatusBadRequest, apperrors.MsgInvalidID)
		return nil, false
	}
	return &id, true
}

// retainedFiles drops empty entries from a client-supplied attachment
// list, same as every read path does.
func retainedFiles(paths []string) model.StringList {
	retained := model.StringList{}
	for _, path := range paths {
		if strings.TrimSpace(path) != "" {
			retained = append(retained, path)
		}
	}
	return retained
}

func removeSavedUploads(paths []string) {
	for _, path := range paths {
		if err := common.DeleteLocalFile(path); err != nil {
			common.SysError("failed to remove uploaded file " + path + ": " + err.Error())
		}
	}
}
