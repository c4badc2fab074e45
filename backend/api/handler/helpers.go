package handler

import (
	"net/http"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/christianjamesnaguit/wcs-backend/backend/common"
	apperrors "github.com/christianjamesnaguit/wcs-backend/backend/common/errors"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the authenticated user id the auth guard put into
// the context. Handlers use it as the ownership filter on every query.
func currentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		common.RespError(c, http.StatusUnauthorized, apperrors.MsgMissingAuthHeader)
		return 0, false
	}
	id, ok := value.(int64)
	if !ok {
		common.RespError(c, http.StatusUnauthorized, apperrors.MsgMissingAuthHeader)
		return 0, false
	}
	return id, true
}

// pathID parses the :id route parameter. Malformed ids are rejected here
// with a 400 instead of being passed to the store.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		common.RespError(c, http.StatusBadRequest, apperrors.MsgInvalidID)
		return 0, false
	}
	return id, true
}

// uploadDiskPath maps a public attachment reference ("/uploads/<name>" or
// "/avatars/<name>") back to its location under the configured storage
// root. Only the base name is used, so a stored reference can never reach
// outside the root.
func uploadDiskPath(publicPath string) string {
	name := path.Base(publicPath)
	if strings.HasPrefix(publicPath, "/avatars/") {
		return filepath.Join(common.AvatarPath, name)
	}
	return filepath.Join(common.UploadPath, name)
}
