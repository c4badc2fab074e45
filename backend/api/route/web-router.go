package route

import (
	"github.com/christianjamesnaguit/wcs-backend/backend/common"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// setWebRouter serves the uploaded binaries and the built frontend.
// Unknown non-API paths fall back to index.html in main's NoRoute handler
// so client-side routing works.
func setWebRouter(router *gin.Engine) {
	router.Use(static.Serve("/uploads", static.LocalFile(common.UploadPath, false)))
	router.Use(static.Serve("/avatars", static.LocalFile(common.AvatarPath, false)))
	router.Use(static.Serve("/", static.LocalFile(common.FrontendPath, false)))
}
