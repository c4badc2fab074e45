package route

import (
	"github.com/christianjamesnaguit/wcs-backend/backend/api/handler"
	"github.com/christianjamesnaguit/wcs-backend/backend/api/middleware"

	"github.com/gin-gonic/gin"
)

func SetApiRouter(router *gin.Engine) {
	apiRouter := router.Group("/api")
	{
		// Public routes (no authentication required)
		apiRouter.GET("/status", handler.GetStatus)
		apiRouter.POST("/signup", handler.Signup)
		apiRouter.POST("/login", handler.Login)

		apiRouter.POST("/logout", middleware.JWTAuth(), handler.Logout)

		// Everything below is scoped to the authenticated owner.
		userRoute := apiRouter.Group("/user")
		userRoute.Use(middleware.JWTAuth())
		{
			userRoute.GET("", handler.GetSelf)
			userRoute.PUT("", handler.UpdateSelf)
			userRoute.POST("/avatar", handler.UploadAvatar)
			userRoute.PUT("/password", handler.ChangePassword)
			userRoute.DELETE("", handler.DeleteSelf)
		}

		folderRoute := apiRouter.Group("/folders")
		folderRoute.Use(middleware.JWTAuth())
		{
			folderRoute.GET("", handler.GetFolders)
			folderRoute.POST("", handler.CreateFolder)
			folderRoute.DELETE("/:id", handler.DeleteFolder)
		}

		eventRoute := apiRouter.Group("/events")
		eventRoute.Use(middleware.JWTAuth())
		{
			eventRoute.GET("", handler.GetEvents)
			eventRoute.GET("/calendar.ics", handler.ExportCalendar)
			eventRoute.POST("", handler.CreateEvent)
			eventRoute.PUT("/:id", handler.UpdateEvent)
			eventRoute.DELETE("/:id", handler.DeleteEvent)
		}

		fileRoute := apiRouter.Group("/files")
		fileRoute.Use(middleware.JWTAuth())
		{
			fileRoute.GET("", handler.GetFiles)
			fileRoute.POST("", handler.UploadFiles)
			fileRoute.DELETE("/:id", handler.DeleteFile)
		}
	}
}
