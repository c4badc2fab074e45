package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/christianjamesnaguit/wcs-backend/backend/api/middleware"
	"github.com/christianjamesnaguit/wcs-backend/backend/api/route"
	"github.com/christianjamesnaguit/wcs-backend/backend/common"
	"github.com/christianjamesnaguit/wcs-backend/backend/model"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	flag.Parse()
	if *common.PrintVersion {
		println(common.Version)
		os.Exit(0)
	}
	if *common.PrintHelpFlag {
		common.PrintHelp()
		os.Exit(0)
	}

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	common.SetupGinLog()
	common.SysLog(common.SystemName + " " + common.Version + " started")
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := common.InitConfig(); err != nil {
		common.FatalLog(err)
	}
	if err := common.EnsureUploadDirs(); err != nil {
		common.FatalLog(err)
	}
	if err := common.InitRedisClient(); err != nil {
		common.FatalLog(err)
	}
	if err := model.InitDB(); err != nil {
		common.FatalLog(err)
	}
	defer func() {
		if err := model.CloseDB(); err != nil {
			common.SysError("failed to close database: " + err.Error())
		}
	}()

	server := gin.Default()
	server.Use(middleware.CORS())

	route.SetRouter(server)
	server.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API route not found"})
		} else {
			c.File(common.FrontendPath + "/index.html")
		}
	})

	setupGracefulShutdown()

	port := strconv.Itoa(*common.Port)
	common.SysLog("Server listening on port: " + port)
	if err := server.Run(":" + port); err != nil {
		log.Fatal("failed to start server: " + err.Error())
	}
}

func setupGracefulShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		common.SysLog("Shutting down...")
		if err := model.CloseDB(); err != nil {
			common.SysError("failed to close database: " + err.Error())
		}
		os.Exit(0)
	}()
}
