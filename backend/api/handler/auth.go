package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/christianjamesnaguit/wcs-backend/backend/common"
	apperrors "github.com/christianjamesnaguit/wcs-backend/backend/common/errors"
	"github.com/christianjamesnaguit/wcs-backend/backend/model"
	"github.com/christianjamesnaguit/wcs-backend/backend/service"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	FirstName string      `json:"firstName" validate:"required,max=50"`
	LastName  string      `json:"lastName" validate:"required,max=50"`
	Email     string      `json:"email" validate:"required,email"`
	Username  string      `json:"username" validate:"required,max=50"`
	Password  string      `json:"password" validate:"required,min=6"`
	BirthDate *model.Date `json:"birthDate"`
}

// Signup creates an account and issues its first credential.
func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespError(c, http.StatusBadRequest, apperrors.MsgMissingSignupFields)
		return
	}
	if err := common.Validate.Struct(&req); err != nil {
		common.RespError(c, http.StatusBadRequest, apperrors.MsgMissingSignupFields)
		return
	}

	taken, err := model.IsIdentityTaken(req.Email, req.Username)
	if err != nil {
		common.RespInternalError(c, http.StatusInternalServerError, "signup failed", err)
		return
	}
	if taken {
		common.RespError(c, http.StatusBadRequest, apperrors.MsgDuplicateIdentity)
		return
	}

	user := model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		BirthDate: req.BirthDate,
	}
	if err := user.Insert(); err != nil {
		common.RespInternalError(c, http.StatusInternalServerError, "signup failed", err)
		return
	}

	token, err := service.GenerateToken(&user)
	if err != nil {
		common.RespInternalError(c, http.StatusInternalServerError, "signup failed", err)
		return
	}
	common.SysLog("user signed up: " + user.Username)
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates by username or email and issues a credential.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		common.RespError(c, http.StatusBadRequest, apperrors.MsgMissingCredentials)
		return
	}

	var user model.User
	if err := user.ValidateAndFill(req.Username, req.Password); err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			common.RespError(c, http.StatusUnauthorized, apperrors.MsgInvalidCredentials)
			return
		}
		common.RespInternalError(c, http.StatusInternalServerError, "login failed", err)
		return
	}

	token, err := service.GenerateToken(&user)
	if err != nil {
		common.RespInternalError(c, http.StatusInternalServerError, "login failed", err)
		return
	}
	common.SysLog("user logged in: " + user.Username)
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Logout blacklists the presented token for whatever validity it has left.
// Without Redis there is nothing to revoke against and the token simply
// ages out.
func Logout(c *gin.Context) {
	if common.RedisEnabled {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 {
			tokenString := parts[1]
			if claims, err := service.ValidateToken(tokenString); err == nil {
				ttl := time.Until(claims.ExpiresAt.Time)
				if ttl > 0 {
					if err := common.RedisSet("jwt:blacklist:"+tokenString, "1", ttl); err != nil {
						common.SysError("failed to blacklist token: " + err.Error())
					}
				}
			}
		}
	}
	common.RespMessage(c, http.StatusOK, "Logged out successfully")
}
