package handler

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/madrasa/internal/db"
)

const (
	sessionUserID   = "user_id"
	sessionUsername = "username"
)

type loginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Login 校验管理员账号并建立会话
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	// 查找用户
	var user db.User
	if err := a.db.WithContext(c.Request.Context()).Where("username = ?", strings.TrimSpace(req.Username)).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	// 验证密码
	if !user.CheckPassword(req.Password) {
		respondError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	// 设置会话
	session := sessions.Default(c)
	session.Set(sessionUserID, user.ID)
	session.Set(sessionUsername, user.Username)
	if err := session.Save(); err != nil {
		a.fail(c, err)
		return
	}

	a.logger.Info().Str("username", user.Username).Msg("admin logged in")
	respondOK(c, http.StatusOK, gin.H{"username": user.Username})
}

// Logout 清除会话
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		a.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, nil)
}

// CurrentUser 返回当前登录的管理员
func (a *API) CurrentUser(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{"username": sessions.Default(c).Get(sessionUsername)})
}

// AuthRequired 是后台接口的认证中间件
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionUserID) == nil {
			respondError(c, http.StatusUnauthorized, "login required")
			c.Abort()
			return
		}
		c.Next()
	}
}
