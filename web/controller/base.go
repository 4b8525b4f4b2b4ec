// Package controller provides the HTTP handlers of list-ui: local and
// federated authentication, session handling and the item API.
package controller

import (
	"net/http"

	"list-ui/database/model"
	"list-ui/logger"
	"list-ui/web/service"
	"list-ui/web/session"

	"github.com/gin-gonic/gin"
)

const ctxLoginUser = "user"

// BaseController provides common functionality for all controllers.
type BaseController struct {
	userService service.UserService
}

// checkLogin verifies the session and resolves its user id back to a full
// record. A session whose user no longer exists is degraded to anonymous
// instead of failing the request with a storage error.
func (a *BaseController) checkLogin(c *gin.Context) {
	userId, ok := session.GetLoginUserId(c)
	if !ok {
		a.abortAnonymous(c)
		return
	}

	user, err := a.userService.GetUser(userId)
	if err != nil {
		jsonMsg(c, "resolve session user", err)
		c.Abort()
		return
	}
	if user == nil {
		logger.Warningf("session references missing user %d, clearing", userId)
		if err := session.ClearSession(c); err != nil {
			logger.Warning("clear stale session:", err)
		}
		a.abortAnonymous(c)
		return
	}

	c.Set(ctxLoginUser, user)
	c.Next()
}

func (a *BaseController) abortAnonymous(c *gin.Context) {
	if isAjax(c) {
		pureJsonMsg(c, http.StatusUnauthorized, false, "login required")
	} else {
		c.Redirect(http.StatusTemporaryRedirect, "/")
	}
	c.Abort()
}

// loginUser returns the user resolved by checkLogin.
func loginUser(c *gin.Context) *model.User {
	user, _ := c.MustGet(ctxLoginUser).(*model.User)
	return user
}
