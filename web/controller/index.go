package controller

import (
	"errors"
	"net/http"

	"list-ui/database/model"
	"list-ui/logger"
	"list-ui/web/service"
	"list-ui/web/session"

	"github.com/gin-gonic/gin"
)

// sessionMaxAge is the cookie lifetime in seconds for authenticated sessions.
const sessionMaxAge = 86400

// LoginForm carries a local login attempt.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// RegisterForm is the unsaved input of the registration path; it becomes a
// persisted User only inside UserService.Register.
type RegisterForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// IndexController handles local authentication and session teardown.
type IndexController struct {
	BaseController
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/logout", a.logout)

	g.POST("/login", a.login)
	g.POST("/register", a.register)
}

// index reports the authentication state of the caller's session.
func (a *IndexController) index(c *gin.Context) {
	jsonObj(c, gin.H{"authenticated": session.IsLogin(c)}, nil)
}

// login verifies local credentials and, only after verification has fully
// succeeded, establishes a fresh session for the user.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid form data")
		return
	}
	if form.Username == "" {
		pureJsonMsg(c, http.StatusOK, false, "username is required")
		return
	}
	if form.Password == "" {
		pureJsonMsg(c, http.StatusOK, false, "password is required")
		return
	}

	user, err := a.userService.CheckUser(form.Username, form.Password)
	if errors.Is(err, service.ErrAuthenticationFailed) {
		logger.Warningf("failed login for %q from %s", form.Username, getRemoteIp(c))
		pureJsonMsg(c, http.StatusOK, false, err.Error())
		return
	} else if err != nil {
		jsonMsg(c, "login", err)
		return
	}

	if err := a.establishSession(c, user); err != nil {
		jsonMsg(c, "save session", err)
		return
	}

	logger.Infof("%s logged in from %s", form.Username, getRemoteIp(c))
	jsonObj(c, user, nil)
}

// register creates a local account and logs it in, mirroring the login path.
func (a *IndexController) register(c *gin.Context) {
	var form RegisterForm

	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid form data")
		return
	}
	if form.Username == "" {
		pureJsonMsg(c, http.StatusOK, false, "username is required")
		return
	}
	if form.Password == "" {
		pureJsonMsg(c, http.StatusOK, false, "password is required")
		return
	}

	user, err := a.userService.Register(form.Username, form.Password)
	if errors.Is(err, service.ErrDuplicateUsername) {
		pureJsonMsg(c, http.StatusOK, false, err.Error())
		return
	} else if err != nil {
		jsonMsg(c, "register", err)
		return
	}

	if err := a.establishSession(c, user); err != nil {
		jsonMsg(c, "save session", err)
		return
	}

	jsonObj(c, user, nil)
}

// logout terminates the session. It is idempotent: logging out an anonymous
// session is not an error.
func (a *IndexController) logout(c *gin.Context) {
	if userId, ok := session.GetLoginUserId(c); ok {
		logger.Infof("user %d logged out", userId)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("clear session:", err)
	}
	c.Redirect(http.StatusTemporaryRedirect, "/")
}

func (a *BaseController) establishSession(c *gin.Context, user *model.User) error {
	if err := session.SetMaxAge(c, sessionMaxAge); err != nil {
		return err
	}
	return session.SetLoginUser(c, user)
}
