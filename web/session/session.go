// Package session binds requests to an authenticated user identity. Only the
// user id is serialized into the session; the full record is re-fetched per
// request by the caller.
package session

import (
	"list-ui/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUserId = "LOGIN_USER_ID"

// SetLoginUser establishes a fresh session for user. Any state left over
// from a previous identity is discarded first.
func SetLoginUser(c *gin.Context, user *model.User) error {
	s := sessions.Default(c)
	s.Clear()
	s.Set(loginUserId, user.Id)
	return s.Save()
}

// SetMaxAge adjusts the session cookie lifetime in seconds.
func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

// GetLoginUserId returns the authenticated user id, or false when the
// session is anonymous.
func GetLoginUserId(c *gin.Context) (int, bool) {
	s := sessions.Default(c)
	if obj := s.Get(loginUserId); obj != nil {
		if id, ok := obj.(int); ok {
			return id, true
		}
	}
	return 0, false
}

// IsLogin reports whether the session carries an authenticated identity.
func IsLogin(c *gin.Context) bool {
	_, ok := GetLoginUserId(c)
	return ok
}

// ClearSession terminates the session. It is idempotent and always succeeds
// from the caller's point of view once the cookie is expired.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
