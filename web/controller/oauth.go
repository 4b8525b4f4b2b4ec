package controller

import (
	"net/http"

	"list-ui/config"
	"list-ui/logger"
	"list-ui/util/common"
	"list-ui/web/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	oauthState  = "OAUTH_STATE"
	userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// OAuthController handles the transport half of federated login: the
// redirect to Google and the callback that turns an authorization code into
// a verified Profile. Identity resolution itself lives in FederatedService.
type OAuthController struct {
	BaseController

	federatedService service.FederatedService
	conf             *oauth2.Config
}

// NewOAuthController creates a new OAuthController and initializes its routes.
func NewOAuthController(g *gin.RouterGroup) *OAuthController {
	a := &OAuthController{
		conf: &oauth2.Config{
			ClientID:     config.GetGoogleClientID(),
			ClientSecret: config.GetGoogleClientSecret(),
			RedirectURL:  config.GetGoogleCallbackURL(),
			Scopes:       []string{"email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
	a.initRouter(g)
	return a
}

func (a *OAuthController) initRouter(g *gin.RouterGroup) {
	g.GET("/auth/google", a.redirect)
	g.GET("/auth/google/callback", a.callback)
}

// redirect sends the browser to Google's consent page with a one-shot state
// token stashed in the session.
func (a *OAuthController) redirect(c *gin.Context) {
	if a.conf.ClientID == "" {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	state := uuid.NewString()
	s := sessions.Default(c)
	s.Set(oauthState, state)
	if err := s.Save(); err != nil {
		jsonMsg(c, "save session", err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, a.conf.AuthCodeURL(state))
}

// callback verifies the state token, resolves the external profile, hands it
// to the federated resolver and establishes the session.
func (a *OAuthController) callback(c *gin.Context) {
	s := sessions.Default(c)
	want, _ := s.Get(oauthState).(string)
	s.Delete(oauthState)
	if err := s.Save(); err != nil {
		jsonMsg(c, "save session", err)
		return
	}

	if want == "" || c.Query("state") != want {
		logger.Warningf("oauth state mismatch from %s", getRemoteIp(c))
		pureJsonMsg(c, http.StatusBadRequest, false, "state mismatch")
		return
	}
	code := c.Query("code")
	if code == "" {
		pureJsonMsg(c, http.StatusBadRequest, false, "missing authorization code")
		return
	}

	profile, err := a.resolveExternalProfile(c, code)
	if err != nil {
		logger.Warning("google sign-in:", err)
		pureJsonMsg(c, http.StatusOK, false, "google sign-in failed")
		return
	}

	user, err := a.federatedService.FederatedLogin(profile)
	if err != nil {
		jsonMsg(c, "federated login", err)
		return
	}

	if err := a.establishSession(c, user); err != nil {
		jsonMsg(c, "save session", err)
		return
	}

	logger.Infof("%s logged in via google", user.Username)
	c.Redirect(http.StatusTemporaryRedirect, "/")
}

// resolveExternalProfile exchanges the authorization code for a token and
// fetches the userinfo document it grants access to.
func (a *OAuthController) resolveExternalProfile(c *gin.Context, code string) (service.Profile, error) {
	ctx := c.Request.Context()

	token, err := a.conf.Exchange(ctx, code)
	if err != nil {
		return service.Profile{}, err
	}

	resp, err := a.conf.Client(ctx, token).Get(userinfoURL)
	if err != nil {
		return service.Profile{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return service.Profile{}, common.NewErrorf("userinfo returned status %d", resp.StatusCode)
	}

	var profile service.Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return service.Profile{}, err
	}
	if profile.Id == "" {
		return service.Profile{}, common.NewError("userinfo response has no subject id")
	}
	return profile, nil
}
