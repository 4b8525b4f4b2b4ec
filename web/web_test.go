package web

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"testing"

	"list-ui/database"
	"list-ui/database/model"
	"list-ui/logger"
	"list-ui/web/entity"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Setenv("LISTUI_LOG_FOLDER", t.TempDir())
	t.Setenv("LISTUI_SESSION_SECRET", "test-secret")
	t.Setenv("GOOGLE_CLIENT_ID", "")
	logger.InitLogger(logging.DEBUG)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.InitDB(dbPath))
	t.Cleanup(func() {
		database.CloseDB()
	})

	s := NewServer()
	engine, err := s.initRouter()
	require.NoError(t, err)

	ts := httptest.NewServer(engine)
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return ts, &http.Client{Jar: jar}
}

func postForm(t *testing.T, client *http.Client, target string, form url.Values) (int, entity.Msg) {
	resp, err := client.PostForm(target, form)
	require.NoError(t, err)
	defer resp.Body.Close()

	var msg entity.Msg
	if decErr := json.NewDecoder(resp.Body).Decode(&msg); decErr != nil {
		msg = entity.Msg{}
	}
	return resp.StatusCode, msg
}

func listItems(t *testing.T, client *http.Client, base string) (int, []model.Item) {
	req, err := http.NewRequest(http.MethodGet, base+"/panel/api/items/list", nil)
	require.NoError(t, err)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil
	}

	var msg struct {
		Success bool         `json:"success"`
		Obj     []model.Item `json:"obj"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	require.True(t, msg.Success)
	return resp.StatusCode, msg.Obj
}

func TestFullScenario(t *testing.T) {
	ts, client := setupServer(t)

	// Protected routes reject anonymous callers.
	code, _ := listItems(t, client, ts.URL)
	assert.Equal(t, http.StatusUnauthorized, code)

	// register("alice","pw1") establishes a session.
	code, msg := postForm(t, client, ts.URL+"/register", url.Values{
		"username": {"alice"}, "password": {"pw1"},
	})
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, msg.Success)

	// addItem("buy milk")
	code, msg = postForm(t, client, ts.URL+"/panel/api/items/add", url.Values{
		"text": {"buy milk"},
	})
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, msg.Success)

	code, items := listItems(t, client, ts.URL)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, items, 1)
	assert.Equal(t, "buy milk", items[0].Text)
	assert.NotZero(t, items[0].Id)

	// deleteItem(thatId) empties the list; a second delete is a no-op.
	delURL := ts.URL + "/panel/api/items/del/" + strconv.Itoa(items[0].Id)
	code, msg = postForm(t, client, delURL, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, msg.Success)

	code, msg = postForm(t, client, delURL, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, msg.Success)

	code, items = listItems(t, client, ts.URL)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, items)

	// logout terminates the session.
	resp, err := client.Get(ts.URL + "/logout")
	require.NoError(t, err)
	resp.Body.Close()

	code, _ = listItems(t, client, ts.URL)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestLoginFlow(t *testing.T) {
	ts, client := setupServer(t)

	code, msg := postForm(t, client, ts.URL+"/register", url.Values{
		"username": {"alice"}, "password": {"pw1"},
	})
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, msg.Success)

	resp, err := client.Get(ts.URL + "/logout")
	require.NoError(t, err)
	resp.Body.Close()

	// Wrong password and unknown username fail identically.
	_, wrongPass := postForm(t, client, ts.URL+"/login", url.Values{
		"username": {"alice"}, "password": {"nope"},
	})
	assert.False(t, wrongPass.Success)

	_, noUser := postForm(t, client, ts.URL+"/login", url.Values{
		"username": {"nobody"}, "password": {"nope"},
	})
	assert.False(t, noUser.Success)
	assert.Equal(t, wrongPass.Msg, noUser.Msg)

	code, msg = postForm(t, client, ts.URL+"/login", url.Values{
		"username": {"alice"}, "password": {"pw1"},
	})
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, msg.Success)

	code, items := listItems(t, client, ts.URL)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, items)
}

func TestSessionDegradesWhenUserDeleted(t *testing.T) {
	ts, client := setupServer(t)

	_, msg := postForm(t, client, ts.URL+"/register", url.Values{
		"username": {"alice"}, "password": {"pw1"},
	})
	require.True(t, msg.Success)

	code, _ := listItems(t, client, ts.URL)
	assert.Equal(t, http.StatusOK, code)

	// Drop the user behind the live session; the next request degrades to
	// anonymous instead of failing with a storage error.
	require.NoError(t, database.GetDB().Where("username = ?", "alice").Delete(&model.User{}).Error)

	code, _ = listItems(t, client, ts.URL)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestGoogleRouteDisabledWithoutConfig(t *testing.T) {
	ts, client := setupServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/auth/google", nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
