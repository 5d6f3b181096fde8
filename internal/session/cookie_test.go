package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCookies(t *testing.T) *Cookies {
	t.Helper()
	c, err := NewCookies("test-secret", false, 24*time.Hour)
	require.NoError(t, err)

	return c
}

// roundTrip copies the cookies set on rec onto a new request.
func roundTrip(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			continue
		}
		req.AddCookie(c)
	}

	return req
}

func TestCookies_TokenRoundTrip(t *testing.T) {
	cookies := newCookies(t)
	rec := httptest.NewRecorder()
	store := cookies.For(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	require.NoError(t, store.SetToken("abc"))

	var tokenCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == TokenKey {
			tokenCookie = c
		}
	}
	require.NotNil(t, tokenCookie)
	assert.NotContains(t, tokenCookie.Value, "abc")
	assert.True(t, tokenCookie.HttpOnly)

	next := cookies.For(httptest.NewRecorder(), roundTrip(rec))
	assert.Equal(t, "abc", next.Token())
}

func TestCookies_TokenFromOtherSecretIsIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, newCookies(t).For(rec, httptest.NewRequest(http.MethodPost, "/", nil)).SetToken("abc"))

	other, err := NewCookies("another-secret", false, time.Hour)
	require.NoError(t, err)

	assert.Empty(t, other.For(httptest.NewRecorder(), roundTrip(rec)).Token())
}

func TestCookies_ClearToken(t *testing.T) {
	cookies := newCookies(t)
	rec := httptest.NewRecorder()
	require.NoError(t, cookies.For(rec, httptest.NewRequest(http.MethodPost, "/", nil)).SetToken("abc"))

	clearRec := httptest.NewRecorder()
	require.NoError(t, cookies.For(clearRec, roundTrip(rec)).ClearToken())

	cleared := false
	for _, c := range clearRec.Result().Cookies() {
		if c.Name == TokenKey && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestCookies_RememberedUsername(t *testing.T) {
	cookies := newCookies(t)
	rec := httptest.NewRecorder()
	store := cookies.For(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Empty(t, store.RememberedUsername())
	require.NoError(t, store.SetRememberedUsername("teacher01"))
	assert.Equal(t, "teacher01", cookies.For(httptest.NewRecorder(), roundTrip(rec)).RememberedUsername())

	clearRec := httptest.NewRecorder()
	require.NoError(t, cookies.For(clearRec, roundTrip(rec)).ClearRememberedUsername())
	cookiesSet := clearRec.Result().Cookies()
	require.Len(t, cookiesSet, 1)
	assert.Equal(t, RememberedUsernameKey, cookiesSet[0].Name)
	assert.Less(t, cookiesSet[0].MaxAge, 0)
}

func TestCookies_RememberedUsernameNonASCII(t *testing.T) {
	cookies := newCookies(t)
	rec := httptest.NewRecorder()
	require.NoError(t, cookies.For(rec, httptest.NewRequest(http.MethodPost, "/", nil)).SetRememberedUsername("ครูสมชาย"))

	assert.Equal(t, "ครูสมชาย", cookies.For(httptest.NewRecorder(), roundTrip(rec)).RememberedUsername())
}
