package session

import (
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/sessions"
	"golang.org/x/crypto/hkdf"
)

// Cookies builds cookie-backed stores. The token cookie is authenticated
// and encrypted; the remembered username is a plain cookie.
type Cookies struct {
	store  *sessions.CookieStore
	secure bool
	maxAge int
}

func NewCookies(secret string, secure bool, maxAge time.Duration) (*Cookies, error) {
	hashKey, err := deriveKey(secret, "portal-cookie-hash")
	if err != nil {
		return nil, err
	}
	blockKey, err := deriveKey(secret, "portal-cookie-block")
	if err != nil {
		return nil, err
	}

	store := sessions.NewCookieStore(hashKey, blockKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(int(maxAge.Seconds()))

	return &Cookies{
		store:  store,
		secure: secure,
		maxAge: int(maxAge.Seconds()),
	}, nil
}

func deriveKey(secret, info string) ([]byte, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("hkdf %s -> %w", info, err)
	}

	return key, nil
}

// For returns the Store of one request.
func (c *Cookies) For(w http.ResponseWriter, r *http.Request) Store {
	return &cookieStore{cookies: c, w: w, r: r}
}

type cookieStore struct {
	cookies *Cookies
	w       http.ResponseWriter
	r       *http.Request
}

func (s *cookieStore) session() *sessions.Session {
	// A cookie that no longer decodes (rotated secret) yields a fresh session.
	sess, _ := s.cookies.store.Get(s.r, TokenKey)
	return sess
}

func (s *cookieStore) Token() string {
	token, _ := s.session().Values[TokenKey].(string)
	return token
}

func (s *cookieStore) SetToken(token string) error {
	sess := s.session()
	sess.Values[TokenKey] = token
	sess.Options.MaxAge = s.cookies.maxAge
	if err := sess.Save(s.r, s.w); err != nil {
		return fmt.Errorf("sess.Save -> %w", err)
	}

	return nil
}

func (s *cookieStore) ClearToken() error {
	sess := s.session()
	delete(sess.Values, TokenKey)
	sess.Options.MaxAge = -1
	if err := sess.Save(s.r, s.w); err != nil {
		return fmt.Errorf("sess.Save -> %w", err)
	}

	return nil
}

func (s *cookieStore) RememberedUsername() string {
	c, err := s.r.Cookie(RememberedUsernameKey)
	if err != nil {
		return ""
	}

	username, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}

	return username
}

func (s *cookieStore) SetRememberedUsername(username string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     RememberedUsernameKey,
		Value:    url.QueryEscape(username),
		Path:     "/",
		MaxAge:   s.cookies.maxAge,
		Secure:   s.cookies.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (s *cookieStore) ClearRememberedUsername() error {
	http.SetCookie(s.w, &http.Cookie{
		Name:   RememberedUsernameKey,
		Path:   "/",
		MaxAge: -1,
	})

	return nil
}
