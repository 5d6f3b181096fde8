// Package session keeps the durable client-side state of the portal: the
// session token issued by the school API and the remembered username.
//
// A token lives from a successful login until logout or the next login.
// The remembered username is kept only while "remember me" was checked on
// the last successful login.
package session

const (
	TokenKey              = "token"
	RememberedUsernameKey = "rememberedUsername"
)

// Store is durable client storage. Each write is independent.
type Store interface {
	Token() string
	SetToken(token string) error
	ClearToken() error

	RememberedUsername() string
	SetRememberedUsername(username string) error
	ClearRememberedUsername() error
}
