package domain

type Credentials struct {
	Username   string
	Password   string
	RememberMe bool
}

// LoginResult is what the school API returns on a successful login.
type LoginResult struct {
	Message string
	Token   string
	User    User
}
