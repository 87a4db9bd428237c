package content

import "fmt"

// Login is the user login name.
type Login string

// User is the identity of an API caller.
type User struct {
	Login Login  `json:"login"`
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
}

// Anonymous is the identity of an unauthenticated caller.
var Anonymous = User{}

func (u User) IsAnonymous() bool {
	return u.Login == ""
}

func (u User) String() string {
	switch {
	case u.IsAnonymous():
		return "anonymous"
	case u.Name != "":
		return fmt.Sprintf("%s: %s", u.Login, u.Name)
	default:
		return string(u.Login)
	}
}
