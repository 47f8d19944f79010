package user

// UserType is the role a user plays in the marketplace
type UserType string

const (
	UserTypeTourist  UserType = "tourist"
	UserTypeProvider UserType = "provider"
)

func (ut UserType) IsValid() bool {
	return ut == UserTypeTourist || ut == UserTypeProvider
}

// User is a marketplace account. Users are created at sign-up or matched at
// login and never deleted during a session.
type User struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Type  UserType `json:"type"`
}

// IsProvider returns true if the user publishes offers
func (u User) IsProvider() bool {
	return u.Type == UserTypeProvider
}

// Find returns the user with the given id from a collection
func Find(users []User, id int64) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// FindByEmail matches a user by email, the way the mocked login does
func FindByEmail(users []User, email string) (User, bool) {
	for _, u := range users {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}
