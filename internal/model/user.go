package model

// User is the learner (or instructor) identity attached to discussions and
// the current session.
type User struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
