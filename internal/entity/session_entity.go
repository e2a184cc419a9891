package entity

// Session is the signed-in admin. Its presence in the store is the only
// validity signal: no expiry, no refresh.
type Session struct {
	Id        string `json:"id" validate:"required"`
	Login     string `json:"login" validate:"required"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Email     string `json:"email,omitempty"`
}

// GitHubUser is the identity endpoint's profile.
type GitHubUser struct {
	Id        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Email     string `json:"email"`
}
