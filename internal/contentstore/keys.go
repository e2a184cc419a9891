package contentstore

// Key names a persisted value.
type Key string

const (
	KeySession     Key = "admin_session"
	KeyGitHubToken Key = "github_token"
	KeyOAuthState  Key = "oauth_state"
	KeyPosts       Key = "admin_blog_posts"
	KeyExperiences Key = "admin_experiences"
)

// AuthKeys are cleared together on sign-out.
var AuthKeys = []Key{KeySession, KeyGitHubToken, KeyOAuthState}
