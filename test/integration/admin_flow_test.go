package integration

import (
	"net/http"
	"testing"

	"portfolio-be/internal/dto"
	"portfolio-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func login(t *testing.T, env *testEnv) string {
	t.Helper()
	resp := env.do(t, "POST", "/api/auth/login", "", dto.LoginRequest{Password: "admin123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	res := decode[dto.LoginResponse](t, resp)
	require.True(t, res.Success)
	require.NotEmpty(t, res.Data.AccessToken)
	return res.Data.AccessToken
}

func TestAdminLogin(t *testing.T) {
	env := newTestEnv(t, testConfig(t))

	t.Run("wrong password", func(t *testing.T) {
		resp := env.do(t, "POST", "/api/auth/login", "", dto.LoginRequest{Password: "wrong"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		session := decode[dto.SessionResponse](t, env.do(t, "GET", "/api/auth/session", "", nil))
		assert.False(t, session.Data.IsAuthenticated)
	})

	t.Run("missing password", func(t *testing.T) {
		resp := env.do(t, "POST", "/api/auth/login", "", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("correct password", func(t *testing.T) {
		resp := env.do(t, "POST", "/api/auth/login", "", dto.LoginRequest{Password: "admin123"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Set-Cookie"), "admin_token=")

		res := decode[dto.LoginResponse](t, resp)
		assert.Equal(t, "charchitd", res.Data.User.Login)

		session := decode[dto.SessionResponse](t, env.do(t, "GET", "/api/auth/session", res.Data.AccessToken, nil))
		assert.True(t, session.Data.IsAuthenticated)
		assert.Equal(t, "Charchit Dhawan", session.Data.User.Name)
	})
}

func TestAdminRoutesRequireSession(t *testing.T) {
	env := newTestEnv(t, testConfig(t))

	for _, path := range []string{"/api/admin/posts", "/api/admin/experience", "/api/admin/dashboard", "/api/admin/profile"} {
		resp := env.do(t, "GET", path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}

	token := login(t, env)
	resp := env.do(t, "POST", "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Sign-out is idempotent and revokes the token.
	resp = env.do(t, "POST", "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = env.do(t, "GET", "/api/admin/posts", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPostEditingFlow(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token := login(t, env)

	// Save without a draft.
	resp := env.do(t, "POST", "/api/admin/posts/draft/save", token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Create, rename, tag, save.
	resp = env.do(t, "POST", "/api/admin/posts/draft", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	started := decode[dto.DraftResponse[entity.Post]](t, resp)
	assert.Equal(t, "drafting", started.Data.State)
	assert.Equal(t, "New Post", started.Data.Draft.Title)
	assert.Equal(t, "1/15/2025", started.Data.Draft.Date)

	resp = env.do(t, "PATCH", "/api/admin/posts/draft", token, dto.UpdateDraftFieldRequest{Field: "title", Value: "Hello"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = env.do(t, "PATCH", "/api/admin/posts/draft", token, dto.UpdateDraftFieldRequest{Field: "tags", Value: "ml, nlp,  fairness"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = env.do(t, "PATCH", "/api/admin/posts/draft", token, dto.UpdateDraftFieldRequest{Field: "author", Value: "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Warm the public cache with the built-in posts.
	builtIn := decode[[]entity.Post](t, env.do(t, "GET", "/api/portfolio/writing", "", nil))
	require.NotEmpty(t, builtIn.Data)

	resp = env.do(t, "POST", "/api/admin/posts/draft/save", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	saved := decode[dto.SaveResponse[entity.Post]](t, resp)
	assert.Equal(t, "Changes saved successfully!", saved.Data.Acknowledgment)
	assert.Equal(t, "Hello", saved.Data.Record.Title)
	assert.Equal(t, []string{"ml", "nlp", "fairness"}, saved.Data.Record.Tags)
	id := saved.Data.Record.Id

	list := decode[dto.CollectionResponse[entity.Post]](t, env.do(t, "GET", "/api/admin/posts", token, nil))
	require.Len(t, list.Data.Items, 1)
	assert.Equal(t, "idle", list.Data.State)
	assert.Nil(t, list.Data.Draft)
	assert.Equal(t, saved.Data.Record, list.Data.Items[0])

	// The public writing list switches to the saved posts right away.
	public := decode[[]entity.Post](t, env.do(t, "GET", "/api/portfolio/writing", "", nil))
	require.Len(t, public.Data, 1)
	assert.Equal(t, id, public.Data[0].Id)

	// Edit in place.
	resp = env.do(t, "POST", "/api/admin/posts/"+id+"/edit", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env.do(t, "PATCH", "/api/admin/posts/draft", token, dto.UpdateDraftFieldRequest{Field: "excerpt", Value: "Short"})
	resp = env.do(t, "POST", "/api/admin/posts/draft/save", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list = decode[dto.CollectionResponse[entity.Post]](t, env.do(t, "GET", "/api/admin/posts", token, nil))
	require.Len(t, list.Data.Items, 1)
	assert.Equal(t, "Short", list.Data.Items[0].Excerpt)

	// Unknown id.
	resp = env.do(t, "POST", "/api/admin/posts/missing/edit", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Delete needs confirmation, unknown ids are reported.
	resp = env.do(t, "DELETE", "/api/admin/posts/"+id, token, nil)
	assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)
	resp = env.do(t, "DELETE", "/api/admin/posts/missing?confirm=true", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = env.do(t, "DELETE", "/api/admin/posts/"+id+"?confirm=true", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list = decode[dto.CollectionResponse[entity.Post]](t, env.do(t, "GET", "/api/admin/posts", token, nil))
	assert.Empty(t, list.Data.Items)
}

func TestExperienceEditingFlow(t *testing.T) {
	env := newTestEnv(t, testConfig(t))
	token := login(t, env)

	resp := env.do(t, "POST", "/api/admin/experience/draft", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	started := decode[dto.DraftResponse[entity.ExperienceEntry]](t, resp)
	assert.Equal(t, "New Position", started.Data.Draft.Title)
	assert.Equal(t, entity.ExperienceTypeWork, started.Data.Draft.Type)

	resp = env.do(t, "PATCH", "/api/admin/experience/draft", token, dto.UpdateDraftFieldRequest{Field: "type", Value: "volunteer"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = env.do(t, "PATCH", "/api/admin/experience/draft", token, dto.UpdateDraftFieldRequest{Field: "type", Value: "education"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Cancel discards the draft.
	resp = env.do(t, "DELETE", "/api/admin/experience/draft", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	draft := decode[dto.DraftResponse[entity.ExperienceEntry]](t, env.do(t, "GET", "/api/admin/experience/draft", token, nil))
	assert.Equal(t, "idle", draft.Data.State)
	assert.Nil(t, draft.Data.Draft)

	env.do(t, "POST", "/api/admin/experience/draft", token, nil)
	resp = env.do(t, "POST", "/api/admin/experience/draft/save", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	dashboard := decode[dto.DashboardResponse](t, env.do(t, "GET", "/api/admin/dashboard", token, nil))
	assert.Equal(t, 1, dashboard.Data.ExperienceCount)
	assert.Equal(t, 0, dashboard.Data.PostCount)
	assert.Equal(t, "charchitd", dashboard.Data.User.Login)
	assert.Equal(t, "Changes saved successfully!", dashboard.Data.Acknowledgment)

	profile := decode[dto.ProfileResponse](t, env.do(t, "GET", "/api/admin/profile", token, nil))
	assert.Equal(t, "London, UK", profile.Data.Profile.Location)
	assert.Equal(t, "Profile changes are saved locally in this demo", profile.Data.Note)
}
