package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-be/internal/dto"
	"portfolio-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicPortfolio(t *testing.T) {
	env := newTestEnv(t, testConfig(t))

	overview := decode[dto.PortfolioResponse](t, env.do(t, "GET", "/api/portfolio", "", nil))
	assert.Equal(t, "Charchit Dhawan", overview.Data.Profile.Name)
	assert.NotEmpty(t, overview.Data.SelectedWork)

	writing := decode[[]entity.Post](t, env.do(t, "GET", "/api/portfolio/writing", "", nil))
	require.NotEmpty(t, writing.Data)

	post := decode[entity.Post](t, env.do(t, "GET", "/api/portfolio/writing/fairness-resource-constraints", "", nil))
	assert.Equal(t, "7 min read", post.Data.ReadTime)

	resp := env.do(t, "GET", "/api/portfolio/writing/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	experience := decode[[]entity.ExperienceEntry](t, env.do(t, "GET", "/api/portfolio/experience", "", nil))
	require.Len(t, experience.Data, 7)
	assert.Equal(t, "Aston Business School", experience.Data[0].Organization)
}

func TestContactForm(t *testing.T) {
	var received map[string]string
	form := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer form.Close()

	cfg := testConfig(t)
	cfg.Contact.FormEndpoint = form.URL
	env := newTestEnv(t, cfg)

	msg := dto.ContactRequest{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"}

	t.Run("invalid email", func(t *testing.T) {
		bad := msg
		bad.Email = "not-an-email"
		resp := env.do(t, "POST", "/api/contact", "", bad)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("delivered", func(t *testing.T) {
		res := decode[dto.ContactResponse](t, env.do(t, "POST", "/api/contact", "", msg))
		assert.True(t, res.Data.Delivered)
		assert.Equal(t, "ada@example.com", received["_replyto"])
	})

	t.Run("fallback", func(t *testing.T) {
		down := newTestEnv(t, testConfig(t))
		res := decode[dto.ContactResponse](t, down.do(t, "POST", "/api/contact", "", msg))
		assert.False(t, res.Data.Delivered)
		assert.Contains(t, res.Data.MailtoURL, "mailto:owner@example.com?subject=Hi&body=")
	})
}
