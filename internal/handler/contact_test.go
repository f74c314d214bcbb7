package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
)

const contactBody = `{
	"name": "Ravi Kumar",
	"phone": "9876543210",
	"email": "ravi@example.com",
	"city": "Bengaluru",
	"landSize": "1200 sqft",
	"north": {"feet": "40", "inches": "6"},
	"south": {"feet": "40"},
	"east": {"feet": "30"},
	"west": {"feet": "30"},
	"landFacing": "east",
	"projectType": "residential",
	"message": "Looking to start in October"
}`

func TestContactSubmit(t *testing.T) {
	env := newTestEnv(t)
	h := NewContactHandler(env.contactSvc, env.validator, env.logger)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(contactBody))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp contactCreatedResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.NotEmpty(t, resp.Message)

	// The submission landed in the store with the full-form source.
	form, err := env.store.GetContactForm(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", form.Name)
	assert.Equal(t, domain.ContactSourceFull, form.Source)
}

func TestContactSubmitValidationFailure(t *testing.T) {
	env := newTestEnv(t)
	h := NewContactHandler(env.contactSvc, env.validator, env.logger)

	tests := []struct {
		name string
		body string
	}{
		{"missing fields", `{"name": "Ravi Kumar"}`},
		{"short phone", strings.Replace(contactBody, "9876543210", "12345", 1)},
		{"not json", `this is not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Submit(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp JSONError
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, domain.EINVALID, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}

	// Nothing was stored.
	forms, err := env.store.ListContactForms(context.Background())
	require.NoError(t, err)
	assert.Empty(t, forms)
}

func TestContactSubmitHero(t *testing.T) {
	env := newTestEnv(t)
	h := NewContactHandler(env.contactSvc, env.validator, env.logger)

	body := `{
		"name": "Meera Shah",
		"phone": "9123456780",
		"email": "meera@example.com",
		"projectType": "commercial"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/hero-contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.SubmitHero(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	form, err := env.store.GetContactForm(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactSourceHero, form.Source)
	assert.Equal(t, "Not provided", form.City)
}

func TestContactSubmitHeroPopupSource(t *testing.T) {
	env := newTestEnv(t)
	h := NewContactHandler(env.contactSvc, env.validator, env.logger)

	body := `{
		"name": "Arun Pillai",
		"phone": "9000000000",
		"email": "arun@example.com",
		"projectType": "residential",
		"source": "popup"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/hero-contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.SubmitHero(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	form, err := env.store.GetContactForm(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactSourcePopup, form.Source)
}

func TestContactSubmitHeroValidationFailure(t *testing.T) {
	env := newTestEnv(t)
	h := NewContactHandler(env.contactSvc, env.validator, env.logger)

	req := httptest.NewRequest(http.MethodPost, "/api/hero-contact", strings.NewReader(`{"name": "Meera Shah"}`))
	rec := httptest.NewRecorder()
	h.SubmitHero(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp JSONError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, domain.EINVALID, resp.Error.Code)
}
