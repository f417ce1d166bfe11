package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/timesheets/internal/client/client"
	"github.com/dmitrijs2005/timesheets/internal/client/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRoutes(r chi.Router, _ *recorded) {
	r.Get("/users", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []models.User{{ID: "1", Username: "a", Role: models.RoleUser}, {ID: "2", Username: "b", Role: models.RoleAdmin}})
	})
	r.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "id") != "1" {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
			return
		}
		writeJSON(w, http.StatusOK, models.User{ID: "1", Username: "a", Role: models.RoleUser})
	})
	r.Post("/users", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusCreated, models.User{ID: "3", Username: "c", Role: models.RoleUser})
	})
	r.Delete("/users/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/users/stats/weekly", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []models.WeeklyUserStats{{UserID: "1", Username: "a", TotalHours: 32, UtilizationPercentage: 80}})
	})
}

func TestUserService(t *testing.T) {
	ctx := context.Background()
	api, rec := newFakeAPI(t, "tok", userRoutes)
	svc := NewUserService(api)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "Bearer tok", rec.auth)

	u, err := svc.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "a", u.Username)

	_, err = svc.Get(ctx, "9")
	assert.ErrorIs(t, err, client.ErrNotFound)
	assert.Equal(t, "User not found", client.Message(err))

	created, err := svc.Create(ctx, models.NewUser{Username: "c", Password: "pw", ConfirmPassword: "pw", Role: models.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, models.ID("3"), created.ID)
	assert.Equal(t, map[string]any{"username": "c", "password": "pw", "role": "USER"}, rec.body)

	require.NoError(t, svc.Delete(ctx, "2"))
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/api/users/2", rec.path)

	stats, err := svc.WeeklyStats(ctx, "2026-01-05", "2026-01-11")
	require.NoError(t, err)
	assert.Len(t, stats, 1)
	assert.Equal(t, map[string]string{"startDate": "2026-01-05", "endDate": "2026-01-11"}, rec.query)
}

func TestUserService_Create_PasswordMismatch(t *testing.T) {
	api, rec := newFakeAPI(t, "tok", userRoutes)

	_, err := NewUserService(api).Create(context.Background(), models.NewUser{Username: "c", Password: "a", ConfirmPassword: "b", Role: models.RoleUser})

	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Equal(t, "passwords do not match", client.Message(err))
	assert.Empty(t, rec.method)
}

func TestUserService_WeeklyStats_NoRange(t *testing.T) {
	api, rec := newFakeAPI(t, "tok", userRoutes)

	_, err := NewUserService(api).WeeklyStats(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, rec.query)
}
