package feedback

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/feedback/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(&Config{BaseURL: srv.URL + "/", Timeout: time.Second}, logger.NewNop())
}

func TestClient_GetFeedbacks(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/feedbacks", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("productId"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"productId":7,"userId":"u1","login":"ivan","text":"Отличный вкус","grade":5,"createDate":"2024-03-01T10:00:00Z"}]`))
	})

	got, err := c.GetFeedbacks(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ivan", got[0].Login)
	assert.Equal(t, 5, got[0].Grade)
	assert.EqualValues(t, 7, got[0].ProductID)
	assert.Equal(t, 2024, got[0].CreatedAt.Year())
}

func TestClient_GetFeedbacksNullBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	})

	got, err := c.GetFeedbacks(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestClient_GetProductRating(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/feedbacks/rating", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("productId"))
		w.Write([]byte(`4.5`))
	})

	got, err := c.GetProductRating(context.Background(), 3)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, got, 0.0001)
}

func TestClient_AddFeedback(t *testing.T) {
	var received dto.AddFeedbackInput
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/feedbacks", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	})

	in := &dto.AddFeedbackInput{ProductID: 2, UserID: "u1", Login: "ivan", Text: "ok", Grade: 4}
	require.NoError(t, c.AddFeedback(context.Background(), in))
	assert.Equal(t, *in, received)
}

func TestClient_DeleteFeedback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/feedbacks/15", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteFeedback(context.Background(), 15))
}

func TestClient_RemoteFailures(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
		_, err := c.GetFeedbacks(context.Background(), 1)
		assert.ErrorIs(t, err, model.ErrRemoteService)
	})

	t.Run("bad payload", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		})
		_, err := c.GetProductRating(context.Background(), 1)
		assert.ErrorIs(t, err, model.ErrRemoteService)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		c := NewClient(&Config{BaseURL: srv.URL}, logger.NewNop())

		err := c.DeleteFeedback(context.Background(), 1)
		assert.ErrorIs(t, err, model.ErrRemoteService)
	})
}

func TestAddFeedbackInput_Validate(t *testing.T) {
	valid := dto.AddFeedbackInput{ProductID: 1, Text: " nice ", Grade: 5}
	require.NoError(t, valid.Validate())
	assert.Equal(t, "nice", valid.Text)

	for _, in := range []dto.AddFeedbackInput{
		{ProductID: 0, Text: "x", Grade: 3},
		{ProductID: 1, Text: "  ", Grade: 3},
		{ProductID: 1, Text: "x", Grade: 0},
		{ProductID: 1, Text: "x", Grade: 6},
	} {
		in := in
		assert.ErrorIs(t, in.Validate(), model.ErrValidation)
	}
}
