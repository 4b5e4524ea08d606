package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, "test-token")
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": true, "data": []Project{}})
	})

	_, err := c.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestClientDecodesProject(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/project", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":   true,
			"data": Project{ID: "p1", Name: "Launch", Budget: 1000},
		})
	})

	project, err := c.CreateProject(context.Background(), "Launch", 1000)
	require.NoError(t, err)
	assert.Equal(t, "p1", project.ID)
	assert.Equal(t, 1000.0, project.Budget)
}

func TestClientMapsNotFound(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": false, "code": "NOT_FOUND"})
	})

	_, err := c.GetProject(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientMapsInvalidBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": false, "code": "INVALID_BODY"})
	})

	_, err := c.CreateProject(context.Background(), "", 0)
	assert.ErrorIs(t, err, ErrInvalidBody)
}

func TestClientMapsServerError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"ok": false, "code": "SERVER_ERROR", "error": "store unavailable",
		})
	})

	err := c.DeleteProject(context.Background(), "p1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "SERVER_ERROR", apiErr.Code)
	assert.Equal(t, "store unavailable", apiErr.Detail)
}

func TestCreateExpenseDefaultsCategory(t *testing.T) {
	var gotBody map[string]interface{}

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":   true,
			"data": Expense{ID: "e1", Category: "Uncategorized"},
		})
	})

	_, err := c.CreateExpense(context.Background(), ExpenseInput{ProjectID: "p1", Amount: 5})
	require.NoError(t, err)
	assert.Equal(t, "Uncategorized", gotBody["category"], "client mirrors the service default")
}

func TestExpenseUpdateOmitsAbsentFields(t *testing.T) {
	var raw map[string]json.RawMessage

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": true, "data": Expense{ID: "e1"}})
	})

	amount := 0.0
	_, err := c.UpdateExpense(context.Background(), "e1", ExpenseUpdate{Amount: &amount})
	require.NoError(t, err)

	assert.Contains(t, raw, "amount", "explicit zero must be sent")
	assert.NotContains(t, raw, "category")
	assert.NotContains(t, raw, "description")
}
