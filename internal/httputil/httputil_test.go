package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"confighub/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalString_UnmarshalJSON(t *testing.T) {
	type body struct {
		Description OptionalString `json:"description"`
	}

	tests := []struct {
		name        string
		input       string
		wantPresent bool
		wantNull    bool
		wantValue   string
	}{
		{name: "absent", input: `{}`},
		{name: "null", input: `{"description":null}`, wantPresent: true, wantNull: true},
		{name: "empty", input: `{"description":""}`, wantPresent: true},
		{name: "value", input: `{"description":"hi"}`, wantPresent: true, wantValue: "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b body
			require.NoError(t, json.Unmarshal([]byte(tt.input), &b))

			assert.Equal(t, tt.wantPresent, b.Description.Present)
			assert.Equal(t, tt.wantNull, b.Description.IsNull())
			if tt.wantPresent && !tt.wantNull {
				require.NotNil(t, b.Description.Value)
				assert.Equal(t, tt.wantValue, *b.Description.Value)
			}
		})
	}

	var b body
	assert.Error(t, json.Unmarshal([]byte(`{"description":42}`), &b))
}

func TestParseJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"name":"a"}`},
		{name: "unknown field", body: `{"name":"a","extra":1}`, wantErr: true},
		{name: "empty body", body: ``, wantErr: true},
		{name: "trailing data", body: `{"name":"a"}{"name":"b"}`, wantErr: true},
		{name: "malformed", body: `{"name":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var dest payload
			err := ParseJSON(w, r, &dest)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a", dest.Name)
		})
	}
}

func TestParseJSON_BodyTooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	var dest struct {
		Name string `json:"name"`
	}
	err := ParseJSON(w, r, &dest)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBodyTooLarge)
	assert.Empty(t, dest.Name)
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?limit=3&bad=x&neg=-1", nil)

	n, err := QueryInt(r, "limit", 10)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = QueryInt(r, "missing", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	_, err = QueryInt(r, "bad", 10)
	assert.Error(t, err)
	_, err = QueryInt(r, "neg", 10)
	assert.Error(t, err)
}

func TestRespondErrorWithExtras(t *testing.T) {
	w := httptest.NewRecorder()

	RespondErrorWithExtras(w, http.StatusNotFound, "folder f1: not found", map[string]interface{}{"resource": "folder"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Not Found", got["title"])
	assert.Equal(t, float64(404), got["status"])
	assert.Equal(t, "folder", got["resource"])
	assert.Equal(t, "folder f1: not found", got["detail"])
}

func TestClaimsContext(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetClaims(r))
	assert.Empty(t, GetUserID(r))

	claims := &models.IdentityClaims{}
	claims.Subject = "user-1"
	r = WithClaims(r, claims)

	assert.Same(t, claims, GetClaims(r))
	assert.Equal(t, "user-1", GetUserID(r))
}
