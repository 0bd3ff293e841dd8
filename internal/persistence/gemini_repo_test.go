package persistence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davidmrt/promptforge/internal/domain"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeminiTestServer(t *testing.T, status int, reply string, capture *generateContentReq) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/models/gemini-flash-latest:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		if capture != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}

		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
}

func testRepo(serverUrl string) GeminiRepo {
	return GeminiRepo{
		Client:  resty.New(),
		APIKey:  "test-key",
		Model:   "gemini-flash-latest",
		BaseUrl: serverUrl,
	}
}

func TestGenerate(t *testing.T) {
	reply := `{"candidates": [{"content": {"parts": [{"text": "{\"optimized_prompt\": \"p\"}"}], "role": "model"}}]}`

	var captured generateContentReq
	server := newGeminiTestServer(t, 200, reply, &captured)
	defer server.Close()

	repo := testRepo(server.URL)

	config := domain.GenerationConfig{
		Temperature:      0.7,
		ResponseMIMEType: "application/json",
		ResponseSchema:   &domain.Schema{Type: domain.TypeObject},
	}

	text, err := repo.Generate(context.Background(), "optimize this", config)

	require.NoError(t, err)
	assert.Equal(t, `{"optimized_prompt": "p"}`, text)

	require.Len(t, captured.Contents, 1)
	require.Len(t, captured.Contents[0].Parts, 1)
	assert.Equal(t, "optimize this", captured.Contents[0].Parts[0].Text)
	assert.InDelta(t, 0.7, captured.GenerationConfig.Temperature, 0.001)
	assert.Equal(t, "application/json", captured.GenerationConfig.ResponseMIMEType)
	require.NotNil(t, captured.GenerationConfig.ResponseSchema)
	assert.Equal(t, domain.TypeObject, captured.GenerationConfig.ResponseSchema.Type)
}

func TestGenerateWithoutSchemaOmitsConstraint(t *testing.T) {
	reply := `{"candidates": [{"content": {"parts": [{"text": "translated"}]}}]}`

	var captured generateContentReq
	server := newGeminiTestServer(t, 200, reply, &captured)
	defer server.Close()

	repo := testRepo(server.URL)

	text, err := repo.Generate(context.Background(), "translate this", domain.GenerationConfig{Temperature: 0.1})

	require.NoError(t, err)
	assert.Equal(t, "translated", text)
	assert.Nil(t, captured.GenerationConfig.ResponseSchema)
	assert.Empty(t, captured.GenerationConfig.ResponseMIMEType)
}

func TestGenerateUnexpectedStatusCode(t *testing.T) {
	server := newGeminiTestServer(t, 429, `{"error": {"message": "quota exceeded"}}`, nil)
	defer server.Close()

	repo := testRepo(server.URL)

	_, err := repo.Generate(context.Background(), "optimize this", domain.GenerationConfig{Temperature: 0.7})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateNoCandidates(t *testing.T) {
	server := newGeminiTestServer(t, 200, `{"candidates": []}`, nil)
	defer server.Close()

	repo := testRepo(server.URL)

	_, err := repo.Generate(context.Background(), "optimize this", domain.GenerationConfig{Temperature: 0.7})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}
