package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/stretchr/testify/require"

	"github.com/journalapp/journal/internal/handler/dto"
)

const docBaseURL = "http://localhost:8080"

func loadOpenAPI(t *testing.T) (*openapi3.T, routers.Router) {
	t.Helper()

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(filepath.Join("..", "..", "docs", "api", "openapi.yaml"))
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	router, err := gorillamux.NewRouter(doc)
	require.NoError(t, err)
	return doc, router
}

// checkContract sends a request through the API and validates the
// response against the OpenAPI document.
func checkContract(t *testing.T, api *testAPI, docRouter routers.Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, docBaseURL+path, bytes.NewReader(raw))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	route, pathParams, err := docRouter.FindRoute(req)
	require.NoError(t, err, "%s %s is not documented", method, path)

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status: rec.Code,
		Header: rec.Header(),
		Body:   io.NopCloser(bytes.NewReader(rec.Body.Bytes())),
	}
	require.NoError(t, openapi3filter.ValidateResponse(context.Background(), input), "%s %s -> %d %s", method, path, rec.Code, rec.Body.String())
	return rec
}

func TestContract_DocumentsRoutes(t *testing.T) {
	doc, _ := loadOpenAPI(t)

	for _, path := range []string{
		"/healthz",
		"/readyz",
		"/api/auth/sign-up",
		"/api/auth/sign-in",
		"/api/entries",
		"/api/entries/{entryId}",
	} {
		if doc.Paths.Find(path) == nil {
			t.Errorf("expected path %s in openapi.yaml", path)
		}
	}
}

func TestContract_Responses(t *testing.T) {
	_, docRouter := loadOpenAPI(t)
	api := newTestAPI(t, true)

	creds := dto.CredentialsRequest{Username: "alice", Password: "pw"}
	entry := dto.EntryRequest{Title: "t", Notes: "n", PhotoURL: "p"}

	checkContract(t, api, docRouter, http.MethodGet, "/healthz", "", nil)
	checkContract(t, api, docRouter, http.MethodGet, "/readyz", "", nil)

	checkContract(t, api, docRouter, http.MethodPost, "/api/auth/sign-up", "", creds)
	checkContract(t, api, docRouter, http.MethodPost, "/api/auth/sign-up", "", creds)
	checkContract(t, api, docRouter, http.MethodPost, "/api/auth/sign-up", "", dto.CredentialsRequest{})
	checkContract(t, api, docRouter, http.MethodPost, "/api/auth/sign-in", "", dto.CredentialsRequest{Username: "alice", Password: "nope"})

	rec := checkContract(t, api, docRouter, http.MethodPost, "/api/auth/sign-in", "", creds)
	var session dto.SignInResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	token := session.Token

	checkContract(t, api, docRouter, http.MethodGet, "/api/entries", "", nil)
	checkContract(t, api, docRouter, http.MethodGet, "/api/entries", token, nil)
	checkContract(t, api, docRouter, http.MethodPost, "/api/entries", token, dto.EntryRequest{Title: "t"})

	rec = checkContract(t, api, docRouter, http.MethodPost, "/api/entries", token, entry)
	require.Equal(t, http.StatusCreated, rec.Code)
	path := "/api/entries/" + itoa(decodeEntry(t, rec).ID)

	checkContract(t, api, docRouter, http.MethodGet, path, token, nil)
	checkContract(t, api, docRouter, http.MethodPut, path, token, entry)
	checkContract(t, api, docRouter, http.MethodGet, "/api/entries/abc", token, nil)
	checkContract(t, api, docRouter, http.MethodGet, "/api/entries/99999", token, nil)
	checkContract(t, api, docRouter, http.MethodDelete, path, token, nil)
	checkContract(t, api, docRouter, http.MethodDelete, path, token, nil)
}
