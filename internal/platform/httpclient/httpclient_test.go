package httpclient_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawcare/internal/platform/httpclient"
)

func newMockClient(t *testing.T) (*httpclient.Client, *httpmock.MockTransport) {
	t.Helper()
	mt := httpmock.NewMockTransport()
	c := httpclient.NewWithTransport(0, mt)
	c.BaseURL = "http://clinic.test"
	return c, mt
}

func TestDoJSON_DecodesBody(t *testing.T) {
	c, mt := newMockClient(t)
	mt.RegisterResponder(http.MethodGet, "http://clinic.test/pets",
		httpmock.NewStringResponder(200, `[{"id":1,"name":"Milo"}]`))

	var out []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	err := c.DoJSON(context.Background(), http.MethodGet, "/pets", nil, nil, &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Milo", out[0].Name)
}

func TestDoJSON_SendsBearerToken(t *testing.T) {
	c, mt := newMockClient(t)
	c.Token = "secret"

	var gotAuth string
	mt.RegisterResponder(http.MethodGet, "http://clinic.test/pets",
		func(req *http.Request) (*http.Response, error) {
			gotAuth = req.Header.Get("Authorization")
			return httpmock.NewStringResponse(200, `[]`), nil
		})

	require.NoError(t, c.DoJSON(context.Background(), http.MethodGet, "/pets", nil, nil, nil))
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestDoJSON_Non2xxIsHTTPError(t *testing.T) {
	c, mt := newMockClient(t)
	mt.RegisterResponder(http.MethodGet, "http://clinic.test/pets/9",
		httpmock.NewStringResponder(404, "pet not found"))

	err := c.DoJSON(context.Background(), http.MethodGet, "/pets/9", nil, nil, nil)
	var he *httpclient.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.StatusCode)
	assert.Equal(t, "pet not found", he.Body)
}

func TestDoJSON_PlainTextPassthrough(t *testing.T) {
	c, mt := newMockClient(t)
	mt.RegisterResponder(http.MethodGet, "http://clinic.test/health",
		httpmock.NewStringResponder(200, "ok"))

	// *string recibe el texto crudo en vez de fallar el decode.
	var text string
	require.NoError(t, c.DoJSON(context.Background(), http.MethodGet, "/health", nil, nil, &text))
	assert.Equal(t, "ok", text)

	// Cualquier otro destino es ParseError.
	var obj map[string]any
	err := c.DoJSON(context.Background(), http.MethodGet, "/health", nil, nil, &obj)
	var pe *httpclient.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "ok", pe.Raw)
}

func TestDoJSON_RelativePathRequiresBaseURL(t *testing.T) {
	c := httpclient.New(0)
	err := c.DoJSON(context.Background(), http.MethodGet, "/pets", nil, nil, nil)
	require.Error(t, err)
}

func TestDoJSON_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := httpclient.New(50 * time.Millisecond)
	err := c.DoJSON(context.Background(), http.MethodGet, srv.URL, nil, nil, nil)
	assert.True(t, errors.Is(err, httpclient.ErrTimeout), "expected ErrTimeout, got %v", err)
}

func TestUploadFile_Multipart(t *testing.T) {
	var gotContentType string
	var gotField string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		file, header, err := r.FormFile("file")
		if err == nil {
			gotField = header.Filename
			_ = file.Close()
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"/uploads/1_photo.jpg"}`))
	}))
	defer srv.Close()

	c := httpclient.New(0)
	var out struct {
		URL string `json:"url"`
	}
	err := c.UploadFile(context.Background(), srv.URL, "photo.jpg",
		bytes.NewReader([]byte("jpegdata")), &out)
	require.NoError(t, err)
	assert.Contains(t, gotContentType, "multipart/form-data")
	assert.Equal(t, "photo.jpg", gotField)
	assert.Equal(t, "/uploads/1_photo.jpg", out.URL)
}
