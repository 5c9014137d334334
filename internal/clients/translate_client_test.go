package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTranslateResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "single sentence",
			body: `[[["I love this song","Me encanta esta canción",null,null,1]],null,"es"]`,
			want: "I love this song",
		},
		{
			name: "multiple segments concatenated",
			body: `[[["Hello. ","Hola. ",null,null,1],["How are you?","¿Cómo estás?",null,null,1]],null,"es"]`,
			want: "Hello. How are you?",
		},
		{
			name: "empty payload",
			body: `[]`,
			want: "",
		},
		{
			name: "null sentence list",
			body: `[null,null,"en"]`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTranslateResponse([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTranslateResponse_InvalidJSON(t *testing.T) {
	_, err := parseTranslateResponse([]byte(`not json`))
	assert.Error(t, err)
}

func TestTranslate_SendsExpectedQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "gtx", q.Get("client"))
		require.Equal(t, "auto", q.Get("sl"))
		require.Equal(t, "en", q.Get("tl"))
		require.Equal(t, "Me encanta esta canción", q.Get("q"))

		fmt.Fprint(w, `[[["I love this song","Me encanta esta canción",null,null,1]],null,"es"]`)
	}))
	defer srv.Close()

	tc := &TranslateClient{
		Client:  &http.Client{Timeout: 5 * time.Second},
		BaseURL: srv.URL,
	}

	got, err := tc.Translate(context.Background(), "Me encanta esta canción")
	require.NoError(t, err)
	assert.Equal(t, "I love this song", got)
}

func TestTranslate_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	tc := &TranslateClient{
		Client:  &http.Client{Timeout: 5 * time.Second},
		BaseURL: srv.URL,
	}

	_, err := tc.Translate(context.Background(), "hola")
	assert.Error(t, err)
}
