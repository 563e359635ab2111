package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalev/qr-mint/models"
)

func newTestGenerator(t *testing.T, handler http.Handler) RemoteGenerator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPRemoteGenerator(HTTPClientConfig{BaseURL: srv.URL})
}

func TestGenerate(t *testing.T) {
	t.Run("successful generation", func(t *testing.T) {
		gen := newTestGenerator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/qr/generate", r.URL.Path)

			var req models.GenerateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, models.WiFi, req.Kind)
			require.NotNil(t, req.WiFi)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(models.EncodedPayload{
				Kind: models.WiFi,
				Text: "WIFI:T:WPA;S:Home;P:secret1;;",
			})
		}))

		payload, err := gen.Generate(context.Background(), models.GenerateRequest{
			Kind: models.WiFi,
			WiFi: &models.WiFiFields{SSID: "Home", Password: "secret1", Encryption: models.EncryptionWPA},
		})

		require.NoError(t, err)
		assert.Equal(t, models.WiFi, payload.Kind)
		assert.Equal(t, "WIFI:T:WPA;S:Home;P:secret1;;", payload.Text)
	})

	t.Run("server validation error round-trips", func(t *testing.T) {
		gen := newTestGenerator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.NewMissingFieldError("ssid"))
		}))

		_, err := gen.Generate(context.Background(), models.GenerateRequest{Kind: models.WiFi})

		var vErr *models.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "ssid", vErr.Field)
		assert.Equal(t, models.ReasonMissing, vErr.Reason)
	})

	t.Run("opaque 400 maps to ErrBadRequest", func(t *testing.T) {
		gen := newTestGenerator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "cannot parse body", http.StatusBadRequest)
		}))

		_, err := gen.Generate(context.Background(), models.GenerateRequest{Kind: models.WiFi})

		require.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("server failure maps to ErrInternalServerError", func(t *testing.T) {
		gen := newTestGenerator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))

		_, err := gen.Generate(context.Background(), models.GenerateRequest{Kind: models.WiFi})

		require.ErrorIs(t, err, ErrInternalServerError)
	})

	t.Run("unreachable server", func(t *testing.T) {
		gen := NewHTTPRemoteGenerator(HTTPClientConfig{BaseURL: "http://127.0.0.1:1"})

		_, err := gen.Generate(context.Background(), models.GenerateRequest{Kind: models.WiFi})

		require.Error(t, err)
	})
}

func TestGenerateImage(t *testing.T) {
	pngMagic := []byte{0x89, 'P', 'N', 'G'}

	gen := newTestGenerator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/qr/image", r.URL.Path)

		var req models.GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, 512, req.Size)

		w.Header().Set("Content-Type", "image/png")
		w.Write(pngMagic)
	}))

	img, err := gen.GenerateImage(context.Background(), models.GenerateRequest{
		Kind: models.GenericText,
		Text: &models.TextFields{Text: "hello"},
		Size: 512,
	})

	require.NoError(t, err)
	assert.Equal(t, pngMagic, img)
}

func TestKinds(t *testing.T) {
	gen := newTestGenerator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/qr/kinds", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]string{"wifi", "vcard", "email"})
	}))

	kinds, err := gen.Kinds(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"wifi", "vcard", "email"}, kinds)
}

func TestVersion(t *testing.T) {
	gen := newTestGenerator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/version/", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.VersionResponse{
			BuildVersion: "1.2.3",
			BuildDate:    "2026-08-01",
			BuildCommit:  "abc1234",
		})
	}))

	version, err := gen.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version.BuildVersion)
	assert.Equal(t, "abc1234", version.BuildCommit)
}

func TestMapHTTPError_Decoding(t *testing.T) {
	t.Run("validation body without field is opaque", func(t *testing.T) {
		vErr := decodeValidationError([]byte(`{"reason":"Missing"}`))
		assert.Nil(t, vErr)
	})

	t.Run("non-json body is opaque", func(t *testing.T) {
		vErr := decodeValidationError([]byte("plain text"))
		assert.Nil(t, vErr)
	})

	t.Run("valid body decodes", func(t *testing.T) {
		vErr := decodeValidationError([]byte(`{"field":"latitude","reason":"Missing"}`))
		require.NotNil(t, vErr)
		assert.Equal(t, "latitude", vErr.Field)
	})
}
