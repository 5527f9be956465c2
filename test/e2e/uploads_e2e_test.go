package e2e_test

import (
	"image"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageFileSize(t *testing.T, path string) (int, int) {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestE2E_Uploads(t *testing.T) {
	app := setupTestApp(t, testAppConfig{})
	defer app.cleanup(t)

	token := app.token(t)
	var setID string

	t.Run("writes resized variants", func(t *testing.T) {
		content := encodeImage(t, 1234, 567, imaging.JPEG)

		resp, err := app.upload("Holiday Photo.jpg", content, map[string]string{
			"dimensions": "200x200,100x100",
			"token":      "e2e01",
		}, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			ID       string            `json:"id"`
			Token    string            `json:"token"`
			Files    map[string]string `json:"files"`
			Variants []struct {
				Label  string `json:"label"`
				URL    string `json:"url"`
				Width  int    `json:"width"`
				Height int    `json:"height"`
			} `json:"variants"`
		}
		parseResponse(t, resp, &body)

		assert.Equal(t, "e2e01", body.Token)
		assert.Equal(t, map[string]string{
			"200x200": "Holiday-Photo-200-e2e01.jpg",
			"100x100": "Holiday-Photo-100-e2e01.jpg",
		}, body.Files)
		require.Len(t, body.Variants, 2)
		assert.Equal(t, "200x200", body.Variants[0].Label)
		assert.Equal(t, testPublicURL+"/Holiday-Photo-200-e2e01.jpg", body.Variants[0].URL)

		w, h := imageFileSize(t, filepath.Join(app.UploadDir, "Holiday-Photo-200-e2e01.jpg"))
		assert.Equal(t, 200, w)
		assert.Equal(t, 91, h)

		require.NotEmpty(t, body.ID)
		setID = body.ID
	})

	t.Run("returns the recorded variant set", func(t *testing.T) {
		require.NotEmpty(t, setID)

		resp, err := app.get("/uploads/"+setID, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		parseResponse(t, resp, &body)

		assert.Equal(t, "Holiday Photo.jpg", body["original_name"])
		assert.Equal(t, "both", body["resize_mode"])
		assert.Len(t, body["variants"], 2)
	})

	t.Run("relocates non-image files", func(t *testing.T) {
		resp, err := app.upload("report.pdf", []byte("%PDF-1.4 fake"), map[string]string{"token": "e2e02"}, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			Files map[string]string `json:"files"`
		}
		parseResponse(t, resp, &body)

		assert.Equal(t, map[string]string{"": "report-e2e02.pdf"}, body.Files)
		assert.FileExists(t, filepath.Join(app.UploadDir, "report-e2e02.pdf"))
	})

	t.Run("rejects unsupported formats with dimensions", func(t *testing.T) {
		resp, err := app.upload("scan.bmp", []byte("BM fake"), map[string]string{"dimensions": "100x100"}, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)

		var body map[string]any
		parseResponse(t, resp, &body)
		assert.Equal(t, "UNSUPPORTED_FORMAT", body["code"])
	})

	t.Run("rejects corrupt images", func(t *testing.T) {
		resp, err := app.upload("broken.png", []byte("not a png"), map[string]string{"dimensions": "100x100"}, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("requires a token", func(t *testing.T) {
		resp, err := app.upload("a.png", encodeImage(t, 10, 10, imaging.PNG), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("unknown variant set", func(t *testing.T) {
		resp, err := app.get("/uploads/00000000-0000-0000-0000-000000000000", authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestE2E_Render(t *testing.T) {
	app := setupTestApp(t, testAppConfig{})
	defer app.cleanup(t)

	resp, err := app.get("/render?src=/media/a.jpg&caption=Tom+%26+Jerry&natural_width=800&natural_height=600&width=400&height=400", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Attributes map[string]string `json:"attributes"`
	}
	parseResponse(t, resp, &body)

	assert.Equal(t, "533", body.Attributes["width"])
	assert.Equal(t, "400", body.Attributes["height"])
	assert.Equal(t, "margin-left:-66px", body.Attributes["style"])
	assert.Equal(t, "Tom &amp; Jerry", body.Attributes["alt"])
}

func TestE2E_RateLimit(t *testing.T) {
	app := setupTestApp(t, testAppConfig{rateLimit: 2})
	defer app.cleanup(t)

	token := app.token(t)
	content := []byte("plain")

	for i := 0; i < 2; i++ {
		resp, err := app.upload("a.txt", content, nil, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Remaining"))
		resp.Body.Close()
	}

	resp, err := app.upload("a.txt", content, nil, authHeader(token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get("Retry-After"))
	resp.Body.Close()
}
