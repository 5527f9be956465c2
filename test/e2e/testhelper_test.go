package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-variants/internal/adapter/handler"
	pgRepo "github.com/marcos-nsantos/image-variants/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/image-variants/internal/domain/valueobject"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/auth"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/config"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/database"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/observability"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/server"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/storage"
	"github.com/marcos-nsantos/image-variants/internal/usecase/render"
	"github.com/marcos-nsantos/image-variants/internal/usecase/upload"
	"github.com/marcos-nsantos/image-variants/migrations"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
	testPublicURL  = "https://cdn.example.com/media"
	apiBasePath    = "/api/v1"
)

type testAppConfig struct {
	// rateLimit > 0 starts a redis container and limits upload requests.
	rateLimit int
}

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Containers []testcontainers.Container
	BaseURL    string
	UploadDir  string
	JWT        *auth.JWTService
	httpClient *http.Client
}

func setupTestApp(t *testing.T, cfg testAppConfig) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	app := &TestApp{
		Containers: []testcontainers.Container{pgContainer},
		UploadDir:  t.TempDir(),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	app.Pool = pool

	require.NoError(t, database.RunMigrations(ctx, pool, migrations.FS))

	logger, _ := zap.NewDevelopment()

	variantSetRepo := pgRepo.NewVariantSetRepo(pool)
	app.JWT = auth.NewJWTService(testJWTSecret, 15*time.Minute)

	uploadSvc := upload.NewService(
		storage.NewLocalStorage(app.UploadDir, testPublicURL),
		storage.NewImageProcessor(),
		variantSetRepo,
		observability.NewNoopMetrics(),
		logger,
	)

	uploadHandler := handler.NewUploadHandler(uploadSvc, handler.UploadHandlerConfig{
		Defaults: upload.Options{
			UploadPath: app.UploadDir,
			Extensions: upload.DefaultExtensions,
			Resize:     valueobject.ResizeBoth,
		},
		MaxSize: 5 << 20,
		TempDir: t.TempDir(),
	})

	var rateLimiter *middleware.RateLimiter
	if cfg.rateLimit > 0 {
		rateLimiter = middleware.NewRateLimiter(app.startRedis(t), config.RateLimitConfig{
			Enabled:        true,
			RequestsPerMin: cfg.rateLimit,
		}, logger)
	}

	router := server.NewRouter(server.RouterConfig{
		UploadHandler:  uploadHandler,
		RenderHandler:  handler.NewRenderHandler(render.NewService()),
		AuthMiddleware: middleware.NewAuthMiddleware(app.JWT),
		RateLimiter:    rateLimiter,
		Logger:         logger,
		Environment:    "test",
	})

	app.Server = httptest.NewServer(router.Engine())
	app.BaseURL = app.Server.URL

	return app
}

func (app *TestApp) startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	app.Containers = append(app.Containers, container)

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	require.NoError(t, client.Ping(ctx).Err())
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	if app.Server != nil {
		app.Server.Close()
	}
	if app.Pool != nil {
		app.Pool.Close()
	}

	ctx := context.Background()
	for _, c := range app.Containers {
		if err := c.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}
}

func (app *TestApp) token(t *testing.T) string {
	t.Helper()

	token, _, err := app.JWT.GenerateAccessToken("e2e-client")
	require.NoError(t, err)
	return token
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, app.BaseURL+apiBasePath+path, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return app.httpClient.Do(req)
}

// upload posts fileContent as the multipart "file" field with the given
// form fields.
func (app *TestApp) upload(fileName string, fileContent []byte, fields map[string]string, headers map[string]string) (*http.Response, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, err
		}
	}

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(fileContent); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+apiBasePath+"/uploads", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

func encodeImage(t *testing.T, width, height int, format imaging.Format) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Pix[y*img.Stride+x*4+0] = uint8(x % 256)
			img.Pix[y*img.Stride+x*4+1] = uint8(y % 256)
			img.Pix[y*img.Stride+x*4+3] = 255
		}
	}

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, format), fmt.Sprintf("encoding %dx%d", width, height))
	return buf.Bytes()
}
