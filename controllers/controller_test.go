package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"snackmart-backend/controllers"
	"snackmart-backend/models"
	"snackmart-backend/routes"
	"snackmart-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPasetoKey = "0123456789abcdef0123456789abcdef"

// fakeImages merekam panggilan ke image host tanpa menyentuh jaringan.
type fakeImages struct {
	uploaded []string
	deleted  []string
	fail     bool
}

func (f *fakeImages) Upload(_ context.Context, _ io.Reader, category string) (string, string, error) {
	if f.fail {
		return "", "", io.ErrUnexpectedEOF
	}
	f.uploaded = append(f.uploaded, category)
	return "https://res.cloudinary.com/demo/image/upload/v1/snackmart/" + category + "/test.jpg",
		"snackmart/" + category + "/test", nil
}

func (f *fakeImages) Delete(_ context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

// fakeChat merekam pesan yang diterima dan membalas dengan teks tetap.
type fakeChat struct {
	messages []string
	reply    string
	fail     bool
}

func (f *fakeChat) Reply(_ context.Context, message string, _ []models.Product) (string, error) {
	if f.fail {
		return "", io.ErrUnexpectedEOF
	}
	f.messages = append(f.messages, message)
	return f.reply, nil
}

type testEnv struct {
	ctrl   *controllers.Controller
	router *gin.Engine
	db     *gorm.DB
	images *fakeImages
	chat   *fakeChat
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// Satu koneksi supaya semua query melihat database in-memory yang sama.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Product{},
		&models.Banner{},
		&models.HighlightedProduct{},
	))

	images := &fakeImages{}
	chat := &fakeChat{reply: "Halo, ada yang bisa dibantu?"}
	ctrl := &controllers.Controller{
		Store:           store.New(db),
		Images:          images,
		Chat:            chat,
		PasetoSecretKey: []byte(testPasetoKey),
		Env:             "production",
	}

	return &testEnv{
		ctrl:   ctrl,
		router: routes.Setup(ctrl, "test"),
		db:     db,
		images: images,
		chat:   chat,
	}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
