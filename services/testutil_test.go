package services

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"testing"
	"time"

	"tourgid/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "tourgid.db")), &gorm.Config{})
	if err != nil {
		t.Fatal("failed to open test database:", err)
	}

	if err := models.Migrate(db); err != nil {
		t.Fatal("failed to migrate test database:", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, login string, isModerator bool) *models.User {
	t.Helper()

	user := &models.User{
		Login:        login,
		PasswordHash: "x",
		IsModerator:  isModerator,
		CreatedAt:    time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatal("failed to create test user:", err)
	}

	return user
}

type testFile struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

// buildMultipart assembles a request the way the tour editor posts it and
// parses it back, yielding the value and file maps the handlers hand to the
// service.
func buildMultipart(t *testing.T, fields map[string][]string, files []testFile) (map[string][]string, map[string][]*multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, vals := range fields {
		for _, val := range vals {
			if err := w.WriteField(key, val); err != nil {
				t.Fatal(err)
			}
		}
	}

	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.filename+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(f.data); err != nil {
			t.Fatal(err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	req, err := http.NewRequest("POST", "/", io.NopCloser(&buf))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatal(err)
	}

	return req.MultipartForm.Value, req.MultipartForm.File
}
