package services

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// MediaService persists uploaded content under a collision-resistant name
// and hands back the filename as the durable reference. Replaced or removed
// blocks never trigger deletion of the underlying file; orphans accumulate
// and reclaiming them is out of scope.
type MediaService interface {
	Store(fh *multipart.FileHeader) (string, error)
	StoreBytes(data []byte, originalName string) (string, error)
}

type mediaService struct {
	uploadDir string
}

func NewMediaService(uploadDir string) MediaService {
	return &mediaService{uploadDir: uploadDir}
}

func (s *mediaService) Store(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	return s.StoreBytes(data, fh.Filename)
}

func (s *mediaService) StoreBytes(data []byte, originalName string) (string, error) {
	// The extension is whatever follows the last dot; a name with no dot
	// contributes itself wholesale. Entropy of the token makes collisions
	// negligible, so there is no retry.
	parts := strings.Split(originalName, ".")
	ext := parts[len(parts)-1]

	filename := secureFilename(uuid.New().String() + "." + ext)

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(s.uploadDir, filename), data, 0o644); err != nil {
		return "", err
	}

	log.WithField("filename", filename).Debug("stored media file")
	return filename, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// secureFilename strips anything that could escape the upload directory or
// confuse the filesystem, leaving a flat, portable name.
func secureFilename(name string) string {
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.TrimLeft(name, ".")
}
