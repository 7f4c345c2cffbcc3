package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// ObjectStore persists uploaded images and hands out durable public URLs
// for them
type ObjectStore interface {
	// Upload stores the content under a collision-free name derived from
	// the upload time and the original filename, returning the stored path
	Upload(originalName string, content io.Reader) (string, error)
	// PublicURL returns the URL a stored path is served under
	PublicURL(path string) string
}

// diskStore keeps objects in a directory served as static files under
// /images
type diskStore struct {
	dir     string
	baseURL string
	now     func() time.Time
}

// NewDiskStore creates an ObjectStore rooted at dir; stored files are
// addressed under baseURL + /images/
func NewDiskStore(dir, baseURL string) (ObjectStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage dir %s: %w", dir, err)
	}
	return &diskStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}, nil
}

func (s *diskStore) Upload(originalName string, content io.Reader) (string, error) {
	// Timestamp prefix keeps repeated uploads of the same filename from
	// colliding; Base strips any directory components a client sends
	name := fmt.Sprintf("%d_%s", s.now().UnixMilli(), filepath.Base(originalName))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating object %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		return "", fmt.Errorf("writing object %s: %w", name, err)
	}

	log.WithFields(logrus.Fields{
		"object": name,
		"dir":    s.dir,
	}).Info("Stored uploaded image")

	return name, nil
}

func (s *diskStore) PublicURL(path string) string {
	return fmt.Sprintf("%s/images/%s", s.baseURL, path)
}

// Dir returns the directory objects are stored in, for static serving
func (s *diskStore) Dir() string {
	return s.dir
}
