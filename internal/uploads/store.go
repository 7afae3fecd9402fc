// Package uploads stores user-submitted image files (book covers and
// profile pictures) under distinct public-readable directories.
//
// Files are written before the database row referencing them is
// committed, so a stored filename always points at an existing file.
// The reverse (an orphaned file after a crash) is acceptable and no
// sweep is performed.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Subdirectories under the uploads root.
const (
	CoversDir          = "covers"
	ProfilePicturesDir = "profile_pictures"
)

// Store handles saving and deleting uploaded image files.
type Store struct {
	rootDir string
}

// NewStore creates the uploads directories if needed.
func NewStore(rootDir string) (*Store, error) {
	for _, sub := range []string{CoversDir, ProfilePicturesDir} {
		if err := os.MkdirAll(filepath.Join(rootDir, sub), 0755); err != nil {
			return nil, fmt.Errorf("create uploads dir: %w", err)
		}
	}
	return &Store{rootDir: rootDir}, nil
}

// SaveCover stores a book cover image and returns its generated filename.
func (s *Store) SaveCover(src io.Reader, originalName string) (string, error) {
	return s.save(CoversDir, src, originalName)
}

// SaveProfilePicture stores a profile picture and returns its generated filename.
func (s *Store) SaveProfilePicture(src io.Reader, originalName string) (string, error) {
	return s.save(ProfilePicturesDir, src, originalName)
}

// DeleteCover removes a stored cover image. Missing files are not an error.
func (s *Store) DeleteCover(filename string) error {
	return s.delete(CoversDir, filename)
}

// DeleteProfilePicture removes a stored profile picture. Missing files are not an error.
func (s *Store) DeleteProfilePicture(filename string) error {
	return s.delete(ProfilePicturesDir, filename)
}

// CoversPath returns the directory covers are served from.
func (s *Store) CoversPath() string {
	return filepath.Join(s.rootDir, CoversDir)
}

// ProfilePicturesPath returns the directory profile pictures are served from.
func (s *Store) ProfilePicturesPath() string {
	return filepath.Join(s.rootDir, ProfilePicturesDir)
}

// save writes the upload to a temp file in the target directory and
// renames it into place, so a partially written file is never served.
func (s *Store) save(subdir string, src io.Reader, originalName string) (string, error) {
	filename := generateFilename(originalName)
	finalPath := filepath.Join(s.rootDir, subdir, filename)

	tmpFile, err := os.CreateTemp(filepath.Join(s.rootDir, subdir), "upload_tmp_")
	if err != nil {
		return "", err
	}
	tmpPath := tmpFile.Name()
	defer func() {
		tmpFile.Close()
		os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := io.Copy(tmpFile, src); err != nil {
		return "", err
	}
	if err := tmpFile.Close(); err != nil {
		return "", err
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		return "", err
	}
	return filename, nil
}

func (s *Store) delete(subdir string, filename string) error {
	if filename == "" {
		return nil
	}
	// Stored filenames never contain path separators; Base guards
	// against a corrupted value escaping the uploads directory.
	path := filepath.Join(s.rootDir, subdir, filepath.Base(filename))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// generateFilename builds a collision-resistant name from the current
// timestamp plus a random suffix, keeping the original extension.
func generateFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), suffix, ext)
}
