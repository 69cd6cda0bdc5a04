package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zentask/zentask-platform/internal/config"
)

type StorageService struct {
	config *config.Config
}

func NewStorageService(cfg *config.Config) *StorageService {
	// Ensure upload directories exist
	os.MkdirAll(cfg.UploadDir, 0755)
	os.MkdirAll(filepath.Join(cfg.UploadDir, "deliverables"), 0755)
	os.MkdirAll(filepath.Join(cfg.UploadDir, "avatars"), 0755)

	return &StorageService{config: cfg}
}

// AllowedImageExtensions lists valid avatar extensions
var AllowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// MaxAvatarSize is the maximum allowed avatar size (5MB)
const MaxAvatarSize = 5 * 1024 * 1024

// MaxDeliverableSize is the maximum allowed deliverable size (25MB)
const MaxDeliverableSize = 25 * 1024 * 1024

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SaveDeliverable stores a task deliverable and returns its public URL.
func (s *StorageService) SaveDeliverable(taskID uuid.UUID, file *multipart.FileHeader) (string, error) {
	if file.Size == 0 {
		return "", fmt.Errorf("file is empty")
	}
	if file.Size > MaxDeliverableSize {
		return "", fmt.Errorf("file too large. Maximum size is 25MB")
	}

	taskDir := filepath.Join(s.config.UploadDir, "deliverables", taskID.String())
	if err := os.MkdirAll(taskDir, 0755); err != nil {
		return "", err
	}

	safeName := unsafeFilenameChars.ReplaceAllString(file.Filename, "_")
	filename := fmt.Sprintf("%d_%s", time.Now().Unix(), safeName)

	if err := s.saveFile(file, filepath.Join(taskDir, filename)); err != nil {
		return "", err
	}

	relativePath := filepath.ToSlash(filepath.Join("deliverables", taskID.String(), filename))
	return s.PublicURL(relativePath), nil
}

// SaveAvatar stores a profile image and returns its public URL.
func (s *StorageService) SaveAvatar(userID uuid.UUID, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !AllowedImageExtensions[ext] {
		return "", fmt.Errorf("invalid file type: %s. Allowed: jpg, jpeg, png, gif, webp", ext)
	}
	if file.Size > MaxAvatarSize {
		return "", fmt.Errorf("file too large. Maximum size is 5MB")
	}

	filename := fmt.Sprintf("%s_%d%s", userID.String()[:8], time.Now().Unix(), ext)
	fullPath := filepath.Join(s.config.UploadDir, "avatars", filename)

	if err := s.saveFile(file, fullPath); err != nil {
		return "", err
	}

	return s.PublicURL(filepath.ToSlash(filepath.Join("avatars", filename))), nil
}

func (s *StorageService) saveFile(file *multipart.FileHeader, dstPath string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// PublicURL returns the URL a stored file is served from.
func (s *StorageService) PublicURL(relativePath string) string {
	return s.config.AppURL + "/uploads/" + relativePath
}
