package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
)

var (
	ErrInvalidExtension = errors.New("invalid file extension")
	ErrContentMismatch  = errors.New("file content does not match its extension")
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type StorageService interface {
	SaveFile(file *multipart.FileHeader) (string, error)
	VerifyContent(filePath string) error
	DeleteFile(filePath string) error
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveFile writes the upload under a sanitized, uuid-prefixed name and returns its path.
func (s *storageService) SaveFile(file *multipart.FileHeader) (string, error) {
	if !AllowedFile(file.Filename) {
		return "", fmt.Errorf("%w: %q", ErrInvalidExtension, file.Filename)
	}

	uniqueFilename := fmt.Sprintf("%s_%s", uuid.New().String(), SecureFilename(file.Filename))
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(filePath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filePath, nil
}

// VerifyContent sniffs the saved file and rejects content that cannot be the declared
// format. Empty files pass: the extractor reports them as unreadable.
func (s *storageService) VerifyContent(filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Size() == 0 {
		return nil
	}

	mtype, err := mimetype.DetectFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to detect content type: %w", err)
	}

	if !allowedMIMEFor(mtype, models.FormatFromPath(filePath)) {
		return fmt.Errorf("%w: detected %s", ErrContentMismatch, mtype.String())
	}

	return nil
}

func (s *storageService) DeleteFile(filePath string) error {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// AllowedFile reports whether the filename has a pdf or docx extension.
func AllowedFile(filename string) bool {
	return strings.Contains(filename, ".") && models.FormatFromPath(filename).IsSupported()
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename reduces a client supplied name to a safe base name.
func SecureFilename(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	ext := "." + strings.Trim(filepath.Ext(name), "._")

	name = strings.Trim(name, "._")
	if name == "" {
		name = "upload"
	}
	// Keep the extension when trimming removed it.
	if ext != "." && !strings.HasSuffix(name, ext) {
		name += ext
	}
	return name
}

func allowedMIMEFor(m *mimetype.MIME, format models.DocumentFormat) bool {
	switch format {
	case models.FormatPDF:
		return m.Is("application/pdf")
	case models.FormatDOCX:
		// Minimal documents are sometimes only recognized as a zip container.
		return m.Is(docxMIME) || m.Is("application/zip")
	default:
		return false
	}
}
