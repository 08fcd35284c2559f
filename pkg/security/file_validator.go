package security

import (
	"bytes"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/gabriel-vasile/mimetype"
)

// FileValidationResult contains the result of content validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Detected file extension
	DetectedMIME string // Detected MIME type
	Error        string // Error message if validation failed
}

var (
	ErrNoExtension      = errors.New("file has no extension")
	ErrExtension        = errors.New("file extension not allowed")
	ErrInvalidFilename  = errors.New("invalid filename")
	ErrContentMismatch  = errors.New("file content does not match extension")
	nonAlphanumericName = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// Magic byte signatures for accepted CV formats
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
}

// Content types served for each accepted extension
var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Detected MIME types accepted by the strict check
var strictMIMETypes = map[string]bool{
	"application/pdf":           true,
	"application/msword":        true,
	"application/x-ole-storage": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/zip": true,
}

// ValidateFileExtension checks the extension against the whitelist (case-insensitive).
func ValidateFileExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return ErrNoExtension
	}
	if _, ok := contentTypes[ext]; !ok {
		return ErrExtension
	}
	return nil
}

// ValidateContent checks that head, the first bytes of a file, really is the
// format its extension claims.
func ValidateContent(filename string, head []byte) FileValidationResult {
	ext := strings.ToLower(filepath.Ext(filename))
	result := FileValidationResult{Extension: ext}

	if err := ValidateFileExtension(filename); err != nil {
		result.Error = err.Error()
		return result
	}

	result.DetectedMIME = mimetype.Detect(head).String()
	if i := strings.IndexByte(result.DetectedMIME, ';'); i >= 0 {
		result.DetectedMIME = result.DetectedMIME[:i]
	}

	if !validateMagicBytes(ext, head) {
		result.Error = ErrContentMismatch.Error()
		return result
	}
	if !strictMIMETypes[result.DetectedMIME] {
		result.Error = "MIME type not allowed: " + result.DetectedMIME
		return result
	}

	result.Valid = true
	return result
}

func validateMagicBytes(ext string, data []byte) bool {
	for _, sig := range magicBytes[ext] {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

// ContentTypeForExtension maps a filename to the type it is served with.
// Unknown extensions are served as application/octet-stream.
func ContentTypeForExtension(filename string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// SanitizeName replaces every character outside [a-zA-Z0-9] with an underscore.
func SanitizeName(name string) string {
	return nonAlphanumericName.ReplaceAllString(name, "_")
}

// ValidateFilename rejects anything that is not a single path element, and
// names carrying control characters.
func ValidateFilename(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return ErrInvalidFilename
	}
	if filepath.Base(name) != name {
		return ErrInvalidFilename
	}
	return nil
}

// GetAllowedExtensions returns the accepted extensions for error messages
func GetAllowedExtensions() []string {
	return []string{".pdf", ".doc", ".docx"}
}
