package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFileExtension(t *testing.T) {
	for _, name := range []string{"cv.pdf", "CV.PDF", "resume.doc", "resume.Docx"} {
		assert.NoError(t, ValidateFileExtension(name), name)
	}

	assert.ErrorIs(t, ValidateFileExtension("resume"), ErrNoExtension)
	for _, name := range []string{"resume.exe", "resume.pdf.exe", "resume.txt"} {
		assert.ErrorIs(t, ValidateFileExtension(name), ErrExtension, name)
	}
}

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		head     []byte
		valid    bool
	}{
		{"pdf", "cv.pdf", []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n"), true},
		{"executable renamed to pdf", "cv.pdf", []byte("MZ\x90\x00\x03\x00\x00\x00"), false},
		{"pdf renamed to docx", "cv.docx", []byte("%PDF-1.7\n"), false},
		{"ole document", "cv.doc", []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0, 0, 0, 0}, true},
		{"disallowed extension", "cv.exe", []byte("%PDF-1.7\n"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateContent(tt.filename, tt.head)
			assert.Equal(t, tt.valid, res.Valid, res.Error)
			if !tt.valid {
				assert.NotEmpty(t, res.Error)
			}
		})
	}
}

func TestContentTypeForExtension(t *testing.T) {
	assert.Equal(t, "application/pdf", ContentTypeForExtension("a.PDF"))
	assert.Equal(t, "application/msword", ContentTypeForExtension("a.doc"))
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", ContentTypeForExtension("a.docx"))
	assert.Equal(t, "application/octet-stream", ContentTypeForExtension("a.bin"))
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Jane_Doe_CV_2025", SanitizeName("Jane Doe-CV.2025"))
	assert.Equal(t, "______", SanitizeName("../../"))
	assert.Equal(t, "abc123", SanitizeName("abc123"))
}

func TestValidateFilename(t *testing.T) {
	assert.NoError(t, ValidateFilename("cv_2025-09-10T12-30-45-123Z.pdf"))
	assert.NoError(t, ValidateFilename(`a"b.pdf`))
	assert.NoError(t, ValidateFilename("résumé.pdf"))

	for _, name := range []string{"", ".", "..", "../x.pdf", "a/b.pdf", `a\b.pdf`, "/etc/passwd", "x\x00.pdf", "x\n.pdf", "x\r\nSet-Cookie: a.pdf", "x\x7f.pdf", "x\u0085.pdf"} {
		assert.ErrorIs(t, ValidateFilename(name), ErrInvalidFilename, name)
	}
}
