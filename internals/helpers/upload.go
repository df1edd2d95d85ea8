// file: internals/helpers/upload.go
package helper

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kelasku_backend/internals/constants"
)

// SaveSubmissionFile menyimpan satu file multipart (field tunggal) ke
// uploadDir dengan nama acak. Ekstensi diambil dari tabel mimetype bila
// dikenal; selain itu pakai ekstensi asli file. Tidak ada penolakan
// berdasarkan tipe — semua file diterima.
func SaveSubmissionFile(c *fiber.Ctx, field, uploadDir string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File submission tidak ditemukan pada request")
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal menyiapkan direktori upload")
	}

	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	ext := constants.SubmissionExtensionFor(fh.Header.Get("Content-Type"))
	if ext == "" {
		ext = strings.TrimPrefix(filepath.Ext(fh.Filename), ".")
	}
	filename := name
	if ext != "" {
		filename = fmt.Sprintf("%s.%s", name, ext)
	}

	dst := filepath.Join(uploadDir, filename)
	if err := c.SaveFile(fh, dst); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan file submission")
	}
	return dst, nil
}
