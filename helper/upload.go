package helper

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func MediaDir() string {
	dir := os.Getenv("MEDIA_DIR")
	if dir == "" {
		dir = "media"
	}
	return dir
}

// SimpanFoto menyimpan file foto ke media/foto_penduduk dan
// mengembalikan path relatifnya untuk disimpan di tabel penduduk.
func SimpanFoto(c *gin.Context, file *multipart.FileHeader) (string, error) {
	relPath := filepath.Join("foto_penduduk", uuid.NewString()+filepath.Ext(file.Filename))
	dst := filepath.Join(MediaDir(), relPath)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return relPath, nil
}
