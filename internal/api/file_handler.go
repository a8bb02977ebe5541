package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/resource-crud-api/internal/httperr"
	"github.com/rs/zerolog"
)

// FileHandler serves the data directory
type FileHandler struct {
	dir string
	fs  http.FileSystem
	log zerolog.Logger
}

// NewFileHandler creates a new FileHandler for dir
func NewFileHandler(dir string, log zerolog.Logger) *FileHandler {
	return &FileHandler{
		dir: dir,
		fs:  http.Dir(dir),
		log: log.With().Str("handler", "files").Logger(),
	}
}

// Download handles GET /download/:filename
func (h *FileHandler) Download(c *gin.Context) {
	name := c.Param("filename")
	if !validFilename(name) {
		h.log.Warn().Str("filename", name).Msg("Rejected download filename")
		abortWithError(c, httperr.New(http.StatusBadRequest, "Invalid filename."))
		return
	}

	path := filepath.Join(h.dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		abortWithError(c, httperr.New(http.StatusNotFound, "File Not Found"))
		return
	}

	c.FileAttachment(path, name)
}

// Static serves GET and HEAD requests for files in the data directory. When
// no file matches it leaves the request to the next stage.
func (h *FileHandler) Static(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		return
	}

	name := c.Request.URL.Path
	f, err := h.fs.Open(name)
	if err != nil {
		return
	}
	info, err := f.Stat()
	f.Close()
	if err != nil || info.IsDir() {
		return
	}

	c.FileFromFS(name, h.fs)
	c.Abort()
}

// validFilename accepts a single path element only
func validFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return false
	}
	return filepath.Base(name) == name
}
