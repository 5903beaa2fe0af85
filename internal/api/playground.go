package api

import (
	"embed"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"

	"github.com/jroosing/hydrazone/internal/api/models"
)

// The playground is a single static page that posts lines to
// /api/v1/rows/parse and shows the result or diagnostic.
//
//go:embed web/*
var embeddedUI embed.FS

func getEmbedFs() static.ServeFileSystem {
	fs, err := static.EmbedFolder(embeddedUI, "web")
	if err != nil {
		panic("failed to get embedded UI filesystem: " + err.Error())
	}
	return fs
}

// MountPlayground serves the embedded playground at / and falls back to its
// index.html for unknown non-API paths.
func MountPlayground(r *gin.Engine, logger *slog.Logger) {
	uiFS := getEmbedFs()
	r.Use(static.Serve("/", uiFS))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
			return
		}
		index, err := uiFS.Open("index.html")
		if err != nil {
			logger.Error("failed to open index.html", "error", err)
			c.Status(http.StatusInternalServerError)
			return
		}
		defer index.Close()
		stat, err := index.Stat()
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		http.ServeContent(c.Writer, c.Request, "index.html", stat.ModTime(), index)
	})
}
