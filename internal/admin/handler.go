package admin

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/tazman887/rork-organizator-nunta/internal/backup"
	"github.com/tazman887/rork-organizator-nunta/internal/domain"
)

type Error struct {
	Message string `json:"message"`
}

// Restorer is the slice of the synchronizer the admin surface needs:
// read the current snapshot and overwrite it with an immediate persist.
type Restorer interface {
	Current() domain.Document
	Restore(ctx context.Context, doc domain.Document)
}

type Handler struct {
	sync Restorer
}

func NewHandler(sync Restorer) *Handler {
	return &Handler{sync: sync}
}

func RegisterHandlers(r *gin.Engine, h *Handler) {
	r.GET("/admin/export", h.GetExport)
	r.POST("/admin/import", h.PostImport)
	r.GET("/admin/snapshot", h.GetSnapshot)
	r.PUT("/admin/snapshot", h.PutSnapshot)
}

// GetExport downloads the full snapshot as a backup file.
func (h *Handler) GetExport(c *gin.Context) {
	data, err := backup.Export(h.sync.Current())
	if err != nil {
		log.WithError(err).Error("failed to export snapshot")
		c.JSON(http.StatusInternalServerError, Error{Message: "internal error"})
		return
	}

	filename := fmt.Sprintf("wedding-backup-%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", data)
}

// PostImport restores a backup, fully overwriting local state. Both the
// current document format and the legacy per-key split are accepted.
func (h *Handler) PostImport(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, Error{Message: "unreadable request body"})
		return
	}

	doc, err := backup.Import(data)
	if err != nil {
		log.WithError(err).Warn("backup import rejected")
		c.JSON(http.StatusBadRequest, Error{Message: err.Error()})
		return
	}

	h.sync.Restore(c.Request.Context(), *doc)

	log.WithField("guests", len(doc.Guests)).Info("backup imported")
	c.JSON(http.StatusOK, doc)
}

func (h *Handler) GetSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.sync.Current())
}

// PutSnapshot replaces the raw document wholesale.
func (h *Handler) PutSnapshot(c *gin.Context) {
	var doc domain.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, Error{Message: "invalid request body"})
		return
	}

	h.sync.Restore(c.Request.Context(), doc)

	log.Info("snapshot replaced")
	c.JSON(http.StatusOK, h.sync.Current())
}
