package api

import (
	"cmp"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func NewHandler(store CollectionReader, baseUrl, port, version string) *Handler {
	return &Handler{
		store:     store,
		generator: NewGenerator(version),
		baseUrl:   baseUrl,
		port:      port,
		version:   version,
	}
}

func (h *Handler) GetPosts(c *gin.Context) {
	collection, err := h.store.Load()
	if err != nil {
		slog.Error("Store error", "operation", "load", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("X-Digest-Posts", strconv.Itoa(len(collection.Posts)))
	c.JSON(http.StatusOK, collection)
}

func (h *Handler) GetLatestPost(c *gin.Context) {
	collection, err := h.store.Load()
	if err != nil {
		slog.Error("Store error", "operation", "load", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	latest, ok := collection.Latest()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no digests yet"})
		return
	}

	c.JSON(http.StatusOK, latest)
}

func (h *Handler) GetFeed(c *gin.Context) {
	collection, err := h.store.Load()
	if err != nil {
		slog.Error("Store error", "operation", "load", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	rss, err := h.generator.Run(collection, h.selfLink())
	if err != nil {
		slog.Error("RSS generation error", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("X-Feed-Items", strconv.Itoa(len(collection.Posts)))
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(rss))
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   h.version,
	}

	collection, err := h.store.Load()
	if err != nil {
		health["status"] = "degraded"
		health["error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	health["posts"] = len(collection.Posts)
	if latest, ok := collection.Latest(); ok {
		health["latest_date"] = latest.Date
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) selfLink() string {
	base := cmp.Or(h.baseUrl, fmt.Sprintf("http://localhost:%s", h.port))
	return base + "/feed.xml"
}
