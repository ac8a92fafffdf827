package dashboard

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"newsharvest/app/cfg"
	"newsharvest/app/feed"
)

const queryDateLayout = "2006-01-02"

// Handler serves the dashboard API over the loaded corpus.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// GetArticles applies the request's filter predicates and returns matching
// articles in corpus order.
func (h *Handler) GetArticles(c *gin.Context) {
	q, ok := h.parseQuery(c)
	if !ok {
		return
	}

	articles := h.store.Filter(q)

	c.JSON(http.StatusOK, gin.H{
		"count":    len(articles),
		"articles": toArticles(articles),
	})
}

// GetStats aggregates counts by country, source and language over the same
// filtered view GetArticles serves.
func (h *Handler) GetStats(c *gin.Context) {
	q, ok := h.parseQuery(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, Counts(h.store.Filter(q)))
}

// Reload re-reads the data directory and rebuilds the corpus.
func (h *Handler) Reload(c *gin.Context) {
	count, err := h.store.Load()
	if err != nil {
		slog.Error("Failed to reload corpus", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to reload data directory",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "reloaded",
		"articles": count,
	})
}

func (h *Handler) HealthCheck(c *gin.Context) {
	count, loadedAt := h.store.Count()

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"version":   cfg.Get().Version,
		"articles":  count,
		"loaded_at": loadedAt.Format(time.RFC3339),
	})
}

func (h *Handler) parseQuery(c *gin.Context) (Query, bool) {
	q := Query{
		Countries: c.QueryArray("country"),
		Sources:   c.QueryArray("source"),
		Languages: c.QueryArray("language"),
		Search:    c.Query("q"),
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(queryDateLayout, from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date, expected YYYY-MM-DD"})
			return Query{}, false
		}
		q.From = t
	}

	if to := c.Query("to"); to != "" {
		t, err := time.Parse(queryDateLayout, to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date, expected YYYY-MM-DD"})
			return Query{}, false
		}
		q.To = t
	}

	return q, true
}

func toArticles(entries []feed.Entry) []Article {
	articles := make([]Article, 0, len(entries))
	for _, e := range entries {
		articles = append(articles, Article{
			Title:         e.Title,
			Description:   e.Description,
			URL:           e.URL,
			PublishedDate: e.PublishedDate(),
			Source:        e.Source,
			Country:       e.Country,
			Language:      e.Language,
		})
	}
	return articles
}
