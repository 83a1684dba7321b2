package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// Health answers 200 while the process is up. The database state is reported but does
// not change the status code.
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{Status: "ok"}
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		resp.Database = "ok"
		if err := h.db.Ping(ctx); err != nil {
			resp.Database = "unavailable"
		}
	}
	c.JSON(http.StatusOK, resp)
}
