package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/database"
)

// HealthResponse reports service liveness and the state of the
// database connection.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version,omitempty"`
	Time     string `json:"time"`
}

type HealthController struct {
	db      *database.Database
	version string
}

func NewHealthController(db *database.Database, version string) *HealthController {
	return &HealthController{db: db, version: version}
}

// Status pings the database and reports 200 when everything answers,
// 503 otherwise.
// GET /health
func (h *HealthController) Status(c *gin.Context) {
	dbState := "ok"

	sqlDB, err := h.db.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		dbState = "error: " + err.Error()
	}

	response := HealthResponse{
		Status:   "healthy",
		Database: dbState,
		Version:  h.version,
		Time:     time.Now().Format(time.RFC3339),
	}

	code := http.StatusOK
	if err != nil {
		response.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, response)
}
