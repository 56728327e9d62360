package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/menucraft/restaurant-backend/internal/httperr"
	"github.com/menucraft/restaurant-backend/internal/httpresp"
	"github.com/menucraft/restaurant-backend/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the most recent admin mutations, capped at 100 rows.
func (h *AuditLogsHandler) List(c *gin.Context) {
	logs := make([]models.AuditLog, 0)
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Limit(100).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_audit_logs", "Could not load audit logs.")
		return
	}

	httpresp.OK(c, logs)
}
