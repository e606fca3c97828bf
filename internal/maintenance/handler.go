package maintenance

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/apierr"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/params"
)

type Handler struct {
	Repo *Repository
	Log  *zap.Logger
}

func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{Repo: NewRepository(db), Log: log}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/maintenance", h.ListLogs)
	r.POST("/maintenance", h.CreateLog)
	r.GET("/maintenance/device/:device_id", h.ListDeviceLogs)
	r.GET("/maintenance/:id", h.GetLog)
	r.DELETE("/maintenance/:id", h.DeleteLog)
}

func (h *Handler) ListLogs(c *gin.Context) {
	logs, err := h.Repo.List(c.Request.Context())
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *Handler) ListDeviceLogs(c *gin.Context) {
	deviceID, err := params.ID(c, "device_id")
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	logs, err := h.Repo.ListByDevice(c.Request.Context(), deviceID)
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *Handler) GetLog(c *gin.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	l, err := h.Repo.Get(c.Request.Context(), id)
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *Handler) CreateLog(c *gin.Context) {
	var req CreateLogRequest
	if err := params.BindJSON(c, &req); err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	l, err := req.Log()
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}

	if err := h.Repo.Create(c.Request.Context(), &l); err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *Handler) DeleteLog(c *gin.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Maintenance log deleted successfully"})
}
