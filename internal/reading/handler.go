package reading

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/apierr"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/pagination"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/params"
)

type Handler struct {
	Repo     *Repository
	Log      *zap.Logger
	MaxLimit int
}

func NewHandler(db *gorm.DB, log *zap.Logger, maxLimit int) *Handler {
	return &Handler{Repo: NewRepository(db), Log: log, MaxLimit: maxLimit}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/readings", h.ListReadings)
	r.POST("/readings", h.CreateReading)
	r.GET("/readings/device/:device_id", h.ListDeviceReadings)
	r.GET("/readings/:id", h.GetReading)
	r.DELETE("/readings/:id", h.DeleteReading)
}

func (h *Handler) ListReadings(c *gin.Context) {
	p, err := pagination.Parse(c, DefaultListLimit, h.MaxLimit)
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	readings, err := h.Repo.List(c.Request.Context(), p)
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, readings)
}

func (h *Handler) ListDeviceReadings(c *gin.Context) {
	deviceID, err := params.ID(c, "device_id")
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	readings, err := h.Repo.ListByDevice(c.Request.Context(), deviceID)
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, readings)
}

func (h *Handler) GetReading(c *gin.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	rd, err := h.Repo.Get(c.Request.Context(), id)
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, rd)
}

func (h *Handler) CreateReading(c *gin.Context) {
	var req CreateReadingRequest
	if err := params.BindJSON(c, &req); err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	rd, err := req.Reading()
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}

	if err := h.Repo.Create(c.Request.Context(), &rd); err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, rd)
}

func (h *Handler) DeleteReading(c *gin.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reading deleted successfully"})
}
