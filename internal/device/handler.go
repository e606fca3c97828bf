package device

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/apierr"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/params"
)

// Handler serves the /devices routes.
type Handler struct {
	Repo *Repository
	Log  *zap.Logger
}

func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{Repo: NewRepository(db), Log: log}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/devices", h.ListDevices)
	r.POST("/devices", h.CreateDevice)
	r.GET("/devices/zone/:zone_id", h.ListZoneDevices)
	r.GET("/devices/:id", h.GetDevice)
	r.DELETE("/devices/:id", h.DeleteDevice)
}

func (h *Handler) ListDevices(c *gin.Context) {
	devices, err := h.Repo.List(c.Request.Context())
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, devices)
}

func (h *Handler) ListZoneDevices(c *gin.Context) {
	zoneID, err := params.ID(c, "zone_id")
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	devices, err := h.Repo.ListByZone(c.Request.Context(), zoneID)
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, devices)
}

func (h *Handler) GetDevice(c *gin.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	dev, err := h.Repo.Get(c.Request.Context(), id)
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, dev)
}

func (h *Handler) CreateDevice(c *gin.Context) {
	var req CreateDeviceRequest
	if err := params.BindJSON(c, &req); err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	dev, err := req.Device()
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}

	if err := h.Repo.Create(c.Request.Context(), &dev); err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, dev)
}

// DeleteDevice removes only the device row; readings, alerts and logs that
// reference it are left in place.
func (h *Handler) DeleteDevice(c *gin.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device deleted successfully"})
}
