package zone

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
	r.GET("/zones", h.ListZones)
	r.POST("/zones", h.CreateZone)
	r.GET("/zones/:id", h.GetZone)
	r.DELETE("/zones/:id", h.DeleteZone)
}

func (h *Handler) ListZones(c *gin.Context) {
	zones, err := h.Repo.List(c.Request.Context())
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, zones)
}

func (h *Handler) GetZone(c *gin.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	z, err := h.Repo.Get(c.Request.Context(), id)
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, z)
}

func (h *Handler) CreateZone(c *gin.Context) {
	var req CreateZoneRequest
	if err := params.BindJSON(c, &req); err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}

	z := req.Zone()
	if err := h.Repo.Create(c.Request.Context(), &z); err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, z)
}

func (h *Handler) DeleteZone(c *gin.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Zone deleted successfully"})
}
