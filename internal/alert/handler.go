package alert

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

// RegisterRoutes adds the alert routes. /alerts/active is a static segment
// and wins over /alerts/:id whatever the registration order.
func (h *Handler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/alerts", h.ListAlerts)
	router.POST("/alerts", h.CreateAlert)
	router.GET("/alerts/active", h.ListActiveAlerts)
	router.GET("/alerts/:id", h.GetAlert)
	router.DELETE("/alerts/:id", h.DeleteAlert)
}

// ListAlerts returns the most recent alerts. Query params: limit (default 100), page.
func (h *Handler) ListAlerts(c *gin.Context) {
	p, err := pagination.Parse(c, DefaultListLimit, h.MaxLimit)
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	alerts, err := h.Repo.List(c.Request.Context(), p)
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (h *Handler) ListActiveAlerts(c *gin.Context) {
	alerts, err := h.Repo.ListActive(c.Request.Context())
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (h *Handler) GetAlert(c *gin.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	a, err := h.Repo.Get(c.Request.Context(), id)
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) CreateAlert(c *gin.Context) {
	var req CreateAlertRequest
	if err := params.BindJSON(c, &req); err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	a, err := req.Alert()
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}

	if err := h.Repo.Create(c.Request.Context(), &a); err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *Handler) DeleteAlert(c *gin.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		apierr.Respond(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert deleted successfully"})
}
