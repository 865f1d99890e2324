package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio/internal/models"
	"portfolio/internal/service"
)

type PortfolioHandler struct {
	Service *service.PortfolioService
	Logger  *zap.Logger
}

func (h *PortfolioHandler) Register(r *gin.Engine) {
	g := r.Group("/api/portfolio")
	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/symbol/:symbol", h.update)
	g.DELETE("/symbol/:symbol", h.delete)
}

// @Summary List raw portfolio rows
// @Tags portfolio
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} errorResponse
// @Router /api/portfolio [get]
func (h *PortfolioHandler) list(c *gin.Context) {
	rows, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to fetch portfolio.", err)
		return
	}
	Ok(c, rows)
}

// @Summary Create a portfolio row
// @Tags portfolio
// @Accept json
// @Produce json
// @Param entry body map[string]interface{} true "Row fields keyed by column header"
// @Success 200 {object} entryResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/portfolio [post]
func (h *PortfolioHandler) create(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}
	entry, err := h.Service.Create(c.Request.Context(), fields)
	if err != nil {
		h.fail(c, "Failed to create entry.", err)
		return
	}
	Ok(c, entryResponse{Message: "Entry created.", Entry: entry})
}

// @Summary Update a portfolio row by symbol
// @Tags portfolio
// @Accept json
// @Produce json
// @Param symbol path string true "Symbol, matched case-insensitively"
// @Param entry body map[string]interface{} false "Fields to override"
// @Success 200 {object} entryResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/portfolio/symbol/{symbol} [put]
func (h *PortfolioHandler) update(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}
	entry, err := h.Service.Update(c.Request.Context(), c.Param("symbol"), fields)
	if errors.Is(err, service.ErrNotFound) {
		Error(c, http.StatusNotFound, "Entry not found.", nil)
		return
	}
	if err != nil {
		h.fail(c, "Failed to update entry.", err)
		return
	}
	Ok(c, entryResponse{Message: "Entry updated.", Entry: entry})
}

// @Summary Delete a portfolio row by symbol
// @Tags portfolio
// @Produce json
// @Param symbol path string true "Symbol, matched case-insensitively"
// @Success 200 {object} messageResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/portfolio/symbol/{symbol} [delete]
func (h *PortfolioHandler) delete(c *gin.Context) {
	err := h.Service.Delete(c.Request.Context(), c.Param("symbol"))
	if errors.Is(err, service.ErrNotFound) {
		Error(c, http.StatusNotFound, "Entry not found.", nil)
		return
	}
	if err != nil {
		h.fail(c, "Failed to delete entry.", err)
		return
	}
	Ok(c, messageResponse{Message: "Entry deleted."})
}

func (h *PortfolioHandler) fail(c *gin.Context, message string, err error) {
	if h.Logger != nil {
		h.Logger.Error(message, zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	Error(c, http.StatusInternalServerError, message, err)
}

// bindFields reads a JSON object body. An empty body is an empty field set.
func bindFields(c *gin.Context) (models.Row, bool) {
	fields := models.Row{}
	if err := c.ShouldBindJSON(&fields); err != nil && !errors.Is(err, io.EOF) {
		Error(c, http.StatusBadRequest, "Invalid request body.", err)
		return nil, false
	}
	return fields, true
}
