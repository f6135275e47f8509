package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/adroitdesign/studio-api/internal/service"
)

// SyncHTTPHandler exposes the CRM reconciliation operations to admins.
type SyncHTTPHandler struct {
	syncSvc service.SyncService
}

func NewSyncHTTPHandler(syncSvc service.SyncService) *SyncHTTPHandler {
	return &SyncHTTPHandler{syncSvc: syncSvc}
}

// SyncAll pushes pending inquiries to the CRM
// @Summary     Sync pending inquiries
// @Description Pushes locally stored inquiries with no CRM link to the CRM
// @Tags        odoo
// @Security    ApiKeyAuth
// @Produce     json
// @Success     200 {object} service.SyncReport
// @Failure     401 {object} echo.HTTPError
// @Router      /api/odoo/sync-all [post]
func (h *SyncHTTPHandler) SyncAll(c echo.Context) error {
	days, _ := strconv.Atoi(c.QueryParam("days"))

	report, err := h.syncSvc.SyncPending(c.Request().Context(), days)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// SyncOne pushes a single locally stored inquiry to the CRM.
func (h *SyncHTTPHandler) SyncOne(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	leadID, err := h.syncSvc.SyncOne(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"inquiryId":  id,
		"odooLeadId": leadID,
	})
}

// TestConnection verifies CRM credentials.
func (h *SyncHTTPHandler) TestConnection(c echo.Context) error {
	if err := h.syncSvc.TestConnection(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{"connected": true})
}

// Leads browses leads from the CRM.
func (h *SyncHTTPHandler) Leads(c echo.Context) error {
	var filter service.LeadFilter
	filter.Name = c.QueryParam("name")
	filter.Stage, _ = strconv.Atoi(c.QueryParam("stage"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	leads, err := h.syncSvc.Leads(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, leads)
}
