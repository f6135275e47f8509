package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/adroitdesign/studio-api/internal/model"
	"github.com/adroitdesign/studio-api/internal/service"
)

type newInquiry struct {
	Name          string  `json:"name" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         *string `json:"phone"`
	Subject       *string `json:"subject"`
	Message       string  `json:"message" validate:"required"`
	Type          string  `json:"type"`
	Company       *string `json:"company"`
	PortfolioLink *string `json:"portfolio_link"`
}

type inquiryIdentifier struct {
	ID int `param:"id" validate:"required,min=1"`
}

type updateInquiryStatus struct {
	ID     int    `param:"id" validate:"required,min=1"`
	Status string `json:"status" validate:"required"`
}

// InquiryHTTPHandler is the http handler for the inquiries endpoint.
type InquiryHTTPHandler struct {
	inquirySvc service.InquiryService
	syncSvc    service.SyncService
}

func NewInquiryHTTPHandler(inquirySvc service.InquiryService, syncSvc service.SyncService) *InquiryHTTPHandler {
	return &InquiryHTTPHandler{inquirySvc: inquirySvc, syncSvc: syncSvc}
}

// Post submits an inquiry
// @Summary     Submit inquiry
// @Description Records a public inquiry, CRM-first with local fallback
// @Tags        inquiries
// @Accept      json
// @Produce     json
// @Param       newInquiry body     newInquiry true "Inquiry data"
// @Success     201        {object} service.SubmitResult
// @Failure     400        {object} echo.HTTPError
// @Failure     500        {object} echo.HTTPError
// @Router      /api/inquiries [post]
func (h *InquiryHTTPHandler) Post(c echo.Context) error {
	var ni newInquiry
	if err := c.Bind(&ni); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ni); err != nil {
		return err
	}

	result, err := h.inquirySvc.Submit(c.Request().Context(), model.Inquiry{
		Name:    ni.Name,
		Email:   ni.Email,
		Phone:   ni.Phone,
		Subject: ni.Subject,
		Message: ni.Message,
		Type:    ni.Type,
		Company: ni.Company,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, result)
}

// GetAll lists locally stored inquiries
// @Summary     List inquiries
// @Description Returns locally stored inquiries, filterable and paginated
// @Tags        inquiries
// @Security    ApiKeyAuth
// @Produce     json
// @Success     200 {array}  model.Inquiry
// @Failure     401 {object} echo.HTTPError
// @Router      /api/inquiries [get]
func (h *InquiryHTTPHandler) GetAll(c echo.Context) error {
	filter := model.InquiryFilter{
		Type:   c.QueryParam("type"),
		Status: c.QueryParam("status"),
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	inquiries, err := h.inquirySvc.FindAll(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inquiries)
}

// Get returns one locally stored inquiry.
func (h *InquiryHTTPHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	inquiry, err := h.inquirySvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if inquiry == nil {
		return echo.NewHTTPError(http.StatusNotFound, "inquiry not found")
	}
	return c.JSON(http.StatusOK, inquiry)
}

// PatchStatus updates the pipeline status, CRM-first.
func (h *InquiryHTTPHandler) PatchStatus(c echo.Context) error {
	var us updateInquiryStatus
	if err := c.Bind(&us); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&us); err != nil {
		return err
	}

	updatedIn, err := h.syncSvc.UpdateStatus(c.Request().Context(), us.ID, model.LeadStatus(us.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"id":        us.ID,
		"status":    us.Status,
		"updatedIn": updatedIn,
	})
}

// Delete removes the inquiry, CRM-first.
func (h *InquiryHTTPHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	deletedFrom, err := h.syncSvc.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"deletedFrom": deletedFrom})
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}
	if err := c.Validate(&inquiryIdentifier{ID: id}); err != nil {
		return 0, err
	}
	return id, nil
}
