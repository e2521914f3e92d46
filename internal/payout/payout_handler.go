package payout

import (
	"net/http"
	"strconv"

	"go-agency/internal/commission"
	"go-agency/internal/shared/apperror"
	"go-agency/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payout.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payout.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payout request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindError(c *gin.Context, op string, err error) {
	h.logger.Debug("http "+op+" binding failed", zap.Error(err))
	h.writeServiceError(c, apperror.MapValidationError(err))
}

// periodQuery membaca ?period=YYYY-MM atau ?month=&year= untuk endpoint GET.
func periodQuery(c *gin.Context) (PeriodRequest, error) {
	if v := c.Query("period"); v != "" {
		p, err := commission.ParsePeriod(v)
		if err != nil {
			return PeriodRequest{}, apperror.InvalidField("period")
		}
		return PeriodRequest{Month: p.Month, Year: p.Year}, nil
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		return PeriodRequest{}, apperror.InvalidField("month")
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return PeriodRequest{}, apperror.InvalidField("year")
	}
	return PeriodRequest{Month: month, Year: year}, nil
}

func (h *Handler) Preview(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, "preview payouts", err)
		return
	}

	resp, err := h.service.Preview(c.Request.Context(), c.GetString("agency_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SaveDraft(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, "save payout drafts", err)
		return
	}

	resp, err := h.service.SaveDraft(c.Request.Context(), c.GetString("agency_id"), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Finalize(c *gin.Context) {
	var req PeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, "finalize payouts", err)
		return
	}

	resp, err := h.service.Finalize(c.Request.Context(), c.GetString("agency_id"), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MarkPaid(c *gin.Context) {
	resp, err := h.service.MarkPaid(c.Request.Context(), c.GetString("agency_id"), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	filter := ListFilter{Status: c.Query("status")}
	if v := c.Query("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("month"))
			return
		}
		filter.Month = month
	}
	if v := c.Query("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("year"))
			return
		}
		filter.Year = year
	}

	resp, err := h.service.GetAll(c.Request.Context(), c.GetString("agency_id"), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, pageSize := response.PageQuery(c)
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString("agency_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetSummary(c *gin.Context) {
	req, err := periodQuery(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetSummary(c.Request.Context(), c.GetString("agency_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpsertOverride(c *gin.Context) {
	var req OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, "upsert payout override", err)
		return
	}

	resp, err := h.service.UpsertOverride(c.Request.Context(), c.GetString("agency_id"), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListOverrides(c *gin.Context) {
	req, err := periodQuery(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ListOverrides(c.Request.Context(), c.GetString("agency_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteOverride(c *gin.Context) {
	if err := h.service.DeleteOverride(c.Request.Context(), c.GetString("agency_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
