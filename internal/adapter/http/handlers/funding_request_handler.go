package handlers

import (
	"errors"
	"net/http"

	request "nexus_settlement/internal/adapter/http/dto/request"
	response "nexus_settlement/internal/adapter/http/dto/response"
	"nexus_settlement/internal/infrastructure/logger"
	"nexus_settlement/internal/usecase"
	"nexus_settlement/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidFundingPayload    = pkg.NewDomainErrorSimple("INVALID_FUNDING_REQUEST_INPUT", "Invalid funding request payload", http.StatusBadRequest)
	errInvalidInvestmentPayload = pkg.NewDomainErrorSimple("INVALID_INVESTMENT_INPUT", "Invalid investment payload", http.StatusBadRequest)
)

// FundingRequestHandler exposes the funding request ledger.
type FundingRequestHandler struct {
	usecase usecase.IFundingRequestUseCase
}

func NewFundingRequestHandler(uc usecase.IFundingRequestUseCase) *FundingRequestHandler {
	return &FundingRequestHandler{usecase: uc}
}

// Create godoc
// @Summary      Create a funding request
// @Tags         funding-requests
// @Accept       json
// @Produce      json
// @Param        X-User-Id  header  string                                true  "Funder id"
// @Param        payload    body    request.CreateFundingRequestRequest   true  "Funding request"
// @Success      201  {object}  response.FundingRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /funding-requests [post]
func (h *FundingRequestHandler) Create(c *gin.Context) {
	funderID := callerID(c)
	if funderID == "" {
		writeError(c, errMissingUserID)
		return
	}
	var payload request.CreateFundingRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidFundingPayload.WithDetails(request.FormatValidationErrors(err)))
		return
	}

	fr, err := h.usecase.Create(c.Request.Context(), payload.ToInput(funderID))
	if err != nil {
		writeError(c, mapFundingError(err))
		return
	}
	logger.FromGin(c).Info("[funding][http] created", zap.String("funding_request_id", fr.ID), zap.String("funder_id", funderID))
	c.JSON(http.StatusCreated, response.FromFundingRequest(fr))
}

// Update godoc
// @Summary      Update an open funding request
// @Tags         funding-requests
// @Accept       json
// @Produce      json
// @Param        X-User-Id  header  string                               true  "Funder id"
// @Param        id         path    string                               true  "Funding request id"
// @Param        payload    body    request.UpdateFundingRequestRequest  true  "Fields to change"
// @Success      200  {object}  response.FundingRequestResponse
// @Failure      400,403,404,409  {object}  pkg.HTTPError
// @Router       /funding-requests/{id} [put]
func (h *FundingRequestHandler) Update(c *gin.Context) {
	funderID := callerID(c)
	if funderID == "" {
		writeError(c, errMissingUserID)
		return
	}
	var payload request.UpdateFundingRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidFundingPayload.WithDetails(request.FormatValidationErrors(err)))
		return
	}

	fr, err := h.usecase.Update(c.Request.Context(), c.Param("id"), funderID, payload.ToInput())
	if err != nil {
		writeError(c, mapFundingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFundingRequest(fr))
}

// Invest godoc
// @Summary      Invest in an open funding request
// @Description  walletAdjustment is negative: the amount debited from the investor wallet.
// @Tags         funding-requests
// @Accept       json
// @Produce      json
// @Param        X-User-Id  header  string                     true  "Investor id"
// @Param        id         path    string                     true  "Funding request id"
// @Param        payload    body    request.InvestmentRequest  true  "Investment"
// @Success      200  {object}  response.FundingRequestResponse
// @Failure      400,404,409,502  {object}  pkg.HTTPError
// @Router       /funding-requests/{id}/investment [post]
func (h *FundingRequestHandler) Invest(c *gin.Context) {
	investorID := callerID(c)
	if investorID == "" {
		writeError(c, errMissingUserID)
		return
	}
	var payload request.InvestmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidInvestmentPayload.WithDetails(request.FormatValidationErrors(err)))
		return
	}

	fr, err := h.usecase.Invest(c.Request.Context(), c.Param("id"), investorID, payload.WalletAdjustment)
	if err != nil {
		writeError(c, mapFundingError(err))
		return
	}
	logger.FromGin(c).Info("[funding][http] invested",
		zap.String("funding_request_id", fr.ID),
		zap.String("investor_id", investorID),
		zap.String("wallet_adjustment", payload.WalletAdjustment.String()),
		zap.String("status", string(fr.Status)),
	)
	c.JSON(http.StatusOK, response.FromFundingRequest(fr))
}

// DistributeReturns godoc
// @Summary      Pay principal plus committed return to every investor
// @Tags         funding-requests
// @Produce      json
// @Param        id  path  string  true  "Funding request id"
// @Success      200  {object}  response.FundingRequestResponse
// @Failure      400,404,409,502  {object}  pkg.HTTPError
// @Router       /funding-requests/{id}/distribute-returns [post]
func (h *FundingRequestHandler) DistributeReturns(c *gin.Context) {
	fr, err := h.usecase.DistributeReturns(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapFundingError(err))
		return
	}
	logger.FromGin(c).Info("[funding][http] returns distributed", zap.String("funding_request_id", fr.ID))
	c.JSON(http.StatusOK, response.FromFundingRequest(fr))
}

// GetByID godoc
// @Summary      Get a funding request
// @Tags         funding-requests
// @Produce      json
// @Param        id  path  string  true  "Funding request id"
// @Success      200  {object}  response.FundingRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /funding-requests/{id} [get]
func (h *FundingRequestHandler) GetByID(c *gin.Context) {
	view, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapFundingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFundingRequestView(view))
}

// List godoc
// @Summary      List funding requests
// @Tags         funding-requests
// @Produce      json
// @Success      200  {array}  response.FundingRequestResponse
// @Router       /funding-requests [get]
func (h *FundingRequestHandler) List(c *gin.Context) {
	views, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapFundingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFundingRequestViews(views))
}

// ListMine godoc
// @Summary      List the caller's funding requests
// @Tags         funding-requests
// @Produce      json
// @Param        X-User-Id  header  string  true  "Funder id"
// @Success      200  {array}  response.FundingRequestResponse
// @Router       /funding-requests/mine [get]
func (h *FundingRequestHandler) ListMine(c *gin.Context) {
	funderID := callerID(c)
	if funderID == "" {
		writeError(c, errMissingUserID)
		return
	}
	views, err := h.usecase.ListByFunder(c.Request.Context(), funderID)
	if err != nil {
		writeError(c, mapFundingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFundingRequestViews(views))
}

func mapFundingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrFunderCreditFailed):
		return pkg.NewDomainError("FUNDER_CREDIT_FAILED", "Investment recorded but the funder could not be credited", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvalidFundingRequest),
		errors.Is(err, usecase.ErrInvalidInvestmentAmount),
		errors.Is(err, usecase.ErrInvestmentExceedsRemaining):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFundingRequestOwner):
		return pkg.NewDomainErrorSimple("NOT_FUNDING_REQUEST_OWNER", "Only the funder can modify this funding request", http.StatusForbidden)
	case errors.Is(err, usecase.ErrFundingRequestNotFound):
		return pkg.NewDomainErrorSimple("FUNDING_REQUEST_NOT_FOUND", "Funding request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFundingRequestNotOpen):
		return pkg.NewDomainErrorSimple("FUNDING_REQUEST_NOT_OPEN", "Funding request is not open", http.StatusConflict)
	case errors.Is(err, usecase.ErrFundingRequestNotFunded):
		return pkg.NewDomainErrorSimple("FUNDING_REQUEST_NOT_FUNDED", "Funding request is not funded", http.StatusConflict)
	case errors.Is(err, usecase.ErrReturnsAlreadyDistributed):
		return pkg.NewDomainErrorSimple("RETURNS_ALREADY_DISTRIBUTED", "Returns already distributed", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoInvestors):
		return pkg.NewDomainErrorSimple("NO_INVESTORS", "Funding request has no investors", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainError("CONCURRENT_MODIFICATION", "Funding request changed concurrently, retry", err, http.StatusConflict)
	}
	if appErr, ok := mapCollaboratorError(err); ok {
		return appErr
	}
	return internalError(err)
}
