package v1

import (
	"net/http"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/tutoring"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// TutoringHandler drives the request, accept and reject views. Every
// method expects the claims stored by RequireSession.
type TutoringHandler interface {
	ListOwn(ctx *gin.Context)
	Request(ctx *gin.Context)
	ListPending(ctx *gin.Context)
	Accept(ctx *gin.Context)
	Reject(ctx *gin.Context)
}

type tutoringHandler struct {
	tutoringService tutoring.TutoringService
	logger          logger.Logger
}

// NewTutoringHandler creates a new TutoringHandler
func NewTutoringHandler(tutoringService tutoring.TutoringService, logger logger.Logger) TutoringHandler {
	return &tutoringHandler{
		tutoringService: tutoringService,
		logger:          logger,
	}
}

// ListOwn handles the GET request listing the caller's requests
// @Summary List my tutoring requests
// @Tags Tutoring
// @Produce json
// @Success 200 {array} TutoringRequestResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /pedir_tutoria/ [get]
func (handler *tutoringHandler) ListOwn(ctx *gin.Context) {
	claims := sessionClaims(ctx)

	requests, err := handler.tutoringService.ListForStudent(ctx.Request.Context(), claims.UserID)
	if err != nil {
		respondError(ctx, handler.logger, "failed to list tutoring requests", err)
		return
	}

	ctx.JSON(http.StatusOK, newTutoringRequestList(requests))
}

// Request handles the POST request to ask an instructor for tutoring
// @Summary Request a tutoring session
// @Tags Tutoring
// @Accept json
// @Produce json
// @Param requestBody body TutoringRequestPayload true "Request"
// @Success 201 {object} TutoringRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /pedir_tutoria/ [post]
func (handler *tutoringHandler) Request(ctx *gin.Context) {
	claims := sessionClaims(ctx)

	var payload TutoringRequestPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		badRequest(ctx, "invalid tutoring request data: %v", err)
		return
	}

	request, err := handler.tutoringService.Request(ctx.Request.Context(), claims.UserID, payload.toInput())
	if err != nil {
		respondError(ctx, handler.logger, "failed to request tutoring", err)
		return
	}

	ctx.JSON(http.StatusCreated, newTutoringRequestResponse(request))
}

// ListPending handles the GET request listing pending requests addressed to the caller
// @Summary List pending tutoring requests
// @Tags Tutoring
// @Produce json
// @Success 200 {array} TutoringRequestResponse
// @Failure 403 {object} ErrorResponse
// @Router /aceptar_tutoria/ [get]
func (handler *tutoringHandler) ListPending(ctx *gin.Context) {
	claims := sessionClaims(ctx)

	requests, err := handler.tutoringService.ListPendingForInstructor(ctx.Request.Context(), claims.UserID)
	if err != nil {
		respondError(ctx, handler.logger, "failed to list pending requests", err)
		return
	}

	ctx.JSON(http.StatusOK, newTutoringRequestList(requests))
}

// Accept handles the POST request accepting a pending request
// @Summary Accept a tutoring request and schedule its session
// @Tags Tutoring
// @Accept json
// @Produce json
// @Param requestBody body AcceptTutoringPayload true "Session"
// @Success 201 {object} TutoringSessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /aceptar_tutoria/ [post]
func (handler *tutoringHandler) Accept(ctx *gin.Context) {
	claims := sessionClaims(ctx)

	var payload AcceptTutoringPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		badRequest(ctx, "invalid session data: %v", err)
		return
	}

	session, err := handler.tutoringService.Accept(ctx.Request.Context(), claims.UserID, payload.toInput())
	if err != nil {
		respondError(ctx, handler.logger, "failed to accept tutoring request", err)
		return
	}

	ctx.JSON(http.StatusCreated, newTutoringSessionResponse(session))
}

// Reject handles the POST request declining a pending request
func (handler *tutoringHandler) Reject(ctx *gin.Context) {
	claims := sessionClaims(ctx)

	var payload RequestIDPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		badRequest(ctx, "invalid request data: %v", err)
		return
	}

	if err := payload.Validate(); err != nil {
		badRequest(ctx, "%v", err)
		return
	}

	request, err := handler.tutoringService.Reject(ctx.Request.Context(), claims.UserID, payload.RequestID)
	if err != nil {
		respondError(ctx, handler.logger, "failed to reject tutoring request", err)
		return
	}

	ctx.JSON(http.StatusOK, newTutoringRequestResponse(request))
}

func newTutoringRequestList(requests []*tutoring.Request) []TutoringRequestResponse {
	response := make([]TutoringRequestResponse, 0, len(requests))
	for _, request := range requests {
		response = append(response, newTutoringRequestResponse(request))
	}
	return response
}
