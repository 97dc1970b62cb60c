package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"chainledger/internal/core"
	"chainledger/internal/http/handler/middleware"
	"chainledger/internal/http/payload"
	"chainledger/pkg/eip712"

	"go.uber.org/zap"
)

var (
	Authenticate = "POST /admin/authenticate"
	GetStatus    = "GET /admin/status"
	Resync       = "POST /admin/resync"
	IssueClaim   = "POST /claims/issue"
	VerifyClaim  = "POST /claims/verify"
)

type AdminHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	auth             AuthService
	syncer           SyncService
	claims           ClaimService
}

func NewAdminHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, auth AuthService, syncer SyncService, claims ClaimService) *AdminHandler {
	return &AdminHandler{
		logs:             logger,
		requestValidator: requestValidator,
		auth:             auth,
		syncer:           syncer,
		claims:           claims,
	}
}

func (h *AdminHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var authReq payload.AuthRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &authReq)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.auth.Authenticate(r.Context(), authReq.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *AdminHandler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	status := h.syncer.Status()
	h.respond(w, Response{Data: status}, http.StatusOK, requestId)
}

func (h *AdminHandler) HandleResync(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken := r.Header.Get("AUTH_TOKEN")
	if err := h.auth.ValidateToken(authToken); err != nil {
		h.respond(w, Response{
			Message: "Unauthorized",
			Error:   "a valid auth token is required",
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("resync token rejected",
			"error", err,
			"handler", Resync,
			"request_id", requestId)
		return
	}

	var resyncReq payload.ResyncRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &resyncReq)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not resync",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Resync,
			"request_id", requestId)
		return
	}

	h.logs.Infow("resync requested",
		"fromBlock", resyncReq.FromBlock,
		"toBlock", resyncReq.ToBlock,
		"handler", Resync,
		"request_id", requestId)

	summary, err := h.syncer.ReconcileRange(r.Context(), resyncReq.FromBlock, resyncReq.ToBlock)
	if err != nil {
		resp := Response{
			Message: "Resync failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrNotConfigured) {
			httpCode = http.StatusServiceUnavailable
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("resync failed",
			"error", err,
			"handler", Resync,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: summary}, http.StatusOK, requestId)
}

func (h *AdminHandler) HandleIssueClaim(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var issueReq payload.IssueClaimRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &issueReq)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not issue claim",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", IssueClaim,
			"request_id", requestId)
		return
	}

	coreReq, err := issueReq.ToCoreRequest()
	if err != nil {
		h.respond(w, Response{
			Message: "Could not issue claim",
			Error:   err.Error(),
		}, http.StatusBadRequest, requestId)
		return
	}

	ticket, err := h.claims.IssueClaimSignature(r.Context(), coreReq)
	if err != nil {
		resp := Response{
			Message: "Claim issuance failed",
		}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrNotConfigured):
			httpCode = http.StatusServiceUnavailable
			resp.Error = err.Error()
		case errors.Is(err, core.ErrWalletNotFound), errors.Is(err, core.ErrPostNotFound):
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		case errors.Is(err, core.ErrInvalidAmount),
			errors.Is(err, core.ErrNotPostOwner),
			errors.Is(err, core.ErrInsufficientBalance):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		default:
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("claim issuance failed",
			"error", err,
			"handler", IssueClaim,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: ticket}, http.StatusOK, requestId)
}

func (h *AdminHandler) HandleVerifyClaim(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var verifyReq payload.VerifyClaimRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &verifyReq)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not verify claim",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", VerifyClaim,
			"request_id", requestId)
		return
	}

	claimPayload, err := verifyReq.ToPayload()
	if err != nil {
		h.respond(w, Response{
			Message: "Could not verify claim",
			Error:   err.Error(),
		}, http.StatusBadRequest, requestId)
		return
	}

	valid, err := h.claims.VerifyClaimSignature(claimPayload, verifyReq.Signature)
	if err != nil {
		resp := Response{
			Message: "Claim verification failed",
		}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrNotConfigured):
			httpCode = http.StatusServiceUnavailable
			resp.Error = err.Error()
		case errors.Is(err, eip712.ErrInvalidSignatureLength):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		default:
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("claim verification failed",
			"error", err,
			"handler", VerifyClaim,
			"request_id", requestId)
		return
	}

	resp := map[string]bool{
		"valid": valid,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *AdminHandler) respond(w http.ResponseWriter, body any, statusCode int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if v := r.Context().Value(middleware.RequestIDKey); v != nil {
		return v.(string)
	}
	return ""
}
