package handler

import (
	"context"
	"net/http"

	"chainledger/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AuthService . AuthService
type AuthService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	ValidateToken(token string) error
}

//counterfeiter:generate -o fake -fake-name SyncService . SyncService
type SyncService interface {
	ReconcileRange(ctx context.Context, fromBlock, toBlock uint64) (core.ReconcileSummary, error)
	Status() core.ServiceStatus
}

//counterfeiter:generate -o fake -fake-name ClaimService . ClaimService
type ClaimService interface {
	IssueClaimSignature(ctx context.Context, req core.IssueClaimRequest) (core.ClaimTicket, error)
	VerifyClaimSignature(payload core.ClaimPayload, signatureHex string) (bool, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
