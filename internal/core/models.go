package core

import (
	"github.com/shopspring/decimal"
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// IssueClaimRequest is the request-path input for claim issuance. PostID is
// nil for wallet-level reward claims.
type IssueClaimRequest struct {
	WalletAddress string
	PostID        *int64
	Amount        decimal.Decimal
}

// ClaimTicket is the bearer authorization handed back to the client: the
// exact signed tuple plus the signature to submit on-chain.
type ClaimTicket struct {
	WalletAddress string
	PostID        *int64
	Amount        decimal.Decimal
	AmountBase    string
	Deadline      int64
	Nonce         string
	Signature     string
}

// ClaimPayload is the tuple a caller asks to verify.
type ClaimPayload struct {
	WalletAddress string
	PostID        *int64
	Amount        decimal.Decimal
	Deadline      int64
	Nonce         string
}

type ReconcileSummary struct {
	TotalEvents     int `json:"totalEvents"`
	ProcessedEvents int `json:"processedEvents"`
	NewEntries      int `json:"newEntries"`
	Errors          int `json:"errors"`
}

type ServiceStatus struct {
	IsListening     bool   `json:"isListening"`
	IsConnected     bool   `json:"isConnected"`
	ContractAddress string `json:"contractAddress"`
}
