package payload

import (
	"fmt"

	"chainledger/internal/core"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r AuthRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Password, validation.Required),
	)
}

func (r AuthRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: r.Username,
		Password: r.Password,
	}
}

type IssueClaimRequest struct {
	WalletAddress string `json:"walletAddress"`
	PostID        *int64 `json:"postId,omitempty"`
	Amount        string `json:"amount"`
}

func (r IssueClaimRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.WalletAddress, validation.Required, validation.Length(42, 42)),
		validation.Field(&r.Amount, validation.Required),
	)
}

func (r IssueClaimRequest) ToCoreRequest() (core.IssueClaimRequest, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return core.IssueClaimRequest{}, fmt.Errorf("parse amount: %w", err)
	}

	return core.IssueClaimRequest{
		WalletAddress: r.WalletAddress,
		PostID:        r.PostID,
		Amount:        amount,
	}, nil
}

type VerifyClaimRequest struct {
	WalletAddress string `json:"walletAddress"`
	PostID        *int64 `json:"postId,omitempty"`
	Amount        string `json:"amount"`
	Deadline      int64  `json:"deadline"`
	Nonce         string `json:"nonce"`
	Signature     string `json:"signature"`
}

func (r VerifyClaimRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.WalletAddress, validation.Required, validation.Length(42, 42)),
		validation.Field(&r.Amount, validation.Required),
		validation.Field(&r.Deadline, validation.Required),
		validation.Field(&r.Nonce, validation.Required),
		validation.Field(&r.Signature, validation.Required),
	)
}

func (r VerifyClaimRequest) ToPayload() (core.ClaimPayload, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return core.ClaimPayload{}, fmt.Errorf("parse amount: %w", err)
	}

	return core.ClaimPayload{
		WalletAddress: r.WalletAddress,
		PostID:        r.PostID,
		Amount:        amount,
		Deadline:      r.Deadline,
		Nonce:         r.Nonce,
	}, nil
}

type ResyncRequest struct {
	FromBlock uint64 `json:"fromBlock"`
	ToBlock   uint64 `json:"toBlock"`
}

func (r ResyncRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ToBlock, validation.Required,
			validation.Min(r.FromBlock).Error("toBlock must not be below fromBlock")),
	)
}
