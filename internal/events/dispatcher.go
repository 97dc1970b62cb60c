package events

import (
	"context"
	"fmt"
)

// Outcome tells the caller whether a handled event produced new state or
// resolved as a no-op (duplicate delivery, missing referenced entity).
type Outcome int

const (
	OutcomeApplied Outcome = iota
	OutcomeSkipped
)

// Handler receives decoded events, one method per variant.
type Handler interface {
	HandleLiked(ctx context.Context, event Liked) (Outcome, error)
	HandleTokensClaimed(ctx context.Context, event TokensClaimed) (Outcome, error)
	HandleClaimExecuted(ctx context.Context, event ClaimExecuted) (Outcome, error)
	HandleTransfer(ctx context.Context, event Transfer) (Outcome, error)
}

// Dispatch routes a decoded event to exactly one handler method. The type
// switch is exhaustive over the sealed variant set.
func Dispatch(ctx context.Context, handler Handler, event Event) (Outcome, error) {
	switch ev := event.(type) {
	case Liked:
		return handler.HandleLiked(ctx, ev)
	case TokensClaimed:
		return handler.HandleTokensClaimed(ctx, ev)
	case ClaimExecuted:
		return handler.HandleClaimExecuted(ctx, ev)
	case Transfer:
		return handler.HandleTransfer(ctx, ev)
	default:
		return OutcomeSkipped, fmt.Errorf("%w: %T", ErrUnknownEvent, event)
	}
}
