package tui

import "github.com/avelar/tibiasearch/internal/domain"

// RefreshDoneMsg carries the outcome of a market refresh.
type RefreshDoneMsg struct {
	Summary *domain.Summary
}

// ErrMsg reports a failed async operation.
type ErrMsg struct {
	Err     error
	Context string
}
