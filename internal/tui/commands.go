package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelar/tibiasearch/internal/market"
)

// RefreshCmd runs a market refresh for the server in the background. The
// refresher collapses concurrent runs, so firing it repeatedly is safe.
func RefreshCmd(refresher *market.Refresher, server string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		summary, err := refresher.Refresh(ctx, server)
		if err != nil {
			return ErrMsg{Err: err, Context: "refreshing market prices"}
		}
		return RefreshDoneMsg{Summary: summary}
	}
}
