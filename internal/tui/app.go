// Package tui is the terminal UI: wiki search, imbuement planning, the item
// catalog and the hunt log, with market refreshes running in the background.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avelar/tibiasearch/internal/adapter"
	"github.com/avelar/tibiasearch/internal/catalog"
	"github.com/avelar/tibiasearch/internal/domain"
	"github.com/avelar/tibiasearch/internal/imbuement"
	"github.com/avelar/tibiasearch/internal/market"
	"github.com/avelar/tibiasearch/internal/search"
	"github.com/avelar/tibiasearch/internal/store"
	"github.com/avelar/tibiasearch/internal/tui/styles"
	"github.com/avelar/tibiasearch/internal/wiki"
)

// Tab identifies one of the main views.
type Tab int

const (
	TabSearch Tab = iota
	TabImbuements
	TabItems
	TabHunts
)

var tabNames = []string{"Search", "Imbuements", "Items", "Hunts"}

// Deps bundles everything the UI operates on.
type Deps struct {
	Config     *adapter.Config
	Logger     *slog.Logger
	Refresher  *market.Refresher
	Catalogs   []*catalog.Catalog
	Index      *search.Index
	Characters *store.CharacterStore
	Imbuements *store.ImbuementStore
	ItemPrices *store.ItemPriceStore
	Hunts      *store.HuntStore
	History    *store.HistoryStore
}

// Model is the root Bubble Tea model.
type Model struct {
	deps Deps

	tab    Tab
	width  int
	height int

	searchInput textinput.Model
	results     []search.Result

	imbuementTable table.Model
	itemTable      table.Model
	huntTable      table.Model

	status     string
	statusErr  bool
	refreshing bool
}

// New builds the UI model.
func New(deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	input := textinput.New()
	input.Placeholder = "item, imbuement or free text..."
	input.Focus()

	m := Model{
		deps:        deps,
		searchInput: input,
		imbuementTable: table.New(
			table.WithColumns([]table.Column{
				{Title: " ", Width: 2},
				{Title: "Imbuement", Width: 28},
				{Title: "Category", Width: 34},
				{Title: "Cost", Width: 14},
			}),
			table.WithHeight(16),
		),
		itemTable: table.New(
			table.WithColumns([]table.Column{
				{Title: "Item", Width: 30},
				{Title: "Gold", Width: 12},
				{Title: "Weight", Width: 8},
				{Title: "Category", Width: 22},
			}),
			table.WithHeight(16),
		),
		huntTable: table.New(
			table.WithColumns([]table.Column{
				{Title: "Hunt", Width: 24},
				{Title: "Duration", Width: 10},
				{Title: "XP/h", Width: 12},
				{Title: "Balance", Width: 14},
				{Title: "Gear", Width: 12},
			}),
			table.WithHeight(16),
		),
	}
	m.reloadImbuementRows()
	m.reloadItemRows()
	m.reloadHuntRows()
	return m
}

// Init kicks off a refresh when configured to do so.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.deps.Config != nil && m.deps.Config.Market.RefreshOnStart && m.deps.Refresher != nil {
		cmds = append(cmds, RefreshCmd(m.deps.Refresher, m.deps.Config.Market.Server))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case RefreshDoneMsg:
		m.refreshing = false
		m.statusErr = false
		m.status = summaryLine(msg.Summary)
		m.reloadCatalogs()
		m.reloadItemRows()
		return m, nil

	case ErrMsg:
		m.refreshing = false
		m.statusErr = true
		m.status = fmt.Sprintf("Error %s: %v", msg.Context, msg.Err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveView(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	typing := m.tab == TabSearch && m.searchInput.Focused()

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if !typing {
			return m, tea.Quit
		}
	case "tab":
		m.tab = (m.tab + 1) % Tab(len(tabNames))
		m.syncFocus()
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		m.syncFocus()
		return m, nil
	case "r":
		if !typing && m.deps.Refresher != nil && !m.refreshing {
			m.refreshing = true
			m.statusErr = false
			m.status = "Refreshing market prices..."
			server := ""
			if m.deps.Config != nil {
				server = m.deps.Config.Market.Server
			}
			return m, RefreshCmd(m.deps.Refresher, server)
		}
	case "f":
		if m.tab == TabImbuements {
			m.toggleFavorite()
			return m, nil
		}
	case "enter":
		if m.tab == TabSearch {
			m.runSearch()
			return m, nil
		}
	}

	return m.updateActiveView(msg)
}

func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.tab {
	case TabSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case TabImbuements:
		m.imbuementTable, cmd = m.imbuementTable.Update(msg)
	case TabItems:
		m.itemTable, cmd = m.itemTable.Update(msg)
	case TabHunts:
		m.huntTable, cmd = m.huntTable.Update(msg)
	}
	return m, cmd
}

func (m *Model) syncFocus() {
	m.searchInput.Blur()
	m.imbuementTable.Blur()
	m.itemTable.Blur()
	m.huntTable.Blur()
	switch m.tab {
	case TabSearch:
		m.searchInput.Focus()
	case TabImbuements:
		m.imbuementTable.Focus()
	case TabItems:
		m.itemTable.Focus()
	case TabHunts:
		m.huntTable.Focus()
	}
}

func (m *Model) runSearch() {
	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		m.results = nil
		return
	}
	if m.deps.History != nil {
		m.deps.History.Add(query)
	}
	if m.deps.Index != nil {
		m.results = m.deps.Index.Search(query, 15)
	}
}

func (m *Model) toggleFavorite() {
	row := m.imbuementTable.SelectedRow()
	if row == nil || m.deps.Imbuements == nil {
		return
	}
	for _, imb := range imbuement.All() {
		if imb.Name == row[1] {
			key := imb.Key()
			m.deps.Imbuements.SetFavorite(key, !m.deps.Imbuements.IsFavorite(key))
			break
		}
	}
	m.reloadImbuementRows()
}

func (m *Model) reloadCatalogs() {
	for i, cat := range m.deps.Catalogs {
		reloaded, err := catalog.Load(cat.Path)
		if err != nil {
			m.deps.Logger.Warn("failed to reload catalog", "path", cat.Path, "error", err)
			continue
		}
		m.deps.Catalogs[i] = reloaded
	}
}

func (m *Model) reloadImbuementRows() {
	priceOf := func(string) int { return 0 }
	isFavorite := func(string) bool { return false }
	if m.deps.Imbuements != nil {
		priceOf = m.deps.Imbuements.Price
		isFavorite = m.deps.Imbuements.IsFavorite
	}

	var rows []table.Row
	for _, imb := range imbuement.All() {
		mark := " "
		if isFavorite(imb.Key()) {
			mark = styles.FavoriteMark.String()
		}
		rows = append(rows, table.Row{
			mark,
			imb.Name,
			imb.Category,
			domain.FormatGold(imb.TotalCost(priceOf)),
		})
	}
	m.imbuementTable.SetRows(rows)
}

func (m *Model) reloadItemRows() {
	var rows []table.Row
	for _, cat := range m.deps.Catalogs {
		for _, item := range cat.Items {
			gold := item.Gold
			if m.deps.ItemPrices != nil {
				if override := m.deps.ItemPrices.Price(item.Name); override > 0 {
					gold = override
				}
			}
			rows = append(rows, table.Row{
				item.Name,
				domain.FormatGold(gold),
				fmt.Sprintf("%.2f", item.Weight),
				item.Category,
			})
		}
	}
	m.itemTable.SetRows(rows)
}

func (m *Model) reloadHuntRows() {
	if m.deps.Hunts == nil {
		return
	}
	var rows []table.Row
	for _, h := range m.deps.Hunts.List() {
		rows = append(rows, table.Row{
			h.Name,
			formatDuration(h.Stats.DurationSeconds),
			fmt.Sprintf("%.0f", h.Stats.XPPerHour),
			domain.FormatGold(h.Stats.BalanceTotal),
			h.EquipmentTag,
		})
	}
	m.huntTable.SetRows(rows)
}

func formatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02dh", seconds/3600, (seconds%3600)/60)
}

func summaryLine(s *domain.Summary) string {
	if s == nil {
		return ""
	}
	if s.Skipped {
		return fmt.Sprintf("Market data for %s unchanged; nothing to do", s.Server)
	}
	line := fmt.Sprintf("Refreshed %s: %d updated, %d without price, %d missing ids (%d/%d batches ok)",
		s.Server, s.UpdatedItems, s.ItemsWithoutMarketPrice, s.ItemsMissingIDs,
		s.Batches-s.FailedBatches, s.Batches)
	if s.Status == domain.StatusJoined {
		line += " [joined]"
	}
	return line
}

func (m Model) View() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs = append(tabs, styles.ActiveTabStyle.Render(name))
		} else {
			tabs = append(tabs, styles.InactiveTabStyle.Render(name))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var body string
	switch m.tab {
	case TabSearch:
		body = m.searchView()
	case TabImbuements:
		body = m.imbuementTable.View()
	case TabItems:
		body = m.itemTable.View()
	case TabHunts:
		body = m.huntTable.View()
	}

	status := m.statusView()
	return strings.Join([]string{header, styles.PaneStyle.Render(body), status}, "\n")
}

func (m Model) searchView() string {
	var b strings.Builder
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		if m.deps.History != nil {
			if recent := m.deps.History.Items(); len(recent) > 0 {
				b.WriteString(styles.DimStyle.Render("Recent searches:"))
				b.WriteString("\n")
				for _, term := range recent {
					b.WriteString("  " + term + "\n")
				}
			}
		}
		return b.String()
	}

	for _, r := range m.results {
		url := r.URL
		if url == "" {
			url = wiki.ArticleURL(r.Name)
		}
		b.WriteString(fmt.Sprintf("%s %s\n  %s\n",
			styles.TitleStyle.Render(r.Name),
			styles.DimStyle.Render("("+string(r.Kind)+")"),
			styles.DimStyle.Render(url)))
	}
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("Anything else: " + wiki.SearchURL(m.searchInput.Value())))
	b.WriteString("\n")
	return b.String()
}

func (m Model) statusView() string {
	help := styles.DimStyle.Render("tab: switch · r: refresh prices · f: favorite · q: quit")
	if m.status == "" {
		return help
	}
	style := styles.SuccessStyle
	if m.statusErr {
		style = styles.ErrorStyle
	}
	if m.refreshing {
		style = styles.StatusStyle
	}
	return style.Render(m.status) + "  " + help
}
