package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xfetch/xfetch/internal/cache"
	"github.com/xfetch/xfetch/internal/fetch"
)

// viewState tracks which screen the browser shows.
type viewState int

const (
	stateList viewState = iota
	stateDetail
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 24
)

// identifierColumnWidth bounds the identifier column.
const identifierColumnWidth = 40

// PeekFunc loads the entry stored under a key. cache.Manager.Peek fits.
type PeekFunc func(key string) (*cache.Entry, bool)

// BrowseModel is the Bubble Tea model for the cache browser.
type BrowseModel struct {
	entries []cache.EntrySummary
	peek    PeekFunc
	tbl     table.Model

	state  viewState
	detail *fetch.ResultSet
	notice string

	width  int
	height int
}

// NewBrowseModel builds the browser over a stats snapshot. peek supplies
// entry payloads on demand when the user opens one.
func NewBrowseModel(stats *cache.Stats, peek PeekFunc) BrowseModel {
	columns := []table.Column{
		{Title: "Category", Width: 10},
		{Title: "Identifier", Width: identifierColumnWidth},
		{Title: "Fetched", Width: 20},
		{Title: "Size", Width: 8},
		{Title: "State", Width: 7},
		{Title: "Tweets", Width: 6},
	}

	rows := make([]table.Row, 0, len(stats.Entries))
	for _, entry := range stats.Entries {
		rows = append(rows, table.Row{
			entry.Category.String(),
			entry.Identifier,
			displayTimestamp(entry.FetchedAt),
			fmt.Sprintf("%dB", entry.SizeBytes),
			freshnessLabel(entry),
			fmt.Sprintf("%d", entry.Count),
		})
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(defaultHeight-6),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(colorHeader)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	tbl.SetStyles(styles)

	return BrowseModel{
		entries: stats.Entries,
		peek:    peek,
		tbl:     tbl,
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tbl.SetHeight(msg.Height - 6)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m BrowseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.state == stateDetail {
			m.state = stateList
			m.detail = nil
			m.notice = ""
			return m, nil
		}
		return m, tea.Quit

	case "enter":
		if m.state == stateList {
			m.openSelected()
		}
		return m, nil
	}

	if m.state == stateList {
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}
	return m, nil
}

// openSelected loads the payload behind the cursor row.
func (m *BrowseModel) openSelected() {
	idx := m.tbl.Cursor()
	if idx < 0 || idx >= len(m.entries) {
		return
	}
	summary := m.entries[idx]

	entry, ok := m.peek(summary.Key)
	if !ok {
		m.notice = "entry is unreadable (corrupt or removed)"
		m.state = stateDetail
		m.detail = nil
		return
	}

	var set fetch.ResultSet
	if err := json.Unmarshal(entry.Raw, &set); err != nil {
		m.notice = "entry payload did not decode"
		m.state = stateDetail
		m.detail = nil
		return
	}

	m.notice = ""
	m.detail = &set
	m.state = stateDetail
}

// View implements tea.Model.
func (m BrowseModel) View() string {
	if m.state == stateDetail {
		return m.detailView()
	}
	return m.listView()
}

func (m BrowseModel) listView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("xfetch cache"))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %d entries", len(m.entries))))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(labelStyle.Render("Cache is empty."))
	} else {
		b.WriteString(m.tbl.View())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: open  q: quit"))
	return b.String()
}

func (m BrowseModel) detailView() string {
	var b strings.Builder

	if m.detail == nil {
		b.WriteString(staleStyle.Render(m.notice))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc: back  q: quit"))
		return b.String()
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("[%s] %s", m.detail.Mode, m.detail.Query)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("fetched %s, %d tweets", m.detail.FetchedAt, m.detail.Count)))
	b.WriteString("\n\n")

	for _, tweet := range m.detail.Tweets {
		b.WriteString(authorStyle.Render("@" + tweet.Author))
		if tweet.AuthorName != "" {
			b.WriteString(labelStyle.Render(" (" + tweet.AuthorName + ")"))
		}
		b.WriteString("\n")
		b.WriteString(tweet.Text)
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("likes %d  replies %d  %s", tweet.Likes, tweet.Replies, tweet.CreatedAt)))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("esc: back  q: quit"))
	return b.String()
}

func freshnessLabel(entry cache.EntrySummary) string {
	if entry.Category == cache.CategoryCorrupt {
		return staleStyle.Render("corrupt")
	}
	if entry.Fresh {
		return freshStyle.Render("fresh")
	}
	return staleStyle.Render("stale")
}

func displayTimestamp(fetchedAt string) string {
	if fetchedAt == "" {
		return "unknown"
	}
	return fetchedAt
}
