package tui

import (
	"encoding/json"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xfetch/xfetch/internal/cache"
)

func newBrowserOverTempCache(t *testing.T) BrowseModel {
	t.Helper()
	manager := cache.NewManager(t.TempDir(), cache.DefaultTTLPolicy(), zerolog.Nop())
	manager.Save(cache.CategorySearch, "golang", json.RawMessage(
		`{"query":"golang","mode":"search","count":1,"tweets":[{"id":"1","text":"hi","author":"gopher"}]}`))
	return NewBrowseModel(manager.Stats(), manager.Peek)
}

func TestBrowseListView(t *testing.T) {
	m := newBrowserOverTempCache(t)

	view := m.View()
	assert.Contains(t, view, "1 entries")
	assert.Contains(t, view, "golang")
	assert.Contains(t, view, "fresh")
}

func TestBrowseEmptyCache(t *testing.T) {
	manager := cache.NewManager(t.TempDir(), cache.DefaultTTLPolicy(), zerolog.Nop())
	m := NewBrowseModel(manager.Stats(), manager.Peek)

	assert.Contains(t, m.View(), "Cache is empty.")
}

func TestBrowseOpenAndBack(t *testing.T) {
	m := newBrowserOverTempCache(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	detail, ok := updated.(BrowseModel)
	require.True(t, ok)
	assert.Equal(t, stateDetail, detail.state)
	assert.Contains(t, detail.View(), "@gopher")

	updated, _ = detail.Update(tea.KeyMsg{Type: tea.KeyEsc})
	back, ok := updated.(BrowseModel)
	require.True(t, ok)
	assert.Equal(t, stateList, back.state)
}

func TestBrowseQuit(t *testing.T) {
	m := newBrowserOverTempCache(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBrowseUnreadableEntry(t *testing.T) {
	m := newBrowserOverTempCache(t)
	m.peek = func(string) (*cache.Entry, bool) { return nil, false }

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	detail := updated.(BrowseModel)
	assert.Contains(t, detail.View(), "unreadable")
}
