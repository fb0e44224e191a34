package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/fidsort/internal/files/dirlist"
	"github.com/vvka-141/fidsort/internal/tui"
)

// ListFunc reads one directory level. dirlist.Lister.List satisfies it.
type ListFunc func(path string) (dirlist.Listing, error)

// useFolderLabel is the first row of every listing.
const useFolderLabel = "[ use this folder ]"

// DirPicker is a folder browser. The first row chooses the current folder;
// the remaining rows are its subdirectories.
type DirPicker struct {
	title     string
	list      ListFunc
	listing   dirlist.Listing
	err       error
	cursor    int
	offset    int
	height    int
	keyMap    tui.KeyMap
	chosen    string
	cancelled bool
}

// NewDirPicker creates a picker that starts at start. An empty start lists
// the home directory.
func NewDirPicker(title string, list ListFunc, start string) DirPicker {
	p := DirPicker{
		title:  title,
		list:   list,
		height: 20,
		keyMap: tui.DefaultKeyMap(),
	}
	p.load(start)
	return p
}

// load switches to path, keeping the previous listing on error.
func (p *DirPicker) load(path string) {
	listing, err := p.list(path)
	if err != nil {
		p.err = err
		return
	}
	p.err = nil
	p.listing = listing
	p.cursor = 0
	p.offset = 0
}

// Init implements tea.Model.
func (p DirPicker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p DirPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keyMap.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, p.keyMap.Down):
			if p.cursor < len(p.listing.Dirs) {
				p.cursor++
			}
		case key.Matches(msg, p.keyMap.Parent):
			if p.listing.ParentPath != p.listing.CurrentPath {
				p.load(p.listing.ParentPath)
			}
		case key.Matches(msg, p.keyMap.Choose):
			p.chosen = p.listing.CurrentPath
			return p, tea.Quit
		case key.Matches(msg, p.keyMap.Select), key.Matches(msg, p.keyMap.Open):
			if p.cursor == 0 {
				if key.Matches(msg, p.keyMap.Select) {
					p.chosen = p.listing.CurrentPath
					return p, tea.Quit
				}
				return p, nil
			}
			p.load(p.childPath(p.listing.Dirs[p.cursor-1]))
		case key.Matches(msg, p.keyMap.Quit):
			p.cancelled = true
			return p, tea.Quit
		}
	case tea.WindowSizeMsg:
		// Title, path, help and margins take six lines.
		p.height = max(msg.Height-6, 3)
	}
	p.scroll()
	return p, nil
}

func (p DirPicker) childPath(name string) string {
	cur := p.listing.CurrentPath
	if strings.HasSuffix(cur, "/") || strings.HasSuffix(cur, `\`) {
		return cur + name
	}
	return cur + string(pathSeparator(cur)) + name
}

func pathSeparator(p string) rune {
	if strings.Contains(p, `\`) && !strings.Contains(p, "/") {
		return '\\'
	}
	return '/'
}

// scroll keeps the cursor inside the visible window.
func (p *DirPicker) scroll() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.height {
		p.offset = p.cursor - p.height + 1
	}
}

// View implements tea.Model.
func (p DirPicker) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render(p.title))
	b.WriteString("\n")
	b.WriteString(tui.PathStyle.Render(p.listing.CurrentPath))
	b.WriteString("\n\n")

	rows := make([]string, 0, len(p.listing.Dirs)+1)
	rows = append(rows, useFolderLabel)
	for _, d := range p.listing.Dirs {
		rows = append(rows, tui.SymbolFolder+" "+d)
	}

	end := min(p.offset+p.height, len(rows))
	for i := p.offset; i < end; i++ {
		if i == p.cursor {
			b.WriteString(tui.SelectedStyle.Render(tui.SymbolCursor + " " + rows[i]))
		} else {
			b.WriteString(tui.UnselectedStyle.Render("  " + rows[i]))
		}
		b.WriteString("\n")
	}
	if len(p.listing.Dirs) == 0 {
		b.WriteString(tui.MutedStyle.Render("  (no subfolders)"))
		b.WriteString("\n")
	}

	if p.err != nil {
		b.WriteString(tui.ErrorStyle.Render(fmt.Sprintf("\n%s %v", tui.SymbolCross, p.err)))
		b.WriteString("\n")
	}

	b.WriteString(tui.HelpStyle.Render(p.keyMap.HelpText()))
	return b.String()
}

// Chosen returns the selected folder, or "" if none was chosen.
func (p DirPicker) Chosen() string {
	return p.chosen
}

// Cancelled returns true if the user quit without choosing.
func (p DirPicker) Cancelled() bool {
	return p.cancelled
}

// CurrentPath returns the folder being shown.
func (p DirPicker) CurrentPath() string {
	return p.listing.CurrentPath
}

// Err returns the last listing error, if any.
func (p DirPicker) Err() error {
	return p.err
}
