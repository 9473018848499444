package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lars-frogner/impact-wire/codec"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectPacket modelState = iota
	stateShowDetail
)

type inspectModel struct {
	err      error
	source   string
	buf      []byte
	multi    bool
	entries  []packetEntry
	selected int
	state    modelState
	viewport viewport.Model
	ready    bool
}

func newInspectModel(source string, buf []byte, multi bool) *inspectModel {
	return &inspectModel{
		source: source,
		buf:    buf,
		multi:  multi,
		state:  stateSelectPacket,
	}
}

type parsedMsg struct {
	err     error
	entries []packetEntry
}

func (m *inspectModel) Init() tea.Cmd {
	return m.parseBuffer
}

func (m *inspectModel) parseBuffer() tea.Msg {
	entries, err := readPackets(m.buf, m.multi)
	if err != nil {
		return parsedMsg{err: err}
	}
	return parsedMsg{entries: entries}
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectPacket && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectPacket && m.selected < len(m.entries)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateSelectPacket && len(m.entries) > 0 {
				m.viewport.SetContent(m.detailContent())
				m.viewport.GotoTop()
				m.state = stateShowDetail
			}

		case "esc":
			if m.state == stateShowDetail {
				m.state = stateSelectPacket
			}
		}

	case tea.WindowSizeMsg:
		// Leave room for the title line and the help line.
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}

	case parsedMsg:
		m.err = msg.err
		m.entries = msg.entries
	}

	if m.state == stateShowDetail {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectModel) detailContent() string {
	e := m.entries[m.selected]

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", typeNameStyle.Render(e.typeName()))
	fmt.Fprintf(&b, "type ID    %s\n", e.header.TypeID)
	fmt.Fprintf(&b, "size       %d\n", e.header.Size)
	fmt.Fprintf(&b, "alignment  %d\n", e.header.Alignment)
	fmt.Fprintf(&b, "count      %d\n\n", e.header.Count)

	switch {
	case e.binding == nil:
		b.WriteString(errorStyle.Render("type not in registry; payload shown raw"))
		b.WriteString("\n")
	case e.header.Size == 0:
		b.WriteString("(marker, no payload)\n")
	default:
		size := int(e.header.Size)
		for j := 0; j < int(e.header.Count); j++ {
			v, err := codec.DecodeRecord(e.binding, e.payload[j*size:(j+1)*size])
			if err != nil {
				fmt.Fprintf(&b, "%s\n", errorStyle.Render(fmt.Sprintf("decode value %d: %v", j, err)))
				continue
			}
			fmt.Fprintf(&b, "[%d] %+v\n", j, v)
		}
	}

	if len(e.payload) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("payload"))
		b.WriteString("\n")
		b.WriteString(hexDump(e.payload))
	}

	return b.String()
}

func hexDump(data []byte) string {
	var b strings.Builder
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(&b, "%08x  ", off)
		for i := off; i < end; i++ {
			fmt.Fprintf(&b, "%02x ", data[i])
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *inspectModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Buffer Inspector"))
	b.WriteString(" ")
	b.WriteString(m.source)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectPacket:
		if len(m.entries) == 0 {
			b.WriteString("Buffer holds no packets.\n\n")
			b.WriteString(helpStyle.Render("q quit"))
			return b.String()
		}
		for i, e := range m.entries {
			line := fmt.Sprintf("%s  %s", e.typeName(),
				headerStyle.Render(fmt.Sprintf("size %d count %d", e.header.Size, e.header.Count)))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • q quit"))

	case stateShowDetail:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}

func runInteractive(source string, buf []byte, multi bool) error {
	p := tea.NewProgram(newInspectModel(source, buf, multi), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
