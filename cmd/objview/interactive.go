package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/objwire/objwire/abi"
	"github.com/objwire/objwire/geom"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func renderName(name string, styled bool) string {
	if styled {
		return nameStyle.Render(name)
	}
	return name
}

type viewState int

const (
	stateSelect viewState = iota
	stateInspect
	stateCapacity
)

type encodedPayload struct {
	name  string
	poly  geom.Polyhedron
	bytes []byte
}

type inspectModel struct {
	sess     *abi.Session
	payloads []encodedPayload
	selected int
	state    viewState
	vp       viewport.Model
	capInput textinput.Model
	decode   string
	ready    bool
}

func newInspectModel(sess *abi.Session, payloads []encodedPayload) *inspectModel {
	ci := textinput.New()
	ci.Placeholder = "triangle capacity"
	ci.Prompt = "capacity: "
	ci.Width = 20

	return &inspectModel{
		sess:     sess,
		payloads: payloads,
		capInput: ci,
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-8)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 8
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateCapacity && msg.String() == "q" {
				break
			}
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelect && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelect && m.selected < len(m.payloads)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelect:
				m.openPayload(len(m.payloads[m.selected].poly.Triangles))
				m.state = stateInspect

			case stateCapacity:
				capacity, err := strconv.Atoi(m.capInput.Value())
				if err != nil || capacity < 0 {
					capacity = 0
				}
				m.openPayload(capacity)
				m.capInput.Blur()
				m.state = stateInspect
			}

		case "c":
			if m.state == stateInspect {
				m.capInput.SetValue("")
				m.capInput.Focus()
				m.state = stateCapacity
				return m, textinput.Blink
			}

		case "esc":
			switch m.state {
			case stateInspect:
				m.state = stateSelect
			case stateCapacity:
				m.capInput.Blur()
				m.state = stateInspect
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case stateInspect:
		m.vp, cmd = m.vp.Update(msg)
	case stateCapacity:
		m.capInput, cmd = m.capInput.Update(msg)
	}
	return m, cmd
}

// openPayload re-decodes the selected payload into a destination with the
// given triangle capacity and fills the viewport.
func (m *inspectModel) openPayload(capacity int) {
	p := m.payloads[m.selected]

	dst := geom.NewPolyhedron(capacity)
	n := m.sess.Deserialize(&dst, p.bytes)

	var b strings.Builder
	if n < 0 {
		m.decode = errStyle.Render(fmt.Sprintf("decode failed: %s (capacity %d)", abi.Code(n), capacity))
	} else {
		m.decode = okStyle.Render(fmt.Sprintf("decoded %d triangles from %d bytes (capacity %d)", len(dst.Triangles), n, capacity))
		for i, t := range dst.Triangles {
			fmt.Fprintf(&b, "[%d] %s\n", i, t)
		}
		b.WriteString("\n")
	}
	b.WriteString(hexDump(p.bytes))

	if m.ready {
		m.vp.SetContent(b.String())
		m.vp.GotoTop()
	}
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("objwire inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelect:
		b.WriteString("Select a payload:\n\n")
		for i, p := range m.payloads {
			line := fmt.Sprintf("%s  %s, %d bytes",
				nameStyle.Render(p.name),
				countStyle.Render(fmt.Sprintf("%d triangles", len(p.poly.Triangles))),
				len(p.bytes))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> "))
				b.WriteString(line)
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • q quit"))

	case stateInspect:
		p := m.payloads[m.selected]
		b.WriteString(nameStyle.Render(p.name))
		b.WriteString("  ")
		b.WriteString(m.decode)
		b.WriteString("\n\n")
		if m.ready {
			b.WriteString(m.vp.View())
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • c set capacity • esc back • q quit"))

	case stateCapacity:
		p := m.payloads[m.selected]
		b.WriteString(fmt.Sprintf("Re-decode %s with a smaller destination:\n\n", nameStyle.Render(p.name)))
		b.WriteString(m.capInput.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter decode • esc back"))
	}

	return b.String()
}

func runInteractive(sess *abi.Session, polys []namedPolyhedron) error {
	payloads := make([]encodedPayload, 0, len(polys))
	for _, np := range polys {
		buf := make([]byte, np.poly.WireSize())
		n := sess.Serialize(&np.poly, buf)
		if n < 0 {
			return fmt.Errorf("serialize %s: %s", np.name, abi.Code(n))
		}
		payloads = append(payloads, encodedPayload{
			name:  np.name,
			poly:  np.poly,
			bytes: buf[:n],
		})
	}

	p := tea.NewProgram(newInspectModel(sess, payloads), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
