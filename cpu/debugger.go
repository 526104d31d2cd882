package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// model is the bubbletea state behind Debug: a loaded CPU plus enough UI
// bookkeeping (the previous PC, the last halt) to render a single-step
// inspector.
type model struct {
	cpu     *CPU
	program []byte
	origin  uint16

	prevPC uint16
	halt   *HaltReason
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case " ", "j":
			if m.halt != nil {
				return m, nil
			}
			m.prevPC = m.cpu.PC
			res := m.cpu.Step()
			if res.Halt != nil {
				m.halt = res.Halt
			}
		}
	}
	return m, nil
}

// renderPage renders one 16-byte page row, highlighting the current PC.
func (m model) renderPage(start uint16) string {
	row := m.cpu.Bus.Snapshot(start, 16)
	s := fmt.Sprintf("%04x | ", start)
	for i, b := range row {
		if start+uint16(i) == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	halted := "running"
	if m.halt != nil {
		halted = m.halt.String()
	}
	return fmt.Sprintf(`
PC: %04x (was %04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
%s
%s
`,
		m.cpu.PC, m.prevPC,
		m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.SP,
		m.cpu.StatusString(),
		halted,
	)
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}
	base := m.origin &^ 0x0F
	for i := 0; i < 10; i++ {
		pages = append(pages, m.renderPage(base+uint16(i*16)))
	}
	return strings.Join(pages, "\n")
}

func (m model) View() string {
	op := m.cpu.Bus.Read(m.cpu.PC)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(opcodeTable[op]),
	)
}

// Debug loads program at origin and resets the CPU, then runs an
// interactive single-step TUI: space or j steps one instruction, q quits.
// It is a thin, optional consumer of the public contract — nothing in the
// core package depends on it.
func (c *CPU) Debug(program []byte, origin uint16) error {
	if err := c.Load(program, origin); err != nil {
		return err
	}
	c.Reset()

	_, err := tea.NewProgram(model{
		cpu:     c,
		program: program,
		origin:  origin,
	}).Run()
	return err
}
