// cnesdbg is an interactive terminal debugger: it loads a ROM, shows the
// disassembly around the program counter next to the register file, and
// steps the console one instruction or one frame at a time.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"cnes/nes"
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	currentStyle = lipgloss.NewStyle().
			Bold(true).
			Reverse(true)

	helpStyle = lipgloss.NewStyle().Faint(true)
)

const disasmContext = 8

type model struct {
	console *nes.Console

	listing []nes.DecodedInstruction
	byAddr  map[uint16]int
	entry   uint16
}

func newModel(console *nes.Console) model {
	listing, entry := console.DisassemblePRG()

	byAddr := make(map[uint16]int, len(listing))
	for i, inst := range listing {
		byAddr[inst.Address] = i
	}

	return model{
		console: console,
		listing: listing,
		byAddr:  byAddr,
		entry:   entry,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j":
			m.console.TickInstruction()

		case "f":
			m.console.StepFrame()

		case "r":
			m.console.Reset()
		}
	}
	return m, nil
}

// disasm renders the listing window centred on the program counter. When PC
// points somewhere the linear sweep never reached (RAM, mid-instruction),
// the pane says so instead of lying.
func (m model) disasm() string {
	pc := m.console.CPUState().PC

	center, ok := m.byAddr[pc]
	if !ok {
		return fmt.Sprintf("PC $%04X is outside the disassembled program", pc)
	}

	start := center - disasmContext
	if start < 0 {
		start = 0
	}
	end := center + disasmContext + 1
	if end > len(m.listing) {
		end = len(m.listing)
	}

	var lines []string
	for _, inst := range m.listing[start:end] {
		line := fmt.Sprintf("%04X  %-12s", inst.Address, inst.Text)
		if inst.Address == pc {
			line = currentStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m model) registers() string {
	cpu := m.console.CPUState()

	var flags strings.Builder
	for i, name := range []string{"N", "V", "-", "B", "D", "I", "Z", "C"} {
		if cpu.P&(1<<(7-i)) > 0 {
			flags.WriteString(name)
		} else {
			flags.WriteString(strings.ToLower(name))
		}
		flags.WriteByte(' ')
	}

	return fmt.Sprintf(`PC: %04X
 A: %02X
 X: %02X
 Y: %02X
 S: %02X
 P: %02X

%s
cycles: %d
instrs: %d`,
		cpu.PC, cpu.A, cpu.X, cpu.Y, cpu.S, cpu.P,
		flags.String(), cpu.Cycles, cpu.Instructions)
}

func (m model) ppu() string {
	ppu := m.console.PPUState()

	return fmt.Sprintf(`scanline: %3d
     dot: %3d
   frame: %d

   v: %04X
   t: %04X
   x: %d

ctrl:   %02X
mask:   %02X
status: %02X`,
		ppu.Scanline, ppu.Dot, ppu.Frame,
		ppu.V, ppu.T, ppu.FineX,
		ppu.Ctrl, ppu.Mask, ppu.Status)
}

// pending dumps the instruction the CPU will run next.
func (m model) pending() string {
	pc := m.console.CPUState().PC
	if i, ok := m.byAddr[pc]; ok {
		return spew.Sdump(m.listing[i])
	}
	return ""
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			paneStyle.Render(m.disasm()),
			paneStyle.Render(m.registers()),
			paneStyle.Render(m.ppu()),
		),
		m.pending(),
		helpStyle.Render("space/j: step  f: frame  r: reset  q: quit"),
	)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s rom.nes\n", os.Args[0])
		os.Exit(2)
	}

	console := nes.NewConsole(nil)
	if err := console.LoadPath(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(newModel(console)).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
