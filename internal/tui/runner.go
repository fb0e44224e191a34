package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// PromptContinue asks a yes/no question on stdin. Without a terminal it
// answers yes.
func PromptContinue(message string) bool {
	if !IsInteractive() {
		return true
	}
	return promptContinue(os.Stdin, os.Stdout, message)
}

func promptContinue(in io.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s [Y/n]: ", message)

	response, _ := bufio.NewReader(in).ReadString('\n')
	response = strings.TrimSpace(response)

	return response == "" || response == "y" || response == "Y"
}

// ProgressDisplay prints step markers for long-running commands.
type ProgressDisplay struct {
	out io.Writer
}

func NewProgressDisplay(out io.Writer) *ProgressDisplay {
	return &ProgressDisplay{out: out}
}

func (p *ProgressDisplay) Start(message string) {
	fmt.Fprintf(p.out, "%s %s\n", SymbolPending, message)
}

func (p *ProgressDisplay) Success(message string) {
	fmt.Fprintf(p.out, "%s %s\n", SuccessStyle.Render(SymbolCheck), message)
}

func (p *ProgressDisplay) Error(message string) {
	fmt.Fprintf(p.out, "%s %s\n", ErrorStyle.Render(SymbolCross), message)
}
