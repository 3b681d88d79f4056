package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/taskbox/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const menuWidth = 60

// LineReader defines the interface for reading user input (for testing).
type LineReader interface {
	ReadString(delim byte) (string, error)
}

// Menu is the interactive shell: it presents a numbered task list,
// reads one line, dispatches, and loops until exit. A dispatched task
// never terminates the loop; its errors are printed and swallowed.
type Menu struct {
	cfg config.Config
	in  LineReader
	out io.Writer
}

// NewMenuCommand creates and returns the menu subcommand.
func NewMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive task menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.OutOrStdout(), cmd.InOrStdin())
		},
	}
}

func runMenu(out io.Writer, in io.Reader) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	m := NewMenu(cfg, bufio.NewReader(in), out)
	m.CheckEnvironment()
	return m.Loop()
}

// NewMenu builds a menu over an injectable reader and writer.
func NewMenu(cfg config.Config, in LineReader, out io.Writer) *Menu {
	return &Menu{cfg: cfg, in: in, out: out}
}

// Loop displays the menu and dispatches choices until the user exits
// or input is exhausted.
func (m *Menu) Loop() error {
	for {
		m.display()
		color.New(color.FgCyan).Fprint(m.out, "\nEnter your choice (0-4): ")

		line, err := m.in.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				fmt.Fprintln(m.out, "\nGoodbye!")
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		switch strings.TrimSpace(line) {
		case "0":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		case "1":
			m.dispatch(func() error { demoMove(m.out, m.cfg); return nil })
		case "2":
			m.dispatch(func() error {
				_, err := demoEmails(m.out, m.cfg)
				return err
			})
		case "3":
			m.dispatch(func() error { demoScrape(m.out, m.cfg); return nil })
		case "4":
			m.dispatch(func() error { runAllTasks(m.out, m.cfg); return nil })
		default:
			color.New(color.FgRed).Fprintln(m.out, "Invalid choice! Please enter a number between 0-4.")
			continue
		}

		if done := m.pause(); done {
			return nil
		}
	}
}

func (m *Menu) dispatch(task func() error) {
	if err := task(); err != nil {
		color.New(color.FgRed).Fprintf(m.out, "\nAn error occurred: %v\n", err)
	}
}

func (m *Menu) pause() bool {
	fmt.Fprint(m.out, "\nPress Enter to continue...")
	if _, err := m.in.ReadString('\n'); err != nil {
		return true
	}
	return false
}

func (m *Menu) display() {
	bold := color.New(color.Bold)
	rule := strings.Repeat("=", menuWidth)

	fmt.Fprintln(m.out, "\n"+rule)
	bold.Fprintln(m.out, "TASKBOX AUTOMATION MENU")
	fmt.Fprintln(m.out, rule)
	fmt.Fprintln(m.out, "Choose an automation task to run:")
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "1. Move Image Files")
	fmt.Fprintf(m.out, "   - Moves %s files from %s to %s\n",
		strings.Join(m.cfg.ImageExtensions, "/"),
		filepath.Join(m.cfg.DataDir, "images"),
		filepath.Join(m.cfg.OutputDir, "moved_images"))
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "2. Extract Email Addresses")
	fmt.Fprintf(m.out, "   - Extracts emails from %s\n", m.demoEmailInput())
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "3. Scrape Webpage Title")
	fmt.Fprintf(m.out, "   - Scrapes the title of %s and saves it to file\n", m.cfg.DemoURL)
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "4. Run All Tasks")
	fmt.Fprintln(m.out, "   - Demonstrates all three automation tasks")
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "0. Exit")
	fmt.Fprintln(m.out, rule)
}

func (m *Menu) demoEmailInput() string {
	return filepath.Join(m.cfg.DataDir, "sample_text_with_emails.txt")
}

// CheckEnvironment reports missing demo data before the menu starts.
// Issues are warnings only; tasks run against real paths regardless.
func (m *Menu) CheckEnvironment() {
	var issues []string

	if _, err := os.Stat(m.cfg.DataDir); err != nil {
		issues = append(issues, fmt.Sprintf("%s directory missing", m.cfg.DataDir))
	}
	if _, err := os.Stat(m.demoEmailInput()); err != nil {
		issues = append(issues, "sample_text_with_emails.txt missing")
	}
	if _, err := os.Stat(filepath.Join(m.cfg.DataDir, "images")); err != nil {
		issues = append(issues, filepath.Join(m.cfg.DataDir, "images")+" directory missing")
	}

	if len(issues) > 0 {
		fmt.Fprintln(m.out, "\nEnvironment issues found:")
		for _, issue := range issues {
			fmt.Fprintf(m.out, "  - %s\n", issue)
		}
		fmt.Fprintln(m.out, "\nSome tasks may not work properly.")
	} else {
		fmt.Fprintln(m.out, "\nEnvironment looks good!")
	}
}
