package cmd

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgallion1/taskbox/internal/config"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Keep assertions on plain text, not escape codes.
	color.NoColor = true
}

// scriptedReader feeds pre-baked menu input lines.
type scriptedReader struct {
	inputs []string
	index  int
}

func (r *scriptedReader) ReadString(delim byte) (string, error) {
	if r.index >= len(r.inputs) {
		return "", fmt.Errorf("EOF")
	}
	line := r.inputs[r.index] + "\n"
	r.index++
	return line, nil
}

func writeTestImage(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("jpegdata"), 0o644))
}

func demoConfig(t *testing.T) config.Config {
	t.Helper()
	dataDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dataDir, "images"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dataDir, "sample_text_with_emails.txt"),
		[]byte("Mail a@b.com and support@example.org plus A@B.COM again.\n"), 0o644))

	return config.Config{
		OutputDir:       t.TempDir(),
		DataDir:         dataDir,
		DemoURL:         "http://127.0.0.1:0/unused",
		ScrapeTimeout:   500 * time.Millisecond,
		MaxFetchBytes:   1 << 20,
		ImageExtensions: []string{"jpg", "jpeg"},
	}
}

func TestMenu_ExitImmediately(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(demoConfig(t), &scriptedReader{inputs: []string{"0"}}, &out)

	err := m.Loop()
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "TASKBOX AUTOMATION MENU")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestMenu_InvalidChoiceRedisplays(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(demoConfig(t), &scriptedReader{inputs: []string{"9", "0"}}, &out)

	err := m.Loop()
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Invalid choice! Please enter a number between 0-4.")
	// Menu shown again after the invalid choice.
	assert.GreaterOrEqual(t, bytes.Count(out.Bytes(), []byte("TASKBOX AUTOMATION MENU")), 2)
}

func TestMenu_DispatchesEmailTask(t *testing.T) {
	var out bytes.Buffer
	// Choice 2, then Enter past the pause, then exit.
	m := NewMenu(demoConfig(t), &scriptedReader{inputs: []string{"2", "", "0"}}, &out)

	err := m.Loop()
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "TASK 2: EXTRACT EMAIL ADDRESSES")
	assert.Contains(t, out.String(), "a@b.com")
	assert.Contains(t, out.String(), "support@example.org")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestMenu_EOFExitsCleanly(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(demoConfig(t), &scriptedReader{inputs: nil}, &out)

	// Input exhausted before any choice: the loop must end, not spin.
	err := m.Loop()
	assert.Error(t, err)
}

func TestMenu_CheckEnvironment(t *testing.T) {
	t.Run("missing data", func(t *testing.T) {
		var out bytes.Buffer
		cfg := demoConfig(t)
		cfg.DataDir = filepath.Join(cfg.DataDir, "absent")
		NewMenu(cfg, &scriptedReader{}, &out).CheckEnvironment()

		assert.Contains(t, out.String(), "Environment issues found:")
		assert.Contains(t, out.String(), "sample_text_with_emails.txt missing")
	})

	t.Run("all present", func(t *testing.T) {
		var out bytes.Buffer
		NewMenu(demoConfig(t), &scriptedReader{}, &out).CheckEnvironment()
		assert.Contains(t, out.String(), "Environment looks good!")
	})
}

func TestRunAllTasks_SummaryCountsFailures(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	demoURL := srv.URL
	srv.Close() // guaranteed connection failure, no real network

	cfg := demoConfig(t)
	cfg.DemoURL = demoURL

	var out bytes.Buffer
	results := runAllTasks(&out, cfg)

	require.Len(t, results, 3)
	assert.Contains(t, out.String(), "AUTOMATION TASKS SUMMARY")
	assert.Contains(t, out.String(), "Total tasks: 3")
	// Emails succeed against the sample file; the scrape fails offline;
	// the move finds an empty images dir and reports no files moved.
	assert.Contains(t, out.String(), "Extract Emails: SUCCESS")
	assert.Contains(t, out.String(), "Scrape Webpage: FAILED")
	assert.Contains(t, out.String(), "Move Image Files: FAILED")
}
