package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Suhas010/Framelytics/internal/config"
)

// testMarkup is a small page used by the audit command tests.
const testMarkup = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Hardening a Backyard Greenhouse Against Frost</title>
  <meta name="description" content="Insulation, thermal mass, and passive venting strategies that keep a small greenhouse above freezing without a heater.">
  <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
  <main>
    <h1>Hardening a Backyard Greenhouse</h1>
    <p>Frost damage starts at the glazing edges where air leaks in.</p>
  </main>
</body>
</html>`

// writeTestPage writes the test markup to a temp file and returns its path.
func writeTestPage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte(testMarkup), 0600); err != nil {
		t.Fatalf("failed to write test page: %v", err)
	}
	return path
}

// TestNewAuditCmd tests the audit command creation.
func TestNewAuditCmd(t *testing.T) {
	t.Parallel()

	cmd := NewAuditCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "audit [file]..." {
			t.Errorf("expected use 'audit [file]...', got %q", cmd.Use)
		}
	})

	t.Run("has report format flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"json", "markdown", "html", "output"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %q flag", name)
			}
		}
	})

	t.Run("has analysis flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"categories", "parallel", "batch", "enrich-timeout", "config"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %q flag", name)
			}
		}
	})

	t.Run("batch default matches config", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("batch")
		if flag.DefValue != "4" {
			t.Errorf("expected batch default 4, got %q", flag.DefValue)
		}
	})
}

// TestBuildConfig tests flag-to-config mapping.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("maps flags to config", func(t *testing.T) {
		t.Parallel()

		root := NewRootCmd()
		cmd, _, err := root.Find([]string{"audit"})
		if err != nil {
			t.Fatalf("audit command missing: %v", err)
		}
		if err := cmd.Flags().Set("json", "true"); err != nil {
			t.Fatal(err)
		}
		if err := cmd.Flags().Set("categories", "metadata,links"); err != nil {
			t.Fatal(err)
		}
		if err := cmd.Flags().Set("batch", "2"); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"a.html", "b.html"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !cfg.JSONReport {
			t.Error("JSONReport not set")
		}
		if len(cfg.Inputs) != 2 {
			t.Errorf("Inputs = %v", cfg.Inputs)
		}
		if len(cfg.Categories) != 2 || cfg.Categories[0] != "metadata" {
			t.Errorf("Categories = %v", cfg.Categories)
		}
		if cfg.Concurrency != 2 {
			t.Errorf("Concurrency = %d, want 2", cfg.Concurrency)
		}
	})

	t.Run("missing explicit config file fails", func(t *testing.T) {
		t.Parallel()

		root := NewRootCmd()
		cmd, _, err := root.Find([]string{"audit"})
		if err != nil {
			t.Fatalf("audit command missing: %v", err)
		}
		if err := cmd.Flags().Set("config", filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
			t.Fatal(err)
		}

		if _, err := buildConfig(cmd, []string{"a.html"}); err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})
}

// TestAuditCommand runs the audit command end to end.
func TestAuditCommand(t *testing.T) {
	t.Run("text report to stdout", func(t *testing.T) {
		page := writeTestPage(t)

		root := NewRootCmd()
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetArgs([]string{"audit", page})

		if err := root.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "FRAMELYTICS AUDIT") {
			t.Error("expected the text report header")
		}
		if !strings.Contains(output, "OVERALL:") {
			t.Error("expected an overall score line")
		}
	})

	t.Run("json report to file", func(t *testing.T) {
		page := writeTestPage(t)
		reportPath := filepath.Join(t.TempDir(), "out", "report.json")

		root := NewRootCmd()
		root.SetOut(new(bytes.Buffer))
		root.SetArgs([]string{"audit", "--json", "-o", reportPath, page})

		if err := root.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(reportPath)
		if err != nil {
			t.Fatalf("report file missing: %v", err)
		}

		var envelope struct {
			Audit struct {
				Page   string `json:"page"`
				Result struct {
					Score int `json:"score"`
				} `json:"result"`
			} `json:"audit"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			t.Fatalf("report is not valid JSON: %v", err)
		}
		if envelope.Audit.Page != page {
			t.Errorf("Page = %q, want %q", envelope.Audit.Page, page)
		}
		if envelope.Audit.Result.Score < 0 || envelope.Audit.Result.Score > 100 {
			t.Errorf("Score = %d, want within [0,100]", envelope.Audit.Result.Score)
		}
	})

	t.Run("category filter restricts the run", func(t *testing.T) {
		page := writeTestPage(t)

		root := NewRootCmd()
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetArgs([]string{"audit", "--categories", "metadata", page})

		if err := root.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Filtered-out categories score zero and are hidden; the links
		// checker's unconditional reminder must not appear.
		if strings.Contains(buf.String(), "[LINKS]") {
			t.Error("filtered category should not appear in the report")
		}
	})

	t.Run("conflicting formats fail validation", func(t *testing.T) {
		page := writeTestPage(t)

		root := NewRootCmd()
		root.SetOut(new(bytes.Buffer))
		root.SetErr(new(bytes.Buffer))
		root.SetArgs([]string{"audit", "--json", "--markdown", page})

		err := root.Execute()
		if err == nil {
			t.Fatal("expected a configuration error")
		}
		if !strings.Contains(err.Error(), "mutually exclusive") {
			t.Errorf("error = %v, want mutually exclusive message", err)
		}
	})

	t.Run("no input fails validation", func(t *testing.T) {
		root := NewRootCmd()
		root.SetOut(new(bytes.Buffer))
		root.SetErr(new(bytes.Buffer))
		root.SetArgs([]string{"audit"})

		err := root.Execute()
		if err == nil {
			t.Fatal("expected a configuration error")
		}
		if !strings.Contains(err.Error(), config.ErrNoInput.Error()) {
			t.Errorf("error = %v, want ErrNoInput", err)
		}
	})

	t.Run("batch mode audits several files", func(t *testing.T) {
		dir := t.TempDir()
		var args []string
		for _, name := range []string{"a.html", "b.html", "c.html"} {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(testMarkup), 0600); err != nil {
				t.Fatal(err)
			}
			args = append(args, path)
		}

		root := NewRootCmd()
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetArgs(append([]string{"audit", "--batch", "2"}, args...))

		if err := root.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := strings.Count(buf.String(), "FRAMELYTICS AUDIT"); got != 3 {
			t.Errorf("report count = %d, want 3", got)
		}
	})

	t.Run("html report is self-contained", func(t *testing.T) {
		page := writeTestPage(t)

		root := NewRootCmd()
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetArgs([]string{"audit", "--html", page})

		if err := root.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "<!DOCTYPE html>") {
			t.Error("expected an HTML document")
		}
		if !strings.Contains(output, "Framelytics Audit") {
			t.Error("expected the report title")
		}
	})
}
