// Package preflight verifies that the environment shade runs in is usable.
package preflight

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mbourmaud/shade/internal/config"
	"github.com/mbourmaud/shade/internal/ui"
)

// CheckResult represents the result of a preflight check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// PingFunc reaches the palette library; nil means it is available
type PingFunc func(ctx context.Context) error

// RunAllChecks runs every check against cfg. path is the config file in use.
func RunAllChecks(ctx context.Context, cfg *config.Config, path string, ping PingFunc) []CheckResult {
	results := []CheckResult{CheckConfigFile(path)}

	if cfg.Export.Directory != "" {
		results = append(results, CheckExportDir(cfg.Export.Directory))
	}
	results = append(results, CheckRedis(ctx, cfg.Redis.Addr, ping))

	return results
}

// CheckConfigFile verifies the config file parses and validates.
// A missing file passes: defaults apply.
func CheckConfigFile(path string) CheckResult {
	result := CheckResult{Name: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		result.Passed = true
		result.Message = "not found, using defaults. Run 'shade config init' to create it."
		return result
	}

	cfg, err := config.Load(path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		result.Passed = false
		result.Message = err.Error()
		return result
	}

	result.Passed = true
	result.Message = "valid"
	return result
}

// CheckExportDir verifies the export directory exists or can be created, and is writable
func CheckExportDir(dir string) CheckResult {
	result := CheckResult{Name: "Export directory"}

	if err := os.MkdirAll(dir, 0755); err != nil {
		result.Passed = false
		result.Message = fmt.Sprintf("Cannot create export directory: %v", err)
		return result
	}

	testFile := filepath.Join(dir, ".shade-test")
	if err := os.WriteFile(testFile, []byte("test"), 0600); err != nil {
		result.Passed = false
		result.Message = fmt.Sprintf("Export directory is not writable: %v", err)
		return result
	}
	_ = os.Remove(testFile) // nolint:errcheck

	result.Passed = true
	result.Message = fmt.Sprintf("Export directory is ready: %s", dir)
	return result
}

// CheckRedis verifies the palette library answers
func CheckRedis(ctx context.Context, addr string, ping PingFunc) CheckResult {
	result := CheckResult{Name: "Palette library"}

	if err := ping(ctx); err != nil {
		result.Passed = false
		result.Message = fmt.Sprintf("Redis at %s is unreachable; 'shade library' commands will fail", addr)
		return result
	}

	result.Passed = true
	result.Message = fmt.Sprintf("Redis at %s is reachable", addr)
	return result
}

// PrintResults writes check results to w and reports whether all passed
func PrintResults(w io.Writer, results []CheckResult) bool {
	allPassed := true

	fmt.Fprint(w, ui.Header("🔍", "Preflight Checks"))

	for _, r := range results {
		var status string
		if r.Passed {
			status = ui.StyleGreen.Render("✓")
		} else {
			status = ui.StyleError.Render("✗")
			allPassed = false
		}

		// Format: "  ✓ Palette library: Redis at localhost:6379 is reachable"
		name := ui.StyleBold.Render(r.Name)
		message := ui.StyleDim.Render(r.Message)
		fmt.Fprintf(w, "  %s %s: %s\n", status, name, message)
	}

	fmt.Fprintln(w)
	return allPassed
}
