//go:build stave

package main

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const (
	binaryName = "a11ylint"
	binaryPath = "bin/" + binaryName
	mainPkg    = "./cmd/" + binaryName
)

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":      Build,
	"t":      Test.Default,
	"l":      Lint.Default,
	"c":      Check,
	"i":      Install,
	"fmt":    Lint.Fmt,
	"sample": Demo.Sample,
}

// Namespace types group related targets.
type (
	Test st.Namespace
	Lint st.Namespace
	CI   st.Namespace
	Demo st.Namespace
)

// Build compiles the a11ylint binary with version info, skipping the
// compile when nothing under the source tree changed.
func Build() error {
	rebuild, err := target.Dir(binaryPath, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binaryPath + " is up to date")
		return nil
	}
	fmt.Println("Building " + binaryName + "...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binaryPath, mainPkg)
}

// Check runs format, lint, and test sequentially.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default)
}

// Clean removes build artifacts and saved reports.
func Clean() error {
	fmt.Println("Cleaning build artifacts...")
	for _, path := range []string{"bin", "coverage.out", "coverage.html", "reports"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Install installs a11ylint to $GOBIN or $GOPATH/bin.
func Install() error {
	fmt.Println("Installing " + binaryName + "...")
	return sh.RunV("go", "install", "-ldflags", ldflags(), mainPkg)
}

// Uninstall removes a11ylint from $GOBIN or $GOPATH/bin.
func Uninstall() error {
	binPath, err := installedBinary()
	if err != nil {
		return err
	}
	if err := os.Remove(binPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Println(binaryName + " is not installed")
			return nil
		}
		return fmt.Errorf("remove binary: %w", err)
	}
	fmt.Printf("Removed %s\n", binPath)
	return nil
}

// Deps downloads and tidies module dependencies.
func Deps() error {
	if err := sh.RunV("go", "mod", "download"); err != nil {
		return err
	}
	return sh.RunV("go", "mod", "tidy")
}

// Coverage renders the coverage profile to HTML.
func Coverage() error {
	st.Deps(Test.Default)
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

// Default runs all tests with race detection and coverage.
func (Test) Default() error {
	return gotestsum("pkgname-and-test-fails")
}

// Verbose runs all tests with standard-verbose output.
func (Test) Verbose() error {
	return gotestsum("standard-verbose")
}

// Rules runs only the rule engine packages.
func (Test) Rules() error {
	return sh.RunV("go", "test", "-race", "./pkg/a11y/...", "./pkg/htmltree/...")
}

// Fuzz runs the fuzz targets for a short fixed duration each.
func (Test) Fuzz() error {
	duration := cmp.Or(os.Getenv("FUZZTIME"), "15s")
	targets := []struct{ pkg, name string }{
		{"./pkg/htmltree", "FuzzParse"},
		{"./pkg/fsutil", "FuzzWriteAtomic"},
	}
	for _, t := range targets {
		fmt.Printf("Fuzzing %s %s for %s...\n", t.pkg, t.name, duration)
		if err := sh.RunV("go", "test", "-run=^$", "-fuzz=^"+t.name+"$", "-fuzztime="+duration, t.pkg); err != nil {
			return err
		}
	}
	return nil
}

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// CI runs golangci-lint without auto-fix.
func (Lint) CI() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt formats all Go code.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// FmtCheck fails when any file needs gofmt.
func (Lint) FmtCheck() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt check failed: %w", err)
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s\nRun 'stave lint:fmt' to fix", out)
	}
	return nil
}

// Vet runs go vet.
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Gate runs every check CI runs, in order.
func (CI) Gate() error {
	st.SerialDeps(
		Lint.FmtCheck,
		Lint.Vet,
		Lint.CI,
		Build,
		Test.Default,
		CI.ModTidy,
		CI.Cross,
	)
	fmt.Println("All CI gate checks passed")
	return nil
}

// ModTidy fails when go mod tidy would change go.mod or go.sum.
func (CI) ModTidy() error {
	files := []string{"go.mod", "go.sum"}
	before := make(map[string]string, len(files))
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		before[name] = string(data)
	}

	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}

	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s after tidy: %w", name, err)
		}
		if string(data) != before[name] {
			return fmt.Errorf("%s changed after 'go mod tidy'", name)
		}
	}
	return nil
}

// Cross builds for every release platform.
func (CI) Cross() error {
	platforms := []struct{ goos, goarch string }{
		{"linux", "amd64"},
		{"linux", "arm64"},
		{"darwin", "amd64"},
		{"darwin", "arm64"},
		{"windows", "amd64"},
		{"windows", "arm64"},
		{"freebsd", "amd64"},
	}
	for _, p := range platforms {
		fmt.Printf("  Building %s/%s...\n", p.goos, p.goarch)
		env := map[string]string{
			"GOOS":        p.goos,
			"GOARCH":      p.goarch,
			"CGO_ENABLED": "0",
		}
		if err := sh.RunWith(env, "go", "build", "-o", os.DevNull, mainPkg); err != nil {
			return fmt.Errorf("build failed for %s/%s: %w", p.goos, p.goarch, err)
		}
	}
	return nil
}

// Sample analyzes the built-in sample page in every output format.
func (Demo) Sample() error {
	st.Deps(Build)
	for _, format := range []string{"text", "table", "summary"} {
		// A non-zero exit is expected: the sample page has errors.
		_ = sh.RunV(binaryPath, "check", "--sample", "--format", format)
	}
	return nil
}

// Report writes a dated JSON report for the sample page into reports/.
func (Demo) Report() error {
	st.Deps(Build)
	// The exit status reflects the sample's findings, not the save.
	_ = sh.RunV(binaryPath, "check", "--sample", "--format", "summary", "--save", "--report-dir", "reports")
	name := "reports/a11y-report-" + time.Now().UTC().Format(time.DateOnly) + ".json"
	if _, err := os.Stat(name); err != nil {
		return fmt.Errorf("report not written: %w", err)
	}
	fmt.Println("Wrote " + name)
	return nil
}

func gotestsum(format string) error {
	nCores := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go",
		"tool", "gotestsum",
		"-f", format,
		"--",
		"-race",
		"-p", nCores,
		"-parallel", nCores,
		"./...",
		"-coverprofile=coverage.out",
		"-covermode=atomic",
	)
}

func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ldflags injects version, commit and build date into main.
func ldflags() string {
	version := cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev")
	commit := cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none")
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf(
		"-X main.version=%s -X main.commit=%s -X main.date=%s",
		version, commit, date,
	)
}

// installedBinary returns the path go install places the binary at.
func installedBinary() (string, error) {
	if gobin := os.Getenv("GOBIN"); gobin != "" {
		return filepath.Join(gobin, binaryName), nil
	}
	gopath := os.Getenv("GOPATH")
	if gopath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home directory: %w", err)
		}
		gopath = filepath.Join(home, "go")
	}
	return filepath.Join(gopath, "bin", binaryName), nil
}
