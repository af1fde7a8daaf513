package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func buildCLI(t *testing.T, tmpDir string) string {
	t.Helper()
	bin := filepath.Join(tmpDir, "minforth")
	cmd := exec.Command("go", "build", "-o", bin, "./")
	cmd.Dir = "."
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build minforth: %v\n%s", err, out)
	}
	return bin
}

// TestEvalFlag verifies one-shot evaluation via -e
func TestEvalFlag(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "minforth-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	bin := buildCLI(t, tmpDir)
	dbPath := filepath.Join(tmpDir, "test.db")

	runCmd := exec.Command(bin, "-e", "1 2 + .", "-db", dbPath)
	output, err := runCmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run minforth: %v\n%s", err, output)
	}
	if strings.TrimSpace(string(output)) != "3" {
		t.Errorf("expected output '3', got: %s", output)
	}
}

// TestPipedProgram verifies that piped stdin is interpreted line by line
func TestPipedProgram(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "minforth-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	bin := buildCLI(t, tmpDir)
	dbPath := filepath.Join(tmpDir, "test.db")

	program := ": CUBE DUP DUP * * ;\n3 CUBE .\n"
	runCmd := exec.Command(bin, "-db", dbPath, "-no-prelude")
	runCmd.Stdin = strings.NewReader(program)
	output, err := runCmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run piped: %v\n%s", err, output)
	}
	if !strings.Contains(string(output), "27") {
		t.Errorf("expected output to contain '27', got: %s", output)
	}
}

// TestErrorReportedOnStderr verifies the exit status and error report for a bad line
func TestErrorReportedOnStderr(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "minforth-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	bin := buildCLI(t, tmpDir)

	runCmd := exec.Command(bin, "-e", "NOPE", "-no-history")
	output, err := runCmd.CombinedOutput()
	if err == nil {
		t.Fatal("expected non-zero exit for unknown word")
	}
	if !strings.Contains(string(output), "unknown word") {
		t.Errorf("expected 'unknown word' in output, got: %s", output)
	}
}

// TestHistoryDump verifies -last prints previously recorded lines
func TestHistoryDump(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "minforth-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	bin := buildCLI(t, tmpDir)
	dbPath := filepath.Join(tmpDir, "history.db")

	runCmd := exec.Command(bin, "-e", "6 7 * .", "-db", dbPath)
	if out, err := runCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to run setup: %v\n%s", err, out)
	}

	dumpCmd := exec.Command(bin, "-last", "10", "-db", dbPath)
	output, err := dumpCmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to dump history: %v\n%s", err, output)
	}
	if !strings.Contains(string(output), "6 7 * .") {
		t.Errorf("expected history to contain the line, got: %s", output)
	}
	if !strings.Contains(string(output), "42") {
		t.Errorf("expected history to contain the result, got: %s", output)
	}
}
