package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"Cablesize/internal/auth"
	"Cablesize/internal/calc/catalog"
	"Cablesize/internal/calc/premium/optimize"
	"Cablesize/internal/calc/sizing"
)

const feeder = `name: Workshop feeder
material: copper
line:
  type: three-phase
  length_m: 120
  current_a: 80
  power_factor: 0.9
  circuit: power
economics:
  years: 20
  hours_per_year: 4000
  cost_per_kwh: 0.15
`

func writeProject(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feeder.yaml")
	if err := os.WriteFile(path, []byte(feeder), 0o644); err != nil {
		t.Fatalf("write project: %v", err)
	}
	return path
}

func TestRunSizeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := runSize(&buf, writeProject(t), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res sizing.Result
	if err := json.Unmarshal(buf.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.TechnicalSectionMM2 != 16 || !res.OK {
		t.Errorf("expected compliant 16 mm², got %+v", res)
	}
}

func TestRunSizeTable(t *testing.T) {
	var buf bytes.Buffer
	if err := runSize(&buf, writeProject(t), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Workshop feeder", "Technical section", "16 mm²"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunOptimizeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := runOptimize(&buf, writeProject(t), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res optimize.PlanResult
	if err := json.Unmarshal(buf.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Optimization.OptimalSectionMM2 <= res.Sizing.TechnicalSectionMM2 {
		t.Errorf("expected a larger optimal section, got %+v", res.Optimization)
	}
}

func TestRunCatalog(t *testing.T) {
	var buf bytes.Buffer
	if err := runCatalog(&buf, "aluminium", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var entries []catalog.Entry
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) == 0 || entries[0].SectionMM2 != 16 {
		t.Errorf("unexpected aluminum table %+v", entries)
	}

	if err := runCatalog(&buf, "gold", false); err == nil {
		t.Error("expected an error for an unknown material")
	}
}

func TestRunReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.pdf")
	if err := runReport(writeProject(t), out, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("expected a PDF file")
	}
}

func TestRunToken(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TOKEN_KEY", "cli-test-key")

	var buf bytes.Buffer
	if err := runToken(&buf, "ops", time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env := &auth.Authenv{JWTkey: []byte("cli-test-key")}
	subject, err := env.Verify(strings.TrimSpace(buf.String()))
	if err != nil || subject != "ops" {
		t.Errorf("expected a valid token for ops, got %q, %v", subject, err)
	}
}

func TestRunTokenWithoutKey(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TOKEN_KEY", "")
	if err := runToken(&bytes.Buffer{}, "ops", time.Hour); err == nil {
		t.Error("expected an error without TOKEN_KEY")
	}
}

func TestRootCommandJSONFlag(t *testing.T) {
	path := writeProject(t)
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"size", "--json", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}
