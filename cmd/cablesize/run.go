package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"Cablesize/internal/auth"
	"Cablesize/internal/calc/catalog"
	"Cablesize/internal/calc/conductor"
	"Cablesize/internal/calc/premium/importer"
	"Cablesize/internal/calc/premium/optimize"
	"Cablesize/internal/calc/report"
	"Cablesize/internal/calc/sizing"
	"Cablesize/internal/config"
	"Cablesize/internal/project"
)

func runSize(w io.Writer, path string, asJSON bool) error {
	p, err := project.Load(path)
	if err != nil {
		return err
	}
	res, err := sizing.Calculate(p.Sizing())
	if err != nil {
		return fmt.Errorf("sizing %s: %w", path, err)
	}
	if asJSON {
		return writeJSON(w, res)
	}
	fmt.Fprintln(w, title(p.Name))
	fmt.Fprintln(w, formatSizing(res))
	return nil
}

func runOptimize(w io.Writer, path string, asJSON bool) error {
	p, err := project.Load(path)
	if err != nil {
		return err
	}
	res, err := optimize.Plan(p.Plan())
	if err != nil {
		return fmt.Errorf("optimizing %s: %w", path, err)
	}
	if asJSON {
		return writeJSON(w, res)
	}
	fmt.Fprintln(w, title(p.Name))
	fmt.Fprintln(w, formatSizing(res.Sizing))
	fmt.Fprintln(w, formatCosts(res.Optimization))
	fmt.Fprintln(w, formatVerdict(res.Optimization))
	return nil
}

func runCatalog(w io.Writer, material string, asJSON bool) error {
	m, err := conductor.ParseMaterial(material)
	if err != nil {
		return err
	}
	t, err := catalog.Table(m)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(w, t)
	}
	fmt.Fprintln(w, title(string(m)))
	fmt.Fprintln(w, formatCatalog(t))
	return nil
}

func runImport(w io.Writer, path string, asJSON bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening spreadsheet: %w", err)
	}
	defer f.Close()

	res, err := importer.Read(f)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(w, res)
	}
	fmt.Fprintln(w, formatImport(res))
	return nil
}

func runReport(path, out string, date time.Time) error {
	p, err := project.Load(path)
	if err != nil {
		return err
	}
	res, err := optimize.Plan(p.Plan())
	if err != nil {
		return fmt.Errorf("optimizing %s: %w", path, err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := report.Render(f, p.Meta(), res, date); err != nil {
		f.Close()
		return fmt.Errorf("rendering report: %w", err)
	}
	return f.Close()
}

func runToken(w io.Writer, subject string, ttl time.Duration) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.AuthEnabled() {
		return fmt.Errorf("TOKEN_KEY is not set")
	}
	if ttl <= 0 {
		ttl = cfg.TokenTTL
	}
	env := &auth.Authenv{JWTkey: []byte(cfg.TokenKey)}
	token, err := env.IssueToken(subject, ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, token)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
