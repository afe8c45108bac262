package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ChicagoDave/campusgrid/internal/server"
	"github.com/ChicagoDave/campusgrid/pkg/analytics"
	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/config"
	"github.com/ChicagoDave/campusgrid/pkg/engine"
	"github.com/ChicagoDave/campusgrid/pkg/export"
	"github.com/ChicagoDave/campusgrid/pkg/scene2d"
	"github.com/ChicagoDave/campusgrid/pkg/validation"
)

// loadProject reads the settings and buildings of a project and loads them
// into a fresh world. The returned report covers settings, input and
// geometry.
func loadProject(projectPath string) (*engine.World, *validation.Report, error) {
	settings, err := config.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading settings: %w", err)
	}
	report := validation.ValidateSettings(settings)
	if !report.Valid {
		return nil, report, nil
	}

	buildings, err := campus.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading buildings: %w", err)
	}

	w := engine.New(settings)
	loadReport, err := w.Load(buildings)
	report.Merge(loadReport)
	if err != nil && !errors.Is(err, engine.ErrInvalidInput) {
		return nil, nil, err
	}
	if !report.Valid {
		return nil, report, nil
	}
	return w, report, nil
}

func runValidate(projectPath string) error {
	w, report, err := loadProject(projectPath)
	if err != nil {
		return err
	}

	if w != nil {
		stats, statsReport := analytics.Resolve(w.Buildings(), w.Settings().GridSize)
		report.Merge(statsReport)
		printAnalytics(stats)
	}
	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runSolve(projectPath string) error {
	w, report, err := loadProject(projectPath)
	if err != nil {
		return err
	}
	if w == nil {
		printValidationReport(report)
		return fmt.Errorf("campus has validation errors")
	}

	stats, statsReport := analytics.Resolve(w.Buildings(), w.Settings().GridSize)
	report.Merge(statsReport)

	output := map[string]any{
		"settings":   w.Settings(),
		"validation": report,
		"analytics":  stats,
		"scene":      scene2d.Assemble2D(w),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runRoute(projectPath, from, to string) error {
	w, report, err := loadProject(projectPath)
	if err != nil {
		return err
	}
	if w == nil {
		printValidationReport(report)
		return fmt.Errorf("campus has validation errors")
	}

	a, err := buildingDoor(w, from)
	if err != nil {
		return err
	}
	b, err := buildingDoor(w, to)
	if err != nil {
		return err
	}
	res, err := w.Route(a, b)
	if err != nil {
		return err
	}
	printRoute(from, to, res)
	return nil
}

// buildingDoor turns a "building:door" argument into a door ref, using the
// building id of the input file.
func buildingDoor(w *engine.World, arg string) (engine.DoorRef, error) {
	ref, err := engine.ParseDoorRef(arg)
	if err != nil {
		return engine.DoorRef{}, err
	}
	r, ok := w.RecordForBuilding(int(ref.Record))
	if !ok {
		return engine.DoorRef{}, fmt.Errorf("building %d: %w", ref.Record, engine.ErrUnknownRecord)
	}
	ref.Record = r.ID
	return ref, nil
}

type exportOptions struct {
	dxf, pdf, xlsx string
}

func runExport(projectPath string, opts exportOptions) error {
	if opts.dxf == "" && opts.pdf == "" && opts.xlsx == "" {
		return fmt.Errorf("nothing to export; pass --dxf, --pdf or --xlsx")
	}
	w, report, err := loadProject(projectPath)
	if err != nil {
		return err
	}
	if w == nil {
		printValidationReport(report)
		return fmt.Errorf("campus has validation errors")
	}

	sc := scene2d.Assemble2D(w)
	if opts.dxf != "" {
		if err := export.WriteDXF(opts.dxf, sc); err != nil {
			return fmt.Errorf("writing DXF: %w", err)
		}
		fmt.Printf("DXF written to %s\n", opts.dxf)
	}
	if opts.pdf != "" {
		if err := export.WritePDF(opts.pdf, sc); err != nil {
			return fmt.Errorf("writing PDF: %w", err)
		}
		fmt.Printf("PDF written to %s\n", opts.pdf)
	}
	if opts.xlsx != "" {
		if err := export.WriteCongestionXLSX(opts.xlsx, w.Buildings()); err != nil {
			return fmt.Errorf("writing XLSX: %w", err)
		}
		fmt.Printf("Congestion workbook written to %s\n", opts.xlsx)
	}
	return nil
}

func runServe(projectPath string, port int) error {
	w, report, err := loadProject(projectPath)
	if err != nil {
		return err
	}
	if w == nil {
		printValidationReport(report)
		return fmt.Errorf("campus has validation errors")
	}
	srv := server.New(projectPath, port, w)
	return srv.Start()
}
