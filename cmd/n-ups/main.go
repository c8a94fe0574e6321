package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	nups "github.com/danh-tc/n-ups"
)

func main() {
	var (
		inputFile  string
		backFile   string
		outputFile string
		paperName  string
		paperSize  string
		itemSize   string
		margin     float64
		gutter     float64
		gap        float64
		cutLen     float64
		page       int
		backPage   int
		rotation   int
		cmyk       bool
		verbose    bool
	)

	flag.StringVar(&inputFile, "input", "", "Input PDF whose page is imposed into every slot")
	flag.StringVar(&backFile, "back", "", "Optional PDF for the back side (duplex)")
	flag.StringVar(&outputFile, "output", "", "Output PDF file path")
	flag.StringVar(&paperName, "paper", "a4", "Paper preset: a3, a4, a5, sra3, sra4, letter")
	flag.StringVar(&paperSize, "paper-size", "", "Custom paper size WxH in mm (overrides -paper)")
	flag.StringVar(&itemSize, "item", "57x92", "Item trim size WxH in mm")
	flag.Float64Var(&margin, "margin", 5, "Paper margin on every side, mm")
	flag.Float64Var(&gutter, "gutter", 0, "Gutter around each item, mm")
	flag.Float64Var(&gap, "gap", 0, "Gap between items, mm")
	flag.Float64Var(&cutLen, "cut", nups.DefaultCutMark, "Cut mark length, mm")
	flag.IntVar(&page, "page", 1, "1-based page of the input PDF to impose")
	flag.IntVar(&backPage, "back-page", 1, "1-based page of the back PDF to impose")
	flag.IntVar(&rotation, "rotation", 0, "Rotation for every slot, degrees (multiple of 90)")
	flag.BoolVar(&cmyk, "cmyk", false, "Stroke cut marks as 100% K")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	if inputFile == "" {
		fmt.Println("Error: input file is required")
		flag.Usage()
		os.Exit(1)
	}

	if outputFile == "" {
		ext := filepath.Ext(inputFile)
		outputFile = inputFile[:len(inputFile)-len(ext)] + "-imposed.pdf"
	}

	paperW, paperH, err := resolvePaper(paperName, paperSize)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	itemW, itemH, err := parseSize(itemSize)
	if err != nil {
		fmt.Printf("Error: invalid item size: %v\n", err)
		os.Exit(1)
	}

	paper := nups.PaperConfig{
		Width: paperW, Height: paperH,
		MarginTop: margin, MarginRight: margin, MarginBottom: margin, MarginLeft: margin,
		GapX: gap, GapY: gap,
		Duplex:  backFile != "",
		CutMark: &cutLen,
	}
	item := nups.ItemConfig{
		Width: itemW, Height: itemH,
		GutterTop: gutter, GutterRight: gutter, GutterBottom: gutter, GutterLeft: gutter,
		Rotation: rotation,
	}

	grid := nups.ComputeLayout(paper, item)
	if verbose {
		fmt.Printf("Paper %.1fx%.1fmm, item %.1fx%.1fmm: %d cols x %d rows = %d items (printed area %.1fx%.1fmm)\n",
			paperW, paperH, itemW, itemH, grid.Cols, grid.Rows, grid.Items, grid.PrintedW, grid.PrintedH)
	}
	if grid.Items == 0 {
		fmt.Println("Warning: not enough space, no items fit on this paper")
	}

	front, err := buildPlan(paper, item, grid.Items, inputFile, page)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	front.Color.PreserveCMYK = cmyk

	exporter := nups.New()
	if verbose {
		exporter = exporter.WithOption(nups.WithDebug(true))
	}

	var out []byte
	if backFile != "" {
		back, err := buildPlan(paper, item, grid.Items, backFile, backPage)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		back.Color.PreserveCMYK = cmyk
		out, err = exporter.ExportJobs([]nups.ExportJob{{Front: front, Back: &back}})
		if err != nil {
			fmt.Printf("Error exporting duplex sheets: %v\n", err)
			os.Exit(1)
		}
	} else {
		out, err = exporter.ExportNUp(front)
		if err != nil {
			fmt.Printf("Error exporting sheet: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.WriteFile(outputFile, out, 0644); err != nil {
		fmt.Printf("Error writing %s: %v\n", outputFile, err)
		os.Exit(1)
	}
	if verbose {
		fmt.Printf("Successfully imposed %s to %s\n", inputFile, outputFile)
	}
}

// buildPlan reads the source PDF and replicates the chosen page into every
// slot of a full sheet.
func buildPlan(paper nups.PaperConfig, item nups.ItemConfig, items int, file string, page int) (nups.NUpPlan, error) {
	src, err := os.ReadFile(file)
	if err != nil {
		return nups.NUpPlan{}, fmt.Errorf("failed to read %s: %w", file, err)
	}
	slots := nups.ResizeSlots(nil, items)
	nups.ApplySourceToAll(slots, nups.SlotSource{PDF: src, Page: page - 1})
	return nups.NUpPlan{Paper: paper, Item: item, Slots: slots}, nil
}

func resolvePaper(name, custom string) (float64, float64, error) {
	if custom != "" {
		return parseSize(custom)
	}
	w, h, ok := nups.PaperPreset(name)
	if !ok {
		return 0, 0, fmt.Errorf("unknown paper preset %q", name)
	}
	return w, h, nil
}

// parseSize parses "WxH" in millimeters.
func parseSize(s string) (float64, float64, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected WxH, got %q", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}
