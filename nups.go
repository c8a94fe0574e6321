// Package nups imposes small repeated artwork (hangtags, cards, labels) onto
// printable sheets and exports the result as print-ready PDF with cut marks.
package nups

import (
	"github.com/danh-tc/n-ups/pkg/api"
)

type Exporter = api.Exporter
type Options = api.Options
type Option = api.Option
type NUpPlan = api.NUpPlan
type PaperConfig = api.PaperConfig
type ItemConfig = api.ItemConfig
type MarkConfig = api.MarkConfig
type ColorConfig = api.ColorConfig
type SlotSource = api.SlotSource
type Metadata = api.Metadata
type Layout = api.Layout
type Result = api.Result
type ExportJob = api.ExportJob
type SourceStore = api.SourceStore
type Preview = api.Preview

func New() *Exporter                           { return api.New() }
func NewWithOptions(options Options) *Exporter { return api.NewWithOptions(options) }
func DefaultOptions() Options                  { return api.DefaultOptions() }

var (
	WithDebug    = api.WithDebug
	WithCreator  = api.WithCreator
	WithProducer = api.WithProducer

	ComputeLayout    = api.ComputeLayout
	ResizeSlots      = api.ResizeSlots
	ApplySourceToAll = api.ApplySourceToAll
	ClearSlots       = api.ClearSlots
	SlotPosition     = api.SlotPosition
	PaperPreset      = api.PaperPreset

	NewSourceStore = api.NewSourceStore
	RotatePreview  = api.RotatePreview
	RotatePreviews = api.RotatePreviews

	ErrSlotCount      = api.ErrSlotCount
	ErrSourceNotFound = api.ErrSourceNotFound
)

const (
	DefaultCutMark     = api.DefaultCutMark
	DefaultStrokeWidth = api.DefaultStrokeWidth

	PaperA3Width  = api.PaperA3Width
	PaperA3Height = api.PaperA3Height
	PaperA4Width  = api.PaperA4Width
	PaperA4Height = api.PaperA4Height
	PaperA5Width  = api.PaperA5Width
	PaperA5Height = api.PaperA5Height

	PaperSRA3Width  = api.PaperSRA3Width
	PaperSRA3Height = api.PaperSRA3Height
	PaperSRA4Width  = api.PaperSRA4Width
	PaperSRA4Height = api.PaperSRA4Height

	PaperLetterWidth  = api.PaperLetterWidth
	PaperLetterHeight = api.PaperLetterHeight
)
