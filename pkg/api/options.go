package api

// Options represents configuration options for the exporter
type Options struct {
	// Debug enables verbose logging to stdout
	Debug bool

	// Document metadata stamped on every exported sheet
	Creator  string
	Producer string
}

// Option is a function that modifies Options
type Option func(*Options)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Debug:    false,
		Creator:  "n-ups",
		Producer: "n-ups",
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithCreator sets the document creator
func WithCreator(creator string) Option {
	return func(o *Options) {
		o.Creator = creator
	}
}

// WithProducer sets the document producer
func WithProducer(producer string) Option {
	return func(o *Options) {
		o.Producer = producer
	}
}

// Standard paper sizes in millimeters
const (
	PaperA3Width  = 297.0
	PaperA3Height = 420.0
	PaperA4Width  = 210.0
	PaperA4Height = 297.0
	PaperA5Width  = 148.0
	PaperA5Height = 210.0

	// Oversized sheets with room for bleed and marks
	PaperSRA3Width  = 320.0
	PaperSRA3Height = 450.0
	PaperSRA4Width  = 225.0
	PaperSRA4Height = 320.0

	PaperLetterWidth  = 215.9
	PaperLetterHeight = 279.4
)

// PaperPreset returns the dimensions of a named paper size in millimeters.
func PaperPreset(name string) (width, height float64, ok bool) {
	switch name {
	case "a3", "A3":
		return PaperA3Width, PaperA3Height, true
	case "a4", "A4":
		return PaperA4Width, PaperA4Height, true
	case "a5", "A5":
		return PaperA5Width, PaperA5Height, true
	case "sra3", "SRA3":
		return PaperSRA3Width, PaperSRA3Height, true
	case "sra4", "SRA4":
		return PaperSRA4Width, PaperSRA4Height, true
	case "letter", "Letter":
		return PaperLetterWidth, PaperLetterHeight, true
	}
	return 0, 0, false
}
