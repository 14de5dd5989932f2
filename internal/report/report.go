// Package report renders display snapshots as lines of text.
package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/genricoloni/screenfetch/internal/config"
	"github.com/genricoloni/screenfetch/internal/domain"
	"github.com/muesli/termenv"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// LineWriter receives rendered output one line at a time
type LineWriter interface {
	WriteLine(line string) error
}

type writerSink struct {
	w io.Writer
}

// NewLineWriter adapts w to a LineWriter, terminating each line with \n
func NewLineWriter(w io.Writer) LineWriter {
	return &writerSink{w: w}
}

func (s *writerSink) WriteLine(line string) error {
	_, err := io.WriteString(s.w, line+"\n")
	return err
}

// fieldWidth aligns the values of the detailed form
const fieldWidth = 14

// Options selects the output form
type Options struct {
	Format string
	Color  bool
}

// Renderer formats ScreenCharacteristics in one of the configured forms
type Renderer struct {
	logger *zap.Logger
	format string
	label  lipgloss.Style
	value  lipgloss.Style
	accent lipgloss.Style
}

// NewRenderer creates a Renderer from the application config. Color "auto"
// is enabled when stdout is a terminal.
func NewRenderer(logger *zap.Logger, cfg *config.AppConfig) *Renderer {
	color := cfg.Color == config.ColorAlways ||
		(cfg.Color == config.ColorAuto && term.IsTerminal(int(os.Stdout.Fd())))
	return New(logger, Options{Format: cfg.Format, Color: color})
}

// New creates a Renderer
func New(logger *zap.Logger, opts Options) *Renderer {
	profile := termenv.Ascii
	if opts.Color {
		profile = termenv.ANSI256
	}
	r := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(profile))
	r.SetColorProfile(profile)

	return &Renderer{
		logger: logger,
		format: opts.Format,
		label:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		value:  r.NewStyle(),
		accent: r.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// Render writes screens to w
func (r *Renderer) Render(w LineWriter, screens []domain.ScreenCharacteristics) error {
	var lines []string
	var err error

	switch r.format {
	case config.FormatCompact, "":
		lines = r.compact(screens)
	case config.FormatDetailed:
		lines = r.detailed(screens)
	case config.FormatJSON:
		lines, err = encodeJSON(screens)
	case config.FormatYAML:
		lines, err = encodeYAML(screens)
	default:
		err = fmt.Errorf("unknown report format %q", r.format)
	}
	if err != nil {
		return err
	}

	r.logger.Debug("Rendering report", zap.String("format", r.format), zap.Int("lines", len(lines)))
	for _, line := range lines {
		if err := w.WriteLine(line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

// compact emits one line per screen
func (r *Renderer) compact(screens []domain.ScreenCharacteristics) []string {
	lines := make([]string, 0, len(screens))
	for i, s := range screens {
		line := fmt.Sprintf("%s %s (%dx%d) @%dHz",
			r.label.Render(fmt.Sprintf("[Display %d] ->", i+1)),
			r.value.Render(s.Name),
			s.CurrentWidth, s.CurrentHeight, s.RefreshRate)
		if s.DSREnabled {
			line += " " + r.accent.Render(fmt.Sprintf("[%s %s]", s.DSRType, s.Upscale))
		}
		lines = append(lines, line)
	}
	return lines
}

// detailed emits a block per screen
func (r *Renderer) detailed(screens []domain.ScreenCharacteristics) []string {
	var lines []string
	for i, s := range screens {
		dsr := string(s.DSRType)
		if s.DSREnabled {
			dsr = fmt.Sprintf("%s (%s)", s.DSRType, s.Upscale)
		}

		lines = append(lines,
			r.label.Render(fmt.Sprintf("Monitor %d:", i+1))+" "+r.value.Render(s.Name),
			r.field("Resolution", fmt.Sprintf("%dx%d", s.CurrentWidth, s.CurrentHeight)),
			r.field("Native", s.NativeResolution),
			r.field("Aspect Ratio", s.AspectRatio),
			r.field("Refresh Rate", fmt.Sprintf("%dHz", s.RefreshRate)),
			r.field("Scale", fmt.Sprintf("%d%% (%s)", s.ScalePercent, s.ScaleMul)),
			r.field("DSR/VSR", dsr),
		)
	}
	return lines
}

func (r *Renderer) field(name, value string) string {
	pad := fieldWidth - len(name) - 1
	if pad < 1 {
		pad = 1
	}
	return "  " + r.label.Render(name+":") + strings.Repeat(" ", pad) + r.value.Render(value)
}

func encodeJSON(screens []domain.ScreenCharacteristics) ([]string, error) {
	if screens == nil {
		screens = []domain.ScreenCharacteristics{}
	}
	data, err := json.MarshalIndent(screens, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return splitLines(data), nil
}

func encodeYAML(screens []domain.ScreenCharacteristics) ([]string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(screens); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	return splitLines(buf.Bytes()), nil
}

func splitLines(data []byte) []string {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}
