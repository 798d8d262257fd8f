// Package report renders solve results to a terminal: puzzle notes through
// glamour, ranking tables through lipgloss and status lines through
// fatih/color.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"

	"github.com/pymaldebaran/adventofcode2022/internal/ports"
	"github.com/pymaldebaran/adventofcode2022/internal/puzzle"
)

// DefaultWidth is the word wrap width of rendered notes.
const DefaultWidth = 80

var medals = []string{"🥇", "🥈", "🥉"}

// Options configures a Renderer.
type Options struct {
	NoColor bool
	Width   int
}

// Renderer writes a human readable report to an io.Writer.
// It implements ports.Renderer.
type Renderer struct {
	mu  sync.Mutex
	w   io.Writer
	opt Options

	title *color.Color
	label *color.Color
	value *color.Color
	pass  *color.Color
	fail  *color.Color

	styles tableStyles
}

type tableStyles struct {
	caption lipgloss.Style
	header  lipgloss.Style
	entity  lipgloss.Style
	score   lipgloss.Style
	rank    lipgloss.Style
	border  lipgloss.Style
}

// New creates a Renderer writing to w.
func New(w io.Writer, opt Options) *Renderer {
	if opt.Width <= 0 {
		opt.Width = DefaultWidth
	}

	r := &Renderer{
		w:     w,
		opt:   opt,
		title: color.New(color.FgCyan, color.Bold),
		label: color.New(color.Faint),
		value: color.New(color.FgYellow, color.Bold),
		pass:  color.New(color.FgGreen),
		fail:  color.New(color.FgRed, color.Bold),
	}
	if opt.NoColor {
		for _, c := range []*color.Color{r.title, r.label, r.value, r.pass, r.fail} {
			c.DisableColor()
		}
	}
	r.styles = newTableStyles(lipgloss.NewRenderer(w), opt.NoColor)
	return r
}

func newTableStyles(lr *lipgloss.Renderer, noColor bool) tableStyles {
	s := tableStyles{
		caption: lr.NewStyle().Bold(true),
		header:  lr.NewStyle().Bold(true).Padding(0, 1),
		entity:  lr.NewStyle().Padding(0, 1),
		score:   lr.NewStyle().Padding(0, 1),
		rank:    lr.NewStyle().Padding(0, 1).Align(lipgloss.Center),
		border:  lr.NewStyle(),
	}
	if noColor {
		return s
	}
	s.entity = s.entity.Bold(true).Foreground(lipgloss.Color("2"))
	s.score = s.score.Foreground(lipgloss.Color("3"))
	s.border = s.border.Foreground(lipgloss.Color("8"))
	return s
}

// Header introduces the results of one day.
func (r *Renderer) Header(day int, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.title.Fprintf(r.w, "--- Day %d: %s ---\n", day, title)
	return err
}

// Notes renders a puzzle description written in markdown.
func (r *Renderer) Notes(markdown string) error {
	style := glamour.WithAutoStyle()
	if r.opt.NoColor {
		style = glamour.WithStandardStyle("notty")
	}
	tr, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(r.opt.Width))
	if err != nil {
		return fmt.Errorf("notes renderer: %w", err)
	}
	out, err := tr.Render(markdown)
	if err != nil {
		return fmt.Errorf("render notes: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err = io.WriteString(r.w, out)
	return err
}

// Check reports the comparison of a solver with its sample answer.
func (r *Renderer) Check(c puzzle.Check) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.OK() {
		_, err := r.pass.Fprintf(r.w, "✓ %s sample: %d\n", c.Part, c.Got)
		return err
	}
	_, err := r.fail.Fprintf(r.w, "✗ %s sample: got %d, want %d\n", c.Part, c.Got, c.Want)
	return err
}

// Answer reports the answer of one part, followed by its ranking table
// when the answer carries one.
func (r *Renderer) Answer(a puzzle.Answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %s\n",
		r.label.Sprint(a.Part.String()),
		a.Label,
		r.value.Sprint(strconv.Itoa(a.Value)))

	if len(a.Ranking) > 0 {
		b.WriteString(r.ranking(a))
		b.WriteString("\n")
		fmt.Fprintf(&b, "And altogether they carry %d %s\n", a.Value, a.Unit)
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) ranking(a puzzle.Answer) string {
	entity, metric := a.Entity, a.Metric
	if entity == "" {
		entity = "Entity"
	}
	if metric == "" {
		metric = "Score"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.border).
		BorderRow(true).
		Headers(entity, metric, "Rank").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.styles.header
			case col == 0:
				return r.styles.entity
			case col == 1:
				return r.styles.score
			default:
				return r.styles.rank
			}
		})

	for i, e := range a.Ranking {
		score := strconv.Itoa(e.Score)
		if a.Unit != "" {
			score += " " + a.Unit
		}
		t.Row("n°"+strconv.Itoa(e.Index), score, Medal(i))
	}

	if a.Caption == "" {
		return t.String()
	}
	return r.styles.caption.Render(a.Caption) + "\n" + t.String()
}

// Medal returns the podium medal for the zero based rank i, or "#n" past
// the podium.
func Medal(i int) string {
	if i >= 0 && i < len(medals) {
		return medals[i]
	}
	return "#" + strconv.Itoa(i+1)
}

// Ensure Renderer implements ports.Renderer.
var _ ports.Renderer = (*Renderer)(nil)
