package aoc

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

var (
	labelStyle = lipgloss.NewStyle().Faint(true)
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")).Bold(true)
)

// Runner runs registered days against their inputs and prints the answers.
type Runner struct {
	Config *Config
	Days   []Day
	Out    io.Writer
	Logger *zap.Logger
}

func (r *Runner) logger() *zap.Logger {
	return Or(r.Logger, Logger())
}

// Run runs day (0 for all registered days) and part (0 for both). It stops at
// the first error, including an answer that differs from the configured want.
func (r *Runner) Run(day, part int) error {
	if part < 0 || part > 2 {
		return fmt.Errorf("no part %d", part)
	}
	days := make(map[int]Day, len(r.Days))
	for _, d := range r.Days {
		days[d.Number] = d
	}
	if day != 0 {
		d, ok := days[day]
		if !ok {
			return fmt.Errorf("no day %d", day)
		}
		return r.runDay(d, part)
	}

	for i, n := range slices.Sorted(maps.Keys(days)) {
		if i > 0 {
			fmt.Fprintln(r.Out)
		}
		if err := r.runDay(days[n], part); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runDay(d Day, part int) error {
	cfg := r.Config.Day(d.Number)
	input := InputPath(r.Config.DataDir, d.Number, r.Config.Input)
	log := r.logger().With(zap.Int("day", d.Number), zap.String("input", input))

	s := d.New(input)
	if len(cfg.Params) > 0 {
		c, ok := s.(Configurable)
		if !ok {
			return fmt.Errorf("day %d takes no params", d.Number)
		}
		if err := c.Configure(cfg.Params); err != nil {
			return fmt.Errorf("day %d: %w", d.Number, err)
		}
	}

	fmt.Fprintln(r.Out, labelStyle.Render(fmt.Sprintf("Running day %d", d.Number)))
	answers := []func() (string, error){s.Answer1, s.Answer2}
	for i, answer := range answers {
		p := i + 1
		if part != 0 && part != p {
			continue
		}
		t0 := time.Now()
		got, err := answer()
		elapsed := time.Since(t0)
		if err != nil {
			log.Debug("answer failed", zap.Int("part", p), zap.Error(err))
			return fmt.Errorf("day %d part %d: %w", d.Number, p, err)
		}
		log.Debug("answer", zap.Int("part", p), zap.Duration("elapsed", elapsed))

		var want string
		if i < len(cfg.Want) {
			want = cfg.Want[i]
		}
		mark := ""
		switch {
		case want == "":
		case got == want:
			mark = " " + passStyle.Render("✅")
		default:
			fmt.Fprintf(r.Out, "%s %s %s; want %s\n", labelStyle.Render(fmt.Sprintf("part %d:", p)), got, failStyle.Render("❌"), want)
			return fmt.Errorf("day %d part %d: got %q, want %q", d.Number, p, got, want)
		}
		if strings.Contains(got, "\n") {
			got = "\n" + got + "\n"
		}
		fmt.Fprintf(r.Out, "%s %s%s %s\n", labelStyle.Render(fmt.Sprintf("part %d:", p)), got, mark,
			labelStyle.Render(fmt.Sprintf("(took %v)", elapsed.Round(time.Microsecond))))
	}
	return nil
}
