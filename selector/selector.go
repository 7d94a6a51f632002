package selector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/bikeshare-stats/registry"
	"github.com/theoremus-urban-solutions/bikeshare-stats/utils"
)

// Selector prompts for a filter triple until a valid one is entered.
type Selector struct {
	registry *registry.Registry
	in       *bufio.Reader
	out      io.Writer
	logger   *zap.Logger
}

// New creates a Selector reading answers from in and writing menus to out.
func New(r *registry.Registry, in io.Reader, out io.Writer, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Selector{registry: r, in: br, out: out, logger: logger}
}

// Reader exposes the buffered input so callers can keep reading the same
// stream after a selection.
func (s *Selector) Reader() *bufio.Reader { return s.in }

// Select prompts city, month and day in turn. Any invalid answer is
// reported and the whole triple is asked again. The only error returned
// is the input stream ending.
func (s *Selector) Select() (Selection, error) {
	for {
		sel, err := s.attempt()
		if err == nil {
			fmt.Fprintf(s.out, "Calculating for: %s, %s, %s\n", sel.City, sel.Month, sel.Day)
			return sel, nil
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			return Selection{}, err
		}
		s.logger.Debug("invalid selection", zap.String("param", verr.Param), zap.String("input", verr.Input))
		fmt.Fprintf(s.out, "Error: %v. Try again!\n", verr)
	}
}

func (s *Selector) attempt() (Selection, error) {
	line, err := s.ask(s.cityMenu())
	if err != nil {
		return Selection{}, err
	}
	city, err := ParseCity(s.registry, line)
	if err != nil {
		return Selection{}, err
	}

	line, err = s.ask(menu("month", utils.Months()))
	if err != nil {
		return Selection{}, err
	}
	month, err := ParseMonth(line)
	if err != nil {
		return Selection{}, err
	}

	line, err = s.ask(menu("day", utils.Days()))
	if err != nil {
		return Selection{}, err
	}
	day, err := ParseDay(line)
	if err != nil {
		return Selection{}, err
	}
	return Selection{City: city, Month: month, Day: day}, nil
}

// ask writes a prompt and reads one answer line. A final line without a
// trailing newline still counts as an answer.
func (s *Selector) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Selector) cityMenu() string {
	var b strings.Builder
	b.WriteString("\nChoose city by number:\n")
	for i, c := range s.registry.Cities() {
		fmt.Fprintf(&b, "%d = %s\n", i+1, c)
	}
	return b.String()
}

func menu(param string, names []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Choose %s by number:\n", param)
	for i, n := range names {
		fmt.Fprintf(&b, "%d = %s\n", i+1, n)
	}
	b.WriteString("0 = all\n")
	return b.String()
}
