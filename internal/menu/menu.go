// Package menu drives the interactive, line-oriented superhero menu.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/dshills/superheroes/internal/hero"
	"github.com/dshills/superheroes/internal/orderdiff"
	"github.com/dshills/superheroes/internal/render"
	"github.com/dshills/superheroes/internal/store"
)

const menuText = `
=============== Superhero Database Menu ===============
1. Search for a superhero by name
2. Find superheroes by superpower
3. Sort superheroes alphabetically
4. Display all superheroes (choose uppercase or lowercase)
5. Add a new superhero
6. Display superheroes sorted by ranking
0. Exit
Enter your choice: `

// Options configures a Session.
type Options struct {
	Renderer render.Renderer
	// Case is applied to search and ranking output.
	Case hero.CaseMode
	// SortDiff prints how the name order changed after a sort.
	SortDiff bool
	Color    bool
	Logger   *zap.Logger
}

// Session reads menu choices and input lines from one reader and writes all
// prompts and results to one writer.
type Session struct {
	store    *store.Store
	in       *bufio.Reader
	out      io.Writer
	renderer render.Renderer
	caseMode hero.CaseMode
	sortDiff bool
	useColor bool
	logger   *zap.Logger
}

// New returns a Session over st.
func New(st *store.Store, in io.Reader, out io.Writer, opts Options) *Session {
	s := &Session{
		store:    st,
		in:       bufio.NewReader(in),
		out:      out,
		renderer: opts.Renderer,
		caseMode: opts.Case,
		sortDiff: opts.SortDiff,
		useColor: opts.Color,
		logger:   opts.Logger,
	}
	if s.renderer == nil {
		s.renderer = render.Text(opts.Color)
	}
	if s.caseMode == "" {
		s.caseMode = hero.CaseLower
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Run shows the menu until the user exits or input ends. End of input is
// not an error.
func (s *Session) Run() error {
	for {
		fmt.Fprint(s.out, menuText)
		line, err := s.readLine()
		if err != nil {
			return s.finish(err)
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			choice = -1
		}

		switch choice {
		case 1:
			err = s.search(hero.FieldName)
		case 2:
			err = s.search(hero.FieldPower)
		case 3:
			s.sort()
		case 4:
			err = s.displayAll()
		case 5:
			err = s.add()
		case 6:
			err = s.displayByRank()
		case 0:
			fmt.Fprintln(s.out, "Exiting the program. Goodbye!")
			return nil
		default:
			s.status(color.FgRed, "Invalid choice. Please try again.")
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.logger.Debug("input closed")
		fmt.Fprintln(s.out)
		return nil
	}
	return err
}

// readLine returns the next input line without its line ending. A final
// unterminated line is returned before io.EOF.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	return s.readLine()
}

func (s *Session) search(field hero.Field) error {
	text := "Enter the superhero name to search: "
	if field == hero.FieldPower {
		text = "Enter the superpower keyword to search: "
	}
	query, err := s.prompt(text)
	if err != nil {
		return err
	}

	matches := s.store.Search(field, query)
	s.logger.Debug("search",
		zap.String("field", string(field)),
		zap.String("query", query),
		zap.Int("matches", len(matches)))

	if len(matches) == 0 {
		if field == hero.FieldPower {
			s.status(color.FgYellow, "No superheroes found with the superpower keyword \"%s\".", query)
		} else {
			s.status(color.FgYellow, "No superhero found with the name containing \"%s\".", query)
		}
		return nil
	}
	return s.show(matches, s.caseMode)
}

func (s *Session) sort() {
	before := s.store.Names()
	s.store.SortByName()
	after := s.store.Names()
	s.logger.Debug("sorted by name", zap.Int("records", len(after)))

	s.status(color.FgGreen, "Superheroes have been sorted alphabetically by name.")
	if s.sortDiff {
		if diff := orderdiff.Lines(before, after); diff != "" {
			fmt.Fprint(s.out, diff)
		} else {
			fmt.Fprintln(s.out, "Order unchanged.")
		}
	}
}

func (s *Session) displayAll() error {
	answer, err := s.prompt("Enter 1 for UPPERCASE display, 2 for lowercase display or 3 to display as entered: ")
	if err != nil {
		return err
	}

	mode := hero.CaseLower
	switch strings.TrimSpace(answer) {
	case "1":
		mode = hero.CaseUpper
	case "3":
		mode = hero.CaseAsEntered
	}

	all := s.store.All()
	if err := s.show(all, mode); err != nil {
		return err
	}
	marvel, dc, other := hero.CountByUniverse(all)
	fmt.Fprintf(s.out, "%d superheroes (Marvel %d, DC %d, Other %d)\n", len(all), marvel, dc, other)
	return nil
}

func (s *Session) add() error {
	if s.store.Full() {
		s.logger.Warn("add rejected", zap.Error(store.ErrCapacityExceeded))
		s.status(color.FgRed, "Cannot add new superhero. Maximum capacity reached.")
		return nil
	}

	var d hero.Details
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter superhero name: ", &d.Name},
		{"Enter superpower: ", &d.Power},
		{"Enter weakness: ", &d.Weakness},
		{"Enter year introduced: ", &d.YearIntroduced},
		{"Enter comic universe (Marvel, DC, or Other): ", &d.Universe},
	}
	for _, f := range fields {
		v, err := s.prompt(f.prompt)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	for {
		raw, err := s.prompt("Enter unique ranking (an integer): ")
		if err != nil {
			return err
		}
		rank, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			s.status(color.FgRed, "Ranking must be an integer.")
			continue
		}

		err = s.store.Insert(d, rank)
		switch {
		case err == nil:
			s.logger.Info("superhero added", zap.String("name", d.Name), zap.Int("rank", rank))
			s.status(color.FgGreen, "New superhero added successfully!")
			return nil
		case errors.Is(err, store.ErrDuplicateRank):
			s.logger.Warn("duplicate rank", zap.Int("rank", rank))
			s.status(color.FgRed, "Ranking already exists for another superhero. Enter a different ranking.")
		case errors.Is(err, store.ErrCapacityExceeded):
			s.logger.Warn("add rejected", zap.Error(err))
			s.status(color.FgRed, "Cannot add new superhero. Maximum capacity reached.")
			return nil
		default:
			return err
		}
	}
}

func (s *Session) displayByRank() error {
	fmt.Fprintln(s.out, "Superheroes sorted by unique ranking:")
	return s.show(s.store.ByRank(), s.caseMode)
}

func (s *Session) show(records []hero.Record, mode hero.CaseMode) error {
	out, err := s.renderer.Render(hero.RenderAll(records, mode))
	if err != nil {
		s.logger.Error("render failed", zap.Error(err))
		return fmt.Errorf("rendering records: %w", err)
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	_, err = s.out.Write(out)
	return err
}

func (s *Session) status(attr color.Attribute, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if s.useColor {
		c := color.New(attr)
		c.EnableColor()
		msg = c.Sprint(msg)
	}
	fmt.Fprintln(s.out, msg)
}
