package repl

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DabicD/Recruitment/internal/domain/schema"
	"github.com/DabicD/Recruitment/internal/engine"
	"github.com/DabicD/Recruitment/internal/export"
	"github.com/DabicD/Recruitment/internal/render"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// attribute aliases accepted at the prompt
var commandAttrs = map[string]string{
	"columns": schema.AttrColumns,
	"data":    schema.AttrData,
	"summary": schema.AttrSummary,
	"rules":   schema.AttrFillRules,
}

// Session is one interactive table: the attribute set being edited and its engine
type Session struct {
	eng   *engine.Engine
	attrs schema.Attributes
	out   io.Writer
}

// renderObserver redraws the table whenever the engine signals a render
type renderObserver struct {
	session *Session
}

func (o *renderObserver) OnEvent(event engine.Event) {
	if event.Type == engine.EventRender {
		o.session.print()
	}
}

// NewSession creates a session writing to out
func NewSession(out io.Writer) *Session {
	s := &Session{
		eng:   engine.New(),
		attrs: schema.Attributes{},
		out:   out,
	}
	s.eng.AddObserver(&renderObserver{session: s})
	s.eng.AddObserver(engine.NewLoggingObserver())
	return s
}

// Engine exposes the session's engine
func (s *Session) Engine() *engine.Engine {
	return s.eng
}

func Start() {
	fmt.Println("Welcome to the table component")
	fmt.Println("Type 'help' for commands, 'exit' or '\\q' to quit.")
	Run(os.Stdin, os.Stdout)
}

// Run reads commands from in until EOF or exit
func Run(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	session := NewSession(out)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}

		if line == "exit" || line == "\\q" {
			break
		}

		if err := session.Execute(line); err != nil {
			fmt.Fprintln(out, messageStyle.Render("Error: "+err.Error()))
		}
	}
}

// Execute runs a single command line
func (s *Session) Execute(line string) error {
	cmd, arg, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")

	if attr, ok := commandAttrs[cmd]; ok {
		s.attrs[attr] = arg
		return s.apply()
	}

	switch cmd {
	case "unset":
		attr, ok := commandAttrs[strings.TrimSpace(arg)]
		if !ok {
			attr = strings.TrimSpace(arg)
		}
		delete(s.attrs, attr)
		return s.apply()

	case "sort":
		index, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return fmt.Errorf("sort expects a column index: %w", err)
		}
		if s.eng.Table() == nil {
			return fmt.Errorf("no table to sort")
		}
		res := s.eng.SortByColumn(index)
		if res.Mode == "" {
			return fmt.Errorf("column %d out of range", index)
		}
		return nil

	case "show":
		s.print()
		return nil

	case "attrs":
		s.printAttrs()
		return nil

	case "export":
		path := strings.TrimSpace(arg)
		if path == "" {
			return fmt.Errorf("export expects a file path")
		}
		if err := export.SaveXLSX(path, s.eng.Render()); err != nil {
			return err
		}
		fmt.Fprintln(s.out, statusStyle.Render("Exported to "+path))
		return nil

	case "reset":
		s.attrs = schema.Attributes{}
		s.eng.Reset()
		return nil

	case "help":
		printHelp(s.out)
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (s *Session) apply() error {
	// Configuration errors are shown as the placeholder by the render signal
	_, _ = s.eng.Apply(s.attrs)
	return nil
}

func (s *Session) print() {
	PrintResult(s.out, s.eng.Render())
}

func (s *Session) printAttrs() {
	names := make([]string, 0, len(s.attrs))
	for name := range s.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(s.out, "%s=%q\n", name, s.attrs[name])
	}
}

// PrintResult writes the table with a styled header and footer
func PrintResult(w io.Writer, res *render.Result) {
	if !res.IsTable() {
		text := res.Message
		if res.Error != "" {
			text = "Error: " + res.Error
		}
		fmt.Fprintln(w, messageStyle.Render(text))
		return
	}

	var buf bytes.Buffer
	if err := render.Text(&buf, res); err != nil {
		fmt.Fprintln(w, messageStyle.Render("Error: "+err.Error()))
		return
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i, line := range lines {
		switch {
		case i == 0:
			line = headerStyle.Render(line)
		case i == len(lines)-1:
			line = footerStyle.Render(line)
		}
		fmt.Fprintln(w, line)
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, `Commands:
  columns <names>     comma-separated column names
  data <rows>         rows separated by ';', cells by ','
  summary <kinds>     none|count|sum|avg per column
  rules <rules>       fill rules, e.g. 2=0/1
  unset <attr>        remove an attribute
  sort <index>        sort by column index
  show                print the table
  attrs               print the current attributes
  export <file.xlsx>  write the table to an xlsx workbook
  reset               discard everything`)
}
