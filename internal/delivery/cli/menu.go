package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"go-application-tracker/internal/delivery/cli/middleware"
	"go-application-tracker/internal/domain"
	"io"
	"strings"
)

// MenuOptions configures the interactive menu
type MenuOptions struct {
	ExportDir    string
	ExportFormat string
}

// Menu is the interactive console front end. It turns numbered choices and
// prompts into commands and renders the results; all state lives behind the
// dispatcher.
type Menu struct {
	dispatcher *Dispatcher
	in         *bufio.Reader
	out        io.Writer
	opts       MenuOptions
	render     *renderer
}

func NewMenu(d *Dispatcher, in io.Reader, out io.Writer, opts MenuOptions) *Menu {
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}
	if opts.ExportFormat == "" {
		opts.ExportFormat = domain.ExportFormatXLSX
	}
	return &Menu{
		dispatcher: d,
		in:         bufio.NewReader(in),
		out:        out,
		opts:       opts,
		render:     newRenderer(out, opts.ExportDir),
	}
}

var menuItems = []string{
	"1. Submit Application",
	"2. View All Applications",
	"3. Add Applications to Review Queue",
	"4. Process Next Application",
	"5. Shortlist/Reject Applications",
	"6. Search Applications",
	"7. Track Application Stages",
	"8. Generate Report",
	"9. Exit",
	"10. Export Report",
	"11. Filter Applications",
	"12. Move Application to Stage",
	"13. Decision History",
	"14. Verify Audit Trail",
}

// Run loops until the user exits or input ends. End of input is a clean exit.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.render.menu("Application Management System", menuItems)
		choice, err := m.prompt("Enter your choice: ")
		if err != nil {
			return ignoreEOF(err)
		}

		cmd, err := m.command(choice)
		if err != nil {
			if errors.Is(err, errInvalidChoice) {
				fmt.Fprintln(m.out, "Invalid choice. Please try again.")
				continue
			}
			if errors.Is(err, errBadCriteria) {
				fmt.Fprintln(m.out, err.Error())
				continue
			}
			return ignoreEOF(err)
		}

		res := m.dispatcher.Dispatch(ctx, cmd)
		if err := m.render.result(res); err != nil {
			return err
		}
		if res.Exit {
			return nil
		}
	}
}

var (
	errInvalidChoice = errors.New("invalid choice")
	errBadCriteria   = errors.New("criteria must look like field=value, field=value")
)

// command prompts for whatever the chosen operation needs.
func (m *Menu) command(choice string) (middleware.Command, error) {
	switch strings.ToLower(choice) {
	case "1":
		name, jobID, link, err := m.prompt3("Enter applicant name: ", "Enter job ID: ", "Enter resume link: ")
		if err != nil {
			return nil, err
		}
		return SubmitCommand{Name: name, JobID: jobID, ResumeLink: link}, nil
	case "2":
		return ListCommand{}, nil
	case "3":
		return EnqueueAllCommand{}, nil
	case "4":
		return ProcessNextCommand{}, nil
	case "5":
		name, err := m.prompt("Enter applicant name to shortlist/reject: ")
		if err != nil {
			return nil, err
		}
		action, err := m.prompt("Enter 'shortlist' or 'reject': ")
		if err != nil {
			return nil, err
		}
		return DecideCommand{Name: name, Action: strings.ToLower(action)}, nil
	case "6":
		key, err := m.prompt("Enter search key (name/job_id/resume_link/status): ")
		if err != nil {
			return nil, err
		}
		value, err := m.prompt(fmt.Sprintf("Enter value for %s: ", key))
		if err != nil {
			return nil, err
		}
		return SearchCommand{Key: key, Value: value}, nil
	case "7":
		return TrackCommand{}, nil
	case "8":
		return ReportCommand{}, nil
	case "9", "exit", "quit":
		return ExitCommand{}, nil
	case "10":
		format, err := m.prompt(fmt.Sprintf("Enter export format (xlsx/csv/yaml) [%s]: ", m.opts.ExportFormat))
		if err != nil {
			return nil, err
		}
		if format == "" {
			format = m.opts.ExportFormat
		}
		return ExportCommand{Format: format}, nil
	case "11":
		raw, err := m.prompt("Enter criteria (field=value, field=value): ")
		if err != nil {
			return nil, err
		}
		criteria, err := ParseCriteria(raw)
		if err != nil {
			return nil, err
		}
		return FilterCommand{Criteria: criteria}, nil
	case "12":
		name, err := m.prompt("Enter applicant name: ")
		if err != nil {
			return nil, err
		}
		label, err := m.prompt("Enter stage: ")
		if err != nil {
			return nil, err
		}
		return StageCommand{Name: name, Label: label}, nil
	case "13":
		return HistoryCommand{}, nil
	case "14":
		return VerifyAuditCommand{}, nil
	default:
		return nil, errInvalidChoice
	}
}

// ParseCriteria reads "field=value, field=value" into a criteria map.
// Blank input yields empty criteria, which matches every application.
func ParseCriteria(raw string) (map[string]string, error) {
	criteria := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errBadCriteria
		}
		criteria[key] = strings.TrimSpace(value)
	}
	return criteria, nil
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) prompt3(a, b, c string) (string, string, string, error) {
	x, err := m.prompt(a)
	if err != nil {
		return "", "", "", err
	}
	y, err := m.prompt(b)
	if err != nil {
		return "", "", "", err
	}
	z, err := m.prompt(c)
	if err != nil {
		return "", "", "", err
	}
	return x, y, z, nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
