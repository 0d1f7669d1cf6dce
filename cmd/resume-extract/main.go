package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/a3tai/mcp-resume-parser/internal/logger"
	"github.com/a3tai/mcp-resume-parser/internal/pdf/errors"
	"github.com/a3tai/mcp-resume-parser/internal/pdf/extraction"
	"github.com/a3tai/mcp-resume-parser/internal/resume"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// options are the parsed command line flags
type options struct {
	format   string
	textOnly bool
	sections bool
	plain    bool
	verbose  bool
	path     string
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code: 0 on success
// and for scanned documents, 1 when the document cannot be read, 2 on usage
// errors.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err == pflag.ErrHelp {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		printUsage(stderr)
		return 2
	}

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	log := logger.New(logger.Options{Level: level, Format: "pretty", Output: stderr})

	data, err := os.ReadFile(opts.path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: cannot read %s: %v\n", opts.path, err)
		return 1
	}

	if opts.plain {
		return emit(stdout, stderr, opts, output{Text: string(data), Strategy: "plain"})
	}

	res, err := extraction.New(extraction.WithLogger(log)).Extract(ctx, data)
	if err != nil {
		if errors.IsUnreadableDocument(err) {
			fmt.Fprintf(stderr, "Error: %s is unreadable: %v\n", opts.path, err)
		} else {
			fmt.Fprintf(stderr, "Error extracting %s: %v\n", opts.path, err)
		}
		return 1
	}

	logAttempts(log, res)
	return emit(stdout, stderr, opts, output{
		Text:     res.Text,
		Scanned:  res.Scanned,
		Strategy: res.Strategy,
		Attempts: res.Attempts,
	})
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options

	flags := pflag.NewFlagSet("resume-extract", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVarP(&opts.format, "format", "f", formatText, "Output format: text, json")
	flags.BoolVar(&opts.textOnly, "text-only", false, "Print the extracted text instead of the structured record")
	flags.BoolVar(&opts.sections, "sections", false, "Print the text of each recognized section instead of the structured record")
	flags.BoolVar(&opts.plain, "plain", false, "Treat the input as already extracted plain text")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log every extraction attempt to stderr")
	flags.Usage = func() { printHelp(stderr, flags) }

	if err := flags.Parse(args); err != nil {
		return opts, err
	}

	opts.format = strings.ToLower(opts.format)
	if opts.format != formatText && opts.format != formatJSON {
		return opts, fmt.Errorf("unknown format %q", opts.format)
	}
	if flags.NArg() != 1 {
		return opts, fmt.Errorf("exactly one resume file is required")
	}
	opts.path = flags.Arg(0)
	return opts, nil
}

func logAttempts(log zerolog.Logger, res *extraction.Result) {
	for _, a := range res.Attempts {
		log.Debug().
			Str("strategy", a.Strategy).
			Int("chars", a.Chars).
			Bool("readable", a.Readable).
			Dur("duration", a.Duration).
			Str("error", a.Err).
			Msg("extraction attempt")
	}
}

// output is what the command prints, before formatting
type output struct {
	Text     string               `json:"text,omitempty"`
	Scanned  bool                 `json:"scanned"`
	Message  string               `json:"message,omitempty"`
	Strategy string               `json:"strategy"`
	Attempts []extraction.Attempt `json:"attempts,omitempty"`
	Sections []resume.Section     `json:"sections,omitempty"`
	Resume   *resume.Resume       `json:"resume,omitempty"`
}

func emit(stdout, stderr io.Writer, opts options, out output) int {
	switch {
	case out.Scanned:
		out.Message, out.Text = out.Text, ""
	case opts.textOnly:
	case opts.sections:
		out.Sections = resume.FindSections(out.Text)
		out.Text = ""
	default:
		r := resume.Extract(out.Text)
		out.Resume = &r
		if opts.format == formatJSON {
			out.Text = ""
		}
	}

	var err error
	if opts.format == formatJSON {
		err = writeJSON(stdout, out)
	} else {
		err = writeText(stdout, out)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 1
	}
	return 0
}

func writeJSON(w io.Writer, out output) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeText(w io.Writer, out output) error {
	var b strings.Builder
	switch {
	case out.Scanned:
		b.WriteString(out.Message + "\n")
	case out.Sections != nil:
		for _, sec := range out.Sections {
			fmt.Fprintf(&b, "[%s]\n%s\n\n", sec.Name, sec.Text)
		}
	case out.Resume == nil:
		b.WriteString(out.Text + "\n")
	default:
		formatResume(&b, *out.Resume)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// formatResume renders a resume as an indented, human readable summary
func formatResume(b *strings.Builder, r resume.Resume) {
	p := r.PersonalInfo
	field(b, "", "Name", p.Name)
	field(b, "", "Title", p.Title)
	field(b, "", "Email", p.Email)
	field(b, "", "Phone", p.Phone)
	field(b, "", "Location", p.Location)
	field(b, "", "Website", p.Website)
	field(b, "", "Summary", p.Summary)

	if len(r.Skills) > 0 {
		b.WriteString("\nSkills:\n")
		for _, c := range r.Skills {
			names := make([]string, 0, len(c.Skills))
			for _, s := range c.Skills {
				names = append(names, s.Name)
			}
			fmt.Fprintf(b, "  %s: %s\n", c.Name, strings.Join(names, ", "))
		}
	}

	if len(r.Experience) > 0 {
		b.WriteString("\nExperience:\n")
		for _, e := range r.Experience {
			fmt.Fprintf(b, "  - %s\n", joinNonEmpty(" at ", e.Position, e.Company))
			field(b, "    ", "Dates", dates(e.StartDate, e.EndDate))
			field(b, "    ", "Location", e.Location)
			field(b, "    ", "Description", e.Description)
			for _, a := range e.Achievements {
				if a != "" {
					fmt.Fprintf(b, "    * %s\n", a)
				}
			}
		}
	}

	if len(r.Education) > 0 {
		b.WriteString("\nEducation:\n")
		for _, e := range r.Education {
			fmt.Fprintf(b, "  - %s\n", joinNonEmpty(", ", e.Degree, e.Institution))
			field(b, "    ", "Field", e.Field)
			field(b, "    ", "Dates", dates(e.StartDate, e.EndDate))
			field(b, "    ", "Location", e.Location)
			field(b, "    ", "Description", e.Description)
		}
	}

	if len(r.Projects) > 0 {
		b.WriteString("\nProjects:\n")
		for _, p := range r.Projects {
			fmt.Fprintf(b, "  - %s\n", p.Name)
			field(b, "    ", "Description", p.Description)
			field(b, "    ", "Technologies", p.Technologies)
			field(b, "    ", "Link", p.Link)
			field(b, "    ", "Dates", dates(p.StartDate, p.EndDate))
		}
	}

	if r.IsEmpty() {
		b.WriteString("No resume fields recognized.\n")
	}
}

func field(b *strings.Builder, indent, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "%s%s: %s\n", indent, label, value)
	}
}

func dates(start, end string) string {
	return joinNonEmpty(" - ", start, end)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintln(w, "  resume-extract [--format text|json] [--text-only|--sections] [--plain] [--verbose] <file>")
}

func printHelp(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintln(w, "Resume Extract - Turn a resume PDF into a structured record")
	fmt.Fprintln(w)
	printUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "OPTIONS:")
	flags.SetOutput(w)
	flags.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "EXIT CODES:")
	fmt.Fprintln(w, "  0  success, including scanned documents (guidance is printed instead of a record)")
	fmt.Fprintln(w, "  1  the file cannot be read or has no recoverable text")
	fmt.Fprintln(w, "  2  usage error")
}
