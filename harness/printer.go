package harness

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/amp-labs/amp-algorithms/cli"
	"github.com/amp-labs/amp-algorithms/sorting"
	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer renders a Report as coloured text.
type Printer struct {
	out   io.Writer
	width int
	num   *message.Printer

	pass    *color.Color
	fail    *color.Color
	heading *color.Color
	warn    *color.Color
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithoutColor disables ANSI colours regardless of the terminal.
func WithoutColor() PrinterOption {
	return func(p *Printer) {
		for _, c := range p.colors() {
			c.DisableColor()
		}
	}
}

// WithWidth sets the banner width. The default is cli.TerminalWidth.
func WithWidth(width int) PrinterOption {
	return func(p *Printer) {
		p.width = width
	}
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{
		out:     out,
		width:   cli.TerminalWidth(),
		num:     message.NewPrinter(language.English),
		pass:    color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		heading: color.New(color.FgBlue, color.Bold),
		warn:    color.New(color.FgYellow),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Printer) colors() []*color.Color {
	return []*color.Color{p.pass, p.fail, p.heading, p.warn}
}

func (p *Printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) section(title string) {
	p.printf("\n%s\n", p.heading.Sprintf("=== %s ===", strings.ToUpper(title)))
}

// Print writes the whole report: a banner, every suite, the in-place check,
// the performance table and a summary.
func (p *Printer) Print(report *Report) {
	p.printf("%s", p.warn.Sprint(cli.Banner("SORTING ALGORITHM TEST SUITE", p.width, cli.AlignCenter)))

	p.printCases(report.Cases)
	p.printSearches(report.Searches)
	p.printInPlace(report.InPlace)
	p.printPerformance(report.Performance)
	p.printIncorrectPerformance(report)
	p.PrintSummary(report)
}

func (p *Printer) printCases(cases []CaseResult) {
	var suite, algorithm string

	num := 0

	for _, c := range cases {
		if c.Suite != suite || c.Algorithm != algorithm {
			suite, algorithm = c.Suite, c.Algorithm
			num = 0

			p.section(fmt.Sprintf("%s sort: %s tests", algorithm, suite))
		}

		num++

		p.PrintCase(num, c)
	}
}

// PrintCase writes one sort case in the PASSED/FAILED/ERRORED layout.
func (p *Printer) PrintCase(num int, c CaseResult) {
	switch c.Status {
	case StatusPassed:
		p.printf("%s: %s\n", p.pass.Sprintf("✅ Test %d PASSED", num), c.Case.Name)
		p.printf("   Input:    %s\n", FormatSequence(c.Case.Input))
		p.printf("   Output:   %s\n", FormatSequence(c.Got))
		p.printf("   Time:     %sms\n", formatMillis(c.Elapsed, 4))
	case StatusFailed:
		p.printf("%s: %s\n", p.fail.Sprintf("❌ Test %d FAILED", num), c.Case.Name)
		p.printf("   Input:    %s\n", FormatSequence(c.Case.Input))

		if c.Case.Expected != nil {
			p.printf("   Expected: %s\n", FormatSequence(c.Case.Expected))
		}

		p.printf("   Got:      %s\n", FormatSequence(c.Got))

		if c.Err != nil {
			p.printf("   Reason:   %v\n", c.Err)
		}
	default:
		p.printf("%s: %s\n", p.fail.Sprintf("💥 Test %d ERRORED", num), c.Case.Name)
		p.printf("   Input: %s\n", FormatSequence(c.Case.Input))
		p.printf("   Error: %v\n", c.Err)
	}
}

func (p *Printer) printSearches(searches []SearchResult) {
	if len(searches) == 0 {
		return
	}

	p.section("search tests")

	for _, s := range searches {
		switch s.Status {
		case StatusPassed:
			p.printf("%s: %s -> %d\n", p.pass.Sprintf("✅ %s PASSED", s.Case.Name), s.Case, s.Got)
		case StatusFailed:
			p.printf("%s: %s\n", p.fail.Sprintf("❌ %s FAILED", s.Case.Name), s.Case)
			p.printf("   Expected: %d, Got: %d\n", s.Case.Expected, s.Got)
		default:
			p.printf("%s: %s\n", p.fail.Sprintf("💥 %s ERRORED", s.Case.Name), s.Case)
			p.printf("   Error: %v\n", s.Err)
		}
	}
}

func (p *Printer) printInPlace(results []InPlaceResult) {
	for _, r := range results {
		p.section(r.Algorithm + " sort: in-place modification test")

		p.printf("Original array:     %s\n", FormatSequence(r.Original))
		p.printf("Array after sort:   %s\n", FormatSequence(r.Argument))
		p.printf("Returned value:     %s\n", FormatSequence(r.Returned))

		if r.Aliased {
			p.printf("%s\n", p.pass.Sprint("✅ Confirms: Function modifies in-place AND returns the array"))
		} else {
			p.printf("%s\n", p.fail.Sprint("❌ Warning: Return value doesn't match modified array"))
		}

		if r.Sorted {
			p.printf("%s\n", p.pass.Sprint("✅ Array correctly sorted"))
		} else {
			p.printf("%s\n", p.fail.Sprint("❌ Array not correctly sorted"))
		}
	}
}

func (p *Printer) printPerformance(results []PerfResult) {
	var algorithm string

	for _, r := range results {
		if r.Algorithm != algorithm {
			if algorithm == sorting.NameBubble {
				p.bubbleNote()
			}

			algorithm = r.Algorithm

			p.section(algorithm + " sort: performance test")
		}

		status, verdict := p.pass.Sprint("✅"), "Correct"
		if !r.Correct {
			status, verdict = p.fail.Sprint("❌"), "INCORRECT"
		}

		p.printf("%s Size %4d: %8sms - %s\n", status, r.Size, formatMillis(r.Elapsed, 2), verdict)
	}

	if algorithm == sorting.NameBubble {
		p.bubbleNote()
	}
}

func (p *Printer) printIncorrectPerformance(report *Report) {
	if report.IncorrectPerformance == 0 {
		return
	}

	p.printf("\n%s\n", p.fail.Sprint(p.num.Sprintf("❌ %d of %d performance runs produced unsorted output",
		report.IncorrectPerformance, len(report.Performance))))
}

func (p *Printer) bubbleNote() {
	p.printf("\n%s\n", p.warn.Sprint("⚠️  Note: Bubble sort is O(n²), so time increases quadratically"))
}

// PrintSummary writes the pass/fail totals.
func (p *Printer) PrintSummary(report *Report) {
	p.section("summary")

	p.printf("%s\n", p.num.Sprintf("Total: %d passed, %d failed, %d errored of %d cases in %v",
		report.Passed(), report.Failed(), report.Errored(), report.Total(), report.Elapsed.Round(time.Microsecond)))

	if report.Fingerprint != "" {
		p.printf("Suites fingerprint: %s\n", report.Fingerprint)
	}

	switch {
	case report.Interrupted():
		p.printf("%s\n", p.fail.Sprintf("⛔ Run interrupted: %v", report.Cause))
	case report.AllPassed():
		p.printf("%s\n", p.pass.Sprint("🎉 All tests passed!"))
	default:
		p.printf("%s\n", p.fail.Sprint("⚠️  Some tests failed"))
	}
}

func formatMillis(d time.Duration, precision int) string {
	return fmt.Sprintf("%.*f", precision, float64(d)/float64(time.Millisecond))
}
