// Package markdown renders catalog data as GitHub-flavored Markdown.
package markdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/cpumark"
	"github.com/nao1215/markdown"
)

// cellReplacer keeps multi-line spec values inside a single table cell.
var cellReplacer = strings.NewReplacer("\r\n", "<br>", "\n", "<br>", "|", `\|`)

// Writer outputs catalog entries, matches and spec sheets as Markdown.
type Writer struct {
	output io.Writer
}

// NewWriter creates a Writer that outputs to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{output: w}
}

// WriteCatalog writes entries as a bullet list of links.
func (w *Writer) WriteCatalog(entries []cpumark.CatalogEntry) error {
	md := markdown.NewMarkdown(w.output)
	items := make([]string, len(entries))
	for i, e := range entries {
		items[i] = markdown.Link(e.Name, e.URL)
	}
	md.BulletList(items...)
	return md.Build()
}

// WriteMatches writes a numbered list of matches for query with their
// scores.
func (w *Writer) WriteMatches(query string, matches []cpumark.Match) error {
	md := markdown.NewMarkdown(w.output)
	md.H2(fmt.Sprintf("Matches for %q", query))
	md.PlainText("")

	items := make([]string, len(matches))
	for i, m := range matches {
		items[i] = fmt.Sprintf("%s (%.2f)", markdown.Link(m.Name, m.Entry.URL), m.Score)
	}
	md.OrderedList(items...)
	return md.Build()
}

// WriteDetail writes the spec sheet of one CPU. Unknown values are shown
// as cpumark.UnknownValue.
func (w *Writer) WriteDetail(rec *cpumark.DetailRecord) error {
	md := markdown.NewMarkdown(w.output)
	md.H1(rec.Name)
	md.PlainText("")
	md.PlainText(markdown.Link(rec.URL, rec.URL))
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Spec", "Value"},
		Rows:   escapeRows(cpumark.DetailRows(rec)),
	})
	return md.Build()
}

// WriteComparison writes a side-by-side table with one column per record.
// Missing values are shown as cpumark.MissingValue.
func (w *Writer) WriteComparison(records []*cpumark.DetailRecord) error {
	md := markdown.NewMarkdown(w.output)

	names := make([]string, len(records))
	header := make([]string, 0, len(records)+1)
	header = append(header, "Specification")
	for i, rec := range records {
		names[i] = rec.Name
		header = append(header, escapeCell(rec.Name))
	}

	md.H1(strings.Join(names, " vs "))
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: header,
		Rows:   escapeRows(cpumark.ComparisonRows(records)),
	})
	md.PlainText("")

	links := make([]string, len(records))
	for i, rec := range records {
		links[i] = markdown.Link(rec.Name, rec.URL)
	}
	md.BulletList(links...)
	return md.Build()
}

func escapeRows(rows [][]string) [][]string {
	for _, row := range rows {
		for i, cell := range row {
			row[i] = escapeCell(cell)
		}
	}
	return rows
}

func escapeCell(s string) string {
	return cellReplacer.Replace(s)
}
