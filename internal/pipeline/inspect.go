package pipeline

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageReport summarizes the shape of a saved catalog page. It exists to
// diagnose the "no matches found" case: a row count without variable links,
// or a guessed indent that differs from the configured one, points at the
// formatting problem.
type PageReport struct {
	Tables        int
	Rows          int
	VariableLinks int

	// GuessedIndent is the indent width suggested by the raw markup,
	// 0 for single-line rows, -1 when no row fragment was recognized.
	GuessedIndent int
}

var (
	singleLineRowProbe = regexp.MustCompile(`<tr><td><a href="variables/`)
	indentedRowProbe   = regexp.MustCompile(`<tr>\n( +)<td>`)
)

// Inspect parses the page and counts tables, rows and links into the
// variables listing, then guesses the indent from the raw text.
func Inspect(text string) PageReport {
	report := PageReport{GuessedIndent: guessIndent(text)}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return report
	}

	report.Tables = doc.Find("table").Length()
	report.Rows = doc.Find("tr").Length()
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if strings.HasPrefix(href, "variables/") {
			report.VariableLinks++
		}
	})

	return report
}

func guessIndent(text string) int {
	if singleLineRowProbe.MatchString(text) {
		return 0
	}
	if m := indentedRowProbe.FindStringSubmatch(text); m != nil {
		return len(m[1])
	}
	return -1
}
