// Package goquery implements cpumark.Extractor for cpubenchmark.net pages
// using CSS selectors from github.com/PuerkitoBio/goquery.
//
// The site's markup is undocumented and changes without notice, so
// extraction is best-effort: malformed rows and fragments are skipped and
// only a missing catalog table or page footer fails a call.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cpumark"
)

// DefaultBaseURL is the site root detail URLs are built from.
const DefaultBaseURL = "https://www.cpubenchmark.net/"

// Labels of values extracted outside the description block.
const (
	MultithreadRatingKey  = "Multithread Rating:"
	SingleThreadRatingKey = "Single Thread Rating:"
	FirstSeenKey          = "First Seen:"
)

const (
	catalogSelector     = "table.cpulist"
	descriptionSelector = "div.left-desc-cpu"
	ratingSelector      = "div.right-desc"
	footerSelector      = "div.desc-foot"

	lookupSegment    = "cpu_lookup"
	canonicalSegment = "cpu"

	firstSeenLabel = "CPU First Seen on Charts:"
	descriptionKey = "Description:"
)

var _ cpumark.Extractor = (*Extractor)(nil)

// Extractor parses cpubenchmark.net list and detail pages.
type Extractor struct {
	baseURL  string
	baseHost string
	basePath string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithBaseURL sets the site root prepended to catalog links.
// Defaults to DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(e *Extractor) {
		e.baseURL = u
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(e)
	}
	if !strings.HasSuffix(e.baseURL, "/") {
		e.baseURL += "/"
	}
	if u, err := url.Parse(e.baseURL); err == nil {
		e.baseHost = siteHost(u.Host)
		e.basePath = u.Path
	}
	return e
}

// ExtractCatalog reads one entry per body row of the CPU list table.
// Rows without a usable link in their first cell are skipped.
func (e *Extractor) ExtractCatalog(html string) ([]cpumark.CatalogEntry, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	table := doc.Find(catalogSelector).First()
	if table.Length() == 0 {
		return nil, cpumark.Errorf(cpumark.EEXTRACT, "cpu list table not found")
	}

	var entries []cpumark.CatalogEntry
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		if entry, ok := e.catalogEntry(row); ok {
			entries = append(entries, entry)
		}
	})

	return entries, nil
}

func (e *Extractor) catalogEntry(row *goquery.Selection) (cpumark.CatalogEntry, bool) {
	cell := row.ChildrenFiltered("td").First()
	link := cell.Find("a").First()

	href, exists := link.Attr("href")
	if !exists {
		return cpumark.CatalogEntry{}, false
	}
	url, ok := e.detailURL(href)
	if !ok {
		return cpumark.CatalogEntry{}, false
	}

	name := strings.TrimSpace(link.Text())
	if name == "" {
		name = strings.TrimSpace(cell.Text())
	}
	if name == "" {
		return cpumark.CatalogEntry{}, false
	}

	return cpumark.CatalogEntry{Name: name, URL: url}, true
}

// detailURL rewrites a catalog href to the canonical detail page URL under
// the base URL. Absolute links to the same site are accepted whatever
// their scheme or "www." prefix; links to other sites are rejected.
func (e *Extractor) detailURL(href string) (string, bool) {
	href = strings.TrimSpace(href)
	if strings.HasPrefix(href, e.baseURL) {
		href = strings.TrimPrefix(href, e.baseURL)
	} else if strings.Contains(href, "://") || strings.HasPrefix(href, "//") {
		u, err := url.Parse(href)
		if err != nil || u.Host == "" || siteHost(u.Host) != e.baseHost {
			return "", false
		}
		href = strings.TrimPrefix(u.RequestURI(), e.basePath)
	}
	href = strings.TrimPrefix(href, "/")
	if href == "" {
		return "", false
	}
	return e.baseURL + strings.ReplaceAll(href, lookupSegment, canonicalSegment), true
}

// siteHost returns host lowercased without a leading "www.".
func siteHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}

// ExtractDetail builds the record for entry from its detail page. Ratings
// come first, then description specs in document order, then the date the
// CPU first appeared on the charts.
func (e *Extractor) ExtractDetail(entry cpumark.CatalogEntry, html string) (*cpumark.DetailRecord, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	footer := doc.Find(footerSelector)
	if footer.Length() == 0 {
		return nil, cpumark.Errorf(cpumark.EEXTRACT, "detail page footer not found for %s", entry.URL)
	}

	var details cpumark.Details

	rating := outerHTML(doc.Find(ratingSelector))
	details.Add(MultithreadRatingKey, ratingValue(rating, "Multithread Rating"))
	details.Add(SingleThreadRatingKey, ratingValue(rating, "Single Thread Rating"))

	for _, fragment := range strings.Split(outerHTML(doc.Find(descriptionSelector)), "<strong>") {
		label, value, ok := splitLabel(fragment)
		if !ok {
			continue
		}
		label = plainText(label)
		if label == "" {
			continue
		}
		key := cpumark.NormalizeKey(label)
		if key == descriptionKey {
			continue
		}
		details.Add(key, cleanValue(value))
	}

	var firstSeen string
	if _, rest, found := strings.Cut(outerHTML(footer), firstSeenLabel); found {
		if _, value, ok := splitLabel(rest); ok {
			firstSeen = cleanValue(value)
		}
	}
	details.Add(FirstSeenKey, firstSeen)

	return &cpumark.DetailRecord{
		Name:    entry.Name,
		URL:     entry.URL,
		Details: details,
	}, nil
}

// splitLabel separates "Label</strong> value</p>" into label and value.
func splitLabel(fragment string) (label, value string, ok bool) {
	label, rest, ok := strings.Cut(fragment, "</strong>")
	if !ok {
		return "", "", false
	}
	value, _, _ = strings.Cut(strings.TrimLeft(rest, " "), "</p>")
	return label, value, true
}

// ratingValue reads the element text following a rating label, e.g.
// `Multithread Rating</div><div style="...">12345</div>`.
func ratingValue(block, label string) string {
	_, rest, ok := strings.Cut(block, label+"</div>")
	if !ok {
		return ""
	}
	_, rest, ok = strings.Cut(rest, `">`)
	if !ok {
		return ""
	}
	value, _, _ := strings.Cut(rest, "</div>")
	return cleanValue(value)
}

var breakReplacer = strings.NewReplacer(
	"<br>", "\n",
	"<br/>", "\n",
	"<br />", "\n",
	"</br>", "",
)

func cleanValue(value string) string {
	return plainText(strings.TrimPrefix(value, ": "))
}

// plainText turns a rendered markup fragment into plain text. Line breaks
// become newlines, remaining tags are dropped and entities are decoded.
func plainText(s string) string {
	s = breakReplacer.Replace(s)
	if strings.ContainsAny(s, "<&") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
			s = doc.Find("body").Text()
		}
	}
	return strings.TrimSpace(s)
}

// outerHTML renders every element of sel, concatenated.
func outerHTML(sel *goquery.Selection) string {
	var b strings.Builder
	sel.Each(func(_ int, s *goquery.Selection) {
		html, err := goquery.OuterHtml(s)
		if err != nil {
			return
		}
		b.WriteString(html)
	})
	return b.String()
}

func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cpumark.Errorf(cpumark.EEXTRACT, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
