// Package pofile reads translation catalogs in the subset of the GNU gettext
// PO format served by the Scratch translation server.
//
// Only single-line entries are understood: a line starting with "msgid "
// names the message and a following line starting with "msgstr " carries its
// translation. Continuation lines, escapes, plural forms and comments are
// skipped. Unreadable reports what that subset misses compared to a full
// gettext parser.
package pofile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

const (
	msgidPrefix  = "msgid "
	msgstrPrefix = "msgstr "
)

// Catalog maps a source-language phrase (msgid) to its translation
// (msgstr). Duplicate msgids keep the last translation seen.
type Catalog map[string]string

// Lookup returns the translation for msgid, or "" if it has none.
func (c Catalog) Lookup(msgid string) string {
	return c[msgid]
}

// Parse reads a PO catalog from r.
func Parse(r io.Reader) (Catalog, error) {
	c := make(Catalog)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	pending := ""
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, msgidPrefix):
			pending = lineContent(line, len(msgidPrefix))
		case strings.HasPrefix(line, msgstrPrefix):
			msgstr := lineContent(line, len(msgstrPrefix))
			if pending != "" && msgstr != "" {
				c[pending] = msgstr
				pending = ""
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading PO file near line %d: %w", lineNum+1, err)
	}
	return c, nil
}

// ParseBytes parses an in-memory PO catalog.
func ParseBytes(data []byte) (Catalog, error) {
	return Parse(bytes.NewReader(data))
}

// lineContent returns the value of a keyword line: everything after the
// first strip bytes, trimmed, with one pair of surrounding quotes removed.
//
//	lineContent(`msgid    "the content"  `, 5) == "the content"
func lineContent(line string, strip int) string {
	s := strings.TrimSpace(line[strip:])
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return s
}

// Unreadable parses data with a complete gettext parser and returns, sorted,
// the msgids it finds translated that are missing from c. These are entries
// the line scanner cannot see, typically ones wrapped over several lines.
func Unreadable(data []byte, c Catalog) []string {
	po := gotext.NewPo()
	po.Parse(data)

	var missed []string
	for id, tr := range po.GetDomain().GetTranslations() {
		if id == "" || tr == nil || tr.Trs[0] == "" {
			continue
		}
		if _, ok := c[id]; !ok {
			missed = append(missed, id)
		}
	}
	sort.Strings(missed)
	return missed
}
