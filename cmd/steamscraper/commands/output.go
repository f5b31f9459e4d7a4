package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"steamscraper/internal/record"
	"steamscraper/internal/storefront"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"
)

const noDataMessage = "No data retrieved."

// writeRecord writes `out` as indented JSON, non-ASCII text and markup inside
// values are written as is.
func writeRecord(w io.Writer, out record.Record) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func writeRecordFile(path string, out record.Record) error {
	dir := filepath.Dir(path)
	err := os.MkdirAll(dir, 0777)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return writeAndClose(f, out)
}

// writeAndClose reports a failed close as a failed write, data may only be
// flushed to disk on close.
func writeAndClose(w io.WriteCloser, out record.Record) error {
	err := writeRecord(w, out)
	closeErr := w.Close()
	if err != nil {
		return err
	}
	return closeErr
}

// autoName derives a file name from the store page slug (or "app_<id>"), the app id
// and the language.
func autoName(identifier string, lang storefront.Language) (string, error) {
	storeUrl, err := storefront.ResolveURL(identifier)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%s.json", storeUrl.SafeName(), storeUrl.ID, lang), nil
}

const summaryWidth = 60

func summaryValue(value any) string {
	if value == nil {
		return "-"
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("%d items", v.Len())
	case reflect.Map:
		return fmt.Sprintf("%d fields", v.Len())
	case reflect.String:
		text := v.String()
		if utf8.RuneCountInString(text) > summaryWidth {
			return string([]rune(text)[:summaryWidth]) + "..."
		}
		return text
	}
	return fmt.Sprint(value)
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

func renderSummary(w io.Writer, out record.Record) {
	keys := make([]string, 0, len(out))
	for key := range out {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	t := newTable(w)
	t.AppendHeader(table.Row{"Field", "Value"})
	for _, key := range keys {
		t.AppendRow(table.Row{key, summaryValue(out[key])})
	}
	t.Render()
}
