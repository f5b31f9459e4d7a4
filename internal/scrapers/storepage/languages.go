package storepage

import (
	"steamscraper/internal/record"
	"steamscraper/pkg/htmlutil"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// both glyphs are used by the store depending on the locale
const checkmarks = "✔✓"

func supported(cell *goquery.Selection) bool {
	return strings.ContainsAny(cell.Text(), checkmarks)
}

func extractLanguageSupport(doc *goquery.Document) record.Record {
	languages := []record.Record{}

	table := doc.Find("table.game_language_options").First()
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		// header
		if i == 0 {
			return
		}
		cols := row.Find("td")
		if cols.Length() != 4 {
			return
		}
		languages = append(languages, record.Record{
			"language":   htmlutil.StrippedText(cols.Eq(0)),
			"interface":  supported(cols.Eq(1)),
			"full_audio": supported(cols.Eq(2)),
			"subtitles":  supported(cols.Eq(3)),
		})
	})

	return record.Record{"language_support": languages}
}
