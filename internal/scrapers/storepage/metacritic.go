package storepage

import (
	"steamscraper/internal/record"
	"steamscraper/pkg/htmlutil"
	"strconv"

	"github.com/PuerkitoBio/goquery"
)

// extractMetacritic always sets the field, nil when the page has no metascore.
// A score that is not an integer is kept as nil instead of dropping the url.
func extractMetacritic(doc *goquery.Document) record.Record {
	block := doc.Find("div#game_area_metascore").First()
	if block.Length() == 0 {
		return record.Record{"metacritic": nil}
	}

	var score any
	scoreNode := block.Find("div.score").First()
	if scoreNode.Length() > 0 {
		parsed, err := strconv.Atoi(htmlutil.StrippedText(scoreNode))
		if err == nil {
			score = parsed
		}
	}

	return record.Record{"metacritic": record.Record{
		"score": score,
		"url":   attrOrNil(block.Find("a"), "href"),
	}}
}
