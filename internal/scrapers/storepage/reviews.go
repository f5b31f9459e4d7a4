package storepage

import (
	"steamscraper/internal/record"
	"steamscraper/pkg/htmlutil"
	"steamscraper/pkg/textutil"

	"github.com/PuerkitoBio/goquery"
)

const (
	reviewsRecent = "recent"
	reviewsAll    = "all"
)

var recentKeywords = []string{
	"recent",
	"最近",
	"récentes",
	"recientes",
	"kürzlich",
	"недавние",
}

// extractReviews keeps one summary per classification, a later row overwrites an
// earlier one with the same classification.
func extractReviews(doc *goquery.Document) record.Record {
	reviews := record.Record{}
	doc.Find(".user_reviews_summary_row").Each(func(_ int, row *goquery.Selection) {
		subtitle := row.Find("div.subtitle").First()
		if subtitle.Length() == 0 {
			return
		}

		key := reviewsAll
		if textutil.MatchLabel(htmlutil.StrippedText(subtitle), recentKeywords) {
			key = reviewsRecent
		}
		reviews[key] = record.Record{
			"summary": textOrNil(row.Find("span.game_review_summary")),
			"tooltip": row.AttrOr("data-tooltip-html", ""),
		}
	})
	return record.Record{"reviews": reviews}
}
