package storepage

import (
	"steamscraper/internal/record"
	"steamscraper/pkg/htmlutil"
	"steamscraper/pkg/textutil"

	"github.com/PuerkitoBio/goquery"
)

// row labels are normalized with textutil.NormalizeLabel before matching
var (
	developerKeywords = []string{
		"developer",
		"开发者",
		"開發者",
		"開発元",
		"entwickler",
		"développeur",
		"desarrollador",
		"разработчик",
	}
	publisherKeywords = []string{
		"publisher",
		"发行商",
		"發行商",
		"パブリッシャー",
		"éditeur",
		"editor",
		"издатель",
	}
)

// devRow returns the linked name of a developer or publisher row, rows without a
// link fall back to the text of the summary.
func devRow(summary *goquery.Selection) record.Record {
	link := summary.Find("a").First()
	if link.Length() == 0 {
		return record.Record{
			"name": htmlutil.StrippedText(summary),
			"link": nil,
		}
	}
	return record.Record{
		"name": htmlutil.StrippedText(link),
		"link": attrOrNil(link, "href"),
	}
}

func extractDetails(doc *goquery.Document) record.Record {
	out := record.Record{}

	details := doc.Find("div.glance_ctn").First()
	if details.Length() == 0 {
		return out
	}

	details.Find("div.dev_row").Each(func(_ int, row *goquery.Selection) {
		subtitle := row.Find("div.subtitle").First()
		if subtitle.Length() == 0 {
			return
		}
		summary := row.Find("div.summary").First()
		if summary.Length() == 0 {
			return
		}

		label := htmlutil.StrippedText(subtitle)
		switch {
		case textutil.MatchLabel(label, developerKeywords):
			out["developer"] = devRow(summary)
		case textutil.MatchLabel(label, publisherKeywords):
			out["publisher"] = devRow(summary)
		}
	})

	releaseDate := details.Find("div.release_date").First()
	if releaseDate.Length() > 0 {
		out["release_date"] = textOrNil(releaseDate.Find("div.date"))
	}

	return out
}
