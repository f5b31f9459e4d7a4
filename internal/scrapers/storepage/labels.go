package storepage

import (
	"steamscraper/internal/record"
	"steamscraper/pkg/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

func textsOf(sel *goquery.Selection) []string {
	out := []string{}
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, htmlutil.StrippedText(s))
	})
	return out
}

func extractTags(doc *goquery.Document) record.Record {
	return record.Record{"tags": textsOf(doc.Find(".glance_tags.popular_tags a.app_tag"))}
}

func extractFeatures(doc *goquery.Document) record.Record {
	return record.Record{"features": textsOf(doc.Find(".game_area_details_specs_ctn .label"))}
}

func extractContentDescriptors(doc *goquery.Document) record.Record {
	descriptors := doc.Find("div.game_rating_descriptors").First()
	if descriptors.Length() == 0 {
		return record.Record{"content_descriptors": []string{}}
	}
	return record.Record{"content_descriptors": htmlutil.StrippedStrings(descriptors)}
}
