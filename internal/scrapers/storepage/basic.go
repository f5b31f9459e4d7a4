package storepage

import (
	"steamscraper/internal/record"
	"steamscraper/pkg/htmlutil"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// everything in the full description after this marker is a promotion that has
// nothing to do with the product
const promoMarker = "领取专属道具"

// textOrNil returns the stripped text of the first node of `sel`, or nil if there
// is no such node.
func textOrNil(sel *goquery.Selection) any {
	if sel.Length() == 0 {
		return nil
	}
	return htmlutil.StrippedText(sel.First())
}

// attrOrNil returns an attribute of the first node of `sel`, or nil if there is no
// node or it does not carry the attribute.
func attrOrNil(sel *goquery.Selection, name string) any {
	if sel.Length() == 0 {
		return nil
	}
	value, ok := sel.First().Attr(name)
	if !ok {
		return nil
	}
	return value
}

func extractTitle(doc *goquery.Document) record.Record {
	return record.Record{
		"title":        textOrNil(doc.Find("div.apphub_AppName")),
		"header_image": attrOrNil(doc.Find("img.game_header_image_full"), "src"),
	}
}

func extractDescriptions(doc *goquery.Document) record.Record {
	out := record.Record{
		"short_description": textOrNil(doc.Find("div.game_description_snippet")),
		"full_description":  nil,
	}

	description := doc.Find("div#game_area_description").First()
	if description.Length() == 0 {
		return out
	}
	description = description.Clone()
	description.Find(".game_area_description_section_title, .responsive_button").Remove()

	text := htmlutil.StrippedText(description)
	if cutoff := strings.Index(text, promoMarker); cutoff >= 0 {
		text = text[:cutoff]
	}
	out["full_description"] = strings.TrimSpace(text)
	return out
}
