package storepage

import (
	"steamscraper/internal/record"
	"steamscraper/pkg/htmlutil"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// lead-ins end with an ascii or a fullwidth colon depending on the locale
var leadInColons = strings.NewReplacer(":", "", "：", "")

func requirementsOf(block *goquery.Selection) record.Record {
	reqs := record.Record{}
	block.Find("ul.bb_ul li").Each(func(_ int, item *goquery.Selection) {
		strong := item.Find("strong").First()
		if strong.Length() == 0 {
			return
		}
		key := leadInColons.Replace(strings.ToLower(htmlutil.StrippedText(strong)))
		value := strings.TrimSpace(strings.ReplaceAll(item.Text(), strong.Text(), ""))
		reqs[key] = value
	})
	return reqs
}

func extractSystemRequirements(doc *goquery.Document) record.Record {
	requirements := record.Record{}
	doc.Find(".game_area_sys_req").Each(func(_ int, block *goquery.Selection) {
		osName := strings.ToLower(block.AttrOr("data-os", "other"))
		reqs := requirementsOf(block)
		if len(reqs) == 0 {
			return
		}
		requirements[osName] = reqs
	})
	return record.Record{"system_requirements": requirements}
}
