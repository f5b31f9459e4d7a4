package storepage

import (
	"steamscraper/internal/record"
	"steamscraper/pkg/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

const (
	// PriceFree is the price of a product with a purchase block but no price in it.
	PriceFree = "Free to Play"
	// PriceUnavailable is the price of a product that cannot be bought at all.
	PriceUnavailable = "N/A"
)

// extractPrice picks exactly one of: the plain price, the discounted and original
// price pair, PriceFree or PriceUnavailable, in that order.
func extractPrice(doc *goquery.Document) record.Record {
	purchase := doc.Find("div.game_purchase_action").First()
	if purchase.Length() == 0 {
		return record.Record{"price": PriceUnavailable}
	}

	price := purchase.Find("div.game_purchase_price").First()
	if price.Length() > 0 {
		return record.Record{"price": htmlutil.StrippedText(price)}
	}

	discount := purchase.Find("div.discount_block").First()
	if discount.Length() > 0 {
		return record.Record{"price": record.Record{
			"discount_price": textOrNil(discount.Find("div.discount_final_price")),
			"original_price": textOrNil(discount.Find("div.discount_original_price")),
		}}
	}

	return record.Record{"price": PriceFree}
}

func extractDlcs(doc *goquery.Document) record.Record {
	dlcs := []record.Record{}
	doc.Find(".game_area_dlc_row").Each(func(_ int, row *goquery.Selection) {
		var price any = PriceUnavailable
		priceNode := row.Find("div.game_purchase_price").First()
		if priceNode.Length() == 0 {
			priceNode = row.Find("div.discount_final_price").First()
		}
		if priceNode.Length() > 0 {
			price = htmlutil.StrippedText(priceNode)
		}

		dlcs = append(dlcs, record.Record{
			"name":  textOrNil(row.Find(".game_area_dlc_name")),
			"price": price,
		})
	})
	return record.Record{"dlcs": dlcs}
}
