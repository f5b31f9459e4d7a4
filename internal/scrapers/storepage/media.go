package storepage

import (
	"steamscraper/internal/record"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func emptyMedia() record.Record {
	return record.Record{
		"videos":      []record.Record{},
		"screenshots": []string{},
	}
}

// thumbnail finds the `img` inside the thumbnail node of a highlight video, ids
// are compared directly so odd characters in them never reach a selector.
func thumbnail(doc *goquery.Document, videoId string) any {
	thumbId := "thumb_movie_" + videoId
	thumb := doc.Find("div[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("id", "") == thumbId
	}).First()
	if thumb.Length() == 0 {
		return nil
	}
	return attrOrNil(thumb.Find("img"), "src")
}

func extractMedia(doc *goquery.Document) record.Record {
	videos := []record.Record{}
	doc.Find(".highlight_player_item.highlight_movie").Each(func(_ int, video *goquery.Selection) {
		videoId := strings.Replace(video.AttrOr("id", ""), "highlight_movie_", "", 1)
		videos = append(videos, record.Record{
			"title":       video.AttrOr("data-video-title", ""),
			"thumbnail":   thumbnail(doc, videoId),
			"webm_source": video.AttrOr("data-webm-source", ""),
			"mp4_source":  video.AttrOr("data-mp4-source", ""),
		})
	})

	screenshots := []string{}
	doc.Find("a.highlight_screenshot_link").Each(func(_ int, link *goquery.Selection) {
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		screenshots = append(screenshots, href)
	})

	return record.Record{
		"media": record.Record{
			"videos":      videos,
			"screenshots": screenshots,
		},
	}
}
