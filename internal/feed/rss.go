// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed serializes canonical articles into an RSS 2.0 document.
package feed

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/issuefeed/internal/normalize"
	"github.com/pdiddy/issuefeed/pkg/types"
)

const (
	atomNS  = "http://www.w3.org/2005/Atom"
	dcNS    = "http://purl.org/dc/elements/1.1/"
	mediaNS = "http://search.yahoo.com/mrss/"

	// imageMIME is the best-effort static type declared on enclosures;
	// the source does not expose actual image content types.
	imageMIME = "image/jpeg"
)

type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	AtomNS  string     `xml:"xmlns:atom,attr"`
	DCNS    string     `xml:"xmlns:dc,attr"`
	MediaNS string     `xml:"xmlns:media,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language,omitempty"`
	LastBuildDate string    `xml:"lastBuildDate"`
	SelfLink      *atomLink `xml:"atom:link,omitempty"`
	Items         []rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       string          `xml:"title"`
	Link        string          `xml:"link,omitempty"`
	Description string          `xml:"description,omitempty"`
	PubDate     string          `xml:"pubDate,omitempty"`
	Creator     string          `xml:"dc:creator,omitempty"`
	Author      string          `xml:"author,omitempty"`
	GUID        rssGUID         `xml:"guid"`
	Thumbnail   *mediaThumbnail `xml:"media:thumbnail,omitempty"`
	Content     *mediaContent   `xml:"media:content,omitempty"`
	Enclosure   *rssEnclosure   `xml:"enclosure,omitempty"`
}

type rssGUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type mediaThumbnail struct {
	URL string `xml:"url,attr"`
}

type mediaContent struct {
	URL    string `xml:"url,attr"`
	Medium string `xml:"medium,attr"`
}

type rssEnclosure struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
}

// Render serializes articles into a complete RSS 2.0 document, in source
// order. Channel metadata comes from cfg, never from the articles.
// buildTime stamps lastBuildDate and is injected so identical inputs
// render identically in tests.
//
// Optional item elements (link, description, pubDate, creator, image
// media) are emitted only when the article resolved a value for them; an
// entry degrades rather than aborting the document.
func Render(articles []types.Article, cfg types.FeedConfig, buildTime time.Time) ([]byte, error) {
	doc := rssDocument{
		Version: "2.0",
		AtomNS:  atomNS,
		DCNS:    dcNS,
		MediaNS: mediaNS,
		Channel: rssChannel{
			Title:         cfg.Title,
			Link:          cfg.Link,
			Description:   cfg.Description,
			Language:      cfg.Language,
			LastBuildDate: buildTime.UTC().Format("Mon, 02 Jan 2006 15:04:05 -0700"),
		},
	}
	if cfg.SelfLink != "" {
		doc.Channel.SelfLink = &atomLink{Href: cfg.SelfLink, Rel: "self", Type: "application/rss+xml"}
	}

	for _, a := range articles {
		if a.Headline == "" {
			// The normalizer guarantees a headline; anything without
			// one is malformed and is omitted, not fatal.
			continue
		}

		item := rssItem{
			Title:       a.Headline,
			Link:        a.URL,
			Description: a.Summary,
			PubDate:     normalize.RFC822Date(a.PublishedAt),
		}

		if name := a.FirstAuthor(); name != "" {
			item.Creator = name
			item.Author = name
		}

		guid := a.URL
		if guid == "" {
			guid = a.Headline
		}
		item.GUID = rssGUID{
			IsPermaLink: strconv.FormatBool(isHTTPURL(a.URL)),
			Value:       guid,
		}

		if a.ImageURL != "" {
			item.Thumbnail = &mediaThumbnail{URL: a.ImageURL}
			item.Content = &mediaContent{URL: a.ImageURL, Medium: "image"}
			item.Enclosure = &rssEnclosure{URL: a.ImageURL, Type: imageMIME}
		}

		doc.Channel.Items = append(doc.Channel.Items, item)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling feed: %w", err)
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}

// isHTTPURL reports whether u is an absolute web URL; only those are
// advertised as permalinks.
func isHTTPURL(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}
