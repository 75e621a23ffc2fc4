package external

import "encoding/xml"

// NewsFeed represents an RSS search feed from the news aggregator.
type NewsFeed struct {
	XMLName xml.Name    `xml:"rss"`
	Channel NewsChannel `xml:"channel"`
}

// NewsChannel is the channel element of the feed.
type NewsChannel struct {
	Title string     `xml:"title"`
	Items []NewsItem `xml:"item"`
}

// NewsItem is a single feed entry.
type NewsItem struct {
	Title       string     `xml:"title"`
	Link        string     `xml:"link"`
	Description string     `xml:"description"`
	PubDate     string     `xml:"pubDate"`
	Source      NewsSource `xml:"source"`
}

// NewsSource carries the publisher name of a feed entry.
type NewsSource struct {
	URL  string `xml:"url,attr"`
	Name string `xml:",chardata"`
}
