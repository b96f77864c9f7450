package api

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"time"

	"github.com/lysyi3m/ai-inside-digest/app/digest"
)

type Generator struct {
	version string
}

func NewGenerator(version string) *Generator {
	return &Generator{version: version}
}

// Run renders the collection as an RSS 2.0 channel, one item per digest,
// newest first.
func (g *Generator) Run(collection *digest.Collection, selfLink string) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	title := "AI Inside Digest"
	description := "Weekly digest of AI adoption inside organizations"
	if latest, ok := collection.Latest(); ok {
		title = latest.Subject
		description = latest.Intro
	}

	g.writeElement(&buf, "title", title, 4)
	g.writeElement(&buf, "link", selfLink, 4)
	g.writeElement(&buf, "description", description, 4)
	buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
		html.EscapeString(selfLink)))

	lastBuildDate := time.Now().UTC()
	if latest, ok := collection.Latest(); ok {
		if parsed, err := time.Parse(digest.DateLayout, latest.Date); err == nil {
			lastBuildDate = parsed
		}
	}
	g.writeElement(&buf, "lastBuildDate", lastBuildDate.Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", fmt.Sprintf("AI-Inside-Digest/%s", g.version), 4)

	for i, post := range collection.Posts {
		// Numbered from the oldest so GUIDs survive later prepends
		g.writeItem(&buf, post, len(collection.Posts)-i, selfLink)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String(), nil
}

func (g *Generator) writeItem(buf *bytes.Buffer, post digest.Digest, sequence int, selfLink string) {
	buf.WriteString("    <item>\n")

	buf.WriteString("      <guid isPermaLink=\"false\">")
	xml.EscapeText(buf, []byte(fmt.Sprintf("digest-%s-%d", post.Date, sequence)))
	buf.WriteString("</guid>\n")

	g.writeElement(buf, "title", fmt.Sprintf("%s (%s)", post.Subject, post.Date), 6)
	g.writeElement(buf, "link", selfLink, 6)
	g.writeElement(buf, "description", post.Intro, 6)

	buf.WriteString("      <content:encoded><![CDATA[")
	buf.WriteString(g.renderBody(post))
	buf.WriteString("]]></content:encoded>\n")

	if published, err := time.Parse(digest.DateLayout, post.Date); err == nil {
		g.writeElement(buf, "pubDate", published.Format(time.RFC1123Z), 6)
	}

	buf.WriteString("    </item>\n")
}

func (g *Generator) renderBody(post digest.Digest) string {
	var body bytes.Buffer

	body.WriteString("<p>" + html.EscapeString(post.Intro) + "</p>")

	if len(post.Items) > 0 {
		body.WriteString("<ul>")
		for _, item := range post.Items {
			body.WriteString(fmt.Sprintf("<li><a href=\"%s\">%s</a>: %s</li>",
				html.EscapeString(item.URL),
				html.EscapeString(item.Headline),
				html.EscapeString(item.Summary)))
		}
		body.WriteString("</ul>")
	}

	if len(post.Metrics) > 0 {
		body.WriteString("<ul>")
		for _, metric := range post.Metrics {
			body.WriteString("<li>" + html.EscapeString(metric) + "</li>")
		}
		body.WriteString("</ul>")
	}

	if post.Takeaway != "" {
		body.WriteString("<p>" + html.EscapeString(post.Takeaway) + "</p>")
	}

	return body.String()
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}
