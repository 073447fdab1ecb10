package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopinsight"
)

var questionRe = regexp.MustCompile(`(?i)^Q[:\-]?\s*(.+)`)

// ExtractFAQs pairs question blocks with the block that follows them.
//
// Paragraphs and list items are scanned in document order. A block whose
// text starts with "Q", optionally followed by ":" or "-", is a question;
// its answer is the text of the next block, even when that block is itself
// a question. A question with no following block gets an empty answer.
func ExtractFAQs(doc *goquery.Document) []shopinsight.FAQ {
	var blocks []string
	doc.Find("p, li").Each(func(_ int, sel *goquery.Selection) {
		blocks = append(blocks, blockText(sel))
	})

	faqs := []shopinsight.FAQ{}
	for i, text := range blocks {
		m := questionRe.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		faq := shopinsight.FAQ{Question: m[1]}
		if i+1 < len(blocks) {
			faq.Answer = blocks[i+1]
		}
		faqs = append(faqs, faq)
	}
	return faqs
}
