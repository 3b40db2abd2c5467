package docexport

import (
	"fmt"
	"strings"
)

// theme groups the presentation choices keyed by content type.
type theme struct {
	Name              string
	Accent            Color
	BannerTitle       string
	SummaryHeading    string
	TranscriptHeading string
}

// themeFor maps a content-type tag to its theme. The mapping is total:
// unknown or empty tags resolve to the default theme, never an error.
func themeFor(contentType string) theme {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case ContentTypeMeeting:
		return theme{
			Name:              "meeting",
			Accent:            Color{R: 25, G: 103, B: 210},
			BannerTitle:       "Meeting Notes",
			SummaryHeading:    "Summary",
			TranscriptHeading: "Transcript",
		}
	case ContentTypeLecture:
		return theme{
			Name:              "lecture",
			Accent:            Color{R: 14, G: 124, B: 98},
			BannerTitle:       "Lecture Summary",
			SummaryHeading:    "Key Points",
			TranscriptHeading: "Transcript",
		}
	case ContentTypeInterview, ContentTypePodcast:
		return theme{
			Name:              "conversation",
			Accent:            Color{R: 149, G: 55, B: 176},
			BannerTitle:       "Conversation Summary",
			SummaryHeading:    "Highlights",
			TranscriptHeading: "Full Conversation",
		}
	default:
		return theme{
			Name:              "default",
			Accent:            Color{R: 73, G: 80, B: 87},
			BannerTitle:       "Transcription Summary",
			SummaryHeading:    "Summary",
			TranscriptHeading: "Transcript",
		}
	}
}

// bannerHeight is fixed: one title line, one metadata line, padding.
const bannerHeight = 64.0

// renderBanner draws the themed header banner on the first page: an
// accent-filled band with the document title and a metadata line.
func (rc *renderContext) renderBanner(ls *layoutState, th theme, meta Metadata) error {
	accent := th.Accent
	ls.add(Block{
		Kind:  BlockRect,
		Frame: Frame{X: ls.left, Y: ls.y, W: ls.width, H: bannerHeight},
		Fill:  &accent,
	})

	titleSize := rc.style.H1Size
	ls.add(Block{
		Kind:  BlockText,
		Frame: Frame{X: ls.left + 14, Y: ls.y + 12, W: ls.width - 28, H: titleSize * lineHeightFactor},
		Runs: []Run{{
			Key:   "banner.title",
			Text:  th.BannerTitle,
			Font:  FontBold,
			Size:  titleSize,
			Color: colorPaper,
		}},
	})

	ls.add(Block{
		Kind:  BlockText,
		Frame: Frame{X: ls.left + 14, Y: ls.y + 12 + titleSize*lineHeightFactor + 6, W: ls.width - 28, H: rc.style.SmallSize * lineHeightFactor},
		Runs: []Run{{
			Key:   "banner.meta",
			Text:  rc.metadataLine(meta),
			Font:  FontRegular,
			Size:  rc.style.SmallSize,
			Color: colorPaper,
		}},
	})

	ls.y += bannerHeight + rc.style.HeadingSpacing
	return nil
}

// metadataLine joins the non-empty metadata fields with separators.
func (rc *renderContext) metadataLine(meta Metadata) string {
	parts := make([]string, 0, 3)
	if meta.FileName != "" {
		parts = append(parts, meta.FileName)
	}
	if meta.ModelID != "" {
		parts = append(parts, meta.ModelID)
	}
	if !meta.GeneratedAt.IsZero() {
		parts = append(parts, meta.GeneratedAt.Format(rc.dateLayout))
	}
	return strings.Join(parts, "  ·  ")
}

// renderSectionTitle draws a themed section heading with an accent
// underline.
func (rc *renderContext) renderSectionTitle(ls *layoutState, title string, th theme, key string) error {
	size := rc.style.H2Size
	h := size * lineHeightFactor
	ls.ensure(h + 4 + rc.style.HeadingSpacing)

	ls.add(Block{
		Kind:  BlockText,
		Frame: Frame{X: ls.left, Y: ls.y, W: ls.width, H: h},
		Runs: []Run{{
			Key:   key,
			Text:  title,
			Font:  FontBold,
			Size:  size,
			Color: th.Accent,
		}},
	})
	ls.y += h + 3

	accent := th.Accent
	ls.add(Block{
		Kind:        BlockLine,
		Frame:       Frame{X: ls.left, Y: ls.y, W: ls.width, H: 0},
		Stroke:      &accent,
		StrokeWidth: 1.5,
	})
	ls.y += 1 + rc.style.HeadingSpacing
	return nil
}

// renderTranscript lays out plain transcript text as paragraphs split
// on blank lines. Lines are pre-wrapped by measurement so long
// paragraphs paginate cleanly.
func (rc *renderContext) renderTranscript(transcript string, ls *layoutState, path string) error {
	normalized := preprocessMarkdown(transcript)
	lineH := rc.style.BodySize * lineHeightFactor

	for pi, para := range strings.Split(normalized, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		lines, err := wrapText(rc.meas, para, FontRegular, rc.style.BodySize, ls.width)
		if err != nil {
			return err
		}

		// Emit page-sized groups of wrapped lines so a long paragraph
		// flows across breaks instead of overflowing one page.
		li := 0
		for li < len(lines) {
			ls.ensure(lineH)
			fit := int((ls.maxY() - ls.y) / lineH)
			if fit < 1 {
				fit = 1
			}
			if rest := len(lines) - li; fit > rest {
				fit = rest
			}

			group := lines[li : li+fit]
			runs := make([]Run, 0, len(group)*2)
			for gi, line := range group {
				key := fmt.Sprintf("%s.%d.%d", path, pi, li+gi)
				runs = append(runs, Run{
					Key:   key,
					Text:  line,
					Font:  FontRegular,
					Size:  rc.style.BodySize,
					Color: rc.style.TextColor,
				})
				if gi < len(group)-1 {
					runs = append(runs, Run{
						Key:       key + ".br",
						Font:      FontRegular,
						Size:      rc.style.BodySize,
						Color:     rc.style.TextColor,
						LineBreak: true,
					})
				}
			}
			h := float64(len(group)) * lineH
			ls.add(Block{
				Kind:  BlockText,
				Frame: Frame{X: ls.left, Y: ls.y, W: ls.width, H: h},
				Runs:  runs,
			})
			ls.y += h
			li += fit
		}
		ls.y += rc.style.ParagraphSpacing
	}
	return nil
}

// applyFooters stamps every page with the file name and page numbering.
// Runs after pagination because the total is part of the footer text.
func (rc *renderContext) applyFooters(doc *Document, meta Metadata) {
	total := len(doc.Pages)
	y := PageHeight - MarginBottom + 16
	h := rc.style.SmallSize * lineHeightFactor

	for i := range doc.Pages {
		page := &doc.Pages[i]
		if meta.FileName != "" {
			page.Blocks = append(page.Blocks, Block{
				Kind:  BlockText,
				Frame: Frame{X: MarginLeft, Y: y, W: ContentWidth / 2, H: h},
				Runs: []Run{{
					Key:   fmt.Sprintf("footer.%d.file", i),
					Text:  meta.FileName,
					Font:  FontRegular,
					Size:  rc.style.SmallSize,
					Color: rc.style.MutedColor,
				}},
			})
		}
		page.Blocks = append(page.Blocks, Block{
			Kind:  BlockText,
			Frame: Frame{X: MarginLeft + ContentWidth/2, Y: y, W: ContentWidth / 2, H: h},
			Align: AlignRight,
			Runs: []Run{{
				Key:   fmt.Sprintf("footer.%d.page", i),
				Text:  fmt.Sprintf("Page %d of %d", page.Number, total),
				Font:  FontRegular,
				Size:  rc.style.SmallSize,
				Color: rc.style.MutedColor,
			}},
		})
	}
}
