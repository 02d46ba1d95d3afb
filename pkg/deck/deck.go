// Package deck turns per-provider results into slide descriptors and
// renders them as a PowerPoint document.
package deck

import (
	"fmt"
	"strings"
	"time"
)

const (
	// TitleLimit caps the prompt excerpt shown on the title slide.
	TitleLimit = 100

	// BodyLimit caps a provider result on its content slide.
	BodyLimit = 3500
)

type RGB struct {
	R, G, B uint8
}

var (
	backgroundDark  = RGB{0x1F, 0x29, 0x37}
	backgroundWhite = RGB{0xFF, 0xFF, 0xFF}

	textLight = RGB{0xF9, 0xFA, 0xFB}
	textMuted = RGB{0x9C, 0xA3, 0xAF}
	textDark  = RGB{0x11, 0x18, 0x27}
)

// Slide is the intermediate representation handed to the renderer.
type Slide struct {
	Background RGB

	Blocks []TextBlock
}

// TextBlock describes one positioned text frame. Position and size are in
// inches on a 10 x 7.5 inch slide.
type TextBlock struct {
	Text string

	Size   int
	Bold   bool
	Mono   bool
	Center bool
	Color  RGB

	X, Y, W, H float64
}

// Section is one provider's contribution to the deck.
type Section struct {
	Title string
	Body  string
}

// Build produces the title slide followed by one content slide per section,
// preserving section order.
func Build(prompt string, sections []Section) []Slide {
	slides := []Slide{
		titleSlide(prompt),
	}

	for _, section := range sections {
		slides = append(slides, contentSlide(section))
	}

	return slides
}

func titleSlide(prompt string) Slide {
	// The ellipsis is appended unconditionally, even for short prompts.
	subtitle := truncate(prompt, TitleLimit) + "..."

	return Slide{
		Background: backgroundDark,

		Blocks: []TextBlock{
			{
				Text:   "PromptDeck",
				Size:   40,
				Bold:   true,
				Center: true,
				Color:  textLight,

				X: 0.5, Y: 2.4, W: 9, H: 1.2,
			},
			{
				Text:   subtitle,
				Size:   18,
				Center: true,
				Color:  textMuted,

				X: 0.5, Y: 3.8, W: 9, H: 1,
			},
		},
	}
}

func contentSlide(section Section) Slide {
	body := section.Body

	if len([]rune(body)) > BodyLimit {
		body = string([]rune(body)[:BodyLimit]) + "\n..."
	}

	return Slide{
		Background: backgroundWhite,

		Blocks: []TextBlock{
			{
				Text:  strings.ToUpper(section.Title),
				Size:  28,
				Bold:  true,
				Color: textDark,

				X: 0.5, Y: 0.3, W: 9, H: 0.8,
			},
			{
				Text:  body,
				Size:  10,
				Mono:  true,
				Color: textDark,

				X: 0.5, Y: 1.2, W: 9, H: 6,
			},
		},
	}
}

// Filename embeds the creation time to avoid collisions between exports.
func Filename(t time.Time) string {
	return fmt.Sprintf("promptdeck-%s.pptx", t.Format("20060102-150405"))
}

func truncate(s string, limit int) string {
	runes := []rune(s)

	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}
