package deck

import (
	"bytes"
	"strings"

	"baliance.com/gooxml/color"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/presentation"
	"baliance.com/gooxml/schema/soo/dml"
)

const (
	slideWidth  = 10 * measurement.Inch
	slideHeight = 7.5 * measurement.Inch
)

// Render serializes slide descriptors into PPTX bytes.
func Render(slides []Slide) ([]byte, error) {
	ppt := presentation.New()

	for _, s := range slides {
		slide := ppt.AddSlide()

		// Full-bleed rectangle behind the text frames.
		bg := slide.AddTextBox()
		bg.Properties().SetPosition(0, 0)
		bg.Properties().SetSize(slideWidth, slideHeight)
		bg.Properties().SetSolidFill(rgb(s.Background))
		bg.AddParagraph()

		for _, block := range s.Blocks {
			tb := slide.AddTextBox()
			tb.Properties().SetPosition(inches(block.X), inches(block.Y))
			tb.Properties().SetSize(inches(block.W), inches(block.H))

			for _, line := range strings.Split(block.Text, "\n") {
				para := tb.AddParagraph()

				if block.Center {
					para.Properties().SetAlign(dml.ST_TextAlignTypeCtr)
				}

				run := para.AddRun()
				run.SetText(line)

				props := run.Properties()
				props.SetSize(measurement.Distance(block.Size) * measurement.Point)
				props.SetSolidFill(rgb(block.Color))

				if block.Bold {
					props.SetBold(true)
				}

				if block.Mono {
					props.SetFont("Courier New")
				}
			}
		}
	}

	var buf bytes.Buffer

	if err := ppt.Save(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func inches(v float64) measurement.Distance {
	return measurement.Distance(v) * measurement.Inch
}

func rgb(c RGB) color.Color {
	return color.RGB(c.R, c.G, c.B)
}
