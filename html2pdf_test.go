package code2pdf

import (
	"strings"
	"testing"
)

func TestBuildPrintOptions_Defaults(t *testing.T) {
	t.Parallel()

	opts := buildPrintOptions(nil)

	if *opts.PaperWidth != 8.27 || *opts.PaperHeight != 11.69 {
		t.Errorf("paper = %vx%v, want A4 8.27x11.69", *opts.PaperWidth, *opts.PaperHeight)
	}
	if *opts.MarginTop != DefaultMargin || *opts.MarginBottom != DefaultMargin {
		t.Errorf("margins = %v/%v, want %v", *opts.MarginTop, *opts.MarginBottom, DefaultMargin)
	}
	if !opts.PrintBackground {
		t.Error("PrintBackground should be enabled")
	}
	if opts.DisplayHeaderFooter {
		t.Error("no footer requested, DisplayHeaderFooter should be false")
	}
}

func TestBuildPrintOptions_PageSettings(t *testing.T) {
	t.Parallel()

	opts := buildPrintOptions(&pdfOptions{
		Page: &PageSettings{Size: PageSizeLetter, Orientation: OrientationLandscape, Margin: 1.0},
	})

	// Landscape swaps letter dimensions
	if *opts.PaperWidth != 11 || *opts.PaperHeight != 8.5 {
		t.Errorf("paper = %vx%v, want landscape letter 11x8.5", *opts.PaperWidth, *opts.PaperHeight)
	}
	if *opts.MarginLeft != 1.0 || *opts.MarginRight != 1.0 {
		t.Errorf("side margins = %v/%v, want 1.0", *opts.MarginLeft, *opts.MarginRight)
	}
}

func TestBuildPrintOptions_FooterBumpsBottomMargin(t *testing.T) {
	t.Parallel()

	opts := buildPrintOptions(&pdfOptions{Footer: &Footer{ShowPageNumber: true}})

	if !opts.DisplayHeaderFooter {
		t.Fatal("DisplayHeaderFooter should be true with a footer")
	}
	if opts.HeaderTemplate != "<span></span>" {
		t.Errorf("header template = %q, want empty span", opts.HeaderTemplate)
	}
	want := DefaultMargin + footerMarginBonus
	if *opts.MarginBottom != want {
		t.Errorf("bottom margin = %v, want %v", *opts.MarginBottom, want)
	}
	if *opts.MarginTop != DefaultMargin {
		t.Errorf("top margin = %v, want %v (footer must not affect it)", *opts.MarginTop, DefaultMargin)
	}
}

func TestPaperDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       *PageSettings
		wantWidth  float64
		wantHeight float64
	}{
		{"a4 portrait", &PageSettings{Size: PageSizeA4, Orientation: OrientationPortrait}, 8.27, 11.69},
		{"a4 landscape", &PageSettings{Size: PageSizeA4, Orientation: OrientationLandscape}, 11.69, 8.27},
		{"letter portrait", &PageSettings{Size: PageSizeLetter}, 8.5, 11},
		{"legal portrait", &PageSettings{Size: PageSizeLegal}, 8.5, 14},
		{"uppercase size", &PageSettings{Size: "LETTER"}, 8.5, 11},
		{"unknown size falls back to a4", &PageSettings{Size: "tabloid"}, 8.27, 11.69},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, h := paperDimensions(tt.page)
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("paperDimensions() = %vx%v, want %vx%v", w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestBuildFooterTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		footer       *Footer
		wantContains []string
		wantEmpty    bool
	}{
		{
			name:      "nil footer",
			footer:    nil,
			wantEmpty: true,
		},
		{
			name:      "empty footer",
			footer:    &Footer{},
			wantEmpty: true,
		},
		{
			name:         "page number only",
			footer:       &Footer{ShowPageNumber: true},
			wantContains: []string{`class="pageNumber"`, `class="totalPages"`, "text-align: right"},
		},
		{
			name:         "text only left",
			footer:       &Footer{Text: "Confidential", Position: "left"},
			wantContains: []string{"Confidential", "text-align: left"},
		},
		{
			name:         "text and page number center",
			footer:       &Footer{Text: "Draft", ShowPageNumber: true, Position: "center"},
			wantContains: []string{"Draft", `class="pageNumber"`, " - ", "text-align: center"},
		},
		{
			name:         "text is escaped",
			footer:       &Footer{Text: "<b>bold</b>"},
			wantContains: []string{"&lt;b&gt;bold&lt;/b&gt;"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := buildFooterTemplate(tt.footer)
			if tt.wantEmpty {
				if got != "<span></span>" {
					t.Errorf("buildFooterTemplate() = %q, want empty span", got)
				}
				return
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("buildFooterTemplate() = %q, want substring %q", got, want)
				}
			}
		})
	}
}

func TestRodConverter_Close(t *testing.T) {
	t.Parallel()

	// Close without ever connecting must be a no-op.
	c := newRodConverter(defaultTimeout)
	if err := c.Close(); err != nil {
		t.Errorf("Close() on unconnected converter = %v", err)
	}
}
