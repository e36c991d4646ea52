package comparison

import (
	"context"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromeBackend prints HTML through a headless Chrome instance started
// per call. Each print gets its own browser so a crashed render cannot
// poison later requests.
type ChromeBackend struct {
	execPath string // optional chrome binary override
}

func NewChromeBackend(execPath string) *ChromeBackend {
	return &ChromeBackend{execPath: execPath}
}

// A4 paper in inches; Chrome rotates it when Landscape is set.
const (
	a4WidthIn  = 8.27
	a4HeightIn = 11.69
)

func (b *ChromeBackend) PrintHTML(ctx context.Context, html string) ([]byte, error) {
	opts := chromedp.DefaultExecAllocatorOptions[:]
	if b.execPath != "" {
		opts = append(opts, chromedp.ExecPath(b.execPath))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithLandscape(true).
				WithPaperWidth(a4WidthIn).
				WithPaperHeight(a4HeightIn).
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		// chromedp wraps the deadline in its own error; surface the
		// context cause so callers can tell a timeout apart.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return pdf, nil
}
