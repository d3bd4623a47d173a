package browser

// Session is the minimal surface the pipeline needs from a rendered browser
// page. Adapters and the incremental loader depend on this interface so the
// automation layer can be swapped for a fake in tests.
type Session interface {
	//LoadPage navigates to url and returns the current DOM HTML
	LoadPage(url string) (string, error)

	//HTML returns the current DOM HTML without navigating
	HTML() (string, error)

	//VisibleText returns the visible text of the page body
	VisibleText() (string, error)

	//CurrentHeight returns the page content height in pixels
	CurrentHeight() (int, error)

	//ScrollToBottom scrolls to the bottom of the page
	ScrollToBottom() error

	//ClickIfPresent clicks the first visible element matching selector.
	//Best-effort: absence is not an error.
	ClickIfPresent(selector string) bool

	//CurrentURL returns the page's current address
	CurrentURL() string
}
