package ui

// BrowserSelectedMsg asks the host to open a demo. Section is empty when the
// demo was chosen by id.
type BrowserSelectedMsg struct {
	Demo    string
	Section string
}

// BrowserCancelledMsg is sent when the browser is dismissed.
type BrowserCancelledMsg struct{}

// DemoClosedMsg is sent after the demo has been torn down and the browser
// should come back.
type DemoClosedMsg struct {
	Demo string
}
