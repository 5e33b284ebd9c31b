package ui

// helpPagerMsg is sent when the help pager exits
type helpPagerMsg struct {
	err error
}
