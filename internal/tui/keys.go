package tui

// Key bindings.
const (
	keyQuit      = "q"
	keyCtrlC     = "ctrl+c"
	keyEnter     = "enter"
	keySort      = "s"
	keyNextCol   = "tab"
	keyPrevCol   = "shift+tab"
	keyLeft      = "left"
	keyRight     = "right"
	keyH         = "h"
	keyL         = "l"
	keyFirst     = "["
	keyLast      = "]"
	keyPageSize  = "p"
	keyGotoPage  = "g"
	helpText     = "[tab] Column  [s] Sort  [←→/hl] Page  [[ ]] First/Last  [0-9 g] Go to page  [p] Page size  [enter] Select  [q] Quit"
	helpTextList = "[↑↓/jk] Navigate  [enter] Select  [q] Quit"
)
