// Package listview provides the scrolling card list used as the responsive fallback of
// the data table on narrow terminals.
//
// Only the rows inside the viewport are rendered, keeping the selected item visible as the
// user moves through it with up/down, j/k, pgup/pgdown and home/end.
package listview
