// Package key normalises raw terminal key and mouse events into the
// canonical token vocabulary the rest of gitrsrc dispatches on: a
// single printable rune, a named special (<cr>, <tab>, <esc>, ...), a
// control-modified letter (<c-x>), or a pointer event (<lclick>,
// <rclick>, <scroll-up>, <scroll-down>).
package key
