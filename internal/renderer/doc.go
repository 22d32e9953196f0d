// Package renderer paints the component tree onto a terminal backend.
//
// Widgets draw through a Surface, which clips every write to the part of
// the widget that is visible. Paint walks the showing windows from the
// bottom of the stack to the top, so popups overdraw the windows beneath
// them, and then places the cursor.
package renderer
