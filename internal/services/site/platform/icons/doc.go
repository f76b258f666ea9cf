// Package icons defines the icon identifiers the portfolio content may use.
//
// The catalog maps stable identifiers to inline glyphs so content authors can
// name an icon without dictating presentation. Unknown identifiers fall back
// to a default glyph instead of breaking the page.
package icons
