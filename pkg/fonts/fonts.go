// Package fonts names the font stacks used in rendered SVG text.
//
// Fonts are referenced by family, not embedded; viewers without the
// handwriting font fall back along the stack.
package fonts

// FontFamily is the CSS font-family name of the xkcd-script handwriting font
// (https://github.com/ipython/xkcd-font).
const FontFamily = "xkcd Script"

// FallbackFontFamily is the stack used by the hand-drawn style.
const FallbackFontFamily = `'xkcd Script', 'Comic Neue', 'Comic Sans MS', 'Bradley Hand', cursive`

// SansFamily is the stack used by the simple style.
const SansFamily = "Helvetica, Arial, sans-serif"
