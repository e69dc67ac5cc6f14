// Package dom is an in-memory SVG document that bramble scenes can be
// built on and mounted into without a browser.
//
// A [Document] implements both bramble.Surface and bramble.EventSource.
// Text is measured with a [Measurer]; the default [FaceMeasurer] shapes text
// with Ebitengine's text/v2 and the Go fonts, picking a face from the CSS
// font declared in the nearest style attribute. Events are delivered with
// [Document.Dispatch] and bubble from the target to the root, so a listener
// on a translated group sees events on everything inside it.
//
// Mounted trees can be serialized with [Document.WriteSVG] or drawn with
// package raster.
package dom
