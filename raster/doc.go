// Package raster draws a mounted dom tree with Ebitengine.
//
// Drawing happens in two steps, like a frame in a scene graph renderer:
// [Compile] walks the tree once and emits [Command] values in paint order,
// then [Draw] submits them to an *ebiten.Image. The same command list
// answers pointer queries through [HitTest], so clicks can be dispatched back
// into the dom document.
package raster
