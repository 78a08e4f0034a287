// Package render provides display sinks for the bfs engine.
//
//   - Recorder keeps snapshots in memory; tests and the HTTP server use it.
//   - Text writes ASCII frames to an io.Writer.
//   - Screen draws on a terminal through tcell and turns Esc, q or Ctrl-C
//     into the engine's "not running" signal.
//
// All sinks implement bfs.Renderer and may throttle output: the engine
// calls them once per search step, and a sink decides how many of those
// calls reach the viewer.
package render
