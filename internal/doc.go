// Package internal contains the core implementation packages for mayura.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - widgets: the controlled widgets, one package each, with the shared
//     HTML writer and class helpers
//   - dom: the document capability widgets use for outside-press and key
//     subscriptions and scroll locking
//   - showcase: a per-visitor session hosting every widget
//   - server: HTTP pages, JSON API and the websocket driving sessions
//   - tui: the terminal playground
//   - registry: the widget catalogue
//   - fixtures: demo data and its hot reload
//   - watcher: debounced file system monitoring
//   - i18n: message catalogs for widget text
//   - config, logging, errors, version: the ambient stack
//
// # Inter-Package Communication
//
//   - Widgets expose pure Update functions; controllers bind them to a dom
//     document and report changes through callbacks
//   - The showcase session owns the props and turns events into re-rendered
//     fragments
//   - The server hands websocket events to sessions and pushes fragments back
//   - The fixtures watcher swaps demo data under running sessions
//
// For detailed documentation, see the individual package documentation.
package internal
