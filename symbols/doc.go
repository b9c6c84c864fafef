// Package symbols is the catalog of drawn circuit symbols: resistors,
// capacitors, inductors, cells, sources, switches, diodes, and grounds.
//
// Every symbol embeds a scaffold from the root package (Bipole or
// Monopole) and lays its geometry down at construction from the current
// style, so later style changes never restyle existing symbols. Symbols
// with a convention-dependent shape (resistors, sources) pick it when
// constructed.
package symbols
