// Package tetris implements the simulation core of a falling-block puzzle game.
//
// The package holds the shape catalog, pieces, the playfield grid and the Session
// state machine. It has no rendering, input or clock dependencies: front-ends feed
// it named Actions through Session.Handle and elapsed time through Session.Advance,
// then read the resulting state to draw a frame.
//
// Decorations attached to cells are opaque ids. Resolving a ColorID or TextureID to
// something drawable is left to the presentation layer.
package tetris
