// Package embedder is the contract between a browser engine and the
// application that embeds it.
//
// The embedding application owns the native window and the platform event
// loop. It forwards translated input as batches of [WindowEvent] to
// [Engine.HandleEvents]. The engine calls back through [WindowMethods] to
// present frames and query the native GL context, and through
// [EmbedderMethods] to obtain an [EventLoopWaker] for its internal
// goroutines.
package embedder
