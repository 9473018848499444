// Package scripthost runs guest setup scripts that produce construction
// buffers.
//
// Scripts are core WebAssembly modules executed with wazero. A script builds
// its construction buffer in linear memory and exports setup functions
// returning a packed pointer/length word; the host copies the buffer out and
// hands it to a dispatcher. The host never interprets the buffer itself, so
// a script and the engine agree on the wire protocol alone, not on any
// shared type definitions.
package scripthost
