// Package cli provides the interactive filekeeper command-line client.
//
// It wires configuration, the local upload journal and the backend client,
// then runs a REPL. Typical flow: upload local files into TEMPS, commit them
// against a reference (optionally relocating them to UPLOADED), list what a
// reference holds and download or delete individual files.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
