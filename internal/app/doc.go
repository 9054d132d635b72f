// Package app provides the application logic behind the CLI commands.
// It wires the codec registry, input processor, transcoding service and result writer
// together and runs them for the encode, decode, schemes and config commands.
package app
