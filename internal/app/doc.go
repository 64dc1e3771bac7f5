// Package app wires the enumctl command: it configures logging, loads
// enumeration files through a Loader and renders the closed enumerations.
package app
