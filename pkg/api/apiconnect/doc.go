// Package apiconnect wires the tripboard services to Connect: procedure
// names, handler constructors and typed clients.
package apiconnect
