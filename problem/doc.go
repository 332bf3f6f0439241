// SPDX-License-Identifier: MIT

// Package problem loads congruence systems from TOML files.
//
// A file holds optional solver settings and any number of [[problem]]
// tables:
//
//	loglevel = "debug"
//	trace    = false
//
//	[[problem]]
//	name   = "three-by-three"
//	mat    = [[1,1,0],[0,1,2],[4,1,3]]
//	rhs    = [0,0,1]
//	moduli = [2,2,3]
//
// A problem without rhs is a null-space query.
package problem
