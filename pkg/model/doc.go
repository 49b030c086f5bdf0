// Package model defines the closed type universe the form compiler works
// with: the four supported field kinds, the declared-type expressions they
// are classified from, the ordered Schema extracted from a record definition,
// and the Value/Record pair controllers carry at run time. Introspectors live
// in pkg/schema and controllers in pkg/controller; both exchange the types
// defined here.
package model
