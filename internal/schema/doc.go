// Package schema defines the declarative vocabulary for configurable content
// fields: the closed set of field types, per-field validation rules, UI hints,
// and the optional save/load transform hooks.
//
// The package also implements the two generic engines that consume field
// definitions: the validation engine (Validator), which turns a field list and
// a candidate value map into a list of human-readable violations, and the
// transform pipeline (ToStorage / ToDisplay), which converts raw input into a
// persistence-ready shape and persisted records into a display-ready shape.
//
// Nothing in this package touches the database or the HTTP layer; it is pure
// data and behavior shared by the registry, the CRUD services, and the form
// renderer.
package schema
