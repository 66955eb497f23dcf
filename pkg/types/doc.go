// Package types defines the entity, capability, and field-set types shared by
// the motorpool composer, together with its configuration and standard error
// types.
//
// An entity is assembled from a base layer (make, model, year) and zero or
// more capabilities (passenger, cargo). Assembly happens on a mutable
// Assembly value; Seal turns it into an immutable Entity.
package types
