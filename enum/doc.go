// Package enum implements closed enumerations: named, singleton members that
// are collected into an immutable, ordered set exactly once.
//
// A member subtype is identified by a Kind tag. Every member constructed for a
// Kind receives the next ordinal of that Kind. When an Enum is initialized it
// stamps each member with the field name it was declared under, seals it, closes
// the member Kind against further construction, freezes itself and publishes its
// values under a process-wide unique name.
//
// Two member representations are provided:
//
//   - Member is identity based. Domain types embed it, closure mutates it in
//     place and members compare by pointer.
//   - Record is value based. It wraps an immutable cty object; closure derives a
//     new record carrying the property name and the Enum re-binds its field to
//     it. Records compare structurally with Equals, so code that matches members
//     by identity must use the Member variant.
//
// Enumerations are meant to be built during program initialization. All misuse
// (duplicate names, duplicate descriptions, construction after closure, writes
// after closure) is reported as an error wrapping one of the package sentinels.
package enum
