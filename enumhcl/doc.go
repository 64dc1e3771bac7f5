// Package enumhcl declares closed enumerations in HCL files.
//
// An enumeration block names the enumeration, declares the typed attributes
// its members carry and lists the members in order:
//
//	enumeration "Weekday" {
//	  attribute "is_business_day" {
//	    type    = bool
//	    default = true
//	  }
//
//	  member "MONDAY" {
//	    description = "Monday"
//	  }
//	  member "SATURDAY" {
//	    description     = "Saturday"
//	    is_business_day = false
//	  }
//	}
//
// Each block is closed as an *enum.Enum[enum.Record] registered under the
// block label. A member's description defaults to its label. Attribute types
// use the HCL type keywords string, number, bool and any, and the
// constructors list(T), map(T), set(T) and object({...}).
package enumhcl
