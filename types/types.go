// Package types defines core type constraints and enums shared across the overlay2d library.
//
// This package provides foundational types such as SignedNumber, which restricts generic
// operations to signed numeric types, and PointOrientation, which describes the turn three
// points make.
//
// # Key Features
//
//   - SignedNumber Interface: Defines a type set that includes all signed integer and floating-point types,
//     ensuring that geometric operations remain compatible with various numeric representations.
//   - PointOrientation Enum: Encapsulates whether three points are collinear, clockwise, or
//     counterclockwise, the result [numeric.SignToOrientation] produces from the kernel's integer
//     cross-product predicate.
//   - FillRule, OverlayRule, ClipRule, StringRule: rule enums declared here; the kernel does not
//     use them, since package segment declares its own FillRule, OverlayRule, ClipRule and
//     SliceRule, which are the types the entry points take.
//
// # Usage
//
// This package is primarily used internally within the overlay2d library to enable type safety and
// consistency in geometric operations. Functions and structures throughout the library rely on these
// types to enforce correct input parameters and return meaningful results.
//
// See the documentation for each type for more details.
package types
