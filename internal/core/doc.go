// Package core holds the station data pipeline: loading the source file,
// dropping incomplete rows and computing the aggregates the dashboard draws.
//
// Nothing in this package renders or serves anything. Every function takes
// a [Table] and returns a value, so each step can be tested on its own.
//
// # Pipeline
//
//  1. [LoadFile] reads the delimited source into a [Table] (gota DataFrame)
//  2. [Clean] keeps only rows where every column is present
//  3. Aggregators summarise the cleaned table:
//     [LineDistribution], [StationsPerLine], [DistanceHistogram],
//     [YearlyOpenings], [LayoutByLine] and [StationPoints]
//
// Tables are never modified in place. Clean returns a filtered copy and the
// aggregators only read.
//
// # Error Handling
//
// The loader returns [*FileAccessError] or [*ParseError]. Aggregators that
// reference a column the file does not have return an error wrapping
// [ErrColumnNotFound]; values that cannot be interpreted wrap
// [ErrInvalidValue]. [MapError] turns any of these into a [UserMessage]
// with a support code:
//
//   - FILE001-FILE003: File errors (access, format, encoding)
//   - VAL002-VAL004: Value and column errors
//   - DATA001: No complete rows
//   - REQ001-REQ002: Request cancelled or timed out
//   - RATE001-RATE002: Rate limited or every build slot busy
package core
