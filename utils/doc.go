// Package utils provides the fixed calendar enumerations and duration
// formatting shared by the selector, loader and statistics packages.
//
// It contains:
//   - Month and weekday lookup tables with name/index conversion
//   - Duration formatting
package utils
