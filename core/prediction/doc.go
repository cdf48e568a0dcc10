// Package prediction turns a hostel headcount and meal type into the bulk
// quantities to prepare. Quantities are always rounded up to their grid so
// the kitchen never cooks less than the expected attendees need.
package prediction
