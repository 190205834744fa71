// Package bankingtests contains the end-to-end scenarios for the XYZ Bank demo application
// and their supporting API.
//
// Scenarios drive the application only through the interfaces of the pages package, and get
// their browser sessions from a SessionFactory, so they can be run against a fake bank as
// well as a real browser. Test harness infrastructure that is not specific to banking is in
// the lower-level framework package.
package bankingtests
