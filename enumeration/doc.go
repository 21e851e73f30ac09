// Package enumeration parses DXCC state and province enumeration listings.
//
// An enumeration is plain text grouped into sections. Each section opens with
// a header line such as
//
//	Enumeration for Country Code 291
//
// followed by an optional column header line starting with "Code" and then
// one data line per subdivision. Data columns are separated by tabs or by
// runs of two or more spaces:
//
//	AK  Alaska                    1   1
//
// The first column is the subdivision code and the second its name. Of the
// remaining columns, the right-most one containing a digit is taken as the
// CQ zone and the next one to its left as the ITU zone.
//
// Parsing is best effort. Lines that cannot be interpreted are skipped and
// counted in [Stats]; they never produce an error.
package enumeration
