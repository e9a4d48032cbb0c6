/*
Package libversion compares version strings from arbitrary software ecosystems without knowing their format.

A version is split into components: numbers, keyword-classified letters (pre-release words like "alpha" or "rc",
post-release words like "patch" or "pl"), letter suffixes glued to a number ("1.0a") and padding. Components
are compared left to right and the first difference decides:

	1.0alpha1 < 1.0 < 1.0patch1 < 1.0.1 < 1.0a < 1.1

Every byte string is a valid version. Flags adjust the interpretation of a single operand (PIsPatch, AnyIsPatch)
or turn it into an open range endpoint (LowerBound, UpperBound): with UpperBound, "1.0" compares above every
1.0.x version.
*/
package libversion
