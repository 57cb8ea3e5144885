// Package extractly extracts typed values from text by matching it against
// a format template, the inverse of template filling. A template interleaves
// literal text with {name:key} field slots, e.g. "{name} is {age:integer}";
// compiling it yields an immutable Parser usable for full match, search and
// find-all over subject text, with captured values converted per field.
package extractly
