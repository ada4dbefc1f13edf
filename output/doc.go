// Package output writes a paths.Table in the documented result format:
// for every ordered pair (s, t) with s != t, in node declaration order,
// a "<s>|<t>" header line followed by one "<metrics>|<nodes>" line per
// non-dominated path, then a blank line. Pairs with an empty collection
// emit only the header and the trailing blank line.
package output
