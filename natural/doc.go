// Package natural orders strings and byte slices in natural sort order:
// runs of ASCII digits compare by numeric value, everything else compares
// byte by byte. "file2.txt" sorts before "file11.txt".
//
// # Comparing
//
// [Compare] is the comparator itself. It works on any string or byte slice
// type, never allocates and never fails:
//
//	natural.Compare("file2.txt", "file11.txt") // -1
//	natural.Compare("a007", "a7")             // 0, leading zeros are ignored
//
// Digit runs are compared where they line up in both inputs. There is no
// attempt to pull one number out of each string, so "file0002.txt" sorts
// after "file1B.txt" (2 > 1) and before "file11.txt" (2 < 11).
//
// # Views
//
// Values are compared through one of two views: [Text] for UTF-8 text and
// [ASCII] for raw bytes. The view is chosen with an explicit type argument,
// which keeps the intent visible at the call site when a type could be read
// either way. Only these two types implement [Sortable]; the [View]
// constraint cannot be satisfied by anything else.
//
// # Sort keys
//
// [Natural] wraps a value and gives it natural-order Compare, Equals and
// LessThan methods, so it can be used as a key anywhere an ordering is
// expected, including github.com/amp-labs/natural/set.
//
// # Sorting
//
// The Sort functions mirror the ones in the slices package:
//
//	natural.SortUnstable[natural.Text](names)
//	natural.Sort[natural.Text](names)
//	natural.SortByKey[natural.Text](users, func(u User) string { return u.Login })
//	natural.SortByCachedKey[natural.Text](ids, strconv.Itoa)
//
// The stable variants keep equal elements in their original order.
// SortByCachedKey calls the key function once per element.
//
// # Thread Safety
//
// Comparison is a pure function. The Sort functions mutate the slice they are
// given and need exclusive access to it for the duration of the call.
package natural
