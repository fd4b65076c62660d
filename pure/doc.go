// Package pure provides bounded memoization for pure functions.
//
// Tableize is not just a utility to add memoization.
// Tableize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// Every arithmetic primitive behind an integer sequence passes that test:
// the number of partitions of 200 or the permanent of a fixed (0,1)-matrix
// will never change, so computing it twice is pure waste.
//
// Features:
//   - Tableize1, Tableize2: typed memoizers for functions returning (O, error).
//   - Table: a two-generation bounded table keyed by xxhash digests.
//   - Errors are never cached; a failed call is simply recomputed next time.
//
// This package embodies the idea that:
//
//	> If a function is pure, it should be cacheable like a mathematical function.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package pure
