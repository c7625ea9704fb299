package inet

// assertionsEnabled gates invariant checks that a shipped binary does not
// carry (a Ctr length fitting its buffer, a non-empty tree, an Auxiliary
// word with a non-nil partner, an in-range offset). It mirrors Rust's
// debug_assert!: false here, flipped to true for tests only, in
// assert_test.go.
var assertionsEnabled = false

// assert panics with msg if assertionsEnabled and cond is false. cond is an
// already-evaluated bool, so the caller's expression is computed either way;
// only the panic is gated by assertionsEnabled.
func assert(cond bool, msg string) {
	if assertionsEnabled && !cond {
		panic("inet: invariant violated: " + msg)
	}
}
