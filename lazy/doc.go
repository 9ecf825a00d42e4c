// Package lazy provides memoizing computed attributes.
//
// A Property is declared once per attribute name and shared by every instance of
// the host type. It holds only the recipe: a derivation function from the host to
// the value. The first Get on an instance runs the derivation and pins the result
// in that instance's own Store; every later Get reads the stored value without
// calling the derivation again. Reset drops the stored value so the next Get
// recomputes.
//
//	var wordCount = lazy.NewProperty("word_count",
//	    func(d *Doc) (int, error) { return len(strings.Fields(d.text)), nil },
//	    lazy.WithDoc("number of whitespace separated words"),
//	)
//
//	type Doc struct {
//	    text  string
//	    store lazy.Store
//	}
//
//	func (d *Doc) LazyStore() *lazy.Store { return &d.store }
//	func (d *Doc) WordCount() (int, error) { return wordCount.Get(d) }
//
// Hosts that prefer an explicit typed field over a named entry can use Slot,
// which models the same Unset | Value cell without a Store.
//
// A derivation that fails is not cached: its error reaches the caller unchanged
// and the next Get tries again. Translating missing external resources into a
// dedicated error kind is the derivation's job (see package corpus), not this
// package's.
//
// Store and Slot are NOT safe for concurrent use. Two goroutines reading the same
// unset property on the same instance race; callers own the instance and must
// serialize access to it.
package lazy
