package chat

import "strconv"

// Ref names a conversation: either the single pending slot (not yet
// identified) or a stored conversation by id. A request dispatched for the
// pending conversation is always re-bound to the id assigned at promotion
// before the async call is issued, so a Ref carried by an in-flight request
// is stable for the lifetime of that request.
type Ref struct {
	id      int
	pending bool
}

// PendingRef refers to the single not-yet-promoted conversation.
func PendingRef() Ref { return Ref{pending: true} }

// ExistingRef refers to a stored conversation.
func ExistingRef(id int) Ref { return Ref{id: id} }

// Pending reports whether the ref names the pending slot.
func (r Ref) Pending() bool { return r.pending }

// ID returns the stored conversation id. Only meaningful when !Pending().
func (r Ref) ID() int { return r.id }

func (r Ref) String() string {
	if r.pending {
		return "pending"
	}
	return "chat:" + strconv.Itoa(r.id)
}
