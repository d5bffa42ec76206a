package chat

import (
	"fmt"
	"sort"
)

// ErrNotFound reports a Ref whose id is absent from the store. Under the
// promotion protocol every dispatched ref resolves, so callers treat this as
// an internal-consistency failure rather than a user-facing condition.
var ErrNotFound = fmt.Errorf("chat: conversation not found")

// Store maps conversation ids to conversations and owns the single pending
// slot. Ids are assigned exactly once, never reused, and conversations are
// never removed. The store is not safe for concurrent use; all mutation
// happens on the UI update loop.
type Store struct {
	chats   map[int]*Conversation
	pending *Conversation
	ids     IDAllocator
}

func NewStore() *Store {
	return &Store{
		chats:   make(map[int]*Conversation),
		pending: &Conversation{},
	}
}

// Get resolves a ref to its conversation. The pending ref always resolves;
// an existing ref resolves unless the id was never allocated.
func (s *Store) Get(ref Ref) (*Conversation, error) {
	if ref.Pending() {
		return s.pending, nil
	}
	c, ok := s.chats[ref.ID()]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, ref.ID())
	}
	return c, nil
}

// Append adds a message to the end of the referenced conversation.
func (s *Store) Append(ref Ref, msg Message) error {
	c, err := s.Get(ref)
	if err != nil {
		return err
	}
	c.Messages = append(c.Messages, msg)
	return nil
}

// Promote allocates a fresh id, moves the entire pending conversation (its
// accumulated messages and any leftover draft) into the store under that id,
// and resets the pending slot to an empty conversation. Called exactly once
// per first submission of a pending conversation.
func (s *Store) Promote() int {
	id := s.ids.Next()
	s.chats[id] = s.pending
	s.pending = &Conversation{}
	return id
}

// ResetPending discards the pending conversation, draft included.
func (s *Store) ResetPending() {
	s.pending = &Conversation{}
}

// IDs returns all stored conversation ids in ascending order.
func (s *Store) IDs() []int {
	ids := make([]int, 0, len(s.chats))
	for id := range s.chats {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Len reports the number of stored (promoted) conversations.
func (s *Store) Len() int { return len(s.chats) }
