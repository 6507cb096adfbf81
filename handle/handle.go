// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package handle provides [Handle], a lazily created native GPU object id.
package handle

import (
	"fmt"

	"cogentcore.org/colorgrade/alert"
)

// State is the lifecycle state of a [Handle].
type State int32

const (
	// Uninitialized is the state before the first call to [Handle.ID].
	Uninitialized State = iota

	// Ready is the state once the native object exists.
	Ready

	// Released is the final state after [Handle.Release].
	Released
)

var stateNames = [...]string{"Uninitialized", "Ready", "Released"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int32(s))
	}
	return stateNames[s]
}

// Handle owns exactly one native object id. The object is created on
// the first call to [Handle.ID] and destroyed by [Handle.Release].
// The zero value is an Uninitialized handle with no factory.
type Handle struct {
	id       uint32
	state    State
	creating bool
	create   func() uint32
	destroy  func(id uint32)
}

// New returns an Uninitialized handle. create makes the native object
// and returns its id; destroy deletes it.
func New(create func() uint32, destroy func(id uint32)) Handle {
	return Handle{create: create, destroy: destroy}
}

// ID returns the native id, creating the object on the first call.
// Calling ID after Release, or from within create, is a fatal
// programmer error.
func (h *Handle) ID() uint32 {
	switch h.state {
	case Ready:
		return h.id
	case Released:
		alert.Fatal("handle: ID called on a released handle")
		return 0
	}
	if h.creating {
		alert.Fatal("handle: ID called re-entrantly while creating the handle")
		return 0
	}
	if !alert.AssertFatal(h.create != nil, "handle: ID called on a handle without a create function") {
		return 0
	}
	h.creating = true
	h.id = h.create()
	h.creating = false
	h.state = Ready
	return h.id
}

// State returns the lifecycle state.
func (h *Handle) State() State { return h.state }

// Ready returns whether the native object has been created and not released.
func (h *Handle) Ready() bool { return h.state == Ready }

// Release destroys the native object if it was created.
// It is a no-op on a handle that was never created, or already released.
// A released handle can not be used again.
func (h *Handle) Release() {
	if h.state == Ready && h.destroy != nil {
		h.destroy(h.id)
	}
	if h.state != Released {
		h.state = Released
		h.id = 0
	}
}
