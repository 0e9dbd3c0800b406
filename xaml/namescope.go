// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xaml

import (
	"fmt"
	"iter"
	"slices"

	"cogentcore.org/core/base/keylist"
)

// Namescope is an ordered mapping from names to the objects
// registered under them, used for FindName-style lookups.
// The zero value is an empty namescope ready to use.
type Namescope struct {
	names keylist.List[string, any]
}

// NewNamescope returns a new empty [Namescope].
func NewNamescope() *Namescope {
	return &Namescope{}
}

// Register binds the name to the given object. Registering the same
// object again is a no-op; binding a name that is already bound to a
// different object returns an error wrapping [ErrDuplicateName].
func (ns *Namescope) Register(name string, obj any) error {
	if name == "" {
		return fmt.Errorf("xaml: cannot register an empty name for %v", obj)
	}
	if ex, has := ns.names.AtTry(name); has {
		if ex == obj {
			return nil
		}
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	ns.names.Set(name, obj)
	return nil
}

// Find returns the object registered under the given name, or nil.
func (ns *Namescope) Find(name string) any {
	if ns == nil {
		return nil
	}
	return ns.names.At(name)
}

// Len returns the number of registered names.
func (ns *Namescope) Len() int {
	if ns == nil {
		return 0
	}
	return ns.names.Len()
}

// Names returns the registered names in registration order.
func (ns *Namescope) Names() []string {
	if ns == nil {
		return nil
	}
	return slices.Clone(ns.names.Keys)
}

// All iterates over the registered names and objects in
// registration order.
func (ns *Namescope) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if ns == nil {
			return
		}
		for i, nm := range ns.names.Keys {
			if !yield(nm, ns.names.Values[i]) {
				return
			}
		}
	}
}

// Clear removes all of the registered names.
func (ns *Namescope) Clear() {
	if ns == nil {
		return
	}
	ns.names.Reset()
}
