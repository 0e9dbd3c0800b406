// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xaml

import "github.com/microsoft/microsoft-ui-xaml-sub032/stable"

// Event represents a XAML event that handlers can be connected to.
type Event struct {
	DeclaringType *Type
	Name          string
	Index         stable.EventIndex
}

// FullName returns the namespace-qualified name of the event.
func (e *Event) FullName() string {
	return e.DeclaringType.FullName + "." + e.Name
}

func (e *Event) String() string {
	return e.FullName()
}
