// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xaml

import "cogentcore.org/core/base/errors"

var (
	// ErrUnknownTypeIndex is returned when a stable type index is not in
	// the stable table. It signals a corrupt or version-mismatched binary.
	ErrUnknownTypeIndex = errors.New("xaml: no known type for stable index")

	// ErrUnknownPropertyIndex is the property counterpart of [ErrUnknownTypeIndex].
	ErrUnknownPropertyIndex = errors.New("xaml: no known property for stable index")

	// ErrUnknownEventIndex is the event counterpart of [ErrUnknownTypeIndex].
	ErrUnknownEventIndex = errors.New("xaml: no known event for stable index")

	// ErrDuplicateName is returned when a name is already bound to a
	// different object in a [Namescope].
	ErrDuplicateName = errors.New("xaml: name is already registered")

	// ErrUnknownMember is returned when a member is set on an instance
	// that does not have it.
	ErrUnknownMember = errors.New("xaml: unknown member")
)
