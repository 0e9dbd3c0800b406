// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xaml provides the runtime model that XBF binaries are
// materialized into: types, properties and events resolved and cached
// by a [Session], generic [Object] instances with their value bags,
// markup-extension instances, and [Namescope]s.
package xaml

import (
	"fmt"
	"strings"
	"sync"

	"github.com/microsoft/microsoft-ui-xaml-sub032/stable"
)

// Session holds the type, property and event registries for a parsing
// session. Every decode is handed a Session explicitly; there is no
// package-level registry. A Session is safe for concurrent use, so
// several decodes may share one, and each lookup of a given name or
// index returns the same pointer for the lifetime of the session (until
// [Session.Reset]).
type Session struct {
	typesMu      sync.RWMutex
	types        map[string]*Type
	typesByIndex map[stable.TypeIndex]*Type
	typeID       uint64

	propertiesMu      sync.RWMutex
	properties        map[string]*Property
	propertiesByIndex map[stable.PropertyIndex]*Property

	eventsMu sync.RWMutex
	events   map[stable.EventIndex]*Event
}

// NewSession returns a new empty [Session].
func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// Reset clears all of the registries, so that later lookups
// do not see any state from earlier decodes.
func (s *Session) Reset() {
	s.typesMu.Lock()
	s.types = make(map[string]*Type)
	s.typesByIndex = make(map[stable.TypeIndex]*Type)
	s.typeID = 0
	s.typesMu.Unlock()

	s.propertiesMu.Lock()
	s.properties = make(map[string]*Property)
	s.propertiesByIndex = make(map[stable.PropertyIndex]*Property)
	s.propertiesMu.Unlock()

	s.eventsMu.Lock()
	s.events = make(map[stable.EventIndex]*Event)
	s.eventsMu.Unlock()
}

// NumTypes returns the number of types registered so far.
func (s *Session) NumTypes() int {
	s.typesMu.RLock()
	defer s.typesMu.RUnlock()
	return len(s.types)
}

// NumProperties returns the number of properties registered so far.
func (s *Session) NumProperties() int {
	s.propertiesMu.RLock()
	defer s.propertiesMu.RUnlock()
	return len(s.properties)
}

// EventByIndex returns the event with the given stable index.
// It returns an error wrapping [ErrUnknownEventIndex] if the index
// is not in the stable table.
func (s *Session) EventByIndex(idx stable.EventIndex) (*Event, error) {
	s.eventsMu.RLock()
	ev, ok := s.events[idx]
	s.eventsMu.RUnlock()
	if ok {
		return ev, nil
	}
	info, ok := stable.LookupEvent(idx)
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownEventIndex, idx)
	}
	decl, err := s.TypeByIndex(info.DeclaringType)
	if err != nil {
		return nil, err
	}
	name := info.Name[strings.LastIndex(info.Name, ".")+1:]
	ev = &Event{DeclaringType: decl, Name: name, Index: idx}

	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()
	if ex, ok := s.events[idx]; ok {
		return ex, nil
	}
	s.events[idx] = ev
	return ev, nil
}
