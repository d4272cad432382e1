// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package copyable answers whether values of a type have copy semantics.
//
// A type is copyable when duplicating a value is equivalent to a raw bitwise copy that
// shares nothing with the original: booleans, numbers and strings, and arrays and structs
// composed only of those. Pointers, slices, maps, channels, functions and interfaces share
// their referent, and lockers (types whose pointer has Lock and Unlock methods, like
// sync.Mutex or a noCopy marker) must not be copied at all.
package copyable

import (
	"go/token"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// Checker is a caching copy-capability query. The zero value is ready to use.
// A Checker is not safe for concurrent use.
type Checker struct {
	cache typeutil.Map

	// visiting guards against cyclic type parameter constraints.
	visiting map[*types.TypeParam]struct{}
}

// Copyable reports whether values of type t have copy semantics.
func (c *Checker) Copyable(t types.Type) bool {
	if t == nil {
		return false
	}

	if v, ok := c.cache.At(t).(bool); ok {
		return v
	}

	copyable := c.copyable(t)
	c.cache.Set(t, copyable)

	return copyable
}

func (c *Checker) copyable(t types.Type) bool {
	switch t := types.Unalias(t).(type) {
	case *types.Basic:
		return basic(t)

	case *types.Named:
		if isLocker(t) {
			return false
		}

		return c.Copyable(t.Underlying())

	case *types.Array:
		return c.Copyable(t.Elem())

	case *types.Struct:
		for field := range t.Fields() {
			if !c.Copyable(field.Type()) {
				return false
			}
		}

		return true

	case *types.TypeParam:
		return c.typeParam(t)

	default: // *types.Pointer, *types.Slice, *types.Map, *types.Chan, *types.Signature, *types.Interface, *types.Tuple
		return false
	}
}

func basic(t *types.Basic) bool {
	switch t.Kind() {
	case types.Invalid, types.UnsafePointer, types.UntypedNil:
		return false

	default:
		return true
	}
}

// typeParam reports whether every type in the type set of t is copyable.
// Constraints without core terms (method-only or any) can be instantiated with
// reference types and are not copyable.
func (c *Checker) typeParam(t *types.TypeParam) bool {
	if _, ok := c.visiting[t]; ok {
		return false
	}

	if c.visiting == nil {
		c.visiting = make(map[*types.TypeParam]struct{})
	}

	c.visiting[t] = struct{}{}
	defer delete(c.visiting, t)

	iface, ok := t.Constraint().Underlying().(*types.Interface)
	if !ok {
		return false
	}

	restricted, copyable := c.typeSet(iface)

	return restricted && copyable
}

// typeSet inspects the embedded type terms of iface.
// restricted reports whether iface restricts its type set at all, copyable whether
// one of the restricting terms admits only copyable types. Since the type set is the
// intersection of all embedded sets, one such term suffices.
func (c *Checker) typeSet(iface *types.Interface) (restricted, copyable bool) {
	for embedded := range iface.EmbeddedTypes() {
		switch e := embedded.Underlying().(type) {
		case *types.Interface:
			r, ok := c.typeSet(e)
			restricted = restricted || r
			copyable = copyable || ok

		case *types.Union:
			restricted = true
			copyable = copyable || c.union(e)

		default:
			restricted = true
			copyable = copyable || c.Copyable(embedded)
		}
	}

	return restricted, copyable
}

func (c *Checker) union(u *types.Union) bool {
	for term := range u.Terms() {
		if !c.Copyable(term.Type()) {
			return false
		}
	}

	return true
}

// lockerType is the interface { Lock(); Unlock() }.
var lockerType = func() *types.Interface {
	nullary := types.NewSignatureType(nil, nil, nil, nil, nil, false)
	methods := []*types.Func{
		types.NewFunc(token.NoPos, nil, "Lock", nullary),
		types.NewFunc(token.NoPos, nil, "Unlock", nullary),
	}

	return types.NewInterfaceType(methods, nil).Complete()
}()

// isLocker reports whether *t implements [sync.Locker].
func isLocker(t *types.Named) bool {
	if types.IsInterface(t) {
		return false
	}

	return types.Implements(types.NewPointer(t), lockerType)
}
