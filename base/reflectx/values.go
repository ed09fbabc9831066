// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import "reflect"

// ValuesEqual reports whether the two given values are structurally
// equal. Pointer and interface indirection is stripped from both sides
// first, so a value and a pointer to an equal value compare as equal.
// Invalid (nil) values are only equal to other invalid values.
func ValuesEqual(a, b any) bool {
	av := Underlying(reflect.ValueOf(a))
	bv := Underlying(reflect.ValueOf(b))
	if !av.IsValid() || !bv.IsValid() {
		return av.IsValid() == bv.IsValid()
	}
	if av.Type() != bv.Type() {
		return false
	}
	return reflect.DeepEqual(av.Interface(), bv.Interface())
}
