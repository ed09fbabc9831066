// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strcase provides functions for converting the case of strings
// (CamelCase, kebab-case, snake_case, etc). Any non-alphanumeric rune is
// treated as a word separator, as are lower-to-upper transitions within
// a word, so all common input conventions split the same way.
package strcase

// ToSnake returns words in snake_case (lower case words with underscores).
func ToSnake(s string) string {
	return ToWordCase(s, WordLowerCase, '_')
}

// ToKebab returns words in kebab-case (lower case words with dashes).
func ToKebab(s string) string {
	return ToWordCase(s, WordLowerCase, '-')
}

// ToCamel returns words in CamelCase (capitalized words concatenated together).
// Also known as UpperCamelCase.
func ToCamel(s string) string {
	return ToWordCase(s, WordTitleCase, 0)
}

// ToLowerCamel returns words in lowerCamelCase (capitalized words
// concatenated together, with the first word lower case).
// Also known as camelCase or mixedCase.
func ToLowerCamel(s string) string {
	return ToWordCase(s, WordCamelCase, 0)
}
