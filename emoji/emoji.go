/*
Package emoji implements Unicode UTS #51 emoji classes.

The grapheme, word and line packages of this module consult the
Extended_Pictographic class for their emoji-sequence rules (UAX#29 rules
GB11 and WB3c, UAX#14 rule LB30b).

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package emoji

import (
	"sync"
	"unicode"
)

//go:generate go run ./internal/generator

// Class is the type of UTS#51 emoji code-point classes.
type Class int

// Classes from UTS#51, section 1.4.1.
const (
	EmojiClass Class = iota
	Emoji_PresentationClass
	Emoji_ModifierClass
	Emoji_Modifier_BaseClass
	Emoji_ComponentClass
	Extended_PictographicClass
	Other Class = -1 // pseudo class: no emoji class at all
)

func (c Class) String() string {
	switch c {
	case EmojiClass:
		return "EmojiClass"
	case Emoji_PresentationClass:
		return "Emoji_PresentationClass"
	case Emoji_ModifierClass:
		return "Emoji_ModifierClass"
	case Emoji_Modifier_BaseClass:
		return "Emoji_Modifier_BaseClass"
	case Emoji_ComponentClass:
		return "Emoji_ComponentClass"
	case Extended_PictographicClass:
		return "Extended_PictographicClass"
	}
	return "Other"
}

// ClassForRune gets the emoji class for a Unicode code-point.
// Will return Other if the code-point has no emoji class.
func ClassForRune(r rune) Class {
	SetupEmojiClasses()
	for class, rt := range rangeFromClass {
		if rt != nil && unicode.Is(rt, r) {
			return Class(class)
		}
	}
	return Other
}

// IsExtendedPictographic reports whether r carries the
// Extended_Pictographic property.
func IsExtendedPictographic(r rune) bool {
	SetupEmojiClasses()
	return unicode.Is(Extended_Pictographic, r)
}

var setupOnce sync.Once

// SetupEmojiClasses is the top-level preparation function:
// Create code-point classes for emoji handling.
// (Concurrency-safe).
func SetupEmojiClasses() {
	setupOnce.Do(setupEmojiClasses)
}
