// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines keyboard modifiers, key codes, and
// the Chord representation of complete key inputs.
package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Modifiers are the modifier keys held down during an event.
type Modifiers int64

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
	Meta
)

// modifierOrder is the canonical order in which modifiers appear
// in chord strings.
var modifierOrder = []struct {
	mod  Modifiers
	name string
}{
	{Shift, "Shift"},
	{Control, "Control"},
	{Alt, "Alt"},
	{Meta, "Meta"},
}

func (mo Modifiers) String() string {
	strs := []string{}
	for _, m := range modifierOrder {
		if mo&m.mod != 0 {
			strs = append(strs, m.name)
		}
	}
	return strings.Join(strs, "+")
}

// ModifiersString returns the string representation of the modifiers,
// with a trailing + if there are any, for building chord strings.
func (mo Modifiers) ModifiersString() string {
	s := mo.String()
	if s != "" {
		s += "+"
	}
	return s
}

// ModifiersFromString parses any canonical modifier prefixes from the
// given chord string, returning the modifiers and the remainder.
func ModifiersFromString(cs string) (Modifiers, string) {
	var mods Modifiers
	for {
		matched := false
		for _, m := range modifierOrder {
			pre := m.name + "+"
			if strings.HasPrefix(cs, pre) {
				mods |= m.mod
				cs = strings.TrimPrefix(cs, pre)
				matched = true
			}
		}
		if !matched {
			break
		}
	}
	return mods, cs
}

// HasAnyModifier tests whether any of the given modifiers are set.
func HasAnyModifier(flags Modifiers, mods ...Modifiers) bool {
	for _, m := range mods {
		if flags&m != 0 {
			return true
		}
	}
	return false
}

// HasAllModifiers tests whether all of the given modifiers are set.
func HasAllModifiers(flags Modifiers, mods ...Modifiers) bool {
	for _, m := range mods {
		if flags&m == 0 {
			return false
		}
	}
	return true
}

// Chord represents the key chord associated with a given key function;
// it is a string of the form "Control+ReturnEnter", with any modifiers
// first in canonical order, followed by the key rune if printable, or
// otherwise the name of the key code.
type Chord string

// NewChord returns a string representation of the keyboard event suitable
// for keyboard function maps, etc. Printable runes are sent in lowercase,
// except when there are modifiers, in which case the uppercase letter is
// used to make a robust, unique mapping.
func NewChord(rn rune, code Codes, mods Modifiers) Chord {
	modstr := mods.ModifiersString()
	if modstr != "" && rn == ' ' { // modifiers + space -> Spacebar
		return Chord(modstr + "Spacebar")
	}
	if unicode.IsPrint(rn) {
		if len(modstr) > 0 {
			return Chord(modstr + string(unicode.ToUpper(rn)))
		}
		return Chord(string(rn))
	}
	// all non-printable and modified keys use code names
	return Chord(modstr + code.String())
}

func (ch Chord) String() string {
	return string(ch)
}

// Decode decodes the chord string into its rune, key code,
// and modifiers.
func (ch Chord) Decode() (r rune, code Codes, mods Modifiers, err error) {
	cs := string(ch)
	mods, cs = ModifiersFromString(cs)
	rs := []rune(cs)
	if len(rs) == 1 {
		r = rs[0]
		return
	}
	err = code.SetString(cs)
	if err != nil {
		err = fmt.Errorf("key.Chord.Decode: chord %q has no single rune and no valid code name: %w", string(ch), err)
	}
	return
}
