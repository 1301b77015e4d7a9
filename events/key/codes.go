// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import "fmt"

// Codes is the identity of a key relative to a notional "standard" keyboard,
// independent of current layout, modifiers or input method. The values are
// from the USB HID usage tables.
type Codes uint32

const (
	CodeUnknown Codes = 0

	CodeA Codes = 4 + iota - 1
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9
	Code0

	CodeReturnEnter
	CodeEscape
	CodeBackspace
	CodeTab
	CodeSpacebar
)

const (
	CodeHome        Codes = 74
	CodePageUp      Codes = 75
	CodeDelete      Codes = 76
	CodeEnd         Codes = 77
	CodePageDown    Codes = 78
	CodeRightArrow  Codes = 79
	CodeLeftArrow   Codes = 80
	CodeDownArrow   Codes = 81
	CodeUpArrow     Codes = 82
	CodeKeypadEnter Codes = 88

	CodeLeftControl  Codes = 224
	CodeLeftShift    Codes = 225
	CodeLeftAlt      Codes = 226
	CodeLeftMeta     Codes = 227
	CodeRightControl Codes = 228
	CodeRightShift   Codes = 229
	CodeRightAlt     Codes = 230
	CodeRightMeta    Codes = 231
)

var codeNames = map[Codes]string{
	CodeUnknown:      "Unknown",
	CodeA:            "A",
	CodeB:            "B",
	CodeC:            "C",
	CodeD:            "D",
	CodeE:            "E",
	CodeF:            "F",
	CodeG:            "G",
	CodeH:            "H",
	CodeI:            "I",
	CodeJ:            "J",
	CodeK:            "K",
	CodeL:            "L",
	CodeM:            "M",
	CodeN:            "N",
	CodeO:            "O",
	CodeP:            "P",
	CodeQ:            "Q",
	CodeR:            "R",
	CodeS:            "S",
	CodeT:            "T",
	CodeU:            "U",
	CodeV:            "V",
	CodeW:            "W",
	CodeX:            "X",
	CodeY:            "Y",
	CodeZ:            "Z",
	Code1:            "1",
	Code2:            "2",
	Code3:            "3",
	Code4:            "4",
	Code5:            "5",
	Code6:            "6",
	Code7:            "7",
	Code8:            "8",
	Code9:            "9",
	Code0:            "0",
	CodeReturnEnter:  "ReturnEnter",
	CodeEscape:       "Escape",
	CodeBackspace:    "Backspace",
	CodeTab:          "Tab",
	CodeSpacebar:     "Spacebar",
	CodeHome:         "Home",
	CodePageUp:       "PageUp",
	CodeDelete:       "Delete",
	CodeEnd:          "End",
	CodePageDown:     "PageDown",
	CodeRightArrow:   "RightArrow",
	CodeLeftArrow:    "LeftArrow",
	CodeDownArrow:    "DownArrow",
	CodeUpArrow:      "UpArrow",
	CodeKeypadEnter:  "KeypadEnter",
	CodeLeftControl:  "LeftControl",
	CodeLeftShift:    "LeftShift",
	CodeLeftAlt:      "LeftAlt",
	CodeLeftMeta:     "LeftMeta",
	CodeRightControl: "RightControl",
	CodeRightShift:   "RightShift",
	CodeRightAlt:     "RightAlt",
	CodeRightMeta:    "RightMeta",
}

var nameCodes = func() map[string]Codes {
	m := make(map[string]Codes, len(codeNames))
	for c, nm := range codeNames {
		m[nm] = c
	}
	return m
}()

func (c Codes) String() string {
	if nm, ok := codeNames[c]; ok {
		return nm
	}
	return fmt.Sprintf("Codes(%d)", uint32(c))
}

// SetString sets the code from its string name,
// returning an error if the name is not recognized.
func (c *Codes) SetString(s string) error {
	if cd, ok := nameCodes[s]; ok {
		*c = cd
		return nil
	}
	return fmt.Errorf("key.Codes: name %q not recognized", s)
}

// IsModifier returns whether the given key code is a modifier key.
func (c Codes) IsModifier() bool {
	return c >= CodeLeftControl && c <= CodeRightMeta
}
