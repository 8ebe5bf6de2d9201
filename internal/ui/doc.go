// Package ui is the Bubble Tea front end for the keypad calculator.
//
// Pieces:
//   - AppModel: root model; routes keys, mouse clicks and commands to calc.Press
//   - Render: pure view of calculator state, theme and keypad focus
//   - Layout: the geometry Render uses, for mouse hit testing
//   - Focus: keyboard focus on the keypad grid
//   - KeybindRegistry / KeyHandler: single keys and SPC-leader sequences
//   - ThemeMode: dark/light palette selection
package ui
