// Copyright 2025 Naren Yellavula
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

package main

import "testing"

func TestDetectTerminalMode(t *testing.T) {
	testCases := []struct {
		Name      string
		ColorFgBg string
		Theme     string
		Expected  TerminalMode
	}{
		{Name: "Default", Expected: TerminalModeDark},
		{Name: "Dark Background", ColorFgBg: "15;0", Expected: TerminalModeDark},
		{Name: "Light Background", ColorFgBg: "0;15", Expected: TerminalModeLight},
		{Name: "Theme Variable", Theme: "Solarized Light", Expected: TerminalModeLight},
		{Name: "Unknown Background Falls Through", ColorFgBg: "0;3", Theme: "dark", Expected: TerminalModeDark},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Setenv("COLORFGBG", tc.ColorFgBg)
			t.Setenv("TERM_THEME", tc.Theme)
			t.Setenv("THEME", "")
			if got := detectTerminalMode(); got != tc.Expected {
				t.Errorf("detectTerminalMode() = %v; want %v", got, tc.Expected)
			}
		})
	}
}

func TestLightModeUsesDarkerEscapes(t *testing.T) {
	t.Setenv("COLORFGBG", "0;15")
	InitializeColors()
	t.Cleanup(func() {
		detectedMode = TerminalModeDark
		currentColorScheme = createDarkColorScheme()
		Green, Info, Warning, Red, Reset = GetANSIColors()
	})

	if Green != "\033[32m" {
		t.Errorf("Green = %q; want dark green escape", Green)
	}
	if GetColorScheme().Text != createLightColorScheme().Text {
		t.Error("light scheme not selected")
	}
}
