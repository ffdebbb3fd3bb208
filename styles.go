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

import "github.com/charmbracelet/lipgloss"

// Styles holds all the styling for terminal output
type Styles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	Heading       lipgloss.Style
	Step          lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	Pass          lipgloss.Style
	Fail          lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		Heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		Step: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Pass: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		Fail: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}
