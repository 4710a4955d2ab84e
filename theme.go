package main

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Teal      = lipgloss.Color("#00D4AA")
	SoftBlue  = lipgloss.Color("#5FAFFF")
	Amber     = lipgloss.Color("#FFB347")
	DimGray   = lipgloss.Color("#3a3a4e")
	MidGray   = lipgloss.Color("#6a6a7e")
	LightGray = lipgloss.Color("#aaaaaa")
	White     = lipgloss.Color("#e0e0e0")
	Red       = lipgloss.Color("#FF4136")
	GreenOK   = lipgloss.Color("#39FF14")

	// Form
	TitleStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	LabelFocusStyle = lipgloss.NewStyle().
			Foreground(SoftBlue).
			Bold(true)

	SliderFillStyle = lipgloss.NewStyle().
			Foreground(SoftBlue)

	SliderEmptyStyle = lipgloss.NewStyle().
				Foreground(DimGray)

	SummaryStyle = lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true)

	// Status line
	StatusOKStyle = lipgloss.NewStyle().
			Foreground(GreenOK)

	StatusErrStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// Table page
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(Teal).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(DimGray).
				BorderBottom(true)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(DimGray).
				Bold(true)

	ConfirmStyle = lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(MidGray)

	FrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(1, 2)
)
