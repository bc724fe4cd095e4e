package league

import "strings"

// StylePoint is one team on a playing-style scatter.
type StylePoint struct {
	Team      string
	X         float64
	Y         float64
	Highlight bool
}

// Style is a scatter of teams with the axis means.
type Style struct {
	Points []StylePoint
	MeanX  float64
	MeanY  float64
}

// OffensiveStyle plots build-up efficacy (x) against finishing efficacy (y).
func OffensiveStyle(rows []TeamAverage, team string) (Style, bool) {
	return scatter(rows, team, OffensiveEfficacy, FinishingEfficacy)
}

// DefensiveStyle plots defensive containment (x) against avoidance efficacy (y).
func DefensiveStyle(rows []TeamAverage, team string) (Style, bool) {
	return scatter(rows, team, DefensiveContainment, AvoidanceEfficacy)
}

// scatter drops teams missing either coordinate and reports false when
// none remain.
func scatter(rows []TeamAverage, team string, x, y func(TeamAverage) (float64, bool)) (Style, bool) {
	var style Style
	var sumX, sumY float64
	for _, row := range rows {
		vx, okX := x(row)
		vy, okY := y(row)
		if !okX || !okY {
			continue
		}
		style.Points = append(style.Points, StylePoint{
			Team:      row.Team,
			X:         vx,
			Y:         vy,
			Highlight: strings.EqualFold(row.Team, team),
		})
		sumX += vx
		sumY += vy
	}
	if len(style.Points) == 0 {
		return Style{}, false
	}
	n := float64(len(style.Points))
	style.MeanX = Round2(sumX / n)
	style.MeanY = Round2(sumY / n)
	return style, true
}
