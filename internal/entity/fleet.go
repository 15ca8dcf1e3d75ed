package entity

import "image"

// FleetLayout returns the top-left corners of the aliens of a full fleet.
// Aliens are spaced one alien width apart with a one alien margin on both
// sides; rows stop far enough above the ship to leave it room to shoot.
// maxRows caps the number of rows when positive.
func FleetLayout(bounds image.Rectangle, alienW, alienH, shipH, maxRows int) []image.Point {
	if alienW <= 0 || alienH <= 0 {
		return nil
	}

	cols := (bounds.Dx() - 2*alienW) / (2 * alienW)
	rows := (bounds.Dy() - 3*alienH - shipH) / (2 * alienH)
	if maxRows > 0 && rows > maxRows {
		rows = maxRows
	}
	if cols <= 0 || rows <= 0 {
		return nil
	}

	points := make([]image.Point, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			points = append(points, image.Pt(
				bounds.Min.X+alienW+2*alienW*col,
				bounds.Min.Y+alienH+2*alienH*row,
			))
		}
	}
	return points
}
