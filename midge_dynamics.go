package vectra

import "math"

// ApplyMortalityAndEIP applies one day of temperature-driven mortality and
// staged EIP progression to the midge grid, in place. The outer loop
// strides over temperature-grid cells and only updates the midge-grid
// cell at the top-left corner of the block each temperature cell covers;
// midge cells elsewhere in the block are left untouched this step. This
// is the coupling spec.md prescribes, not an oversight — see DESIGN.md.
func ApplyMortalityAndEIP(grid *MidgeGrid, weather *WeatherGrid, profile VectorProfile, dayOfYear int) {
	stride := Stride(grid, weather)
	n := grid.NumEIPStages
	for ti := 0; ti < weather.Rows; ti++ {
		for tj := 0; tj < weather.Cols; tj++ {
			row, col := ti*stride, tj*stride
			if !grid.InBounds(row, col) {
				continue
			}
			t := weather.Temp[ti][tj][dayOfYear]
			sigma := math.Exp(-profile.MortalityRate(t))
			iota := float64(n) * profile.IncubationRate(t)

			grid.Inf[row][col] *= sigma
			for s := 0; s < n; s++ {
				grid.Latent[s][row][col] *= sigma
			}
			if iota > 0 && grid.LatentTotal(row, col) > 0 {
				redistributeEIP(grid, row, col, iota)
			}
		}
	}
}

// redistributeEIP moves latent mass at (row,col) through the EIP staged
// chain using a discrete-time staged-Poisson progression, per spec.md
// §4.3, and adds whatever mass has emerged to the infectious field.
func redistributeEIP(grid *MidgeGrid, row, col int, iota float64) {
	n := grid.NumEIPStages
	old := make([]float64, n)
	for k := 0; k < n; k++ {
		old[k] = grid.Latent[k][row][col]
	}
	newLatent := make([]float64, n)
	for stage := 0; stage < n; stage++ {
		sum := 0.0
		for k := 0; k <= stage; k++ {
			sum += old[k] * PoissonPMF(stage-k, iota)
		}
		newLatent[stage] = sum
	}
	deltaInf := 0.0
	for k := 0; k < n; k++ {
		deltaInf += old[k] * PoissonSurvival(n-k-1, iota)
	}
	for k := 0; k < n; k++ {
		grid.Latent[k][row][col] = newLatent[k]
	}
	grid.Inf[row][col] += deltaInf
}

// Diffuse performs explicit-Euler 2-D diffusion of the midge grid over
// one full day, sub-stepping by dt. Boundary cells are absorbing: flux is
// only computed out of interior cells, so mass that reaches a boundary
// cell accumulates there instead of diffusing further. Order: all latent
// stages, then the infectious field, matching spec.md §4.4.
func Diffuse(grid *MidgeGrid, dt float64) {
	if dt <= 0 {
		return
	}
	h2 := grid.CellWidth * grid.CellWidth
	elapsed := 0.0
	for elapsed < 1.0 {
		step := dt
		if elapsed+step > 1.0 {
			step = 1.0 - elapsed
		}
		for s := 0; s < grid.NumEIPStages; s++ {
			diffuseField(grid, grid.Latent[s], step, h2)
		}
		diffuseField(grid, grid.Inf, step, h2)
		elapsed += step
	}
}

// diffuseField runs one explicit-Euler sub-step of a single field using
// the grid's shared scratch accumulator, which is zero on entry and exit.
func diffuseField(grid *MidgeGrid, field [][]float64, dt, h2 float64) {
	scratch := grid.scratch
	for i := 1; i < grid.Rows-1; i++ {
		for j := 1; j < grid.Cols-1; j++ {
			rho := field[i][j]
			if rho <= DensityEpsilon {
				continue
			}
			flux := grid.Diffusion[i][j] * dt * rho / h2
			scratch[i][j] -= 2 * flux
			scratch[i-1][j] += 0.5 * flux
			scratch[i+1][j] += 0.5 * flux
			scratch[i][j-1] += 0.5 * flux
			scratch[i][j+1] += 0.5 * flux
		}
	}
	for i := 0; i < grid.Rows; i++ {
		for j := 0; j < grid.Cols; j++ {
			field[i][j] += scratch[i][j]
			scratch[i][j] = 0
		}
	}
}
