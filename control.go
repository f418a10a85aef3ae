package vectra

// RunControl is step 2 of the day orchestrator: it is a no-op under
// no_control, otherwise it tallies one ban-day for every farm currently
// under a movement ban. The one-shot reactions to detection (movement
// bans, restriction zone classification, active surveillance) are not
// run here; TriggerDetection applies them at the moment a farm is
// detected, so they are already in effect for the next movement step.
func RunControl(state *SimulationState, gen *Generator) {
	if state.Control.NoControl {
		return
	}
	for _, f := range state.Farms {
		if f.MovementBanned {
			state.Cumulative.BanDays++
		}
	}
}

// TriggerDetection marks a farm as newly detected and fires every
// one-shot reaction spec.md's control section ties to first detection:
// global observation flag, per-farm movement ban (local, county, or
// total depending on config), restriction zone classification around
// the first-detected farm, and a single unconditional active
// surveillance sweep.
func TriggerDetection(state *SimulationState, farm *Farm, gen *Generator) {
	if farm.Detected {
		return
	}
	farm.Detected = true
	farm.EverBeenDetected = true
	state.Daily.Detections++

	if !state.BTVObserved {
		state.BTVObserved = true
		state.FirstDetectedFarmID = farm.ID
	}
	state.DaysSinceLastDetection = 0

	if state.Control.NoControl {
		return
	}
	if !state.Control.NoFarmBan {
		applyMovementBan(state, farm)
	}
	if state.Control.RestrictionZones && !state.RestrictionZonesImplemented {
		if first := state.FarmByID(state.FirstDetectedFarmID); first != nil {
			applyRestrictionZones(state, first)
		}
	}
	if !state.ActiveSurveillancePerformed {
		state.ActiveSurveillancePerformed = true
		runActiveSurveillance(state, farm, gen)
	}
}

// applyMovementBan bans the detected farm itself, then either every
// farm in the same county, every farm in the whole population, or every
// farm within the control engine's local ban radius, depending on which
// switch is set. LocalFarmIDs is populated lazily here, on first use.
func applyMovementBan(state *SimulationState, farm *Farm) {
	farm.MovementBanned = true
	farm.FreeArea = false

	if state.Control.TotalBan {
		for _, f := range state.Farms {
			f.MovementBanned = true
			f.FreeArea = false
		}
		return
	}
	if state.Control.CountyBan {
		for _, f := range state.Farms {
			if f.County == farm.County {
				f.MovementBanned = true
				f.FreeArea = false
			}
		}
		return
	}

	if farm.LocalFarmIDs == nil {
		radius2 := state.Control.BanRadius * state.Control.BanRadius
		local := make([]int, 0)
		for _, f := range state.Farms {
			if f.ID == farm.ID {
				continue
			}
			if distanceSquared(farm, f) <= radius2 {
				local = append(local, f.ID)
			}
		}
		farm.LocalFarmIDs = local
	}
	for _, id := range farm.LocalFarmIDs {
		if f := state.FarmByID(id); f != nil {
			f.MovementBanned = true
			f.FreeArea = false
		}
	}
}

// applyRestrictionZones classifies every farm within the control
// engine's protection-zone and surveillance-zone radii of a detected
// farm. A farm already in the tighter protection zone is never
// downgraded to surveillance-only.
func applyRestrictionZones(state *SimulationState, farm *Farm) {
	pz2 := state.Control.PZRadius * state.Control.PZRadius
	sz2 := state.Control.SZRadius * state.Control.SZRadius
	for _, f := range state.Farms {
		d2 := distanceSquared(farm, f)
		if d2 <= pz2 {
			f.ProtectionZone = true
			f.FreeArea = false
		} else if d2 <= sz2 {
			if !f.ProtectionZone {
				f.SurveillanceZone = true
			}
			f.FreeArea = false
		}
	}
	state.RestrictionZonesImplemented = true
}

// runActiveSurveillance performs the single active-surveillance sweep
// this run ever does: every farm within the fixed 15km radius of the
// triggering farm is checked, unconditional on season, and its hidden
// infection (if any) surfaces as a detection.
func runActiveSurveillance(state *SimulationState, farm *Farm, gen *Generator) {
	radius2 := ActiveSurveillanceRadiusMeters * ActiveSurveillanceRadiusMeters
	for _, f := range state.Farms {
		if distanceSquared(farm, f) > radius2 {
			continue
		}
		state.Cumulative.FarmsChecked++
		state.Cumulative.Tests++
		if f.Sheep.InfectedTotal()+f.Cattle.InfectedTotal() > 0 {
			state.Cumulative.PositiveTests++
			if !f.Detected {
				TriggerDetection(state, f, gen)
			}
		}
	}
}
