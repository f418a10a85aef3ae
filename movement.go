package vectra

// ApplyMovement iterates the fixed directed movement edge list in stored
// order, sampling whether each link fires today, applying control
// interruptions, sampling shipment size, and stochastically transferring
// infected animals. Step 5 of the day orchestrator.
func ApplyMovement(state *SimulationState, gen *Generator) {
	edges := state.Edges
	for idx := 0; idx < edges.Len(); idx++ {
		from := state.FarmByID(edges.From[idx])
		to := state.FarmByID(edges.To[idx])
		if from == nil || to == nil {
			continue
		}
		if gen.Uniform() > edges.Risk[idx] {
			continue
		}
		if isInterrupted(from, to) {
			state.Cumulative.InterruptedMovements++
			if from.Sheep.InfectedTotal()+from.Cattle.InfectedTotal() > 0 {
				state.Cumulative.RiskyMovesBlocked++
			}
			continue
		}
		applyShipment(state, gen, from, to)
	}
}

// isInterrupted reports whether a move from `from` to `to` is blocked by
// the control engine's current flags, per spec.md §4.5 step 2.
func isInterrupted(from, to *Farm) bool {
	if from.MovementBanned || to.MovementBanned {
		return true
	}
	if from.ProtectionZone && !to.ProtectionZone {
		return true
	}
	if from.SurveillanceZone && to.FreeArea {
		return true
	}
	return false
}

// applyShipment picks a species, samples a shipment size, and transfers
// animals (tracking infection state) from `from` to `to`.
func applyShipment(state *SimulationState, gen *Generator, from, to *Farm) {
	totalSheep := from.Sheep.Total()
	totalCattle := from.Cattle.Total()
	if totalSheep+totalCattle <= 0 {
		return
	}
	cattleMove := gen.Uniform() > totalSheep/(totalSheep+totalCattle)

	var source, dest *HostCompartment
	var k, p float64
	if cattleMove {
		source, dest = &from.Cattle, &to.Cattle
		k, p = state.Movement.CattleShipmentK, state.Movement.CattleShipmentP
	} else {
		source, dest = &from.Sheep, &to.Sheep
		k, p = state.Movement.SheepShipmentK, state.Movement.SheepShipmentP
	}

	total := source.Total()
	if total <= 0 {
		return
	}
	size := 1 + gen.NegBinomial(k, p)
	if float64(size) > total {
		size = int(total)
	}
	if size <= 0 {
		return
	}

	infCount := source.InfectedTotal()
	totalCount := total
	transmitted := false
	for a := 0; a < size && totalCount > 0; a++ {
		if gen.Uniform() < infCount/totalCount {
			stage := proportionalStage(gen, source.I, infCount)
			source.I[stage]--
			dest.I[stage]++
			infCount--
			transmitted = true
			if !to.EverBeenInfected {
				to.FirstInfectedDueToMovement = true
			}
			to.EverBeenInfected = true
		} else if source.S > 0 {
			source.S--
			dest.S++
		} else if source.R > 0 {
			source.R--
			dest.R++
		}
		totalCount--
	}
	if transmitted {
		state.Cumulative.MovementTransmissions++
	}
}

// proportionalStage samples an Erlang stage index proportional to the
// mass in each stage of infStages, which sums to infTotal.
func proportionalStage(gen *Generator, infStages []float64, infTotal float64) int {
	if infTotal <= 0 {
		return 0
	}
	r := gen.Uniform() * infTotal
	cum := 0.0
	for i, v := range infStages {
		cum += v
		if r < cum {
			return i
		}
	}
	return len(infStages) - 1
}
