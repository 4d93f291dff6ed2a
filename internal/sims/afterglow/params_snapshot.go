package afterglow

import (
	"strconv"

	"afterglow/internal/core"
)

// Parameters reports the grid settings and live counters for the HUD.
func (a *Automata) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("size", "Size", a.size),
				intParam("trail_max", "Afterglow", TrailMax),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				{Key: "pattern", Label: "Pattern", Type: core.ParamTypeString, Value: a.cfg.Pattern},
				int64Param("seed", "Seed", a.cfg.Seed),
				floatParam("density", "Density", a.cfg.Density),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("generation", "Generation", a.generation),
				intParam("population", "Population", a.population),
				intParam("pending", "Pending changes", a.dirty.len()),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
