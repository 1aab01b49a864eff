package catalog

import "Cablesize/internal/calc/conductor"

// Standard low-voltage sections with their continuous ampacity (PVC
// insulation, two loaded conductors, installation in conduit at 30 °C) and a
// reference price per metre of single conductor.
var tables = map[conductor.Material][]Entry{
	conductor.Copper: {
		{SectionMM2: 1.5, AmpacityA: 21, CostPerM: 0.45},
		{SectionMM2: 2.5, AmpacityA: 30, CostPerM: 0.70},
		{SectionMM2: 4, AmpacityA: 40, CostPerM: 1.10},
		{SectionMM2: 6, AmpacityA: 54, CostPerM: 1.60},
		{SectionMM2: 10, AmpacityA: 75, CostPerM: 2.60},
		{SectionMM2: 16, AmpacityA: 100, CostPerM: 4.10},
		{SectionMM2: 25, AmpacityA: 133, CostPerM: 6.40},
		{SectionMM2: 35, AmpacityA: 164, CostPerM: 8.90},
		{SectionMM2: 50, AmpacityA: 198, CostPerM: 12.70},
		{SectionMM2: 70, AmpacityA: 253, CostPerM: 17.80},
		{SectionMM2: 95, AmpacityA: 306, CostPerM: 24.10},
		{SectionMM2: 120, AmpacityA: 354, CostPerM: 30.50},
	},
	conductor.Aluminum: {
		{SectionMM2: 16, AmpacityA: 76, CostPerM: 1.30},
		{SectionMM2: 25, AmpacityA: 98, CostPerM: 1.80},
		{SectionMM2: 35, AmpacityA: 121, CostPerM: 2.30},
		{SectionMM2: 50, AmpacityA: 147, CostPerM: 3.10},
		{SectionMM2: 70, AmpacityA: 187, CostPerM: 4.20},
		{SectionMM2: 95, AmpacityA: 226, CostPerM: 5.50},
		{SectionMM2: 120, AmpacityA: 263, CostPerM: 6.80},
	},
}
