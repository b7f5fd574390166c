// Package seed supplies the initial catalog contents.
package seed

import "github.com/dshills/superheroes/internal/hero"

// Default returns the built-in ten-record catalog. Each call returns a new slice.
func Default() []hero.Record {
	return []hero.Record{
		rec("ForgetMeNot", "People forget he exists unless looking at him", "Isolation due to his power", "2014", hero.UniverseMarvel, 7),
		rec("Hindsight Lad", "Can analyze battles after they happen", "Only useful after the fact", "1993", hero.UniverseMarvel, 5),
		rec("Skin", "Has six extra feet of stretchable skin", "Gray pallor, hygiene issues", "1994", hero.UniverseMarvel, 6),
		rec("Bailey Hoskins", "Can create a massive explosion", "The explosion kills him", "2016", hero.UniverseMarvel, 8),
		rec("Apalla", "Manifestation of Earth's sun, heat blasts", "Lost power and memory", "1977", hero.UniverseMarvel, 4),
		rec("Alpha", "Hyperkinetic energy manipulation", "Reckless use of power", "2012", hero.UniverseMarvel, 9),
		rec("Lionheart", "Super strength, sword combat", "Cannot reunite with her children", "2004", hero.UniverseMarvel, 3),
		rec("Krypto", "Super strength, flight", "Still has a dog's intelligence", "1955", hero.UniverseDC, 10),
		rec("Plastic Man", "Extreme elasticity, shape-shifting", "Vulnerable to extreme cold", "1941", hero.UniverseDC, 2),
		rec("Mr. Immortal", "Cannot die, resurrects instantly", "No other powers, reckless", "1989", hero.UniverseMarvel, 1),
	}
}

func rec(name, power, weakness, year, universe string, rank int) hero.Record {
	return hero.Record{
		Details: hero.Details{
			Name:           name,
			Power:          power,
			Weakness:       weakness,
			YearIntroduced: year,
			Universe:       universe,
		},
		Rank: rank,
	}
}
