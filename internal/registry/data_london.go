package registry

// londonResources covers Greater London services.
func londonResources() []Resource {
	return []Resource{
		{
			ID:            "dean-street",
			Title:         "56 Dean Street",
			Description:   "Soho sexual health clinic offering same-day HIV testing, rapid ART start and walk-in PEP.",
			Category:      "sexual health clinic",
			JourneyStages: []JourneyStage{StageCrisis, StageStabilization},
			Locations:     []UKLocation{"london"},
			Cost:          CostNHSFunded,
			Cultural:      CulturalCompetency{LGBTQSpecific: true},
			Emergency:     true,
			Availability:  "Mon-Fri 8am-7pm, Sat 9am-5pm",
			Phone:         "020 3315 6699",
			Website:       "https://www.dean.st",
		},
		{
			ID:            "naz-project",
			Title:         "NAZ",
			Description:   "Sexual health charity serving Black, South Asian and other racially minoritised communities, with culturally specific HIV support.",
			Category:      "culturally specific support",
			JourneyStages: []JourneyStage{StageStabilization, StageGrowth, StageCommunityHealing},
			Locations:     []UKLocation{"london"},
			Cost:          CostFree,
			Cultural:      CulturalCompetency{BlackSpecific: true, FaithSensitive: true},
			Emergency:     false,
			Availability:  "Mon-Fri 9:30am-5:30pm",
			Phone:         "020 8741 1879",
			Website:       "https://www.naz.org.uk",
		},
		{
			ID:            "positive-east",
			Title:         "Positive East",
			Description:   "East London HIV charity offering testing, casework and long-term support for people living with HIV.",
			Category:      "hiv support centre",
			JourneyStages: []JourneyStage{StageCrisis, StageStabilization, StageGrowth},
			Locations:     []UKLocation{"london", "hackney"},
			Cost:          CostFree,
			Emergency:     false,
			Availability:  "Mon-Fri 10am-5pm",
			Phone:         "020 7791 2855",
			Website:       "https://www.positiveeast.org.uk",
		},
		{
			ID:            "metro-charity",
			Title:         "METRO Charity",
			Description:   "Equality and diversity charity providing LGBTQ+ affirming sexual health and wellbeing services across south London.",
			Category:      "lgbtq health and wellbeing",
			JourneyStages: []JourneyStage{StageGrowth, StageCommunityHealing},
			Locations:     []UKLocation{"london", "croydon"},
			Cost:          CostFree,
			Cultural:      CulturalCompetency{LGBTQSpecific: true},
			Emergency:     false,
			Availability:  "Mon-Fri 9am-5pm",
			Phone:         "020 8305 5000",
			Website:       "https://metrocharity.org.uk",
		},
		{
			ID:            "food-chain",
			Title:         "The Food Chain",
			Description:   "Nutrition and meal support for people living with HIV in London who are in crisis or recently out of hospital.",
			Category:      "practical support",
			JourneyStages: []JourneyStage{StageCrisis, StageStabilization},
			Locations:     []UKLocation{"london"},
			Cost:          CostFree,
			Emergency:     false,
			Availability:  "Referral-based",
			Website:       "https://www.foodchain.org.uk",
		},
	}
}
