package registry

// northernResources covers the North West, North East and Yorkshire.
func northernResources() []Resource {
	return []Resource{
		{
			ID:            "george-house-trust",
			Title:         "George House Trust",
			Description:   "Manchester HIV charity providing advice, advocacy and peer support for anyone living with or affected by HIV.",
			Category:      "hiv support centre",
			JourneyStages: []JourneyStage{StageStabilization, StageGrowth, StageAdvocacy},
			Locations:     []UKLocation{"manchester"},
			Cost:          CostFree,
			Emergency:     false,
			Availability:  "Mon-Fri 10am-4pm",
			Phone:         "0161 274 4499",
			Website:       "https://ght.org.uk",
		},
		{
			ID:            "lgbt-foundation",
			Title:         "LGBT Foundation",
			Description:   "Manchester-based charity delivering LGBTQ+ affirming sexual health services, helpline and community programmes.",
			Category:      "lgbtq health and wellbeing",
			JourneyStages: []JourneyStage{StageCrisis, StageStabilization, StageCommunityHealing},
			Locations:     []UKLocation{"manchester"},
			Cost:          CostFree,
			Cultural:      CulturalCompetency{LGBTQSpecific: true},
			Emergency:     false,
			Availability:  "Helpline Mon-Fri 9am-9pm",
			Phone:         "0345 3 30 30 30",
			Website:       "https://lgbt.foundation",
		},
		{
			ID:            "bha-equality",
			Title:         "BHA for Equality",
			Description:   "Health inequality charity supporting African and Caribbean heritage communities across Greater Manchester, including HIV prevention and support.",
			Category:      "culturally specific support",
			JourneyStages: []JourneyStage{StageStabilization, StageGrowth, StageCommunityHealing},
			Locations:     []UKLocation{"manchester"},
			Cost:          CostFree,
			Cultural:      CulturalCompetency{BlackSpecific: true, FaithSensitive: true},
			Emergency:     false,
			Availability:  "Mon-Fri 9am-5pm",
			Phone:         "0845 450 4247",
			Website:       "https://thebha.org.uk",
		},
		{
			ID:            "northern-sexual-health",
			Title:         "The Northern Contraception, Sexual Health and HIV Service",
			Description:   "Manchester NHS sexual health service with walk-in urgent care, PEP and rapid HIV testing.",
			Category:      "sexual health clinic",
			JourneyStages: []JourneyStage{StageCrisis, StageStabilization},
			Locations:     []UKLocation{"manchester"},
			Cost:          CostNHSFunded,
			Emergency:     true,
			Availability:  "Mon-Fri 8:45am-6pm",
			Phone:         "0161 701 1555",
			Website:       "https://mft.nhs.uk/the-northern",
		},
		{
			ID:            "sahir-house",
			Title:         "Sahir House",
			Description:   "Liverpool HIV support centre offering counselling, welfare advice and LGBTQ+ community space.",
			Category:      "hiv support centre",
			JourneyStages: []JourneyStage{StageStabilization, StageGrowth, StageCommunityHealing},
			Locations:     []UKLocation{"liverpool"},
			Cost:          CostFree,
			Cultural:      CulturalCompetency{LGBTQSpecific: true},
			Emergency:     false,
			Availability:  "Mon-Fri 10am-4pm",
			Phone:         "0151 237 3989",
			Website:       "https://www.sahir.uk",
		},
		{
			ID:            "yorkshire-mesmac",
			Title:         "Yorkshire MESMAC",
			Description:   "Sexual health organisation across Yorkshire offering testing, PrEP support and targeted work with Black and LGBTQ+ communities.",
			Category:      "sexual health outreach",
			JourneyStages: []JourneyStage{StageStabilization, StageGrowth, StageCommunityHealing},
			Locations:     []UKLocation{"leeds", "bradford", "hull"},
			Cost:          CostFree,
			Cultural:      CulturalCompetency{BlackSpecific: true, LGBTQSpecific: true},
			Emergency:     false,
			Availability:  "Mon-Fri 9am-5pm",
			Phone:         "0113 244 4209",
			Website:       "https://www.mesmac.co.uk",
		},
		{
			ID:            "blue-sky-trust",
			Title:         "Blue Sky Trust",
			Description:   "North East charity supporting people living with HIV and their families through peer groups and advocacy.",
			Category:      "peer support",
			JourneyStages: []JourneyStage{StageGrowth, StageCommunityHealing, StageAdvocacy},
			Locations:     []UKLocation{"newcastle", "sunderland"},
			Cost:          CostFree,
			Emergency:     false,
			Availability:  "Mon-Thu 10am-4pm",
			Website:       "https://www.blueskytrust.org",
		},
	}
}
