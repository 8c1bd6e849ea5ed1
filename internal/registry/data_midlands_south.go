package registry

// midlandsAndSouthResources covers the Midlands, the South and the East.
func midlandsAndSouthResources() []Resource {
	return []Resource{
		{
			ID:            "saving-lives-birmingham",
			Title:         "Saving Lives",
			Description:   "Birmingham-based HIV awareness charity with testing promotion and specialist clinical links.",
			Category:      "hiv testing and awareness",
			JourneyStages: []JourneyStage{StageStabilization, StageGrowth},
			Locations:     []UKLocation{"birmingham"},
			Cost:          CostFree,
			Emergency:     false,
			Availability:  "Online and clinic referral",
			Website:       "https://savinglivesuk.com",
		},
		{
			ID:            "umbrella-birmingham",
			Title:         "Umbrella Sexual Health",
			Description:   "Birmingham and Solihull NHS sexual health service with urgent PEP access and free HIV testing.",
			Category:      "sexual health clinic",
			JourneyStages: []JourneyStage{StageCrisis, StageStabilization},
			Locations:     []UKLocation{"birmingham", "coventry"},
			Cost:          CostNHSFunded,
			Emergency:     true,
			Availability:  "Mon-Sat, walk-in and booked",
			Phone:         "0121 237 5700",
			Website:       "https://umbrellahealth.co.uk",
		},
		{
			ID:            "trade-leicester",
			Title:         "Trade Sexual Health",
			Description:   "East Midlands LGBTQ+ sexual health charity offering testing, support groups and one-to-one work.",
			Category:      "lgbtq health and wellbeing",
			JourneyStages: []JourneyStage{StageStabilization, StageGrowth, StageCommunityHealing},
			Locations:     []UKLocation{"leicester", "nottingham"},
			Cost:          CostFree,
			Cultural:      CulturalCompetency{LGBTQSpecific: true},
			Emergency:     false,
			Availability:  "Mon-Fri 10am-6pm",
			Phone:         "0116 254 1747",
			Website:       "https://www.tradesexualhealth.com",
		},
		{
			ID:            "unity-bristol",
			Title:         "Unity Sexual Health",
			Description:   "Bristol NHS sexual health service providing HIV care, PEP and PrEP consultations.",
			Category:      "sexual health clinic",
			JourneyStages: []JourneyStage{StageCrisis, StageStabilization},
			Locations:     []UKLocation{"bristol"},
			Cost:          CostNHSFunded,
			Emergency:     true,
			Availability:  "Mon-Fri 8:30am-5pm",
			Phone:         "0117 342 6900",
			Website:       "https://www.unitysexualhealth.co.uk",
		},
		{
			ID:            "brighton-lunch-positive",
			Title:         "Lunch Positive",
			Description:   "Brighton peer lunch club and community space for people living with HIV.",
			Category:      "peer support",
			JourneyStages: []JourneyStage{StageGrowth, StageCommunityHealing},
			Locations:     []UKLocation{"brighton"},
			Cost:          CostFree,
			Emergency:     false,
			Availability:  "Fridays 12-3pm",
			Phone:         "07846 464 384",
			Website:       "https://lunchpositive.org",
		},
	}
}
