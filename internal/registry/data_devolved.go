package registry

// devolvedNationsResources covers Scotland, Wales and Northern Ireland.
func devolvedNationsResources() []Resource {
	return []Resource{
		{
			ID:            "waverley-care",
			Title:         "Waverley Care",
			Description:   "Scotland's HIV and hepatitis C charity, with one-to-one support, African health projects and peer groups.",
			Category:      "hiv support centre",
			JourneyStages: []JourneyStage{StageCrisis, StageStabilization, StageGrowth, StageCommunityHealing},
			Locations:     []UKLocation{"edinburgh", "glasgow"},
			Cost:          CostFree,
			Cultural:      CulturalCompetency{BlackSpecific: true},
			Emergency:     false,
			Availability:  "Mon-Fri 9am-5pm",
			Phone:         "0131 556 9710",
			Website:       "https://www.waverleycare.org",
		},
		{
			ID:            "sandyford-glasgow",
			Title:         "Sandyford Sexual Health",
			Description:   "Glasgow NHS sexual health service with emergency PEP provision and HIV care.",
			Category:      "sexual health clinic",
			JourneyStages: []JourneyStage{StageCrisis, StageStabilization},
			Locations:     []UKLocation{"glasgow"},
			Cost:          CostNHSFunded,
			Emergency:     true,
			Availability:  "Mon-Fri 8:30am-4:30pm",
			Phone:         "0141 211 8130",
			Website:       "https://www.sandyford.scot",
		},
		{
			ID:            "fast-track-cardiff",
			Title:         "Fast Track Cardiff & Vale",
			Description:   "Partnership working to end new HIV transmissions in Cardiff, with community testing and stigma campaigns.",
			Category:      "hiv testing and awareness",
			JourneyStages: []JourneyStage{StageGrowth, StageAdvocacy},
			Locations:     []UKLocation{"cardiff"},
			Cost:          CostFree,
			Emergency:     false,
			Availability:  "Campaign and event based",
			Website:       "https://www.fasttrackcardiff.wales",
		},
		{
			ID:            "positive-life-ni",
			Title:         "Positive Life",
			Description:   "Northern Ireland's HIV charity providing counselling, advocacy and peer support.",
			Category:      "hiv support centre",
			JourneyStages: []JourneyStage{StageCrisis, StageStabilization, StageGrowth, StageAdvocacy},
			Locations:     []UKLocation{"belfast"},
			Cost:          CostFree,
			Emergency:     false,
			Availability:  "Mon-Fri 9am-5pm",
			Phone:         "0800 137 437",
			Website:       "https://positivelifeni.com",
		},
	}
}
