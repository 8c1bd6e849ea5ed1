package registry

// nationwideResources covers services reachable from anywhere in the UK.
func nationwideResources() []Resource {
	return []Resource{
		{
			ID:            "samaritans",
			Title:         "Samaritans",
			Description:   "Free, confidential emotional support for anyone in distress or at risk of suicide.",
			Category:      "crisis support",
			JourneyStages: []JourneyStage{StageCrisis},
			Locations:     []UKLocation{LocationNationwide},
			Cost:          CostFree,
			Emergency:     true,
			Availability:  "24/7",
			Phone:         "116 123",
			Website:       "https://www.samaritans.org",
		},
		{
			ID:            "nhs-111",
			Title:         "NHS 111",
			Description:   "Urgent medical help and advice when it is not a life-threatening emergency, including urgent PEP access advice.",
			Category:      "urgent medical advice",
			JourneyStages: []JourneyStage{StageCrisis, StageStabilization},
			Locations:     []UKLocation{LocationNationwide},
			Cost:          CostNHSFunded,
			Emergency:     true,
			Availability:  "24/7",
			Phone:         "111",
			Website:       "https://111.nhs.uk",
		},
		{
			ID:            "tht-direct",
			Title:         "THT Direct",
			Description:   "Terrence Higgins Trust helpline for questions about HIV, testing, treatment and living well.",
			Category:      "hiv support helpline",
			JourneyStages: []JourneyStage{StageCrisis, StageStabilization, StageGrowth},
			Locations:     []UKLocation{LocationNationwide},
			Cost:          CostFree,
			Emergency:     false,
			Availability:  "Mon-Fri 10am-6pm",
			Phone:         "0808 802 1221",
			Website:       "https://www.tht.org.uk",
		},
		{
			ID:            "sexual-health-line",
			Title:         "National Sexual Health Helpline",
			Description:   "Confidential advice on sexual health, contraception and local clinic access.",
			Category:      "sexual health advice",
			JourneyStages: []JourneyStage{StageStabilization, StageGrowth},
			Locations:     []UKLocation{LocationNationwide},
			Cost:          CostFree,
			Emergency:     false,
			Availability:  "Mon-Fri 9am-8pm",
			Phone:         "0300 123 7123",
		},
		{
			ID:            "switchboard-lgbt",
			Title:         "Switchboard LGBT+ Helpline",
			Description:   "Listening service run by and for LGBTQ+ people, covering sexual health, identity and wellbeing.",
			Category:      "lgbtq support helpline",
			JourneyStages: []JourneyStage{StageCrisis, StageStabilization, StageCommunityHealing},
			Locations:     []UKLocation{LocationNationwide},
			Cost:          CostFree,
			Cultural:      CulturalCompetency{LGBTQSpecific: true},
			Emergency:     false,
			Availability:  "Daily 10am-10pm",
			Phone:         "0800 0119 100",
			Website:       "https://switchboard.lgbt",
		},
		{
			ID:            "positively-uk",
			Title:         "Positively UK",
			Description:   "Peer-led support for people living with HIV, including one-to-one peer mentoring after diagnosis.",
			Category:      "peer support",
			JourneyStages: []JourneyStage{StageStabilization, StageGrowth, StageCommunityHealing},
			Locations:     []UKLocation{LocationNationwide},
			Cost:          CostFree,
			Emergency:     false,
			Availability:  "Mon-Fri 10am-4pm",
			Phone:         "020 7713 0444",
			Website:       "https://positivelyuk.org",
		},
		{
			ID:            "national-aids-trust",
			Title:         "National AIDS Trust",
			Description:   "Policy and rights organisation challenging HIV discrimination; guidance on legal rights at work and in healthcare.",
			Category:      "advocacy and rights",
			JourneyStages: []JourneyStage{StageAdvocacy, StageGrowth},
			Locations:     []UKLocation{LocationNationwide},
			Cost:          CostFree,
			Emergency:     false,
			Availability:  "Online resources",
			Website:       "https://www.nat.org.uk",
		},
		{
			ID:            "uk-cab",
			Title:         "UK Community Advisory Board",
			Description:   "Network of community HIV treatment advocates; a route into treatment activism and community representation.",
			Category:      "community advocacy",
			JourneyStages: []JourneyStage{StageCommunityHealing, StageAdvocacy},
			Locations:     []UKLocation{LocationNationwide},
			Cost:          CostFree,
			Emergency:     false,
			Availability:  "Quarterly meetings",
			Website:       "https://www.ukcab.net",
		},
	}
}
