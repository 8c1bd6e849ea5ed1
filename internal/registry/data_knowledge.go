package registry

import "time"

// knowledgeEntries is the editorial knowledge base. Dates are the last
// editorial review, not publication.
func knowledgeEntries() []KnowledgeEntry {
	return []KnowledgeEntry{
		{
			ID:       "k-u-equals-u",
			Content:  "Undetectable = Untransmittable: a person living with HIV who is on effective treatment and maintains an undetectable viral load cannot pass HIV on through sex.",
			Category: "treatment",
			JourneyStages: []JourneyStage{
				StageCrisis, StageStabilization, StageGrowth,
			},
			Locations:          []UKLocation{LocationNationwide},
			Tags:               []string{"u=u", "viral load", "treatment", "transmission"},
			Sources:            []string{"https://www.aidsmap.com/about-hiv/undetectable-viral-load-and-transmission", "https://www.tht.org.uk/hiv-and-sexual-health/living-well-hiv/hiv-and-sex"},
			LastUpdated:        time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC),
			Verification:       StatusVerified,
			CommunityValidated: true,
		},
		{
			ID:       "k-prep-nhs",
			Content:  "PrEP (pre-exposure prophylaxis) is free on the NHS across the UK through sexual health clinics. A clinic consultation covers kidney function testing and choosing daily or event-based dosing.",
			Category: "prevention",
			JourneyStages: []JourneyStage{
				StageGrowth, StageStabilization,
			},
			Locations:          []UKLocation{LocationNationwide},
			Tags:               []string{"prep", "prevention", "nhs", "sexual health clinic"},
			Sources:            []string{"https://www.nhs.uk/medicines/pre-exposure-prophylaxis-prep/", "https://prepster.info/"},
			LastUpdated:        time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
			Verification:       StatusVerified,
			CommunityValidated: true,
		},
		{
			ID:       "k-pep-window",
			Content:  "PEP (post-exposure prophylaxis) can prevent HIV after a possible exposure but must start within 72 hours, ideally sooner. Outside clinic hours, A&E departments can prescribe it.",
			Category: "prevention",
			JourneyStages: []JourneyStage{
				StageCrisis, StageStabilization,
			},
			Locations:          []UKLocation{LocationNationwide},
			Tags:               []string{"pep", "emergency", "prevention", "72 hours"},
			Sources:            []string{"https://www.tht.org.uk/hiv-and-sexual-health/pep"},
			LastUpdated:        time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
			Verification:       StatusVerified,
			CommunityValidated: false,
		},
		{
			ID:       "k-new-diagnosis",
			Content:  "A new HIV diagnosis is not the emergency it once was. UK clinics usually start treatment within days, and life expectancy on modern treatment is normal. Clinics offer a health adviser at diagnosis, and peer mentors can be arranged through community organisations.",
			Category: "diagnosis",
			JourneyStages: []JourneyStage{
				StageCrisis, StageStabilization,
			},
			Locations:          []UKLocation{LocationNationwide},
			Tags:               []string{"diagnosis", "treatment", "peer support"},
			Sources:            []string{"https://www.aidsmap.com/about-hiv/just-diagnosed"},
			LastUpdated:        time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC),
			Verification:       StatusVerified,
			CommunityValidated: true,
		},
		{
			ID:       "k-testing-windows",
			Content:  "Fourth-generation HIV tests used by UK clinics detect most infections from 4 weeks after exposure and are conclusive at 6 weeks; self-sampling kits may need 7 weeks.",
			Category: "testing",
			JourneyStages: []JourneyStage{
				StageStabilization, StageGrowth,
			},
			Locations:          []UKLocation{LocationNationwide},
			Tags:               []string{"testing", "window period"},
			Sources:            []string{"https://www.aidsmap.com/about-hiv/hiv-testing"},
			LastUpdated:        time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
			Verification:       StatusVerified,
			CommunityValidated: false,
		},
		{
			ID:       "k-disclosure-rights",
			Content:  "There is no general legal duty in the UK to disclose HIV status to employers, and the Equality Act 2010 protects people living with HIV from discrimination at work from the point of diagnosis.",
			Category: "rights",
			JourneyStages: []JourneyStage{
				StageGrowth, StageAdvocacy,
			},
			Locations:          []UKLocation{LocationNationwide},
			Tags:               []string{"disclosure", "legal", "rights", "work"},
			Sources:            []string{"https://www.nat.org.uk/about-hiv/hiv-and-your-rights"},
			LastUpdated:        time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC),
			Verification:       StatusVerified,
			CommunityValidated: false,
		},
		{
			ID:       "k-peer-spaces",
			Content:  "Peer support groups exist in most UK cities and online, including groups specifically for Black communities, LGBTQ+ people, women and young people living with HIV. Community members consistently report peer connection as a turning point after diagnosis.",
			Category: "community",
			JourneyStages: []JourneyStage{
				StageCommunityHealing, StageGrowth,
			},
			Locations:          []UKLocation{LocationNationwide},
			Tags:               []string{"peer support", "community", "groups"},
			Sources:            []string{},
			LastUpdated:        time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC),
			Verification:       StatusPending,
			CommunityValidated: true,
		},
		{
			ID:       "k-mental-health",
			Content:  "Anxiety and low mood are common around diagnosis and manageable with support. HIV clinics can refer into psychology services, and several HIV charities offer free counselling without a GP referral.",
			Category: "mental health",
			JourneyStages: []JourneyStage{
				StageCrisis, StageStabilization,
			},
			Locations:          []UKLocation{LocationNationwide},
			Tags:               []string{"mental health", "counselling", "anxiety"},
			Sources:            []string{"https://www.tht.org.uk/hiv-and-sexual-health/living-well-hiv/mental-health"},
			LastUpdated:        time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC),
			Verification:       StatusVerified,
			CommunityValidated: false,
		},
		{
			ID:       "k-prep-scotland",
			Content:  "In Scotland, PrEP is available free through NHS sexual health services; Sandyford in Glasgow and Chalmers in Edinburgh run dedicated PrEP clinics.",
			Category: "prevention",
			JourneyStages: []JourneyStage{
				StageGrowth, StageStabilization,
			},
			Locations:          []UKLocation{"glasgow", "edinburgh"},
			Tags:               []string{"prep", "prevention", "scotland"},
			Sources:            []string{"https://www.sandyford.scot/sexual-health-services/prep/"},
			LastUpdated:        time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			Verification:       StatusPending,
			CommunityValidated: false,
		},
		{
			ID:       "k-home-testing",
			Content:  "Free HIV postal self-sampling kits are available in much of the UK, with results by text within days. Reactive results are always confirmed at a clinic before any diagnosis.",
			Category: "testing",
			JourneyStages: []JourneyStage{
				StageGrowth,
			},
			Locations:          []UKLocation{LocationNationwide},
			Tags:               []string{"testing", "self-sampling", "home testing"},
			Sources:            []string{"https://www.freetesting.hiv"},
			LastUpdated:        time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC),
			Verification:       StatusOutdated,
			CommunityValidated: false,
		},
	}
}
