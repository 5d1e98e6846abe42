package catalog

import "sync"

// Default returns the built-in sample library.
func Default() *Library {
	return defaultLibrary()
}

var defaultLibrary = sync.OnceValue(func() *Library {
	lib, err := NewLibrary(seedContents())
	if err != nil {
		panic("catalog: invalid seed: " + err.Error())
	}
	return lib
})

func seedContents() Contents {
	return Contents{
		Standards: seedStandards(),
		Examples:  seedExamples(),
		Tests:     seedTests(),
		Results: []ResultRecord{
			{SubjectTitle: "IFRS 16 Comprehensive Assessment", Score: 87, Recency: "2 days ago", Outcome: OutcomePassed},
			{SubjectTitle: "IAS 1 Financial Statement Presentation", Score: 92, Recency: "1 week ago", Outcome: OutcomePassed},
			{SubjectTitle: "IFRS 15 Practice Quiz", Score: 65, Recency: "2 weeks ago", Outcome: OutcomeNeedsImprovement},
		},
		Courses: []Course{seedIFRS15Course()},
		Upcoming: []Upcoming{
			{Title: "IFRS 15 Practice Quiz", Due: "Tomorrow", Questions: 15},
			{Title: "Lease Accounting Assessment", Due: "Jan 15", Questions: 25},
		},
		Stats: Stats{
			StandardsStudied: 12,
			TestsCompleted:   8,
			StudyHours:       47,
			AverageScore:     87,
			BestScore:        95,
			TimeSpentHours:   4.2,
		},
	}
}

func seedStandards() []Item {
	return []Item{
		{
			ID:          "ifrs-15",
			Title:       "IFRS 15: Revenue from Contracts with Customers",
			Description: "Learn how to recognize revenue from contracts with customers, including the five-step model.",
			Category:    Intermediate,
			Metrics:     map[Metric]float64{MetricDuration: 240, MetricProgress: 75, MetricRating: 4.8, MetricStudents: 1250},
			Tags:        []string{"Revenue Recognition", "Contract Assets", "Performance Obligations"},
		},
		{
			ID:          "ifrs-16",
			Title:       "IFRS 16: Leases",
			Description: "Master lease accounting for both lessees and lessors under the new lease standard.",
			Category:    Advanced,
			Metrics:     map[Metric]float64{MetricDuration: 300, MetricProgress: 100, MetricRating: 4.9, MetricStudents: 980},
			Tags:        []string{"Lease Classification", "Right-of-use Assets", "Lease Liabilities"},
		},
		{
			ID:          "ias-1",
			Title:       "IAS 1: Presentation of Financial Statements",
			Description: "Understand the fundamental principles for presenting financial statements.",
			Category:    Beginner,
			Metrics:     map[Metric]float64{MetricDuration: 180, MetricProgress: 45, MetricRating: 4.7, MetricStudents: 1500},
			Tags:        []string{"Financial Statement Structure", "Going Concern", "Materiality"},
		},
		{
			ID:          "ifrs-9",
			Title:       "IFRS 9: Financial Instruments",
			Description: "Comprehensive guide to classification, measurement, and impairment of financial instruments.",
			Category:    Advanced,
			Metrics:     map[Metric]float64{MetricDuration: 360, MetricProgress: 0, MetricRating: 4.6, MetricStudents: 750},
			Tags:        []string{"Classification", "Impairment", "Hedge Accounting"},
		},
		{
			ID:          "ias-16",
			Title:       "IAS 16: Property, Plant and Equipment",
			Description: "Learn about recognition, measurement, and depreciation of PPE.",
			Category:    Intermediate,
			Metrics:     map[Metric]float64{MetricDuration: 210, MetricProgress: 30, MetricRating: 4.5, MetricStudents: 890},
			Tags:        []string{"Initial Recognition", "Depreciation", "Revaluation"},
		},
		{
			ID:          "ifrs-3",
			Title:       "IFRS 3: Business Combinations",
			Description: "Master the accounting for business combinations and goodwill.",
			Category:    Advanced,
			Metrics:     map[Metric]float64{MetricDuration: 270, MetricProgress: 0, MetricRating: 4.4, MetricStudents: 650},
			Tags:        []string{"Acquisition Method", "Goodwill", "Non-controlling Interests"},
		},
	}
}

func seedExamples() []Item {
	return []Item{
		{
			ID:          "software-revenue",
			Title:       "Software License Revenue Recognition",
			Description: "A technology company sells software licenses with ongoing support. Learn how to identify performance obligations and allocate transaction price.",
			Category:    Intermediate,
			Standard:    "IFRS 15",
			Industry:    "Technology",
			Metrics:     map[Metric]float64{MetricDuration: 25},
			Tags:        []string{"Performance Obligations", "Transaction Price", "Revenue Recognition"},
		},
		{
			ID:          "construction-contract",
			Title:       "Long-term Construction Contract",
			Description: "A construction company builds a custom office building over 18 months. Understand over-time vs point-in-time revenue recognition.",
			Category:    Advanced,
			Standard:    "IFRS 15",
			Industry:    "Construction",
			Metrics:     map[Metric]float64{MetricDuration: 35},
			Tags:        []string{"Over-time Recognition", "Variable Consideration", "Contract Assets"},
		},
		{
			ID:          "lease-accounting",
			Title:       "Office Lease Accounting",
			Description: "A company signs a 5-year office lease with renewal options. Learn to calculate lease liabilities and right-of-use assets.",
			Category:    Intermediate,
			Standard:    "IFRS 16",
			Industry:    "Real Estate",
			Metrics:     map[Metric]float64{MetricDuration: 30},
			Tags:        []string{"Lease Liability", "ROU Asset", "Discount Rate"},
		},
		{
			ID:          "financial-instruments",
			Title:       "Bond Investment Classification",
			Description: "A bank invests in corporate bonds. Understand SPPI test and business model assessment for classification.",
			Category:    Advanced,
			Standard:    "IFRS 9",
			Industry:    "Financial Services",
			Metrics:     map[Metric]float64{MetricDuration: 40},
			Tags:        []string{"SPPI Test", "Business Model", "Fair Value"},
		},
		{
			ID:          "ppe-revaluation",
			Title:       "Manufacturing Equipment Revaluation",
			Description: "A manufacturer revalues its production equipment. Learn about revaluation model and subsequent measurement.",
			Category:    Intermediate,
			Standard:    "IAS 16",
			Industry:    "Manufacturing",
			Metrics:     map[Metric]float64{MetricDuration: 20},
			Tags:        []string{"Revaluation Model", "Depreciation", "Revaluation Surplus"},
		},
		{
			ID:          "business-combination",
			Title:       "Tech Company Acquisition",
			Description: "A large corporation acquires a startup. Understand purchase price allocation and goodwill calculation.",
			Category:    Advanced,
			Standard:    "IFRS 3",
			Industry:    "Technology",
			Metrics:     map[Metric]float64{MetricDuration: 45},
			Tags:        []string{"Purchase Price Allocation", "Goodwill", "Fair Value"},
		},
	}
}

// Tests without a best score carry no MetricScore entry at all.
func seedTests() []Item {
	return []Item{
		{
			ID:          "ifrs-15-basic",
			Title:       "IFRS 15 Fundamentals Quiz",
			Description: "Test your understanding of the five-step revenue recognition model",
			Category:    Beginner,
			Standard:    "IFRS 15",
			Metrics:     map[Metric]float64{MetricQuestions: 15, MetricDuration: 20, MetricAttempts: 0},
		},
		{
			ID:          "ifrs-16-comprehensive",
			Title:       "IFRS 16 Comprehensive Assessment",
			Description: "Advanced test covering all aspects of lease accounting",
			Category:    Advanced,
			Standard:    "IFRS 16",
			Metrics:     map[Metric]float64{MetricQuestions: 25, MetricDuration: 35, MetricAttempts: 2, MetricScore: 87},
		},
		{
			ID:          "ias-1-presentation",
			Title:       "IAS 1 Financial Statement Presentation",
			Description: "Quiz on financial statement structure and presentation requirements",
			Category:    Intermediate,
			Standard:    "IAS 1",
			Metrics:     map[Metric]float64{MetricQuestions: 12, MetricDuration: 15, MetricAttempts: 1, MetricScore: 92},
		},
		{
			ID:          "ifrs-9-classification",
			Title:       "IFRS 9 Financial Instruments Classification",
			Description: "Test your knowledge of financial instrument classification and measurement",
			Category:    Advanced,
			Standard:    "IFRS 9",
			Metrics:     map[Metric]float64{MetricQuestions: 20, MetricDuration: 30, MetricAttempts: 0},
		},
	}
}

func seedIFRS15Course() Course {
	return Course{
		StandardID:  "ifrs-15",
		LastUpdated: "December 2024",
		Modules: []Module{
			{Seq: 1, Title: "Introduction to IFRS 15", DurationMins: 30, Type: ModuleVideo, Completed: true},
			{Seq: 2, Title: "The Five-Step Model", DurationMins: 45, Type: ModuleReading, Completed: true},
			{Seq: 3, Title: "Identifying Performance Obligations", DurationMins: 40, Type: ModuleVideo, Completed: true},
			{Seq: 4, Title: "Transaction Price Determination", DurationMins: 35, Type: ModuleReading, Current: true},
			{Seq: 5, Title: "Allocating Transaction Price", DurationMins: 50, Type: ModuleVideo},
			{Seq: 6, Title: "Revenue Recognition Timing", DurationMins: 45, Type: ModuleReading},
			{Seq: 7, Title: "Contract Modifications", DurationMins: 30, Type: ModuleVideo},
			{Seq: 8, Title: "Practical Examples", DurationMins: 60, Type: ModuleExercise},
		},
		Practice: []Practice{
			{Title: "Software License Revenue Recognition", Description: "A technology company selling software licenses with support services", Category: Intermediate, DurationMins: 20},
			{Title: "Construction Contract Accounting", Description: "Long-term construction project with variable consideration", Category: Advanced, DurationMins: 35},
			{Title: "Subscription Service Revenue", Description: "Monthly subscription service with performance obligations", Category: Beginner, DurationMins: 15},
		},
		Resources: []Resource{
			{Title: "Official IFRS 15 Standard", Description: "Download the complete IFRS 15 standard document", Action: "Download PDF"},
			{Title: "Implementation Guidance", Description: "Practical guidance and examples from the IASB", Action: "View Guide"},
			{Title: "Quick Reference Sheet", Description: "Summary of key concepts and decision trees", Action: "Download Cheat Sheet"},
			{Title: "Practice Quiz", Description: "Test your knowledge with 20 questions", Action: "Take Quiz", Href: "/tests/ifrs-15-basic"},
		},
	}
}
